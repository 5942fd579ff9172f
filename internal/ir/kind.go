// Package ir implements the tree model described in the simplifier
// specification: a tagged, arena-owned node with ordered child lists and a
// named attribute bag. The checker and lexer/parser are treated as external
// collaborators (see cmd/vhdl-simplify and internal/fixture for the small
// builder used to stand in for them in tests and demos).
package ir

// Kind identifies the shape of a Node. The set mirrors the constructs a
// checked VHDL design tree can contain; Simplify (internal/simplify) lowers
// all but a small residual subset of these down to T_PROCESS/T_WAIT/
// assignment/call nodes.
type Kind int

const (
	KindInvalid Kind = iota

	// Concurrent / sequential control flow and statements.
	KindProcess
	KindWait
	KindSignalAssign
	KindVarAssign
	KindIf
	KindCase
	KindWhile
	KindFor
	KindExit
	KindNull
	KindBlock

	// Calls and references.
	KindFCall
	KindPCall
	KindRef
	KindLiteral
	KindAggregate
	KindArrayRef
	KindAttrRef
	KindQualified
	KindTypeConv

	// Concurrent statements desugared away by the simplifier.
	KindCAssign
	KindSelect
	KindCPCall
	KindCAssert
	KindIfGenerate

	// Declarations.
	KindSignalDecl
	KindConstDecl
	KindVarDecl
	KindPortDecl
	KindUnitDecl
	KindEnumLit
	KindAliasDecl
	KindFuncDecl
	KindPackBody

	// Top-level / structural.
	KindElab
	KindWaveform
	KindAssert

	kindSentinel // must stay last; used to size the name table
)

var kindNames = [...]string{
	KindInvalid:      "INVALID",
	KindProcess:      "PROCESS",
	KindWait:         "WAIT",
	KindSignalAssign: "SIGNAL_ASSIGN",
	KindVarAssign:    "VAR_ASSIGN",
	KindIf:           "IF",
	KindCase:         "CASE",
	KindWhile:        "WHILE",
	KindFor:          "FOR",
	KindExit:         "EXIT",
	KindNull:         "NULL",
	KindBlock:        "BLOCK",
	KindFCall:        "FCALL",
	KindPCall:        "PCALL",
	KindRef:          "REF",
	KindLiteral:      "LITERAL",
	KindAggregate:    "AGGREGATE",
	KindArrayRef:     "ARRAY_REF",
	KindAttrRef:      "ATTR_REF",
	KindQualified:    "QUALIFIED",
	KindTypeConv:     "TYPE_CONV",
	KindCAssign:      "CASSIGN",
	KindSelect:       "SELECT",
	KindCPCall:       "CPCALL",
	KindCAssert:      "CASSERT",
	KindIfGenerate:   "IF_GENERATE",
	KindSignalDecl:   "SIGNAL_DECL",
	KindConstDecl:    "CONST_DECL",
	KindVarDecl:      "VAR_DECL",
	KindPortDecl:     "PORT_DECL",
	KindUnitDecl:     "UNIT_DECL",
	KindEnumLit:      "ENUM_LIT",
	KindAliasDecl:    "ALIAS",
	KindFuncDecl:     "FUNC_DECL",
	KindPackBody:     "PACK_BODY",
	KindElab:         "ELAB",
	KindWaveform:     "WAVEFORM",
	KindAssert:       "ASSERT",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) || kindNames[k] == "" {
		return "UNKNOWN_KIND"
	}
	return kindNames[k]
}

// ParamKind is the subkind of a call parameter or generic map association.
type ParamKind int

const (
	ParamPos ParamKind = iota
	ParamNamed
)

// AssocKind is the subkind of an aggregate/case/select choice.
type AssocKind int

const (
	AssocPos AssocKind = iota
	AssocNamed
	AssocRange
	AssocOthers
)

// RangeKind identifies the direction of a Range, or that it is only known
// dynamically (DYN ascends at runtime, RDYN is the reversed dynamic range).
type RangeKind int

const (
	RangeTo RangeKind = iota
	RangeDownto
	RangeDyn
	RangeRdyn
)

func (rk RangeKind) String() string {
	switch rk {
	case RangeTo:
		return "to"
	case RangeDownto:
		return "downto"
	case RangeDyn:
		return "dyn"
	case RangeRdyn:
		return "rdyn"
	default:
		return "?"
	}
}

// PortMode is a PORT_DECL's mode (direction), used by the concurrent
// procedure call rule (spec §4.9) to decide whether an actual feeds the
// derived WAIT's sensitivity list.
type PortMode int

const (
	ModeIn PortMode = iota
	ModeOut
	ModeInOut
	ModeBuffer
)

// PortClass distinguishes a SIGNAL-class formal (whose actual is eligible
// for sensitivity) from a VARIABLE or CONSTANT one.
type PortClass int

const (
	ClassSignal PortClass = iota
	ClassVariable
	ClassConstant
)
