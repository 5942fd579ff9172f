package ir

import "fmt"

// Loc is a source-location handle copied forward by every rewrite. The
// simplifier never synthesises a meaningful Loc of its own beyond copying
// the Loc of the node it replaces (spec Non-goals: no preserved line
// numbers beyond a copied-forward handle).
type Loc struct {
	File string
	Line int
	Col  int
}

// Type is an opaque handle to a type-table entry. The checker (external)
// owns type identity; the simplifier only ever compares handles or asks
// IsArray/Kind of them. A nil Type means "untyped" (e.g. a label).
type Type struct {
	Name    string
	IsArray bool
	// Elem, when IsArray is true, is the element type of a one-dimensional
	// array type. Multi-dimensional arrays are represented by chaining Elem.
	Elem *Type
	// Low, High and Dir describe the first index range of an array type,
	// used by array/aggregate element extraction (spec 4.4).
	Low, High int64
	Dir       RangeKind
}

// Param is one actual parameter of a call, attributed with its subkind.
type Param struct {
	Kind  ParamKind
	Name  *Node // for ParamNamed: the formal's T_REF actual-naming expression
	Value *Node
}

// Assoc is one choice/value pair of an aggregate, case statement or
// selected-signal-assignment.
type Assoc struct {
	Kind  AssocKind
	Pos   int   // AssocPos
	Name  *Node // AssocNamed
	Range Range // AssocRange
	Value *Node
}

// Range carries a direction and two bound expressions; DYN/RDYN ranges only
// know their ascending direction at run time (spec 3, "Ranges").
type Range struct {
	Kind  RangeKind
	Left  *Node
	Right *Node
	// Source is only meaningful for RangeDyn/RangeRdyn: a reference to the
	// run-time object (array signal, port, alias...) whose direction drives
	// the "ascending(1, <range-source>)" test the simplifier expands a
	// dynamic `for` loop's step into (spec §4.7).
	Source *Node
}

// Waveform is a (value, delay) pair attached to a signal assignment.
type Waveform struct {
	Value *Node
	Delay *Node // nil means no explicit delay (defaults to a delta cycle)
}

// Cond is one guarded branch of a conditional signal assignment (T_CASSIGN,
// spec §4.9): a `when <Guard>` clause (nil Guard marks the final,
// unconditional branch) together with the waveform(s) it assigns.
type Cond struct {
	Guard     *Node
	Reject    *Node
	Waveforms []Waveform
}

// Node is the tagged, variant-like tree value described in spec §3. All
// fields are present on every node; only the subset relevant to Kind is
// populated by constructors and rewrites.
type Node struct {
	Kind  Kind
	Ident string
	Loc   Loc
	Type  *Type

	// Ordered child lists.
	Stmts    []*Node
	Decls    []*Node
	Params   []Param
	Waveforms []Waveform
	Triggers []*Node
	Assocs   []Assoc
	Else     []*Node // IF else-statements / IF_GENERATE has none

	// Kind-specific slots.
	Value    *Node // condition, scrutinee, assigned value, RHS, aggregate prefix index source...
	Target   *Node // assignment target
	Delay    *Node // WAIT "for" clause, or a single waveform's delay when not list-shaped
	Reject   *Node
	Severity *Node
	Message  *Node
	Rng      *Range // FOR loop range, ARRAY_REF index range
	Ref      *Node  // resolved back-pointer into a declaration (T_REF, T_ATTR_REF callee)
	Ident2   string // CPCALL's second identifier (procedure name), as in the reference tree

	// Conds holds a CASSIGN's guarded branches in source order; the last
	// entry's Guard is nil when the assignment carries an unconditional
	// final branch (spec §4.9).
	Conds []Cond

	// PortMode/PortClass are only meaningful on a PORT_DECL: they record the
	// formal's mode and class so the CPCALL rule (spec §4.9) can tell which
	// actuals are signal-class IN/INOUT parameters.
	PortMode  PortMode
	PortClass PortClass

	// Literal payload, used by the constant evaluator.
	LitKind LitKind
	IVal    int64
	RVal    float64
	SVal    string
	Chars   []byte // string-literal character array, for indexed extraction

	attrs map[string]Attr
}

// LitKind distinguishes the payload carried by a T_LITERAL node.
type LitKind int

const (
	LitNone LitKind = iota
	LitInt
	LitReal
	LitBool
	LitString
	LitEnum
)

// Attr is a named attribute value: either a string or an integer, per
// spec §3 ("a named attribute bag (string/int ...)").
type Attr struct {
	Str    string
	Int    int64
	IsInt  bool
	IsStr  bool
}

// Arena owns the lifetime of every Node created through it; a Node never
// outlives its Arena and T_REF.Ref never points outside of it (spec §3,
// "Ownership").
type Arena struct {
	nodes   []*Node
	counter int
}

// NewArena returns an empty, ready-to-use arena for one compilation unit.
func NewArena() *Arena {
	return &Arena{}
}

// New allocates a fresh, zero-valued node of the given kind inside a.
func (a *Arena) New(kind Kind) *Node {
	n := &Node{Kind: kind}
	a.nodes = append(a.nodes, n)
	return n
}

// Uniq returns a name derived from base that is unique within this arena's
// lifetime, mirroring the reference implementation's ident_uniq — used for
// synthesised labels (cond, for_exit, null_check, ...) and implicit signal
// names (delayed_<sig>, transaction_<sig>).
func (a *Arena) Uniq(base string) string {
	a.counter++
	return fmt.Sprintf("%s_%d", base, a.counter)
}

// SetAttrStr/SetAttrInt/Attr/HasAttr implement the named attribute bag.

func (n *Node) SetAttrStr(key, val string) {
	if n.attrs == nil {
		n.attrs = make(map[string]Attr)
	}
	n.attrs[key] = Attr{Str: val, IsStr: true}
}

func (n *Node) SetAttrInt(key string, val int64) {
	if n.attrs == nil {
		n.attrs = make(map[string]Attr)
	}
	n.attrs[key] = Attr{Int: val, IsInt: true}
}

func (n *Node) AttrStr(key string) (string, bool) {
	a, ok := n.attrs[key]
	if !ok || !a.IsStr {
		return "", false
	}
	return a.Str, true
}

func (n *Node) AttrInt(key string) (int64, bool) {
	a, ok := n.attrs[key]
	if !ok || !a.IsInt {
		return 0, false
	}
	return a.Int, true
}

func (n *Node) HasAttr(key string) bool {
	_, ok := n.attrs[key]
	return ok
}

// Static reports the "static=1" flag set on every WAIT synthesised by the
// simplifier for a desugared concurrent construct (spec §4.8-4.9).
func (n *Node) Static() bool {
	v, _ := n.AttrInt("static")
	return v == 1
}

// AddTrigger appends ref to the WAIT's trigger list, used directly by
// simp_build_wait and by callers constructing a WAIT by hand in tests.
func (n *Node) AddTrigger(ref *Node) {
	n.Triggers = append(n.Triggers, ref)
}

// HasTriggerFor reports whether any existing trigger resolves to the same
// declaration as ref (duplicate suppression described in spec §4.8).
func (n *Node) HasTriggerFor(decl *Node) bool {
	for _, t := range n.Triggers {
		if t.Ref == decl {
			return true
		}
	}
	return false
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Ident != "" {
		return fmt.Sprintf("%s(%s)", n.Kind, n.Ident)
	}
	return n.Kind.String()
}
