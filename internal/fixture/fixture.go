// Package fixture is a small, test-only tree builder used to construct
// example design trees in a readable, VHDL-shaped way. It performs no
// lexing, parsing, name resolution, or type checking of its own — every
// reference it produces is already resolved, exactly as internal/ir
// expects a checked tree to be. It exists purely to stand in for the
// external checker in tests and in the two cmd/ front-ends.
package fixture

import "github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"

// Common VHDL scalar types, shared by every fixture design.
var (
	Bit     = &ir.Type{Name: "bit"}
	Boolean = &ir.Type{Name: "boolean"}
	Integer = &ir.Type{Name: "integer"}
)

// Design accumulates declarations and statements for one elaborated unit,
// the role a parsed and checked architecture body would otherwise play.
type Design struct {
	Arena *ir.Arena
	Top   *ir.Node
}

// New returns an empty design ready for Signal/Process/Const calls.
func New() *Design {
	a := ir.NewArena()
	return &Design{Arena: a, Top: a.New(ir.KindElab)}
}

// Signal declares a signal of typ with an optional initial value and adds
// it to the design's top-level declarations.
func (d *Design) Signal(ident string, typ *ir.Type, initial *ir.Node) *ir.Node {
	s := d.Arena.New(ir.KindSignalDecl)
	s.Ident = ident
	s.Type = typ
	s.Value = initial
	d.Top.AddDecl(s)
	return s
}

// Const declares a constant with the given initial value.
func (d *Design) Const(ident string, typ *ir.Type, value *ir.Node) *ir.Node {
	c := d.Arena.New(ir.KindConstDecl)
	c.Ident = ident
	c.Type = typ
	c.Value = value
	d.Top.AddDecl(c)
	return c
}

// Ref returns a T_REF to decl, a thin pass-through to the arena for
// callers that would rather not import internal/ir directly.
func (d *Design) Ref(decl *ir.Node) *ir.Node { return d.Arena.Ref(decl) }

// Process declares a top-level process sensitised to triggers (may be
// empty, meaning the simplifier leaves it as-is) and returns a builder for
// its body.
func (d *Design) Process(ident string, triggers ...*ir.Node) *ProcessBuilder {
	p := d.Arena.New(ir.KindProcess)
	p.Ident = ident
	p.Triggers = triggers
	d.Top.AddStmt(p)
	return &ProcessBuilder{design: d, node: p}
}

// ProcessBuilder accumulates a process body one statement at a time.
type ProcessBuilder struct {
	design *Design
	node   *ir.Node
}

// Stmt appends s to the process body and returns the builder for
// chaining.
func (pb *ProcessBuilder) Stmt(s *ir.Node) *ProcessBuilder {
	pb.node.AddStmt(s)
	return pb
}

// Node returns the underlying PROCESS node.
func (pb *ProcessBuilder) Node() *ir.Node { return pb.node }

// SignalAssign builds `target <= value [after delay];`.
func (d *Design) SignalAssign(target *ir.Node, value, delay *ir.Node) *ir.Node {
	a := d.Arena.New(ir.KindSignalAssign)
	a.Ident = "assign"
	a.Target = target
	a.AddWaveform(ir.Waveform{Value: value, Delay: delay})
	return a
}

// Wait builds `wait on <triggers...> [until value];`.
func (d *Design) Wait(value *ir.Node, triggers ...*ir.Node) *ir.Node {
	w := d.Arena.New(ir.KindWait)
	w.Ident = "wait"
	w.Value = value
	w.Triggers = triggers
	return w
}

// If builds `if cond then <then...> else <els...> end if;`.
func (d *Design) If(cond *ir.Node, then []*ir.Node, els []*ir.Node) *ir.Node {
	n := d.Arena.New(ir.KindIf)
	n.Value = cond
	n.Stmts = then
	n.Else = els
	return n
}

// Call builds a call to decl with positional actuals, usable for both
// T_FCALL and T_PCALL depending on kind.
func (d *Design) Call(kind ir.Kind, decl *ir.Node, resultType *ir.Type, args ...*ir.Node) *ir.Node {
	n := d.Arena.New(kind)
	n.Ident = decl.Ident
	n.Ref = decl
	n.Type = resultType
	for _, arg := range args {
		n.AddParam(ir.Param{Kind: ir.ParamPos, Value: arg})
	}
	return n
}
