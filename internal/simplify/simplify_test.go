package simplify

import (
	"testing"

	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"
)

var (
	intType  = &ir.Type{Name: "integer"}
	boolType = &ir.Type{Name: "boolean"}
	bitType  = &ir.Type{Name: "bit"}
)

func TestIfGenerateConstantFalseVanishes(t *testing.T) {
	a := ir.NewArena()
	sig := a.New(ir.KindSignalDecl)
	sig.Ident = "s"
	sig.Type = bitType

	gen := a.New(ir.KindIfGenerate)
	gen.Value = a.BoolLit(false, boolType)
	gen.AddDecl(sig)

	top := a.New(ir.KindElab)
	top.AddStmt(gen)

	got := Simplify(a, top)
	if len(got.Stmts) != 0 {
		t.Fatalf("constant-false if-generate should vanish, got %d statements", len(got.Stmts))
	}
}

func TestIfGenerateConstantTrueBecomesBlock(t *testing.T) {
	a := ir.NewArena()
	sig := a.New(ir.KindSignalDecl)
	sig.Ident = "s"

	gen := a.New(ir.KindIfGenerate)
	gen.Value = a.BoolLit(true, boolType)
	gen.AddDecl(sig)

	top := a.New(ir.KindElab)
	top.AddStmt(gen)

	got := Simplify(a, top)
	if len(got.Stmts) != 1 || got.Stmts[0].Kind != ir.KindBlock {
		t.Fatalf("constant-true if-generate should become a single BLOCK, got %v", ir.Dump(got))
	}
	if ir.Contains(got, ir.KindIfGenerate) {
		t.Fatalf("no IF_GENERATE should survive: %v", ir.Dump(got))
	}
}

// TestForLoopExpansionShape checks the §4.7 TO-range expansion: a labelled
// BLOCK containing an initialiser and an unconditional WHILE whose body
// ends in an EXIT-when and a succ() step, with no residual FOR node.
func TestForLoopExpansionShape(t *testing.T) {
	a := ir.NewArena()
	i := a.New(ir.KindVarDecl)
	i.Ident = "i"
	i.Type = intType

	forNode := a.New(ir.KindFor)
	forNode.Ident = "L0"
	forNode.AddDecl(i)
	forNode.Rng = &ir.Range{Kind: ir.RangeTo, Left: a.IntLit(0, intType), Right: a.IntLit(3, intType)}

	body := a.New(ir.KindSignalAssign)
	forNode.AddStmt(body)

	top := a.New(ir.KindElab)
	top.AddStmt(forNode)

	got := Simplify(a, top)
	if ir.Contains(got, ir.KindFor) {
		t.Fatalf("FOR must not survive simplification: %v", ir.Dump(got))
	}

	if len(got.Stmts) != 1 || got.Stmts[0].Kind != ir.KindBlock {
		t.Fatalf("expected a single labelled BLOCK, got %v", ir.Dump(got))
	}
	block := got.Stmts[0]
	if len(block.Stmts) != 1 || block.Stmts[0].Kind != ir.KindIf {
		t.Fatalf("a TO-range for-loop's bounds are statically known non-null here, but the "+
			"expansion always wraps init+while in a null-range guard: expected a single IF, got %v",
			ir.Dump(block))
	}
	guard := block.Stmts[0]
	if len(guard.Stmts) != 2 {
		t.Fatalf("expected [init, while] inside the null-range guard, got %d statements: %v", len(guard.Stmts), ir.Dump(guard))
	}
	if guard.Stmts[0].Kind != ir.KindVarAssign {
		t.Fatalf("first guarded statement should be the loop-variable initialiser, got %v", guard.Stmts[0])
	}
	wh := guard.Stmts[1]
	if wh.Kind != ir.KindWhile {
		t.Fatalf("second statement should be the unconditional WHILE, got %v", wh)
	}
	if wh.Value != nil {
		t.Fatalf("the FOR-expansion WHILE must stay unconditional (no constant-false collapse applies to it)")
	}
	if len(wh.Stmts) < 3 {
		t.Fatalf("while body should contain the original body plus exit-when and step, got %d stmts", len(wh.Stmts))
	}
	last := wh.Stmts[len(wh.Stmts)-1]
	if last.Kind != ir.KindVarAssign {
		t.Fatalf("last while statement should be the step, got %v", last)
	}
	exitStmt := wh.Stmts[len(wh.Stmts)-2]
	if exitStmt.Kind != ir.KindExit {
		t.Fatalf("second-to-last while statement should be the exit-when, got %v", exitStmt)
	}
}

// TestDelayedAttributeSynthesis checks §4.5.1: s'delayed becomes a T_REF to
// a freshly synthesised signal, and the top-level unit picks up the new
// (signal, process) pair queued by the attribute rewrite.
func TestDelayedAttributeSynthesis(t *testing.T) {
	a := ir.NewArena()
	sig := a.New(ir.KindSignalDecl)
	sig.Ident = "clk"
	sig.Type = bitType
	sig.Value = a.BoolLit(false, bitType)

	builtinDecl := a.New(ir.KindFuncDecl)
	builtinDecl.SetAttrStr("builtin", "delayed")

	attr := a.New(ir.KindAttrRef)
	attr.Ident = "delayed"
	attr.Target = a.Ref(sig)
	attr.Ref = builtinDecl
	attr.Type = bitType

	proc := a.New(ir.KindProcess)
	proc.Ident = "p"
	assign := a.New(ir.KindSignalAssign)
	other := a.New(ir.KindSignalDecl)
	other.Ident = "q"
	other.Type = bitType
	assign.Target = a.Ref(other)
	assign.AddWaveform(ir.Waveform{Value: attr})
	proc.AddStmt(assign)

	top := a.New(ir.KindElab)
	top.AddDecl(sig)
	top.AddDecl(other)
	top.AddStmt(proc)

	got := Simplify(a, top)

	if !ir.Contains(got, ir.KindSignalDecl) {
		t.Fatalf("expected the synthesised delayed signal to survive")
	}
	foundProcess := false
	ir.Walk(got, func(n *ir.Node) bool {
		if n.Kind == ir.KindProcess && n != got.Stmts[0] {
			foundProcess = true
		}
		return true
	})
	if !foundProcess {
		t.Fatalf("expected an extra synthesised process driving the delayed signal: %v", ir.Dump(got))
	}
	if ir.Contains(got, ir.KindAttrRef) {
		t.Fatalf("no ATTR_REF should survive a resolved 'delayed: %v", ir.Dump(got))
	}
}

// TestSimplifyIdempotent checks spec §8's idempotence property: re-running
// Simplify on an already-simplified tree gives the same Dump as a single
// run over an identically built tree. Simplify rewrites top in place, so
// the two runs use separate trees.
func TestSimplifyIdempotent(t *testing.T) {
	build := func() (*ir.Arena, *ir.Node) {
		a := ir.NewArena()
		sig := a.New(ir.KindSignalDecl)
		sig.Ident = "a"
		sig.Type = intType

		proc := a.New(ir.KindProcess)
		proc.Ident = "p"
		proc.Triggers = []*ir.Node{a.Ref(sig)}

		top := a.New(ir.KindElab)
		top.AddDecl(sig)
		top.AddStmt(proc)
		return a, top
	}

	a1, top1 := build()
	once := Simplify(a1, top1)
	a2, top2 := build()
	twice := Simplify(a2, Simplify(a2, top2))

	if diff := ir.DumpDiff(once, twice); diff != "" {
		t.Fatalf("simplification is not idempotent:\n%s", diff)
	}
}

// TestResidualShapeInvariant checks spec §8/§9: after Simplify, none of the
// concurrent constructs it desugars may remain anywhere in the tree.
func TestResidualShapeInvariant(t *testing.T) {
	a := ir.NewArena()
	sig := a.New(ir.KindSignalDecl)
	sig.Ident = "s"
	sig.Type = bitType

	cassign := a.New(ir.KindCAssign)
	cassign.Target = a.Ref(sig)
	cassign.Conds = []ir.Cond{
		{Guard: nil, Waveforms: []ir.Waveform{{Value: a.BoolLit(true, bitType)}}},
	}

	top := a.New(ir.KindElab)
	top.AddDecl(sig)
	top.AddStmt(cassign)

	got := Simplify(a, top)

	for _, forbidden := range []ir.Kind{
		ir.KindCAssign, ir.KindSelect, ir.KindCPCall, ir.KindCAssert,
		ir.KindIfGenerate, ir.KindQualified, ir.KindNull, ir.KindFor,
	} {
		if ir.Contains(got, forbidden) {
			t.Fatalf("residual tree must not contain %s: %v", forbidden, ir.Dump(got))
		}
	}
}

// TestNormalizeArgsInvariant checks spec §4.3: a call with a trailing named
// actual is rewritten so every parameter becomes positional, in the
// callee's declared port order.
func TestNormalizeArgsInvariant(t *testing.T) {
	a := ir.NewArena()
	portA := a.New(ir.KindPortDecl)
	portA.Ident = "a"
	portB := a.New(ir.KindPortDecl)
	portB.Ident = "b"
	decl := a.New(ir.KindFuncDecl)
	decl.Ident = "f"
	decl.AddDecl(portA)
	decl.AddDecl(portB)

	nameB := a.New(ir.KindRef)
	nameB.Ident = "b"

	call := a.New(ir.KindFCall)
	call.Ident = "f"
	call.Ref = decl
	call.Type = intType
	call.Params = []ir.Param{
		{Kind: ir.ParamPos, Value: a.IntLit(1, intType)},
		{Kind: ir.ParamNamed, Name: nameB, Value: a.IntLit(2, intType)},
	}

	c := &ctx{arena: a}
	got := c.normalizeArgs(call)
	if len(got.Params) != 2 {
		t.Fatalf("expected 2 positional params, got %d", len(got.Params))
	}
	for i, p := range got.Params {
		if p.Kind != ir.ParamPos {
			t.Fatalf("param %d should be positional after normalization", i)
		}
	}
}

// TestCondSignalAssignThreeBranches checks the SPEC_FULL.md ADDED scenario:
// a 3-branch conditional signal assignment desugars into a nested
// IF/ELSIF/ELSE chain inside a single derived process.
func TestCondSignalAssignThreeBranches(t *testing.T) {
	a := ir.NewArena()
	sig := a.New(ir.KindSignalDecl)
	sig.Ident = "y"
	sig.Type = bitType
	sel := a.New(ir.KindSignalDecl)
	sel.Ident = "sel"
	sel.Type = intType

	mkGuard := func(v int64) *ir.Node {
		return a.CallBuiltin("eq", boolType, a.Ref(sel), a.IntLit(v, intType))
	}

	cassign := a.New(ir.KindCAssign)
	cassign.Target = a.Ref(sig)
	cassign.Conds = []ir.Cond{
		{Guard: mkGuard(0), Waveforms: []ir.Waveform{{Value: a.BoolLit(false, bitType)}}},
		{Guard: mkGuard(1), Waveforms: []ir.Waveform{{Value: a.BoolLit(true, bitType)}}},
		{Guard: nil, Waveforms: []ir.Waveform{{Value: a.BoolLit(false, bitType)}}},
	}

	top := a.New(ir.KindElab)
	top.AddDecl(sig)
	top.AddDecl(sel)
	top.AddStmt(cassign)

	got := Simplify(a, top)
	if len(got.Stmts) != 1 || got.Stmts[0].Kind != ir.KindProcess {
		t.Fatalf("expected a single derived process, got %v", ir.Dump(got))
	}
	proc := got.Stmts[0]
	if len(proc.Stmts) != 2 {
		t.Fatalf("expected [if-chain, wait], got %d stmts", len(proc.Stmts))
	}
	ifNode := proc.Stmts[0]
	if ifNode.Kind != ir.KindIf {
		t.Fatalf("first process statement should be the IF chain root, got %v", ifNode)
	}
	if len(ifNode.Else) != 1 || ifNode.Else[0].Kind != ir.KindIf {
		t.Fatalf("second branch should hang off the first's else, got %v", ir.Dump(ifNode))
	}
	inner := ifNode.Else[0]
	if len(inner.Else) != 1 || inner.Else[0].Kind != ir.KindSignalAssign {
		t.Fatalf("final unconditional branch should be a plain SIGNAL_ASSIGN, got %v", ir.Dump(inner))
	}
	wait := proc.Stmts[1]
	if wait.Kind != ir.KindWait || !wait.Static() {
		t.Fatalf("expected a static derived WAIT, got %v", wait)
	}
	if !wait.HasTriggerFor(sel) {
		t.Fatalf("derived WAIT must be sensitive to the guards' signal, sel: %v", ir.Dump(wait))
	}
}

// TestCPCallSensitivityOnlyInAndInOutSignalPorts checks the SPEC_FULL.md
// ADDED scenario: an OUT-mode signal actual and a VARIABLE-class actual do
// not contribute to the derived WAIT; only IN/INOUT SIGNAL actuals do.
func TestCPCallSensitivityOnlyInAndInOutSignalPorts(t *testing.T) {
	a := ir.NewArena()

	portIn := a.New(ir.KindPortDecl)
	portIn.Ident = "d"
	portIn.PortMode = ir.ModeIn
	portIn.PortClass = ir.ClassSignal

	portOut := a.New(ir.KindPortDecl)
	portOut.Ident = "q"
	portOut.PortMode = ir.ModeOut
	portOut.PortClass = ir.ClassSignal

	portVarInOut := a.New(ir.KindPortDecl)
	portVarInOut.Ident = "scratch"
	portVarInOut.PortMode = ir.ModeInOut
	portVarInOut.PortClass = ir.ClassVariable

	proc := a.New(ir.KindFuncDecl)
	proc.Ident = "latch"
	proc.AddDecl(portIn)
	proc.AddDecl(portOut)
	proc.AddDecl(portVarInOut)

	sigD := a.New(ir.KindSignalDecl)
	sigD.Ident = "d_sig"
	sigQ := a.New(ir.KindSignalDecl)
	sigQ.Ident = "q_sig"
	varScratch := a.New(ir.KindVarDecl)
	varScratch.Ident = "scratch_var"

	cpcall := a.New(ir.KindCPCall)
	cpcall.Ident = "latch"
	cpcall.Ref = proc
	cpcall.Params = []ir.Param{
		{Kind: ir.ParamPos, Value: a.Ref(sigD)},
		{Kind: ir.ParamPos, Value: a.Ref(sigQ)},
		{Kind: ir.ParamPos, Value: a.Ref(varScratch)},
	}

	top := a.New(ir.KindElab)
	top.AddDecl(sigD)
	top.AddDecl(sigQ)
	top.AddDecl(varScratch)
	top.AddStmt(cpcall)

	got := Simplify(a, top)
	if len(got.Stmts) != 1 || got.Stmts[0].Kind != ir.KindProcess {
		t.Fatalf("expected a single derived process, got %v", ir.Dump(got))
	}
	p := got.Stmts[0]
	var wait *ir.Node
	for _, s := range p.Stmts {
		if s.Kind == ir.KindWait {
			wait = s
		}
	}
	if wait == nil {
		t.Fatalf("expected a derived WAIT, got %v", ir.Dump(p))
	}
	if !wait.HasTriggerFor(sigD) {
		t.Fatalf("IN signal actual must be a trigger")
	}
	if wait.HasTriggerFor(sigQ) {
		t.Fatalf("OUT signal actual must not be a trigger")
	}
	if wait.HasTriggerFor(varScratch) {
		t.Fatalf("variable actual must not be a trigger")
	}
}
