package simplify

import "github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"

// simplifyCAssign implements spec §4.9's conditional signal assignment
// rule: each `when <guard>` branch becomes a nested IF/ELSIF, terminating
// in an unconditional SIGNAL_ASSIGN for the branch that is taken (or, for
// the final branch, one with a nil guard). The whole chain is wrapped in a
// process ending in a derived WAIT sensitive to every guard and waveform
// value across all branches, matching the "assignment re-evaluates
// whenever anything it reads changes" semantics of the concurrent form.
func (c *ctx) simplifyCAssign(t *ir.Node) *ir.Node {
	body := c.buildCondChain(t, 0)
	if body == nil {
		return nil
	}

	p := c.arena.New(ir.KindProcess)
	p.Loc = t.Loc
	p.Ident = c.arena.Uniq("cond")
	p.AddStmt(body)

	wait := c.arena.New(ir.KindWait)
	wait.Ident = p.Ident
	wait.SetAttrInt("static", 1)
	for _, cond := range t.Conds {
		if cond.Guard != nil {
			buildWait(cond.Guard, wait)
		}
		for _, w := range cond.Waveforms {
			buildWait(w.Value, wait)
			if w.Delay != nil {
				buildWait(w.Delay, wait)
			}
		}
	}
	p.AddStmt(wait)

	return p
}

func (c *ctx) buildCondChain(t *ir.Node, idx int) *ir.Node {
	if idx >= len(t.Conds) {
		return nil
	}
	cond := t.Conds[idx]

	assign := c.arena.New(ir.KindSignalAssign)
	assign.Loc = t.Loc
	assign.Ident = "assign"
	assign.Target = t.Target
	assign.Reject = cond.Reject
	assign.Waveforms = append([]ir.Waveform(nil), cond.Waveforms...)

	if cond.Guard == nil {
		return assign
	}

	ifNode := c.arena.New(ir.KindIf)
	ifNode.Loc = t.Loc
	ifNode.Ident = c.arena.Uniq("cond")
	ifNode.Value = cond.Guard
	ifNode.AddStmt(assign)
	if next := c.buildCondChain(t, idx+1); next != nil {
		ifNode.AddElseStmt(next)
	}

	// A guard that already folded to a constant collapses the branch now,
	// the same as any other IF (spec §4.6).
	return c.simplifyIf(ifNode)
}

// simplifySelect implements spec §4.9's selected-signal-assignment rule:
// `with <sel> select sig <= w0 when c0, w1 when c1, ...` becomes a process
// containing a CASE whose scrutinee is the selector and whose branches are
// unconditional SIGNAL_ASSIGNs of the corresponding waveform, ending in a
// derived WAIT sensitive to the selector, every named choice, and every
// waveform value.
//
// t.Value is the selector, t.Target the assigned signal, and t.Assocs /
// t.Waveforms are parallel: Assocs[i]'s choice selects Waveforms[i].
func (c *ctx) simplifySelect(t *ir.Node) *ir.Node {
	caseNode := c.arena.New(ir.KindCase)
	caseNode.Loc = t.Loc
	caseNode.Ident = c.arena.Uniq("select")
	caseNode.Value = t.Value

	for i, a := range t.Assocs {
		assign := c.arena.New(ir.KindSignalAssign)
		assign.Loc = t.Loc
		assign.Ident = "assign"
		assign.Target = t.Target
		if i < len(t.Waveforms) {
			assign.AddWaveform(t.Waveforms[i])
		}
		caseNode.AddAssoc(ir.Assoc{Kind: a.Kind, Pos: a.Pos, Name: a.Name, Range: a.Range, Value: assign})
	}

	p := c.arena.New(ir.KindProcess)
	p.Loc = t.Loc
	p.Ident = c.arena.Uniq("select")
	p.AddStmt(c.simplifyCase(caseNode))

	wait := c.arena.New(ir.KindWait)
	wait.Ident = p.Ident
	wait.SetAttrInt("static", 1)
	buildWait(t.Value, wait)
	for _, a := range t.Assocs {
		if a.Kind == ir.AssocNamed && a.Name != nil {
			buildWait(a.Name, wait)
		}
	}
	for _, w := range t.Waveforms {
		buildWait(w.Value, wait)
		if w.Delay != nil {
			buildWait(w.Delay, wait)
		}
	}
	p.AddStmt(wait)

	return p
}

// simplifyCPCall implements spec §4.9's concurrent procedure call rule: the
// call is wrapped in a process ending in a derived WAIT, but unlike
// simp_build_wait's general expression walk, sensitivity is restricted to
// actuals bound to a SIGNAL-class formal of mode IN or INOUT — an OUT-mode
// signal actual is written by the call, not read, and a VARIABLE/CONSTANT
// formal can never denote an event source.
func (c *ctx) simplifyCPCall(t *ir.Node) *ir.Node {
	t = c.normalizeArgs(t)

	pcall := c.arena.New(ir.KindPCall)
	pcall.Loc = t.Loc
	pcall.Ident = t.Ident
	pcall.Ident2 = t.Ident2
	pcall.Ref = t.Ref
	pcall.Type = t.Type
	pcall.Params = t.Params

	p := c.arena.New(ir.KindProcess)
	p.Loc = t.Loc
	p.Ident = c.arena.Uniq("cpcall")
	p.AddStmt(pcall)

	wait := c.arena.New(ir.KindWait)
	wait.Ident = p.Ident
	wait.SetAttrInt("static", 1)

	if decl := t.Ref; decl != nil {
		for i, param := range t.Params {
			if i >= len(decl.Decls) {
				break
			}
			port := decl.Decls[i]
			if port.PortClass != ir.ClassSignal {
				continue
			}
			if port.PortMode != ir.ModeIn && port.PortMode != ir.ModeInOut {
				continue
			}
			buildWait(param.Value, wait)
		}
	}
	p.AddStmt(wait)

	return p
}

// simplifyCAssert implements spec §4.9's concurrent assert rule: the
// assertion becomes a process containing a single ASSERT statement, with a
// derived WAIT sensitive to everything the condition reads.
func (c *ctx) simplifyCAssert(t *ir.Node) *ir.Node {
	assert := c.arena.New(ir.KindAssert)
	assert.Loc = t.Loc
	assert.Ident = "assert"
	assert.Value = t.Value
	assert.Severity = t.Severity
	assert.Message = t.Message

	p := c.arena.New(ir.KindProcess)
	p.Loc = t.Loc
	p.Ident = c.arena.Uniq("cassert")
	p.AddStmt(assert)

	wait := c.arena.New(ir.KindWait)
	wait.Ident = p.Ident
	wait.SetAttrInt("static", 1)
	buildWait(t.Value, wait)
	p.AddStmt(wait)

	return p
}
