package simplify

import (
	"fmt"

	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/eval"
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"
)

// simplifyAttrRef implements spec §4.5. t.Target holds the attribute's
// prefix (the object it is applied to, e.g. `s` in `s'delayed(5 ns)`);
// t.Ref, when present, resolves to a function declaration tagged
// "builtin" with the attribute's name.
func (c *ctx) simplifyAttrRef(t *ir.Node) *ir.Node {
	if t.Value != nil {
		return t.Value
	}
	if t.Ref == nil {
		return t
	}

	builtin, ok := t.Ref.AttrStr("builtin")
	if !ok {
		panic(structuralf("simplifyAttrRef", "resolved attribute %q has no builtin tag", t.Ident))
	}

	switch builtin {
	case "delayed", "transaction":
		if t.Target == nil || t.Target.Ref == nil || t.Target.Ref.Kind != ir.KindSignalDecl {
			// Attribute on a non-signal prefix: the checker is responsible
			// for diagnosing misuse, not the simplifier.
			return t
		}
		return c.synthDelayedOrTransaction(t, builtin)

	default:
		fcall := c.arena.New(ir.KindFCall)
		fcall.Loc = t.Loc
		fcall.Ident = t.Ident
		fcall.Type = t.Type
		fcall.Ref = t.Ref
		fcall.Params = t.Params
		return eval.Fold(c.arena, fcall)
	}
}

// synthDelayedOrTransaction implements spec §4.5.1: synthesise an implicit
// signal and an implicit process driving it, queue the pair for the
// top-level unit, and replace the attribute reference with a T_REF to the
// new signal.
func (c *ctx) synthDelayedOrTransaction(t *ir.Node, builtin string) *ir.Node {
	sig := t.Target.Ref

	prefix := "delayed"
	if builtin == "transaction" {
		prefix = "transaction"
	}
	name := c.arena.Uniq(fmt.Sprintf("%s_%s", prefix, sig.Ident))

	s := c.arena.New(ir.KindSignalDecl)
	s.Loc = t.Loc
	s.Ident = name
	s.Type = t.Type
	s.Value = sig.Value // initial value copied from sig's own initial value

	p := c.arena.New(ir.KindProcess)
	p.Loc = t.Loc
	p.Ident = name + "_p"

	ref := c.arena.Ref(s)

	assign := c.arena.New(ir.KindSignalAssign)
	assign.Ident = "assign"
	assign.Target = ref

	switch builtin {
	case "delayed":
		var delay *ir.Node
		if len(t.Params) > 0 {
			delay = t.Params[0].Value
		}
		assign.AddWaveform(ir.Waveform{Value: t.Target, Delay: delay})
	case "transaction":
		notCall := c.arena.CallBuiltin("not", ref.Type, ref)
		assign.AddWaveform(ir.Waveform{Value: notCall})
	}
	p.AddStmt(assign)

	wait := c.arena.New(ir.KindWait)
	wait.Ident = "wait"
	wait.SetAttrInt("static", 1)
	wait.AddTrigger(t.Target)
	p.AddStmt(wait)

	c.pending = append(c.pending, pendingImplicit{signal: s, process: p})

	return ref
}
