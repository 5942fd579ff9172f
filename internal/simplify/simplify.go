// Package simplify implements the post-order tree rewriter described in
// spec §4: it canonicalises a checked VHDL design tree into processes that
// explicitly wait on signal events, folding constants and desugaring every
// concurrent construct along the way.
package simplify

import (
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/eval"
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"
)

// pendingImplicit is one (signal, process) pair synthesised for a
// `'delayed`/`'transaction` attribute (spec §4.5.1), queued until the
// top-level rewrite finishes.
type pendingImplicit struct {
	signal  *ir.Node
	process *ir.Node
}

// ctx is the rewrite context threaded through every handler — an explicit
// parameter rather than module-global state, so the simplifier is
// reentrant and testable (spec §9, "Side-list of implicit signals").
type ctx struct {
	arena   *ir.Arena
	pending []pendingImplicit
}

// Simplify rewrites top (normally a T_ELAB or architecture body's top-level
// statement container) into its residual form and returns it. It aborts
// (panics with a *StructuralError) on the programmer errors spec §7
// classifies as structural violations; ordinary unfoldable expressions are
// simply left unrewritten, never treated as errors.
func Simplify(a *ir.Arena, top *ir.Node) *ir.Node {
	c := &ctx{arena: a}
	result := c.rewrite(top)
	if result == nil {
		panic(structuralf("Simplify", "top-level unit was deleted by rewrite"))
	}
	c.drainImplicit(result)
	return result
}

// Run is Simplify's recoverable counterpart, used by tests and front-ends
// that want a StructuralError back rather than a crash.
func Run(a *ir.Arena, top *ir.Node) (result *ir.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*StructuralError); ok {
				err = se
				return
			}
			panic(r)
		}
	}()
	result = Simplify(a, top)
	return result, nil
}

func (c *ctx) drainImplicit(top *ir.Node) {
	for _, p := range c.pending {
		top.AddDecl(p.signal)
		top.AddStmt(p.process)
	}
	c.pending = nil
}

// rewrite is the generic post-order driver: it rewrites every child list
// and expression slot first, then dispatches on Kind. It returns nil to
// mean "delete this node from its parent's list" (T_NULL, a constant-false
// WHILE/IF_GENERATE, ...).
func (c *ctx) rewrite(n *ir.Node) *ir.Node {
	if n == nil {
		return nil
	}

	n.Decls = c.rewriteDeclList(n.Decls)
	n.Stmts = c.rewriteStmtList(n.Stmts)
	n.Else = c.rewriteStmtList(n.Else)
	for i := range n.Params {
		n.Params[i].Value = c.rewrite(n.Params[i].Value)
	}
	for i := range n.Waveforms {
		n.Waveforms[i].Value = c.rewrite(n.Waveforms[i].Value)
		if n.Waveforms[i].Delay != nil {
			n.Waveforms[i].Delay = c.rewrite(n.Waveforms[i].Delay)
		}
	}
	for i := range n.Assocs {
		if n.Assocs[i].Name != nil {
			n.Assocs[i].Name = c.rewrite(n.Assocs[i].Name)
		}
		n.Assocs[i].Value = c.rewrite(n.Assocs[i].Value)
	}
	if n.Value != nil {
		n.Value = c.rewrite(n.Value)
	}
	if n.Target != nil {
		n.Target = c.rewrite(n.Target)
	}
	if n.Delay != nil {
		n.Delay = c.rewrite(n.Delay)
	}
	if n.Rng != nil {
		if n.Rng.Left != nil {
			n.Rng.Left = c.rewrite(n.Rng.Left)
		}
		if n.Rng.Right != nil {
			n.Rng.Right = c.rewrite(n.Rng.Right)
		}
		if n.Rng.Source != nil {
			n.Rng.Source = c.rewrite(n.Rng.Source)
		}
	}
	for i := range n.Conds {
		if n.Conds[i].Guard != nil {
			n.Conds[i].Guard = c.rewrite(n.Conds[i].Guard)
		}
		if n.Conds[i].Reject != nil {
			n.Conds[i].Reject = c.rewrite(n.Conds[i].Reject)
		}
		for j := range n.Conds[i].Waveforms {
			n.Conds[i].Waveforms[j].Value = c.rewrite(n.Conds[i].Waveforms[j].Value)
			if n.Conds[i].Waveforms[j].Delay != nil {
				n.Conds[i].Waveforms[j].Delay = c.rewrite(n.Conds[i].Waveforms[j].Delay)
			}
		}
	}

	return c.dispatch(n)
}

func (c *ctx) rewriteStmtList(list []*ir.Node) []*ir.Node {
	out := make([]*ir.Node, 0, len(list))
	for _, s := range list {
		if r := c.rewrite(s); r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (c *ctx) rewriteDeclList(list []*ir.Node) []*ir.Node {
	// Declarations are never deleted by a rewrite in this tree model, but
	// their initializers may still fold, so they still go through rewrite.
	out := make([]*ir.Node, 0, len(list))
	for _, d := range list {
		if r := c.rewrite(d); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// dispatch implements the handler table in spec §4.2.
func (c *ctx) dispatch(n *ir.Node) *ir.Node {
	switch n.Kind {
	case ir.KindFCall:
		n = c.normalizeArgs(n)
		return eval.Fold(c.arena, n)
	case ir.KindPCall:
		return c.normalizeArgs(n)
	case ir.KindRef:
		return eval.Fold(c.arena, n)
	case ir.KindArrayRef:
		return c.simplifyArrayRef(n)
	case ir.KindAttrRef:
		n = c.normalizeArgs(n)
		return c.simplifyAttrRef(n)
	case ir.KindIf:
		return c.simplifyIf(n)
	case ir.KindCase:
		return c.simplifyCase(n)
	case ir.KindWhile:
		return c.simplifyWhile(n)
	case ir.KindFor:
		return c.simplifyFor(n)
	case ir.KindProcess:
		return c.simplifyProcess(n)
	case ir.KindWait:
		return c.simplifyWait(n)
	case ir.KindCAssign:
		return c.simplifyCAssign(n)
	case ir.KindSelect:
		return c.simplifySelect(n)
	case ir.KindCPCall:
		return c.simplifyCPCall(n)
	case ir.KindCAssert:
		return c.simplifyCAssert(n)
	case ir.KindQualified:
		return n.Value
	case ir.KindTypeConv:
		return eval.Fold(c.arena, n)
	case ir.KindIfGenerate:
		return c.simplifyIfGenerate(n)
	case ir.KindNull:
		return nil
	default:
		if n.Kind == ir.KindInvalid || n.Kind.String() == "UNKNOWN_KIND" {
			panic(structuralf("dispatch", "unknown tree kind %d", int(n.Kind)))
		}
		return n
	}
}
