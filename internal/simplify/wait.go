package simplify

import "github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"

// buildWait implements spec §4.8's simp_build_wait: walk expr visiting
// only T_REF nodes, and add each reference whose declaration is a signal,
// port, or alias to wait's trigger list, skipping anything already present
// by declaration identity.
func buildWait(expr *ir.Node, wait *ir.Node) {
	ir.VisitRefs(expr, func(ref *ir.Node) {
		decl := ref.Ref
		if decl == nil {
			return
		}
		switch decl.Kind {
		case ir.KindSignalDecl, ir.KindPortDecl, ir.KindAliasDecl:
		default:
			return
		}
		if wait.HasTriggerFor(decl) {
			return
		}
		wait.AddTrigger(ref)
	})
}

// simplifyWait implements spec §4.2/§4.8's WAIT rule: a wait with a
// condition clause but no explicit sensitivity list gets one derived from
// the condition expression.
func (c *ctx) simplifyWait(t *ir.Node) *ir.Node {
	if t.Value != nil && len(t.Triggers) == 0 {
		buildWait(t.Value, t)
	}
	return t
}

// simplifyProcess implements spec §4.2/§4.8's PROCESS rule: a process
// carrying a sensitivity list (modelled here as the PROCESS node's own
// Triggers, populated by the external checker from the `process(...)`
// clause) is rewritten into an otherwise-identical process ending in a
// trailing WAIT on that same trigger set.
func (c *ctx) simplifyProcess(t *ir.Node) *ir.Node {
	if len(t.Triggers) == 0 {
		return t
	}

	p := c.arena.New(ir.KindProcess)
	p.Ident = t.Ident
	p.Loc = t.Loc
	p.Decls = t.Decls
	p.Stmts = t.Stmts

	w := c.arena.New(ir.KindWait)
	w.Ident = p.Ident
	w.SetAttrInt("static", 1)
	w.Triggers = append([]*ir.Node(nil), t.Triggers...)
	p.AddStmt(w)

	return p
}
