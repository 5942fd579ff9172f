package ir

// VisitRefs walks expr and every reachable sub-expression, calling fn for
// each T_REF node encountered. It mirrors the reference implementation's
// tree_visit_only(expr, fn, ctx, T_REF) and is the primitive
// internal/simplify's wait-construction helper (spec §4.8) is built on.
func VisitRefs(expr *Node, fn func(ref *Node)) {
	if expr == nil {
		return
	}
	if expr.Kind == KindRef {
		fn(expr)
	}

	if expr.Value != nil {
		VisitRefs(expr.Value, fn)
	}
	if expr.Target != nil {
		VisitRefs(expr.Target, fn)
	}
	if expr.Delay != nil {
		VisitRefs(expr.Delay, fn)
	}
	for _, p := range expr.Params {
		VisitRefs(p.Value, fn)
	}
	for _, w := range expr.Waveforms {
		VisitRefs(w.Value, fn)
		VisitRefs(w.Delay, fn)
	}
	for _, a := range expr.Assocs {
		if a.Name != nil {
			VisitRefs(a.Name, fn)
		}
		if a.Range.Left != nil {
			VisitRefs(a.Range.Left, fn)
		}
		if a.Range.Right != nil {
			VisitRefs(a.Range.Right, fn)
		}
		VisitRefs(a.Value, fn)
	}
	if expr.Rng != nil {
		VisitRefs(expr.Rng.Left, fn)
		VisitRefs(expr.Rng.Right, fn)
		VisitRefs(expr.Rng.Source, fn)
	}
	for _, cond := range expr.Conds {
		if cond.Guard != nil {
			VisitRefs(cond.Guard, fn)
		}
		if cond.Reject != nil {
			VisitRefs(cond.Reject, fn)
		}
		for _, w := range cond.Waveforms {
			VisitRefs(w.Value, fn)
			if w.Delay != nil {
				VisitRefs(w.Delay, fn)
			}
		}
	}
}

// Contains reports whether kind appears anywhere in the subtree rooted at
// n, used by the idempotence/residual-shape tests (spec §8): after
// Simplify, no CASSIGN/SELECT/CPCALL/CASSERT/IF_GENERATE/QUALIFIED/NULL/FOR
// node should remain.
func Contains(n *Node, kind Kind) bool {
	found := false
	Walk(n, func(v *Node) bool {
		if v.Kind == kind {
			found = true
			return false
		}
		return true
	})
	return found
}

// Walk visits n and every statement/declaration/param/waveform/assoc child
// depth-first, calling fn on each node. Walk stops descending into a
// subtree when fn returns false for it, but continues with siblings.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, s := range n.Stmts {
		Walk(s, fn)
	}
	for _, d := range n.Decls {
		Walk(d, fn)
	}
	for _, s := range n.Else {
		Walk(s, fn)
	}
	for _, p := range n.Params {
		Walk(p.Value, fn)
	}
	for _, w := range n.Waveforms {
		Walk(w.Value, fn)
		if w.Delay != nil {
			Walk(w.Delay, fn)
		}
	}
	for _, a := range n.Assocs {
		if a.Name != nil {
			Walk(a.Name, fn)
		}
		Walk(a.Value, fn)
	}
	if n.Value != nil {
		Walk(n.Value, fn)
	}
	if n.Target != nil {
		Walk(n.Target, fn)
	}
	for _, cond := range n.Conds {
		if cond.Guard != nil {
			Walk(cond.Guard, fn)
		}
		if cond.Reject != nil {
			Walk(cond.Reject, fn)
		}
		for _, w := range cond.Waveforms {
			Walk(w.Value, fn)
			if w.Delay != nil {
				Walk(w.Delay, fn)
			}
		}
	}
}
