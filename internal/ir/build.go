package ir

// This file collects small, oft-repeated constructors. They exist so that
// internal/simplify and internal/fixture read as a sequence of tree-shape
// decisions rather than field-by-field struct literals, the same role
// tree_new()/tree_set_*() play in the reference simplifier.

// Ref returns a fresh T_REF resolving to decl, copying decl's type and
// identifier across (a declaration's own name, not a use-site alias).
func (a *Arena) Ref(decl *Node) *Node {
	r := a.New(KindRef)
	r.Ident = decl.Ident
	r.Type = decl.Type
	r.Ref = decl
	return r
}

// IntLit returns a fresh integer T_LITERAL of the given type (may be nil
// for an untyped universal integer, matching universal_integer literals
// produced by the checker before a context forces a type on them).
func (a *Arena) IntLit(v int64, t *Type) *Node {
	n := a.New(KindLiteral)
	n.LitKind = LitInt
	n.IVal = v
	n.Type = t
	return n
}

// RealLit returns a fresh real T_LITERAL.
func (a *Arena) RealLit(v float64, t *Type) *Node {
	n := a.New(KindLiteral)
	n.LitKind = LitReal
	n.RVal = v
	n.Type = t
	return n
}

// BoolLit returns a fresh boolean T_LITERAL (IVal 0/1), matching the
// reference compiler's convention of representing BOOLEAN as a 2-valued
// enumeration whose literal encoding is an integer.
func (a *Arena) BoolLit(v bool, t *Type) *Node {
	n := a.New(KindLiteral)
	n.LitKind = LitBool
	if v {
		n.IVal = 1
	}
	n.Type = t
	return n
}

// StringLit returns a fresh T_LITERAL carrying a character array, used by
// array-element extraction (spec §4.4).
func (a *Arena) StringLit(s string, t *Type) *Node {
	n := a.New(KindLiteral)
	n.LitKind = LitString
	n.SVal = s
	n.Chars = []byte(s)
	n.Type = t
	return n
}

// CallBuiltin constructs a T_FCALL against a built-in whose name matches one
// of the evaluator's recognised operators (spec §4.1), with positional
// arguments. The callee is a fresh, port-less T_FUNC_DECL tagged with the
// "builtin" attribute, which is what eval.Fold looks up, the same way the
// reference compiler tags a synthesised call's ref.
func (a *Arena) CallBuiltin(name string, resultType *Type, args ...*Node) *Node {
	n := a.New(KindFCall)
	n.Ident = name
	n.Type = resultType
	decl := a.New(KindFuncDecl)
	decl.Ident = name
	decl.SetAttrStr("builtin", name)
	n.Ref = decl
	for _, arg := range args {
		n.Params = append(n.Params, Param{Kind: ParamPos, Value: arg})
	}
	return n
}

// AddStmt, AddDecl, AddWaveform are thin helpers kept for readability at
// call sites building processes by hand (tests, fixture).

func (n *Node) AddStmt(s *Node)        { n.Stmts = append(n.Stmts, s) }
func (n *Node) AddDecl(d *Node)        { n.Decls = append(n.Decls, d) }
func (n *Node) AddElseStmt(s *Node)    { n.Else = append(n.Else, s) }
func (n *Node) AddWaveform(w Waveform) { n.Waveforms = append(n.Waveforms, w) }
func (n *Node) AddParam(p Param)       { n.Params = append(n.Params, p) }
func (n *Node) AddAssoc(a Assoc)       { n.Assocs = append(n.Assocs, a) }
func (n *Node) AddCond(c Cond)         { n.Conds = append(n.Conds, c) }
