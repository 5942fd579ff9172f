package simplify

import (
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/eval"
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"
)

// simplifyIf implements spec §4.6's IF rule. A constant-true condition
// replaces the node with its then-part; constant-false with its else-part
// (deleting the statement entirely when there is no else).
func (c *ctx) simplifyIf(t *ir.Node) *ir.Node {
	v, ok := eval.FoldedBool(c.arena, t.Value)
	if !ok {
		return t
	}

	if v {
		if len(t.Stmts) == 1 {
			return t.Stmts[0]
		}
		b := c.arena.New(ir.KindBlock)
		b.Ident = t.Ident
		b.Loc = t.Loc
		b.Stmts = t.Stmts
		return b
	}

	switch len(t.Else) {
	case 0:
		return nil
	case 1:
		return t.Else[0]
	default:
		b := c.arena.New(ir.KindBlock)
		b.Ident = t.Ident
		b.Loc = t.Loc
		b.Stmts = t.Else
		return b
	}
}

// simplifyCase implements spec §4.6/§4(ADDED) CASE rule: when the
// scrutinee folds to a constant integer, the first matching NAMED choice
// wins, falling through to OTHERS; RANGE choices are folded too (this
// repository's resolution of Open Question 9(b) — see DESIGN.md).
func (c *ctx) simplifyCase(t *ir.Node) *ir.Node {
	scrutinee, ok := eval.FoldedInt(c.arena, t.Value)
	if !ok {
		return t
	}

	for _, a := range t.Assocs {
		switch a.Kind {
		case ir.AssocNamed:
			if choice, ok := eval.FoldedInt(c.arena, a.Name); ok && choice == scrutinee {
				return a.Value
			}
		case ir.AssocRange:
			lo, okL := eval.FoldedInt(c.arena, a.Range.Left)
			hi, okR := eval.FoldedInt(c.arena, a.Range.Right)
			if !okL || !okR {
				continue
			}
			if a.Range.Kind == ir.RangeDownto {
				lo, hi = hi, lo
			}
			if scrutinee >= lo && scrutinee <= hi {
				return a.Value
			}
		case ir.AssocOthers:
			return a.Value
		case ir.AssocPos:
			panic(structuralf("simplifyCase", "positional choice in CASE statement"))
		}
	}

	return t
}

// simplifyWhile implements spec §4.2: delete the loop when its condition
// folds to constant false; a loop with no explicit condition (the
// unconditional `while true` synthesised by §4.7's `for` expansion) is
// left untouched.
func (c *ctx) simplifyWhile(t *ir.Node) *ir.Node {
	if t.Value == nil {
		return t
	}
	if v, ok := eval.FoldedBool(c.arena, t.Value); ok && !v {
		return nil
	}
	return t
}

// simplifyFor implements spec §4.7's `for` expansion, turning a for loop
// over a declared loop variable into a labelled BLOCK containing an
// optional null-range guard, an initialiser, and an unconditional WHILE
// whose body ends in an EXIT-when and a direction-appropriate step.
func (c *ctx) simplifyFor(t *ir.Node) *ir.Node {
	if len(t.Decls) == 0 {
		panic(structuralf("simplifyFor", "for loop missing loop-variable declaration"))
	}
	loopVar := t.Decls[0]
	r := t.Rng
	if r == nil {
		panic(structuralf("simplifyFor", "for loop missing range"))
	}

	block := c.arena.New(ir.KindBlock)
	block.Ident = t.Ident
	block.Loc = t.Loc

	varRef := c.arena.Ref(loopVar)

	var test *ir.Node
	switch r.Kind {
	case ir.RangeTo:
		test = c.arena.CallBuiltin("leq", booleanType(), r.Left, r.Right)
	case ir.RangeDownto:
		test = c.arena.CallBuiltin("geq", booleanType(), r.Left, r.Right)
	case ir.RangeDyn, ir.RangeRdyn:
		test = nil
	}

	container := block
	if test != nil {
		guard := c.arena.New(ir.KindIf)
		guard.Ident = c.arena.Uniq("null_check")
		guard.Loc = t.Loc
		guard.Value = test
		block.AddStmt(guard)
		container = guard
	}

	init := c.arena.New(ir.KindVarAssign)
	init.Ident = c.arena.Uniq("init")
	init.Target = varRef
	if r.Kind == ir.RangeRdyn {
		init.Value = r.Right
	} else {
		init.Value = r.Left
	}
	init.SetAttrInt("elide_bounds", 1)

	wh := c.arena.New(ir.KindWhile)
	wh.Ident = t.Ident
	wh.Loc = t.Loc
	wh.Stmts = t.Stmts

	cmp := c.arena.CallBuiltin("eq", booleanType(), varRef, pick(r.Kind == ir.RangeRdyn, r.Left, r.Right))

	exit := c.arena.New(ir.KindExit)
	exit.Ident = c.arena.Uniq("for_exit")
	exit.Value = cmp
	exit.Ident2 = t.Ident

	var next *ir.Node
	switch r.Kind {
	case ir.RangeDyn, ir.RangeRdyn:
		dim := c.arena.IntLit(1, nil)
		ascOp := "succ"
		descOp := "pred"
		if r.Kind == ir.RangeRdyn {
			ascOp, descOp = descOp, ascOp
		}
		asc := c.arena.CallBuiltin("ascending", booleanType(), dim, r.Source)

		ifNext := c.arena.New(ir.KindIf)
		ifNext.Ident = c.arena.Uniq("for_next")
		ifNext.Value = asc

		a1 := c.arena.New(ir.KindVarAssign)
		a1.Ident = c.arena.Uniq("for_next_asc")
		a1.Target = varRef
		a1.Value = c.arena.CallBuiltin(ascOp, loopVar.Type, varRef)
		a1.SetAttrInt("elide_bounds", 1)

		a2 := c.arena.New(ir.KindVarAssign)
		a2.Ident = c.arena.Uniq("for_next_dsc")
		a2.Target = varRef
		a2.Value = c.arena.CallBuiltin(descOp, loopVar.Type, varRef)
		a2.SetAttrInt("elide_bounds", 1)

		ifNext.AddStmt(a1)
		ifNext.AddElseStmt(a2)
		next = ifNext

	case ir.RangeTo, ir.RangeDownto:
		op := "succ"
		if r.Kind == ir.RangeDownto {
			op = "pred"
		}
		va := c.arena.New(ir.KindVarAssign)
		va.Ident = c.arena.Uniq("for_next")
		va.Target = varRef
		va.Value = c.arena.CallBuiltin(op, loopVar.Type, varRef)
		va.SetAttrInt("elide_bounds", 1)
		next = va
	}

	wh.AddStmt(exit)
	wh.AddStmt(next)

	container.AddStmt(init)
	container.AddStmt(wh)

	return block
}

func pick(cond bool, a, b *ir.Node) *ir.Node {
	if cond {
		return a
	}
	return b
}

var boolT = &ir.Type{Name: "boolean"}

func booleanType() *ir.Type { return boolT }

// simplifyIfGenerate implements spec §4.2/§4's IF_GENERATE rule: a
// statically-true condition replaces the generate with its inner BLOCK; a
// statically-false one deletes it; an unresolved condition is left
// unchanged (elaboration, external to this component, is expected to
// resolve it instead).
func (c *ctx) simplifyIfGenerate(t *ir.Node) *ir.Node {
	v, ok := eval.FoldedBool(c.arena, t.Value)
	if !ok {
		return t
	}
	if !v {
		return nil
	}
	b := c.arena.New(ir.KindBlock)
	b.Ident = t.Ident
	b.Loc = t.Loc
	b.Decls = t.Decls
	b.Stmts = t.Stmts
	return b
}
