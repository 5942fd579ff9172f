// Package eval implements the constant evaluator described in spec §4.1:
// given a tree it returns either the literal it reduces to, or the
// original tree unchanged. It never errors and never mutates its input;
// every branch returns a fresh literal, a constant's or unit's own
// initializer node, or the argument itself.
package eval

import (
	"math"

	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"
)

// Fold attempts to reduce t to a literal. It is the direct analogue of the
// reference compiler's `eval()`/`simp_ref()`/`simp_type_conv()` trio,
// collapsed into one entry point because in this tree model the "is this
// foldable" decision is keyed off Kind exactly the way those three
// functions are each keyed off one Kind.
func Fold(a *ir.Arena, t *ir.Node) *ir.Node {
	if t == nil {
		return t
	}
	switch t.Kind {
	case ir.KindLiteral:
		return t

	case ir.KindRef:
		return foldRef(t)

	case ir.KindFCall:
		return foldCall(a, t)

	case ir.KindTypeConv:
		return foldTypeConv(a, t)

	default:
		return t
	}
}

// foldRef implements spec §4.1's T_REF rule: a non-array constant whose
// initializer is itself a literal (or a reference to an enum literal)
// folds to that initializer; a reference to a physical unit declaration
// (e.g. `ns`, `ms`) folds to the unit's value.
func foldRef(t *ir.Node) *ir.Node {
	decl := t.Ref
	if decl == nil {
		return t
	}

	switch decl.Kind {
	case ir.KindConstDecl:
		if decl.Type != nil && decl.Type.IsArray {
			return t
		}
		init := decl.Value
		if init == nil {
			return t
		}
		switch init.Kind {
		case ir.KindLiteral:
			return init
		case ir.KindRef:
			if init.Ref != nil && init.Ref.Kind == ir.KindEnumLit {
				return init
			}
			return t
		default:
			return t
		}

	case ir.KindUnitDecl:
		if decl.Value != nil {
			return decl.Value
		}
		return t

	default:
		return t
	}
}

// foldCall implements spec §4.1's T_FCALL rule. The simplifier is
// responsible for normalising arguments to positional order (internal
// /simplify's call-argument normalisation, §4.3) before Fold ever sees a
// call; Fold itself only looks at Params in declared order.
func foldCall(a *ir.Arena, t *ir.Node) *ir.Node {
	if t.Ref == nil {
		return t
	}
	name, ok := t.Ref.AttrStr("builtin")
	if !ok {
		return t
	}
	fn, ok := builtins[name]
	if !ok {
		return t
	}

	args := make([]*ir.Node, len(t.Params))
	for i, p := range t.Params {
		args[i] = p.Value
		if args[i].Kind != ir.KindLiteral {
			return t // not all arguments folded yet
		}
	}

	result, ok := fn(a, t.Type, args)
	if !ok {
		return t
	}
	return result
}

func foldTypeConv(a *ir.Arena, t *ir.Node) *ir.Node {
	if len(t.Params) != 1 {
		return t
	}
	operand := t.Params[0].Value
	if operand.Kind != ir.KindLiteral {
		return t
	}

	switch {
	case operand.LitKind == ir.LitInt && t.Type != nil && isRealType(t.Type):
		return a.RealLit(float64(operand.IVal), t.Type)
	case operand.LitKind == ir.LitReal && t.Type != nil && !isRealType(t.Type):
		return a.IntLit(int64(math.Trunc(operand.RVal)), t.Type)
	default:
		return t
	}
}

// isRealType is a narrow stand-in for the checker's type_kind() query: a
// Type is "real" in this tree model exactly when its Name is "real" or
// "REAL"; every other type is treated as integer-like.
func isRealType(t *ir.Type) bool {
	return t.Name == "real" || t.Name == "REAL"
}

// FoldedInt reports whether t folds to an integer literal and returns its
// value, mirroring the reference compiler's folded_int() helper used
// throughout simp.c to decide whether a rewrite applies.
func FoldedInt(a *ir.Arena, t *ir.Node) (int64, bool) {
	f := Fold(a, t)
	if f.Kind == ir.KindLiteral && f.LitKind == ir.LitInt {
		return f.IVal, true
	}
	return 0, false
}

// FoldedBool mirrors folded_bool().
func FoldedBool(a *ir.Arena, t *ir.Node) (bool, bool) {
	f := Fold(a, t)
	if f.Kind == ir.KindLiteral && f.LitKind == ir.LitBool {
		return f.IVal != 0, true
	}
	return false, false
}

// FoldedReal mirrors folded_real().
func FoldedReal(a *ir.Arena, t *ir.Node) (float64, bool) {
	f := Fold(a, t)
	if f.Kind == ir.KindLiteral && f.LitKind == ir.LitReal {
		return f.RVal, true
	}
	return 0, false
}
