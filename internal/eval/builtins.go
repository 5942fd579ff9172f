package eval

import (
	"math"

	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"
)

// builtinFunc computes a folded result from already-literal arguments in
// declared-port order, returning ok=false when the operation cannot be
// folded at compile time (division by zero, mainly) — the caller (foldCall)
// then returns the original, un-folded call, per spec §4.1: "Division by
// zero leaves the call un-folded."
type builtinFunc func(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool)

var booleanType = &ir.Type{Name: "boolean"}

// builtins mirrors the operator set named in spec §4.1. Integer arithmetic
// wraps in 64-bit two's complement by relying on Go's defined signed
// integer overflow behaviour; it never panics here (the backend is
// responsible for the bounds checks the comment in §4.1 describes).
var builtins = map[string]builtinFunc{
	"eq":  cmpFunc(func(c int) bool { return c == 0 }),
	"neq": cmpFunc(func(c int) bool { return c != 0 }),
	"lt":  cmpFunc(func(c int) bool { return c < 0 }),
	"leq": cmpFunc(func(c int) bool { return c <= 0 }),
	"gt":  cmpFunc(func(c int) bool { return c > 0 }),
	"geq": cmpFunc(func(c int) bool { return c >= 0 }),

	"add": arithFunc(func(x, y int64) int64 { return x + y }, func(x, y float64) float64 { return x + y }),
	"sub": arithFunc(func(x, y int64) int64 { return x - y }, func(x, y float64) float64 { return x - y }),
	"mul": arithFunc(func(x, y int64) int64 { return x * y }, func(x, y float64) float64 { return x * y }),

	"div": divFunc,
	"mod": modFunc,
	"rem": remFunc,

	"neg": negFunc,
	"abs": absFunc,
	"exp": expFunc,

	"not": notFunc,
	"and": boolFunc(func(x, y bool) bool { return x && y }),
	"or":  boolFunc(func(x, y bool) bool { return x || y }),

	"succ": stepFunc(1),
	"pred": stepFunc(-1),

	"ascending": ascendingFunc,
}

func numeric(n *ir.Node) (i int64, r float64, isReal bool, ok bool) {
	switch n.LitKind {
	case ir.LitInt, ir.LitBool, ir.LitEnum:
		return n.IVal, 0, false, true
	case ir.LitReal:
		return 0, n.RVal, true, true
	default:
		return 0, 0, false, false
	}
}

func cmpFunc(pred func(c int) bool) builtinFunc {
	return func(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool) {
		if len(args) != 2 {
			return nil, false
		}
		xi, xr, xReal, ok1 := numeric(args[0])
		yi, yr, _, ok2 := numeric(args[1])
		if !ok1 || !ok2 {
			return nil, false
		}
		var c int
		if xReal {
			switch {
			case xr < yr:
				c = -1
			case xr > yr:
				c = 1
			}
		} else {
			switch {
			case xi < yi:
				c = -1
			case xi > yi:
				c = 1
			}
		}
		rt := resultType
		if rt == nil {
			rt = booleanType
		}
		return a.BoolLit(pred(c), rt), true
	}
}

func arithFunc(intOp func(x, y int64) int64, realOp func(x, y float64) float64) builtinFunc {
	return func(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool) {
		if len(args) != 2 {
			return nil, false
		}
		xi, xr, xReal, ok1 := numeric(args[0])
		yi, yr, yReal, ok2 := numeric(args[1])
		if !ok1 || !ok2 {
			return nil, false
		}
		if xReal || yReal {
			return a.RealLit(realOp(xr, yr), resultType), true
		}
		return a.IntLit(intOp(xi, yi), resultType), true
	}
}

func divFunc(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool) {
	if len(args) != 2 {
		return nil, false
	}
	xi, xr, xReal, ok1 := numeric(args[0])
	yi, yr, yReal, ok2 := numeric(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	if xReal || yReal {
		if yr == 0 {
			return nil, false
		}
		return a.RealLit(xr/yr, resultType), true
	}
	if yi == 0 {
		return nil, false
	}
	return a.IntLit(xi/yi, resultType), true
}

// modFunc implements VHDL "mod": result has the sign of the right operand.
func modFunc(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool) {
	if len(args) != 2 {
		return nil, false
	}
	xi, _, _, ok1 := numeric(args[0])
	yi, _, _, ok2 := numeric(args[1])
	if !ok1 || !ok2 || yi == 0 {
		return nil, false
	}
	m := xi % yi
	if m != 0 && (m < 0) != (yi < 0) {
		m += yi
	}
	return a.IntLit(m, resultType), true
}

// remFunc implements VHDL "rem": result has the sign of the dividend,
// i.e. Go's native "%" semantics for int64.
func remFunc(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool) {
	if len(args) != 2 {
		return nil, false
	}
	xi, _, _, ok1 := numeric(args[0])
	yi, _, _, ok2 := numeric(args[1])
	if !ok1 || !ok2 || yi == 0 {
		return nil, false
	}
	return a.IntLit(xi%yi, resultType), true
}

func negFunc(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool) {
	if len(args) != 1 {
		return nil, false
	}
	xi, xr, xReal, ok := numeric(args[0])
	if !ok {
		return nil, false
	}
	if xReal {
		return a.RealLit(-xr, resultType), true
	}
	return a.IntLit(-xi, resultType), true
}

func absFunc(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool) {
	if len(args) != 1 {
		return nil, false
	}
	xi, xr, xReal, ok := numeric(args[0])
	if !ok {
		return nil, false
	}
	if xReal {
		return a.RealLit(math.Abs(xr), resultType), true
	}
	if xi < 0 {
		xi = -xi
	}
	return a.IntLit(xi, resultType), true
}

func expFunc(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool) {
	if len(args) != 2 {
		return nil, false
	}
	xi, xr, xReal, ok1 := numeric(args[0])
	yi, _, _, ok2 := numeric(args[1])
	if !ok1 || !ok2 || yi < 0 {
		return nil, false
	}
	if xReal {
		return a.RealLit(math.Pow(xr, float64(yi)), resultType), true
	}
	var r int64 = 1
	for i := int64(0); i < yi; i++ {
		r *= xi
	}
	return a.IntLit(r, resultType), true
}

func notFunc(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool) {
	if len(args) != 1 || args[0].LitKind != ir.LitBool {
		return nil, false
	}
	rt := resultType
	if rt == nil {
		rt = booleanType
	}
	return a.BoolLit(args[0].IVal == 0, rt), true
}

func boolFunc(op func(x, y bool) bool) builtinFunc {
	return func(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool) {
		if len(args) != 2 || args[0].LitKind != ir.LitBool || args[1].LitKind != ir.LitBool {
			return nil, false
		}
		rt := resultType
		if rt == nil {
			rt = booleanType
		}
		return a.BoolLit(op(args[0].IVal != 0, args[1].IVal != 0), rt), true
	}
}

func stepFunc(delta int64) builtinFunc {
	return func(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool) {
		if len(args) != 1 {
			return nil, false
		}
		xi, _, xReal, ok := numeric(args[0])
		if !ok || xReal {
			return nil, false
		}
		n := a.IntLit(xi+delta, resultType)
		n.LitKind = args[0].LitKind // succ/pred on an enum literal stays an enum literal
		return n, true
	}
}

// ascendingFunc folds 'ascending(dim, obj) only when obj is already a
// literal carrying a known boolean direction — in practice this builtin is
// almost always left un-folded by Fold (its second argument is a run-time
// object reference, not a literal), and the direction test instead happens
// in generated code; see internal/simplify's §4.7 for-loop expansion.
func ascendingFunc(a *ir.Arena, resultType *ir.Type, args []*ir.Node) (*ir.Node, bool) {
	if len(args) != 2 || args[1].LitKind != ir.LitBool {
		return nil, false
	}
	return args[1], true
}
