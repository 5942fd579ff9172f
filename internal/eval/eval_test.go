package eval

import (
	"testing"

	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"
)

var intType = &ir.Type{Name: "integer"}

func TestFoldLiteralIsIdentity(t *testing.T) {
	a := ir.NewArena()
	lit := a.IntLit(42, intType)
	if got := Fold(a, lit); got != lit {
		t.Fatalf("Fold(literal) should return the same node")
	}
}

func TestFoldConstDeclInitializer(t *testing.T) {
	a := ir.NewArena()
	decl := a.New(ir.KindConstDecl)
	decl.Ident = "WIDTH"
	decl.Type = intType
	decl.Value = a.IntLit(8, intType)

	ref := a.Ref(decl)
	got := Fold(a, ref)
	if got.LitKind != ir.LitInt || got.IVal != 8 {
		t.Fatalf("Fold(ref to const) = %v; want literal 8", ir.Dump(got))
	}
}

func TestFoldConstDeclArrayTypeDoesNotFold(t *testing.T) {
	a := ir.NewArena()
	arrType := &ir.Type{Name: "string", IsArray: true}
	decl := a.New(ir.KindConstDecl)
	decl.Type = arrType
	decl.Value = a.StringLit("fast", arrType)

	ref := a.Ref(decl)
	if got := Fold(a, ref); got != ref {
		t.Fatalf("array-typed constant should not fold, got %v", ir.Dump(got))
	}
}

func TestFoldAddSubMul(t *testing.T) {
	a := ir.NewArena()
	cases := []struct {
		name string
		fn   string
		x, y int64
		want int64
	}{
		{"add", "add", 2, 3, 5},
		{"sub", "sub", 10, 4, 6},
		{"mul", "mul", 6, 7, 42},
	}
	for _, c := range cases {
		call := a.CallBuiltin(c.fn, intType, a.IntLit(c.x, intType), a.IntLit(c.y, intType))
		got := Fold(a, call)
		if got.LitKind != ir.LitInt || got.IVal != c.want {
			t.Errorf("%s(%d,%d) = %v; want %d", c.name, c.x, c.y, ir.Dump(got), c.want)
		}
	}
}

func TestFoldDivisionByZeroLeavesUnfolded(t *testing.T) {
	a := ir.NewArena()
	call := a.CallBuiltin("div", intType, a.IntLit(5, intType), a.IntLit(0, intType))
	got := Fold(a, call)
	if got != call {
		t.Fatalf("division by zero should leave the call un-folded, got %v", ir.Dump(got))
	}
}

func TestFoldModSignFollowsDivisor(t *testing.T) {
	a := ir.NewArena()
	call := a.CallBuiltin("mod", intType, a.IntLit(-7, intType), a.IntLit(3, intType))
	got := Fold(a, call)
	if got.IVal != 2 {
		t.Fatalf("-7 mod 3 = %d; want 2", got.IVal)
	}
}

func TestFoldRemSignFollowsDividend(t *testing.T) {
	a := ir.NewArena()
	call := a.CallBuiltin("rem", intType, a.IntLit(-7, intType), a.IntLit(3, intType))
	got := Fold(a, call)
	if got.IVal != -1 {
		t.Fatalf("-7 rem 3 = %d; want -1", got.IVal)
	}
}

func TestFoldNestedCallsFully(t *testing.T) {
	a := ir.NewArena()
	inner := a.CallBuiltin("add", intType, a.IntLit(1, intType), a.IntLit(2, intType))
	outer := a.CallBuiltin("mul", intType, inner, a.IntLit(10, intType))

	// Simulate the post-order rewrite: fold children before the parent.
	outer.Params[0].Value = Fold(a, outer.Params[0].Value)
	got := Fold(a, outer)
	if got.IVal != 30 {
		t.Fatalf("(1+2)*10 = %d; want 30", got.IVal)
	}
}

func TestFoldNotAllArgumentsFoldedLeavesCallUnchanged(t *testing.T) {
	a := ir.NewArena()
	sig := a.New(ir.KindSignalDecl)
	sig.Ident = "s"
	call := a.CallBuiltin("add", intType, a.Ref(sig), a.IntLit(1, intType))
	if got := Fold(a, call); got != call {
		t.Fatalf("call with a non-literal argument must return unchanged")
	}
}

func TestFoldTypeConvIntToReal(t *testing.T) {
	a := ir.NewArena()
	realType := &ir.Type{Name: "real"}
	conv := a.New(ir.KindTypeConv)
	conv.Type = realType
	conv.Params = []ir.Param{{Kind: ir.ParamPos, Value: a.IntLit(3, intType)}}

	got := Fold(a, conv)
	if got.LitKind != ir.LitReal || got.RVal != 3.0 {
		t.Fatalf("Fold(TYPE_CONV int->real) = %v; want 3.0", ir.Dump(got))
	}
}

func TestEvalRoundTripLaw(t *testing.T) {
	// For every folded FCALL f(a1,...) whose result equals L, re-entering the
	// same call with literal actuals yields L again (spec §8 round-trip law).
	a := ir.NewArena()
	lits := []*ir.Node{a.IntLit(0, intType), a.IntLit(1, intType), a.IntLit(-5, intType), a.IntLit(100, intType)}
	for _, l := range lits {
		if got := Fold(a, l); got != l {
			t.Fatalf("eval(L) != L for literal %v", ir.Dump(l))
		}
	}

	call := a.CallBuiltin("add", intType, a.IntLit(2, intType), a.IntLit(3, intType))
	folded := Fold(a, call)
	call2 := a.CallBuiltin("add", intType, folded, a.IntLit(0, intType))
	refolded := Fold(a, call2)
	if refolded.IVal != folded.IVal {
		t.Fatalf("round-trip law violated: %d != %d", refolded.IVal, folded.IVal)
	}
}
