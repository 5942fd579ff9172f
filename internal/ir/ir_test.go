package ir

import "testing"

func TestUniqIsMonotonic(t *testing.T) {
	a := NewArena()
	first := a.Uniq("cond")
	second := a.Uniq("cond")
	if first == second {
		t.Fatalf("Uniq returned the same name twice: %q", first)
	}
}

func TestAttrBag(t *testing.T) {
	a := NewArena()
	w := a.New(KindWait)
	if w.Static() {
		t.Fatalf("fresh node should not be static")
	}
	w.SetAttrInt("static", 1)
	if !w.Static() {
		t.Fatalf("expected static=1 to be observable via Static()")
	}
	if _, ok := w.AttrStr("static"); ok {
		t.Fatalf("static is an int attribute, AttrStr should miss")
	}

	ref := a.New(KindAttrRef)
	ref.SetAttrStr("builtin", "delayed")
	got, ok := ref.AttrStr("builtin")
	if !ok || got != "delayed" {
		t.Fatalf("AttrStr(builtin) = %q, %v; want \"delayed\", true", got, ok)
	}
}

func TestHasTriggerForDedups(t *testing.T) {
	a := NewArena()
	sig := a.New(KindSignalDecl)
	sig.Ident = "s"

	wait := a.New(KindWait)
	r1 := a.Ref(sig)
	wait.AddTrigger(r1)

	if !wait.HasTriggerFor(sig) {
		t.Fatalf("expected trigger for sig to be found by declaration identity")
	}

	other := a.New(KindSignalDecl)
	other.Ident = "t"
	if wait.HasTriggerFor(other) {
		t.Fatalf("unrelated declaration should not be considered triggered")
	}
}

func TestContainsFindsNestedKind(t *testing.T) {
	a := NewArena()
	top := a.New(KindProcess)
	inner := a.New(KindCAssign)
	top.AddStmt(inner)

	if !Contains(top, KindCAssign) {
		t.Fatalf("expected Contains to find nested CASSIGN")
	}
	if Contains(top, KindSelect) {
		t.Fatalf("did not expect to find SELECT")
	}
}
