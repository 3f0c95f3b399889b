package strs

import "testing"

func TestIntern_SameContentSamePointer(t *testing.T) {
	tbl := NewTable(0x1234)
	a := tbl.Intern("hello")
	b := tbl.Intern("hello")
	if a != b {
		t.Fatal("interning the same content twice returned different objects")
	}
	if tbl.Count() != 1 {
		t.Fatalf("count = %d, want 1", tbl.Count())
	}
}

func TestIntern_DifferentContentDifferentPointer(t *testing.T) {
	tbl := NewTable(0x1234)
	a := tbl.Intern("hello")
	b := tbl.Intern("world")
	if a == b {
		t.Fatal("distinct content interned to the same object")
	}
	if tbl.Count() != 2 {
		t.Fatalf("count = %d, want 2", tbl.Count())
	}
}

func TestIntern_ResizeDoesNotLoseEntries(t *testing.T) {
	tbl := NewTable(1)
	want := make(map[string]*Interned)
	for i := 0; i < 200; i++ {
		s := string(rune('a' + i%26))
		for j := 0; j <= i/26; j++ {
			s += string(rune('a' + j%26))
		}
		want[s] = tbl.Intern(s)
	}
	for s, ptr := range want {
		if got := tbl.Intern(s); got != ptr {
			t.Fatalf("after resize, interning %q returned a different object", s)
		}
	}
}

func TestRemove(t *testing.T) {
	tbl := NewTable(0)
	a := tbl.Intern("gone")
	tbl.Remove(a)
	if tbl.Count() != 0 {
		t.Fatalf("count = %d, want 0 after remove", tbl.Count())
	}
	b := tbl.Intern("gone")
	if b == a {
		t.Fatal("removed entry's pointer was reused; expected a fresh allocation")
	}
}

func TestNewLong_NotInterned(t *testing.T) {
	tbl := NewTable(0)
	a := tbl.NewLong("a long string, not interned")
	b := tbl.NewLong("a long string, not interned")
	if a == b {
		t.Fatal("long strings must not be interned")
	}
	if !Equal(a, b) {
		t.Fatal("equal-content long strings should compare equal by value")
	}
}

func TestHashOf_LazyForLongStrings(t *testing.T) {
	tbl := NewTable(7)
	s := tbl.NewLong("computed lazily")
	h1 := s.HashOf(tbl.Seed())
	h2 := s.HashOf(tbl.Seed())
	if h1 != h2 {
		t.Fatal("long string hash should be stable once computed")
	}
}
