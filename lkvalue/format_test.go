package lkvalue

import "testing"

func TestFormat_Basic(t *testing.T) {
	got := Format("%s is %d years, %f tall%%", "rex", int64(3), 1.2)
	want := "rex is 3 years, 1.200000 tall%"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormat_UnknownVerbPassthrough(t *testing.T) {
	got := Format("%q")
	if got != "%q" {
		t.Fatalf("got %q want %q", got, "%q")
	}
}

func TestFormat_Char(t *testing.T) {
	got := Format("%c", int64('x'))
	if got != "x" {
		t.Fatalf("got %q want %q", got, "x")
	}
}
