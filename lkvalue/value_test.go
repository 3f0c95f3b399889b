package lkvalue

import (
	"testing"

	"github.com/embedlang/lkcore/strs"
)

func TestIsValid(t *testing.T) {
	if !IsValid(nil) {
		t.Fatal("Go nil (Lua nil) must be a valid value")
	}
	if IsValid(InvalidSlot) {
		t.Fatal("InvalidSlot must not be reported valid")
	}
}

func TestTypeTests(t *testing.T) {
	if !IsInteger(int64(1)) || IsInteger(1.0) {
		t.Fatal("IsInteger should only accept int64")
	}
	if !IsFloat(1.5) || IsFloat(int64(1)) {
		t.Fatal("IsFloat should only accept float64")
	}
	if !IsBoolean(true) || IsBoolean(1) {
		t.Fatal("IsBoolean should only accept bool")
	}
}

func TestIsString_InternedAndPlain(t *testing.T) {
	tbl := strs.NewTable(1)
	is := tbl.Intern("hi")
	if !IsString(is) {
		t.Fatal("interned string should report IsString")
	}
	if !IsString("hi") {
		t.Fatal("bare Go string should report IsString")
	}
	if IsString(42) {
		t.Fatal("integer must not report IsString")
	}
}

func TestStringContent(t *testing.T) {
	tbl := strs.NewTable(1)
	is := tbl.Intern("hi")
	if s, ok := StringContent(is); !ok || s != "hi" {
		t.Fatalf("got %q,%v want hi,true", s, ok)
	}
	if s, ok := StringContent("bare"); !ok || s != "bare" {
		t.Fatalf("got %q,%v want bare,true", s, ok)
	}
	if _, ok := StringContent(42); ok {
		t.Fatal("StringContent should reject non-strings")
	}
}

func TestIsShortLongString(t *testing.T) {
	tbl := strs.NewTable(1)
	short := tbl.Intern("hi")
	long := tbl.NewLong("a very long string indeed, well beyond forty bytes of content")
	if !IsShortString(short) || IsLongString(short) {
		t.Fatal("short interned string misclassified")
	}
	if !IsLongString(long) || IsShortString(long) {
		t.Fatal("long string misclassified")
	}
}
