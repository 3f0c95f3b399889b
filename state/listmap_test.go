package state_test

import (
	"testing"

	"github.com/embedlang/lkcore/state"
)

func TestHostAPIListTable(t *testing.T) {
	ls := state.New()
	ls.OpenLibs()

	ls.CreateTable(2, 0)
	ls.PushInteger(1)
	ls.SetI(-2, 1)
	ls.PushInteger(2)
	ls.SetI(-2, 2)

	if !ls.IsTable(-1) {
		t.Fatalf("result not table")
	}
	ls.GetI(-1, 1)
	if v := ls.ToInteger(-1); v != 1 {
		t.Fatalf("first val %d", v)
	}
	ls.Pop(1)
	ls.GetI(-1, 2)
	if v := ls.ToInteger(-1); v != 2 {
		t.Fatalf("second val %d", v)
	}
	ls.Pop(1)
	ls.Pop(1)
}

func TestHostAPIMapTable(t *testing.T) {
	ls := state.New()
	ls.OpenLibs()

	ls.CreateTable(0, 1)
	ls.PushInteger(1)
	ls.SetField(-2, "a")

	ls.GetField(-1, "a")
	if v := ls.ToInteger(-1); v != 1 {
		t.Fatalf("map value %d", v)
	}
	ls.Pop(1)
	ls.Pop(1)
}
