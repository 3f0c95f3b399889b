package gc

import "testing"

func TestRealloc_DebtAccounting(t *testing.T) {
	a := NewAllocator(nil, nil)
	a.Realloc(0, 100)
	if a.Debt != 100 {
		t.Fatalf("debt = %d, want 100", a.Debt)
	}
	a.Realloc(100, 40)
	if a.Debt != 40 {
		t.Fatalf("debt = %d, want 40", a.Debt)
	}
}

func TestRealloc_IncrementalStepOnDebtCrossingZero(t *testing.T) {
	steps := 0
	a := NewAllocator(nil, func() { steps++ })
	a.Realloc(0, 10)
	a.Realloc(10, 0) // debt goes from 10 to 0 — crosses back to <= 0
	if steps != 1 {
		t.Fatalf("steps = %d, want 1", steps)
	}
}

func TestRealloc_EmergencyCollectThenRetry(t *testing.T) {
	freed := false
	a := NewAllocator(func() { freed = true }, nil)
	a.Limit = 50
	a.Realloc(0, 10)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on still-too-big growth")
		}
		if !freed {
			t.Fatal("emergency collector was not invoked")
		}
	}()
	a.Realloc(10, 1000)
}

func TestGrowVector(t *testing.T) {
	if n := GrowVector(0, 100, "locals"); n != minVectorSize {
		t.Fatalf("got %d, want %d", n, minVectorSize)
	}
	if n := GrowVector(10, 100, "locals"); n != 20 {
		t.Fatalf("got %d, want 20", n)
	}
	if n := GrowVector(60, 100, "locals"); n != 100 {
		t.Fatalf("got %d, want 100 (clamped)", n)
	}
}

func TestGrowVector_TooMany(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic at limit")
		}
	}()
	GrowVector(100, 100, "locals")
}
