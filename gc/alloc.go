package gc

import "fmt"

// EmergencyCollector is the callback the allocator invokes when a growth
// request cannot be satisfied under the configured limit. It must run a
// full collection with finalizers deferred; it returns nothing, and
// Realloc re-checks the limit itself afterwards (spec §4.1: "the shim
// first asks the GC for an emergency full collection... and retries").
type EmergencyCollector func()

// IncrementalStep is invoked once every time GCdebt goes from above zero to
// zero or below
// (spec §4.1: "when debt crosses zero the next GC check step runs one
// incremental slice").
type IncrementalStep func()

// ErrMemory is the sentinel panic value raised when a growth request fails
// even after an emergency collection (spec §7: memory-error).
type ErrMemory struct{ Request int }

func (e ErrMemory) Error() string { return "not enough memory" }

// Allocator is the single realloc-style hook every collectable allocation
// in this runtime funnels through (lmem.c: luaM_realloc_), plus the
// GC-debt counter it maintains as a side effect of every call.
type Allocator struct {
	// Limit, if non-zero, caps Debt; exceeding it on growth triggers the
	// emergency-collect-then-retry sequence. Embedders that don't care
	// about simulating memory pressure leave this zero (unbounded).
	Limit int64
	Debt  int64

	emergency EmergencyCollector
	step      IncrementalStep
}

func NewAllocator(emergency EmergencyCollector, step IncrementalStep) *Allocator {
	return &Allocator{emergency: emergency, step: step}
}

// Realloc accounts for a resize from oldSize to newSize bytes. newSize==0
// is a free; oldSize==0 is a fresh allocation. Shrinking never fails.
// Growing past Limit asks the emergency collector to run once and retries;
// if that still doesn't fit, it panics with ErrMemory (caught by the
// nearest PCall per spec §7).
func (a *Allocator) Realloc(oldSize, newSize int) {
	if newSize <= oldSize {
		a.account(oldSize, newSize)
		return
	}
	if a.Limit > 0 && a.Debt+int64(newSize-oldSize) > a.Limit {
		if a.emergency != nil {
			a.emergency()
		}
		if a.Limit > 0 && a.Debt+int64(newSize-oldSize) > a.Limit {
			panic(ErrMemory{Request: newSize - oldSize})
		}
	}
	a.account(oldSize, newSize)
}

func (a *Allocator) account(oldSize, newSize int) {
	before := a.Debt
	a.Debt += int64(newSize) - int64(oldSize)
	if before > 0 && a.Debt <= 0 && a.step != nil {
		a.step()
	}
}

// minVectorSize is the smallest size GrowVector returns (lmem.c:
// MINSIZEARRAY); the per-kind upper limit is GrowVector's limit argument.
const minVectorSize = 4

// GrowVector doubles n (the current element count), clamped to limit, and
// returns the new size. It panics with a named "too many <what>" error
// when n is already at limit (lmem.c: luaM_growaux_), matching the
// spec's overflow-safe vector grow helper.
func GrowVector(n, limit int, what string) int {
	if n >= limit {
		panic(fmt.Sprintf("too many %s (limit is %d)", what, limit))
	}
	if n >= limit/2 {
		return limit
	}
	newSize := n * 2
	if newSize < minVectorSize {
		newSize = minVectorSize
	}
	return newSize
}
