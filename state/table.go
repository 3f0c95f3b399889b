package state

import (
	"math"

	"github.com/embedlang/lkcore/gc"
	"github.com/embedlang/lkcore/lkvalue"
	"github.com/embedlang/lkcore/strs"
)

// Table is the runtime's single aggregate type (spec §3): a hybrid of a
// dense array part (used while keys are a contiguous run of positive
// integers starting at 1) and a hash part for everything else, exactly as
// lk_table.go's lkTable was, generalized to use this port's interned
// strings as keys and carry a GC header plus its own metatable pointer
// rather than stashing metatables keyed by a registry string (lobject.h's
// Table: array, hash parts, and a *metatable field all live on the object
// itself).
type Table struct {
	gc.Header
	global *GlobalState

	arr  []any
	hash map[any]any

	metatable *Table

	keys    map[any]any // memoized iteration order for Next
	lastKey any
	changed bool
}

// NewTable allocates a table sized for nArr array slots and nRec hash
// entries up front (lobject.c: luaH_new / luaH_resize hints from OP_NEWTABLE).
func (g *GlobalState) NewTable(nArr, nRec int) *Table {
	t := &Table{global: g}
	if nArr > 0 {
		g.alloc.Realloc(0, nArr)
		t.arr = make([]any, 0, nArr)
	}
	if nRec > 0 {
		g.alloc.Realloc(0, nRec)
		t.hash = make(map[any]any, nRec)
	}
	g.link(&t.Header, tagTable)
	return t
}

func (t *Table) Metatable() *Table          { return t.metatable }
func (t *Table) SetMetatable(mt *Table)     { t.metatable = mt }
func (t *Table) HasMetafield(name string) bool {
	return t.metatable != nil && t.metatable.Get(name) != nil
}

// Len implements the "#" operator: the length of the array part, or a
// border if a nil punched a hole in it (spec's Table invariants; exact
// border selection among several valid ones is Non-goal-equivalent here,
// matching lk_table.go's simpler "len of array part" behavior).
func (t *Table) Len() int { return len(t.arr) }

// maxArraySize bounds how far a single Table's array part can grow
// (lobject.h: MAXASIZE), enforced by growArray's gc.GrowVector call.
const maxArraySize = 1 << 24

// normalizeKey canonicalizes a key the way Lua's table access does:
// floats holding an exact integer value are treated as that integer
// (lvm.c's luaV_finishget border logic), and raw Go strings are interned
// so that short-string keys always compare as their canonical
// *strs.Interned pointer, matching how PushString/GetField arrive at table
// access. Long strings are never interned (lstring.c never gives two long
// strings the same identity), so InternString mints a fresh *strs.Interned
// every call; using that pointer itself as the map key would make equal
// long-string keys collide with nothing (spec §8's "no two live keys are
// raw-equal" invariant), so long keys are canonicalized down to their Go
// string content instead, which Go's map equality already compares by
// value.
func (t *Table) normalizeKey(key any) any {
	if f, ok := key.(float64); ok {
		if i, ok := lkvalue.FloatToInteger(f); ok {
			return i
		}
		return key
	}
	if s, ok := key.(string); ok {
		if t.global == nil {
			return s
		}
		is := t.global.InternString(s)
		if is.IsLong() {
			return is.String()
		}
		return is
	}
	if is, ok := key.(*strs.Interned); ok && is.IsLong() {
		return is.String()
	}
	return key
}

func (t *Table) Get(key any) any {
	key = t.normalizeKey(key)
	if idx, ok := key.(int64); ok && idx >= 1 && idx <= int64(len(t.arr)) {
		return t.arr[idx-1]
	}
	if t.hash == nil {
		return nil
	}
	return t.hash[key]
}

// Put stores val at key, panicking on a nil or NaN key the way the VM's
// OP_SETTABLE does (lvm.c: luaV_settable rejects both before ever calling
// into the table).
func (t *Table) Put(key, val any) {
	if key == nil {
		panic("table index is nil")
	}
	if f, ok := key.(float64); ok && math.IsNaN(f) {
		panic("table index is NaN")
	}
	t.changed = true
	key = t.normalizeKey(key)
	if idx, ok := key.(int64); ok && idx >= 1 {
		arrLen := int64(len(t.arr))
		if idx <= arrLen {
			t.arr[idx-1] = val
			if idx == arrLen && val == nil {
				t.shrinkArray()
			}
			return
		}
		if idx == arrLen+1 {
			if t.hash != nil {
				delete(t.hash, key)
			}
			if val != nil {
				t.growArray(1)
				t.arr = append(t.arr, val)
				t.expandArray()
			}
			return
		}
	}
	if val != nil {
		if t.hash == nil {
			if t.global != nil {
				t.global.alloc.Realloc(0, 8)
			}
			t.hash = make(map[any]any, 8)
		}
		t.hash[key] = val
	} else if t.hash != nil {
		delete(t.hash, key)
	}
}

// growArray accounts for the array part growing by at least n elements,
// doubling its backing capacity via gc.GrowVector instead of leaving it to
// append's own heuristic whenever the current capacity is exhausted
// (lobject.c: luaH_resizearray calls luaM_reallocvector the same way).
func (t *Table) growArray(n int) {
	oldCap := cap(t.arr)
	if len(t.arr)+n <= oldCap {
		return
	}
	newCap := gc.GrowVector(oldCap, maxArraySize, "table array slots")
	for newCap < len(t.arr)+n {
		newCap = gc.GrowVector(newCap, maxArraySize, "table array slots")
	}
	grown := make([]any, len(t.arr), newCap)
	copy(grown, t.arr)
	t.arr = grown
	if t.global != nil {
		t.global.alloc.Realloc(oldCap, newCap)
	}
}

func (t *Table) shrinkArray() {
	for i := len(t.arr) - 1; i >= 0; i-- {
		if t.arr[i] != nil {
			t.arr = t.arr[:i+1]
			return
		}
	}
	t.arr = t.arr[:0]
}

func (t *Table) expandArray() {
	for idx := int64(len(t.arr)) + 1; true; idx++ {
		if t.hash == nil {
			break
		}
		val, found := t.hash[idx]
		if !found {
			break
		}
		delete(t.hash, idx)
		t.growArray(1)
		t.arr = append(t.arr, val)
	}
}

// Next supports stateless iteration (pairs()/lua_next): given the
// previously-returned key (or nil to start), returns the following key, or
// nil when iteration is exhausted. It memoizes a full key order on first
// call, and again when a traversal starts (key nil) after a Put changed
// the table; a Put in mid-traversal keeps the old order. This matches lk_table.go's
// nextKey/initKeys approach rather than tracking a live cursor, so mutating
// a table's hash part mid-traversal only invalidates the order, never
// crashes.
func (t *Table) Next(key any) any {
	if t.keys == nil || (key == nil && t.changed) {
		t.initKeys()
		t.changed = false
	}
	key = t.normalizeKey(key)
	return t.keys[key]
}

func (t *Table) initKeys() {
	t.keys = make(map[any]any)
	var prev any
	for i := range t.arr {
		if t.arr[i] != nil {
			t.keys[prev] = int64(i + 1)
			prev = int64(i + 1)
		}
	}
	for k := range t.hash {
		if t.hash[k] != nil {
			t.keys[prev] = k
			prev = k
		}
	}
	t.lastKey = prev
}

// combine appends other's array part onto t's own, the list-concatenation
// reading of "+" between two tables this runtime supports in place of
// standard Lua's arithmetic error (state/api_arith.go's Arith).
func (t *Table) combine(other *Table) {
	t.changed = true
	t.growArray(len(other.arr))
	t.arr = append(t.arr, other.arr...)
}

// InternString routes a freshly-seen Go string through the GlobalState's
// string table/cache (spec §3), returning the canonical *strs.Interned
// for short strings or a fresh non-interned wrapper for long ones. Short
// strings go through the StringCache first: the cache's row is picked by
// the string's own content hash (this call site has no literal program
// counter to key by, unlike a bytecode LOADK, so the content hash stands
// in for "which call site" — see DESIGN.md), and the row itself still
// dedupes by content against the backing stringTable on a miss.
func (g *GlobalState) InternString(s string) *strs.Interned {
	if len(s) <= shortStringMax {
		key := strs.SiteKey(strs.Hash(s, g.stringTable.Seed()))
		return g.stringCache.Get(key, s)
	}
	return g.stringTable.NewLong(s)
}
