// Package strs implements short-string interning and the pointer-keyed
// string cache that sits in front of it (lstring.c), grounded in the
// teacher's state package for how strings flow through table keys and
// constant loading.
package strs

// Table is the global short-string intern table: a chained hash table
// keyed by content, doubling in size as it fills (lstring.c: internshrstr,
// luaS_resize). Every *Interned produced by Intern for the same bytes is
// the same pointer, so short-string equality reduces to pointer equality.
type Table struct {
	buckets []*Interned
	count   int
	seed    uint32
}

// NewTable creates an intern table seeded from seed, which the GlobalState
// should draw from a process-random source so hash-flooding a long-running
// embedder via crafted table keys isn't predictable (lstring.c: luaS_init).
func NewTable(seed uint32) *Table {
	return &Table{buckets: make([]*Interned, 32), seed: seed}
}

func (t *Table) Seed() uint32 { return t.seed }

func (t *Table) bucketOf(h uint32) int {
	return int(h) & (len(t.buckets) - 1)
}

// Intern returns the canonical *Interned for s, allocating one and linking
// it into the table on first sight. Only short strings (len <= SHORT_MAX,
// see api.SHORT_MAX) should be interned; callers are responsible for
// routing long strings to NewLong instead (lstring.c: luaS_newlstr's
// LUAI_MAXSHORTLEN branch).
func (t *Table) Intern(s string) *Interned {
	h := Hash(s, t.seed)
	b := t.bucketOf(h)
	for e := t.buckets[b]; e != nil; e = e.hnext {
		if e.s == s {
			return e
		}
	}
	if t.count >= len(t.buckets) && len(t.buckets) <= (1<<30) {
		t.resize(len(t.buckets) * 2)
		b = t.bucketOf(h)
	}
	e := &Interned{s: s, hash: h, hashed: true, long: false}
	e.hnext = t.buckets[b]
	t.buckets[b] = e
	t.count++
	return e
}

// NewLong wraps a long string (not interned, hash computed lazily on first
// HashOf call) as an *Interned so it shares the same collectable-object
// shape as short strings (lstring.c: luaS_createlngstrobj).
func (t *Table) NewLong(s string) *Interned {
	return &Interned{s: s, long: true}
}

// resize rehashes every live entry into a new bucket array of size
// newSize, growing or shrinking it; each node is pushed onto the head of
// its new bucket, so chain order is not preserved (lstring.c: luaS_resize). Only
// short strings ever live in the table, so every entry here is rehashable
// by its already-known hash.
func (t *Table) resize(newSize int) {
	nb := make([]*Interned, newSize)
	for _, head := range t.buckets {
		for e := head; e != nil; {
			next := e.hnext
			b := int(e.hash) & (newSize - 1)
			e.hnext = nb[b]
			nb[b] = e
			e = next
		}
	}
	t.buckets = nb
}

// Remove unlinks e from the table. A sweep phase calls this for every
// White (unreachable) short string it collects (lstring.c: luaS_remove).
// Once fewer than half the buckets' worth of strings remain, the bucket
// array is halved, never below its initial 32.
func (t *Table) Remove(e *Interned) {
	if e.long {
		return
	}
	b := t.bucketOf(e.hash)
	var prev *Interned
	for cur := t.buckets[b]; cur != nil; cur = cur.hnext {
		if cur == e {
			if prev == nil {
				t.buckets[b] = cur.hnext
			} else {
				prev.hnext = cur.hnext
			}
			t.count--
			if len(t.buckets) > 32 && t.count < len(t.buckets)/2 {
				t.resize(len(t.buckets) / 2)
			}
			return
		}
		prev = cur
	}
}

// Count reports the number of live interned short strings.
func (t *Table) Count() int { return t.count }
