package strs

import "github.com/embedlang/lkcore/gc"

// Interned is the collectable String object (spec §3): short strings are
// interned (identity equals content) and hashed eagerly; long strings are
// not interned and hash lazily, caching the result in Hash once computed.
type Interned struct {
	gc.Header
	s      string
	hash   uint32
	long   bool
	hashed bool // for long strings: has Hash been computed yet?
	extra  int  // short strings: reserved-word code used by the lexer; unused for long strings
	hnext  *Interned
}

func (is *Interned) String() string { return is.s }
func (is *Interned) Len() int       { return len(is.s) }
func (is *Interned) IsLong() bool   { return is.long }
func (is *Interned) Extra() int     { return is.extra }
func (is *Interned) SetExtra(v int) { is.extra = v }

// HashOf returns the string's hash, computing and caching it on first call
// for long strings (lstring.c: luaS_hashlongstr).
func (is *Interned) HashOf(seed uint32) uint32 {
	if is.long && !is.hashed {
		is.hash = Hash(is.s, seed)
		is.hashed = true
	}
	return is.hash
}

// Equal implements spec §8's short/long string equality law: short strings
// compare by reference (the caller should just use Go's == on *Interned for
// that case, which this mirrors), long strings by length then bytes, with a
// reference short-circuit either way.
func Equal(a, b *Interned) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if !a.long || !b.long {
		// two distinct short-string objects are never equal by construction
		return false
	}
	return len(a.s) == len(b.s) && a.s == b.s
}
