package strs

// HashLimit bounds how many bytes of a long string get folded into its
// hash: step = 1 + (len >> HashLimit), so strings up to 2^HashLimit-1 (31)
// bytes hash every byte and longer ones hash progressively sparser
// (lstring.c: LUAI_HASHLIMIT).
const HashLimit = 5

// Hash mixes seed, the string's length, and a tail-scanning sample of its
// bytes into a 32-bit hash (lstring.c: luaS_hash). seed comes from the
// owning GlobalState and makes hash-flooding attacks on tables keyed by
// untrusted strings impractical across runs.
func Hash(s string, seed uint32) uint32 {
	h := seed ^ uint32(len(s))
	step := (len(s) >> HashLimit) + 1
	for l := len(s); l >= step; l -= step {
		h ^= (h<<5 + h>>2 + uint32(s[l-1]))
	}
	return h
}
