package strs

import (
	glc "git.lolli.tech/lollipopkit/go_lru_cacher"
)

// cacheRows and cacheCols give the StringCache its fixed N x M shape
// (lstring.c: STRCACHE_N=53, STRCACHE_M=2). The row count keeps the
// original's prime 53, and Get picks a row by key modulo cacheRows.
const (
	cacheRows = 53
	cacheCols = 2
)

// SiteKey stands in for the host's "which C-string-literal call site is
// this" identity (spec §3: the cache is keyed by the *pointer* of the
// literal, not its contents, so the same literal reused at the same call
// site hits without re-hashing). Embedders mint one SiteKey per call site
// they want cached (e.g. derived from a program counter or a Go string's
// backing-array address) and pass it into Get every time they intern that
// literal.
type SiteKey uintptr

// StringCache short-circuits re-interning of repeatedly-pushed string
// literals. Each row is an independent small LRU (go_lru_cacher.Cacher)
// holding up to cacheCols entries; a miss interns fresh and evicts the
// row's oldest entry (lstring.c: luaS_new's shift-down-by-one on miss).
type StringCache struct {
	rows  [cacheRows]*glc.Cacher
	table *Table
}

func NewStringCache(table *Table) *StringCache {
	sc := &StringCache{table: table}
	for i := range sc.rows {
		sc.rows[i] = glc.NewCacher(cacheCols)
	}
	return sc
}

// Get returns the interned string for s at call site key, using the cached
// entry if key's row already holds one for this exact content, else
// interning through the Table and caching the result.
func (sc *StringCache) Get(key SiteKey, s string) *Interned {
	row := sc.rows[uint(key)%cacheRows]
	if v, ok := row.Get(s); ok {
		if is, ok := v.(*Interned); ok {
			return is
		}
	}
	is := sc.table.Intern(s)
	row.Set(s, is)
	return is
}

// Clear drops every cache entry outright, the way a full collection does
// (lstring.c: luaS_clearcache resets entries whose target didn't survive
// the mark phase; go_lru_cacher exposes no per-key eviction, so a cleared
// row is rebuilt from scratch rather than entry-by-entry). Cheap: rows are
// capped at cacheCols entries each, and a miss just re-interns through the
// Table, which is itself still valid.
func (sc *StringCache) Clear() {
	for i := range sc.rows {
		sc.rows[i] = glc.NewCacher(cacheCols)
	}
}
