package state

import (
	"github.com/embedlang/lkcore/api"
	"github.com/embedlang/lkcore/gc"
	"github.com/embedlang/lkcore/strs"
)

// shortStringMax mirrors api.SHORT_MAX: the byte length at or below which
// a string gets interned rather than wrapped as a standalone long string.
const shortStringMax = api.SHORT_MAX

const tagTable gc.Tag = 1
const tagClosure gc.Tag = 2
const tagUserdata gc.Tag = 3
const tagThread gc.Tag = 4

// GlobalState is the data every coroutine sharing one runtime instance has
// in common: the registry table, per-basic-type metatables, the string
// interning table and cache, the allocator, and the list of every live
// collectable object (spec §2's split between per-thread ExecutionState
// and shared GlobalState, which the teacher's lkState conflated into one
// struct).
type GlobalState struct {
	registry *Table

	// metatables indexed by api.LkType for every type other than Table and
	// full Userdata, which carry their own metatable pointer directly (lstate.h:
	// global_State.mt[LUA_NUMTAGS]).
	metatables [api.LK_TTHREAD + 1]*Table

	stringTable *strs.Table
	stringCache *strs.StringCache

	alloc   *gc.Allocator
	objects gc.ObjectList

	panicFn func(ls api.LkState)

	mainThread *State
}

func newGlobalState(seed uint32) *GlobalState {
	g := &GlobalState{}
	g.stringTable = strs.NewTable(seed)
	g.stringCache = strs.NewStringCache(g.stringTable)
	g.alloc = gc.NewAllocator(nil, nil)
	g.registry = g.NewTable(0, 2)
	return g
}

func (g *GlobalState) link(h *gc.Header, tag gc.Tag) { g.objects.Link(h, tag) }

func (g *GlobalState) Registry() *Table { return g.registry }

func (g *GlobalState) MetatableFor(t api.LkType) *Table {
	if t < 0 || int(t) >= len(g.metatables) {
		return nil
	}
	return g.metatables[t]
}

func (g *GlobalState) SetMetatableFor(t api.LkType, mt *Table) {
	if t < 0 || int(t) >= len(g.metatables) {
		return
	}
	g.metatables[t] = mt
}

func (g *GlobalState) Allocator() *gc.Allocator { return g.alloc }

func (g *GlobalState) ObjectCount() int { return g.objects.Len() }
