package state

import (
	"github.com/embedlang/lkcore/api"
)

// State is the per-thread ExecutionState (spec §2): its own call-frame
// stack chain and coroutine bookkeeping, sharing one *GlobalState with
// every other thread spawned from the same runtime (lstate.h's lua_State
// vs. global_State split, which the teacher's lkState conflated).
type State struct {
	global *GlobalState
	stack  *Stack

	status     api.ThreadRunStatus
	runStatus  api.LkStatus // coroutine's lua_status()-equivalent: LK_OK/LK_YIELD/an error code
	caller     *State
	resumeChan chan int
}

// New creates a fresh runtime: a GlobalState whose string-table hash seed
// is a fixed constant (there is no call to reseed it) and its main thread,
// registered into LK_RIDX_MAINTHREAD the way lstate.c's lua_newstate does.
func New() api.LkState {
	g := newGlobalState(0x9e3779b9)
	ls := &State{global: g, status: api.RunStatusRunning}
	g.mainThread = ls

	g.registry.Put(api.LK_RIDX_MAINTHREAD, ls)
	g.registry.Put(api.LK_RIDX_GLOBALS, g.NewTable(0, 20))

	ls.pushFrame(newStack(api.LK_MINSTACK, ls))
	return ls
}

func (s *State) isMainThread() bool {
	return s.global.mainThread == s
}

func (s *State) pushFrame(frame *Stack) {
	frame.prev = s.stack
	s.stack = frame
}

func (s *State) popFrame() {
	frame := s.stack
	s.stack = frame.prev
	frame.prev = nil
}

func (s *State) newThread() *State {
	child := &State{global: s.global, status: api.RunStatusSuspended}
	child.pushFrame(newStack(api.LK_MINSTACK, child))
	return child
}
