package state

import . "github.com/embedlang/lkcore/api"

// NewThread spawns a child State sharing this one's GlobalState and pushes
// it onto the calling stack (lstate.c: lua_newthread).
func (s *State) NewThread() LkState {
	t := s.newThread()
	s.stack.Push(t)
	return t
}

// Resume hands control to a suspended (or not-yet-started) coroutine and
// blocks until it finishes or yields back, using a goroutine plus a
// rendezvous channel in place of Lua's own cooperative-scheduler switch
// (ldo.c: lua_resume — here, a channel send/receive pair stands in for
// the C implementation's longjmp-based context switch).
func (s *State) Resume(from LkState, nArgs int) LkStatus {
	caller := from.(*State)
	if caller.resumeChan == nil {
		caller.resumeChan = make(chan int)
	}

	if s.resumeChan == nil {
		// start coroutine
		s.resumeChan = make(chan int)
		s.caller = caller
		s.status = RunStatusRunning
		go func() {
			s.runStatus = s.PCall(nArgs, LK_MULTRET, 0)
			s.status = RunStatusDead
			caller.resumeChan <- 1
		}()
	} else {
		// resume coroutine
		if s.runStatus != LK_YIELD {
			s.stack.Push("cannot resume non-suspended coroutine")
			return LK_ERRRUN
		}
		s.status = RunStatusRunning
		s.runStatus = LK_OK
		s.resumeChan <- 1
	}

	<-caller.resumeChan // wait for the coroutine to finish or yield
	return s.runStatus
}

// Yield suspends the running coroutine, handing nResults back to its
// resumer and blocking until the next Resume call (ldo.c: lua_yield).
func (s *State) Yield(nResults int) LkStatus {
	if s.caller == nil {
		panic("attempt to yield from outside a coroutine")
	}
	s.status = RunStatusSuspended
	s.runStatus = LK_YIELD
	s.caller.resumeChan <- 1
	<-s.resumeChan
	return LkStatus(s.GetTop())
}

// YieldK is the continuation-aware form of Yield. Since coroutines here
// block on a real goroutine rather than unwinding a C call stack, there
// is no separate suspended activation record for k to resume into: k
// simply runs once this Yield's Resume wakes it back up.
func (s *State) YieldK(nResults int, ctx int64, k Continuation) LkStatus {
	status := s.Yield(nResults)
	if k != nil {
		return LkStatus(k(s, status, ctx))
	}
	return status
}

func (s *State) IsYieldable() bool {
	if s.isMainThread() {
		return false
	}
	return s.runStatus != LK_YIELD
}

func (s *State) Status() LkStatus {
	return s.runStatus
}

// GetStack reports whether the running thread has a caller frame, the
// debug-facing stand-in for a full call-info walk (lua_getstack).
func (s *State) GetStack() bool {
	return s.stack.prev != nil
}
