package state

import . "github.com/embedlang/lkcore/api"

func (s *State) GetTop() int {
	return s.stack.Top()
}

func (s *State) AbsIndex(idx int) int {
	return s.stack.AbsIndex(idx)
}

// CheckStack reports a failed growth (too many stack slots, or the
// allocator's memory limit) as false instead of raising.
func (s *State) CheckStack(n int) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	s.stack.Check(n)
	return true
}

func (s *State) Pop(n int) {
	for i := 0; i < n; i++ {
		s.stack.Pop()
	}
}

func (s *State) Copy(fromIdx, toIdx int) {
	val := s.stack.Get(fromIdx)
	s.stack.Set(toIdx, val)
}

func (s *State) PushValue(idx int) {
	val := s.stack.Get(idx)
	s.stack.Push(val)
}

func (s *State) Replace(idx int) {
	val := s.stack.Pop()
	s.stack.Set(idx, val)
}

func (s *State) Insert(idx int) {
	s.Rotate(idx, 1)
}

func (s *State) Remove(idx int) {
	s.Rotate(idx, -1)
	s.Pop(1)
}

// Rotate rotates the stack slots between idx and the top n positions in
// the direction of the top (lapi.c: lua_rotate — a three-reversal trick,
// not a literal shift-and-wrap).
func (s *State) Rotate(idx, n int) {
	t := s.stack.Top() - 1        /* end of stack segment being rotated */
	p := s.stack.AbsIndex(idx) - 1 /* start of segment */
	var m int                     /* end of prefix */
	if n >= 0 {
		m = t - n
	} else {
		m = p - n - 1
	}
	s.stack.Reverse(p, m)
	s.stack.Reverse(m+1, t)
	s.stack.Reverse(p, t)
}

func (s *State) SetTop(idx int) {
	newTop := s.stack.AbsIndex(idx)
	if newTop < 0 {
		panic("stack underflow!")
	}

	n := s.stack.Top() - newTop
	if n > 0 {
		for i := 0; i < n; i++ {
			s.stack.Pop()
		}
	} else if n < 0 {
		for i := 0; i > n; i-- {
			s.stack.Push(nil)
		}
	}
}

func (s *State) XMove(to LkState, n int) {
	vals := s.stack.PopN(n)
	to.(*State).stack.PushN(vals, n)
}
