package state

import (
	. "github.com/embedlang/lkcore/api"
	"github.com/embedlang/lkcore/lkvalue"
)

func (s *State) PushNil() {
	s.stack.Push(nil)
}

func (s *State) PushBoolean(b bool) {
	s.stack.Push(b)
}

func (s *State) PushInteger(n int64) {
	s.stack.Push(n)
}

func (s *State) PushNumber(n float64) {
	s.stack.Push(n)
}

func (s *State) PushString(str string) {
	s.stack.Push(str)
}

func (s *State) PushFString(fmtStr string, a ...any) {
	str := lkvalue.Format(fmtStr, a...)
	s.stack.Push(str)
}

func (s *State) PushGoFunction(f GoFunction) {
	s.stack.Push(newGoClosure(s.global, f, 0))
}

func (s *State) PushGoClosure(f GoFunction, n int) {
	c := newGoClosure(s.global, f, n)
	for i := n; i > 0; i-- {
		val := s.stack.Pop()
		c.upvals[i-1] = newOpenUpvalue(&[]any{val}, 0)
		c.upvals[i-1].Close()
	}
	s.stack.Push(c)
}

// PushLightUserdata wraps an arbitrary Go value as a LightUserdata, the
// pointer-identity-only counterpart to a full Userdata that carries no
// metatable or uservalue of its own (lapi.c: lua_pushlightuserdata).
func (s *State) PushLightUserdata(p any) {
	s.stack.Push(LightUserdata{Ptr: p})
}

// NewUserdata allocates a Userdata boxing a size-byte buffer and pushes
// it (lapi.c: lua_newuserdata). size is advisory here since Go slices
// grow on demand; it sizes the initial backing buffer.
func (s *State) NewUserdata(size int) any {
	ud := s.global.NewUserdata(make([]byte, size))
	s.stack.Push(ud)
	return ud.Data()
}

func (s *State) PushGlobalTable() {
	global := s.global.registry.Get(LK_RIDX_GLOBALS)
	s.stack.Push(global)
}

func (s *State) PushThread() bool {
	s.stack.Push(s)
	return s.isMainThread()
}
