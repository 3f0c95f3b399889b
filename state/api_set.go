package state

import (
	"fmt"

	. "github.com/embedlang/lkcore/api"
)

func (s *State) SetTable(idx int) {
	t := s.stack.Get(idx)
	v := s.stack.Pop()
	k := s.stack.Pop()
	s.setTable(t, k, v, false)
}

func (s *State) SetField(idx int, k string) {
	t := s.stack.Get(idx)
	v := s.stack.Pop()
	s.setTable(t, k, v, false)
}

func (s *State) SetI(idx int, i int64) {
	t := s.stack.Get(idx)
	v := s.stack.Pop()
	s.setTable(t, i, v, false)
}

func (s *State) RawSet(idx int) {
	t := s.stack.Get(idx)
	v := s.stack.Pop()
	k := s.stack.Pop()
	s.setTable(t, k, v, true)
}

func (s *State) RawSetI(idx int, i int64) {
	t := s.stack.Get(idx)
	v := s.stack.Pop()
	s.setTable(t, i, v, true)
}

// RawSetP mirrors RawGetP: sets t[p] bypassing metamethods.
func (s *State) RawSetP(idx int, p any) {
	t := s.stack.Get(idx)
	v := s.stack.Pop()
	s.setTable(t, p, v, true)
}

func (s *State) SetGlobal(name string) {
	t := s.global.registry.Get(LK_RIDX_GLOBALS)
	v := s.stack.Pop()
	s.setTable(t, name, v, false)
}

// SetMetatable pops a table (or nil) and attaches it as the metatable of
// the value at idx (lapi.c: lua_setmetatable).
func (s *State) SetMetatable(idx int) {
	val := s.stack.Get(idx)
	mtVal := s.stack.Pop()

	var mt *Table
	if mtVal != nil {
		mt, _ = mtVal.(*Table)
	}
	setMetatable(val, mt, s)
}

// SetUserValue pops a value and stores it as the Userdata's extra slot
// (lapi.c: lua_setuservalue).
func (s *State) SetUserValue(idx int) {
	val := s.stack.Get(idx)
	v := s.stack.Pop()
	if ud, ok := val.(*Userdata); ok {
		ud.SetUserValue(v)
	}
}

func (s *State) Register(name string, f GoFunction) {
	s.PushGoFunction(f)
	s.SetGlobal(name)
}

// t[k]=v
func (s *State) setTable(t, k, v any, raw bool) {
	if tbl, ok := t.(*Table); ok {
		if raw || tbl.Get(k) != nil || !tbl.HasMetafield("__newindex") {
			tbl.Put(k, v)
			return
		}
	}

	if !raw {
		if mf := getMetafield(t, "__newindex", s); mf != nil {
			switch x := mf.(type) {
			case *Table:
				s.setTable(x, k, v, false)
				return
			case *Closure:
				s.stack.Push(mf)
				s.stack.Push(t)
				s.stack.Push(k)
				s.stack.Push(v)
				s.Call(3, 0)
				return
			}
		}
	}

	panic("expect table, got " + fmt.Sprintf("%v", t))
}
