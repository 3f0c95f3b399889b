package state

import (
	"fmt"

	. "github.com/embedlang/lkcore/api"
)

func (s *State) NewTable() {
	s.CreateTable(0, 0)
}

func (s *State) CreateTable(nArr, nRec int) {
	t := s.global.NewTable(nArr, nRec)
	s.stack.Push(t)
}

func (s *State) GetTable(idx int) LkType {
	t := s.stack.Get(idx)
	k := s.stack.Pop()
	return s.getTable(t, k, false)
}

func (s *State) GetField(idx int, k string) LkType {
	t := s.stack.Get(idx)
	return s.getTable(t, k, false)
}

func (s *State) GetI(idx int, i int64) LkType {
	t := s.stack.Get(idx)
	return s.getTable(t, i, false)
}

func (s *State) RawGet(idx int) LkType {
	t := s.stack.Get(idx)
	k := s.stack.Pop()
	return s.getTable(t, k, true)
}

func (s *State) RawGetI(idx int, i int64) LkType {
	t := s.stack.Get(idx)
	return s.getTable(t, i, true)
}

// RawGetP indexes a table by an opaque Go pointer-identity key, bypassing
// metamethods (lapi.c: lua_rawgetp) — used by the registry-adjacent
// bookkeeping that keys off of host addresses rather than Lua values.
func (s *State) RawGetP(idx int, p any) LkType {
	t := s.stack.Get(idx)
	return s.getTable(t, p, true)
}

func (s *State) GetGlobal(name string) LkType {
	t := s.global.registry.Get(LK_RIDX_GLOBALS)
	return s.getTable(t, name, false)
}

func (s *State) GetMetatable(idx int) bool {
	val := s.stack.Get(idx)

	if mt := getMetatable(val, s); mt != nil {
		s.stack.Push(mt)
		return true
	}
	return false
}

// GetUserValue pushes the extra value a Userdata carries alongside its
// boxed Go data (lapi.c: lua_getuservalue).
func (s *State) GetUserValue(idx int) LkType {
	val := s.stack.Get(idx)
	if ud, ok := val.(*Userdata); ok {
		uv := ud.UserValue()
		s.stack.Push(uv)
		return typeOf(uv)
	}
	s.stack.Push(nil)
	return LK_TNIL
}

// push(t[k])
func (s *State) getTable(t, k any, raw bool) LkType {
	if tbl, ok := t.(*Table); ok {
		v := tbl.Get(k)
		if raw || v != nil || !tbl.HasMetafield("__index") {
			s.stack.Push(v)
			return typeOf(v)
		}
	}

	if !raw {
		if mf := getMetafield(t, "__index", s); mf != nil {
			switch x := mf.(type) {
			case *Table:
				return s.getTable(x, k, false)
			case *Closure:
				s.stack.Push(mf)
				s.stack.Push(t)
				s.stack.Push(k)
				s.Call(2, 1)
				v := s.stack.Get(-1)
				return typeOf(v)
			}
		}
	}

	panic(fmt.Sprintf("'%v' is not a table and has no '__index' metafield, cannot get '%v'", t, k))
}
