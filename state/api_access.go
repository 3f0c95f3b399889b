package state

import (
	"github.com/embedlang/lkcore/lkvalue"
	. "github.com/embedlang/lkcore/api"
)

func (s *State) TypeName(tp LkType) string {
	switch tp {
	case LK_TNONE:
		return "none"
	case LK_TNIL:
		return "nil"
	case LK_TBOOLEAN:
		return "bool"
	case LK_TNUMBER:
		return "num"
	case LK_TSTRING:
		return "str"
	case LK_TTABLE:
		return "table"
	case LK_TFUNCTION:
		return "func"
	case LK_TTHREAD:
		return "thread"
	default:
		return "userdata"
	}
}

func (s *State) Type(idx int) LkType {
	if s.stack.IsValid(idx) {
		val := s.stack.Get(idx)
		return typeOf(val)
	}
	return LK_TNONE
}

func (s *State) IsNone(idx int) bool {
	return s.Type(idx) == LK_TNONE
}

func (s *State) IsNil(idx int) bool {
	return s.Type(idx) == LK_TNIL
}

func (s *State) IsNoneOrNil(idx int) bool {
	return s.Type(idx) <= LK_TNIL
}

func (s *State) IsBoolean(idx int) bool {
	return s.Type(idx) == LK_TBOOLEAN
}

func (s *State) IsTable(idx int) bool {
	return s.Type(idx) == LK_TTABLE
}

func (s *State) IsFunction(idx int) bool {
	return s.Type(idx) == LK_TFUNCTION
}

func (s *State) IsThread(idx int) bool {
	return s.Type(idx) == LK_TTHREAD
}

func (s *State) IsString(idx int) bool {
	t := s.Type(idx)
	return t == LK_TSTRING || t == LK_TNUMBER
}

func (s *State) IsNumber(idx int) bool {
	_, ok := s.ToNumberX(idx)
	return ok
}

func (s *State) IsInteger(idx int) bool {
	val := s.stack.Get(idx)
	_, ok := val.(int64)
	return ok
}

func (s *State) IsGoFunction(idx int) bool {
	val := s.stack.Get(idx)
	if c, ok := val.(*Closure); ok {
		return c.goFunc != nil
	}
	return false
}

func (s *State) IsUserdata(idx int) bool {
	_, ok := s.stack.Get(idx).(*Userdata)
	return ok
}

func (s *State) IsLightUserdata(idx int) bool {
	_, ok := s.stack.Get(idx).(LightUserdata)
	return ok
}

// RawLen returns the raw length of a string, table, or userdata's
// underlying buffer, bypassing any __len metamethod (lapi.c: lua_rawlen).
func (s *State) RawLen(idx int) int {
	val := s.stack.Get(idx)
	if str, ok := lkvalue.StringContent(val); ok {
		return len(str)
	}
	switch x := val.(type) {
	case *Table:
		return x.Len()
	case *Userdata:
		if buf, ok := x.Data().([]byte); ok {
			return len(buf)
		}
	}
	return 0
}

func (s *State) ToBoolean(idx int) bool {
	val := s.stack.Get(idx)
	return convertToBoolean(val)
}

func (s *State) ToInteger(idx int) int64 {
	i, _ := s.ToIntegerX(idx)
	return i
}

func (s *State) ToIntegerX(idx int) (int64, bool) {
	val := s.stack.Get(idx)
	return convertToInteger(val)
}

func (s *State) ToNumber(idx int) float64 {
	n, _ := s.ToNumberX(idx)
	return n
}

func (s *State) ToNumberX(idx int) (float64, bool) {
	val := s.stack.Get(idx)
	return convertToFloat(val)
}

func (s *State) ToString(idx int) string {
	str, _ := s.ToStringX(idx)
	return str
}

func (s *State) ToStringX(idx int) (string, bool) {
	val := s.stack.Get(idx)

	if str, ok := lkvalue.StringContent(val); ok {
		return str, true
	}
	switch val.(type) {
	case int64, float64:
		str, _ := lkvalue.NumberToString(val)
		s.stack.Set(idx, str)
		return str, true
	default:
		return "", false
	}
}

func (s *State) ToGoFunction(idx int) GoFunction {
	val := s.stack.Get(idx)
	if c, ok := val.(*Closure); ok {
		return c.goFunc
	}
	return nil
}

// ToUserdata returns the Go value boxed inside a Userdata or
// LightUserdata slot, or nil for anything else (lapi.c: lua_touserdata).
func (s *State) ToUserdata(idx int) any {
	val := s.stack.Get(idx)
	switch x := val.(type) {
	case *Userdata:
		return x.Data()
	case LightUserdata:
		return x.Ptr
	default:
		return nil
	}
}

func (s *State) ToThread(idx int) LkState {
	val := s.stack.Get(idx)
	if val != nil {
		if t, ok := val.(*State); ok {
			return t
		}
	}
	return nil
}

// ToPointer returns the raw dynamic value at idx, the way this codebase's
// stdlib helpers (getTable/getList/ToString2) use it to read a value back
// out of the stack without narrowing it to a specific Go type first
// (lapi.c: lua_topointer is a display-identity pointer in standard Lua;
// here it doubles as the untyped escape hatch host library code reaches
// for instead of a type switch per call site).
func (s *State) ToPointer(idx int) any {
	return s.stack.Get(idx)
}
