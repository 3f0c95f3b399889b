package state

import (
	"fmt"

	"github.com/embedlang/lkcore/api"
	"github.com/embedlang/lkcore/lkvalue"
)

func typeOf(val any) api.LkType {
	switch val.(type) {
	case nil:
		return api.LK_TNIL
	case bool:
		return api.LK_TBOOLEAN
	case int64, float64:
		return api.LK_TNUMBER
	case string:
		return api.LK_TSTRING
	case *Table:
		return api.LK_TTABLE
	case *Closure:
		return api.LK_TFUNCTION
	case *State:
		return api.LK_TTHREAD
	case *Userdata:
		return api.LK_TUSERDATA
	case LightUserdata:
		return api.LK_TLIGHTUSERDATA
	case interned:
		return api.LK_TSTRING
	default:
		panic(fmt.Sprintf("invalid type: %T<%v>", val, val))
	}
}

// interned is implemented by *strs.Interned; declared locally (rather than
// imported) just for the type switch above, since strs.Interned's method
// set is all this package needs from it here.
type interned interface {
	String() string
}

func convertToBoolean(val any) bool {
	switch x := val.(type) {
	case nil:
		return false
	case bool:
		return x
	default:
		return true
	}
}

func convertToFloat(val any) (float64, bool) {
	switch x := val.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case string:
		return lkvalue.ParseFloat(x)
	case interned:
		return lkvalue.ParseFloat(x.String())
	default:
		return 0, false
	}
}

func convertToInteger(val any) (int64, bool) {
	switch x := val.(type) {
	case int64:
		return x, true
	case float64:
		return lkvalue.FloatToInteger(x)
	case string:
		return stringToInteger(x)
	case interned:
		return stringToInteger(x.String())
	default:
		return 0, false
	}
}

func stringToInteger(s string) (int64, bool) {
	if i, ok := lkvalue.ParseInteger(s); ok {
		return i, true
	}
	if f, ok := lkvalue.ParseFloat(s); ok {
		return lkvalue.FloatToInteger(f)
	}
	return 0, false
}

/* metatable */

// getMetatable returns val's own metatable, be it a Table's or
// Userdata's own pointer, or the GlobalState's per-type metatable for
// every other kind of value (lstate.h: global_State.mt[] plus Table/Udata
// carrying their own).
func getMetatable(val any, s *State) *Table {
	switch t := val.(type) {
	case *Table:
		return t.metatable
	case *Userdata:
		return t.metatable
	default:
		return s.global.MetatableFor(typeOf(val))
	}
}

func setMetatable(val any, mt *Table, s *State) {
	switch t := val.(type) {
	case *Table:
		t.metatable = mt
	case *Userdata:
		t.metatable = mt
	default:
		s.global.SetMetatableFor(typeOf(val), mt)
	}
}

func getMetafield(val any, fieldName string, s *State) any {
	mt := getMetatable(val, s)
	if mt == nil {
		return nil
	}
	return mt.Get(fieldName)
}

func callMetamethod(a, b any, mmName string, s *State) (any, bool) {
	var mm any
	if mm = getMetafield(a, mmName, s); mm == nil {
		if mm = getMetafield(b, mmName, s); mm == nil {
			return nil, false
		}
	}

	s.stack.Check(4)
	s.stack.Push(mm)
	s.stack.Push(a)
	s.stack.Push(b)
	s.Call(2, 1)
	return s.stack.Pop(), true
}
