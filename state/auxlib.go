package state

import (
	"fmt"
	"os"

	. "github.com/embedlang/lkcore/api"
	"github.com/embedlang/lkcore/stdlib"
)

func (s *State) Error2(fmtStr string, a ...any) int {
	s.PushFString(fmtStr, a...)
	return s.Error()
}

func (s *State) ArgError(arg int, extraMsg string) int {
	return s.Error2("bad argument #%d (%s)", arg, extraMsg)
}

func (s *State) CheckStack2(sz int, msg string) {
	if !s.CheckStack(sz) {
		if msg != "" {
			s.Error2("stack overflow (%s)", msg)
		} else {
			s.Error2("stack overflow")
		}
	}
}

func (s *State) ArgCheck(cond bool, arg int, extraMsg string) {
	if !cond {
		s.ArgError(arg, extraMsg)
	}
}

func (s *State) CheckAny(arg int) any {
	if s.Type(arg) == LK_TNONE {
		s.ArgError(arg, "value expected")
	}
	return s.stack.Get(arg)
}

func (s *State) CheckType(arg int, t LkType) {
	if s.Type(arg) != t {
		s.tagError(arg, t)
	}
}

func (s *State) CheckInteger(arg int) int64 {
	i, ok := s.ToIntegerX(arg)
	if !ok {
		s.intError(arg)
	}
	return i
}

func (s *State) CheckNumber(arg int) float64 {
	f, ok := s.ToNumberX(arg)
	if !ok {
		s.tagError(arg, LK_TNUMBER)
	}
	return f
}

func (s *State) CheckString(arg int) string {
	str, ok := s.ToStringX(arg)
	if !ok {
		s.tagError(arg, LK_TSTRING)
	}
	return str
}

func (s *State) CheckBool(arg int) bool {
	if s.Type(arg) != LK_TBOOLEAN {
		s.tagError(arg, LK_TBOOLEAN)
	}
	return s.ToBoolean(arg)
}

// CheckUserdata requires the argument be a Userdata and returns its
// boxed Go value (luaL_checkudata).
func (s *State) CheckUserdata(arg int) any {
	if s.Type(arg) != LK_TUSERDATA {
		s.tagError(arg, LK_TUSERDATA)
	}
	return s.ToUserdata(arg)
}

func (s *State) OptInteger(arg int, def int64) int64 {
	if s.IsNoneOrNil(arg) {
		return def
	}
	return s.CheckInteger(arg)
}

func (s *State) OptNumber(arg int, def float64) float64 {
	if s.IsNoneOrNil(arg) {
		return def
	}
	return s.CheckNumber(arg)
}

func (s *State) OptString(arg int, def string) string {
	if s.IsNoneOrNil(arg) {
		return def
	}
	return s.CheckString(arg)
}

func (s *State) OptBool(arg int, def bool) bool {
	if s.IsNoneOrNil(arg) {
		return def
	}
	return s.ToBoolean(arg)
}

func (s *State) DoFile(filename string) bool {
	return s.LoadFile(filename) != LK_OK ||
		s.PCall(0, LK_MULTRET, 0) != LK_OK
}

func (s *State) DoString(str, source string) bool {
	return s.LoadString(str, source) != LK_OK ||
		s.PCall(0, LK_MULTRET, 0) != LK_OK
}

func (s *State) LoadFile(filename string) LkStatus {
	return s.LoadFileX(filename, "bt")
}

func (s *State) LoadFileX(filename, mode string) LkStatus {
	if data, err := os.ReadFile(filename); err == nil {
		return s.Load(data, "@"+filename, mode)
	}
	return LK_ERRFILE
}

func (s *State) LoadString(str, source string) LkStatus {
	return s.Load([]byte(str), source, "bt")
}

func (s *State) TypeName2(idx int) string {
	return s.TypeName(s.Type(idx))
}

func (s *State) Len2(idx int) int64 {
	s.Len(idx)
	i, isNum := s.ToIntegerX(-1)
	if !isNum {
		s.Error2("object length is not an integer")
	}
	s.Pop(1)
	return i
}

func (s *State) ToString2(idx int) string {
	if s.CallMeta(idx, "__str") { /* metafield? */
		if !s.IsString(-1) {
			s.Error2("'__str' must return a string")
		}
	} else {
		switch s.Type(idx) {
		case LK_TNUMBER:
			if s.IsInteger(idx) {
				s.PushString(fmt.Sprintf("%d", s.ToInteger(idx)))
			} else {
				s.PushString(fmt.Sprintf("%g", s.ToNumber(idx)))
			}
		case LK_TSTRING:
			s.PushValue(idx)
		case LK_TBOOLEAN:
			if s.ToBoolean(idx) {
				s.PushString("true")
			} else {
				s.PushString("false")
			}
		case LK_TNIL:
			s.PushString("nil")
		default:
			tt := s.GetMetafield(idx, "__name") /* try name */
			var kind string
			if tt == LK_TSTRING {
				kind = s.CheckString(-1)
			} else {
				kind = s.TypeName2(idx)
			}

			s.PushString(fmt.Sprintf("%s: %v", kind, s.ToPointer(idx)))

			if tt != LK_TNIL {
				s.Remove(-2) /* remove '__name' */
			}
		}
	}
	return s.CheckString(-1)
}

func (s *State) GetSubTable(idx int, fname string) bool {
	if s.GetField(idx, fname) == LK_TTABLE {
		return true /* table already there */
	}
	s.Pop(1) /* remove previous result */
	idx = s.stack.AbsIndex(idx)
	s.NewTable()
	s.PushValue(-1)        /* copy to be left at top */
	s.SetField(idx, fname) /* assign new table to field */
	return false           /* false, because did not find table there */
}

func (s *State) GetMetafield(obj int, event string) LkType {
	if !s.GetMetatable(obj) { /* no metatable? */
		return LK_TNIL
	}

	s.PushString(event)
	tt := s.RawGet(-2)
	if tt == LK_TNIL { /* is metafield nil? */
		s.Pop(2) /* remove metatable and metafield */
	} else {
		s.Remove(-2) /* remove only metatable */
	}
	return tt /* return metafield type */
}

func (s *State) CallMeta(obj int, event string) bool {
	obj = s.AbsIndex(obj)
	if s.GetMetafield(obj, event) == LK_TNIL { /* no metafield? */
		return false
	}

	s.PushValue(obj)
	s.Call(1, 1)
	return true
}

func (s *State) OpenLibs() {
	libs := map[string]GoFunction{
		"_G":     stdlib.OpenBaseLib,
		"math":   stdlib.OpenMathLib,
		"string": stdlib.OpenStringLib,
		"table":  stdlib.OpenTableLib,
		"nums":   stdlib.OpenNumLib,
		"sync":   stdlib.OpenCoroutineLib,
	}

	for name := range libs {
		s.RequireF(name, libs[name], true)
		s.Pop(1)
	}
}

func (s *State) RequireF(modname string, openf GoFunction, glb bool) {
	s.GetSubTable(LK_REGISTRYINDEX, "_LOADED")
	s.GetField(-1, modname) /* LOADED[modname] */
	if !s.ToBoolean(-1) {   /* package not already loaded? */
		s.Pop(1) /* remove field */
		s.PushGoFunction(openf)
		s.PushString(modname)   /* argument to open function */
		s.Call(1, 1)            /* call 'openf' to open module */
		s.PushValue(-1)         /* make copy of module (call result) */
		s.SetField(-3, modname) /* _LOADED[modname] = module */
	}
	s.Remove(-2) /* remove _LOADED table */
	if glb {
		s.PushValue(-1)      /* copy of module */
		s.SetGlobal(modname) /* _G[modname] = module */
	}
}

func (s *State) NewLib(l FuncReg) {
	s.NewLibTable(l)
	s.SetFuncs(l, 0)
}

func (s *State) NewLibTable(l FuncReg) {
	s.CreateTable(0, len(l))
}

func (s *State) SetFuncs(l FuncReg, nup int) {
	s.CheckStack2(nup, "too many upvalues")
	for name := range l { /* fill the table with given functions */
		for i := 0; i < nup; i++ { /* copy upvalues to the top */
			s.PushValue(-nup)
		}
		// r[-(nup+2)][name]=fun
		s.PushGoClosure(l[name], nup) /* closure with those upvalues */
		s.SetField(-(nup + 2), name)
	}
	s.Pop(nup) /* remove upvalues */
}

func (s *State) intError(arg int) {
	if s.IsNumber(arg) {
		s.ArgError(arg, "number has no integer representation")
	} else {
		s.tagError(arg, LK_TNUMBER)
	}
}

func (s *State) tagError(arg int, tag LkType) {
	s.typeError(arg, s.TypeName(tag))
}

func (s *State) typeError(arg int, tname string) int {
	var typeArg string /* name for the type of the actual argument */
	if s.GetMetafield(arg, "__name") == LK_TSTRING {
		typeArg = s.ToString(-1) /* use the given type name */
	} else if s.Type(arg) == LK_TLIGHTUSERDATA {
		typeArg = "light userdata" /* special name for messages */
	} else {
		typeArg = s.TypeName2(arg) /* standard name */
	}
	msg := tname + " expected, got " + typeArg
	s.PushString(msg)
	return s.ArgError(arg, msg)
}
