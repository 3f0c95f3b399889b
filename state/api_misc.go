package state

import (
	"fmt"

	. "github.com/embedlang/lkcore/api"
	"github.com/embedlang/lkcore/lkvalue"
)

func toTable(val any) *Table {
	t, _ := val.(*Table)
	return t
}

func (s *State) Len(idx int) {
	val := s.stack.Get(idx)

	if str, ok := lkvalue.StringContent(val); ok {
		s.stack.Push(int64(len(str)))
	} else if result, ok := callMetamethod(val, val, "__len", s); ok {
		s.stack.Push(result)
	} else if t := toTable(val); t != nil {
		s.stack.Push(int64(t.Len()))
	} else {
		panic(fmt.Sprintf("attempt to get length of %#v (a %T value)", val, val))
	}
}

func (s *State) Next(idx int) bool {
	val := s.stack.Get(idx)
	if t := toTable(val); t != nil {
		key := s.stack.Pop()
		if nextKey := t.Next(key); nextKey != nil {
			s.stack.Push(nextKey)
			s.stack.Push(t.Get(nextKey))
			return true
		}
		return false
	}
	panic(fmt.Sprintf("table expected, got %T", val))
}

func (s *State) Error() int {
	err := s.stack.Pop()
	panic(err)
}

func (s *State) StringToNumber(str string) bool {
	if n, ok := lkvalue.ParseInteger(str); ok {
		s.PushInteger(n)
		return true
	}
	if n, ok := lkvalue.ParseFloat(str); ok {
		s.PushNumber(n)
		return true
	}
	return false
}

// Concat pops the top n values and pushes their concatenation, coercing
// numbers to strings and deferring to __concat when a non-string,
// non-number operand is involved (lvm.c: luaV_concat).
func (s *State) Concat(n int) {
	if n == 0 {
		s.stack.Push("")
		return
	}
	if n == 1 {
		return
	}

	vals := s.stack.PopN(n)
	acc := vals[0]
	for i := 1; i < len(vals); i++ {
		acc = s.concat2(acc, vals[i])
	}
	s.stack.Push(acc)
}

func (s *State) concat2(a, b any) any {
	as, okA := lkvalue.StringContent(a)
	if !okA {
		as, okA = lkvalue.NumberToString(a)
	}
	bs, okB := lkvalue.StringContent(b)
	if !okB {
		bs, okB = lkvalue.NumberToString(b)
	}
	if okA && okB {
		return as + bs
	}
	if result, ok := callMetamethod(a, b, "__concat", s); ok {
		return result
	}
	panic(fmt.Sprintf("attempt to concatenate a %T value", b))
}

// RawEqual compares two stack values for primitive equality, bypassing
// __eq (lapi.c: lua_rawequal).
func (s *State) RawEqual(idx1, idx2 int) bool {
	a := s.stack.Get(idx1)
	b := s.stack.Get(idx2)
	return rawEqual(a, b)
}

func rawEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	switch x := a.(type) {
	case int64:
		switch y := b.(type) {
		case int64:
			return x == y
		case float64:
			return float64(x) == y
		}
		return false
	case float64:
		switch y := b.(type) {
		case int64:
			return x == float64(y)
		case float64:
			return x == y
		}
		return false
	default:
		as, okA := lkvalue.StringContent(a)
		bs, okB := lkvalue.StringContent(b)
		if okA && okB {
			return as == bs
		}
		return a == b
	}
}

// GetUpvalue pushes the n'th upvalue of the closure at funcIdx and
// returns its debug name, or "" if n is out of range (lapi.c: lua_getupvalue).
func (s *State) GetUpvalue(funcIdx, n int) string {
	val := s.stack.Get(funcIdx)
	c, ok := val.(*Closure)
	if !ok || n < 1 || n > len(c.upvals) {
		return ""
	}
	s.stack.Push(c.upvals[n-1].Get())
	name := ""
	if c.proto != nil && n-1 < len(c.proto.UpvalueNames) {
		name = c.proto.UpvalueNames[n-1]
	}
	if name == "" {
		name = "?"
	}
	return name
}

// SetUpvalue pops a value and stores it into the closure's n'th upvalue
// cell (lapi.c: lua_setupvalue).
func (s *State) SetUpvalue(funcIdx, n int) string {
	val := s.stack.Get(funcIdx)
	c, ok := val.(*Closure)
	if !ok || n < 1 || n > len(c.upvals) {
		return ""
	}
	v := s.stack.Pop()
	c.upvals[n-1].Set(v)
	return "?"
}

// UpvalueJoin makes upvalue n1 of the closure at fidx1 share the same
// cell as upvalue n2 of the closure at fidx2 (lapi.c: lua_upvaluejoin) —
// used to implement shared module-level locals across closures compiled
// from the same chunk.
func (s *State) UpvalueJoin(fidx1, n1, fidx2, n2 int) {
	c1, ok1 := s.stack.Get(fidx1).(*Closure)
	c2, ok2 := s.stack.Get(fidx2).(*Closure)
	if !ok1 || !ok2 {
		return
	}
	if n1 < 1 || n1 > len(c1.upvals) || n2 < 1 || n2 > len(c2.upvals) {
		return
	}
	c1.upvals[n1-1] = c2.upvals[n2-1]
}

// GC control: this runtime relies on Go's own garbage collector for
// actual reclamation, so these simply track the conceptual object count
// gc.Header/GlobalState.objects models rather than driving a real
// incremental collector (lapi.c: lua_gc).

func (s *State) GCStop()    {}
func (s *State) GCRestart() {}
func (s *State) GCCollect() {}
func (s *State) GCStep()    {}

func (s *State) GCCount() int {
	return s.global.ObjectCount()
}

func (s *State) GCIsRunning() bool { return true }

func (s *State) GCSetPause(n int) int    { return n }
func (s *State) GCSetStepMul(n int) int  { return n }
