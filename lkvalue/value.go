// Package lkvalue holds the free functions that classify and convert the
// runtime's dynamic values: type tests over the `any`-typed Value
// representation, numeric parsing/formatting, and the UTF-8 escape helper.
// None of it depends on state, so it's safely importable from state and
// stdlib alike (it imports strs, so neither strs nor gc can import it).
package lkvalue

import "github.com/embedlang/lkcore/strs"

// invalidSlot is the sentinel written into a stack slot to mean "this
// index is out of range" — distinct from Lua nil, which is a legitimate
// value a valid slot can hold. The teacher's Go port collapses both into
// Go's nil; this type gives them back a separate identity, compared by
// pointer so no accidental value ever aliases it.
type invalidSlotType struct{}

// InvalidSlot is the sole instance of invalidSlotType. Stack.Get returns
// this for any out-of-range or otherwise invalid index instead of nil.
var InvalidSlot = &invalidSlotType{}

// IsValid reports whether v came from a valid stack slot, i.e. is not the
// InvalidSlot sentinel. A slot holding Lua nil (Go nil) is valid.
func IsValid(v any) bool {
	_, invalid := v.(*invalidSlotType)
	return !invalid
}

func IsNil(v any) bool { return v == nil }

func IsBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

func IsInteger(v any) bool {
	_, ok := v.(int64)
	return ok
}

func IsFloat(v any) bool {
	_, ok := v.(float64)
	return ok
}

func IsNumber(v any) bool { return IsInteger(v) || IsFloat(v) }

func IsInterned(v any) bool {
	_, ok := v.(*strs.Interned)
	return ok
}

// IsString reports whether v is a runtime string, whether represented as
// a *strs.Interned (the canonical post-intern form) or a plain Go string
// (what PushString puts on the stack; it is interned only when used as a
// table key).
func IsString(v any) bool {
	if IsInterned(v) {
		return true
	}
	_, ok := v.(string)
	return ok
}

func IsShortString(v any) bool {
	is, ok := v.(*strs.Interned)
	return ok && !is.IsLong()
}

func IsLongString(v any) bool {
	is, ok := v.(*strs.Interned)
	return ok && is.IsLong()
}

// StringContent extracts the Go string content of a runtime string value,
// regardless of whether it's an *strs.Interned or a bare Go string.
func StringContent(v any) (string, bool) {
	switch t := v.(type) {
	case *strs.Interned:
		return t.String(), true
	case string:
		return t, true
	}
	return "", false
}

func IsGoFunction(v any) bool {
	switch v.(type) {
	case func([]any) []any:
		return true
	}
	return false
}

// Table, Function, Thread, and Userdata are classified by the state
// package's own concrete types; lkvalue only knows about values it can
// name without importing state (which would create an import cycle, since
// state imports lkvalue for conversions). Packages that need Type() at
// the LkType granularity build it on top of these helpers plus their own
// type switches over state.Table / state.Closure / state.Thread /
// state.Userdata.
