package state

import "github.com/embedlang/lkcore/gc"

// Userdata wraps an arbitrary host-owned Go value inside the runtime's
// object model: it carries a metatable like Table does, plus one
// "uservalue" slot the host can stash an auxiliary Lua value in
// (lobject.h: Udata — user_ field sized by the host, uv for the extra
// value, metatable pointer). Light userdata (a bare host pointer with no
// metatable, no GC header) is represented directly as a Go value at API
// boundaries instead of via this type; see LightUserdata in
// lightuserdata.go for that distinction.
type Userdata struct {
	gc.Header
	data       any
	metatable  *Table
	uservalue  any
}

func (g *GlobalState) NewUserdata(data any) *Userdata {
	g.alloc.Realloc(0, 1)
	u := &Userdata{data: data}
	g.link(&u.Header, tagUserdata)
	return u
}

func (u *Userdata) Data() any             { return u.data }
func (u *Userdata) Metatable() *Table      { return u.metatable }
func (u *Userdata) SetMetatable(mt *Table) { u.metatable = mt }
func (u *Userdata) UserValue() any         { return u.uservalue }
func (u *Userdata) SetUserValue(v any)     { u.uservalue = v }
