package state

import (
	"fmt"

	"github.com/embedlang/lkcore/api"
	"github.com/embedlang/lkcore/binchunk"
	"github.com/embedlang/lkcore/gc"
)

// upvalue is an open or closed upvalue cell: while the enclosing frame is
// still on the stack, stack points at that frame's slot; Close copies the
// slot's current value in and severs the link, exactly the lifecycle
// lvm.c's UpVal struct models with its v/u.value union.
type upvalue struct {
	stack *[]any // backing slots array of the frame that owns this variable, while open
	index int    // index into *stack, while open
	closed any
	isOpen bool
}

func newOpenUpvalue(stack *[]any, index int) *upvalue {
	return &upvalue{stack: stack, index: index, isOpen: true}
}

func (u *upvalue) Get() any {
	if u.isOpen {
		return (*u.stack)[u.index]
	}
	return u.closed
}

func (u *upvalue) Set(v any) {
	if u.isOpen {
		(*u.stack)[u.index] = v
		return
	}
	u.closed = v
}

func (u *upvalue) Close() {
	if !u.isOpen {
		return
	}
	u.closed = (*u.stack)[u.index]
	u.isOpen = false
	u.stack = nil
}

// Closure is either a LuaClosure (wraps a compiled Prototype) or a
// CClosure (wraps a host GoFunction); exactly one of proto/goFunc is set,
// mirroring lobject.h's union of LClosure and CClosure under a shared
// Closure header (spec §3).
type Closure struct {
	gc.Header
	proto  *binchunk.Prototype
	goFunc api.GoFunction
	upvals []*upvalue
}

func newLuaClosure(g *GlobalState, proto *binchunk.Prototype) *Closure {
	c := &Closure{proto: proto}
	if n := len(proto.Upvalues); n > 0 {
		g.alloc.Realloc(0, n)
		c.upvals = make([]*upvalue, n)
	}
	g.link(&c.Header, tagClosure)
	return c
}

func newGoClosure(g *GlobalState, f api.GoFunction, nUpvals int) *Closure {
	c := &Closure{goFunc: f}
	if nUpvals > 0 {
		g.alloc.Realloc(0, nUpvals)
		c.upvals = make([]*upvalue, nUpvals)
	}
	g.link(&c.Header, tagClosure)
	return c
}

func (c *Closure) IsGoFunction() bool { return c.goFunc != nil }
func (c *Closure) Proto() *binchunk.Prototype { return c.proto }
func (c *Closure) GoFunc() api.GoFunction     { return c.goFunc }

func (c *Closure) String() string {
	if c.goFunc != nil {
		return fmt.Sprintf("function: builtin@%p", c.goFunc)
	}
	return fmt.Sprintf("function: %p", c.proto)
}
