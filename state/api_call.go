package state

import (
	"fmt"

	"github.com/embedlang/lkcore/api"
	"github.com/embedlang/lkcore/binchunk"
	"github.com/embedlang/lkcore/vm"
)

// Load compiles or reconstitutes chunk into a callable closure and pushes
// it (lapi.c: lua_load). mode is checked against the chunk through
// binchunk.ModQuery and chunkName prefixes the error a refused chunk
// pushes; this port expects chunk to
// already be a serialized binchunk.Prototype (see binchunk.Load) since it
// carries no text-language front end of its own.
func (s *State) Load(chunk []byte, chunkName, mode string) api.LkStatus {
	if _, ok := binchunk.ModQuery(chunk, mode); !ok {
		s.stack.Push(fmt.Sprintf("%s: chunk not permitted by mode %q", chunkName, mode))
		return api.LK_ERRSYNTAX
	}

	proto, err := binchunk.Load(chunk)
	if err != nil {
		s.stack.Push(err.Error())
		return api.LK_ERRSYNTAX
	}

	c := newLuaClosure(s.global, proto)
	s.stack.Push(c)
	if len(proto.Upvalues) > 0 {
		env := s.global.registry.Get(api.LK_RIDX_GLOBALS)
		c.upvals[0] = newOpenUpvalue(&[]any{env}, 0)
		c.upvals[0].Close()
	}
	return api.LK_OK
}

// Call invokes the callable at stack slot -(nArgs+1) with nArgs arguments
// already pushed above it, leaving nResults results (or every result, if
// nResults is api.LK_MULTRET) in their place (lapi.c: lua_call /
// lvm.c: luaD_precall's dispatch between Lua and C closures).
func (s *State) Call(nArgs, nResults int) {
	val := s.stack.Get(-(nArgs + 1))

	c, ok := val.(*Closure)
	if !ok {
		if mf := getMetafield(val, "__call", s); mf != nil {
			if c, ok = mf.(*Closure); ok {
				s.stack.Push(val)
				s.Insert(-(nArgs + 2))
				nArgs++
			}
		}
	}

	if !ok {
		panic(fmt.Sprintf("attempt to call a %s value", s.TypeName(typeOf(val))))
	}

	if c.proto != nil {
		s.callLuaClosure(nArgs, nResults, c)
	} else {
		s.callGoClosure(nArgs, nResults, c)
	}
}

func (s *State) callGoClosure(nArgs, nResults int, c *Closure) {
	newFrame := newStack(nArgs+api.LK_MINSTACK, s)
	newFrame.closure = c

	if nArgs > 0 {
		args := s.stack.PopN(nArgs)
		newFrame.PushN(args, nArgs)
	}
	s.stack.Pop()

	s.pushFrame(newFrame)
	r := c.goFunc(s)
	s.popFrame()

	if nResults != 0 {
		results := newFrame.PopN(r)
		s.stack.Check(len(results))
		s.stack.PushN(results, nResults)
	}
}

func (s *State) callLuaClosure(nArgs, nResults int, c *Closure) {
	nRegs := int(c.proto.MaxStackSize)
	nParams := int(c.proto.NumParams)
	isVararg := c.proto.IsVararg == 1

	newFrame := newStack(nRegs+api.LK_MINSTACK, s)
	newFrame.closure = c

	funcAndArgs := s.stack.PopN(nArgs + 1)
	newFrame.PushN(funcAndArgs[1:], nParams)
	newFrame.top = nRegs
	if nArgs > nParams && isVararg {
		newFrame.varargs = funcAndArgs[nParams+1:]
	}

	s.pushFrame(newFrame)
	s.runLuaClosure()
	s.popFrame()

	if nResults != 0 {
		results := newFrame.PopN(newFrame.top - nRegs)
		s.stack.Check(len(results))
		s.stack.PushN(results, nResults)
	}
}

func (s *State) runLuaClosure() {
	for {
		inst := vm.Instruction(s.Fetch())
		inst.Execute(s)
		if inst.Opcode() == vm.OP_RETURN {
			break
		}
	}
}

// PCall runs nArgs/nResults-shaped Call under recover, mirroring Lua's
// non-local error propagation (spec §7): a panic anywhere below unwinds
// the Go stack back to here, every frame pushed since the call is popped,
// and the error object lands on top of the stack (lua.h: lua_pcall via
// ldo.c's luaD_pcall/luaD_rawrunprotected, reimplemented here with Go's
// own panic/recover since that's this port's analogue of Lua's setjmp-based
// protected calls).
func (s *State) PCall(nArgs, nResults, msgh int) (status api.LkStatus) {
	caller := s.stack
	status = api.LK_ERRRUN

	defer func() {
		if err := recover(); err != nil {
			for s.stack != caller {
				s.popFrame()
			}
			errVal := errorValue(err)
			if msgh != 0 {
				errVal = s.runMessageHandler(msgh, errVal)
			}
			s.stack.Push(errVal)
		}
	}()

	s.Call(nArgs, nResults)
	status = api.LK_OK
	return
}

// errorValue normalizes a recovered panic into the raw error object PCall
// delivers: a value raised through Error() is already a Lua value (any
// type Error() was handed is legal, per lua_error's contract) and passes
// through unchanged, while an internal Go panic (a bare string, or
// gc.ErrMemory) isn't a representable Lua value on its own and is
// rendered to its message instead, the way luaD_throw's non-Lua errors
// fall back to a plain message string.
func errorValue(err any) (v any) {
	defer func() {
		if recover() != nil {
			v = fmt.Sprintf("%v", err)
		}
	}()
	typeOf(err)
	return err
}

// runMessageHandler invokes the function at stack index msgh on errVal
// (lua.h: lua_pcall's msgh, run by ldo.c's luaD_callnoyield on the raw
// error object before it unwinds past the protected call) and returns its
// result as the error PCall ultimately delivers. A panic raised by the
// handler itself is caught here and replaced with the fixed "error in
// error handling" message, matching LUA_ERRERR rather than propagating a
// second time.
func (s *State) runMessageHandler(msgh int, errVal any) (result any) {
	caller := s.stack
	result = errVal

	defer func() {
		if recover() != nil {
			for s.stack != caller {
				s.popFrame()
			}
			result = "error in error handling"
		}
	}()

	handler := caller.Get(msgh)
	s.stack.Check(2)
	s.stack.Push(handler)
	s.stack.Push(errVal)
	s.Call(1, 1)
	result = s.stack.Pop()
	return
}

// CallK is the continuation-aware form of Call. This runtime executes
// calls synchronously via Go's own call stack rather than suspending and
// resuming a C-style activation record, so a continuation has nothing to
// resume into; it simply runs k once Call returns (lua.h: lua_callk,
// whose k only ever fires after a yield, which can't happen here outside
// of the goroutine-based coroutine path api_coroutine.go already covers).
func (s *State) CallK(nArgs, nResults int, ctx int64, k api.Continuation) {
	s.Call(nArgs, nResults)
	if k != nil {
		k(s, api.LK_OK, ctx)
	}
}

// CatchAndPrint runs the top-of-stack callable under PCall and prints any
// error object it raised, matching the teacher's REPL-facing helper but
// generalized to take no compiler dependency: callers push a closure and
// its arguments before invoking this, the same protocol Call itself uses.
func (s *State) CatchAndPrint(isRepl bool) {
	status := s.PCall(0, api.LK_MULTRET, 0)
	if status != api.LK_OK {
		fmt.Println(s.ToString(-1))
		s.Pop(1)
	}
}
