package state

// PC, AddPC, Fetch, GetConst, GetRK, RegisterCount, LoadVararg, LoadProto,
// and CloseUpvalues round out api.LkVM: the operations the instruction
// dispatch loop needs on top of the host-facing BasicAPI/AuxLib surface.

func (s *State) PC() int { return s.stack.pc }

func (s *State) AddPC(n int) {
	s.stack.lastPC = s.stack.pc
	s.stack.pc += n
}

func (s *State) Fetch() uint32 {
	i := s.stack.closure.proto.Code[s.stack.pc]
	s.stack.lastPC = s.stack.pc
	s.stack.pc++
	return i
}

func (s *State) GetConst(idx int) {
	c := s.stack.closure.proto.Constants[idx]
	s.stack.Push(c)
}

func (s *State) GetRK(rk int) {
	if rk > 0xFF {
		s.GetConst(rk & 0xFF)
	} else {
		s.PushValue(rk + 1)
	}
}

func (s *State) RegisterCount() int {
	return int(s.stack.closure.proto.MaxStackSize)
}

func (s *State) LoadVararg(n int) {
	if n < 0 {
		n = len(s.stack.varargs)
	}
	s.stack.Check(n)
	s.stack.PushN(s.stack.varargs, n)
}

// LoadProto instantiates the idx'th nested prototype of the running
// closure as a fresh Closure, wiring up its upvalues: an upvalue captured
// "in stack" shares the open cell already tracked for that slot (creating
// one on first capture), while one captured "from enclosing" is shared
// directly with the running closure's own upvalue cell (lvm.c's
// OP_CLOSURE, via lfunc.c's luaF_findupval).
func (s *State) LoadProto(idx int) {
	stack := s.stack
	subProto := stack.closure.proto.Protos[idx]
	c := newLuaClosure(s.global, subProto)

	for i := range subProto.Upvalues {
		uvIdx := int(subProto.Upvalues[i].Idx)
		if subProto.Upvalues[i].Instack == 1 {
			if stack.openuvs == nil {
				stack.openuvs = map[int]*upvalue{}
			}
			if openuv, found := stack.openuvs[uvIdx]; found {
				c.upvals[i] = openuv
			} else {
				uv := newOpenUpvalue(&stack.slots, uvIdx)
				c.upvals[i] = uv
				stack.openuvs[uvIdx] = uv
			}
		} else {
			c.upvals[i] = stack.closure.upvals[uvIdx]
		}
	}
	stack.Push(c)
}

// CloseUpvalues closes every open upvalue at or above slot a-1, severing
// its link to this frame's stack so it keeps its last value after the
// frame is popped (lfunc.c: luaF_close).
func (s *State) CloseUpvalues(a int) {
	for i, uv := range s.stack.openuvs {
		if i >= a-1 {
			uv.Close()
			delete(s.stack.openuvs, i)
		}
	}
}
