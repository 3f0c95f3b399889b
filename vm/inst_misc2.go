package vm

import . "github.com/embedlang/lkcore/api"

// return R(A)(R(A+1), ... ,R(A+B-1)) — here treated as an ordinary call
// keeping every result (c==0), which the RETURN A 0 that follows a
// TAILCALL then returns, since this runtime's illustrative loop does not
// implement genuine tail-call frame reuse.
func tailCall(i Instruction, vm LkVM) {
	a, b, _ := i.ABC()
	a += 1

	nArgs := pushFuncAndArgs(i, vm, a, b)
	vm.Call(nArgs, LK_MULTRET)
	popResults(vm, a, 0)
}

// R(A) := closure(KPROTO[Bx])
func closure(i Instruction, vm LkVM) {
	a, bx := i.ABx()
	a += 1

	vm.LoadProto(bx)
	vm.Replace(a)
}

// R(A), R(A+1), ..., R(A+B-2) = vararg
func vararg(i Instruction, vm LkVM) {
	a, b, _ := i.ABC()
	a += 1

	vm.LoadVararg(b - 1)
	popResults(vm, a, b)
}

// R(A)+=R(A+2); if R(A) <?= R(A+1) then { pc+=sBx; R(A+3)=R(A) }
func forLoop(i Instruction, vm LkVM) {
	a, sBx := i.AsBx()
	a += 1

	vm.PushNumber(vm.ToNumber(a + 2) + vm.ToNumber(a))
	vm.Replace(a)

	positiveStep := vm.ToNumber(a+2) >= 0
	if (positiveStep && vm.ToNumber(a) <= vm.ToNumber(a+1)) ||
		(!positiveStep && vm.ToNumber(a) >= vm.ToNumber(a+1)) {
		vm.AddPC(sBx)
		vm.Copy(a, a+3)
	}
}

// R(A)-=R(A+2); pc+=sBx
func forPrep(i Instruction, vm LkVM) {
	a, sBx := i.AsBx()
	a += 1

	vm.PushNumber(vm.ToNumber(a) - vm.ToNumber(a+2))
	vm.Replace(a)
	vm.AddPC(sBx)
}

// R(A+3), ... ,R(A+2+C) := R(A)(R(A+1), R(A+2))
func tForCall(i Instruction, vm LkVM) {
	a, _, c := i.ABC()
	a += 1

	vm.CheckStack(3)
	vm.PushValue(a)
	vm.PushValue(a + 1)
	vm.PushValue(a + 2)
	vm.Call(2, c)
	popResults(vm, a+3, c+1)
}

// if R(A+1) ~= nil then { R(A)=R(A+1); pc += sBx }
func tForLoop(i Instruction, vm LkVM) {
	a, sBx := i.AsBx()
	a += 1

	if !vm.IsNil(a + 1) {
		vm.Copy(a+1, a)
		vm.AddPC(sBx)
	}
}
