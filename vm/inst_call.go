package vm

import . "github.com/embedlang/lkcore/api"

// R(A), ... ,R(A+C-2) := R(A)(R(A+1), ... ,R(A+B-1))
func call(i Instruction, vm LkVM) {
	a, b, c := i.ABC()
	a += 1

	nArgs := pushFuncAndArgs(i, vm, a, b)
	vm.Call(nArgs, c-1)
	popResults(vm, a, c)
}

func pushFuncAndArgs(i Instruction, vm LkVM, a, b int) (nArgs int) {
	if b >= 1 {
		vm.CheckStack(b)
		for j := a; j < a+b; j++ {
			vm.PushValue(j)
		}
		return b - 1
	}
	fixStack(vm, a)
	return vm.GetTop() - vm.RegisterCount() - 1
}

// fixStack handles the b==0 case of CALL and RETURN: the previous
// CALL/VARARG with c==0 left its results above the register window and
// pushed the register index of its first result as a marker (popResults).
// fixStack pops that marker x, pushes R(a)..R(x-1) and rotates them below
// the pending results, so everything above the register window is the
// contiguous block R(a), ..., results (lvm.c's OP_CALL / OP_RETURN b==0
// case, reconstructed here directly against the host API since this
// runtime only exercises the instruction set illustratively).
func fixStack(vm LkVM, a int) {
	x := int(vm.ToInteger(-1))
	vm.Pop(1)
	vm.CheckStack(x - a)
	for j := a; j < x; j++ {
		vm.PushValue(j)
	}
	vm.Rotate(vm.RegisterCount()+1, x-a)
}

func popResults(vm LkVM, a, c int) {
	if c == 1 {
		return
	}
	if c > 1 {
		for j := a + c - 2; j >= a; j-- {
			vm.Replace(j)
		}
	} else {
		vm.CheckStack(1)
		vm.PushInteger(int64(a))
	}
}

// return R(A), ... ,R(A+B-2)
func _return(i Instruction, vm LkVM) {
	a, b, _ := i.ABC()
	a += 1

	if b == 1 {
		return
	} else if b > 1 {
		vm.CheckStack(b - 1)
		for j := a; j <= a+b-2; j++ {
			vm.PushValue(j)
		}
	} else {
		fixStack(vm, a)
	}
}
