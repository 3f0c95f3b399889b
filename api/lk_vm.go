package api

// LkVM extends LkState with the VM-internal operations the instruction
// dispatch loop needs but host embedders never call directly: program
// counter control, constant-pool/RK access, and upvalue closing.
type LkVM interface {
	LkState
	PC() int
	AddPC(n int)
	Fetch() uint32
	GetConst(idx int)
	GetRK(rk int)
	RegisterCount() int
	LoadVararg(n int)
	LoadProto(idx int)
	CloseUpvalues(a int)
}
