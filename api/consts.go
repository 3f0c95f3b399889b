package api

import (
	"math/bits"
)

const LK_MINSTACK = 20
const LKI_MAXSTACK = 1000000
const LK_REGISTRYINDEX = -LKI_MAXSTACK - 1000
const LK_RIDX_MAINTHREAD int64 = 1
const LK_RIDX_GLOBALS int64 = 2
const LK_MULTRET = -1

const (
	offset        = bits.UintSize - 1
	LK_MAXINTEGER = 1<<offset - 1
	LK_MININTEGER = -1 << offset
)

// SHORT_MAX is the byte length at/below which strings are interned
// (lstring.c: LUAI_MAXSHORTLEN).
const SHORT_MAX = 40

/* basic types — bits 0-3 of the tagged value */
type LkType = int

const (
	LK_TNONE LkType = iota - 1 // -1
	LK_TNIL
	LK_TBOOLEAN
	LK_TLIGHTUSERDATA
	LK_TNUMBER
	LK_TSTRING
	LK_TTABLE
	LK_TFUNCTION
	LK_TUSERDATA
	LK_TTHREAD
)

// Variant tags — bits 4-5 of the spec's tagged value. Exposed for host code
// that wants finer introspection than the basic LkType, e.g. distinguishing
// an integer from a float or a Go function from a Lua closure.
type NumberVariant int

const (
	LK_VFLOAT NumberVariant = iota
	LK_VINTEGER
)

type StringVariant int

const (
	LK_VSHORTSTR StringVariant = iota
	LK_VLONGSTR
)

type FunctionVariant int

const (
	LK_VLKCLOSURE   FunctionVariant = iota // closure over a Lua prototype
	LK_VLIGHTGOFUNC                        // bare Go function, no upvalues
	LK_VGOCLOSURE                          // Go function with upvalues
)

/* arithmetic functions */
type ArithOp = int

const (
	LK_OPADD  ArithOp = iota // +
	LK_OPSUB                 // -
	LK_OPMUL                 // *
	LK_OPMOD                 // %
	LK_OPPOW                 // ^
	LK_OPDIV                 // /
	LK_OPIDIV                // //
	LK_OPBAND                // &
	LK_OPBOR                 // |
	LK_OPBXOR                // ~
	LK_OPSHL                 // <<
	LK_OPSHR                 // >>
	LK_OPUNM                 // -
	LK_OPBNOT                // ~
)

/* comparison functions */
type CompareOp = int

const (
	LK_OPEQ CompareOp = iota // ==
	LK_OPLT                  // <
	LK_OPLE                  // <=
)

/* thread status: outcome of the last protected call */
type LkStatus int

const (
	LK_OK LkStatus = iota
	LK_YIELD
	LK_ERRRUN
	LK_ERRSYNTAX
	LK_ERRMEM
	LK_ERRGCMM
	LK_ERRERR
	LK_ERRFILE
)

// ThreadRunStatus is the coroutine's own scheduling status (Running,
// Suspended, Normal, Dead), distinct from LkStatus which reports a call's
// outcome.
type ThreadRunStatus int

const (
	RunStatusRunning ThreadRunStatus = iota
	RunStatusSuspended
	RunStatusNormal // resumed another coroutine; itself dormant on the call chain
	RunStatusDead
)
