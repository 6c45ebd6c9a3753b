package machine

import (
	"github.com/dolthub/swiss"

	"github.com/sanscript-lang/sanscript/lang/compiler"
)

// Frame is a per-call activation record: a program counter into Code's
// instruction sequence, a local binding table, an operand stack, and the
// two link chains named in spec.md §4.3/§9.
//
// Caller is the dynamic link. Thread returns from a call through Go's own
// call stack, so the frames it creates leave Caller nil and Return never
// reads it. Enclosing is the lexical link, consulted only by name
// resolution (LoadVariable/StoreVariable) to walk outward through the
// scopes in which this frame's function was defined; it is never the
// caller. That distinction is what makes closures observe their defining
// scope rather than their caller's.
type Frame struct {
	Code      *compiler.Code
	Locals    *swiss.Map[string, Value]
	Stack     []Value
	PC        int
	Caller    *Frame
	Enclosing *Frame
}

// NewFrame creates a frame ready to execute code from PC 0, linked per the
// given caller and enclosing frames (either may be nil).
func NewFrame(code *compiler.Code, caller, enclosing *Frame) *Frame {
	return &Frame{
		Code:      code,
		Locals:    swiss.NewMap[string, Value](uint32(len(code.Names))),
		Caller:    caller,
		Enclosing: enclosing,
	}
}

// BindParams inserts args into the frame's locals under the code's first
// NumParams names, positionally, per spec.md §4.3.
func (f *Frame) BindParams(args []Value) {
	for i, name := range f.Code.ParamNames() {
		f.Locals.Put(name, args[i])
	}
}

func (f *Frame) push(v Value) { f.Stack = append(f.Stack, v) }

func (f *Frame) pop() Value {
	n := len(f.Stack) - 1
	v := f.Stack[n]
	f.Stack = f.Stack[:n]
	return v
}

func (f *Frame) peek() Value { return f.Stack[len(f.Stack)-1] }
