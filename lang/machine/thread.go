package machine

import (
	"fmt"
	"io"
	"os"

	"github.com/sanscript-lang/sanscript/lang/compiler"
)

// ExitSignal unwinds the interpreter loop in response to an Exit
// instruction. It is not a RuntimeError: it reports ordinary, possibly
// successful, process termination requested by the program itself.
type ExitSignal struct {
	Code int
}

func (e *ExitSignal) Error() string { return fmt.Sprintf("exit(%d)", e.Code) }

// Thread is the interpreter's mutable execution state: the registered
// built-ins and the standard I/O streams available to native functions
// like print. Unlike a server, a Thread is meant to run one program and
// then be discarded; it is not safe for concurrent use (spec.md §5).
type Thread struct {
	Builtins *Builtins

	// Stdout and Stderr default to os.Stdout/os.Stderr if nil. Tests set
	// these to buffers to capture program output without touching the
	// real standard streams.
	Stdout io.Writer
	Stderr io.Writer
}

func (th *Thread) stdout() io.Writer {
	if th.Stdout != nil {
		return th.Stdout
	}
	return os.Stdout
}

func (th *Thread) stderr() io.Writer {
	if th.Stderr != nil {
		return th.Stderr
	}
	return os.Stderr
}

// Out returns the thread's output stream. Exported so native functions
// registered from other packages (lang/types' print) can write to it
// without reaching into unexported state.
func (th *Thread) Out() io.Writer { return th.stdout() }

// ErrOut returns the thread's error stream, for the same reason as Out.
func (th *Thread) ErrOut() io.Writer { return th.stderr() }

// Run executes code as a top-level module: a frame with no caller and no
// enclosing frame. It returns the process exit code an ExitSignal carried,
// or a non-zero code alongside a RuntimeError on a fatal error.
func (th *Thread) Run(code *compiler.Code) (int, error) {
	frame := NewFrame(code, nil, nil)
	_, err := th.runFrame(frame)
	if err == nil {
		// A top-level Return ends the module before the Exit the compiler
		// appends; with no caller to return to, the exit code is 0.
		return 0, nil
	}
	if exit, ok := err.(*ExitSignal); ok {
		return exit.Code, nil
	}
	return 1, err
}

// callFunction implements the User Function case of spec.md §4.6: a new
// frame is created with the function's captured frame as the enclosing
// link and the currently active caller is tracked implicitly by Go's own
// call stack (runFrame recurses rather than trampolining through an
// explicit frame stack).
func (th *Thread) callFunction(fn *FunctionData, args []Value) (Value, error) {
	if len(args) != fn.Code.NumParams {
		return Value{}, newError(ArityMismatch, "function expects %d argument(s), got %d", fn.Code.NumParams, len(args))
	}
	frame := NewFrame(fn.Code, nil, fn.Enclosing)
	frame.BindParams(args)
	return th.runFrame(frame)
}

// runFrame is the fetch-decode-execute loop for one frame. It returns the
// value the frame's Return instruction pushed, or propagates an
// ExitSignal/RuntimeError. The PC always advances by one after an
// instruction runs, including a taken Jump/JumpFalse: per spec.md §4.2, a
// jump's operand is the index of the *last* instruction of its target
// block, and it is this unconditional post-increment that lands execution
// on the instruction following it (original_source/src/interpreter.rs's
// execute() advances the PC by one after every instruction, jump or not).
func (th *Thread) runFrame(f *Frame) (Value, error) {
	for {
		if f.PC >= len(f.Code.Instrs) {
			return Value{}, newError(StackCorruption, "program counter ran off the end of the instruction sequence")
		}
		in := f.Code.Instrs[f.PC]

		ret, err := th.execute(f, in)
		if err != nil {
			return Value{}, err
		}
		if ret != nil {
			return *ret, nil
		}
		f.PC++
	}
}

// execute runs one instruction. It returns a non-nil *Value when the
// instruction is a Return, ending the frame.
func (th *Thread) execute(f *Frame, in compiler.Instr) (*Value, error) {
	switch in.Op {
	case compiler.LoadConstant:
		v, err := th.constantValue(f.Code.Constants[in.Arg])
		if err != nil {
			return nil, err
		}
		f.push(v)

	case compiler.LoadVariable:
		name := f.Code.Names[in.Arg]
		v, err := th.loadVariable(f, name)
		if err != nil {
			return nil, err
		}
		f.push(v)

	case compiler.StoreVariable:
		name := f.Code.Names[in.Arg]
		v := f.pop()
		owner := resolveFrame(f, name)
		if owner == nil {
			return nil, newError(NameUnresolved, "cannot assign undeclared variable %q", name)
		}
		owner.Locals.Put(name, v)

	case compiler.Declare:
		name := f.Code.Names[in.Arg]
		v := f.pop()
		f.Locals.Put(name, v)

	case compiler.LoadProperty:
		name := f.Code.Names[in.Arg]
		obj := f.pop()
		v, err := GetProperty(th, obj, name)
		if err != nil {
			return nil, err
		}
		f.push(v)

	case compiler.StoreProperty:
		name := f.Code.Names[in.Arg]
		obj := f.pop()
		val := f.pop()
		if _, err := SetProperty(th, obj, name, val); err != nil {
			return nil, err
		}

	case compiler.LoadSubscript:
		obj := f.pop()
		key := f.pop()
		v, err := GetSubscript(th, obj, key)
		if err != nil {
			return nil, err
		}
		f.push(v)

	case compiler.StoreSubscript:
		obj := f.pop()
		key := f.pop()
		val := f.pop()
		if _, err := SetSubscript(th, obj, key, val); err != nil {
			return nil, err
		}

	case compiler.CreateList:
		elems := make([]Value, in.Arg)
		for i := 0; i < in.Arg; i++ {
			elems[i] = f.pop()
		}
		f.push(ListValue(elems))

	case compiler.CreateFunction:
		v := f.pop()
		if v.Kind != Code {
			return nil, newError(StackCorruption, "CreateFunction expected a Code value on the stack, got %s", v.Kind)
		}
		f.push(FunctionValue(&FunctionData{Code: v.CodeV, Enclosing: f}))

	case compiler.Call:
		callee := f.pop()
		args := make([]Value, in.Arg)
		for i := 0; i < in.Arg; i++ {
			args[i] = f.pop()
		}
		v, err := Invoke(th, callee, args)
		if err != nil {
			return nil, err
		}
		f.push(v)

	case compiler.Return:
		v := f.pop()
		return &v, nil

	case compiler.Pop:
		f.pop()

	case compiler.Jump:
		f.PC = in.Arg

	case compiler.JumpFalse:
		v := f.pop()
		if !v.Truthy() {
			f.PC = in.Arg
		}

	case compiler.Exit:
		return nil, &ExitSignal{Code: in.Arg}

	default:
		if in.Op.IsBinaryOp() {
			lhs := f.pop()
			rhs := f.pop()
			v, err := BinaryOp(th, in.Op, lhs, rhs)
			if err != nil {
				return nil, err
			}
			f.push(v)
			break
		}
		return nil, newError(StackCorruption, "unknown opcode %s", in.Op)
	}
	return nil, nil
}

// constantValue materializes the Value denoted by a compile-time
// Constant. Code constants become plain Code values (CreateFunction later
// wraps them with the enclosing frame); everything else is a direct
// conversion.
func (th *Thread) constantValue(c compiler.Constant) (Value, error) {
	switch c.Kind {
	case compiler.ConstNull:
		return NullValue, nil
	case compiler.ConstBool:
		return BoolValue(c.Bool), nil
	case compiler.ConstInt:
		return IntValue(c.Int), nil
	case compiler.ConstFloat:
		return FloatValue(c.Float), nil
	case compiler.ConstString:
		return StringValue(c.Str), nil
	case compiler.ConstCode:
		return CodeValue(c.Code), nil
	default:
		return Value{}, newError(StackCorruption, "unknown constant kind %d", c.Kind)
	}
}

// loadVariable implements spec.md §4.4: built-ins first, then the
// enclosing-frame chain. The caller chain is never consulted.
func (th *Thread) loadVariable(f *Frame, name string) (Value, error) {
	if v, ok := th.Builtins.LookupGlobal(name); ok {
		return v, nil
	}
	owner := resolveFrame(f, name)
	if owner == nil {
		return Value{}, newError(NameUnresolved, "name %q is not defined", name)
	}
	v, _ := owner.Locals.Get(name)
	return v, nil
}

// resolveFrame walks the enclosing-frame chain (never the caller chain)
// looking for the first frame whose locals contain name.
func resolveFrame(f *Frame, name string) *Frame {
	for cur := f; cur != nil; cur = cur.Enclosing {
		if _, ok := cur.Locals.Get(name); ok {
			return cur
		}
	}
	return nil
}
