// Package machine implements the stack-based bytecode interpreter: the
// tagged Value model, the prototype-style Type descriptor, frame-linked
// lexical closures, and the fetch-decode-execute loop that drives them.
package machine

import (
	"fmt"

	"github.com/dolthub/swiss"

	"github.com/sanscript-lang/sanscript/lang/compiler"
)

// Kind identifies which variant of the tagged Value union is populated.
type Kind uint8

const ( //nolint:revive
	Null Kind = iota
	Bool
	Integer
	Float
	String
	List
	Object
	Code
	Frame
	Function
	Native
	Bound
	TypeValue
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Integer:
		return "int"
	case Float:
		return "float"
	case String:
		return "str"
	case List:
		return "list"
	case Object:
		return "object"
	case Code:
		return "Code"
	case Frame:
		return "Frame"
	case Function:
		return "function"
	case Native:
		return "NativeFunction"
	case Bound:
		return "bound"
	case TypeValue:
		return "type"
	default:
		return "unknown"
	}
}

// ObjectData is the shared mutable payload of an Object value: a type
// pointer plus an instance property table.
type ObjectData struct {
	Type       *Type
	Properties *swiss.Map[string, Value]
}

// ListData is the shared mutable payload of a List value.
type ListData struct {
	Elems []Value
}

// FunctionData is the immutable pair of a compiled Code and the frame that
// was active when the function literal was evaluated. Invoking it creates
// a new Frame whose enclosing link is Enclosing, giving the function
// access to the bindings visible at its point of definition (closure).
type FunctionData struct {
	Code      *compiler.Code
	Enclosing *Frame
}

// ArgPattern constrains how many arguments a Native may be called with.
type ArgPattern struct {
	Kind ArgPatternKind
	Lo   int
	Hi   int
}

// ArgPatternKind selects which field of ArgPattern is meaningful.
type ArgPatternKind uint8

const ( //nolint:revive
	ArgAny ArgPatternKind = iota
	ArgExact
	ArgMin
	ArgMax
	ArgRange
)

// ArgAnyPat accepts any number of arguments.
func ArgAnyPat() ArgPattern { return ArgPattern{Kind: ArgAny} }

// ArgExactPat requires exactly n arguments.
func ArgExactPat(n int) ArgPattern { return ArgPattern{Kind: ArgExact, Lo: n} }

// ArgMinPat requires at least n arguments.
func ArgMinPat(n int) ArgPattern { return ArgPattern{Kind: ArgMin, Lo: n} }

// ArgMaxPat requires at most n arguments.
func ArgMaxPat(n int) ArgPattern { return ArgPattern{Kind: ArgMax, Hi: n} }

// ArgRangePat requires between lo and hi arguments, inclusive.
func ArgRangePat(lo, hi int) ArgPattern { return ArgPattern{Kind: ArgRange, Lo: lo, Hi: hi} }

// Matches reports whether n arguments satisfies the pattern.
func (p ArgPattern) Matches(n int) bool {
	switch p.Kind {
	case ArgAny:
		return true
	case ArgExact:
		return n == p.Lo
	case ArgMin:
		return n >= p.Lo
	case ArgMax:
		return n <= p.Hi
	case ArgRange:
		return n >= p.Lo && n <= p.Hi
	default:
		return false
	}
}

func (p ArgPattern) String() string {
	switch p.Kind {
	case ArgAny:
		return "any number of arguments"
	case ArgExact:
		return fmt.Sprintf("exactly %d argument(s)", p.Lo)
	case ArgMin:
		return fmt.Sprintf("at least %d argument(s)", p.Lo)
	case ArgMax:
		return fmt.Sprintf("at most %d argument(s)", p.Hi)
	case ArgRange:
		return fmt.Sprintf("between %d and %d argument(s)", p.Lo, p.Hi)
	default:
		return "an unsupported arity"
	}
}

// NativeFunc is the Go function backing a Native value.
type NativeFunc func(th *Thread, args []Value) (Value, error)

// NativeData is the shared immutable payload of a Native value: a Go
// function pointer plus the arity pattern it must be called with.
type NativeData struct {
	Name   string
	Fn     NativeFunc
	Arity  ArgPattern
}

// BoundData is the shared immutable payload of a Bound value: a callable
// paired with the receiver it is bound to. On invocation the receiver is
// prepended to the argument list and the callable is invoked.
type BoundData struct {
	Callable Value
	Receiver Value
}

// Value is the tagged union of every runtime value. Only the field(s)
// matching Kind are meaningful; the rest are zero.
type Value struct {
	Kind Kind

	Bool  bool
	Int   int64
	Float float64
	Str   string

	List     *ListData
	ObjectV  *ObjectData
	CodeV    *compiler.Code
	FrameV   *Frame
	FuncV    *FunctionData
	NativeV  *NativeData
	BoundV   *BoundData
	TypeV    *Type
}

// NullValue is the single shared null value.
var NullValue = Value{Kind: Null}

func BoolValue(v bool) Value        { return Value{Kind: Bool, Bool: v} }
func IntValue(v int64) Value        { return Value{Kind: Integer, Int: v} }
func FloatValue(v float64) Value    { return Value{Kind: Float, Float: v} }
func StringValue(v string) Value    { return Value{Kind: String, Str: v} }
func ListValue(elems []Value) Value { return Value{Kind: List, List: &ListData{Elems: elems}} }
func CodeValue(c *compiler.Code) Value { return Value{Kind: Code, CodeV: c} }
func FrameValue(f *Frame) Value        { return Value{Kind: Frame, FrameV: f} }
func FunctionValue(fn *FunctionData) Value { return Value{Kind: Function, FuncV: fn} }
func NativeValue(n *NativeData) Value      { return Value{Kind: Native, NativeV: n} }
func BoundValue(callable, receiver Value) Value {
	return Value{Kind: Bound, BoundV: &BoundData{Callable: callable, Receiver: receiver}}
}
func TypeVal(t *Type) Value { return Value{Kind: TypeValue, TypeV: t} }

// NewObject returns a fresh Object value of type typ with an empty
// property table.
func NewObject(typ *Type) Value {
	return Value{Kind: Object, ObjectV: &ObjectData{
		Type:       typ,
		Properties: swiss.NewMap[string, Value](0),
	}}
}

// Truthy reports the boolean interpretation of v for control flow
// (JumpFalse). Null and false-Bool are falsy; everything else, including
// zero-valued numbers and the empty string, is truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case Null:
		return false
	case Bool:
		return v.Bool
	default:
		return true
	}
}

// IsCallable reports whether v can appear as the callee of Call without
// falling back to a type-chain call slot.
func (v Value) IsCallable() bool {
	return v.Kind == Function || v.Kind == Native || v.Kind == Bound
}
