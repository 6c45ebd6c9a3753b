package machine

import "github.com/sanscript-lang/sanscript/lang/compiler"

// Invoke calls a value per spec.md §4.6. It handles the three invocable
// shapes (Function, Native, Bound) directly and falls back to the value's type-chain `call` slot for
// everything else.
func Invoke(th *Thread, callable Value, args []Value) (Value, error) {
	switch callable.Kind {
	case Function:
		return th.callFunction(callable.FuncV, args)

	case Native:
		n := callable.NativeV
		if !n.Arity.Matches(len(args)) {
			return Value{}, newError(ArityMismatch, "native function %q expects %s, got %d", n.Name, n.Arity, len(args))
		}
		return n.Fn(th, args)

	case Bound:
		extended := make([]Value, 0, len(args)+1)
		extended = append(extended, callable.BoundV.Receiver)
		extended = append(extended, args...)
		return Invoke(th, callable.BoundV.Callable, extended)

	default:
		ty := TypeOf(th.Builtins, callable)
		slot, ok := ty.callSlot()
		if !ok {
			return Value{}, newError(ProtocolMissing, "value of type %q does not support call", ty.Name)
		}
		extended := make([]Value, 0, len(args)+1)
		extended = append(extended, callable)
		extended = append(extended, args...)
		return Invoke(th, slot, extended)
	}
}

// bind wraps v in a Bound value if it is callable, so that property
// lookups that find a method yield a receiver-carrying callable rather
// than a bare function (spec.md §4.5's "binding" rule).
func bind(receiver, v Value) Value {
	if v.IsCallable() {
		return BoundValue(v, receiver)
	}
	return v
}

// GetProperty dispatches LoadProperty through obj's type-chain
// get_property slot.
func GetProperty(th *Thread, obj Value, name string) (Value, error) {
	ty := TypeOf(th.Builtins, obj)
	slot, ok := ty.getPropertySlot()
	if !ok {
		return Value{}, newError(ProtocolMissing, "value of type %q does not support get_property", ty.Name)
	}
	return Invoke(th, slot, []Value{obj, StringValue(name)})
}

// SetProperty dispatches StoreProperty through obj's type-chain
// set_property slot.
func SetProperty(th *Thread, obj Value, name string, val Value) (Value, error) {
	ty := TypeOf(th.Builtins, obj)
	slot, ok := ty.setPropertySlot()
	if !ok {
		return Value{}, newError(ProtocolMissing, "value of type %q does not support set_property", ty.Name)
	}
	return Invoke(th, slot, []Value{obj, StringValue(name), val})
}

// GetSubscript dispatches LoadSubscript through obj's type-chain
// get_subscript slot, with no instance-level fast path.
func GetSubscript(th *Thread, obj, idx Value) (Value, error) {
	ty := TypeOf(th.Builtins, obj)
	slot, ok := ty.getSubscriptSlot()
	if !ok {
		return Value{}, newError(ProtocolMissing, "value of type %q does not support get_subscript", ty.Name)
	}
	return Invoke(th, slot, []Value{obj, idx})
}

// SetSubscript dispatches StoreSubscript through obj's type-chain
// set_subscript slot.
func SetSubscript(th *Thread, obj, idx, val Value) (Value, error) {
	ty := TypeOf(th.Builtins, obj)
	slot, ok := ty.setSubscriptSlot()
	if !ok {
		return Value{}, newError(ProtocolMissing, "value of type %q does not support set_subscript", ty.Name)
	}
	return Invoke(th, slot, []Value{obj, idx, val})
}

// Display dispatches through v's type-chain display slot and requires a
// String result.
func Display(th *Thread, v Value) (string, error) {
	ty := TypeOf(th.Builtins, v)
	slot, ok := ty.displaySlot()
	if !ok {
		return "", newError(ProtocolMissing, "value of type %q does not support display", ty.Name)
	}
	res, err := Invoke(th, slot, []Value{v})
	if err != nil {
		return "", err
	}
	if res.Kind != String {
		return "", newError(TypeMismatch, "display must return a string, got %s", res.Kind)
	}
	return res.Str, nil
}

// binarySlot maps a compiler.Opcode for a binary instruction to the slot
// accessor it dispatches through.
func (t *Type) binarySlot(op compiler.Opcode) (Value, bool) {
	switch op {
	case compiler.Add:
		return t.addSlot()
	case compiler.Subtract:
		return t.subtractSlot()
	case compiler.Multiply:
		return t.multiplySlot()
	case compiler.Divide:
		return t.divideSlot()
	case compiler.Equals:
		return t.equalsSlot()
	case compiler.NotEquals:
		return t.notEqualsSlot()
	case compiler.LessThan:
		return t.lessThanSlot()
	case compiler.GreaterThan:
		return t.greaterThanSlot()
	case compiler.LessThanOrEqual:
		return t.lessThanOrEqualSlot()
	case compiler.GreaterThanOrEqual:
		return t.greaterThanOrEqualSlot()
	default:
		return Value{}, false
	}
}

// BinaryOp dispatches one of the ten binary instructions per spec.md §4.5:
// the operator slot is looked up on rhs's type, walking its base chain,
// and invoked with [lhs, rhs].
func BinaryOp(th *Thread, op compiler.Opcode, lhs, rhs Value) (Value, error) {
	ty := TypeOf(th.Builtins, rhs)
	slot, ok := ty.binarySlot(op)
	if !ok {
		return Value{}, newError(ProtocolMissing, "value of type %q does not support %s", ty.Name, op)
	}
	return Invoke(th, slot, []Value{lhs, rhs})
}

// DefaultGetProperty implements the root type's canonical get_property
// algorithm (spec.md §4.5): an Object's own instance table is checked
// first, then the type chain's property table; callables found either way
// are bound to target before being returned.
func DefaultGetProperty(th *Thread, target Value, name string) (Value, error) {
	if target.Kind == Object {
		if v, ok := target.ObjectV.Properties.Get(name); ok {
			return bind(target, v), nil
		}
	}

	ty := TypeOf(th.Builtins, target)
	if v, ok := ty.lookupProperty(name); ok {
		return bind(target, v), nil
	}

	return Value{}, newError(PropertyMissing, "value of type %q has no property %q", ty.Name, name)
}

// DefaultSetProperty implements the root type's set_property: only Object
// values carry an instance property table to write to.
func DefaultSetProperty(th *Thread, target Value, name string, val Value) error {
	if target.Kind != Object {
		ty := TypeOf(th.Builtins, target)
		return newError(ProtocolMissing, "value of type %q does not support set_property", ty.Name)
	}
	target.ObjectV.Properties.Put(name, val)
	return nil
}

// DefaultEquals implements the root type's cross-type coercive equality
// matrix (spec.md §4.5, ground truth original_source::equals): numeric
// cross-type comparison by value/truthiness, identity for Type/Object/
// Native, content equality for strings, and Null == Null.
func DefaultEquals(lhs, rhs Value) bool {
	switch lhs.Kind {
	case Bool:
		switch rhs.Kind {
		case Bool:
			return lhs.Bool == rhs.Bool
		case Integer:
			return lhs.Bool == (rhs.Int != 0)
		case Float:
			return lhs.Bool == (rhs.Float != 0)
		}
	case Integer:
		switch rhs.Kind {
		case Integer:
			return lhs.Int == rhs.Int
		case Float:
			return float64(lhs.Int) == rhs.Float
		case Bool:
			return (lhs.Int != 0) == rhs.Bool
		}
	case Float:
		switch rhs.Kind {
		case Float:
			return lhs.Float == rhs.Float
		case Integer:
			return lhs.Float == float64(rhs.Int)
		case Bool:
			return (lhs.Float != 0) == rhs.Bool
		}
	case String:
		return rhs.Kind == String && lhs.Str == rhs.Str
	case Null:
		return rhs.Kind == Null
	case TypeValue:
		return rhs.Kind == TypeValue && lhs.TypeV == rhs.TypeV
	case Object:
		return rhs.Kind == Object && lhs.ObjectV == rhs.ObjectV
	case Native:
		return rhs.Kind == Native && lhs.NativeV == rhs.NativeV
	}
	return false
}
