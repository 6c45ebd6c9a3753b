package machine

import "github.com/dolthub/swiss"

// Slots holds the optional protocol operations a Type may implement. Each
// slot, when non-empty, is a callable Value (Native or user Function).
// Slots are inherited: dispatch walks Base until a non-empty slot is
// found.
type Slots struct {
	Call      Value
	Add       Value
	Subtract  Value
	Multiply  Value
	Divide    Value
	Equals    Value
	NotEquals Value

	LessThan           Value
	GreaterThan        Value
	LessThanOrEqual    Value
	GreaterThanOrEqual Value

	Display Value

	GetProperty  Value
	SetProperty  Value
	GetSubscript Value
	SetSubscript Value
}

// Type is a prototype-style type descriptor: a name, an optional base
// (forming a single-inheritance chain rooted at object), a property
// table, and the protocol Slots above.
type Type struct {
	Name       string
	Base       *Type
	Properties *swiss.Map[string, Value]
	Slots      Slots
}

// NewType constructs a named type deriving from base (nil only for the
// root object type).
func NewType(name string, base *Type) *Type {
	return &Type{
		Name:       name,
		Base:       base,
		Properties: swiss.NewMap[string, Value](0),
	}
}

// slot and the per-protocol accessors below walk the base chain,
// returning the first non-empty slot encountered, per spec.md §4.5.

func emptySlot(v Value) bool { return v.Kind == Null }

func (t *Type) slot(get func(*Type) Value) (Value, bool) {
	for cur := t; cur != nil; cur = cur.Base {
		if v := get(cur); !emptySlot(v) {
			return v, true
		}
	}
	return Value{}, false
}

func (t *Type) callSlot() (Value, bool)      { return t.slot(func(t *Type) Value { return t.Slots.Call }) }
func (t *Type) addSlot() (Value, bool)       { return t.slot(func(t *Type) Value { return t.Slots.Add }) }
func (t *Type) subtractSlot() (Value, bool)  { return t.slot(func(t *Type) Value { return t.Slots.Subtract }) }
func (t *Type) multiplySlot() (Value, bool)  { return t.slot(func(t *Type) Value { return t.Slots.Multiply }) }
func (t *Type) divideSlot() (Value, bool)    { return t.slot(func(t *Type) Value { return t.Slots.Divide }) }
func (t *Type) equalsSlot() (Value, bool)    { return t.slot(func(t *Type) Value { return t.Slots.Equals }) }
func (t *Type) notEqualsSlot() (Value, bool) { return t.slot(func(t *Type) Value { return t.Slots.NotEquals }) }
func (t *Type) lessThanSlot() (Value, bool)  { return t.slot(func(t *Type) Value { return t.Slots.LessThan }) }
func (t *Type) greaterThanSlot() (Value, bool) {
	return t.slot(func(t *Type) Value { return t.Slots.GreaterThan })
}
func (t *Type) lessThanOrEqualSlot() (Value, bool) {
	return t.slot(func(t *Type) Value { return t.Slots.LessThanOrEqual })
}
func (t *Type) greaterThanOrEqualSlot() (Value, bool) {
	return t.slot(func(t *Type) Value { return t.Slots.GreaterThanOrEqual })
}
func (t *Type) displaySlot() (Value, bool) {
	return t.slot(func(t *Type) Value { return t.Slots.Display })
}
func (t *Type) getPropertySlot() (Value, bool) {
	return t.slot(func(t *Type) Value { return t.Slots.GetProperty })
}
func (t *Type) setPropertySlot() (Value, bool) {
	return t.slot(func(t *Type) Value { return t.Slots.SetProperty })
}
func (t *Type) getSubscriptSlot() (Value, bool) {
	return t.slot(func(t *Type) Value { return t.Slots.GetSubscript })
}
func (t *Type) setSubscriptSlot() (Value, bool) {
	return t.slot(func(t *Type) Value { return t.Slots.SetSubscript })
}

// lookupProperty walks t's property table, then its base's, returning the
// first hit. This is step 2 of the default get_property algorithm in
// spec.md §4.5.
func (t *Type) lookupProperty(name string) (Value, bool) {
	for cur := t; cur != nil; cur = cur.Base {
		if v, ok := cur.Properties.Get(name); ok {
			return v, true
		}
	}
	return Value{}, false
}

// TypeOf returns the runtime type of v: the built-in type for scalar
// kinds, the Object's own stored type for Object values, and the
// receiver's type for Bound values.
func TypeOf(b *Builtins, v Value) *Type {
	switch v.Kind {
	case Null:
		return b.NullType
	case Bool:
		return b.BoolType
	case Integer:
		return b.IntType
	case Float:
		return b.FloatType
	case String:
		return b.StrType
	case List:
		return b.ListType
	case Object:
		return v.ObjectV.Type
	case Code:
		return b.CodeType
	case Frame:
		return b.FrameType
	case Function:
		return b.FunctionType
	case Native:
		return b.NativeType
	case Bound:
		return TypeOf(b, v.BoundV.Receiver)
	case TypeValue:
		// object doubles as the type-of-types, per spec.md §4.7.
		return b.ObjectType
	default:
		return b.ObjectType
	}
}
