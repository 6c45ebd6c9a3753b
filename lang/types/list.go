package types

import (
	"strings"

	"github.com/sanscript-lang/sanscript/lang/machine"
)

func listType(base *machine.Type) *machine.Type {
	ty := machine.NewType("list", base)

	ty.Slots.Display = native("display", machine.ArgExactPat(1), func(th *machine.Thread, args []machine.Value) (machine.Value, error) {
		elems := args[0].List.Elems
		var b strings.Builder
		b.WriteByte('[')
		for i, elem := range elems {
			if i > 0 {
				b.WriteString(", ")
			}
			s, err := machine.Display(th, elem)
			if err != nil {
				return machine.Value{}, err
			}
			b.WriteString(s)
		}
		b.WriteByte(']')
		return machine.StringValue(b.String()), nil
	})

	ty.Slots.GetSubscript = native("get_subscript", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		if args[0].Kind != machine.List {
			return machine.Value{}, typeMismatch("list", args[0].Kind)
		}
		elems := args[0].List.Elems
		if args[1].Kind != machine.Integer {
			return machine.Value{}, typeMismatch("int", args[1].Kind)
		}
		idx := int(args[1].Int)
		if idx < 0 || idx >= len(elems) {
			return machine.Value{}, indexOutOfBounds(idx, len(elems))
		}
		return elems[idx], nil
	})

	ty.Slots.SetSubscript = native("set_subscript", machine.ArgExactPat(3), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		if args[0].Kind != machine.List {
			return machine.Value{}, typeMismatch("list", args[0].Kind)
		}
		elems := args[0].List.Elems
		if args[1].Kind != machine.Integer {
			return machine.Value{}, typeMismatch("int", args[1].Kind)
		}
		idx := int(args[1].Int)
		if idx < 0 || idx >= len(elems) {
			return machine.Value{}, indexOutOfBounds(idx, len(elems))
		}
		elems[idx] = args[2]
		return machine.NullValue, nil
	})

	// Add concatenates into a new list; it never mutates either operand.
	ty.Slots.Add = native("add", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		if args[0].Kind != machine.List {
			return machine.Value{}, typeMismatch("list", args[0].Kind)
		}
		if args[1].Kind != machine.List {
			return machine.Value{}, typeMismatch("list", args[1].Kind)
		}
		lhs, rhs := args[0].List.Elems, args[1].List.Elems
		combined := make([]machine.Value, 0, len(lhs)+len(rhs))
		combined = append(combined, lhs...)
		combined = append(combined, rhs...)
		return machine.ListValue(combined), nil
	})

	// push is an instance method, reached through get_property/binding
	// rather than a slot: it mutates the receiver in place.
	ty.Properties.Put("push", native("push", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		data := args[0].List
		data.Elems = append(data.Elems, args[1])
		return machine.NullValue, nil
	}))

	return ty
}
