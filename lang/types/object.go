// Package types builds the built-in type bootstrap (spec.md §4.7): the
// root `object` type and every derived built-in type, plus the globally
// registered `print` function.
package types

import "github.com/sanscript-lang/sanscript/lang/machine"

func objectType() *machine.Type {
	ty := machine.NewType("object", nil)

	ty.Slots.Display = native("display", machine.ArgExactPat(1), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		return machine.StringValue("<object>"), nil
	})

	ty.Slots.Equals = native("equals", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		return machine.BoolValue(machine.DefaultEquals(args[0], args[1])), nil
	})

	ty.Slots.NotEquals = native("not_equals", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		return machine.BoolValue(!machine.DefaultEquals(args[0], args[1])), nil
	})

	ty.Slots.GetProperty = native("get_property", machine.ArgExactPat(2), func(th *machine.Thread, args []machine.Value) (machine.Value, error) {
		return machine.DefaultGetProperty(th, args[0], args[1].Str)
	})

	ty.Slots.SetProperty = native("set_property", machine.ArgExactPat(3), func(th *machine.Thread, args []machine.Value) (machine.Value, error) {
		if err := machine.DefaultSetProperty(th, args[0], args[1].Str, args[2]); err != nil {
			return machine.Value{}, err
		}
		return machine.NullValue, nil
	})

	return ty
}

// native builds a Native Value; Name is only used in diagnostics.
func native(name string, arity machine.ArgPattern, fn machine.NativeFunc) machine.Value {
	return machine.NativeValue(&machine.NativeData{Name: name, Fn: fn, Arity: arity})
}
