package types

import "github.com/sanscript-lang/sanscript/lang/machine"

// boolType, nullType, functionType, nativeType, codeType and frameType are
// all display-only: none of them support any other protocol, matching the
// original's built-in type table.

func boolType(base *machine.Type) *machine.Type {
	ty := machine.NewType("bool", base)
	ty.Slots.Display = native("display", machine.ArgExactPat(1), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		if args[0].Bool {
			return machine.StringValue("true"), nil
		}
		return machine.StringValue("false"), nil
	})
	return ty
}

func nullType(base *machine.Type) *machine.Type {
	ty := machine.NewType("null", base)
	ty.Slots.Display = native("display", machine.ArgExactPat(1), func(_ *machine.Thread, _ []machine.Value) (machine.Value, error) {
		return machine.StringValue("null"), nil
	})
	return ty
}

func functionType(base *machine.Type) *machine.Type {
	ty := machine.NewType("function", base)
	ty.Slots.Display = native("display", machine.ArgExactPat(1), func(_ *machine.Thread, _ []machine.Value) (machine.Value, error) {
		return machine.StringValue("<function object>"), nil
	})
	return ty
}

func nativeType(base *machine.Type) *machine.Type {
	ty := machine.NewType("NativeFunction", base)
	ty.Slots.Display = native("display", machine.ArgExactPat(1), func(_ *machine.Thread, _ []machine.Value) (machine.Value, error) {
		return machine.StringValue("<native function>"), nil
	})
	return ty
}

func codeType(base *machine.Type) *machine.Type {
	ty := machine.NewType("Code", base)
	ty.Slots.Display = native("display", machine.ArgExactPat(1), func(_ *machine.Thread, _ []machine.Value) (machine.Value, error) {
		return machine.StringValue("<code object>"), nil
	})
	return ty
}

func frameType(base *machine.Type) *machine.Type {
	ty := machine.NewType("Frame", base)
	ty.Slots.Display = native("display", machine.ArgExactPat(1), func(_ *machine.Thread, _ []machine.Value) (machine.Value, error) {
		return machine.StringValue("<frame object>"), nil
	})
	return ty
}
