package types

import "github.com/sanscript-lang/sanscript/lang/machine"

func stringType(base *machine.Type) *machine.Type {
	ty := machine.NewType("str", base)

	ty.Slots.Display = native("display", machine.ArgExactPat(1), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		return args[0], nil
	})

	ty.Slots.Add = native("add", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		if args[0].Kind != machine.String {
			return machine.Value{}, typeMismatch("str", args[0].Kind)
		}
		if args[1].Kind != machine.String {
			return machine.Value{}, typeMismatch("str", args[1].Kind)
		}
		return machine.StringValue(args[0].Str + args[1].Str), nil
	})

	return ty
}
