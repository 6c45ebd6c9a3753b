package types

import (
	"strconv"

	"github.com/sanscript-lang/sanscript/lang/machine"
)

func floatType(base *machine.Type) *machine.Type {
	ty := machine.NewType("float", base)

	ty.Slots.Display = native("display", machine.ArgExactPat(1), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		return machine.StringValue(strconv.FormatFloat(args[0].Float, 'g', -1, 64)), nil
	})

	ty.Slots.Add = native("add", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireFloat(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asFloat(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.FloatValue(lhs + rhs), nil
	})

	ty.Slots.Subtract = native("subtract", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireFloat(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asFloat(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.FloatValue(lhs - rhs), nil
	})

	ty.Slots.Multiply = native("multiply", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireFloat(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asFloat(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.FloatValue(lhs * rhs), nil
	})

	ty.Slots.Divide = native("divide", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireFloat(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asFloat(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.FloatValue(lhs / rhs), nil
	})

	ty.Slots.LessThan = native("less_than", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireFloat(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asFloat(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.BoolValue(lhs < rhs), nil
	})

	ty.Slots.GreaterThan = native("greater_than", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireFloat(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asFloat(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.BoolValue(lhs > rhs), nil
	})

	ty.Slots.LessThanOrEqual = native("less_than_or_equal", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireFloat(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asFloat(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.BoolValue(lhs <= rhs), nil
	})

	ty.Slots.GreaterThanOrEqual = native("greater_than_or_equal", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireFloat(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asFloat(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.BoolValue(lhs >= rhs), nil
	})

	return ty
}

// requireFloat is the strict receiver check for float methods, matching the
// original's float(i) accessor: no Int-to-Float coercion, unlike asFloat.
func requireFloat(v machine.Value) (float64, error) {
	if v.Kind != machine.Float {
		return 0, typeMismatch("float", v.Kind)
	}
	return v.Float, nil
}

func asFloat(v machine.Value) (float64, error) {
	switch v.Kind {
	case machine.Float:
		return v.Float, nil
	case machine.Integer:
		return float64(v.Int), nil
	default:
		return 0, typeMismatch("float", v.Kind)
	}
}
