package types

import (
	"strconv"

	"github.com/sanscript-lang/sanscript/lang/machine"
)

func intType(base *machine.Type) *machine.Type {
	ty := machine.NewType("int", base)

	ty.Slots.Display = native("display", machine.ArgExactPat(1), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		return machine.StringValue(strconv.FormatInt(args[0].Int, 10)), nil
	})

	ty.Slots.Add = native("add", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireInt(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asInt(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.IntValue(lhs + rhs), nil
	})

	ty.Slots.Subtract = native("subtract", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireInt(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asInt(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.IntValue(lhs - rhs), nil
	})

	ty.Slots.Multiply = native("multiply", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireInt(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asInt(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.IntValue(lhs * rhs), nil
	})

	ty.Slots.Divide = native("divide", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireInt(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asInt(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		if rhs == 0 {
			return machine.Value{}, machine.NewError(machine.TypeMismatch, "division by zero")
		}
		return machine.IntValue(lhs / rhs), nil
	})

	ty.Slots.LessThan = native("less_than", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireInt(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asInt(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.BoolValue(lhs < rhs), nil
	})

	ty.Slots.GreaterThan = native("greater_than", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireInt(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asInt(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.BoolValue(lhs > rhs), nil
	})

	ty.Slots.LessThanOrEqual = native("less_than_or_equal", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireInt(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asInt(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.BoolValue(lhs <= rhs), nil
	})

	ty.Slots.GreaterThanOrEqual = native("greater_than_or_equal", machine.ArgExactPat(2), func(_ *machine.Thread, args []machine.Value) (machine.Value, error) {
		lhs, err := requireInt(args[0])
		if err != nil {
			return machine.Value{}, err
		}
		rhs, err := asInt(args[1])
		if err != nil {
			return machine.Value{}, err
		}
		return machine.BoolValue(lhs >= rhs), nil
	})

	return ty
}

// requireInt is the strict receiver check for int methods, matching the
// original's int(i) accessor: no Float-to-Int coercion, unlike asInt.
func requireInt(v machine.Value) (int64, error) {
	if v.Kind != machine.Integer {
		return 0, typeMismatch("int", v.Kind)
	}
	return v.Int, nil
}

// asInt coerces an int-or-float rhs to an int64, matching the original's
// as_int numeric-tower coercion for mixed int/float arithmetic.
func asInt(v machine.Value) (int64, error) {
	switch v.Kind {
	case machine.Integer:
		return v.Int, nil
	case machine.Float:
		return int64(v.Float), nil
	default:
		return 0, typeMismatch("int", v.Kind)
	}
}
