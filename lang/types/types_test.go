package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanscript-lang/sanscript/lang/compiler"
	"github.com/sanscript-lang/sanscript/lang/machine"
	"github.com/sanscript-lang/sanscript/lang/types"
)

func display(t *testing.T, th *machine.Thread, v machine.Value) string {
	t.Helper()
	s, err := machine.Display(th, v)
	require.NoError(t, err)
	return s
}

func TestDisplayEveryScalarKind(t *testing.T) {
	th := &machine.Thread{Builtins: types.Bootstrap()}

	require.Equal(t, "null", display(t, th, machine.NullValue))
	require.Equal(t, "true", display(t, th, machine.BoolValue(true)))
	require.Equal(t, "false", display(t, th, machine.BoolValue(false)))
	require.Equal(t, "42", display(t, th, machine.IntValue(42)))
	require.Equal(t, "3.5", display(t, th, machine.FloatValue(3.5)))
	require.Equal(t, "hi", display(t, th, machine.StringValue("hi")))
	require.Equal(t, "[1, 2]", display(t, th, machine.ListValue([]machine.Value{machine.IntValue(1), machine.IntValue(2)})))
}

func TestEqualsReflexivity(t *testing.T) {
	th := &machine.Thread{Builtins: types.Bootstrap()}
	cases := []machine.Value{
		machine.BoolValue(true),
		machine.IntValue(7),
		machine.FloatValue(1.5),
		machine.StringValue("x"),
		machine.NullValue,
	}
	for _, v := range cases {
		res, err := machine.BinaryOp(th, compiler.Equals, v, v)
		require.NoError(t, err)
		require.True(t, res.Truthy(), "%v should equal itself", v)
	}
}

func TestListAddDoesNotMutateOperands(t *testing.T) {
	th := &machine.Thread{Builtins: types.Bootstrap()}
	a := machine.ListValue([]machine.Value{machine.IntValue(1)})
	b := machine.ListValue([]machine.Value{machine.IntValue(2)})

	sum, err := machine.BinaryOp(th, compiler.Add, a, b)
	require.NoError(t, err)

	require.Len(t, a.List.Elems, 1, "lhs operand must be unchanged")
	require.Len(t, b.List.Elems, 1, "rhs operand must be unchanged")
	require.Len(t, sum.List.Elems, 2)
}

func TestListPushMutatesReceiverInPlace(t *testing.T) {
	th := &machine.Thread{Builtins: types.Bootstrap()}
	xs := machine.ListValue([]machine.Value{machine.IntValue(1)})

	push, err := machine.GetProperty(th, xs, "push")
	require.NoError(t, err)

	_, err = machine.Invoke(th, push, []machine.Value{machine.IntValue(2)})
	require.NoError(t, err)
	require.Equal(t, []machine.Value{machine.IntValue(1), machine.IntValue(2)}, xs.List.Elems)
}

func TestIntDivisionByZero(t *testing.T) {
	th := &machine.Thread{Builtins: types.Bootstrap()}
	_, err := machine.BinaryOp(th, compiler.Divide, machine.IntValue(1), machine.IntValue(0))
	require.Error(t, err)
}
