package machine_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanscript-lang/sanscript/lang/compiler"
	"github.com/sanscript-lang/sanscript/lang/machine"
	"github.com/sanscript-lang/sanscript/lang/parser"
	"github.com/sanscript-lang/sanscript/lang/types"
)

// run compiles and executes src on a fresh thread, returning everything
// printed to stdout.
func run(t *testing.T, src string) string {
	t.Helper()
	mod, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	code, err := compiler.Compile(mod)
	require.NoError(t, err)

	var out bytes.Buffer
	th := &machine.Thread{Builtins: types.Bootstrap(), Stdout: &out}
	_, err = th.Run(code)
	require.NoError(t, err)
	return out.String()
}

func TestArithmeticPrecedence(t *testing.T) {
	require.Equal(t, "14\n", run(t, "print(2 + 3 * 4);"))
}

func TestClosureCapturesDefiningScope(t *testing.T) {
	src := `
let make = fn() {
	let x = 10;
	return fn() { return x; };
};
print(make()());
`
	require.Equal(t, "10\n", run(t, src))
}

func TestIfElseBranching(t *testing.T) {
	src := `
let n = 100;
if (n > 10) {
	print("big");
} else {
	print("small");
}
`
	require.Equal(t, "big\n", run(t, src))
}

func TestListMethodBindsReceiver(t *testing.T) {
	src := `
let xs = [1, 2];
xs.push(3);
print(xs);
`
	require.Equal(t, "[1, 2, 3]\n", run(t, src))
}

func TestBinaryOpDispatchesOnRightOperandType(t *testing.T) {
	require.Equal(t, "ab\n", run(t, `print("a" + "b");`))
}

func TestNameShadowingInNestedBlock(t *testing.T) {
	src := `
let x = 1;
if (true) {
	let x = 2;
	print(x);
}
print(x);
`
	require.Equal(t, "2\n1\n", run(t, src))
}

func TestUndeclaredAssignmentIsNameUnresolved(t *testing.T) {
	mod, err := parser.Parse([]byte("y = 1;"))
	require.NoError(t, err)
	code, err := compiler.Compile(mod)
	require.NoError(t, err)

	th := &machine.Thread{Builtins: types.Bootstrap(), Stdout: &bytes.Buffer{}}
	_, err = th.Run(code)
	require.Error(t, err)
	rerr, ok := err.(*machine.RuntimeError)
	require.True(t, ok)
	require.Equal(t, machine.NameUnresolved, rerr.Kind)
}

func TestCallerChainNeverConsultedByLoadVariable(t *testing.T) {
	// g is defined in f's local scope, not in h's enclosing chain (h is a
	// plain top-level function, called from inside f): h must not see it.
	src := `
let h = fn() { return g; };
let f = fn() {
	let g = 5;
	return h();
};
f();
`
	mod, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	code, err := compiler.Compile(mod)
	require.NoError(t, err)

	th := &machine.Thread{Builtins: types.Bootstrap(), Stdout: &bytes.Buffer{}}
	_, err = th.Run(code)
	require.Error(t, err)
	rerr, ok := err.(*machine.RuntimeError)
	require.True(t, ok)
	require.Equal(t, machine.NameUnresolved, rerr.Kind)
}

func TestExitInstructionStopsExecution(t *testing.T) {
	code := &compiler.Code{Instrs: []compiler.Instr{{Op: compiler.Exit, Arg: 7}}}
	th := &machine.Thread{Builtins: types.Bootstrap(), Stdout: &bytes.Buffer{}}
	exitCode, err := th.Run(code)
	require.NoError(t, err)
	require.Equal(t, 7, exitCode)
}
