package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanscript-lang/sanscript/lang/parser"
)

func compile(t *testing.T, src string) *Code {
	t.Helper()
	mod, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	code, err := Compile(mod)
	require.NoError(t, err)
	return code
}

func ops(code *Code) []Opcode {
	out := make([]Opcode, len(code.Instrs))
	for i, in := range code.Instrs {
		out[i] = in.Op
	}
	return out
}

func TestCompileArithmeticEvaluationOrder(t *testing.T) {
	// 2 + 3 * 4: rhs of the top-level Add (the "3 * 4" operation) must be
	// fully emitted before the lhs "2", since Add pops lhs then rhs.
	code := compile(t, "2 + 3 * 4;")
	require.Equal(t, []Opcode{
		LoadConstant, // 4
		LoadConstant, // 3
		Multiply,
		LoadConstant, // 2
		Add,
		Pop,
		Exit,
	}, ops(code))
}

func TestCompileConstantInterning(t *testing.T) {
	code := compile(t, "1; 1; 2;")
	require.Len(t, code.Constants, 2)
	require.Equal(t, int64(1), code.Constants[0].Int)
	require.Equal(t, int64(2), code.Constants[1].Int)
}

func TestCompileNameInterning(t *testing.T) {
	code := compile(t, "let x = 1; x = x;")
	require.Len(t, code.Names, 1)
	require.Equal(t, "x", code.Names[0])
}

func TestCompileIfWithoutElse(t *testing.T) {
	code := compile(t, "if (1) { 2; }")
	// cond, JumpFalse, body(2;), Exit
	require.Equal(t, []Opcode{LoadConstant, JumpFalse, LoadConstant, Pop, Exit}, ops(code))

	jf := code.Instrs[1]
	require.Equal(t, JumpFalse, jf.Op)
	require.Equal(t, len(code.Instrs)-2, jf.Arg, "jump_false should target the last instruction of the then-body")
}

func TestCompileIfWithElse(t *testing.T) {
	code := compile(t, "if (1) { 2; } else { 3; }")
	require.Equal(t, []Opcode{
		LoadConstant, // cond
		JumpFalse,
		LoadConstant, // then: 2
		Pop,
		Jump,
		LoadConstant, // else: 3
		Pop,
		Exit,
	}, ops(code))

	jf := code.Instrs[1]
	jmp := code.Instrs[4]
	require.Equal(t, 4, jf.Arg, "jump_false should land on the unconditional jump closing the then-body")
	require.Equal(t, len(code.Instrs)-2, jmp.Arg, "jump should target the last instruction of the else-body")
}

func TestCompileAssignmentTargets(t *testing.T) {
	code := compile(t, "let x = []; x.a = 1; x[0] = 2;")
	var propIdx, subIdx int
	for i, in := range code.Instrs {
		if in.Op == StoreProperty {
			propIdx = i
		}
		if in.Op == StoreSubscript {
			subIdx = i
		}
	}
	require.NotZero(t, propIdx)
	require.NotZero(t, subIdx)
}

func TestCompileCallArgumentOrder(t *testing.T) {
	code := compile(t, "f(1, 2, 3);")
	// args pushed in reverse, then the callee: Call pops the callee first,
	// then argument 0.
	require.Equal(t, []Opcode{
		LoadConstant, // 3
		LoadConstant, // 2
		LoadConstant, // 1
		LoadVariable, // f
		Call,
		Pop,
		Exit,
	}, ops(code))
	call := code.Instrs[4]
	require.Equal(t, 3, call.Arg)
}

func TestCompileFuncLitEmbedsCode(t *testing.T) {
	code := compile(t, "let f = fn(x) { return x; };")
	require.Len(t, code.Constants, 1)
	fnConst := code.Constants[0]
	require.Equal(t, ConstCode, fnConst.Kind)
	require.Equal(t, 1, fnConst.Code.NumParams)
	require.Equal(t, []string{"x"}, fnConst.Code.ParamNames())

	last := fnConst.Code.Instrs[len(fnConst.Code.Instrs)-1]
	require.Equal(t, Return, last.Op)
}

func TestCompileObjectLiteralRejected(t *testing.T) {
	mod, err := parser.Parse([]byte("let o = {x: 1};"))
	require.NoError(t, err)
	_, err = Compile(mod)
	require.Error(t, err)
	require.IsType(t, &Error{}, err)
}

func TestCompileCodeConstantsNeverEqual(t *testing.T) {
	code := compile(t, "let f = fn() { return 1; }; let g = fn() { return 1; };")
	var codeConsts int
	for _, c := range code.Constants {
		if c.Kind == ConstCode {
			codeConsts++
		}
	}
	require.Equal(t, 2, codeConsts, "structurally identical function literals must each get their own constant slot")
}
