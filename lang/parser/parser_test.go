package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanscript-lang/sanscript/lang/ast"
)

func TestParseArithmeticPrecedence(t *testing.T) {
	mod, err := Parse([]byte("print(2 + 3 * 4);"))
	require.NoError(t, err)
	require.Len(t, mod.Stmts, 1)

	es, ok := mod.Stmts[0].(*ast.ExprStmt)
	require.True(t, ok)
	call, ok := es.X.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 1)

	op, ok := call.Args[0].(*ast.Operation)
	require.True(t, ok, "top-level op should be +, found %T", call.Args[0])
	rhs, ok := op.Rhs.(*ast.Operation)
	require.True(t, ok, "right operand of + should be a nested * operation")
	require.Equal(t, int64(3), rhs.Lhs.(*ast.IntLit).Value)
	require.Equal(t, int64(4), rhs.Rhs.(*ast.IntLit).Value)
}

func TestParseLetAndIf(t *testing.T) {
	mod, err := Parse([]byte(`
		let x = 1;
		if (x < 2) {
			x = x + 1;
		} else {
			x = 0;
		}
	`))
	require.NoError(t, err)
	require.Len(t, mod.Stmts, 2)

	decl, ok := mod.Stmts[0].(*ast.DeclStmt)
	require.True(t, ok)
	require.Equal(t, "x", decl.Name)

	ifs, ok := mod.Stmts[1].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, ifs.Then, 1)
	require.Len(t, ifs.Else, 1)
}

func TestParsePostfixChain(t *testing.T) {
	mod, err := Parse([]byte("a.b[0](1, 2);"))
	require.NoError(t, err)
	require.Len(t, mod.Stmts, 1)

	es := mod.Stmts[0].(*ast.ExprStmt)
	call, ok := es.X.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)

	sub, ok := call.Target.(*ast.Subscript)
	require.True(t, ok)
	prop, ok := sub.X.(*ast.Property)
	require.True(t, ok)
	require.Equal(t, "b", prop.Name)
}

func TestParseFuncLitAndReturn(t *testing.T) {
	mod, err := Parse([]byte("let f = fn(x, y) { return x + y; };"))
	require.NoError(t, err)
	decl := mod.Stmts[0].(*ast.DeclStmt)
	fn, ok := decl.Value.(*ast.FuncLit)
	require.True(t, ok)
	require.Equal(t, []string{"x", "y"}, fn.Params)
	require.Len(t, fn.Body, 1)
	_, ok = fn.Body[0].(*ast.ReturnStmt)
	require.True(t, ok)
}

func TestParseObjectLiteral(t *testing.T) {
	mod, err := Parse([]byte("let o = {x: 1, y: 2};"))
	require.NoError(t, err)
	decl := mod.Stmts[0].(*ast.DeclStmt)
	obj, ok := decl.Value.(*ast.ObjectLit)
	require.True(t, ok)
	require.Len(t, obj.Fields, 2)
	require.Equal(t, "x", obj.Fields[0].Name)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("let = 1;"))
	require.Error(t, err)
}
