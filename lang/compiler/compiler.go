// Package compiler lowers a parsed AST (lang/ast) into bytecode (Code) that
// the virtual machine in lang/machine can execute.
package compiler

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/sanscript-lang/sanscript/lang/ast"
	"github.com/sanscript-lang/sanscript/lang/token"
)

// Error reports a node the compiler refuses to lower, such as an object
// literal (recognized by the grammar, not yet given construction
// semantics).
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string {
	line, col := e.Pos.LineCol()
	return fmt.Sprintf("%d:%d: %s", line, col, e.Msg)
}

// Compile lowers mod into a top-level Code object, or returns an *Error if
// mod contains an AST shape the compiler does not support.
func Compile(mod *ast.Module) (*Code, error) {
	b := newBuilder(0)
	b.compileStmts(mod.Stmts)
	if b.err != nil {
		return nil, b.err
	}
	b.emit(Instr{Op: Exit, Arg: 0})
	return b.build(), nil
}

// builder accumulates one Code's instructions and pools. Each function
// literal compiles its body into a fresh, nested builder.
type builder struct {
	instrs    []Instr
	constants []Constant
	names     []string
	numParams int
	err       error
}

func newBuilder(numParams int) *builder {
	return &builder{numParams: numParams}
}

func (b *builder) build() *Code {
	return &Code{
		Instrs:    b.instrs,
		Constants: b.constants,
		Names:     b.names,
		NumParams: b.numParams,
	}
}

func (b *builder) emit(in Instr) int {
	b.instrs = append(b.instrs, in)
	return len(b.instrs) - 1
}

func (b *builder) fail(pos token.Pos, format string, args ...any) {
	if b.err == nil {
		b.err = &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
	}
}

func (b *builder) useName(name string) int {
	if i := slices.Index(b.names, name); i >= 0 {
		return i
	}
	b.names = append(b.names, name)
	return len(b.names) - 1
}

func (b *builder) useConstant(c Constant) int {
	if i := slices.IndexFunc(b.constants, c.Equal); i >= 0 {
		return i
	}
	b.constants = append(b.constants, c)
	return len(b.constants) - 1
}

func (b *builder) loadConstant(c Constant) {
	b.emit(Instr{Op: LoadConstant, Arg: b.useConstant(c)})
}

func (b *builder) compileStmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		b.compileStmt(stmt)
		if b.err != nil {
			return
		}
	}
}

func (b *builder) compileStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		b.compileExpr(s.X)
		b.emit(Instr{Op: Return})

	case *ast.ExprStmt:
		b.compileExpr(s.X)
		b.emit(Instr{Op: Pop})

	case *ast.DeclStmt:
		if s.Value != nil {
			b.compileExpr(s.Value)
		} else {
			b.loadConstant(Constant{Kind: ConstNull})
		}
		b.emit(Instr{Op: Declare, Arg: b.useName(s.Name)})

	case *ast.AssignStmt:
		b.compileAssign(s)

	case *ast.IfStmt:
		b.compileIf(s)

	default:
		start, _ := stmt.Span()
		b.fail(start, "unsupported statement %T", stmt)
	}
}

func (b *builder) compileAssign(s *ast.AssignStmt) {
	b.compileExpr(s.Value)
	switch t := s.Target.(type) {
	case *ast.Ident:
		b.emit(Instr{Op: StoreVariable, Arg: b.useName(t.Name)})
	case *ast.Property:
		b.compileExpr(t.X)
		b.emit(Instr{Op: StoreProperty, Arg: b.useName(t.Name)})
	case *ast.Subscript:
		b.compileExpr(t.Index)
		b.compileExpr(t.X)
		b.emit(Instr{Op: StoreSubscript})
	default:
		start, _ := s.Span()
		b.fail(start, "unsupported assignment target %T", t)
	}
}

// compileIf follows the branch-target convention from spec.md §4.2: a
// patched jump's operand is the index of the *last* instruction of its
// destination, relying on the PC's post-increment to land on the
// following one.
func (b *builder) compileIf(s *ast.IfStmt) {
	b.compileExpr(s.Cond)

	jumpFalse := b.emit(Instr{Op: JumpFalse})
	b.compileStmts(s.Then)
	if b.err != nil {
		return
	}

	labelEnd := len(b.instrs)

	if len(s.Else) > 0 {
		jumpEnd := b.emit(Instr{Op: Jump})
		labelEnd++

		b.compileStmts(s.Else)
		if b.err != nil {
			return
		}

		labelElseEnd := len(b.instrs)
		b.instrs[jumpEnd].Arg = labelElseEnd - 1
	}

	b.instrs[jumpFalse].Arg = labelEnd - 1
}

func (b *builder) compileExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.IntLit:
		b.loadConstant(Constant{Kind: ConstInt, Int: e.Value})

	case *ast.FloatLit:
		b.loadConstant(Constant{Kind: ConstFloat, Float: e.Value})

	case *ast.StringLit:
		b.loadConstant(Constant{Kind: ConstString, Str: e.Value})

	case *ast.BoolLit:
		b.loadConstant(Constant{Kind: ConstBool, Bool: e.Value})

	case *ast.NullLit:
		b.loadConstant(Constant{Kind: ConstNull})

	case *ast.Ident:
		b.emit(Instr{Op: LoadVariable, Arg: b.useName(e.Name)})

	case *ast.Operation:
		b.compileOperation(e)

	case *ast.ListLit:
		b.compileList(e)

	case *ast.Property:
		b.compileExpr(e.X)
		b.emit(Instr{Op: LoadProperty, Arg: b.useName(e.Name)})

	case *ast.Subscript:
		b.compileExpr(e.Index)
		b.compileExpr(e.X)
		b.emit(Instr{Op: LoadSubscript})

	case *ast.FuncLit:
		b.compileFuncLit(e)

	case *ast.Call:
		b.compileCall(e)

	case *ast.ObjectLit:
		start, _ := e.Span()
		b.fail(start, "object literals are not supported by the compiler")

	default:
		start, _ := expr.Span()
		b.fail(start, "unsupported expression %T", expr)
	}
}

func (b *builder) compileOperation(e *ast.Operation) {
	// Right-hand operand is compiled first, per spec.md §4.1's evaluation
	// order contract: it ends up deeper in the stack, and the operator
	// pops lhs then rhs.
	b.compileExpr(e.Rhs)
	b.compileExpr(e.Lhs)

	var op Opcode
	switch e.Op {
	case token.PLUS:
		op = Add
	case token.MINUS:
		op = Subtract
	case token.STAR:
		op = Multiply
	case token.SLASH:
		op = Divide
	case token.EQEQ:
		op = Equals
	case token.NEQ:
		op = NotEquals
	case token.LT:
		op = LessThan
	case token.GT:
		op = GreaterThan
	case token.LE:
		op = LessThanOrEqual
	case token.GE:
		op = GreaterThanOrEqual
	default:
		start, _ := e.Span()
		b.fail(start, "unsupported operator %s", e.Op)
		return
	}
	b.emit(Instr{Op: op})
}

func (b *builder) compileList(e *ast.ListLit) {
	for i := len(e.Elems) - 1; i >= 0; i-- {
		b.compileExpr(e.Elems[i])
	}
	b.emit(Instr{Op: CreateList, Arg: len(e.Elems)})
}

func (b *builder) compileCall(e *ast.Call) {
	for i := len(e.Args) - 1; i >= 0; i-- {
		b.compileExpr(e.Args[i])
	}
	b.compileExpr(e.Target)
	b.emit(Instr{Op: Call, Arg: len(e.Args)})
}

func (b *builder) compileFuncLit(e *ast.FuncLit) {
	fb := newBuilder(len(e.Params))
	for _, p := range e.Params {
		fb.useName(p)
	}
	fb.compileStmts(e.Body)
	if fb.err != nil {
		b.err = fb.err
		return
	}
	fb.loadConstant(Constant{Kind: ConstNull})
	fb.emit(Instr{Op: Return})

	b.loadConstant(Constant{Kind: ConstCode, Code: fb.build()})
	b.emit(Instr{Op: CreateFunction})
}
