package ast

import "github.com/sanscript-lang/sanscript/lang/token"

// AssignTarget is implemented by the three kinds of assignable expressions:
// Ident, Property and Subscript. The compiler switches on the concrete type
// to choose between StoreVariable, StoreProperty and StoreSubscript.
type AssignTarget interface {
	Expr
	assignTarget()
}

type (
	// ExprStmt is an expression evaluated for its side effects; the compiler
	// discards its value with Pop.
	ExprStmt struct {
		X          Expr
		Start, End token.Pos
	}

	// ReturnStmt returns the value of X from the enclosing function.
	ReturnStmt struct {
		X          Expr
		Start, End token.Pos
	}

	// DeclStmt introduces a new binding in the current frame, shadowing any
	// outer binding of the same name. Value is nil when the declaration has
	// no initializer (the compiler then emits a Null constant).
	DeclStmt struct {
		Name       string
		Value      Expr // may be nil
		Start, End token.Pos
	}

	// AssignStmt rebinds an existing variable, or writes a property or
	// subscript, to the value of Value.
	AssignStmt struct {
		Target     AssignTarget
		Value      Expr
		Start, End token.Pos
	}

	// IfStmt is a conditional with an optional else branch.
	IfStmt struct {
		Cond       Expr
		Then       []Stmt
		Else       []Stmt // nil if there is no else branch
		Start, End token.Pos
	}
)

func (n *ExprStmt) stmt()   {}
func (n *ReturnStmt) stmt() {}
func (n *DeclStmt) stmt()   {}
func (n *AssignStmt) stmt() {}
func (n *IfStmt) stmt()     {}

func (n *ExprStmt) Span() (token.Pos, token.Pos)   { return n.Start, n.End }
func (n *ReturnStmt) Span() (token.Pos, token.Pos) { return n.Start, n.End }
func (n *DeclStmt) Span() (token.Pos, token.Pos)   { return n.Start, n.End }
func (n *AssignStmt) Span() (token.Pos, token.Pos) { return n.Start, n.End }
func (n *IfStmt) Span() (token.Pos, token.Pos)     { return n.Start, n.End }
