// Package ast defines the abstract syntax tree consumed by the compiler.
//
// Producing this tree (scanning and parsing source text) is deliberately a
// thin external collaborator here: the hard engineering of this module is
// what the compiler and machine packages do with an AST once it exists, not
// how source text becomes one. Every node still carries its source span so
// that compile errors can point back at the program text; runtime errors
// carry no source position.
package ast

import "github.com/sanscript-lang/sanscript/lang/token"

// Node is implemented by every AST node, expression or statement.
type Node interface {
	// Span reports the start and end position of the node in its source.
	Span() (start, end token.Pos)
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmt()
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	expr()
}

// Module is the root of a parsed program: an ordered sequence of statements,
// compiled top to bottom by compiler.Compile.
type Module struct {
	Stmts []Stmt
}
