package ast

import "github.com/sanscript-lang/sanscript/lang/token"

type (
	// Ident is a variable reference, and an AssignTarget for plain
	// assignment; it compiles to LoadVariable/StoreVariable.
	Ident struct {
		Name       string
		Start, End token.Pos
	}

	// IntLit is an integer literal.
	IntLit struct {
		Value      int64
		Start, End token.Pos
	}

	// FloatLit is a floating point literal.
	FloatLit struct {
		Value      float64
		Start, End token.Pos
	}

	// StringLit is a string literal.
	StringLit struct {
		Value      string
		Start, End token.Pos
	}

	// BoolLit is a true/false literal.
	BoolLit struct {
		Value      bool
		Start, End token.Pos
	}

	// NullLit is the null literal.
	NullLit struct {
		Start, End token.Pos
	}

	// ListLit is a list literal, e.g. [1, 2, 3].
	ListLit struct {
		Elems      []Expr
		Start, End token.Pos
	}

	// ObjectField is a single key/value pair of an ObjectLit.
	ObjectField struct {
		Name  string
		Value Expr
	}

	// ObjectLit is an object literal, e.g. {x: 1, y: 2}. Recognized by the
	// parser but, per spec, rejected by the compiler: object construction is
	// left to a future extension.
	ObjectLit struct {
		Fields     []ObjectField
		Start, End token.Pos
	}

	// Property is a dotted attribute access (x.name), and an AssignTarget for
	// StoreProperty.
	Property struct {
		X          Expr
		Name       string
		Start, End token.Pos
	}

	// Subscript is an index access (x[k]), and an AssignTarget for
	// StoreSubscript.
	Subscript struct {
		X, Index   Expr
		Start, End token.Pos
	}

	// FuncLit is a function literal: fn(params...) { body }.
	FuncLit struct {
		Params     []string
		Body       []Stmt
		Start, End token.Pos
	}

	// Call is a function (or method, via a Property target) call.
	Call struct {
		Target     Expr
		Args       []Expr
		Start, End token.Pos
	}

	// Operation is one of the ten binary operators named in spec §6.
	Operation struct {
		Lhs, Rhs   Expr
		Op         token.Token
		Start, End token.Pos
	}
)

func (n *Ident) expr()     {}
func (n *IntLit) expr()    {}
func (n *FloatLit) expr()  {}
func (n *StringLit) expr() {}
func (n *BoolLit) expr()   {}
func (n *NullLit) expr()   {}
func (n *ListLit) expr()   {}
func (n *ObjectLit) expr() {}
func (n *Property) expr()  {}
func (n *Subscript) expr() {}
func (n *FuncLit) expr()   {}
func (n *Call) expr()      {}
func (n *Operation) expr() {}

func (n *Ident) assignTarget()     {}
func (n *Property) assignTarget()  {}
func (n *Subscript) assignTarget() {}

func (n *Ident) Span() (token.Pos, token.Pos)     { return n.Start, n.End }
func (n *IntLit) Span() (token.Pos, token.Pos)    { return n.Start, n.End }
func (n *FloatLit) Span() (token.Pos, token.Pos)  { return n.Start, n.End }
func (n *StringLit) Span() (token.Pos, token.Pos) { return n.Start, n.End }
func (n *BoolLit) Span() (token.Pos, token.Pos)   { return n.Start, n.End }
func (n *NullLit) Span() (token.Pos, token.Pos)   { return n.Start, n.End }
func (n *ListLit) Span() (token.Pos, token.Pos)   { return n.Start, n.End }
func (n *ObjectLit) Span() (token.Pos, token.Pos) { return n.Start, n.End }
func (n *Property) Span() (token.Pos, token.Pos)  { return n.Start, n.End }
func (n *Subscript) Span() (token.Pos, token.Pos) { return n.Start, n.End }
func (n *FuncLit) Span() (token.Pos, token.Pos)   { return n.Start, n.End }
func (n *Call) Span() (token.Pos, token.Pos)      { return n.Start, n.End }
func (n *Operation) Span() (token.Pos, token.Pos) { return n.Start, n.End }
