package parser

import (
	"fmt"
	"strings"

	"github.com/sanscript-lang/sanscript/lang/ast"
)

// dump renders a module as an indented, parenthesized tree. It exists for
// golden-file testing of the parser's shape, not as a public pretty-printer.
func dump(mod *ast.Module) string {
	var b strings.Builder
	for _, s := range mod.Stmts {
		dumpStmt(&b, s, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func dumpStmt(b *strings.Builder, s ast.Stmt, depth int) {
	indent(b, depth)
	switch n := s.(type) {
	case *ast.ExprStmt:
		b.WriteString("ExprStmt\n")
		dumpExpr(b, n.X, depth+1)
	case *ast.ReturnStmt:
		b.WriteString("ReturnStmt\n")
		dumpExpr(b, n.X, depth+1)
	case *ast.DeclStmt:
		fmt.Fprintf(b, "DeclStmt %s\n", n.Name)
		if n.Value != nil {
			dumpExpr(b, n.Value, depth+1)
		}
	case *ast.AssignStmt:
		b.WriteString("AssignStmt\n")
		dumpExpr(b, n.Target, depth+1)
		dumpExpr(b, n.Value, depth+1)
	case *ast.IfStmt:
		b.WriteString("IfStmt\n")
		dumpExpr(b, n.Cond, depth+1)
		indent(b, depth+1)
		b.WriteString("Then\n")
		for _, st := range n.Then {
			dumpStmt(b, st, depth+2)
		}
		if n.Else != nil {
			indent(b, depth+1)
			b.WriteString("Else\n")
			for _, st := range n.Else {
				dumpStmt(b, st, depth+2)
			}
		}
	default:
		fmt.Fprintf(b, "?stmt %T\n", n)
	}
}

func dumpExpr(b *strings.Builder, e ast.Expr, depth int) {
	indent(b, depth)
	switch n := e.(type) {
	case *ast.Ident:
		fmt.Fprintf(b, "Ident %s\n", n.Name)
	case *ast.IntLit:
		fmt.Fprintf(b, "IntLit %d\n", n.Value)
	case *ast.FloatLit:
		fmt.Fprintf(b, "FloatLit %g\n", n.Value)
	case *ast.StringLit:
		fmt.Fprintf(b, "StringLit %q\n", n.Value)
	case *ast.BoolLit:
		fmt.Fprintf(b, "BoolLit %t\n", n.Value)
	case *ast.NullLit:
		b.WriteString("NullLit\n")
	case *ast.ListLit:
		fmt.Fprintf(b, "ListLit len=%d\n", len(n.Elems))
		for _, el := range n.Elems {
			dumpExpr(b, el, depth+1)
		}
	case *ast.ObjectLit:
		fmt.Fprintf(b, "ObjectLit len=%d\n", len(n.Fields))
		for _, f := range n.Fields {
			indent(b, depth+1)
			fmt.Fprintf(b, "field %s\n", f.Name)
			dumpExpr(b, f.Value, depth+2)
		}
	case *ast.Property:
		fmt.Fprintf(b, "Property %s\n", n.Name)
		dumpExpr(b, n.X, depth+1)
	case *ast.Subscript:
		b.WriteString("Subscript\n")
		dumpExpr(b, n.X, depth+1)
		dumpExpr(b, n.Index, depth+1)
	case *ast.FuncLit:
		fmt.Fprintf(b, "FuncLit params=%s\n", strings.Join(n.Params, ","))
		for _, st := range n.Body {
			dumpStmt(b, st, depth+1)
		}
	case *ast.Call:
		fmt.Fprintf(b, "Call argc=%d\n", len(n.Args))
		dumpExpr(b, n.Target, depth+1)
		for _, a := range n.Args {
			dumpExpr(b, a, depth+1)
		}
	case *ast.Operation:
		fmt.Fprintf(b, "Operation %s\n", n.Op)
		dumpExpr(b, n.Lhs, depth+1)
		dumpExpr(b, n.Rhs, depth+1)
	default:
		fmt.Fprintf(b, "?expr %T\n", n)
	}
}
