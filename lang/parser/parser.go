// Package parser builds lang/ast trees from source text, using lang/scanner
// to tokenize. Like scanner, this is a thin external collaborator: the
// grammar is the minimal one spec.md §6 names, just enough to exercise the
// compiler and machine packages end to end.
package parser

import (
	"fmt"

	"github.com/sanscript-lang/sanscript/lang/ast"
	"github.com/sanscript-lang/sanscript/lang/scanner"
	"github.com/sanscript-lang/sanscript/lang/token"
)

// Error reports a syntax error at a source position.
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string {
	line, col := e.Pos.LineCol()
	return fmt.Sprintf("%d:%d: %s", line, col, e.Msg)
}

// Parser turns a token stream into an *ast.Module.
type Parser struct {
	sc   scanner.Scanner
	tok  token.Token
	val  token.Value
	pos  token.Pos
	err  error
}

// Parse scans and parses src as a complete module.
func Parse(src []byte) (*ast.Module, error) {
	p := &Parser{}
	p.sc.Init(src)
	p.next()
	mod := &ast.Module{}
	for p.tok != token.EOF && p.err == nil {
		mod.Stmts = append(mod.Stmts, p.statement())
	}
	return mod, p.err
}

func (p *Parser) next() {
	if p.err != nil {
		return
	}
	tok, val, pos, err := p.sc.Scan()
	if err != nil {
		p.err = err
		return
	}
	p.tok, p.val, p.pos = tok, val, pos
}

func (p *Parser) fail(format string, args ...any) {
	if p.err == nil {
		p.err = &Error{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
	}
}

func (p *Parser) expect(tok token.Token) token.Pos {
	pos := p.pos
	if p.tok != tok {
		p.fail("expected %s, found %s", tok, p.tok)
		return pos
	}
	p.next()
	return pos
}

func (p *Parser) block() []ast.Stmt {
	p.expect(token.LBRACE)
	var stmts []ast.Stmt
	for p.tok != token.RBRACE && p.tok != token.EOF && p.err == nil {
		stmts = append(stmts, p.statement())
	}
	p.expect(token.RBRACE)
	return stmts
}

func (p *Parser) statement() ast.Stmt {
	start := p.pos
	switch p.tok {
	case token.LET:
		p.next()
		name := p.val.Raw
		p.expect(token.IDENT)
		var value ast.Expr
		if p.tok == token.EQ {
			p.next()
			value = p.expr()
		}
		end := p.pos
		p.expect(token.SEMI)
		return &ast.DeclStmt{Name: name, Value: value, Start: start, End: end}

	case token.RETURN:
		p.next()
		x := p.expr()
		end := p.pos
		p.expect(token.SEMI)
		return &ast.ReturnStmt{X: x, Start: start, End: end}

	case token.IF:
		return p.ifStmt()

	default:
		x := p.expr()
		if target, ok := x.(ast.AssignTarget); ok && p.tok == token.EQ {
			p.next()
			value := p.expr()
			end := p.pos
			p.expect(token.SEMI)
			return &ast.AssignStmt{Target: target, Value: value, Start: start, End: end}
		}
		end := p.pos
		p.expect(token.SEMI)
		return &ast.ExprStmt{X: x, Start: start, End: end}
	}
}

func (p *Parser) ifStmt() ast.Stmt {
	start := p.pos
	p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.expr()
	p.expect(token.RPAREN)
	then := p.block()
	var els []ast.Stmt
	end := p.pos
	if p.tok == token.ELSE {
		p.next()
		if p.tok == token.IF {
			els = []ast.Stmt{p.ifStmt()}
		} else {
			els = p.block()
		}
		end = p.pos
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els, Start: start, End: end}
}

func (p *Parser) expr() ast.Expr { return p.equality() }

func (p *Parser) equality() ast.Expr {
	x := p.comparison()
	for p.tok == token.EQEQ || p.tok == token.NEQ {
		op, start := p.tok, p.pos
		p.next()
		rhs := p.comparison()
		x = &ast.Operation{Lhs: x, Rhs: rhs, Op: op, Start: start, End: p.pos}
	}
	return x
}

func (p *Parser) comparison() ast.Expr {
	x := p.additive()
	for p.tok == token.LT || p.tok == token.GT || p.tok == token.LE || p.tok == token.GE {
		op, start := p.tok, p.pos
		p.next()
		rhs := p.additive()
		x = &ast.Operation{Lhs: x, Rhs: rhs, Op: op, Start: start, End: p.pos}
	}
	return x
}

func (p *Parser) additive() ast.Expr {
	x := p.multiplicative()
	for p.tok == token.PLUS || p.tok == token.MINUS {
		op, start := p.tok, p.pos
		p.next()
		rhs := p.multiplicative()
		x = &ast.Operation{Lhs: x, Rhs: rhs, Op: op, Start: start, End: p.pos}
	}
	return x
}

func (p *Parser) multiplicative() ast.Expr {
	x := p.postfix()
	for p.tok == token.STAR || p.tok == token.SLASH {
		op, start := p.tok, p.pos
		p.next()
		rhs := p.postfix()
		x = &ast.Operation{Lhs: x, Rhs: rhs, Op: op, Start: start, End: p.pos}
	}
	return x
}

func (p *Parser) postfix() ast.Expr {
	x := p.primary()
	for {
		switch p.tok {
		case token.DOT:
			p.next()
			name := p.val.Raw
			end := p.pos
			p.expect(token.IDENT)
			x = &ast.Property{X: x, Name: name, Start: end, End: p.pos}
		case token.LBRACK:
			p.next()
			idx := p.expr()
			end := p.expect(token.RBRACK)
			x = &ast.Subscript{X: x, Index: idx, Start: end, End: p.pos}
		case token.LPAREN:
			p.next()
			var args []ast.Expr
			if p.tok != token.RPAREN {
				args = append(args, p.expr())
				for p.tok == token.COMMA {
					p.next()
					args = append(args, p.expr())
				}
			}
			end := p.expect(token.RPAREN)
			x = &ast.Call{Target: x, Args: args, Start: end, End: p.pos}
		default:
			return x
		}
	}
}

func (p *Parser) primary() ast.Expr {
	start := p.pos
	switch p.tok {
	case token.IDENT:
		name := p.val.Raw
		p.next()
		return &ast.Ident{Name: name, Start: start, End: p.pos}

	case token.INT:
		v := p.val.Int
		p.next()
		return &ast.IntLit{Value: v, Start: start, End: p.pos}

	case token.FLOAT:
		v := p.val.Float
		p.next()
		return &ast.FloatLit{Value: v, Start: start, End: p.pos}

	case token.STRING:
		v := p.val.Raw
		p.next()
		return &ast.StringLit{Value: v, Start: start, End: p.pos}

	case token.TRUE:
		p.next()
		return &ast.BoolLit{Value: true, Start: start, End: p.pos}

	case token.FALSE:
		p.next()
		return &ast.BoolLit{Value: false, Start: start, End: p.pos}

	case token.NULL:
		p.next()
		return &ast.NullLit{Start: start, End: p.pos}

	case token.LBRACK:
		p.next()
		var elems []ast.Expr
		if p.tok != token.RBRACK {
			elems = append(elems, p.expr())
			for p.tok == token.COMMA {
				p.next()
				elems = append(elems, p.expr())
			}
		}
		p.expect(token.RBRACK)
		return &ast.ListLit{Elems: elems, Start: start, End: p.pos}

	case token.FN:
		p.next()
		p.expect(token.LPAREN)
		var params []string
		if p.tok != token.RPAREN {
			params = append(params, p.val.Raw)
			p.expect(token.IDENT)
			for p.tok == token.COMMA {
				p.next()
				params = append(params, p.val.Raw)
				p.expect(token.IDENT)
			}
		}
		p.expect(token.RPAREN)
		body := p.block()
		return &ast.FuncLit{Params: params, Body: body, Start: start, End: p.pos}

	case token.LBRACE:
		p.next()
		var fields []ast.ObjectField
		if p.tok != token.RBRACE {
			fields = append(fields, p.objectField())
			for p.tok == token.COMMA {
				p.next()
				fields = append(fields, p.objectField())
			}
		}
		p.expect(token.RBRACE)
		return &ast.ObjectLit{Fields: fields, Start: start, End: p.pos}

	case token.LPAREN:
		p.next()
		x := p.expr()
		p.expect(token.RPAREN)
		return x

	default:
		p.fail("unexpected token %s", p.tok)
		p.next()
		return &ast.NullLit{Start: start, End: start}
	}
}

func (p *Parser) objectField() ast.ObjectField {
	name := p.val.Raw
	p.expect(token.IDENT)
	p.expect(token.COLON)
	value := p.expr()
	return ast.ObjectField{Name: name, Value: value}
}
