// Package parser builds core expressions from surface syntax.
//
// Binders extend maximally to the right, application is left-associative and
// a binder may stand unparenthesized as the final argument of an application,
// so parsing is the inverse of the canonical renderer on its own output.
package parser

import (
	"fmt"

	"github.com/fluxo-lang/fluxo/internal/ast"
	"github.com/fluxo-lang/fluxo/internal/lexer"
	"github.com/fluxo-lang/fluxo/internal/token"
)

// Error is a positioned parse failure.
type Error struct {
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at column %d: %s", e.Column, e.Msg)
}

// Parser consumes tokens from a lexer with one token of lookahead.
type Parser struct {
	l   *lexer.Lexer
	cur token.Token
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	return p
}

// Parse is a convenience wrapper lexing and parsing a whole input line.
func Parse(input string) (ast.Exp, error) {
	return New(lexer.New(input)).ParseExp()
}

// ParseExp parses one expression and requires the input to end there.
func (p *Parser) ParseExp() (ast.Exp, error) {
	exp, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.EOF {
		return nil, p.errorf("unexpected %s after expression", p.describe(p.cur))
	}
	return exp, nil
}

func (p *Parser) next() {
	p.cur = p.l.NextToken()
}

func (p *Parser) parseExpr() (ast.Exp, error) {
	if p.cur.Type == token.LAMBDA || p.cur.Type == token.PI {
		return p.parseBinder()
	}
	return p.parseApp()
}

// parseBinder parses λx : A . b and Πx : A . B. The annotation runs up to the
// separating dot; the body is greedy.
func (p *Parser) parseBinder() (ast.Exp, error) {
	binder := p.cur.Type
	p.next()

	if p.cur.Type != token.IDENT {
		return nil, p.errorf("expected identifier after binder, got %s", p.describe(p.cur))
	}
	param := ast.Var(p.cur.Lexeme)
	p.next()

	if p.cur.Type != token.COLON {
		return nil, p.errorf("expected ':' after binder variable, got %s", p.describe(p.cur))
	}
	p.next()

	anno, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.cur.Type != token.DOT {
		return nil, p.errorf("expected '.' after binder type, got %s", p.describe(p.cur))
	}
	p.next()

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if binder == token.LAMBDA {
		return ast.NewAbs(param, anno, body), nil
	}
	return ast.NewFor(param, anno, body), nil
}

// parseApp parses a left-associative application chain. A binder may close
// the chain as its final, greedy argument.
func (p *Parser) parseApp() (ast.Exp, error) {
	exp, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Type {
		case token.IDENT, token.STAR, token.BOX, token.LPAREN:
			arg, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			exp = ast.NewApp(exp, arg)
		case token.LAMBDA, token.PI:
			arg, err := p.parseBinder()
			if err != nil {
				return nil, err
			}
			return ast.NewApp(exp, arg), nil
		default:
			return exp, nil
		}
	}
}

func (p *Parser) parseAtom() (ast.Exp, error) {
	switch p.cur.Type {
	case token.IDENT:
		exp := ast.NewVar(ast.Var(p.cur.Lexeme))
		p.next()
		return exp, nil
	case token.STAR:
		p.next()
		return ast.NewTypeMeta(), nil
	case token.BOX:
		p.next()
		return ast.NewKindMeta(), nil
	case token.LPAREN:
		p.next()
		exp, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != token.RPAREN {
			return nil, p.errorf("expected ')', got %s", p.describe(p.cur))
		}
		p.next()
		return exp, nil
	default:
		return nil, p.errorf("expected an expression, got %s", p.describe(p.cur))
	}
}

func (p *Parser) errorf(format string, args ...any) error {
	return &Error{Column: p.cur.Column, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) describe(t token.Token) string {
	if t.Type == token.IDENT || t.Type == token.ILLEGAL {
		return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
	}
	return t.Type.String()
}
