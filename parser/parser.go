// Package parser builds expression trees from Prien source text.
package parser

import (
	"fmt"

	"github.com/alex-seifarth/prien/ast"
	"github.com/alex-seifarth/prien/lexer"
	"github.com/alex-seifarth/prien/token"
)

// MissingTokenError reports an expected construct that was not found at the
// position named in the description.
type MissingTokenError struct {
	Description string
}

func (e MissingTokenError) Error() string {
	return e.Description
}

// Parser is a recursive-descent expression parser over a streaming lexer,
// with exactly one token of look-ahead at every decision point.
type Parser struct {
	lexer *lexer.Lexer
}

func New(data []byte) *Parser {
	return &Parser{lexer: lexer.New(data)}
}

// Expression parses one expression from the token stream.
func (p *Parser) Expression() (ast.Expression, error) {
	return p.equality()
}

// equality = comparison (("==" | "!=") comparison)* ;
func (p *Parser) equality() (ast.Expression, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(token.Equals, token.Unequal)
		if !ok {
			return expr, nil
		}
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
}

// comparison = term ((">" | ">=" | "<" | "<=") term)* ;
func (p *Parser) comparison() (ast.Expression, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(token.Greater, token.GreaterThan, token.Less, token.LessThan)
		if !ok {
			return expr, nil
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
}

// term = factor (("-" | "+") factor)* ;
func (p *Parser) term() (ast.Expression, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(token.Minus, token.Plus)
		if !ok {
			return expr, nil
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
}

// factor = unary (("*" | "/") unary)* ;
func (p *Parser) factor() (ast.Expression, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(token.Star, token.Slash)
		if !ok {
			return expr, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
}

// unary = ("-" | "!" | "~") unary | primary ;
func (p *Parser) unary() (ast.Expression, error) {
	if op, ok := p.match(token.Minus, token.ExclamationMark, token.Tilde); ok {
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}

		return &ast.Unary{Op: op, Operand: operand}, nil
	}

	return p.primary()
}

// primary = INTEGER | FLOAT | STRING | CHAR | "true" | "false" | "(" expression ")" ;
func (p *Parser) primary() (ast.Expression, error) {
	if tok, ok := p.match(token.Integer, token.FloatNumber, token.String, token.Char, token.KwTrue, token.KwFalse); ok {
		return &ast.Literal{Token: tok}, nil
	}
	if tok, err := p.lexer.Peek(); err == nil && tok.Kind == token.LeftParen {
		open := tok.Start
		p.advance()
		expr, err := p.Expression()
		if err != nil {
			return nil, err
		}
		if _, ok := p.match(token.RightParen); !ok {
			return nil, MissingTokenError{
				Description: fmt.Sprintf("missing closing parenthesis for the parenthesis opened at %s", open),
			}
		}

		return expr, nil
	}

	return nil, MissingTokenError{Description: fmt.Sprintf("expected literal (%s)", p.lexer.Pos())}
}

// match consumes and returns the next token when its kind is one of kinds.
// A lexical error counts as no match; it surfaces through the caller's
// missing-token diagnostic.
func (p *Parser) match(kinds ...token.Kind) (token.Token, bool) {
	tok, err := p.lexer.Peek()
	if err != nil {
		return token.Token{}, false
	}
	for _, kind := range kinds {
		if tok.Kind == kind {
			tok, _ = p.lexer.Get()

			return tok, true
		}
	}

	return token.Token{}, false
}

func (p *Parser) advance() {
	_, _ = p.lexer.Get()
}
