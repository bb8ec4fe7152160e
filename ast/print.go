package ast

import (
	"fmt"

	"github.com/alex-seifarth/prien/token"
)

// Print renders the expression tree as a brace-delimited structure with
// two-space nesting, for debugging output.
func Print(e Expression) string {
	p := &printer{indents: []string{""}}

	return p.visit(e)
}

type printer struct {
	indents []string
}

func (p *printer) visit(e Expression) string {
	switch n := e.(type) {
	case *Binary:
		return p.visitBinary(n)
	case *Unary:
		return p.visitUnary(n)
	case *Literal:
		return formatLiteral(n.Token)
	default:
		return ""
	}
}

func (p *printer) push() {
	p.indents = append(p.indents, p.top()+"    ")
}

func (p *printer) pop() {
	p.indents = p.indents[:len(p.indents)-1]
}

func (p *printer) top() string {
	return p.indents[len(p.indents)-1]
}

func (p *printer) visitBinary(b *Binary) string {
	p.push()
	lhs := p.visit(b.Left)
	rhs := p.visit(b.Right)
	p.pop()

	indent := p.top() + "  "

	return fmt.Sprintf("{\n%sexpression: binary,\n%soperator: %s,\n%slhs: %s,\n%srhs: %s\n%s}",
		indent, indent, b.Op.Text(), indent, lhs, indent, rhs, p.top())
}

func (p *printer) visitUnary(u *Unary) string {
	p.push()
	operand := p.visit(u.Operand)
	p.pop()

	indent := p.top() + "  "

	return fmt.Sprintf("{\n%sexpression: unary,\n%soperator: %s,\n%srhs: %s\n%s}",
		indent, indent, u.Op.Text(), indent, operand, p.top())
}

func formatLiteral(tok token.Token) string {
	switch tok.Kind {
	case token.Integer:
		return fmt.Sprintf("{type: integer, base: %d, literal: %s, value: %d }", tok.Base.Radix(), tok.Source, tok.Int)
	case token.FloatNumber:
		return fmt.Sprintf("{type: float, literal: %s, value: %v }", tok.Source, tok.Float)
	case token.String:
		return fmt.Sprintf("{type: string, value: %q }", tok.Source)
	case token.Char:
		return fmt.Sprintf("{type: char, value: %q }", tok.Char)
	case token.KwTrue, token.KwFalse:
		return fmt.Sprintf("{type: bool, value: %s }", tok.Kind.Text())
	default:
		return fmt.Sprintf("{type: %v }", tok.Kind)
	}
}
