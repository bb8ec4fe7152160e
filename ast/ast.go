// Package ast defines the expression tree produced by the parser.
package ast

import (
	"fmt"
	"strings"

	"github.com/alex-seifarth/prien/token"
)

// Expression is a node of the expression tree. The variant set is sealed:
// Literal, Unary, and Binary are the only implementations.
type Expression interface {
	fmt.Stringer
	// Base returns the representative token of the node, used for
	// diagnostics.
	Base() token.Token
	expression()
}

// Literal is a leaf node wrapping a literal or boolean keyword token.
type Literal struct {
	token.Token
}

func (l Literal) String() string {
	return l.Token.Text()
}

func (l *Literal) Base() token.Token {
	return l.Token
}

func (l *Literal) expression() {}

var _ Expression = &Literal{}

// Unary is a prefix operator applied to an operand.
type Unary struct {
	Op      token.Token
	Operand Expression
}

func (u Unary) String() string {
	return parenthesize(u.Op.Text(), u.Operand).String()
}

func (u *Unary) Base() token.Token {
	return u.Op
}

func (u *Unary) expression() {}

var _ Expression = &Unary{}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Left  Expression
	Op    token.Token
	Right Expression
}

func (b Binary) String() string {
	return parenthesize(b.Op.Text(), b.Left, b.Right).String()
}

func (b *Binary) Base() token.Token {
	return b.Op
}

func (b *Binary) expression() {}

var _ Expression = &Binary{}

// Walk traverses the tree in depth-first order, visiting each node before
// its children; Binary children are visited left to right.
func Walk(e Expression, f func(Expression)) {
	f(e)
	switch n := e.(type) {
	case *Binary:
		Walk(n.Left, f)
		Walk(n.Right, f)
	case *Unary:
		Walk(n.Operand, f)
	}
}

func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(head)
	for _, elem := range elems {
		b.WriteString(" ")
		b.WriteString(elem.String())
	}
	b.WriteString(")")

	return &b
}
