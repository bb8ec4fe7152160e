package ast_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alex-seifarth/prien/ast"
	"github.com/alex-seifarth/prien/token"
)

func integer(source string, value uint64) *ast.Literal {
	return &ast.Literal{Token: token.Token{
		Kind:   token.Integer,
		Source: source,
		Int:    value,
		Base:   token.Decimal,
	}}
}

func operator(kind token.Kind) token.Token {
	return token.Token{Kind: kind}
}

// sum builds the tree for "1+2*3".
func sum() ast.Expression {
	return &ast.Binary{
		Left: integer("1", 1),
		Op:   operator(token.Plus),
		Right: &ast.Binary{
			Left:  integer("2", 2),
			Op:    operator(token.Star),
			Right: integer("3", 3),
		},
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expr ast.Expression
		want string
	}{
		{sum(), "(+ 1 (* 2 3))"},
		{&ast.Unary{Op: operator(token.Minus), Operand: integer("4", 4)}, "(- 4)"},
		{&ast.Literal{Token: token.Token{Kind: token.KwTrue}}, "true"},
		{&ast.Literal{Token: token.Token{Kind: token.Char, Char: 'x'}}, "x"},
	}
	for _, tt := range tests {
		if got := tt.expr.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestWalk(t *testing.T) {
	t.Parallel()
	var visited []string
	ast.Walk(sum(), func(e ast.Expression) {
		visited = append(visited, e.String())
	})

	want := []string{"(+ 1 (* 2 3))", "1", "(* 2 3)", "2", "3"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestPrint(t *testing.T) {
	t.Parallel()
	want := strings.Join([]string{
		"{",
		"  expression: binary,",
		"  operator: +,",
		"  lhs: {type: integer, base: 10, literal: 1, value: 1 },",
		"  rhs: {",
		"      expression: binary,",
		"      operator: *,",
		"      lhs: {type: integer, base: 10, literal: 2, value: 2 },",
		"      rhs: {type: integer, base: 10, literal: 3, value: 3 }",
		"    }",
		"}",
	}, "\n")
	if got := ast.Print(sum()); got != want {
		t.Errorf("Print() = \n%s\nwant\n%s", got, want)
	}
}

func TestPrintUnary(t *testing.T) {
	t.Parallel()
	expr := &ast.Unary{
		Op:      operator(token.Minus),
		Operand: &ast.Literal{Token: token.Token{Kind: token.KwTrue}},
	}
	want := strings.Join([]string{
		"{",
		"  expression: unary,",
		"  operator: -,",
		"  rhs: {type: bool, value: true }",
		"}",
	}, "\n")
	if got := ast.Print(expr); got != want {
		t.Errorf("Print() = \n%s\nwant\n%s", got, want)
	}
}

func TestPrintLiterals(t *testing.T) {
	t.Parallel()
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.Integer, Source: "0x1f", Int: 31, Base: token.Hexadecimal}, "{type: integer, base: 16, literal: 0x1f, value: 31 }"},
		{token.Token{Kind: token.FloatNumber, Source: "2.5", Float: 2.5}, "{type: float, literal: 2.5, value: 2.5 }"},
		{token.Token{Kind: token.String, Source: "a\nb"}, `{type: string, value: "a\nb" }`},
		{token.Token{Kind: token.Char, Char: 'ä'}, "{type: char, value: 'ä' }"},
		{token.Token{Kind: token.KwFalse}, "{type: bool, value: false }"},
	}
	for _, tt := range tests {
		if got := ast.Print(&ast.Literal{Token: tt.tok}); got != tt.want {
			t.Errorf("Print(%v) = %q, want %q", tt.tok.Kind, got, tt.want)
		}
	}
}

func TestBase(t *testing.T) {
	t.Parallel()
	op := token.Token{Kind: token.Plus}
	lit := token.Token{Kind: token.Integer, Source: "1", Int: 1, Base: token.Decimal}

	var e ast.Expression = &ast.Binary{Left: &ast.Literal{Token: lit}, Op: op, Right: &ast.Literal{Token: lit}}
	if got := e.Base(); got.Kind != token.Plus {
		t.Errorf("Binary Base = %v, want Plus", got.Kind)
	}
	e = &ast.Unary{Op: op, Operand: &ast.Literal{Token: lit}}
	if got := e.Base(); got.Kind != token.Plus {
		t.Errorf("Unary Base = %v, want Plus", got.Kind)
	}
	e = &ast.Literal{Token: lit}
	if got := e.Base(); got.Kind != token.Integer {
		t.Errorf("Literal Base = %v, want Integer", got.Kind)
	}
}
