package parser_test

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alex-seifarth/prien/ast"
	"github.com/alex-seifarth/prien/parser"
	"github.com/alex-seifarth/prien/token"
	"github.com/alex-seifarth/prien/utf8"
	"github.com/alex-seifarth/prien/utils"
)

func TestExpression(t *testing.T) {
	t.Parallel()
	s, err := os.ReadFile("../testdata/testcase.yaml")
	if err != nil {
		t.Fatal(err)
	}
	for _, testcase := range utils.ReadTestData(s) {
		expected, ok := testcase.Expected["parser"]
		if !ok {
			continue
		}
		testcase := testcase
		t.Run(testcase.Label, func(t *testing.T) {
			t.Parallel()
			expr, err := parser.New([]byte(testcase.Input)).Expression()
			if err != nil {
				t.Fatalf("parsing %q returned error: %v", testcase.Input, err)
			}
			if got := expr.String(); got != expected {
				t.Errorf("parsing %q = %s, want %s", testcase.Input, got, expected)
			}
		})
	}
}

func position(line, column int) utf8.Position {
	return utf8.Position{Line: line, Column: column}
}

func TestExpressionTree(t *testing.T) {
	t.Parallel()
	expr, err := parser.New([]byte("1+2*3")).Expression()
	if err != nil {
		t.Fatal(err)
	}

	integer := func(source string, value uint64, col int) *ast.Literal {
		return &ast.Literal{Token: token.Token{
			Kind:   token.Integer,
			Start:  position(1, col),
			End:    position(1, col),
			Source: source,
			Int:    value,
			Base:   token.Decimal,
		}}
	}
	want := &ast.Binary{
		Left: integer("1", 1, 1),
		Op:   token.Token{Kind: token.Plus, Start: position(1, 2)},
		Right: &ast.Binary{
			Left:  integer("2", 2, 3),
			Op:    token.Token{Kind: token.Star, Start: position(1, 4)},
			Right: integer("3", 3, 5),
		},
	}
	if diff := cmp.Diff(ast.Expression(want), expr); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingClosingParenthesis(t *testing.T) {
	t.Parallel()
	_, err := parser.New([]byte("(1+2")).Expression()
	var missing parser.MissingTokenError
	if !errors.As(err, &missing) {
		t.Fatalf("Expression = %v, want MissingTokenError", err)
	}
	want := "missing closing parenthesis for the parenthesis opened at line: 1, column: 1"
	if missing.Description != want {
		t.Errorf("Description = %q, want %q", missing.Description, want)
	}
}

func TestMissingLiteral(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"", "expected literal (line: 1, column: 0)"},
		{"+", "expected literal (line: 1, column: 1)"},
		{"1 *", "expected literal (line: 1, column: 3)"},
	}
	for _, tt := range tests {
		_, err := parser.New([]byte(tt.input)).Expression()
		var missing parser.MissingTokenError
		if !errors.As(err, &missing) {
			t.Fatalf("parsing %q = %v, want MissingTokenError", tt.input, err)
		}
		if missing.Description != tt.want {
			t.Errorf("parsing %q: Description = %q, want %q", tt.input, missing.Description, tt.want)
		}
	}
}

func TestLexicalErrorSurfacesAsMissingLiteral(t *testing.T) {
	t.Parallel()
	_, err := parser.New([]byte("1 + 0x")).Expression()
	var missing parser.MissingTokenError
	if !errors.As(err, &missing) {
		t.Fatalf("Expression = %v, want MissingTokenError", err)
	}
}

func BenchmarkExpression(b *testing.B) {
	source := []byte("(1 + 2) * 3 - -4 / 2.5 == 1e3")
	for i := 0; i < b.N; i++ {
		if _, err := parser.New(source).Expression(); err != nil {
			b.Fatal(err)
		}
	}
}
