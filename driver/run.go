// Package driver wires the front-end pipeline together: bytes to tokens to
// expression tree.
package driver

import (
	"fmt"
	"os"

	"github.com/alex-seifarth/prien/ast"
	"github.com/alex-seifarth/prien/parser"
)

// RunSource parses source and returns the expression tree.
func RunSource(source string) (ast.Expression, error) {
	expr, err := parser.New([]byte(source)).Expression()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return expr, nil
}

// RunFile reads the file at path and parses its content.
func RunFile(path string) (ast.Expression, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return RunSource(string(bytes))
}
