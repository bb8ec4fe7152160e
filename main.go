package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"

	"github.com/alex-seifarth/prien/ast"
	"github.com/alex-seifarth/prien/driver"
	"github.com/alex-seifarth/prien/lexer"
)

func main() {
	const (
		inputUsage  = "input file path"
		tokensUsage = "dump the token stream of the input file instead of parsing"
		watchUsage  = "re-run on every write to the input file"
	)
	var inputPath string
	var dumpTokens bool
	var watch bool
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")
	flag.BoolVar(&dumpTokens, "tokens", false, tokensUsage)
	flag.BoolVar(&watch, "watch", false, watchUsage)

	flag.Parse()

	var err error
	switch {
	case inputPath == "":
		err = RunPrompt()
	case watch:
		err = WatchFile(inputPath, runOnce(dumpTokens))
	default:
		err = runOnce(dumpTokens)(inputPath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runOnce(dumpTokens bool) func(string) error {
	if dumpTokens {
		return DumpTokens
	}

	return RunFile
}

var history = filepath.Join(xdg.DataHome, "prien", ".prien_history")

func RunPrompt() error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			return err
		}
		line.AppendHistory(input)
		expr, err := driver.RunSource(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)

			continue
		}
		fmt.Println(ast.Print(expr))
	}
}

func RunFile(path string) error {
	expr, err := driver.RunFile(path)
	if err != nil {
		return err
	}
	fmt.Println(ast.Print(expr))

	return nil
}

func DumpTokens(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tokens, err := lexer.Lex(bytes)
	for _, tok := range tokens {
		fmt.Println(tok)
	}

	return err
}
