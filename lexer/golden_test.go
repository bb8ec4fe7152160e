package lexer_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/alex-seifarth/prien/lexer"
	"github.com/alex-seifarth/prien/utils"
)

func TestGolden(t *testing.T) {
	t.Parallel()
	files, err := utils.FindSourceFiles("../testdata")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no source files found under ../testdata")
	}

	for _, file := range files {
		file := file
		t.Run(filepath.Base(file), func(t *testing.T) {
			t.Parallel()
			data, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}

			tokens, err := lexer.Lex(data)
			if err != nil {
				t.Fatalf("lexing %s returned error: %v", file, err)
			}

			var b strings.Builder
			for _, tok := range tokens {
				fmt.Fprintln(&b, tok.String())
			}

			g := goldie.New(t)
			g.Assert(t, filepath.Base(file), []byte(b.String()))
		})
	}
}
