package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alex-seifarth/prien/utils"
)

func TestReadTestData(t *testing.T) {
	t.Parallel()
	src := []byte(`
- label: enabled case
  enable: true
  input: "1+2"
  expected:
    parser: "(+ 1 2)"
- label: disabled case
  enable: false
  input: "3*4"
  expected:
    parser: "(* 3 4)"
`)
	data := utils.ReadTestData(src)
	want := []utils.TestData{{
		Label:    "enabled case",
		Enable:   true,
		Input:    "1+2",
		Expected: map[string]string{"parser": "(+ 1 2)"},
	}}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("ReadTestData mismatch (-want +got):\n%s", diff)
	}
}

func TestFindSourceFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for _, name := range []string{"a.prien", "b.txt", filepath.Join("sub", "c.prien")} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := utils.FindSourceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "a.prien"), filepath.Join(dir, "sub", "c.prien")}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("FindSourceFiles mismatch (-want +got):\n%s", diff)
	}
}
