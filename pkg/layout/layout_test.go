package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fwrec/pkg/fixedwidth"
)

func writeLayout(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeLayout(t, `
fields:
  - name: first
    start: 0
    end: 5
  - name: last
    start: 5
    end: 10
  - name: flag
    column: 12
`)

	lay, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(lay) != 3 {
		t.Fatalf("got %d fields, want 3", len(lay))
	}
	if lay[0].Name != "first" || lay[2].Name != "flag" {
		t.Errorf("field names = %s, %s; want first, flag", lay[0].Name, lay[2].Name)
	}

	// The loaded layout must extract like a hand-built one.
	rec := fixedwidth.Extract("John Doe    Y", lay)
	first, _ := rec.Get("first")
	if first.String != "John" {
		t.Errorf("first = %q, want %q", first.String, "John")
	}
	flag, _ := rec.Get("flag")
	if !flag.Valid || flag.String != "Y" {
		t.Errorf("flag = %+v, want {\"Y\", true}", flag)
	}
}

func TestLoad_ColumnZeroIsValid(t *testing.T) {
	path := writeLayout(t, `
fields:
  - name: marker
    column: 0
`)

	lay, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	rec := fixedwidth.Extract("X rest", lay)
	marker, _ := rec.Get("marker")
	if marker.String != "X" {
		t.Errorf("marker = %q, want %q", marker.String, "X")
	}
}

func TestLoad_Rejections(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{
			name:    "no fields key",
			content: "other: thing\n",
		},
		{
			name:    "empty fields",
			content: "fields: []\n",
		},
		{
			name: "missing name",
			content: `
fields:
  - start: 0
    end: 5
`,
		},
		{
			name: "missing position",
			content: `
fields:
  - name: first
`,
		},
		{
			name: "column and span together",
			content: `
fields:
  - name: first
    column: 2
    start: 0
    end: 5
`,
		},
		{
			name: "start without end",
			content: `
fields:
  - name: first
    start: 0
`,
		},
		{
			name: "end not after start",
			content: `
fields:
  - name: first
    start: 5
    end: 5
`,
		},
		{
			name: "negative column",
			content: `
fields:
  - name: first
    column: -1
`,
		},
		{
			name: "position is a string",
			content: `
fields:
  - name: first
    column: abc
`,
		},
		{
			name:    "not yaml",
			content: "{{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLayout(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !errors.Is(err, fixedwidth.ErrInvalidLayout) {
				t.Errorf("error %v does not wrap ErrInvalidLayout", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	// A missing file is an I/O failure, not a layout shape problem.
	if errors.Is(err, fixedwidth.ErrInvalidLayout) {
		t.Errorf("error %v should not wrap ErrInvalidLayout", err)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvDefaultPath, "/some/layout.yaml")
	if got := DefaultPath(); got != "/some/layout.yaml" {
		t.Errorf("DefaultPath() = %q, want %q", got, "/some/layout.yaml")
	}
}
