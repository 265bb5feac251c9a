// Package layout loads field layouts from YAML files into the form the
// fixedwidth package consumes.
package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fwrec/pkg/fixedwidth"
)

// EnvDefaultPath names the environment variable consulted by DefaultPath.
const EnvDefaultPath = "FWREC_LAYOUT"

// File is the YAML document shape:
//
//	fields:
//	  - name: first
//	    start: 0
//	    end: 5        # half-open span, columns 0..4
//	  - name: flag
//	    column: 12    # single column
//
// Each field names either a single column or a start/end span, never both.
// Spans are half-open: end is the first column past the field.
type File struct {
	Fields []FieldEntry `yaml:"fields"`
}

// FieldEntry is one field in a layout file. Column and Start/End are
// pointers so "column: 0" is distinguishable from an omitted key.
type FieldEntry struct {
	Name   string `yaml:"name"`
	Column *int   `yaml:"column,omitempty"`
	Start  *int   `yaml:"start,omitempty"`
	End    *int   `yaml:"end,omitempty"`
}

// DefaultPath returns the layout path from the environment, or "" if unset.
func DefaultPath() string {
	return os.Getenv(EnvDefaultPath)
}

// Load reads and validates a layout file, returning the layout ready for
// streaming. All shape errors wrap fixedwidth.ErrInvalidLayout.
func Load(path string) (fixedwidth.Layout, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided layout path is expected
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parsing layout file: %v", fixedwidth.ErrInvalidLayout, err)
	}

	return Build(file.Fields)
}

// Build converts layout-file entries into a validated fixedwidth.Layout.
func Build(entries []FieldEntry) (fixedwidth.Layout, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: layout file defines no fields", fixedwidth.ErrInvalidLayout)
	}

	layout := make(fixedwidth.Layout, 0, len(entries))
	for i, e := range entries {
		spec, err := buildSpec(e)
		if err != nil {
			return nil, fmt.Errorf("%w: fields[%d] (%s): %v", fixedwidth.ErrInvalidLayout, i, e.Name, err)
		}
		layout = append(layout, spec)
	}

	if err := fixedwidth.ValidateLayout(layout); err != nil {
		return nil, err
	}
	return layout, nil
}

func buildSpec(e FieldEntry) (fixedwidth.FieldSpec, error) {
	var spec fixedwidth.FieldSpec

	if e.Name == "" {
		return spec, fmt.Errorf("name is required")
	}
	spec.Name = e.Name

	hasColumn := e.Column != nil
	hasSpan := e.Start != nil || e.End != nil

	switch {
	case hasColumn && hasSpan:
		return spec, fmt.Errorf("column and start/end are mutually exclusive")
	case hasColumn:
		if *e.Column < 0 {
			return spec, fmt.Errorf("column must be >= 0, got %d", *e.Column)
		}
		spec.Position = fixedwidth.Col(*e.Column)
	case hasSpan:
		if e.Start == nil || e.End == nil {
			return spec, fmt.Errorf("start and end must both be given")
		}
		if *e.Start < 0 {
			return spec, fmt.Errorf("start must be >= 0, got %d", *e.Start)
		}
		if *e.End <= *e.Start {
			return spec, fmt.Errorf("end must be > start, got [%d, %d)", *e.Start, *e.End)
		}
		spec.Position = fixedwidth.Span(*e.Start, *e.End)
	default:
		return spec, fmt.Errorf("either column or start/end is required")
	}

	return spec, nil
}
