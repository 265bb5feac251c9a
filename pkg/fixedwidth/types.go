// Package fixedwidth extracts structured records from fixed-width text
// files, where each line is a flat character sequence and logical fields
// occupy known column positions rather than being delimited.
package fixedwidth

type posKind int

const (
	posNone posKind = iota
	posCol
	posSpan
)

// Position locates a field within a line: either a single zero-based
// column, or a half-open [start, end) column span. Column positions are
// logical character positions (runes) when UTF-8 repair is active, byte
// positions otherwise.
//
// The zero Position selects nothing and fails layout validation.
type Position struct {
	kind       posKind
	col        int
	start, end int
}

// Col returns a Position selecting the single zero-based column i.
func Col(i int) Position {
	return Position{kind: posCol, col: i}
}

// Span returns a Position selecting the half-open column range [start, end).
func Span(start, end int) Position {
	return Position{kind: posSpan, start: start, end: end}
}

// IsZero reports whether p is the zero Position (neither a column nor a span).
func (p Position) IsZero() bool {
	return p.kind == posNone
}

// FieldSpec describes one field's location within a line.
// Constructed by the caller and never mutated by this package.
type FieldSpec struct {
	Name     string
	Position Position
}

// Layout is an ordered sequence of FieldSpec defining a full record shape.
// Order determines field order in extracted records.
type Layout []FieldSpec

// Value holds one extracted field value. Valid is false when the field's
// position fell outside the line; that is distinct from a field that was
// present but entirely whitespace, which yields Valid true and an empty
// String.
type Value struct {
	String string
	Valid  bool
}

// Field is one named value within a Record.
type Field struct {
	Name  string
	Value Value
}

// Record maps field names to extracted values, preserving the layout's
// field order. Duplicate names in a layout overwrite last-write-wins: the
// later value lands in the earlier field's slot, so order still follows the
// first occurrence.
//
// Records are transient: constructed per line, handed to the caller's
// callback, and never retained by this package.
type Record struct {
	fields []Field
	index  map[string]int
}

func newRecord(n int) *Record {
	return &Record{
		fields: make([]Field, 0, n),
		index:  make(map[string]int, n),
	}
}

func (r *Record) set(name string, v Value) {
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = v
		return
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: v})
}

// Get returns the value for the named field and whether the field exists
// in the record at all.
func (r *Record) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return Value{}, false
	}
	return r.fields[i].Value, true
}

// Fields returns the record's fields in layout order. The returned slice
// is owned by the record; callers must not modify it.
func (r *Record) Fields() []Field {
	return r.fields
}

// Len returns the number of distinct fields in the record.
func (r *Record) Len() int {
	return len(r.fields)
}
