package output

import (
	"fmt"
	"io"

	"fwrec/pkg/fixedwidth"
)

// TextFormatter renders records as human-readable text, one record per
// line. Absent fields render as "-".
type TextFormatter struct {
	opts  Options
	w     io.Writer
	count int
}

// NewTextFormatter creates a text formatter writing to w.
func NewTextFormatter(opts Options, w io.Writer) *TextFormatter {
	return &TextFormatter{opts: opts, w: w}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Write renders one record.
func (f *TextFormatter) Write(rec *fixedwidth.Record) error {
	f.count++
	if f.opts.Quiet {
		return nil
	}

	for i, fld := range rec.Fields() {
		if i > 0 {
			if _, err := fmt.Fprint(f.w, "  "); err != nil {
				return err
			}
		}
		val := "-"
		if fld.Value.Valid {
			val = fmt.Sprintf("%q", fld.Value.String)
		}
		if _, err := fmt.Fprintf(f.w, "%s=%s", fld.Name, val); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(f.w)
	return err
}

// Close emits the record count.
func (f *TextFormatter) Close() error {
	_, err := fmt.Fprintf(f.w, "%d record(s)\n", f.count)
	return err
}
