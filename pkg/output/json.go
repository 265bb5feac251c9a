package output

import (
	"bytes"
	"encoding/json"
	"io"

	"fwrec/pkg/fixedwidth"
)

// JSONFormatter renders records as JSON Lines: one object per record.
// Keys follow the layout's field order (encoding/json maps would sort
// them, so objects are assembled by hand). Absent fields render as null.
type JSONFormatter struct {
	opts Options
	w    io.Writer
	buf  bytes.Buffer
}

// NewJSONFormatter creates a JSON formatter writing to w.
func NewJSONFormatter(opts Options, w io.Writer) *JSONFormatter {
	return &JSONFormatter{opts: opts, w: w}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Write renders one record as a single JSON object line.
func (f *JSONFormatter) Write(rec *fixedwidth.Record) error {
	if f.opts.Quiet {
		return nil
	}

	f.buf.Reset()
	f.buf.WriteByte('{')
	for i, fld := range rec.Fields() {
		if i > 0 {
			f.buf.WriteByte(',')
		}
		key, err := json.Marshal(fld.Name)
		if err != nil {
			return err
		}
		f.buf.Write(key)
		f.buf.WriteByte(':')
		if !fld.Value.Valid {
			f.buf.WriteString("null")
			continue
		}
		val, err := json.Marshal(fld.Value.String)
		if err != nil {
			return err
		}
		f.buf.Write(val)
	}
	f.buf.WriteString("}\n")

	_, err := f.w.Write(f.buf.Bytes())
	return err
}

// Close is a no-op: JSON Lines output carries no trailer.
func (f *JSONFormatter) Close() error {
	return nil
}
