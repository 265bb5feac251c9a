// Package output renders extracted records for the command-line interface.
package output

import (
	"fmt"
	"io"

	"fwrec/pkg/fixedwidth"
)

// Formatter renders a stream of records in a specific format.
type Formatter interface {
	// Write renders one record.
	Write(rec *fixedwidth.Record) error

	// Close finishes the stream, emitting any trailing summary.
	Close() error

	// Name returns the format name (text, json).
	Name() string
}

// Options controls formatter behavior.
type Options struct {
	// Quiet suppresses per-record output, leaving only the summary.
	Quiet bool
}

// New returns the formatter for the given format name writing to w.
func New(format string, opts Options, w io.Writer) (Formatter, error) {
	switch format {
	case "text":
		return NewTextFormatter(opts, w), nil
	case "json":
		return NewJSONFormatter(opts, w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (must be text or json)", format)
	}
}
