package fixedwidth

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DataDog/zstd"
)

// DefaultBatchSize is the number of raw lines per batch in StreamBatches
// when WithBatchSize is not given.
const DefaultBatchSize = 1000

// RecordFunc receives one extracted record per non-blank line. Returning a
// non-nil error stops the scan; the error is returned to the caller
// unwrapped, after the input file has been closed.
type RecordFunc func(*Record) error

type options struct {
	rawEncoding bool
	batchSize   int
	batchHook   func(batch int)
}

// Option configures Stream and StreamBatches.
type Option func(*options)

// WithRawEncoding disables the default UTF-8 repair. Lines pass through in
// their original encoding and positions index bytes rather than runes.
func WithRawEncoding() Option {
	return func(o *options) {
		o.rawEncoding = true
	}
}

// WithBatchSize sets the number of raw lines per batch for StreamBatches.
// Ignored by Stream. Values below 1 fail validation.
func WithBatchSize(n int) Option {
	return func(o *options) {
		o.batchSize = n
	}
}

// WithBatchHook registers a function called by StreamBatches after each
// batch finishes processing, with the 1-based batch number. Ignored by
// Stream. The hook runs inline on the scanning goroutine.
func WithBatchHook(fn func(batch int)) Option {
	return func(o *options) {
		o.batchHook = fn
	}
}

// Stream opens the file at path and invokes fn once per non-blank line, in
// file order, with the record extracted per layout. Lines are read
// sequentially with bounded memory, so files larger than RAM are fine.
//
// The layout is validated before the file is opened; validation failures
// wrap ErrInvalidLayout. Open and read errors are returned unwrapped, so
// errors.Is(err, fs.ErrNotExist) and friends keep working. The file is
// closed on every exit path, including when fn fails or ctx is canceled.
//
// Files ending in ".zst" are decompressed transparently.
func Stream(ctx context.Context, path string, layout Layout, fn RecordFunc, opts ...Option) error {
	return stream(ctx, path, layout, fn, false, opts)
}

// StreamBatches is Stream with batch windowing. The first line of the file
// is always discarded before any processing, on the assumption that it is
// a header row; this is not configurable and happens even if the first
// line is data. The remaining raw lines are grouped into consecutive
// batches of WithBatchSize lines each (default DefaultBatchSize, final
// batch possibly smaller). Blank lines emit no record but still consume a
// batch slot: batch membership is counted on raw lines, not on emitted
// records. After each batch, internal read buffers are recycled and the
// WithBatchHook function, if any, is invoked.
func StreamBatches(ctx context.Context, path string, layout Layout, fn RecordFunc, opts ...Option) error {
	return stream(ctx, path, layout, fn, true, opts)
}

func stream(ctx context.Context, path string, layout Layout, fn RecordFunc, batched bool, opts []Option) error {
	if ctx == nil {
		ctx = context.Background()
	}

	o := options{batchSize: DefaultBatchSize}
	for _, opt := range opts {
		opt(&o)
	}

	if err := ValidateLayout(layout); err != nil {
		return err
	}
	if batched && o.batchSize < 1 {
		return fmt.Errorf("%w: batch size must be >= 1, got %d", ErrInvalidLayout, o.batchSize)
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr := zstd.NewReader(f)
		defer zr.Close()
		r = zr
	}

	br := getReader(r)
	defer putReader(br)
	buf := getLineBuffer()
	defer func() { putLineBuffer(buf) }()

	if batched {
		// Header discard: the first line never reaches extraction.
		if _, err := readLine(br, buf); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}

	batch := 0
	inBatch := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		raw, err := readLine(br, buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		line := trimTerminator(raw)
		if line != "" {
			if !o.rawEncoding {
				line = repairUTF8(line)
			}
			if err := fn(extract(line, layout, !o.rawEncoding)); err != nil {
				return err
			}
		}

		if batched {
			inBatch++
			if inBatch == o.batchSize {
				batch++
				inBatch = 0
				putLineBuffer(buf)
				buf = getLineBuffer()
				if o.batchHook != nil {
					o.batchHook(batch)
				}
			}
		}
	}

	if batched && inBatch > 0 && o.batchHook != nil {
		o.batchHook(batch + 1)
	}

	return nil
}

// readLine assembles one line (terminator included) using buf as scratch.
// Returns io.EOF only when no bytes remain; a final line without a
// terminator is returned as-is. Lines of any length are supported.
func readLine(br *bufio.Reader, buf *bytes.Buffer) (string, error) {
	buf.Reset()
	for {
		chunk, err := br.ReadSlice('\n')
		buf.Write(chunk)
		switch err {
		case nil:
			return buf.String(), nil
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			if buf.Len() == 0 {
				return "", io.EOF
			}
			return buf.String(), nil
		default:
			return "", err
		}
	}
}
