package fixedwidth

import (
	"bufio"
	"bytes"
	"io"
	"sync"
)

const readerBufferSize = 64 * 1024

// Streaming borrows one buffered reader and one line-assembly buffer per
// scan. Both are pooled so repeated scans over large files reuse memory
// instead of growing the heap; in batched mode the line buffer is recycled
// at every batch boundary. Pooling is a throughput affordance only, never
// a correctness requirement.

var readers = sync.Pool{
	New: func() interface{} {
		return bufio.NewReaderSize(nil, readerBufferSize)
	},
}

func getReader(r io.Reader) *bufio.Reader {
	br := readers.Get().(*bufio.Reader)
	br.Reset(r)
	return br
}

func putReader(br *bufio.Reader) {
	br.Reset(nil)
	readers.Put(br)
}

var lineBuffers = sync.Pool{
	New: func() interface{} {
		b := bytes.Buffer{}
		b.Grow(4096)
		return &b
	},
}

func getLineBuffer() *bytes.Buffer {
	return lineBuffers.Get().(*bytes.Buffer)
}

func putLineBuffer(b *bytes.Buffer) {
	b.Reset()
	lineBuffers.Put(b)
}
