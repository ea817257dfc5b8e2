// Package chunkio reads a byte stream through a fixed-capacity chunk
// buffer and splits it into delimiter-terminated lines. Lines longer
// than the chunk are assembled across refills, so line length is
// bounded only by memory.
package chunkio

import (
	"io"

	"github.com/aglyzov/findany/bytebuf"
	"github.com/aglyzov/findany/byteops"
)

// DefaultChunkSize is the capacity of the backing read buffer.
const DefaultChunkSize = 4 * 1024 * 1024

// Reader owns a fixed-capacity chunk buffer over an io.Reader.
// Invariant: cursor <= filled <= cap(chunk).
type Reader struct {
	src      io.Reader
	chunk    []byte
	filled   int
	cursor   int
	consumed int64
	eof      bool
}

// NewReader returns a Reader with the default chunk capacity.
func NewReader(src io.Reader) *Reader {
	return NewReaderSize(src, DefaultChunkSize)
}

// NewReaderSize returns a Reader with the given chunk capacity. Sizes
// below one byte fall back to the default.
func NewReaderSize(src io.Reader, size int) *Reader {
	if size < 1 {
		size = DefaultChunkSize
	}
	return &Reader{
		src:   src,
		chunk: make([]byte, size),
	}
}

// Consumed returns the total number of bytes handed out as lines.
func (r *Reader) Consumed() int64 {
	return r.consumed
}

// refill loads the next chunk. It reports false at end of stream.
func (r *Reader) refill() (bool, error) {
	if r.eof {
		return false, nil
	}
	r.cursor = 0
	r.filled = 0
	for {
		n, err := r.src.Read(r.chunk)
		if n > 0 {
			r.filled = n
			if err == io.EOF {
				r.eof = true
			}
			return true, nil
		}
		switch {
		case err == io.EOF:
			r.eof = true
			return false, nil
		case err != nil:
			return false, err
		}
		// a zero-byte read with a nil error is retried
	}
}

// ReadLine returns a view into dst holding the next logical line,
// including the terminating delimiter when the stream contained one.
// The final line of a stream with no trailing delimiter is returned
// without it. At end of stream the view is empty and the error is
// io.EOF; further calls repeat that result.
func (r *Reader) ReadLine(dst *bytebuf.Buffer, delim byte) (bytebuf.View, error) {
	dst.Reset()
	off := 0
	for {
		if r.cursor == r.filled {
			ok, err := r.refill()
			if err != nil {
				return dst.Slice(0, off), err
			}
			if !ok {
				if off == 0 {
					return bytebuf.View{}, io.EOF
				}
				break
			}
		}
		window := r.chunk[r.cursor:r.filled]
		i := byteops.IndexByte(window, delim)
		if i >= 0 {
			dst.Append(window[:i+1])
			r.cursor += i + 1
			off += i + 1
			break
		}
		dst.Append(window)
		r.cursor = r.filled
		off += len(window)
	}
	r.consumed += int64(off)
	return dst.Slice(0, off), nil
}
