// Package bytebuf provides the owned growable byte buffer and the
// non-owning view used throughout the scanning pipeline. A View is
// resolved through its owning Buffer on every access, so growing the
// buffer never invalidates a view taken before the growth.
package bytebuf

// Buffer owns a resizable byte allocation. It grows geometrically on
// demand and never shrinks.
type Buffer struct {
	data []byte
}

// Len returns the current length of the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the current capacity of the buffer.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Bytes returns the buffer contents. The slice is valid until the next
// growth of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Reset sets the length to zero without releasing the allocation.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// ExpandTo sets the length to n, reallocating only when n exceeds the
// capacity. Existing bytes are preserved; bytes between the old and the
// new length are unspecified.
func (b *Buffer) ExpandTo(n int) {
	if n <= cap(b.data) {
		b.data = b.data[:n]
		return
	}
	grown := make([]byte, n, growCap(cap(b.data), n))
	copy(grown, b.data)
	b.data = grown
}

// Append copies p onto the end of the buffer, growing it as needed.
func (b *Buffer) Append(p []byte) {
	off := len(b.data)
	b.ExpandTo(off + len(p))
	copy(b.data[off:], p)
}

// growCap doubles the old capacity and, when that still falls short,
// jumps straight to twice the requested length so that a long run of
// appends settles after one reallocation.
func growCap(old, need int) int {
	next := old * 2
	if next < need {
		next = need * 2
	}
	return next
}

// View returns a view over the whole buffer.
func (b *Buffer) View() View {
	return View{buf: b, off: 0, n: len(b.data)}
}

// Slice returns a clamped view over [off, off+n).
func (b *Buffer) Slice(off, n int) View {
	return b.View().Sub(off, n)
}
