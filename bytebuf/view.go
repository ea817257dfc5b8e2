package bytebuf

import "github.com/aglyzov/findany/byteops"

// View is a non-owning (offset, length) window over a Buffer. Views are
// values; deriving a sub-view never copies bytes. Accessors re-fetch
// through the owning buffer, so a view survives buffer growth.
type View struct {
	buf *Buffer
	off int
	n   int
}

// Len returns the length of the view.
func (v View) Len() int {
	return v.n
}

// Empty reports whether the view has zero length.
func (v View) Empty() bool {
	return v.n == 0
}

// Bytes returns the viewed bytes. The slice is valid until the next
// growth of the owning buffer.
func (v View) Bytes() []byte {
	if v.buf == nil {
		return nil
	}
	return v.buf.data[v.off : v.off+v.n]
}

// Sub returns the view of [off, off+n) within v, clamped to v's bounds
// so the operation is total.
func (v View) Sub(off, n int) View {
	if off < 0 {
		off = 0
	}
	if off > v.n {
		off = v.n
	}
	if n < 0 {
		n = 0
	}
	if off+n > v.n {
		n = v.n - off
	}
	return View{buf: v.buf, off: v.off + off, n: n}
}

// Suffix returns the view with the first i bytes dropped.
func (v View) Suffix(i int) View {
	return v.Sub(i, v.n-i)
}

// TrimTrailing returns the view shortened while its last byte equals c.
func (v View) TrimTrailing(c byte) View {
	b := v.Bytes()
	n := v.n
	for n > 0 && b[n-1] == c {
		n--
	}
	return View{buf: v.buf, off: v.off, n: n}
}

// StartsWith reports whether v begins with the bytes of w.
func (v View) StartsWith(w View) bool {
	if w.n > v.n {
		return false
	}
	return byteops.Equal(v.Bytes()[:w.n], w.Bytes())
}
