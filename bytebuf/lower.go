package bytebuf

import "sync"

var (
	lowerOnce  sync.Once
	lowerTable [256]byte
)

// LowerTable returns the process-global byte-to-lowercase map. ASCII
// letters map to their lowercase form, every other byte to itself. The
// table is built once and read-only afterwards.
func LowerTable() *[256]byte {
	lowerOnce.Do(func() {
		for i := range lowerTable {
			c := byte(i)
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			lowerTable[i] = c
		}
	})
	return &lowerTable
}

// ToLower writes the lowercase image of src into dst, growing dst to
// len(src), and returns a view over the written bytes. Matching is
// byte-level: the same table must have been applied to both sides of a
// comparison for case-insensitive equality to hold.
func ToLower(src []byte, dst *Buffer) View {
	table := LowerTable()
	dst.ExpandTo(len(src))
	out := dst.data[:len(src)]
	for i, c := range src {
		out[i] = table[c]
	}
	return View{buf: dst, off: 0, n: len(src)}
}
