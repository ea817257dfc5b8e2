package trie

import (
	"unsafe"

	"github.com/hideo55/go-popcount"
)

// Stats describes the built index.
type Stats struct {
	Keywords   int     // distinct keywords inserted
	Nodes      int     // arena slots in use
	Bytes      int     // arena footprint
	FilterBits uint64  // set bits across all group filters
	FilterLoad float64 // set bits per group, 0..128
}

// Stats summarizes the arena and its fast-reject filters. Only group
// heads carry a non-zero filter, so the bit count divided by the group
// count gives the average filter load.
func (t *Trie) Stats() Stats {
	var bits uint64
	groups := 0
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.filter[0] == 0 && n.filter[1] == 0 {
			continue
		}
		groups++
		bits += popcount.Count(n.filter[0]) + popcount.Count(n.filter[1])
	}
	s := Stats{
		Keywords:   t.keys,
		Nodes:      len(t.nodes),
		Bytes:      len(t.nodes) * int(unsafe.Sizeof(node{})),
		FilterBits: bits,
	}
	if groups > 0 {
		s.FilterLoad = float64(bits) / float64(groups)
	}
	return s
}
