// Package trie defines an insert-only byte trie laid out in a single
// contiguous node arena, built for dictionaries of millions of short
// keywords and for answering "does any prefix of this suffix belong to
// the dictionary" in near-constant time on a miss.
//
// Arena layout:
// ------------
//
// All nodes live in one growable slice. Links between nodes are 0-based
// indices into that slice, never pointers: the arena grows by
// reallocation, and an index, once issued, stays valid for the lifetime
// of the store. The root node sits at index 0.
//
// Node topology:
// -------------
//
// Each tree level is a group of sibling nodes, one per distinct byte
// label at that level. The group is addressed through its head node
// (the parent's child link, or the root). To keep sibling scans short,
// the members behind the head are threaded into 4 parallel chains keyed
// by the low two bits of the label:
//
//	head ──next[0]──▶ label&3==0 ──▶ ...
//	     ──next[1]──▶ label&3==1 ──▶ ...
//	     ──next[2]──▶ label&3==2 ──▶ ...
//	     ──next[3]──▶ label&3==3 ──▶ ...
//
// Inserting or searching a byte c touches only chain c&3, bounding the
// expected chain length to about n/4 for n siblings.
//
// Bitmap fast-reject:
// ------------------
//
// The head of every group carries a 128-bit maybe-present filter, two
// uint64 words indexed by label&127. A clear bit is a definitive miss
// and skips the chain walk. Because the filter is indexed modulo 128,
// labels that differ only in the high bit share a bit; such a collision
// is a false positive that the chain walk resolves. The filter is what
// makes the negative path — the common case when every suffix of a long
// line is probed — essentially one load and one bit test.
//
// A node whose root-to-here labels spell a dictionary keyword carries a
// leaf mark. Lookups stop at the first leaf on the path, so the
// shortest matching dictionary entry decides membership.
//
// The label 0 marks a freshly allocated, not yet claimed placeholder
// (the empty root, or a child created a step ahead of its first byte);
// consequently NUL bytes are not supported as keyword labels. Add does
// not reject them, and a keyword containing NUL can corrupt the group it
// lands in.
package trie
