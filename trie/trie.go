package trie

const (
	nilIdx int32 = -1

	// fanout is the number of parallel sibling chains per group.
	fanout = 4

	// defaultCapacity is the initial arena size in nodes.
	defaultCapacity = 64 * 1024
)

// node is one arena slot. See doc.go for the topology.
type node struct {
	next   [fanout]int32
	child  int32
	filter [2]uint64
	label  byte
	leaf   bool
}

func (n *node) filterHas(c byte) bool {
	return n.filter[(c&127)>>6]&(1<<(c&63)) != 0
}

func (n *node) filterSet(c byte) {
	n.filter[(c&127)>>6] |= 1 << (c & 63)
}

// Trie is a set of non-empty byte strings stored in an arena trie.
// It is insert-only: build it once, then query from any number of
// readers.
type Trie struct {
	nodes []node
	keys  int
}

// New returns an empty trie with the default arena capacity.
func New() *Trie {
	return NewWithCapacity(defaultCapacity)
}

// NewWithCapacity returns an empty trie whose arena holds n nodes
// before the first reallocation.
func NewWithCapacity(n int) *Trie {
	if n < 1 {
		n = 1
	}
	t := &Trie{nodes: make([]node, 0, n)}
	t.newNode() // root group head
	return t
}

// Len returns the number of keywords in the set.
func (t *Trie) Len() int {
	return t.keys
}

// newNode appends a placeholder node and returns its index. The arena
// doubles when full; indices issued earlier stay valid.
func (t *Trie) newNode() int32 {
	if len(t.nodes) == cap(t.nodes) {
		grown := make([]node, len(t.nodes), cap(t.nodes)*2)
		copy(grown, t.nodes)
		t.nodes = grown
	}
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{
		next:  [fanout]int32{nilIdx, nilIdx, nilIdx, nilIdx},
		child: nilIdx,
	})
	return idx
}

// findOrAdd resolves byte c within the sibling group headed by head,
// appending a new chain member when absent. It returns the index of
// the node labelled c.
func (t *Trie) findOrAdd(head int32, c byte) int32 {
	t.nodes[head].filterSet(c)
	if t.nodes[head].label == 0 {
		// fresh placeholder head: claim it
		t.nodes[head].label = c
		return head
	}
	if t.nodes[head].label == c {
		return head
	}
	bucket := c & (fanout - 1)
	prev := head
	for idx := t.nodes[prev].next[bucket]; idx != nilIdx; idx = t.nodes[prev].next[bucket] {
		if t.nodes[idx].label == c {
			return idx
		}
		prev = idx
	}
	idx := t.newNode()
	t.nodes[idx].label = c
	t.nodes[prev].next[bucket] = idx
	return idx
}

// Add inserts key into the set. Empty keys are ignored. Inserting the
// same key again is a no-op.
func (t *Trie) Add(key []byte) {
	if len(key) == 0 {
		return
	}
	head := int32(0)
	for i, c := range key {
		idx := t.findOrAdd(head, c)
		if i == len(key)-1 {
			if !t.nodes[idx].leaf {
				t.nodes[idx].leaf = true
				t.keys++
			}
			return
		}
		if t.nodes[idx].child == nilIdx {
			child := t.newNode()
			t.nodes[idx].child = child
		}
		head = t.nodes[idx].child
	}
}

// AddString inserts key into the set.
func (t *Trie) AddString(key string) {
	t.Add([]byte(key))
}

// ContainsPrefixOf reports whether some non-empty prefix of s is a
// member of the set. The walk stops at the first leaf on the path, so
// the shortest matching keyword decides.
func (t *Trie) ContainsPrefixOf(s []byte) bool {
	nodes := t.nodes
	head := int32(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		h := &nodes[head]
		if !h.filterHas(c) {
			return false
		}
		idx := head
		if h.label != c {
			bucket := c & (fanout - 1)
			for idx = h.next[bucket]; idx != nilIdx; idx = nodes[idx].next[bucket] {
				if nodes[idx].label == c {
					break
				}
			}
			if idx == nilIdx {
				return false
			}
		}
		n := &nodes[idx]
		if n.leaf {
			return true
		}
		if n.child == nilIdx {
			return false
		}
		head = n.child
	}
	return false
}

// ContainsAnywhere reports whether any substring of s of length >= 1 is
// a member of the set, by scanning every suffix of s.
func (t *Trie) ContainsAnywhere(s []byte) bool {
	for i := range s {
		if t.ContainsPrefixOf(s[i:]) {
			return true
		}
	}
	return false
}
