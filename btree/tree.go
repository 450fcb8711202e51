package btree

import (
	"cmp"
	"fmt"
)

// DefaultDegree is the minimum degree used when the constructors are handed
// a degree of 0.
const DefaultDegree = 2

// CompareFunc is a total order over keys: negative if a < b, zero if a == b,
// positive if a > b. The same function must order keys consistently for the
// whole lifetime of the tree.
type CompareFunc[K any] func(a, b K) int

/*
BTree is an in-memory, order-preserving key/value container backed by a
B-tree of minimum degree t. Every node other than the root holds between t-1
and 2t-1 entries, every internal node has one more child than it has entries,
and all leaves sit at the same depth.

A BTree only keeps a pointer to the root node of the tree. Nodes are owned
exclusively by their parent and carry no back-reference to it; all
restructuring is done by the caller holding parent and child together.

A BTree is not safe for concurrent use. The design assumes a single caller
owning the tree exclusively.
*/
type BTree[K, V any] struct {
	root       *node[K, V]
	degree     int // minimum degree t
	minEntries int // t - 1
	maxEntries int // 2t - 1
	compare    CompareFunc[K]
	length     int
}

// New constructs an empty tree ordered by the natural order of K.
// A degree of 0 selects DefaultDegree; any other degree below 2 is rejected
// with ErrInvalidDegree.
func New[K cmp.Ordered, V any](degree int) (*BTree[K, V], error) {
	return NewFunc[K, V](degree, cmp.Compare[K])
}

// NewFunc constructs an empty tree ordered by the given comparison function.
func NewFunc[K, V any](degree int, compare CompareFunc[K]) (*BTree[K, V], error) {
	if compare == nil {
		return nil, ErrNilCompare
	}
	if degree == 0 {
		degree = DefaultDegree
	}
	if degree < 2 {
		return nil, ErrInvalidDegree
	}
	return &BTree[K, V]{
		root:       &node[K, V]{leaf: true},
		degree:     degree,
		minEntries: degree - 1,
		maxEntries: 2*degree - 1,
		compare:    compare,
	}, nil
}

/*
Search walks the tree from the root, binary searching each node on the way.
It returns the value stored under key, or the zero value and false when the
key is absent. Search never restructures the tree.
*/
func (t *BTree[K, V]) Search(key K) (V, bool) {
	for n := t.root; ; {
		pos, found := n.search(t.compare, key)
		if found {
			return n.entries[pos].Value, true
		}
		if n.leaf {
			var zero V
			return zero, false
		}
		n = n.childAt(pos)
	}
}

// Len returns the number of entries currently stored in the tree.
func (t *BTree[K, V]) Len() int {
	return t.length
}

// Height returns the number of node levels, counting the root. An empty tree
// has height 1: its root is a leaf with no entries.
func (t *BTree[K, V]) Height() int {
	h := 1
	for n := t.root; !n.leaf; n = n.childAt(0) {
		h++
	}
	return h
}

func (t *BTree[K, V]) String() string {
	return fmt.Sprintf("BTree{degree: %d, entries: %d, height: %d}", t.degree, t.length, t.Height())
}
