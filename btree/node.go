package btree

type node[K, V any] struct {
	// entries are kept strictly increasing by key. An internal node always
	// holds exactly len(entries)+1 children; a leaf holds none.
	entries  []Entry[K, V]
	children []*node[K, V]
	leaf     bool
}

func (n *node[K, V]) size() int {
	return len(n.entries)
}

/*
If an entry with the given key is found in node n, return its index i and true.
Else, return the index j where the key would have resided if it was present in
the node, and false. That insertion index coincides with the position of the
child pointer covering the key, so a caller can continue the traversal down
the tree when the returned boolean is false.
*/
func (n *node[K, V]) search(compare CompareFunc[K], key K) (int, bool) {
	low, high := 0, len(n.entries)
	var mid int
	for low < high {
		mid = (low + high) / 2
		switch c := compare(key, n.entries[mid].Key); {
		case c > 0:
			low = mid + 1
		case c < 0:
			high = mid
		default:
			return mid, true
		}
	}
	return low, false
}

func (n *node[K, V]) entryAt(index int) Entry[K, V] {
	return n.entries[index]
}

// helper method to insert an entry at an arbitrary position of a B-tree node.
// The caller picks the position, and is responsible for keeping the entries
// sorted by key.
func (n *node[K, V]) insertEntryAt(index int, e Entry[K, V]) {
	n.entries = append(n.entries, Entry[K, V]{})
	copy(n.entries[index+1:], n.entries[index:])
	n.entries[index] = e
}

// helper method to remove and return the entry at the given position.
func (n *node[K, V]) removeEntryAt(index int) Entry[K, V] {
	removed := n.entries[index]
	copy(n.entries[index:], n.entries[index+1:])
	n.truncateEntries(len(n.entries) - 1)
	return removed
}

func (n *node[K, V]) appendEntry(e Entry[K, V]) {
	n.entries = append(n.entries, e)
}

// truncateEntries shortens the entry sequence to length k, zeroing the tail
// so stale keys and values don't keep memory alive.
func (n *node[K, V]) truncateEntries(k int) {
	var zero Entry[K, V]
	for i := k; i < len(n.entries); i++ {
		n.entries[i] = zero
	}
	n.entries = n.entries[:k]
}

/*
put updates the value of an existing entry with the same key, returning the
previous value and true. If the key is absent, the entry is inserted at its
sorted position and the zero value and false are returned.
*/
func (n *node[K, V]) put(compare CompareFunc[K], e Entry[K, V]) (V, bool) {
	pos, found := n.search(compare, e.Key)
	if found {
		old := n.entries[pos].Value
		n.entries[pos] = e
		return old, true
	}
	n.insertEntryAt(pos, e)
	var zero V
	return zero, false
}

// insertIfAbsent inserts the entry at its sorted position, unless an entry
// with the same key already exists. Reports whether the insert happened.
func (n *node[K, V]) insertIfAbsent(compare CompareFunc[K], e Entry[K, V]) bool {
	pos, found := n.search(compare, e.Key)
	if found {
		return false
	}
	n.insertEntryAt(pos, e)
	return true
}

// childAt returns the child at the given position. Asking a leaf for a child
// is a bug in the caller, not an empty result, so it panics rather than
// handing back a sentinel.
func (n *node[K, V]) childAt(index int) *node[K, V] {
	if n.leaf {
		panic("btree: child access on a leaf node")
	}
	return n.children[index]
}

// helper method to insert a child pointer at an arbitrary position of a
// B-tree node.
func (n *node[K, V]) insertChildAt(index int, child *node[K, V]) {
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// helper method to remove and return the child pointer at the given position.
func (n *node[K, V]) removeChildAt(index int) *node[K, V] {
	removed := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.truncateChildren(len(n.children) - 1)
	return removed
}

func (n *node[K, V]) appendChild(child *node[K, V]) {
	n.children = append(n.children, child)
}

func (n *node[K, V]) truncateChildren(k int) {
	for i := k; i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = n.children[:k]
}
