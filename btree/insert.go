package btree

/*
Insert stores the key/value pair if the key is absent and reports whether it
did. An existing key rejects the insert and keeps its current value; use Put
for insert-or-update semantics.
*/
func (t *BTree[K, V]) Insert(key K, value V) bool {
	if t.root.size() == t.maxEntries {
		t.growRoot()
	}
	inserted := t.insertNonFull(t.root, Entry[K, V]{Key: key, Value: value})
	if inserted {
		t.length++
	}
	return inserted
}

/*
Put stores the key/value pair, replacing the value of an existing key.
It returns the previous value and true when the key was already present,
otherwise the zero value and false.
*/
func (t *BTree[K, V]) Put(key K, value V) (V, bool) {
	if t.root.size() == t.maxEntries {
		t.growRoot()
	}
	old, existed := t.putNonFull(t.root, Entry[K, V]{Key: key, Value: value})
	if !existed {
		t.length++
	}
	return old, existed
}

/*
growRoot makes the tree one level deeper: a new empty internal root takes the
current root as its only child and splits it immediately. This is the only
path by which the tree gains height, and it always runs before a descent, so
no node visited during the descent is ever full.
*/
func (t *BTree[K, V]) growRoot() {
	newRoot := &node[K, V]{}
	newRoot.appendChild(t.root)
	t.splitChild(newRoot, t.root, 0)
	t.root = newRoot
}

/*
splitChild relieves a full child: the top t-1 entries move into a freshly
created sibling of the same leaf-ness (along with the top t children when the
child is internal), and the single middle entry is promoted into the parent
at the child's index. The new sibling becomes the parent's child right after
the original one. Both halves end up with exactly t-1 entries.
*/
func (t *BTree[K, V]) splitChild(parent, child *node[K, V], index int) {
	if child.size() != t.maxEntries {
		panic("btree: split of a node that is not full")
	}
	mid := t.degree - 1
	middle := child.entryAt(mid)

	sibling := &node[K, V]{leaf: child.leaf}
	sibling.entries = append(sibling.entries, child.entries[mid+1:]...)
	child.truncateEntries(mid)

	if !child.leaf {
		sibling.children = append(sibling.children, child.children[t.degree:]...)
		child.truncateChildren(t.degree)
	}

	parent.insertEntryAt(index, middle)
	parent.insertChildAt(index+1, sibling)
}

/*
insertNonFull carries the strict insert down to a leaf. The caller guarantees
n is not full. At each internal node the full child on the search path is
split before descending; the promoted separator may force the descent one
child to the right, or turn out to be the key itself, in which case the
insert is rejected on the spot.
*/
func (t *BTree[K, V]) insertNonFull(n *node[K, V], e Entry[K, V]) bool {
	if n.leaf {
		return n.insertIfAbsent(t.compare, e)
	}
	pos, found := n.search(t.compare, e.Key)
	if found {
		return false
	}
	child := n.childAt(pos)
	if child.size() == t.maxEntries {
		t.splitChild(n, child, pos)
		switch c := t.compare(e.Key, n.entryAt(pos).Key); {
		case c > 0:
			// The promoted separator is smaller than the key, so the key
			// now belongs in the new right sibling.
			child = n.childAt(pos + 1)
		case c == 0:
			// The promoted separator is the key itself.
			return false
		}
	}
	return t.insertNonFull(child, e)
}

// putNonFull is insertNonFull with upsert semantics: an existing key has its
// value replaced wherever it is met on the way down.
func (t *BTree[K, V]) putNonFull(n *node[K, V], e Entry[K, V]) (V, bool) {
	if n.leaf {
		return n.put(t.compare, e)
	}
	pos, found := n.search(t.compare, e.Key)
	if found {
		return n.put(t.compare, e)
	}
	child := n.childAt(pos)
	if child.size() == t.maxEntries {
		t.splitChild(n, child, pos)
		switch c := t.compare(e.Key, n.entryAt(pos).Key); {
		case c > 0:
			child = n.childAt(pos + 1)
		case c == 0:
			return n.put(t.compare, e)
		}
	}
	return t.putNonFull(child, e)
}
