package btree

/*
Delete removes the entry stored under key and returns it, or the zero entry
and false when the key is absent. Deleting an absent key never restructures
the tree.
*/
func (t *BTree[K, V]) Delete(key K) (Entry[K, V], bool) {
	removed, ok := t.delete(t.root, true, key)
	if ok {
		t.length--
	}
	return removed, ok
}

/*
delete removes key from the subtree rooted at n.

The recursion maintains one precondition: every non-root node it is called on
holds at least t entries, so the node can give one up without dropping below
the minimum. Whenever the child about to be descended into is minimal, it is
topped up first, by borrowing an entry from a sibling through the parent or
by merging it with one. The root is exempt; when restructuring drains it to
zero entries, its single remaining child takes its place and the tree loses
one level. Which branch runs is decided purely by entry counts against t.
*/
func (t *BTree[K, V]) delete(n *node[K, V], isRoot bool, key K) (Entry[K, V], bool) {
	if !isRoot && n.size() < t.degree {
		panic("btree: delete descended into a node without a spare entry")
	}

	pos, found := n.search(t.compare, key)
	if !found {
		// The key is absent from this node. A leaf means it is absent from
		// the whole tree.
		if n.leaf {
			return Entry[K, V]{}, false
		}
		child := n.childAt(pos)
		if child.size() < t.degree {
			pos = t.refill(n, pos)
			child = n.childAt(pos)
		}
		if isRoot && n.size() == 0 {
			t.root = child
			return t.delete(child, true, key)
		}
		return t.delete(child, false, key)
	}

	if n.leaf {
		return n.removeEntryAt(pos), true
	}

	left, right := n.childAt(pos), n.childAt(pos+1)
	switch {
	case left.size() >= t.degree:
		// Fill the vacated slot with the largest key smaller than the one
		// being removed, lifted out of the left subtree.
		removed := n.entryAt(pos)
		n.entries[pos] = t.deleteMax(left)
		return removed, true
	case right.size() >= t.degree:
		removed := n.entryAt(pos)
		n.entries[pos] = t.deleteMin(right)
		return removed, true
	default:
		// Both neighboring children are minimal. Collapse them around the
		// doomed entry and retry inside the combined node, which now holds
		// 2t-1 entries.
		t.mergeChildren(n, pos)
		if isRoot && n.size() == 0 {
			t.root = left
			return t.delete(left, true, key)
		}
		return t.delete(left, false, key)
	}
}

// deleteMax removes and returns the largest entry of the subtree rooted at n.
// The caller guarantees n holds at least t entries.
func (t *BTree[K, V]) deleteMax(n *node[K, V]) Entry[K, V] {
	if n.leaf {
		return n.removeEntryAt(n.size() - 1)
	}
	pos := n.size()
	if n.childAt(pos).size() < t.degree {
		pos = t.refill(n, pos)
	}
	return t.deleteMax(n.childAt(pos))
}

// deleteMin is the mirror image of deleteMax.
func (t *BTree[K, V]) deleteMin(n *node[K, V]) Entry[K, V] {
	if n.leaf {
		return n.removeEntryAt(0)
	}
	pos := 0
	if n.childAt(pos).size() < t.degree {
		pos = t.refill(n, pos)
	}
	return t.deleteMin(n.childAt(pos))
}

/*
refill brings the minimal child at pos up to at least t entries so a removal
can descend into it. It first tries to borrow through the parent from the
right sibling, then from the left one; when both are minimal it merges the
child with a sibling, preferring the right. The return value is the child's
index after restructuring: merging with the left sibling shifts it down by
one, everything else leaves it in place.
*/
func (t *BTree[K, V]) refill(n *node[K, V], pos int) int {
	child := n.childAt(pos)

	if pos < n.size() && n.childAt(pos+1).size() >= t.degree {
		// Rotate counter-clockwise: the separator drops down as the child's
		// last entry, the right sibling's first entry replaces it, and the
		// right sibling's first child changes sides.
		right := n.childAt(pos + 1)
		child.appendEntry(n.entryAt(pos))
		n.entries[pos] = right.removeEntryAt(0)
		if !right.leaf {
			child.appendChild(right.removeChildAt(0))
		}
		return pos
	}

	if pos > 0 && n.childAt(pos-1).size() >= t.degree {
		// Clockwise rotation through the left sibling. The child moved over
		// is the one adjacent to the rotated entry: the sibling's last.
		left := n.childAt(pos - 1)
		child.insertEntryAt(0, n.entryAt(pos-1))
		n.entries[pos-1] = left.removeEntryAt(left.size() - 1)
		if !left.leaf {
			child.insertChildAt(0, left.removeChildAt(len(left.children)-1))
		}
		return pos
	}

	if pos < n.size() {
		t.mergeChildren(n, pos)
		return pos
	}
	t.mergeChildren(n, pos-1)
	return pos - 1
}

/*
mergeChildren folds the separator entry at index and the child right of it
into the child left of it, leaving the left child with 2t-1 entries. The
right child hands over everything it owns and is dropped from the tree. This
is the only way nodes are destroyed, as splitting is the only way they are
created.
*/
func (t *BTree[K, V]) mergeChildren(n *node[K, V], index int) {
	left, right := n.childAt(index), n.childAt(index+1)
	left.appendEntry(n.removeEntryAt(index))
	n.removeChildAt(index + 1)
	left.entries = append(left.entries, right.entries...)
	if !right.leaf {
		left.children = append(left.children, right.children...)
	}
}
