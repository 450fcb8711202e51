package btree

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func leafOf(keys ...int) *node[int, int] {
	n := &node[int, int]{leaf: true}
	for _, k := range keys {
		n.appendEntry(Entry[int, int]{Key: k, Value: k * 10})
	}
	return n
}

func internalOf(keys []int, children ...*node[int, int]) *node[int, int] {
	n := &node[int, int]{}
	for _, k := range keys {
		n.appendEntry(Entry[int, int]{Key: k, Value: k * 10})
	}
	for _, c := range children {
		n.appendChild(c)
	}
	return n
}

func TestNodeSearch(t *testing.T) {
	n := leafOf(10, 20, 30)

	t.Run("Found", func(t *testing.T) {
		for i, key := range []int{10, 20, 30} {
			pos, found := n.search(cmp.Compare[int], key)
			require.True(t, found)
			require.Equal(t, i, pos)
		}
	})
	t.Run("NotFound", func(t *testing.T) {
		for key, want := range map[int]int{5: 0, 15: 1, 25: 2, 35: 3} {
			pos, found := n.search(cmp.Compare[int], key)
			require.False(t, found)
			require.Equal(t, want, pos)
		}
	})
	t.Run("Empty", func(t *testing.T) {
		pos, found := leafOf().search(cmp.Compare[int], 1)
		require.False(t, found)
		require.Zero(t, pos)
	})
}

func TestNodeEntryEdits(t *testing.T) {
	n := leafOf(10, 30)
	n.insertEntryAt(1, Entry[int, int]{Key: 20, Value: 200})
	require.Equal(t, []int{10, 20, 30}, keysOf(n))

	n.insertEntryAt(3, Entry[int, int]{Key: 40, Value: 400})
	require.Equal(t, []int{10, 20, 30, 40}, keysOf(n))

	removed := n.removeEntryAt(0)
	require.Equal(t, Entry[int, int]{Key: 10, Value: 100}, removed)
	require.Equal(t, []int{20, 30, 40}, keysOf(n))

	removed = n.removeEntryAt(2)
	require.Equal(t, 40, removed.Key)
	require.Equal(t, []int{20, 30}, keysOf(n))
}

func TestNodePut(t *testing.T) {
	n := leafOf(10, 20)

	old, existed := n.put(cmp.Compare[int], Entry[int, int]{Key: 20, Value: 999})
	require.True(t, existed)
	require.Equal(t, 200, old)
	require.Equal(t, 999, n.entryAt(1).Value)

	_, existed = n.put(cmp.Compare[int], Entry[int, int]{Key: 15, Value: 150})
	require.False(t, existed)
	require.Equal(t, []int{10, 15, 20}, keysOf(n))
}

func TestNodeInsertIfAbsent(t *testing.T) {
	n := leafOf(10, 20)

	require.False(t, n.insertIfAbsent(cmp.Compare[int], Entry[int, int]{Key: 10, Value: 999}))
	require.Equal(t, 100, n.entryAt(0).Value)

	require.True(t, n.insertIfAbsent(cmp.Compare[int], Entry[int, int]{Key: 25, Value: 250}))
	require.Equal(t, []int{10, 20, 25}, keysOf(n))
}

func TestNodeChildEdits(t *testing.T) {
	a, b, c := leafOf(1), leafOf(3), leafOf(5)
	n := internalOf([]int{2, 4}, a, c)

	n.insertChildAt(1, b)
	require.Equal(t, []*node[int, int]{a, b, c}, n.children)

	removed := n.removeChildAt(0)
	require.Same(t, a, removed)
	require.Equal(t, []*node[int, int]{b, c}, n.children)
}

func TestNodeChildAtPanicsOnLeaf(t *testing.T) {
	n := leafOf(10)
	require.Panics(t, func() {
		n.childAt(0)
	})
}

func keysOf(n *node[int, int]) []int {
	keys := make([]int, 0, n.size())
	for _, e := range n.entries {
		keys = append(keys, e.Key)
	}
	return keys
}
