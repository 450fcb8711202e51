package btree

import (
	"strings"

	"github.com/fatih/color"
)

/*
Dump returns a level-order snapshot of the tree: one slice per level, holding
that level's entries front to back, left to right. It is a diagnostic view of
the tree shape, not a stable format.
*/
func (t *BTree[K, V]) Dump() [][]Entry[K, V] {
	var levels [][]Entry[K, V]
	queue := []*node[K, V]{t.root}
	for len(queue) > 0 {
		level := []Entry[K, V]{}
		var next []*node[K, V]
		for _, n := range queue {
			level = append(level, n.entries...)
			if !n.leaf {
				next = append(next, n.children...)
			}
		}
		levels = append(levels, level)
		queue = next
	}
	return levels
}

/*
Visualizer renders the node structure of a tree for the console, one line per
level with node boundaries kept visible, so splits, merges and rotations can
be followed interactively.
*/
type Visualizer[K, V any] struct {
	Tree *BTree[K, V]
}

func (v *Visualizer[K, V]) Visualize() string {
	depthColor := color.New(color.FgYellow)
	keyColor := color.New(color.FgCyan)

	var sb strings.Builder
	level := []*node[K, V]{v.Tree.root}
	for depth := 0; len(level) > 0; depth++ {
		var next []*node[K, V]
		sb.WriteString(depthColor.Sprintf("%d:", depth))
		for _, n := range level {
			sb.WriteString(" [")
			for i, e := range n.entries {
				if i > 0 {
					sb.WriteByte('|')
				}
				sb.WriteString(keyColor.Sprintf("%v", e.Key))
				sb.WriteByte(':')
				sb.WriteString(color.WhiteString("%v", e.Value))
			}
			sb.WriteByte(']')
			if !n.leaf {
				next = append(next, n.children...)
			}
		}
		sb.WriteByte('\n')
		level = next
	}
	return sb.String()
}
