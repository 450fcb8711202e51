package btree

import "fmt"

/*
Entry is a single key/value pair stored in a node.
The key identifies the entry and determines its position in the tree.
The value is the payload carried along with the key; updating an existing
key replaces the whole entry.
*/
type Entry[K, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v:%v", e.Key, e.Value)
}
