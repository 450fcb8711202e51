package btree

import (
	"math/rand"
	"testing"
)

const benchmarkTreeSize = 10000

func benchmarkTree(b *testing.B, keys []int) *BTree[int, int] {
	tree, err := New[int, int](16)
	if err != nil {
		b.Fatal(err)
	}
	for _, k := range keys {
		tree.Insert(k, k)
	}
	return tree
}

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		tree, err := New[int, int](16)
		if err != nil {
			b.Fatal(err)
		}
		for _, k := range insertP {
			tree.Insert(k, k)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	tree := benchmarkTree(b, insertP)
	b.StartTimer()
	i := 0
	for i < b.N {
		for _, k := range insertP {
			if _, found := tree.Search(k); !found {
				b.Fatalf("key %d missing", k)
			}
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkDelete(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	removeP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		b.StopTimer()
		tree := benchmarkTree(b, insertP)
		b.StartTimer()
		for _, k := range removeP {
			tree.Delete(k)
			i++
			if i >= b.N {
				return
			}
		}
		if tree.Len() > 0 {
			panic(tree.Len())
		}
	}
}
