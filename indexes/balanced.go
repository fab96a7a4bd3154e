package indexes

import (
	gbt "github.com/google/btree"
)

// Degree of the backing B-tree.
const btreeDegree = 32

type bnode[V any] struct {
	key string
	seq int
	val V
}

// Balanced is the self-balancing alternative to Tree, backed by a B-tree.
// It bounds the depth on pathological (sorted) insertion orders. Unlike
// Tree, its Range output is sorted ascending by key; duplicates are kept in
// insertion order via a per-insert sequence number.
type Balanced[V any] struct {
	tree *gbt.BTreeG[bnode[V]]
	seq  int
}

func NewBalanced[V any]() *Balanced[V] {
	less := func(a, b bnode[V]) bool {
		if a.key != b.key {
			return a.key < b.key
		}
		return a.seq < b.seq
	}
	return &Balanced[V]{tree: gbt.NewG(btreeDegree, less)}
}

func (t *Balanced[V]) Insert(key string, val V) {
	t.seq++
	t.tree.ReplaceOrInsert(bnode[V]{key: key, seq: t.seq, val: val})
}

// Range returns the values with keys in [start, end] inclusive, in
// ascending key order.
func (t *Balanced[V]) Range(start, end string) []V {
	var out []V
	t.tree.AscendGreaterOrEqual(bnode[V]{key: start}, func(n bnode[V]) bool {
		if n.key > end {
			return false
		}
		out = append(out, n.val)
		return true
	})
	return out
}

func (t *Balanced[V]) Len() int {
	return t.tree.Len()
}
