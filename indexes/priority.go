package indexes

import (
	"sort"

	"github.com/feedlab/postdex/postdex_errors"
	"github.com/feedlab/postdex/utils"
)

// Priority is a binary max-heap over an arbitrary value type. The caller
// supplies an ascending comparator on the ranking key; the element the
// comparator sorts last is the one PeekMax and PopMax return. Tie order
// inside the heap is unspecified; Descending is the deterministic view.
type Priority[V any] struct {
	cmp utils.Cmp[V]
	h   *utils.Heap[V]
}

func NewPriority[V any](cmp utils.Cmp[V]) *Priority[V] {
	return &Priority[V]{
		cmp: cmp,
		h:   utils.NewHeap(utils.Reverse(cmp)),
	}
}

// Push inserts a value. O(log n).
func (p *Priority[V]) Push(val V) {
	p.h.Push(val)
}

// PeekMax returns the highest-ranked value without removing it. O(1).
// The ok result is false on an empty index.
func (p *Priority[V]) PeekMax() (val V, ok bool) {
	return p.h.Peek()
}

// PopMax removes and returns the highest-ranked value. O(log n).
func (p *Priority[V]) PopMax() (val V, err error) {
	if p.h.Len() == 0 {
		return val, postdex_errors.ErrEmptyIndex
	}
	return p.h.Pop(), nil
}

// Descending returns all values ordered by descending rank. It sorts a
// snapshot of the heap's backing array with a stable sort, so ties keep the
// heap-internal order and the result is deterministic for a given insert
// sequence. The heap itself is left untouched.
func (p *Priority[V]) Descending() []V {
	snap := make([]V, p.h.Len())
	copy(snap, p.h.Slice())
	sort.SliceStable(snap, func(i, j int) bool {
		return p.cmp(snap[i], snap[j]) > 0
	})
	return snap
}

func (p *Priority[V]) Len() int {
	return p.h.Len()
}
