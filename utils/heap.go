package utils

import "golang.org/x/exp/constraints"

// Cmp is an explicit comparator: negative when a sorts before b, zero when
// equal, positive otherwise. The heap treats "sorts before" as "closer to
// the top", so a max-heap is just a comparator that puts the greater
// element first.
type Cmp[T any] func(a, b T) int

// Ordered is the natural ascending comparator for ordered types.
func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Reverse flips a comparator, turning a min ordering into a max ordering.
func Reverse[T any](cmp Cmp[T]) Cmp[T] {
	return func(a, b T) int { return -cmp(a, b) }
}

// Heap is an array-backed binary heap over an arbitrary element type,
// parameterized by a comparator instead of requiring the elements to be
// ordered themselves.
type Heap[T any] struct {
	cmp Cmp[T]
	buf []T
}

func NewHeap[T any](cmp Cmp[T]) *Heap[T] {
	return &Heap[T]{cmp: cmp}
}

func (h *Heap[T]) Len() int {
	return len(h.buf)
}

// Peek returns the top element without removing it.
func (h *Heap[T]) Peek() (top T, ok bool) {
	if len(h.buf) == 0 {
		return
	}
	return h.buf[0], true
}

// Push pushes the element x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[T]) Push(x T) {
	h.buf = append(h.buf, x)
	h.up(h.Len() - 1)
}

func (h *Heap[T]) swap(i, j int) {
	h.buf[i], h.buf[j] = h.buf[j], h.buf[i]
}

// Pop removes and returns the top element (according to the comparator).
// The complexity is O(log n) where n = h.Len().
func (h *Heap[T]) Pop() (top T) {
	top = h.buf[0]
	n := h.Len() - 1
	h.swap(0, n)
	h.down(0, n)
	var zero T
	h.buf[n] = zero
	h.buf = h.buf[0:n]
	return
}

// Remove removes and returns the element at index i from the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[T]) Remove(i int) T {
	n := h.Len() - 1
	if n != i {
		h.swap(i, n)
		if !h.down(i, n) {
			h.up(i)
		}
	}
	return h.Pop()
}

// Fix re-establishes the heap ordering after the element at index i has
// changed its value. The complexity is O(log n) where n = h.Len().
func (h *Heap[T]) Fix(i int) {
	if !h.down(i, h.Len()) {
		h.up(i)
	}
}

// Slice exposes the backing array in heap order. Callers must treat it as
// read-only; it stays valid only until the next Push/Pop.
func (h *Heap[T]) Slice() []T {
	return h.buf
}

func (h *Heap[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || h.cmp(h.buf[j], h.buf[i]) >= 0 {
			break
		}
		h.buf[i], h.buf[j] = h.buf[j], h.buf[i]
		j = i
	}
}

func (h *Heap[T]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.cmp(h.buf[j2], h.buf[j1]) < 0 {
			j = j2 // = 2*i + 2  // right child
		}
		if h.cmp(h.buf[j], h.buf[i]) >= 0 {
			break
		}
		h.buf[i], h.buf[j] = h.buf[j], h.buf[i]
		i = j
	}
	return i > i0
}
