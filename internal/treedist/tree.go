package treedist

// Tree is an ordered tree of payloads stored in an arena. The zero value is
// an empty tree.
type Tree[T any] struct {
	nodes []node[T]
}

type node[T any] struct {
	payload  T
	parent   int
	children []int
}

// New creates a tree holding only a root.
func New[T any](root T) *Tree[T] {
	return &Tree[T]{nodes: []node[T]{{payload: root, parent: -1}}}
}

// Root returns the index of the root node, or -1 for an empty tree.
func (t *Tree[T]) Root() int {
	if len(t.nodes) == 0 {
		return -1
	}
	return 0
}

// Add appends a child with the given payload under parent and returns its
// index.
func (t *Tree[T]) Add(parent int, payload T) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node[T]{payload: payload, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// Len returns the number of nodes.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Payload returns the payload of node id.
func (t *Tree[T]) Payload(id int) T {
	return t.nodes[id].payload
}

// Children returns the child indices of node id in order.
func (t *Tree[T]) Children(id int) []int {
	return t.nodes[id].children
}

// Parent returns the parent index of node id, or -1 for the root.
func (t *Tree[T]) Parent(id int) int {
	return t.nodes[id].parent
}

// postorder is the post-order view used by the distance computation.
type postorder struct {
	order    []int // order[i] is the arena index of the i-th node in post-order
	leftmost []int // leftmost[i] is the post-order index of node i's leftmost leaf
	keyroots []int // ascending post-order indices
}

func (t *Tree[T]) postorder() postorder {
	n := len(t.nodes)
	po := postorder{
		order:    make([]int, 0, n),
		leftmost: make([]int, 0, n),
	}
	if n == 0 {
		return po
	}

	// Iterative traversal; table trees can be wide but a deep recursion is
	// still possible on hostile input.
	type frame struct {
		id, next, leftmost int
	}
	stack := []frame{{id: 0, leftmost: -1}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := t.nodes[top.id].children
		if top.next < len(children) {
			child := children[top.next]
			top.next++
			stack = append(stack, frame{id: child, leftmost: -1})
			continue
		}

		pos := len(po.order)
		lm := top.leftmost
		if lm < 0 {
			lm = pos // a leaf is its own leftmost leaf
		}
		po.order = append(po.order, top.id)
		po.leftmost = append(po.leftmost, lm)
		stack = stack[:len(stack)-1]

		if len(stack) > 0 {
			parent := &stack[len(stack)-1]
			if parent.leftmost < 0 {
				parent.leftmost = lm
			}
		}
	}

	// A keyroot is the highest node sharing its leftmost leaf.
	seen := make(map[int]bool, n)
	for i := n - 1; i >= 0; i-- {
		if !seen[po.leftmost[i]] {
			seen[po.leftmost[i]] = true
			po.keyroots = append(po.keyroots, i)
		}
	}
	for i, j := 0, len(po.keyroots)-1; i < j; i, j = i+1, j-1 {
		po.keyroots[i], po.keyroots[j] = po.keyroots[j], po.keyroots[i]
	}
	return po
}
