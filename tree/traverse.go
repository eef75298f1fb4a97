package tree

// Preorder visits every node in node-left-right order, calling visit with
// the node's data. The traversal is iterative over an explicit stack of at
// most Cap() indices.
func (t *Tree[T]) Preorder(visit func(v T)) {
	if t.root == none {
		return
	}
	stack := make([]int, 0, len(t.nodes))
	stack = append(stack, t.root)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[idx]
		visit(n.data)

		// Right pushed first so left is visited first.
		if n.right != none {
			stack = append(stack, n.right)
		}
		if n.left != none {
			stack = append(stack, n.left)
		}
	}
}

// Inorder visits every node in left-node-right order, calling visit with
// the node's data. The traversal is iterative over an explicit stack of at
// most Cap() indices.
func (t *Tree[T]) Inorder(visit func(v T)) {
	stack := make([]int, 0, len(t.nodes))
	current := t.root

	for current != none || len(stack) > 0 {
		for current != none {
			stack = append(stack, current)
			current = t.nodes[current].left
		}
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[idx]
		visit(n.data)
		current = n.right
	}
}

// Postorder visits every node in left-right-node order, calling visit with
// the node's data. The traversal is iterative; lastVisited distinguishes
// "right subtree not yet explored" from "both subtrees done, visit now".
func (t *Tree[T]) Postorder(visit func(v T)) {
	stack := make([]int, 0, len(t.nodes))
	current := t.root
	lastVisited := none

	for current != none || len(stack) > 0 {
		for current != none {
			stack = append(stack, current)
			current = t.nodes[current].left
		}
		top := stack[len(stack)-1]
		n := &t.nodes[top]

		if n.right != none && n.right != lastVisited {
			current = n.right
			continue
		}
		stack = stack[:len(stack)-1]
		visit(n.data)
		lastVisited = top
	}
}

// Depth returns the number of nodes on the longest root-to-leaf path: 0
// for an empty tree, 1 for a single node. This form is recursive with
// depth bounded by Cap(); callers on tight call stacks should use
// DepthIterative instead.
func (t *Tree[T]) Depth() int {
	return t.depthFrom(t.root)
}

func (t *Tree[T]) depthFrom(idx int) int {
	if idx == none {
		return 0
	}
	n := &t.nodes[idx]
	return 1 + max(t.depthFrom(n.left), t.depthFrom(n.right))
}

// DepthIterative returns the same value as Depth, computed level by level
// with two alternating buffers of at most Cap() indices and no recursion.
func (t *Tree[T]) DepthIterative() int {
	if t.root == none {
		return 0
	}
	current := make([]int, 0, len(t.nodes))
	next := make([]int, 0, len(t.nodes))
	current = append(current, t.root)

	depth := 0
	for len(current) > 0 {
		depth++
		for _, idx := range current {
			n := &t.nodes[idx]
			if n.left != none {
				next = append(next, n.left)
			}
			if n.right != none {
				next = append(next, n.right)
			}
		}
		current, next = next, current[:0]
	}
	return depth
}
