// Package tree provides a fixed-capacity, array-backed binary tree.
//
// Nodes live in a pre-sized arena and reference each other by integer
// index instead of pointer: children are stored as indices, -1 meaning
// "no child". The arena is append-only; there is no node removal, so an
// index handed out by an insert stays valid for the life of the tree.
//
// # Quick Start
//
//	t := tree.New[int](8)
//	_ = t.InsertRoot(1)
//	root, _ := t.Root()
//	left, _ := t.InsertLeft(root, 2)
//	_, _ = t.InsertRight(root, 3)
//	_, _ = t.InsertLeft(left, 4)
//
//	t.Inorder(func(v int) { fmt.Println(v) })
//
// # Traversal
//
// Preorder, Inorder and Postorder are iterative: they use an explicit
// stack bounded by the tree's own capacity, never recursion, so the call
// stack stays flat no matter how degenerate the tree shape is. Depth is
// offered both recursively (bounded by tree depth, at most capacity) and
// iteratively via level-order sweeping; callers with tight call-stack
// budgets should prefer DepthIterative.
package tree
