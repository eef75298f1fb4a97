package tree

import "errors"

var (
	// ErrRootExists is returned by InsertRoot when the tree already has a
	// root node.
	ErrRootExists = errors.New("tree: root already exists")

	// ErrInvalidParent is returned when a parent index is out of range or
	// does not name a populated node.
	ErrInvalidParent = errors.New("tree: invalid parent index")

	// ErrChildExists is returned when the requested child slot of the
	// parent is already occupied.
	ErrChildExists = errors.New("tree: child already exists")

	// ErrTreeFull is returned when the node arena has no free slot left.
	ErrTreeFull = errors.New("tree: node arena full")
)

// none marks an absent index (no root, no child).
const none = -1

type node[T any] struct {
	data  T
	left  int
	right int
	used  bool
}

// Tree is a binary tree over a fixed-size node arena. Indices returned by
// the insert methods address nodes directly; the arena never reclaims a
// slot, so next only grows.
type Tree[T any] struct {
	nodes []node[T]
	root  int
	next  int
}

// New creates an empty tree with room for capacity nodes.
// It panics if capacity is negative.
func New[T any](capacity int) *Tree[T] {
	if capacity < 0 {
		panic("tree: negative capacity")
	}
	return &Tree[T]{
		nodes: make([]node[T], capacity),
		root:  none,
	}
}

// Cap returns the fixed node capacity.
func (t *Tree[T]) Cap() int { return len(t.nodes) }

// NodeCount returns the total number of nodes allocated so far. Since
// there is no deletion, this equals the number of live nodes.
func (t *Tree[T]) NodeCount() int { return t.next }

// Root returns the root index, or ok=false for an empty tree.
func (t *Tree[T]) Root() (int, bool) {
	if t.root == none {
		return 0, false
	}
	return t.root, true
}

// Get returns a pointer to the data of the node at index, or ok=false if
// the index is out of range or unpopulated. It never panics.
func (t *Tree[T]) Get(index int) (*T, bool) {
	if index < 0 || index >= len(t.nodes) || !t.nodes[index].used {
		return nil, false
	}
	return &t.nodes[index].data, true
}

// alloc claims the next free arena slot for a leaf carrying v.
func (t *Tree[T]) alloc(v T) (int, error) {
	if t.next >= len(t.nodes) {
		return 0, ErrTreeFull
	}
	idx := t.next
	t.nodes[idx] = node[T]{data: v, left: none, right: none, used: true}
	t.next++
	return idx, nil
}

// InsertRoot creates the root node. It returns ErrRootExists if the tree
// already has one, or ErrTreeFull if the arena is exhausted.
func (t *Tree[T]) InsertRoot(v T) error {
	if t.root != none {
		return ErrRootExists
	}
	idx, err := t.alloc(v)
	if err != nil {
		return err
	}
	t.root = idx
	return nil
}

// InsertLeft creates a new node carrying v as the left child of parent and
// returns its index. It returns ErrInvalidParent, ErrChildExists or
// ErrTreeFull when the respective precondition fails.
func (t *Tree[T]) InsertLeft(parent int, v T) (int, error) {
	if parent < 0 || parent >= len(t.nodes) || !t.nodes[parent].used {
		return 0, ErrInvalidParent
	}
	if t.nodes[parent].left != none {
		return 0, ErrChildExists
	}
	idx, err := t.alloc(v)
	if err != nil {
		return 0, err
	}
	t.nodes[parent].left = idx
	return idx, nil
}

// InsertRight creates a new node carrying v as the right child of parent
// and returns its index. It returns ErrInvalidParent, ErrChildExists or
// ErrTreeFull when the respective precondition fails.
func (t *Tree[T]) InsertRight(parent int, v T) (int, error) {
	if parent < 0 || parent >= len(t.nodes) || !t.nodes[parent].used {
		return 0, ErrInvalidParent
	}
	if t.nodes[parent].right != none {
		return 0, ErrChildExists
	}
	idx, err := t.alloc(v)
	if err != nil {
		return 0, err
	}
	t.nodes[parent].right = idx
	return idx, nil
}
