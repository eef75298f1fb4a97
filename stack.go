package fixedcol

import "github.com/hupe1980/fixedcol/internal/slot"

// Stack is a fixed-capacity LIFO container. Slots [0, top) of the backing
// arena are live; push writes at top, pop takes from top-1. All operations
// are O(1) and allocation-free.
type Stack[T any] struct {
	arena *slot.Arena[T]
	top   int
}

// NewStack creates a stack holding at most capacity elements.
// It panics if capacity is negative.
func NewStack[T any](capacity int, opts ...Option[T]) *Stack[T] {
	if capacity < 0 {
		panic("fixedcol: negative stack capacity")
	}
	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Stack[T]{arena: slot.New(capacity, cfg.release)}
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return s.top }

// Cap returns the fixed capacity.
func (s *Stack[T]) Cap() int { return s.arena.Cap() }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.top == 0 }

// IsFull reports whether the stack holds capacity elements.
func (s *Stack[T]) IsFull() bool { return s.top == s.arena.Cap() }

// Push places v on top of the stack. It returns ErrFull if the stack is at
// capacity; the caller keeps v.
func (s *Stack[T]) Push(v T) error {
	if s.IsFull() {
		return ErrFull
	}
	s.arena.Put(s.top, v)
	s.top++
	return nil
}

// Pop removes and returns the top element. Ownership transfers to the
// caller; the release hook is not invoked. It returns ErrEmpty if the
// stack holds no elements.
func (s *Stack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	s.top--
	return s.arena.Take(s.top), nil
}

// Peek returns a pointer to the top element without removing it. The
// pointer is valid until the next Pop, Clear or Drain touches the slot.
// It returns ErrEmpty if the stack holds no elements.
func (s *Stack[T]) Peek() (*T, error) {
	if s.IsEmpty() {
		return nil, ErrEmpty
	}
	return s.arena.Ref(s.top - 1), nil
}

// Clear pops and releases every element, leaving the stack empty. Exactly
// the live slots are touched; each discarded element passes through the
// release hook once.
func (s *Stack[T]) Clear() {
	s.arena.ReleaseAll()
	s.top = 0
}

// Drain returns an iterator that removes elements in pop order
// (most-recently-pushed first). The caller owns every element obtained via
// Next. Close discards whatever was not consumed, so no element can be
// stranded in a live slot by an abandoned drain; always close a drain,
// typically with defer.
func (s *Stack[T]) Drain() *Drain[T] {
	return &Drain[T]{stack: s}
}

// Drain removes elements from a Stack one at a time. See Stack.Drain.
type Drain[T any] struct {
	stack  *Stack[T]
	closed bool
}

// Next pops and returns the next element. ok is false once the stack is
// exhausted or the drain has been closed.
func (d *Drain[T]) Next() (v T, ok bool) {
	if d.closed || d.stack.IsEmpty() {
		var zero T
		return zero, false
	}
	v, _ = d.stack.Pop()
	return v, true
}

// Close pops and releases all remaining elements. It is idempotent.
func (d *Drain[T]) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.stack.Clear()
}
