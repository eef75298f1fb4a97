package fixedcol

import "github.com/hupe1980/fixedcol/internal/slot"

// Queue is a fixed-capacity FIFO container over a ring of slots. The live
// region is the circular span of length elements starting at head; tail is
// always (head+length) mod capacity. All operations are O(1) and
// allocation-free.
type Queue[T any] struct {
	arena  *slot.Arena[T]
	head   int
	tail   int
	length int
}

// NewQueue creates a queue holding at most capacity elements.
// It panics if capacity is negative.
func NewQueue[T any](capacity int, opts ...Option[T]) *Queue[T] {
	if capacity < 0 {
		panic("fixedcol: negative queue capacity")
	}
	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Queue[T]{arena: slot.New(capacity, cfg.release)}
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int { return q.length }

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int { return q.arena.Cap() }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.length == 0 }

// IsFull reports whether the queue holds capacity elements.
func (q *Queue[T]) IsFull() bool { return q.length == q.arena.Cap() }

// Enqueue appends v at the tail of the queue. It returns ErrFull if the
// queue is at capacity; the caller keeps v.
func (q *Queue[T]) Enqueue(v T) error {
	if q.IsFull() {
		return ErrFull
	}
	q.arena.Put(q.tail, v)
	q.tail = (q.tail + 1) % q.arena.Cap()
	q.length++
	return nil
}

// Dequeue removes and returns the element at the head. Ownership transfers
// to the caller; the release hook is not invoked. It returns ErrEmpty if
// the queue holds no elements.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	v := q.arena.Take(q.head)
	q.head = (q.head + 1) % q.arena.Cap()
	q.length--
	return v, nil
}

// Peek returns a pointer to the head element without removing it. The
// pointer is valid until the next Dequeue or Clear touches the slot.
// It returns ErrEmpty if the queue holds no elements.
func (q *Queue[T]) Peek() (*T, error) {
	if q.IsEmpty() {
		return nil, ErrEmpty
	}
	return q.arena.Ref(q.head), nil
}

// Clear dequeues and releases every element, leaving the queue empty.
// Each discarded element passes through the release hook once; this is
// deliberately not an index reset, which would forget resource-owning
// values without releasing them.
func (q *Queue[T]) Clear() {
	q.arena.ReleaseAll()
	q.head = 0
	q.tail = 0
	q.length = 0
}
