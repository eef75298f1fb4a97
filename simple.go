package fixedcol

// SimpleStack is a fixed-capacity LIFO for plain values. The backing array
// is pre-filled with a caller-supplied fill value and stays fully
// initialized: vacated slots are re-filled rather than liveness-tracked.
// Use Stack for elements that own resources.
type SimpleStack[T any] struct {
	data []T
	fill T
	top  int
}

// NewSimpleStack creates a stack holding at most capacity elements, with
// every backing slot initialized to fill. It panics if capacity is
// negative.
func NewSimpleStack[T any](capacity int, fill T) *SimpleStack[T] {
	if capacity < 0 {
		panic("fixedcol: negative stack capacity")
	}
	data := make([]T, capacity)
	for i := range data {
		data[i] = fill
	}
	return &SimpleStack[T]{data: data, fill: fill}
}

// Len returns the number of elements on the stack.
func (s *SimpleStack[T]) Len() int { return s.top }

// Cap returns the fixed capacity.
func (s *SimpleStack[T]) Cap() int { return len(s.data) }

// IsEmpty reports whether the stack holds no elements.
func (s *SimpleStack[T]) IsEmpty() bool { return s.top == 0 }

// IsFull reports whether the stack holds capacity elements.
func (s *SimpleStack[T]) IsFull() bool { return s.top == len(s.data) }

// Push places v on top of the stack. It returns ErrFull if the stack is at
// capacity.
func (s *SimpleStack[T]) Push(v T) error {
	if s.IsFull() {
		return ErrFull
	}
	s.data[s.top] = v
	s.top++
	return nil
}

// Pop removes and returns the top element, or ErrEmpty.
func (s *SimpleStack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	s.top--
	v := s.data[s.top]
	s.data[s.top] = s.fill
	return v, nil
}

// Peek returns a pointer to the top element without removing it, or
// ErrEmpty. The pointer is valid until the next Pop or Clear.
func (s *SimpleStack[T]) Peek() (*T, error) {
	if s.IsEmpty() {
		return nil, ErrEmpty
	}
	return &s.data[s.top-1], nil
}

// Clear removes all elements and re-fills the backing array.
func (s *SimpleStack[T]) Clear() {
	for i := 0; i < s.top; i++ {
		s.data[i] = s.fill
	}
	s.top = 0
}

// SimpleQueue is a fixed-capacity ring FIFO for plain values. It keeps a
// head index and a length; the tail is derived. The backing array is
// pre-filled with a caller-supplied fill value and stays fully
// initialized. Use Queue for elements that own resources.
type SimpleQueue[T any] struct {
	data   []T
	fill   T
	head   int
	length int
}

// NewSimpleQueue creates a queue holding at most capacity elements, with
// every backing slot initialized to fill. It panics if capacity is
// negative.
func NewSimpleQueue[T any](capacity int, fill T) *SimpleQueue[T] {
	if capacity < 0 {
		panic("fixedcol: negative queue capacity")
	}
	data := make([]T, capacity)
	for i := range data {
		data[i] = fill
	}
	return &SimpleQueue[T]{data: data, fill: fill}
}

// Len returns the number of elements in the queue.
func (q *SimpleQueue[T]) Len() int { return q.length }

// Cap returns the fixed capacity.
func (q *SimpleQueue[T]) Cap() int { return len(q.data) }

// IsEmpty reports whether the queue holds no elements.
func (q *SimpleQueue[T]) IsEmpty() bool { return q.length == 0 }

// IsFull reports whether the queue holds capacity elements.
func (q *SimpleQueue[T]) IsFull() bool { return q.length == len(q.data) }

func (q *SimpleQueue[T]) tail() int {
	return (q.head + q.length) % len(q.data)
}

// Enqueue appends v at the tail of the queue. It returns ErrFull if the
// queue is at capacity.
func (q *SimpleQueue[T]) Enqueue(v T) error {
	if q.IsFull() {
		return ErrFull
	}
	q.data[q.tail()] = v
	q.length++
	return nil
}

// Dequeue removes and returns the element at the head, or ErrEmpty.
func (q *SimpleQueue[T]) Dequeue() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	v := q.data[q.head]
	q.data[q.head] = q.fill
	q.head = (q.head + 1) % len(q.data)
	q.length--
	return v, nil
}

// Peek returns a pointer to the head element without removing it, or
// ErrEmpty. The pointer is valid until the next Dequeue or Clear.
func (q *SimpleQueue[T]) Peek() (*T, error) {
	if q.IsEmpty() {
		return nil, ErrEmpty
	}
	return &q.data[q.head], nil
}

// Clear removes all elements and re-fills the backing array.
func (q *SimpleQueue[T]) Clear() {
	for i := range q.data {
		q.data[i] = q.fill
	}
	q.head = 0
	q.length = 0
}
