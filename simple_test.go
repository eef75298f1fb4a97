package fixedcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleStack_LIFO(t *testing.T) {
	s := NewSimpleStack(3, 0)

	assert.True(t, s.IsEmpty())
	require.NoError(t, s.Push(1))

	p, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, *p)

	require.NoError(t, s.Push(2))
	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	require.NoError(t, s.Push(3))
	require.NoError(t, s.Push(4))
	assert.True(t, s.IsFull())
	assert.ErrorIs(t, s.Push(5), ErrFull)

	var got []int
	for !s.IsEmpty() {
		v, err := s.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{4, 3, 1}, got)

	_, err = s.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSimpleStack_Clear(t *testing.T) {
	s := NewSimpleStack(3, -1)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())

	// Freed capacity is usable again.
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Push(i))
	}
	assert.True(t, s.IsFull())
}

func TestSimpleQueue_FIFO(t *testing.T) {
	q := NewSimpleQueue(3, 0)

	assert.True(t, q.IsEmpty())
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	require.NoError(t, q.Enqueue(3))
	assert.True(t, q.IsFull())
	assert.ErrorIs(t, q.Enqueue(4), ErrFull)

	p, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, *p)

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, q.Enqueue(4))

	var got []int
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 3, 4}, got)
}

func TestSimpleQueue_Wraparound(t *testing.T) {
	q := NewSimpleQueue(3, 0)

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	_, err := q.Dequeue()
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(3))
	require.NoError(t, q.Enqueue(4))

	var got []int
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 3, 4}, got)
}

func TestSimpleQueue_PeekMutates(t *testing.T) {
	q := NewSimpleQueue(3, 0)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))

	p, err := q.Peek()
	require.NoError(t, err)
	*p = 10

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	v, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

type point struct{ x, y int }

func TestSimpleQueue_StructValues(t *testing.T) {
	q := NewSimpleQueue(2, point{})

	p1 := point{x: 1, y: 2}
	p2 := point{x: 3, y: 4}
	require.NoError(t, q.Enqueue(p1))
	require.NoError(t, q.Enqueue(p2))

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, p1, v)

	p, err := q.Peek()
	require.NoError(t, err)
	p.x = 10

	v, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, point{x: 10, y: 4}, v)
}

func TestSimpleQueue_ClearRefills(t *testing.T) {
	q := NewSimpleQueue(3, -1)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))

	q.Clear()
	assert.True(t, q.IsEmpty())
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, ErrEmpty)

	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	assert.True(t, q.IsFull())
}
