package slot

import (
	"fmt"
	"math/bits"
)

// Arena is fixed-capacity slot storage with per-slot liveness tracking.
// It allocates exactly once, at New; no operation allocates afterwards.
type Arena[T any] struct {
	slots   []T
	live    []uint64 // one bit per slot
	count   int      // number of live slots
	release func(T)  // optional, invoked by Drop and ReleaseAll
}

// New creates an arena with the given capacity. The release hook may be
// nil; when set, it is invoked exactly once for every element discarded
// via Drop or ReleaseAll (never for elements handed out by Take).
// New panics if capacity is negative.
func New[T any](capacity int, release func(T)) *Arena[T] {
	if capacity < 0 {
		panic("slot: negative capacity")
	}
	return &Arena[T]{
		slots:   make([]T, capacity),
		live:    make([]uint64, (capacity+63)/64),
		release: release,
	}
}

// Cap returns the number of slots.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Len returns the number of live slots.
func (a *Arena[T]) Len() int { return a.count }

// Live reports whether slot i holds a live value.
func (a *Arena[T]) Live(i int) bool {
	return a.live[i>>6]&(uint64(1)<<(i&63)) != 0
}

// Put stores v in slot i and marks it live. The slot must be dead.
func (a *Arena[T]) Put(i int, v T) {
	if a.Live(i) {
		panic(fmt.Sprintf("slot: slot %d already live", i))
	}
	a.slots[i] = v
	a.live[i>>6] |= uint64(1) << (i & 63)
	a.count++
}

// Take moves the value out of slot i, zeroes the slot and marks it dead.
// Ownership transfers to the caller; the release hook is not invoked.
// The slot must be live.
func (a *Arena[T]) Take(i int) T {
	if !a.Live(i) {
		panic(fmt.Sprintf("slot: take from dead slot %d", i))
	}
	v := a.slots[i]
	var zero T
	a.slots[i] = zero
	a.live[i>>6] &^= uint64(1) << (i & 63)
	a.count--
	return v
}

// Ref returns a borrowed pointer into slot i. The pointer is valid until
// the next operation that takes or drops the slot. The slot must be live.
func (a *Arena[T]) Ref(i int) *T {
	if !a.Live(i) {
		panic(fmt.Sprintf("slot: ref to dead slot %d", i))
	}
	return &a.slots[i]
}

// Drop discards the value in slot i: the release hook (if any) runs, the
// slot is zeroed and marked dead. The slot must be live.
func (a *Arena[T]) Drop(i int) {
	if !a.Live(i) {
		panic(fmt.Sprintf("slot: drop of dead slot %d", i))
	}
	if a.release != nil {
		a.release(a.slots[i])
	}
	var zero T
	a.slots[i] = zero
	a.live[i>>6] &^= uint64(1) << (i & 63)
	a.count--
}

// ReleaseAll drops every live slot exactly once, in index order. Dead
// slots are not touched. Afterwards the arena is empty and reusable.
func (a *Arena[T]) ReleaseAll() {
	for w := range a.live {
		for a.live[w] != 0 {
			i := w<<6 + bits.TrailingZeros64(a.live[w])
			a.Drop(i)
		}
	}
}
