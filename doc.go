// Package fixedcol provides fixed-capacity, allocation-free containers for Go.
//
// Every container is sized once at construction and never grows: the only
// heap allocation is the backing storage made by the constructor. This makes
// the containers suitable for real-time and resource-constrained code paths
// where steady-state allocation (and the GC pressure it causes) is
// unacceptable.
//
// # Containers
//
//   - Stack / Queue: LIFO and ring-FIFO over liveness-tracked slot storage,
//     with an optional release hook for resource-owning elements
//   - SimpleStack / SimpleQueue: plain-value variants pre-filled with a
//     caller-supplied fill value
//   - tree.Tree: index-addressed binary tree with iterative traversals
//   - filter.MovingAverage: fixed-window moving average
//   - extrema: NaN-aware min/max scans
//
// # Quick Start
//
//	s := fixedcol.NewStack[int](8)
//	_ = s.Push(1)
//	_ = s.Push(2)
//	v, _ := s.Pop() // 2
//
// # Failure Model
//
// Capacity and emptiness conditions are ordinary results, not faults: Push
// and Enqueue return ErrFull, Pop, Dequeue and Peek return ErrEmpty. The
// caller decides policy. Only genuine misuse (negative capacity at
// construction) panics.
//
// # Resource-Owning Elements
//
// Go has no destructors, so containers that discard elements (Clear, an
// abandoned Drain) route every discarded element through the release hook
// installed with WithRelease, exactly once. Elements handed to the caller
// by Pop, Dequeue or Drain.Next are never released: ownership transfers.
// Vacated slots are zeroed so discarded elements are not kept reachable
// through the backing array.
//
// # Concurrency
//
// Containers are not synchronized. Each one is owned by a single logical
// caller; read-only operations may run concurrently only under external
// synchronization.
package fixedcol
