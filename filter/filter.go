// Package filter provides fixed-window signal filters.
//
// MovingAverage keeps a ring of the last N samples plus a running sum, so
// adding a sample and reading the average are both O(1) with no
// allocation after construction. Typical use is smoothing noisy sensor
// readings on a hot path:
//
//	ma := filter.NewMovingAverage[float64](16)
//	for _, sample := range samples {
//	    smoothed := ma.Add(sample)
//	    ...
//	}
package filter

// Float is the constraint for filterable sample types.
type Float interface {
	~float32 | ~float64
}

// MovingAverage is a fixed-window moving average over the last Cap()
// samples. Until the window fills, the average covers the samples seen so
// far; afterwards each new sample evicts the oldest.
type MovingAverage[T Float] struct {
	buffer []T
	index  int // eviction cursor, used once the window is full
	count  int
	sum    T
}

// NewMovingAverage creates a filter with the given window size.
// It panics if capacity is not positive.
func NewMovingAverage[T Float](capacity int) *MovingAverage[T] {
	if capacity <= 0 {
		panic("filter: window capacity must be positive")
	}
	return &MovingAverage[T]{buffer: make([]T, capacity)}
}

// Add records a new sample and returns the resulting average.
func (m *MovingAverage[T]) Add(v T) T {
	if m.count < len(m.buffer) {
		m.sum += v
		m.buffer[m.count] = v
		m.count++
	} else {
		m.sum -= m.buffer[m.index]
		m.sum += v
		m.buffer[m.index] = v
		m.index = (m.index + 1) % len(m.buffer)
	}
	return m.sum / T(m.count)
}

// Average returns the current average without adding a sample, or 0 when
// no samples have been recorded.
func (m *MovingAverage[T]) Average() T {
	if m.count == 0 {
		return 0
	}
	return m.sum / T(m.count)
}

// Reset discards all recorded samples.
func (m *MovingAverage[T]) Reset() {
	m.index = 0
	m.count = 0
	m.sum = 0
}

// Len returns the number of samples currently in the window.
func (m *MovingAverage[T]) Len() int { return m.count }

// Cap returns the window size.
func (m *MovingAverage[T]) Cap() int { return len(m.buffer) }

// IsEmpty reports whether no samples have been recorded.
func (m *MovingAverage[T]) IsEmpty() bool { return m.count == 0 }
