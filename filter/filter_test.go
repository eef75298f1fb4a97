package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovingAverage_Add(t *testing.T) {
	ma := NewMovingAverage[float64](3)

	assert.True(t, ma.IsEmpty())
	assert.Equal(t, 3, ma.Cap())

	// Window fills, then the oldest sample is evicted.
	assert.InDelta(t, 1.0, ma.Add(1), 1e-9)
	assert.InDelta(t, 1.5, ma.Add(2), 1e-9)
	assert.InDelta(t, 2.0, ma.Add(3), 1e-9)
	assert.InDelta(t, 3.0, ma.Add(4), 1e-9) // (2+3+4)/3

	assert.Equal(t, 3, ma.Len())
	assert.False(t, ma.IsEmpty())
}

func TestMovingAverage_Eviction(t *testing.T) {
	ma := NewMovingAverage[float64](2)

	ma.Add(10)
	ma.Add(20)
	assert.InDelta(t, 25.0, ma.Add(30), 1e-9) // evicts 10
	assert.InDelta(t, 35.0, ma.Add(40), 1e-9) // evicts 20
	assert.Equal(t, 2, ma.Len())
}

func TestMovingAverage_Average(t *testing.T) {
	ma := NewMovingAverage[float64](3)

	assert.Zero(t, ma.Average(), "empty filter averages to zero")

	ma.Add(2)
	ma.Add(4)
	assert.InDelta(t, 3.0, ma.Average(), 1e-9)
	assert.Equal(t, 2, ma.Len(), "Average must not consume samples")
}

func TestMovingAverage_Reset(t *testing.T) {
	ma := NewMovingAverage[float32](3)

	ma.Add(1)
	ma.Add(2)
	ma.Reset()

	assert.Equal(t, 0, ma.Len())
	assert.True(t, ma.IsEmpty())
	assert.Zero(t, ma.Average())

	// No residual state after reset.
	assert.InDelta(t, 5.0, float64(ma.Add(5)), 1e-6)
}

func TestMovingAverage_WindowOfOne(t *testing.T) {
	ma := NewMovingAverage[float64](1)

	assert.InDelta(t, 1.0, ma.Add(1), 1e-9)
	assert.InDelta(t, 7.0, ma.Add(7), 1e-9)
	assert.Equal(t, 1, ma.Len())
}

func TestMovingAverage_InvalidCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { NewMovingAverage[float64](0) })
	assert.Panics(t, func() { NewMovingAverage[float64](-1) })
}

func BenchmarkMovingAverage_Add(b *testing.B) {
	ma := NewMovingAverage[float64](64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ma.Add(float64(i))
	}
}
