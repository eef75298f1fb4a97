// Package extrema provides NaN-aware min/max scans over slices.
//
// The scans report both the extreme value and the index of its FIRST
// occurrence; a later equal value never displaces an earlier one. NaN
// elements are skipped rather than poisoning the result, so float inputs
// behave like their integer counterparts:
//
//	pair, ok := extrema.MinMax([]float64{1.5, math.NaN(), 3.2})
//	// ok == true, pair.Min = {1.5, 0}, pair.Max = {3.2, 2}
//
// An empty slice, or one containing only NaN, yields ok == false.
package extrema

import "cmp"

// Extremum is an extreme value together with the index of its first
// occurrence.
type Extremum[T cmp.Ordered] struct {
	Value T
	Index int
}

// Pair holds the minimum and maximum of a single scan.
type Pair[T cmp.Ordered] struct {
	Min Extremum[T]
	Max Extremum[T]
}

// valid reports whether v is comparable; only NaN is not equal to itself.
func valid[T cmp.Ordered](v T) bool {
	return v == v
}

// Min returns the smallest valid element of s and its first index.
// ok is false if s is empty or holds only NaN.
func Min[T cmp.Ordered](s []T) (min Extremum[T], ok bool) {
	for i, v := range s {
		if !valid(v) {
			continue
		}
		if !ok || v < min.Value {
			min = Extremum[T]{Value: v, Index: i}
			ok = true
		}
	}
	return min, ok
}

// Max returns the largest valid element of s and its first index.
// ok is false if s is empty or holds only NaN.
func Max[T cmp.Ordered](s []T) (max Extremum[T], ok bool) {
	for i, v := range s {
		if !valid(v) {
			continue
		}
		if !ok || v > max.Value {
			max = Extremum[T]{Value: v, Index: i}
			ok = true
		}
	}
	return max, ok
}

// MinMax returns both extrema of s in a single pass.
// ok is false if s is empty or holds only NaN.
func MinMax[T cmp.Ordered](s []T) (pair Pair[T], ok bool) {
	for i, v := range s {
		if !valid(v) {
			continue
		}
		if !ok {
			e := Extremum[T]{Value: v, Index: i}
			pair = Pair[T]{Min: e, Max: e}
			ok = true
			continue
		}
		if v < pair.Min.Value {
			pair.Min = Extremum[T]{Value: v, Index: i}
		}
		if v > pair.Max.Value {
			pair.Max = Extremum[T]{Value: v, Index: i}
		}
	}
	return pair, ok
}
