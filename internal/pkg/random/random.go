package random

import "math/rand/v2"

// Ints generates n integers uniformly drawn from [low, high], the input for
// the "random list" mode. Bounds are swapped if given in the wrong order.
func Ints(n int, low, high int64) []int64 {
	if n <= 0 {
		return []int64{}
	}

	if high < low {
		low, high = high, low
	}

	// the span is computed in uint64 so extreme bounds cannot overflow;
	// it wraps to zero only for the full int64 range
	span := uint64(high) - uint64(low) + 1

	r := make([]int64, n)
	for i := range r {
		if span == 0 {
			r[i] = int64(rand.Uint64())
		} else {
			r[i] = low + int64(rand.Uint64N(span))
		}
	}

	return r
}
