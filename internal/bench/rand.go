package bench

import (
	"math"
	"math/rand/v2"
)

// randKey draws a key uniformly from 0..=max.
func randKey(max uint64) uint64 {
	if max == math.MaxUint64 {
		return rand.Uint64()
	}
	return rand.N(max + 1)
}

// normalCount samples a normally distributed count. Negative samples
// clamp to zero rather than underflowing the conversion.
func normalCount(mean, stddev float64) uint64 {
	s := rand.NormFloat64()*stddev + mean
	if s < 0 {
		return 0
	}
	return uint64(s)
}
