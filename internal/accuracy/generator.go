package accuracy

import (
	"math"
	"math/rand/v2"
)

// Generator draws count arguments from rng.
type Generator func(rng *rand.Rand, count int) []float64

// Linear returns a generator of arguments distributed uniformly in [lo, hi).
func Linear(lo, hi float64) Generator {
	return func(rng *rand.Rand, count int) []float64 {
		res := make([]float64, count)
		for i := range res {
			res[i] = lo + (hi-lo)*rng.Float64()
		}
		return res
	}
}

// Exponential returns a generator of arguments whose logarithm is distributed
// uniformly, so every binade between lo and hi gets a similar share.
// Both bounds must have the same sign and be non-zero.
func Exponential(lo, hi float64) Generator {
	ratio := math.Log(hi / lo)
	return func(rng *rand.Rand, count int) []float64 {
		res := make([]float64, count)
		for i := range res {
			res[i] = lo * math.Exp(ratio*rng.Float64())
		}
		return res
	}
}
