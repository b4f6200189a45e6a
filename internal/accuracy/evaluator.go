package accuracy

import "math"

// DefaultThreshold is the magnitude below which relative errors are
// measured against the threshold itself.
const DefaultThreshold = 1.0 / 65536

// Evaluator measures how far got is from the reference value want.
// Args are the arguments of the call, already rounded to the format.
type Evaluator func(args []float64, got, want float64) float64

// Absolute measures |got - want|.
func Absolute() Evaluator {
	return func(_ []float64, got, want float64) float64 {
		return math.Abs(got - want)
	}
}

// Relative measures |got - want| / max(threshold, |want|).
func Relative(threshold float64) Evaluator {
	return func(_ []float64, got, want float64) float64 {
		return math.Abs(got-want) / math.Max(threshold, math.Abs(want))
	}
}

// Division measures the error of a quotient relative to the divisor,
// |got - want| / max(threshold, |b|), where b is the second argument.
func Division(threshold float64) Evaluator {
	return func(args []float64, got, want float64) float64 {
		return math.Abs(got-want) / math.Max(threshold, math.Abs(args[1]))
	}
}
