package poly

import "math/bits"

const (
	// One is 1.0 in s2.30.
	One = 1 << 30
	// Half is 0.5 in s2.30.
	Half = 1 << 29
	// Sqrt2 is √2 in s2.30.
	Sqrt2 = 1518500249
	// HalfSqrt2 is √2/2 in s2.30.
	HalfSqrt2 = 759250125
)

// Qmul30 calculates a * b for s2.30 operands.
// The product is computed in 64 bits and truncated with an arithmetic shift.
func Qmul30(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> 30)
}

// Nlz32 returns the number of leading zero bits in x, 32 for x == 0.
func Nlz32(x uint32) int {
	return bits.LeadingZeros32(x)
}

// Nlz64 returns the number of leading zero bits in x, 64 for x == 0.
func Nlz64(x uint64) int {
	return bits.LeadingZeros64(x)
}

// ShiftRight32 calculates v >> shift, or v << -shift for negative shifts.
// Right shifts are arithmetic, left shifts drop the high bits.
func ShiftRight32(v int32, shift int) int32 {
	if shift >= 0 {
		return v >> uint(shift)
	}
	return v << uint(-shift)
}

// ShiftRight64 calculates v >> shift, or v << -shift for negative shifts.
// Right shifts are arithmetic, left shifts drop the high bits.
func ShiftRight64(v int64, shift int) int64 {
	if shift >= 0 {
		return v >> uint(shift)
	}
	return v << uint(-shift)
}

// Normalize32 splits a positive Q16.16 value x into an s2.30 mantissa
// n in [1.0, 2.0) and a binary exponent e, so that x = n * 2^e.
func Normalize32(x int32) (n int32, e int) {
	e = 15 - Nlz32(uint32(x))
	n = ShiftRight32(x, e-14)
	return n, e
}

// Normalize64 splits a positive Q32.32 value x into an s2.30 mantissa
// n in [1.0, 2.0) and a binary exponent e, so that x = n * 2^e.
func Normalize64(x int64) (n int32, e int) {
	e = 31 - Nlz64(uint64(x))
	n = int32(ShiftRight64(x, e+2))
	return n, e
}

// HalveExponent splits the exponent of a square root.
// It returns ⌊e / 2⌋ and odd = true when a factor of √2 is left over.
func HalveExponent(e int) (half int, odd bool) {
	return e >> 1, e&1 != 0
}
