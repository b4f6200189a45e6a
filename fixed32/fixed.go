/*
Package fixed32 implements signed Q16.16 fixed-point arithmetic and
elementary functions using integer operations only.

A [Fixed] is an int32 holding the value multiplied by 2^16, so the range is
[-32768, 32768) with a resolution of 2^-16.
Intermediate products are computed in 64 bits and results are
bit-identical on every platform.

Most functions come in three tiers: the default one is the most precise,
Fast and Fastest variants use smaller polynomials and tables.
Arguments outside of a function domain are reported with
[fixed.InvalidArgument] and the function returns 0.
*/
package fixed32

import (
	"math"

	"github.com/govalues/fixed"
	"github.com/govalues/fixed/fixed64"
	"github.com/govalues/fixed/internal/poly"
)

// Fixed is a signed Q16.16 fixed-point number.
type Fixed int32

// Shift is the number of fractional bits.
const Shift = 16

const (
	// FractionMask selects the fractional bits.
	FractionMask Fixed = 1<<Shift - 1
	// IntegerMask selects the integer bits.
	IntegerMask Fixed = ^FractionMask

	// Small constants.
	Zero  Fixed = 0          // 0
	Neg1  Fixed = -1 << Shift // -1
	One   Fixed = 1 << Shift  // 1
	Two   Fixed = 2 << Shift  // 2
	Three Fixed = 3 << Shift  // 3
	Four  Fixed = 4 << Shift  // 4
	Half  Fixed = One >> 1    // 0.5

	// The constants below are the Q32.32 values truncated to 16 bits.
	Pi     Fixed = 205887 // π
	Pi2    Fixed = 411774 // 2π
	PiHalf Fixed = 102943 // π/2
	E      Fixed = 178145 // e

	// MinValue is the smallest representable number.
	MinValue Fixed = math.MinInt32
	// MaxValue is the largest representable number.
	MaxValue Fixed = math.MaxInt32
)

const (
	rcpLn2   Fixed = 94548     // 1/ln(2)
	rcpLog2E Fixed = 45426     // 1/log2(e)
	rcpTwoPi int64 = 683565276 // 4/(2π) in s2.30
)

// FromInt converts an integer to a fixed-point number.
// Values outside of [-32768, 32767] wrap around.
func FromInt(v int32) Fixed {
	return Fixed(v) << Shift
}

// FromDouble converts a float64 to a fixed-point number.
// The fractional bits beyond 2^-16 are truncated toward zero.
func FromDouble(v float64) Fixed {
	return Fixed(v * 65536.0)
}

// FromFloat converts a float32 to a fixed-point number.
func FromFloat(v float32) Fixed {
	return Fixed(v * 65536.0)
}

// ToDouble converts a fixed-point number to a float64.
func ToDouble(v Fixed) float64 {
	return float64(v) * (1.0 / 65536.0)
}

// ToFloat converts a fixed-point number to a float32.
func ToFloat(v Fixed) float32 {
	return float32(v) * (1.0 / 65536.0)
}

// FromFixed64 converts a Q32.32 number to Q16.16.
// The low fractional bits are truncated toward negative infinity and
// values outside of the Q16.16 range are saturated.
func FromFixed64(v fixed64.Fixed) Fixed {
	r := int64(v) >> (fixed64.Shift - Shift)
	switch {
	case r > math.MaxInt32:
		return MaxValue
	case r < math.MinInt32:
		return MinValue
	}
	return Fixed(r)
}

// ToFixed64 converts a Q16.16 number to Q32.32 exactly.
func ToFixed64(v Fixed) fixed64.Fixed {
	return fixed64.Fixed(v) << (fixed64.Shift - Shift)
}

// CeilToInt returns the least integer greater than or equal to v.
func CeilToInt(v Fixed) int32 {
	return int32((v + FractionMask) >> Shift)
}

// FloorToInt returns the greatest integer less than or equal to v.
func FloorToInt(v Fixed) int32 {
	return int32(v >> Shift)
}

// RoundToInt returns the integer nearest to v.
// Ties are rounded up, toward positive infinity.
func RoundToInt(v Fixed) int32 {
	return int32((v + Half) >> Shift)
}

// Abs returns the absolute value of x.
// Abs(MinValue) is MinValue, which is still negative.
func Abs(x Fixed) Fixed {
	mask := x >> 31
	return (x + mask) ^ mask
}

// Nabs returns the negative absolute value of x.
func Nabs(x Fixed) Fixed {
	return -Abs(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x Fixed) Fixed {
	return (x + FractionMask) & IntegerMask
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x Fixed) Fixed {
	return x & IntegerMask
}

// Round returns the integer value nearest to x.
// Ties are rounded up, toward positive infinity.
func Round(x Fixed) Fixed {
	return (x + Half) & IntegerMask
}

// Fract returns the fractional part of x, which is always non-negative.
func Fract(x Fixed) Fixed {
	return x & FractionMask
}

// Min returns the smaller of a and b.
func Min(a, b Fixed) Fixed {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Fixed) Fixed {
	if a > b {
		return a
	}
	return b
}

// Clamp limits a to the range [lo, hi].
func Clamp(a, lo, hi Fixed) Fixed {
	switch {
	case a > hi:
		return hi
	case a < lo:
		return lo
	}
	return a
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x = 0
//	+1 if x > 0
func Sign(x Fixed) int32 {
	return int32((x >> 31) | Fixed(uint32(-x)>>31))
}

// Add calculates a + b. The result wraps around on overflow.
func Add(a, b Fixed) Fixed {
	return a + b
}

// Sub calculates a - b. The result wraps around on overflow.
func Sub(a, b Fixed) Fixed {
	return a - b
}

// Mul calculates a * b, truncating toward negative infinity.
func Mul(a, b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> Shift)
}

// Lerp interpolates linearly from a to b by t, so that
// Lerp(a, b, 0) = a and Lerp(a, b, One) = b.
func Lerp(a, b, t Fixed) Fixed {
	ta := int64(a) * int64(One-t)
	tb := int64(b) * int64(t)
	return Fixed((ta + tb) >> Shift)
}

// Nlz returns the number of leading zero bits of x, 32 for x == 0.
func Nlz(x uint32) int {
	return poly.Nlz32(x)
}

// DivPrecise calculates a / b with 64-bit division, truncating toward zero.
// It returns 0 for b == 0 or MinValue and never reports invalid arguments.
func DivPrecise(a, b Fixed) Fixed {
	if b == MinValue || b == 0 {
		return 0
	}
	return Fixed((int64(a) << Shift) / int64(b))
}

// Div calculates a / b exactly, truncating toward zero.
// Division by 0 or MinValue is invalid.
// Quotients outside of the range wrap around.
func Div(a, b Fixed) Fixed {
	if b == MinValue || b == 0 {
		invalid("Div", poly.Precise, b)
		return 0
	}
	return Fixed((int64(a) << Shift) / int64(b))
}

// DivFast calculates an approximation of a / b with a degree 6 reciprocal
// polynomial (16.53 bits).
func DivFast(a, b Fixed) Fixed {
	return divApprox(a, b, poly.Fast)
}

// DivFastest calculates an approximation of a / b with a degree 4 reciprocal
// polynomial (11.33 bits).
func DivFastest(a, b Fixed) Fixed {
	return divApprox(a, b, poly.Fastest)
}

func divApprox(a, b Fixed, t poly.Tier) Fixed {
	if b == MinValue || b == 0 {
		invalid("Div", t, b)
		return 0
	}
	var sign int32 = 1
	if b < 0 {
		sign = -1
		b = -b
	}
	n, e := poly.Normalize32(int32(b))
	res := poly.Rcp(t, n-poly.One)
	y := poly.Qmul30(res, int32(a))
	return Fixed(poly.ShiftRight32(sign*y, e))
}

// Mod returns the remainder of a / b, which has the sign of a.
// Mod by 0 is invalid.
func Mod(a, b Fixed) Fixed {
	if b == 0 {
		invalid("Mod", poly.Precise, b)
		return 0
	}
	return a % b
}

func invalid(name string, t poly.Tier, x Fixed) {
	fixed.InvalidArgument("fixed32."+name+t.Suffix(), int64(x))
}

func invalid2(name string, t poly.Tier, y, x Fixed) {
	fixed.InvalidArgument("fixed32."+name+t.Suffix(), int64(y), int64(x))
}
