/*
Package fixed64 implements signed Q32.32 fixed-point arithmetic and
elementary functions using integer operations only.

A [Fixed] is an int64 holding the value multiplied by 2^32, so the range is
[-2^31, 2^31) with a resolution of 2^-32.
Results are bit-identical on every platform.

Most functions come in three tiers: the default one is the most precise,
Fast and Fastest variants use smaller polynomials and tables.
Arguments outside of a function domain are reported with
[fixed.InvalidArgument] and the function returns 0.
*/
package fixed64

import (
	"math"
	"math/bits"

	"github.com/govalues/fixed"
	"github.com/govalues/fixed/internal/poly"
)

// Fixed is a signed Q32.32 fixed-point number.
type Fixed int64

// Shift is the number of fractional bits.
const Shift = 32

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

	// Mathematical constants, truncated to 32 fractional bits.
	Pi     Fixed = 13493037705 // π
	Pi2    Fixed = 26986075409 // 2π
	PiHalf Fixed = 6746518852  // π/2
	E      Fixed = 11674931555 // e

	// MinValue is the smallest representable number.
	MinValue Fixed = math.MinInt64
	// MaxValue is the largest representable number.
	MaxValue Fixed = math.MaxInt64
)

const (
	rcpLn2    Fixed = 0x171547652 // 1/ln(2)
	rcpLog2E  Fixed = 2977044471  // 1/log2(e)
	rcpHalfPi int32 = 683565276   // 4/(2π) in s2.30
)

// FromInt converts an integer to a fixed-point number.
func FromInt(v int32) Fixed {
	return Fixed(v) << Shift
}

// FromDouble converts a float64 to a fixed-point number.
// The fractional bits beyond 2^-32 are truncated toward zero.
func FromDouble(v float64) Fixed {
	return Fixed(v * 4294967296.0)
}

// FromFloat converts a float32 to a fixed-point number.
func FromFloat(v float32) Fixed {
	return FromDouble(float64(v))
}

// ToDouble converts a fixed-point number to a float64.
func ToDouble(v Fixed) float64 {
	return float64(v) * (1.0 / 4294967296.0)
}

// ToFloat converts a fixed-point number to a float32.
func ToFloat(v Fixed) float32 {
	return float32(v) * (1.0 / 4294967296.0)
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
	mask := x >> 63
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
	return int32((x >> 63) | Fixed(uint64(-x)>>63))
}

// Add calculates a + b. The result wraps around on overflow.
func Add(a, b Fixed) Fixed {
	return a + b
}

// Sub calculates a - b. The result wraps around on overflow.
func Sub(a, b Fixed) Fixed {
	return a - b
}

// Mul calculates a * b.
// The 128-bit product is accumulated from 32-bit limbs and truncated
// toward negative infinity.
func Mul(a, b Fixed) Fixed {
	ai := a >> Shift
	af := a & FractionMask
	bi := b >> Shift
	bf := b & FractionMask
	return Fixed((uint64(af)*uint64(bf))>>Shift) + ai*b + af*bi
}

// mulIntLongLow calculates the low 32 bits of a * b for an s2.30 factor a >= 0.
func mulIntLongLow(a int32, b Fixed) int32 {
	bi := int64(b >> Shift)
	bf := uint64(b & FractionMask)
	return int32(int64((uint64(a)*bf)>>Shift) + int64(a)*bi)
}

// mulIntLongLong calculates a * b for an s2.30 factor a >= 0.
func mulIntLongLong(a int32, b Fixed) int64 {
	bi := int64(b >> Shift)
	bf := uint64(b & FractionMask)
	return int64((uint64(a)*bf)>>Shift) + int64(a)*bi
}

// Lerp interpolates linearly from a to b by t, so that
// Lerp(a, b, 0) = a and Lerp(a, b, One) = b.
func Lerp(a, b, t Fixed) Fixed {
	return Mul(a, One-t) + Mul(b, t)
}

// Nlz returns the number of leading zero bits of x, 64 for x == 0.
func Nlz(x uint64) int {
	return poly.Nlz64(x)
}

// DivPrecise calculates a / b using exact 128-bit long division.
// The quotient is truncated toward zero.
// Quotients that do not fit into 64 bits return MaxValue whatever the signs
// of a and b, so b == 0 also returns MaxValue.
// Unlike [Div] it never reports invalid arguments.
func DivPrecise(a, b Fixed) Fixed {
	ua := uint64(a)
	if a < 0 {
		ua = -ua
	}
	ub := uint64(b)
	if b < 0 {
		ub = -ub
	}
	hi, lo := ua>>Shift, ua<<Shift
	if hi >= ub {
		return MaxValue
	}
	q, _ := bits.Div64(hi, lo, ub)
	if (a ^ b) < 0 {
		if q > 1<<63 {
			return MaxValue
		}
		return -Fixed(q)
	}
	if q > math.MaxInt64 {
		return MaxValue
	}
	return Fixed(q)
}

// Div calculates a / b exactly, truncating toward zero.
// Division by 0 or MinValue is invalid.
// Quotients outside of the range return MaxValue as in [DivPrecise].
func Div(a, b Fixed) Fixed {
	if b == MinValue || b == 0 {
		invalid("Div", poly.Precise, b)
		return 0
	}
	return DivPrecise(a, b)
}

// DivFast calculates an approximation of a / b with a degree 6 reciprocal
// polynomial.
func DivFast(a, b Fixed) Fixed {
	return divApprox(a, b, poly.Fast)
}

// DivFastest calculates an approximation of a / b with a degree 4 reciprocal
// polynomial.
func DivFastest(a, b Fixed) Fixed {
	return divApprox(a, b, poly.Fastest)
}

func divApprox(a, b Fixed, t poly.Tier) Fixed {
	if b == MinValue || b == 0 {
		invalid("Div", t, b)
		return 0
	}
	var sign int64 = 1
	if b < 0 {
		sign = -1
		b = -b
	}
	n, e := poly.Normalize64(int64(b))
	res := poly.Rcp(t, n-poly.One)
	y := mulIntLongLong(res, a) << 2
	return Fixed(poly.ShiftRight64(sign*y, e))
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
	fixed.InvalidArgument("fixed64."+name+t.Suffix(), int64(x))
}

func invalid2(name string, t poly.Tier, y, x Fixed) {
	fixed.InvalidArgument("fixed64."+name+t.Suffix(), int64(y), int64(x))
}
