package fixed64

import (
	"github.com/govalues/fixed"
	"github.com/govalues/fixed/internal/poly"
)

// SqrtPrecise calculates √a bit by bit, exactly truncated to 32 fractional bits.
// Negative a is invalid.
func SqrtPrecise(a Fixed) Fixed {
	if a <= 0 {
		if a < 0 {
			fixed.InvalidArgument("fixed64.SqrtPrecise", int64(a))
		}
		return 0
	}
	// The remainder needs 65 bits, carry holds the top one.
	r := uint64(a)
	b := uint64(0x4000000000000000)
	q := uint64(0)
	carry := false
	for b > 0x40 {
		t := q + b
		if carry || r >= t {
			r -= t
			q = t + b
		}
		carry = r>>63 != 0
		r <<= 1
		b >>= 1
	}
	return Fixed(q >> 16)
}

// Sqrt calculates √x with the 8-segment degree 3 table (23.56 bits).
// Negative x is invalid.
func Sqrt(x Fixed) Fixed {
	return sqrt(x, poly.Precise)
}

// SqrtFast calculates √x with a degree 4 polynomial (16.50 bits).
func SqrtFast(x Fixed) Fixed {
	return sqrt(x, poly.Fast)
}

// SqrtFastest calculates √x with a degree 3 polynomial (13.36 bits).
func SqrtFastest(x Fixed) Fixed {
	return sqrt(x, poly.Fastest)
}

func sqrt(x Fixed, t poly.Tier) Fixed {
	if x <= 0 {
		if x < 0 {
			invalid("Sqrt", t, x)
		}
		return 0
	}
	n, e := poly.Normalize64(int64(x))
	y := poly.Sqrt(t, n-poly.One)

	// An odd exponent leaves a factor of √2 after halving.
	e, odd := poly.HalveExponent(e)
	adjust := int32(poly.One)
	if odd {
		adjust = poly.Sqrt2
	}
	yr := int64(poly.Qmul30(adjust, y)) << 2
	return Fixed(poly.ShiftRight64(yr, -e))
}

// RSqrt calculates 1/√x with the 16-segment degree 3 table refined by
// one Newton-Raphson step.
// Non-positive x is invalid.
func RSqrt(x Fixed) Fixed {
	return rsqrt(x, poly.Precise)
}

// RSqrtFast calculates 1/√x with a degree 5 polynomial (16.08 bits).
func RSqrtFast(x Fixed) Fixed {
	return rsqrt(x, poly.Fast)
}

// RSqrtFastest calculates 1/√x with a degree 3 polynomial (10.55 bits).
func RSqrtFastest(x Fixed) Fixed {
	return rsqrt(x, poly.Fastest)
}

func rsqrt(x Fixed, t poly.Tier) Fixed {
	if x <= 0 {
		invalid("RSqrt", t, x)
		return 0
	}
	n, e := poly.Normalize64(int64(x))
	y := poly.RSqrt(t, n-poly.One)
	if t == poly.Precise {
		y = poly.RSqrtNewton(y, n)
	}

	e, odd := poly.HalveExponent(e)
	adjust := int32(poly.One)
	if odd {
		adjust = poly.HalfSqrt2
	}
	yr := int64(poly.Qmul30(adjust, y)) << 2
	return Fixed(poly.ShiftRight64(yr, e))
}

// Rcp calculates 1/x with the 8-segment degree 4 table refined by one
// Newton-Raphson step.
// Zero and MinValue are invalid.
func Rcp(x Fixed) Fixed {
	return rcp(x, poly.Precise)
}

// RcpFast calculates 1/x with a degree 6 polynomial (16.53 bits).
func RcpFast(x Fixed) Fixed {
	return rcp(x, poly.Fast)
}

// RcpFastest calculates 1/x with a degree 4 polynomial (11.33 bits).
func RcpFastest(x Fixed) Fixed {
	return rcp(x, poly.Fastest)
}

func rcp(x Fixed, t poly.Tier) Fixed {
	if x == MinValue || x == 0 {
		invalid("Rcp", t, x)
		return 0
	}
	var sign int32 = 1
	if x < 0 {
		sign = -1
		x = -x
	}
	n, e := poly.Normalize64(int64(x))
	res := poly.Rcp(t, n-poly.One)
	if t == poly.Precise {
		res = poly.RcpNewton(res, n)
	}
	y := int64(sign*res) << 2
	return Fixed(poly.ShiftRight64(y, e))
}

// Exp2 calculates 2^x with a degree 5 polynomial (23.37 bits).
// It saturates to MaxValue for x >= 31 and to 0 for x <= -32.
func Exp2(x Fixed) Fixed {
	return exp2(x, poly.Precise)
}

// Exp2Fast calculates 2^x with a degree 4 polynomial (18.19 bits).
func Exp2Fast(x Fixed) Fixed {
	return exp2(x, poly.Fast)
}

// Exp2Fastest calculates 2^x with a degree 3 polynomial (13.24 bits).
func Exp2Fastest(x Fixed) Fixed {
	return exp2(x, poly.Fastest)
}

func exp2(x Fixed, t poly.Tier) Fixed {
	switch {
	case x >= 31*One:
		return MaxValue
	case x <= -32*One:
		return 0
	}
	k := int32((x & FractionMask) >> 2)
	y := int64(poly.Exp2(t, k)) << 2
	return Fixed(poly.ShiftRight64(y, -int(x>>Shift)))
}

// Exp calculates e^x as 2^(x/ln(2)).
func Exp(x Fixed) Fixed {
	return exp2(Mul(x, rcpLn2), poly.Precise)
}

// ExpFast calculates e^x using [Exp2Fast].
func ExpFast(x Fixed) Fixed {
	return exp2(Mul(x, rcpLn2), poly.Fast)
}

// ExpFastest calculates e^x using [Exp2Fastest].
func ExpFastest(x Fixed) Fixed {
	return exp2(Mul(x, rcpLn2), poly.Fastest)
}

// Log calculates the natural logarithm of x with the 8-segment degree 5
// table (26.22 bits).
// Non-positive x is invalid.
func Log(x Fixed) Fixed {
	return log(x, poly.Precise)
}

// LogFast calculates ln(x) with the 8-segment degree 3 table (15.35 bits).
func LogFast(x Fixed) Fixed {
	return log(x, poly.Fast)
}

// LogFastest calculates ln(x) with a degree 5 polynomial (12.18 bits).
func LogFastest(x Fixed) Fixed {
	return log(x, poly.Fastest)
}

func log(x Fixed, t poly.Tier) Fixed {
	if x <= 0 {
		invalid("Log", t, x)
		return 0
	}
	n, e := poly.Normalize64(int64(x))
	y := Fixed(poly.Log(t, n-poly.One)) << 2
	return Fixed(e)*rcpLog2E + y
}

// Log2 calculates the binary logarithm of x with the 16-segment degree 4
// table (25.20 bits).
// Non-positive x is invalid.
func Log2(x Fixed) Fixed {
	return log2(x, poly.Precise)
}

// Log2Fast calculates log2(x) with the 16-segment degree 3 table (18.77 bits).
func Log2Fast(x Fixed) Fixed {
	return log2(x, poly.Fast)
}

// Log2Fastest calculates log2(x) with a degree 5 polynomial (12.29 bits).
func Log2Fastest(x Fixed) Fixed {
	return log2(x, poly.Fastest)
}

func log2(x Fixed, t poly.Tier) Fixed {
	if x <= 0 {
		invalid("Log2", t, x)
		return 0
	}
	n, e := poly.Normalize64(int64(x))
	y := Fixed(poly.Log2(t, n-poly.One)) << 2
	return Fixed(e)<<Shift + y
}

// Pow calculates x^exponent as e^(exponent * ln(x)).
// Pow returns 0 for x == 0; negative x is invalid.
func Pow(x, exponent Fixed) Fixed {
	return pow(x, exponent, poly.Precise)
}

// PowFast calculates x^exponent using [ExpFast] and [LogFast].
func PowFast(x, exponent Fixed) Fixed {
	return pow(x, exponent, poly.Fast)
}

// PowFastest calculates x^exponent using [ExpFastest] and [LogFastest].
func PowFastest(x, exponent Fixed) Fixed {
	return pow(x, exponent, poly.Fastest)
}

func pow(x, exponent Fixed, t poly.Tier) Fixed {
	if x <= 0 {
		if x < 0 {
			invalid("Pow", t, x)
		}
		return 0
	}
	return exp2(Mul(Mul(exponent, log(x, t)), rcpLn2), t)
}
