package fixed64

import "github.com/govalues/fixed/internal/poly"

// unitAngle reduces x to [0, 2π) and converts it to quarter turns in s2.30,
// so that a full turn is exactly 2^32 units.
func unitAngle(x Fixed) int32 {
	r := x % Pi2
	if r < 0 {
		r += Pi2
	}
	return mulIntLongLow(rcpHalfPi, r)
}

// Sin calculates sin(x) with a degree 4 polynomial (27.13 bits).
func Sin(x Fixed) Fixed {
	return sin(x, poly.Precise)
}

// SinFast calculates sin(x) with a degree 3 polynomial (19.56 bits).
func SinFast(x Fixed) Fixed {
	return sin(x, poly.Fast)
}

// SinFastest calculates sin(x) with a degree 2 polynomial (12.55 bits).
func SinFastest(x Fixed) Fixed {
	return sin(x, poly.Fastest)
}

func sin(x Fixed, t poly.Tier) Fixed {
	z := unitAngle(x)
	return Fixed(int64(poly.UnitSin(t, z)) << 2)
}

// Cos calculates cos(x) as the sine shifted by a quarter turn.
func Cos(x Fixed) Fixed {
	return cos(x, poly.Precise)
}

// CosFast calculates cos(x) using the [SinFast] polynomial.
func CosFast(x Fixed) Fixed {
	return cos(x, poly.Fast)
}

// CosFastest calculates cos(x) using the [SinFastest] polynomial.
func CosFastest(x Fixed) Fixed {
	return cos(x, poly.Fastest)
}

func cos(x Fixed, t poly.Tier) Fixed {
	z := unitAngle(x) + poly.One
	return Fixed(int64(poly.UnitSin(t, z)) << 2)
}

// Tan calculates tan(x) as sin(x) / cos(x) with exact division.
// Angles where the cosine evaluates to zero are invalid.
// Quotients that do not fit return MaxValue.
func Tan(x Fixed) Fixed {
	return tan(x, poly.Precise)
}

// TanFast calculates tan(x) with [SinFast] and [DivFast].
func TanFast(x Fixed) Fixed {
	return tan(x, poly.Fast)
}

// TanFastest calculates tan(x) with [SinFastest] and [DivFastest].
func TanFastest(x Fixed) Fixed {
	return tan(x, poly.Fastest)
}

func tan(x Fixed, t poly.Tier) Fixed {
	z := unitAngle(x)
	sinX := Fixed(int64(poly.UnitSin(t, z)) << 2)
	cosX := Fixed(int64(poly.UnitSin(t, z+poly.One)) << 2)
	if cosX == 0 {
		invalid("Tan", t, x)
		return 0
	}
	switch t {
	case poly.Fast:
		return DivFast(sinX, cosX)
	case poly.Fastest:
		return DivFastest(sinX, cosX)
	}
	return DivPrecise(sinX, cosX)
}

// atan2Div calculates y / x in s2.30 for 0 <= y <= x.
func atan2Div(y, x Fixed, t poly.Tier) int32 {
	if y == 0 {
		return 0
	}
	n, e := poly.Normalize64(int64(x))
	oox := poly.Rcp(t, n-poly.One)
	yr := poly.ShiftRight64(int64(y), e)
	return poly.Qmul30(int32(yr>>2), oox)
}

// Atan2 calculates the angle of the point (x, y) in radians, in [-π, π].
// Atan2(0, 0) is invalid.
func Atan2(y, x Fixed) Fixed {
	return atan2(y, x, poly.Precise)
}

// Atan2Fast calculates the angle of (x, y) with the 8-segment degree 3
// table (17.98 bits).
func Atan2Fast(y, x Fixed) Fixed {
	return atan2(y, x, poly.Fast)
}

// Atan2Fastest calculates the angle of (x, y) with a degree 4 polynomial
// (11.51 bits).
func Atan2Fastest(y, x Fixed) Fixed {
	return atan2(y, x, poly.Fastest)
}

func atan2(y, x Fixed, t poly.Tier) Fixed {
	if x == 0 {
		switch {
		case y > 0:
			return PiHalf
		case y < 0:
			return -PiHalf
		}
		invalid2("Atan2", t, y, x)
		return 0
	}

	// Ones' complement magnitudes never overflow, negMask restores the sign
	// of the ratio.
	nx := x ^ (x >> 63)
	ny := y ^ (y >> 63)
	negMask := (x ^ y) >> 63

	if nx >= ny {
		k := atan2Div(ny, nx, t)
		angle := negMask ^ (Fixed(poly.Atan(t, k)) << 2)
		switch {
		case x > 0:
			return angle
		case y >= 0:
			return angle + Pi
		}
		return angle - Pi
	}
	k := atan2Div(nx, ny, t)
	angle := negMask ^ (Fixed(poly.Atan(t, k)) << 2)
	if y > 0 {
		return PiHalf - angle
	}
	return -PiHalf - angle
}

// Asin calculates asin(x) as atan2(x, √(1 - x²)).
// Arguments outside of [-1, 1] are invalid.
func Asin(x Fixed) Fixed {
	return asin(x, poly.Precise)
}

// AsinFast calculates asin(x) using [SqrtFast] and [Atan2Fast].
func AsinFast(x Fixed) Fixed {
	return asin(x, poly.Fast)
}

// AsinFastest calculates asin(x) using [SqrtFastest] and [Atan2Fastest].
func AsinFastest(x Fixed) Fixed {
	return asin(x, poly.Fastest)
}

func asin(x Fixed, t poly.Tier) Fixed {
	if x < -One || x > One {
		invalid("Asin", t, x)
		return 0
	}
	return atan2(x, sqrt(Mul(One+x, One-x), t), t)
}

// Acos calculates acos(x) as atan2(√(1 - x²), x).
// Arguments outside of [-1, 1] are invalid.
func Acos(x Fixed) Fixed {
	return acos(x, poly.Precise)
}

// AcosFast calculates acos(x) using [SqrtFast] and [Atan2Fast].
func AcosFast(x Fixed) Fixed {
	return acos(x, poly.Fast)
}

// AcosFastest calculates acos(x) using [SqrtFastest] and [Atan2Fastest].
func AcosFastest(x Fixed) Fixed {
	return acos(x, poly.Fastest)
}

func acos(x Fixed, t poly.Tier) Fixed {
	if x < -One || x > One {
		invalid("Acos", t, x)
		return 0
	}
	return atan2(sqrt(Mul(One+x, One-x), t), x, t)
}

// Atan calculates atan(x) as atan2(x, 1).
func Atan(x Fixed) Fixed {
	return atan2(x, One, poly.Precise)
}

// AtanFast calculates atan(x) using [Atan2Fast].
func AtanFast(x Fixed) Fixed {
	return atan2(x, One, poly.Fast)
}

// AtanFastest calculates atan(x) using [Atan2Fastest].
func AtanFastest(x Fixed) Fixed {
	return atan2(x, One, poly.Fastest)
}
