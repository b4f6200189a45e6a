package fixed32

// The methods below are the default tier of the package functions with the
// same names, so that expressions can be chained:
//
//	x.Mul(x).Add(y.Mul(y)).Sqrt()

// Neg returns -v. Neg(MinValue) is MinValue.
func (v Fixed) Neg() Fixed {
	return -v
}

// Abs returns the absolute value of v, see [Abs].
func (v Fixed) Abs() Fixed {
	return Abs(v)
}

// Sign returns:
//
//	-1 if v < 0
//	 0 if v = 0
//	+1 if v > 0
func (v Fixed) Sign() int {
	return int(Sign(v))
}

// IsZero returns true if v == 0.
func (v Fixed) IsZero() bool {
	return v == 0
}

// IsNeg returns true if v < 0.
func (v Fixed) IsNeg() bool {
	return v < 0
}

// IsPos returns true if v > 0.
func (v Fixed) IsPos() bool {
	return v > 0
}

// IsInt returns true if the fractional part of v is zero.
func (v Fixed) IsInt() bool {
	return v&FractionMask == 0
}

// Cmp compares v and e and returns:
//
//	-1 if v < e
//	 0 if v = e
//	+1 if v > e
func (v Fixed) Cmp(e Fixed) int {
	switch {
	case v < e:
		return -1
	case v > e:
		return 1
	}
	return 0
}

// Min returns the smaller of v and e.
func (v Fixed) Min(e Fixed) Fixed {
	return Min(v, e)
}

// Max returns the larger of v and e.
func (v Fixed) Max(e Fixed) Fixed {
	return Max(v, e)
}

// Clamp limits v to the range [lo, hi].
func (v Fixed) Clamp(lo, hi Fixed) Fixed {
	return Clamp(v, lo, hi)
}

// Ceil returns the least integer value greater than or equal to v.
func (v Fixed) Ceil() Fixed {
	return Ceil(v)
}

// Floor returns the greatest integer value less than or equal to v.
func (v Fixed) Floor() Fixed {
	return Floor(v)
}

// Round returns the integer value nearest to v, ties are rounded up.
func (v Fixed) Round() Fixed {
	return Round(v)
}

// Fract returns the non-negative fractional part of v.
func (v Fixed) Fract() Fixed {
	return Fract(v)
}

// Int32 returns the integer part of v rounded toward negative infinity.
func (v Fixed) Int32() int32 {
	return FloorToInt(v)
}

// Float64 returns the float64 nearest to v.
func (v Fixed) Float64() float64 {
	return ToDouble(v)
}

// Add returns v + e, wrapping around on overflow.
func (v Fixed) Add(e Fixed) Fixed {
	return Add(v, e)
}

// Sub returns v - e, wrapping around on overflow.
func (v Fixed) Sub(e Fixed) Fixed {
	return Sub(v, e)
}

// Mul returns v * e, see [Mul].
func (v Fixed) Mul(e Fixed) Fixed {
	return Mul(v, e)
}

// Div returns v / e, see [Div].
func (v Fixed) Div(e Fixed) Fixed {
	return Div(v, e)
}

// Mod returns the remainder of v / e, see [Mod].
func (v Fixed) Mod(e Fixed) Fixed {
	return Mod(v, e)
}

// Lerp interpolates linearly from v to e by t.
func (v Fixed) Lerp(e, t Fixed) Fixed {
	return Lerp(v, e, t)
}

// Pow returns v raised to the power of e, see [Pow].
func (v Fixed) Pow(e Fixed) Fixed {
	return Pow(v, e)
}

// Sqrt returns the square root of v, see [Sqrt].
func (v Fixed) Sqrt() Fixed {
	return Sqrt(v)
}

// RSqrt returns the inverse square root of v, see [RSqrt].
func (v Fixed) RSqrt() Fixed {
	return RSqrt(v)
}

// Rcp returns the reciprocal of v, see [Rcp].
func (v Fixed) Rcp() Fixed {
	return Rcp(v)
}

// Exp returns e raised to the power of v, see [Exp].
func (v Fixed) Exp() Fixed {
	return Exp(v)
}

// Exp2 returns 2 raised to the power of v, see [Exp2].
func (v Fixed) Exp2() Fixed {
	return Exp2(v)
}

// Log returns the natural logarithm of v, see [Log].
func (v Fixed) Log() Fixed {
	return Log(v)
}

// Log2 returns the binary logarithm of v, see [Log2].
func (v Fixed) Log2() Fixed {
	return Log2(v)
}

// Sin returns the sine of v radians, see [Sin].
func (v Fixed) Sin() Fixed {
	return Sin(v)
}

// Cos returns the cosine of v radians, see [Cos].
func (v Fixed) Cos() Fixed {
	return Cos(v)
}

// Tan returns the tangent of v radians, see [Tan].
func (v Fixed) Tan() Fixed {
	return Tan(v)
}

// Asin returns the arcsine of v, see [Asin].
func (v Fixed) Asin() Fixed {
	return Asin(v)
}

// Acos returns the arccosine of v, see [Acos].
func (v Fixed) Acos() Fixed {
	return Acos(v)
}

// Atan returns the arctangent of v, see [Atan].
func (v Fixed) Atan() Fixed {
	return Atan(v)
}
