package fixed32

import "testing"

func TestFixed_Neg(t *testing.T) {
	tests := []struct {
		v, want Fixed
	}{
		{0, 0},
		{One, Neg1},
		{Neg1, One},
		{Pi, -Pi},
		{MaxValue, MinValue + 1},
		{MinValue, MinValue},
	}
	for _, tt := range tests {
		if got := tt.v.Neg(); got != tt.want {
			t.Errorf("%v.Neg() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestFixed_Cmp(t *testing.T) {
	tests := []struct {
		v, e Fixed
		want int
	}{
		{Neg1, Neg1, 0},
		{Neg1, 0, -1},
		{Neg1, One, -1},
		{0, Neg1, 1},
		{0, 0, 0},
		{0, 1, -1},
		{One, Half, 1},
		{MinValue, MaxValue, -1},
		{MaxValue, MinValue, 1},
	}
	for _, tt := range tests {
		if got := tt.v.Cmp(tt.e); got != tt.want {
			t.Errorf("%v.Cmp(%v) = %v, want %v", tt.v, tt.e, got, tt.want)
		}
	}
}

func TestFixed_Predicates(t *testing.T) {
	tests := []struct {
		v                           Fixed
		sign                        int
		isZero, isNeg, isPos, isInt bool
	}{
		{0, 0, true, false, false, true},
		{1, 1, false, false, true, false},
		{-1, -1, false, true, false, false},
		{One, 1, false, false, true, true},
		{Neg1, -1, false, true, false, true},
		{-Half, -1, false, true, false, false},
		{MinValue, -1, false, true, false, true},
	}
	for _, tt := range tests {
		if got := tt.v.Sign(); got != tt.sign {
			t.Errorf("%v.Sign() = %v, want %v", tt.v, got, tt.sign)
		}
		if got := tt.v.IsZero(); got != tt.isZero {
			t.Errorf("%v.IsZero() = %v, want %v", tt.v, got, tt.isZero)
		}
		if got := tt.v.IsNeg(); got != tt.isNeg {
			t.Errorf("%v.IsNeg() = %v, want %v", tt.v, got, tt.isNeg)
		}
		if got := tt.v.IsPos(); got != tt.isPos {
			t.Errorf("%v.IsPos() = %v, want %v", tt.v, got, tt.isPos)
		}
		if got := tt.v.IsInt(); got != tt.isInt {
			t.Errorf("%v.IsInt() = %v, want %v", tt.v, got, tt.isInt)
		}
	}
}

func TestFixed_Conversions(t *testing.T) {
	tests := []struct {
		v     Fixed
		i     int32
		float float64
	}{
		{0, 0, 0},
		{One + Half, 1, 1.5},
		{-One - Half, -2, -1.5},
		{FromInt(-7), -7, -7},
	}
	for _, tt := range tests {
		if got := tt.v.Int32(); got != tt.i {
			t.Errorf("%v.Int32() = %v, want %v", tt.v, got, tt.i)
		}
		if got := tt.v.Float64(); got != tt.float {
			t.Errorf("%v.Float64() = %v, want %v", tt.v, got, tt.float)
		}
	}
}

func TestFixed_Unary(t *testing.T) {
	tests := []struct {
		name   string
		method func(Fixed) Fixed
		f      func(Fixed) Fixed
	}{
		{"Abs", Fixed.Abs, Abs},
		{"Ceil", Fixed.Ceil, Ceil},
		{"Floor", Fixed.Floor, Floor},
		{"Round", Fixed.Round, Round},
		{"Fract", Fixed.Fract, Fract},
		{"Sqrt", Fixed.Sqrt, Sqrt},
		{"RSqrt", Fixed.RSqrt, RSqrt},
		{"Rcp", Fixed.Rcp, Rcp},
		{"Exp", Fixed.Exp, Exp},
		{"Exp2", Fixed.Exp2, Exp2},
		{"Log", Fixed.Log, Log},
		{"Log2", Fixed.Log2, Log2},
		{"Sin", Fixed.Sin, Sin},
		{"Cos", Fixed.Cos, Cos},
		{"Tan", Fixed.Tan, Tan},
		{"Asin", Fixed.Asin, Asin},
		{"Acos", Fixed.Acos, Acos},
		{"Atan", Fixed.Atan, Atan},
	}
	for _, tt := range tests {
		for _, v := range []Fixed{1, One / 3, Half, One * 3 / 4, One} {
			if got, want := tt.method(v), tt.f(v); got != want {
				t.Errorf("%v.%v() = %v, want %v", v, tt.name, got, want)
			}
		}
	}
}

func TestFixed_Binary(t *testing.T) {
	tests := []struct {
		name   string
		method func(Fixed, Fixed) Fixed
		f      func(Fixed, Fixed) Fixed
	}{
		{"Add", Fixed.Add, Add},
		{"Sub", Fixed.Sub, Sub},
		{"Mul", Fixed.Mul, Mul},
		{"Div", Fixed.Div, Div},
		{"Mod", Fixed.Mod, Mod},
		{"Min", Fixed.Min, Min},
		{"Max", Fixed.Max, Max},
		{"Pow", Fixed.Pow, Pow},
	}
	pairs := [][2]Fixed{
		{One, Three},
		{E, Half},
		{Pi, Two},
		{One / 7, FromInt(5)},
	}
	for _, tt := range tests {
		for _, p := range pairs {
			if got, want := tt.method(p[0], p[1]), tt.f(p[0], p[1]); got != want {
				t.Errorf("%v.%v(%v) = %v, want %v", p[0], tt.name, p[1], got, want)
			}
		}
	}
}

func TestFixed_Chain(t *testing.T) {
	tests := []struct {
		name      string
		got, want Fixed
	}{
		{"Add.Mul.Sqrt", One.Add(Three).Mul(Four).Sqrt(), Four},
		{"Sub.Abs.Neg", One.Sub(Three).Abs().Neg(), -Two},
		{"Clamp", Pi.Clamp(Neg1, Three), Three},
		{"Lerp", Two.Lerp(Four, Half), Three},
		{"Div.Round", FromInt(7).Div(Two).Round(), Four},
		{"Mod.Floor", FromInt(7).Mod(Two).Floor(), One},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%v = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestFixed_Div_Error(t *testing.T) {
	var got Fixed
	ops := recordInvalid(t, func() { got = One.Div(0) })
	if got != 0 || len(ops) != 1 || ops[0] != "fixed32.Div" {
		t.Errorf("One.Div(0) = %v with reports %q, want 0 with one fixed32.Div report", got, ops)
	}
}
