package fixed32

import (
	"math"
	"testing"

	"github.com/govalues/fixed"
	"github.com/govalues/fixed/fixed64"
)

// recordInvalid calls f with a handler that records the reported operations.
func recordInvalid(t *testing.T, f func()) []string {
	t.Helper()
	var ops []string
	prev := fixed.SetHandler(func(op string, _ ...int64) {
		ops = append(ops, op)
	})
	defer fixed.SetHandler(prev)
	f()
	return ops
}

func TestFixed_Constants(t *testing.T) {
	tests := []struct {
		name string
		got  Fixed
		want float64
	}{
		{"Pi", Pi, math.Pi},
		{"Pi2", Pi2, 2 * math.Pi},
		{"PiHalf", PiHalf, math.Pi / 2},
		{"E", E, math.E},
		{"One", One, 1},
		{"Neg1", Neg1, -1},
		{"Half", Half, 0.5},
	}
	for _, tt := range tests {
		got := ToDouble(tt.got)
		if math.Abs(got-tt.want) >= 1.0/65536 {
			t.Errorf("%v = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFromDouble(t *testing.T) {
	tests := []struct {
		v    float64
		want Fixed
	}{
		{0, 0},
		{1, One},
		{1.5, 98304},
		{-1.5, -98304},
		{0.1, 6553},
		{-0.1, -6553},
		{1.0 / 65536, 1},
		{32767, 32767 << 16},
		{-32768, MinValue},
	}
	for _, tt := range tests {
		got := FromDouble(tt.v)
		if got != tt.want {
			t.Errorf("FromDouble(%v) = %v, want %v", tt.v, int32(got), int32(tt.want))
		}
		if got := FromFloat(float32(tt.v)); got != tt.want && tt.v != 0.1 && tt.v != -0.1 {
			t.Errorf("FromFloat(%v) = %v, want %v", tt.v, int32(got), int32(tt.want))
		}
	}
}

func TestFixed_Rounding(t *testing.T) {
	tests := []struct {
		v                  float64
		ceil, floor, round int32
	}{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{1.25, 2, 1, 1},
		{1.5, 2, 1, 2},
		{2.5, 3, 2, 3},
		{-1.25, -1, -2, -1},
		{-1.5, -1, -2, -1},
		{-1.75, -1, -2, -2},
	}
	for _, tt := range tests {
		x := FromDouble(tt.v)
		if got := CeilToInt(x); got != tt.ceil {
			t.Errorf("CeilToInt(%v) = %v, want %v", x, got, tt.ceil)
		}
		if got := FloorToInt(x); got != tt.floor {
			t.Errorf("FloorToInt(%v) = %v, want %v", x, got, tt.floor)
		}
		if got := RoundToInt(x); got != tt.round {
			t.Errorf("RoundToInt(%v) = %v, want %v", x, got, tt.round)
		}
		if got, want := Ceil(x), FromInt(tt.ceil); got != want {
			t.Errorf("Ceil(%v) = %v, want %v", x, got, want)
		}
		if got, want := Floor(x), FromInt(tt.floor); got != want {
			t.Errorf("Floor(%v) = %v, want %v", x, got, want)
		}
		if got, want := Round(x), FromInt(tt.round); got != want {
			t.Errorf("Round(%v) = %v, want %v", x, got, want)
		}
		if got, want := Fract(x), x-Floor(x); got != want {
			t.Errorf("Fract(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		x, abs Fixed
		sign   int32
	}{
		{0, 0, 0},
		{1, 1, 1},
		{-1, 1, -1},
		{One, One, 1},
		{Neg1, One, -1},
		{MaxValue, MaxValue, 1},
		{MinValue + 1, MaxValue, -1},
		{MinValue, MinValue, -1},
	}
	for _, tt := range tests {
		if got := Abs(tt.x); got != tt.abs {
			t.Errorf("Abs(%v) = %v, want %v", tt.x, got, tt.abs)
		}
		if got := Nabs(tt.x); got != -tt.abs {
			t.Errorf("Nabs(%v) = %v, want %v", tt.x, got, -tt.abs)
		}
		if got := Sign(tt.x); got != tt.sign {
			t.Errorf("Sign(%v) = %v, want %v", tt.x, got, tt.sign)
		}
	}
}

func TestMinMaxClamp(t *testing.T) {
	a, b := FromInt(-2), FromInt(3)
	if got := Min(a, b); got != a {
		t.Errorf("Min(%v, %v) = %v, want %v", a, b, got, a)
	}
	if got := Max(a, b); got != b {
		t.Errorf("Max(%v, %v) = %v, want %v", a, b, got, b)
	}
	tests := []struct {
		x, want Fixed
	}{
		{FromInt(-5), a},
		{FromInt(0), 0},
		{FromInt(5), b},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, a, b); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, a, b, got, tt.want)
		}
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want Fixed
	}{
		{One, One, One},
		{FromDouble(1.5), FromInt(-2), FromInt(-3)},
		{FromDouble(0.5), FromDouble(0.5), FromDouble(0.25)},
		{-1, 1, -1},
		{1, 1, 0},
		{FromInt(181), FromInt(181), FromInt(32761)},
	}
	for _, tt := range tests {
		if got := Mul(tt.a, tt.b); got != tt.want {
			t.Errorf("Mul(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := Add(tt.a, tt.b); got != tt.a+tt.b {
			t.Errorf("Add(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.a+tt.b)
		}
		if got := Sub(tt.a, tt.b); got != tt.a-tt.b {
			t.Errorf("Sub(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.a-tt.b)
		}
	}
}

func TestDiv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want Fixed
		}{
			{FromInt(10), FromInt(4), FromDouble(2.5)},
			{FromInt(-7), FromInt(2), FromDouble(-3.5)},
			{One, FromInt(3), 21845},
			{Neg1, FromInt(3), -21845},
			{0, One, 0},
			{MaxValue, One, MaxValue},
		}
		for _, tt := range tests {
			if got := Div(tt.a, tt.b); got != tt.want {
				t.Errorf("Div(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := DivPrecise(tt.a, tt.b); got != tt.want {
				t.Errorf("DivPrecise(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("approximate", func(t *testing.T) {
		tests := []struct {
			name string
			f    func(a, b Fixed) Fixed
			tol  float64
		}{
			{"DivFast", DivFast, 2e-4},
			{"DivFastest", DivFastest, 1e-3},
		}
		for _, tt := range tests {
			for a := FromInt(-1000); a <= FromInt(1000); a += 4567891 / 16 {
				for _, b := range []Fixed{FromDouble(0.3), FromDouble(-3.7), FromInt(17), FromInt(-255)} {
					want := ToDouble(a) / ToDouble(b)
					got := ToDouble(tt.f(a, b))
					if math.Abs(got-want) > tt.tol*math.Max(1, math.Abs(want)) {
						t.Errorf("%v(%v, %v) = %v, want %v", tt.name, a, b, got, want)
					}
				}
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			name string
			f    func(a, b Fixed) Fixed
		}{
			{"fixed32.Div", Div},
			{"fixed32.DivFast", DivFast},
			{"fixed32.DivFastest", DivFastest},
		}
		for _, tt := range tests {
			for _, b := range []Fixed{0, MinValue} {
				var got Fixed
				ops := recordInvalid(t, func() { got = tt.f(One, b) })
				if got != 0 || len(ops) != 1 || ops[0] != tt.name {
					t.Errorf("%v(1, %v) = %v with reports %q, want 0 with one report", tt.name, b, got, ops)
				}
			}
		}
		ops := recordInvalid(t, func() {
			if got := DivPrecise(One, 0); got != 0 {
				t.Errorf("DivPrecise(1, 0) = %v, want 0", got)
			}
		})
		if len(ops) != 0 {
			t.Errorf("DivPrecise(1, 0) reported %q, want no reports", ops)
		}
	})
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, b, want Fixed
	}{
		{FromDouble(7.5), FromInt(2), FromDouble(1.5)},
		{FromDouble(-7.5), FromInt(2), FromDouble(-1.5)},
		{FromDouble(7.5), FromInt(-2), FromDouble(1.5)},
		{FromInt(4), FromInt(2), 0},
		{MinValue, -1, 0},
	}
	for _, tt := range tests {
		if got := Mod(tt.a, tt.b); got != tt.want {
			t.Errorf("Mod(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
	var got Fixed
	ops := recordInvalid(t, func() { got = Mod(One, 0) })
	if got != 0 || len(ops) != 1 {
		t.Errorf("Mod(1, 0) = %v with reports %q, want 0 with one report", got, ops)
	}
}

func TestLerp(t *testing.T) {
	a, b := FromInt(-3), FromInt(5)
	tests := []struct {
		t, want Fixed
	}{
		{0, a},
		{One, b},
		{Half, One},
		{FromDouble(0.25), FromInt(-1)},
	}
	for _, tt := range tests {
		if got := Lerp(a, b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", a, b, tt.t, got, tt.want)
		}
	}
}

func TestNlz(t *testing.T) {
	tests := []struct {
		x    uint32
		want int
	}{
		{0, 32},
		{1, 31},
		{0xffff, 16},
		{0x80000000, 0},
	}
	for _, tt := range tests {
		if got := Nlz(tt.x); got != tt.want {
			t.Errorf("Nlz(%#x) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestFixed64(t *testing.T) {
	tests := []struct {
		v    fixed64.Fixed
		want Fixed
	}{
		{fixed64.One, One},
		{fixed64.Neg1, Neg1},
		{fixed64.Pi, Pi},
		{fixed64.PiHalf, PiHalf},
		{-1, -1},
		{fixed64.MaxValue, MaxValue},
		{fixed64.MinValue, MinValue},
		{fixed64.FromInt(32768), MaxValue},
	}
	for _, tt := range tests {
		if got := FromFixed64(tt.v); got != tt.want {
			t.Errorf("FromFixed64(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
	for _, x := range []Fixed{0, 1, -1, One, Pi, MinValue, MaxValue} {
		if got := FromFixed64(ToFixed64(x)); got != x {
			t.Errorf("FromFixed64(ToFixed64(%v)) = %v", x, got)
		}
	}
}
