package fixed64

import (
	"math"
	"testing"
)

func TestSin(t *testing.T) {
	sins := tiered("Sin", Sin, SinFast, SinFastest)
	coss := tiered("Cos", Cos, CosFast, CosFastest)
	checkAccuracy(t, sins, math.Sin, FromInt(-50), FromInt(50))
	checkAccuracy(t, coss, math.Cos, FromInt(-50), FromInt(50))

	t.Run("special", func(t *testing.T) {
		for i := range sins {
			if got := sins[i].f(0); got != 0 {
				t.Errorf("%v(0) = %v, want 0", sins[i].name, got)
			}
			if got := sins[i].f(PiHalf); Abs(got-One) > 16 {
				t.Errorf("%v(π/2) = %v, want %v", sins[i].name, got, One)
			}
			if got := coss[i].f(0); Abs(got-One) > 16 {
				t.Errorf("%v(0) = %v, want %v", coss[i].name, got, One)
			}
		}
	})

	t.Run("cos", func(t *testing.T) {
		// Cos shifts the reduced angle by a quarter turn, so Cos(0) is the
		// sine kernel at one quarter and not exactly One.
		tests := []struct {
			f    unaryFunc
			want Fixed
		}{
			{coss[0], 4294967300},
			{coss[1], 4294967304},
			{coss[2], 4294967296},
		}
		for _, tt := range tests {
			if got := tt.f.f(0); got != tt.want {
				t.Errorf("%v(0) = %d, want %d", tt.f.name, int64(got), int64(tt.want))
			}
		}
	})

	t.Run("periodic", func(t *testing.T) {
		for _, fn := range append(sins, coss...) {
			for x := -Pi2; x < Pi2; x += Pi2 / 300 {
				want := fn.f(x)
				for _, k := range []Fixed{-100, -3, 1, 7, 100} {
					if got := fn.f(x + k*Pi2); got != want {
						t.Errorf("%v(%v) = %v, want %v", fn.name, x+k*Pi2, got, want)
					}
				}
			}
		}
	})
}

func TestTan(t *testing.T) {
	checkAccuracy(t, tiered("Tan", Tan, TanFast, TanFastest), math.Tan, Neg1, One)
}

func TestAtan2(t *testing.T) {
	atan2s := []struct {
		name string
		f    func(y, x Fixed) Fixed
	}{
		{"Atan2", Atan2},
		{"Atan2Fast", Atan2Fast},
		{"Atan2Fastest", Atan2Fastest},
	}

	t.Run("accuracy", func(t *testing.T) {
		step := FromInt(100) / 173
		for i, fn := range atan2s {
			for y := FromInt(-100); y <= FromInt(100); y += step {
				for x := FromInt(-100); x <= FromInt(100); x += step {
					if x == 0 && y == 0 {
						continue
					}
					got := ToDouble(fn.f(y, x))
					want := math.Atan2(ToDouble(y), ToDouble(x))
					if math.Abs(got-want) > tolerance[i] {
						t.Errorf("%v(%v, %v) = %v, want %v", fn.name, y, x, got, want)
					}
				}
			}
		}
	})

	t.Run("axes", func(t *testing.T) {
		for _, fn := range atan2s {
			if got := fn.f(One, 0); got != PiHalf {
				t.Errorf("%v(1, 0) = %v, want %v", fn.name, got, PiHalf)
			}
			if got := fn.f(Neg1, 0); got != -PiHalf {
				t.Errorf("%v(-1, 0) = %v, want %v", fn.name, got, -PiHalf)
			}
			if got := fn.f(0, One); got != 0 {
				t.Errorf("%v(0, 1) = %v, want 0", fn.name, got)
			}
			// Magnitudes are taken in ones' complement.
			if got := fn.f(0, Neg1); got != Pi-1 {
				t.Errorf("%v(0, -1) = %v, want %v", fn.name, got, Pi-1)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, fn := range atan2s {
			var got Fixed
			ops := recordInvalid(t, func() { got = fn.f(0, 0) })
			if want := "fixed64." + fn.name; got != 0 || len(ops) != 1 || ops[0] != want {
				t.Errorf("%v(0, 0) = %v with reports %q, want 0 with one report %q", fn.name, got, ops, want)
			}
		}
	})
}

func TestAtan(t *testing.T) {
	checkAccuracy(t, tiered("Atan", Atan, AtanFast, AtanFastest), math.Atan, FromInt(-1000), FromInt(1000))
}

func TestAsin(t *testing.T) {
	asins := tiered("Asin", Asin, AsinFast, AsinFastest)
	acoss := tiered("Acos", Acos, AcosFast, AcosFastest)
	checkAccuracy(t, asins, math.Asin, Neg1, One)
	checkAccuracy(t, acoss, math.Acos, Neg1, One)
	for i := range asins {
		if got := asins[i].f(One); got != PiHalf {
			t.Errorf("%v(1) = %v, want %v", asins[i].name, got, PiHalf)
		}
		if got := acoss[i].f(One); got != 0 {
			t.Errorf("%v(1) = %v, want 0", acoss[i].name, got)
		}
		if got := acoss[i].f(Neg1); got != Pi-1 {
			t.Errorf("%v(-1) = %v, want %v", acoss[i].name, got, Pi-1)
		}
	}
}
