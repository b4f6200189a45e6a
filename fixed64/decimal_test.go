package fixed64

import (
	"encoding"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFixed_Interfaces(t *testing.T) {
	var v any

	v = Fixed(0)
	if _, ok := v.(fmt.Stringer); !ok {
		t.Errorf("%T does not implement fmt.Stringer", v)
	}
	if _, ok := v.(fmt.Formatter); !ok {
		t.Errorf("%T does not implement fmt.Formatter", v)
	}
	if _, ok := v.(encoding.TextMarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", v)
	}

	v = new(Fixed)
	if _, ok := v.(encoding.TextUnmarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", v)
	}
}

func TestFixed_String(t *testing.T) {
	tests := []struct {
		v    Fixed
		want string
	}{
		{0, "0"},
		{One, "1"},
		{Neg1, "-1"},
		{FromDouble(1.5), "1.5"},
		{FromDouble(-0.125), "-0.125"},
		{1, "0.00000000023283064365386962890625"},
		{-1, "-0.00000000023283064365386962890625"},
		{Pi, "3.14159265370108187198638916015625"},
		{MaxValue, "2147483647.99999999976716935634613037109375"},
		{MinValue, "-2147483648"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Fixed(%d).String() = %q, want %q", int64(tt.v), got, tt.want)
		}
		text, err := tt.v.MarshalText()
		if err != nil {
			t.Errorf("Fixed(%d).MarshalText() failed: %v", int64(tt.v), err)
			continue
		}
		var got Fixed
		if err := got.UnmarshalText(text); err != nil {
			t.Errorf("UnmarshalText(%q) failed: %v", text, err)
			continue
		}
		if got != tt.v {
			t.Errorf("UnmarshalText(%q) = %d, want %d", text, int64(got), int64(tt.v))
		}
	}
}

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want Fixed
		}{
			{"0", 0},
			{"1", One},
			{"-1", Neg1},
			{"+1.5", FromDouble(1.5)},
			{"-0.125", FromDouble(-0.125)},
			{"1.5e3", FromInt(1500)},
			{"-0.0000000001", 0},
			{"0.00000000023283064365386962890625", 1},
			{"0.0000000004656612873077392578124", 1},
			{"-0.0000000004656612873077392578124", -1},
			{"2147483647.99999999976716935634613037109375", MaxValue},
			{"-2147483648", MinValue},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.s, int64(got), int64(tt.want))
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"empty":      {"", errInvalidFixed},
			"letters":    {"1.5x", errInvalidFixed},
			"two points": {"1.2.3", errInvalidFixed},
			"overflow 1": {"2147483648", errFixedOverflow},
			"overflow 2": {"-2147483648.00000000023283064365386962890625", errFixedOverflow},
			"overflow 3": {"1e20", errFixedOverflow},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Parse(tt.s)
				if !errors.Is(err, tt.want) {
					t.Errorf("Parse(%q) did not fail with %v, got %v", tt.s, tt.want, err)
				}
			})
		}
	})
}

func TestMustParse(t *testing.T) {
	if got := MustParse("2.5"); got != FromDouble(2.5) {
		t.Errorf("MustParse(\"2.5\") = %v, want 2.5", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParse(\"3e9\") did not panic")
		}
	}()
	MustParse("3e9")
}

func TestFromDecimal(t *testing.T) {
	tests := []struct {
		d    decimal.Decimal
		want Fixed
	}{
		{decimal.NewFromInt(-7), FromInt(-7)},
		{decimal.New(25, -2), One / 4},
		{Pi.Decimal(), Pi},
		{E.Decimal(), E},
		{MaxValue.Decimal(), MaxValue},
		{MinValue.Decimal(), MinValue},
	}
	for _, tt := range tests {
		if got := MustFromDecimal(tt.d); got != tt.want {
			t.Errorf("MustFromDecimal(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
	if _, err := FromDecimal(decimal.NewFromInt(3_000_000_000)); !errors.Is(err, errFixedOverflow) {
		t.Errorf("FromDecimal(3000000000) did not fail with %v, got %v", errFixedOverflow, err)
	}
}

func TestFixed_Format(t *testing.T) {
	tests := []struct {
		format string
		v      Fixed
		want   string
	}{
		{"%v", One, "1"},
		{"%s", FromDouble(-1.5), "-1.5"},
		{"%.2f", FromDouble(1.5), "1.50"},
		{"%.0f", FromDouble(-2.5), "-3"},
		{"%.6f", Pi, "3.141593"},
		{"%q", FromDouble(-0.5), `"-0.5"`},
		{"%+v", Two, "+2"},
		{"%8.3f", E, "   2.718"},
		{"%-5v|", Half, "0.5  |"},
		{"%06v", FromDouble(-0.5), "-000.5"},
		{"%d", One, "%!d(fixed64.Fixed=1)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, tt.v); got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.v, got, tt.want)
		}
	}
}
