package fixed32

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
		{FromDouble(-0.25), "-0.25"},
		{1, "0.0000152587890625"},
		{-1, "-0.0000152587890625"},
		{MaxValue, "32767.9999847412109375"},
		{MinValue, "-32768"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Fixed(%d).String() = %q, want %q", int32(tt.v), got, tt.want)
		}
		text, err := tt.v.MarshalText()
		if err != nil {
			t.Errorf("Fixed(%d).MarshalText() failed: %v", int32(tt.v), err)
			continue
		}
		var got Fixed
		if err := got.UnmarshalText(text); err != nil {
			t.Errorf("UnmarshalText(%q) failed: %v", text, err)
			continue
		}
		if got != tt.v {
			t.Errorf("UnmarshalText(%q) = %d, want %d", text, int32(got), int32(tt.v))
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
			{"1.5", FromDouble(1.5)},
			{"+2.25", FromDouble(2.25)},
			{"1e2", FromInt(100)},
			{"-0.00001", 0},
			{"0.0000152587890625", 1},
			{"0.0000305175781249", 1},
			{"-0.0000305175781249", -1},
			{"32767.9999847412109375", MaxValue},
			{"-32768", MinValue},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.s, int32(got), int32(tt.want))
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"empty":      {"", errInvalidFixed},
			"letters":    {"abc", errInvalidFixed},
			"two points": {"1.2.3", errInvalidFixed},
			"overflow 1": {"32768", errFixedOverflow},
			"overflow 2": {"-32768.0000152587890625", errFixedOverflow},
			"overflow 3": {"1e10", errFixedOverflow},
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
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParse(\"abc\") did not panic")
		}
	}()
	MustParse("abc")
}

func TestFromDecimal(t *testing.T) {
	tests := []struct {
		d    decimal.Decimal
		want Fixed
	}{
		{decimal.NewFromInt(3), Three},
		{decimal.New(-15, -1), FromDouble(-1.5)},
		{Pi.Decimal(), Pi},
		{MinValue.Decimal(), MinValue},
	}
	for _, tt := range tests {
		if got := MustFromDecimal(tt.d); got != tt.want {
			t.Errorf("MustFromDecimal(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
	if _, err := FromDecimal(decimal.NewFromInt(40000)); !errors.Is(err, errFixedOverflow) {
		t.Errorf("FromDecimal(40000) did not fail with %v, got %v", errFixedOverflow, err)
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
		{"%f", FromDouble(1.5), "1.5"},
		{"%.2f", FromDouble(1.5), "1.50"},
		{"%.0f", FromDouble(2.5), "3"},
		{"%.3f", Pi, "3.142"},
		{"%q", FromDouble(1.5), `"1.5"`},
		{"%+v", FromDouble(1.5), "+1.5"},
		{"% v", FromDouble(1.5), " 1.5"},
		{"%6v", FromDouble(1.5), "   1.5"},
		{"%-6v|", FromDouble(1.5), "1.5   |"},
		{"%07v", FromDouble(-1.5), "-0001.5"},
		{"%x", FromDouble(1.5), "%!x(fixed32.Fixed=1.5)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, tt.v); got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.v, got, tt.want)
		}
	}
}
