package fixed64

import (
	"fmt"
	"math/big"

	"github.com/govalues/fixed/internal/format"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	errFixedOverflow = errors.New("fixed-point overflow")
	errInvalidFixed  = errors.New("invalid fixed-point number")
)

var (
	pow5 = new(big.Int).Exp(big.NewInt(5), big.NewInt(Shift), nil)
	unit = decimal.New(1<<Shift, 0)
)

// Decimal returns the exact decimal expansion of v.
// Every Q32.32 value has a finite expansion with at most 32 fractional digits.
func (v Fixed) Decimal() decimal.Decimal {
	// v / 2^32 = v * 5^32 / 10^32
	coef := new(big.Int).Mul(big.NewInt(int64(v)), pow5)
	return decimal.NewFromBigInt(coef, -Shift)
}

// FromDecimal converts a decimal to the nearest fixed-point number toward zero.
// It returns an error if the integer part does not fit into 32 bits.
func FromDecimal(d decimal.Decimal) (Fixed, error) {
	q := d.Mul(unit).Truncate(0).BigInt()
	if !q.IsInt64() {
		return 0, errors.Wrapf(errFixedOverflow, "converting %v: the integer part of a %T can have at most %v bits", d, Fixed(0), 64-Shift)
	}
	return Fixed(q.Int64()), nil
}

// Parse converts a string to a fixed-point number.
// The string can use scientific notation, such as "1.5e-3".
// The digits beyond the resolution of the type are truncated toward zero.
func Parse(s string) (Fixed, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(errInvalidFixed, "parsing %q", s)
	}
	return FromDecimal(d)
}

// String implements the [fmt.Stringer] interface and returns the exact
// decimal representation of v without trailing zeros, such as "-1.5".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Fixed) String() string {
	return v.Decimal().String()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (v *Fixed) UnmarshalText(text []byte) error {
	var err error
	*v, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Fixed.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (v Fixed) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -1.5
//	%q:        "-1.5"
//
// Precision is only supported for the %f verb.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (v Fixed) Format(state fmt.State, verb rune) {
	format.Decimal(state, verb, v.Decimal(), "fixed64.Fixed")
}
