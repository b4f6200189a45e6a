// Package format renders exact decimal expansions of fixed-point numbers
// for the [fmt.Formatter] implementations of the fixed32 and fixed64 types.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal writes d to state according to verb.
// The following verbs are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//
// The flags '+', ' ', '0' and '-' can be used with all verbs.
// Precision is only supported for the %f verb, in which case the value is
// rounded half away from zero. Without precision all significant digits
// are written.
// Unknown verbs are reported as %!verb(typeName=value).
func Decimal(state fmt.State, verb rune, d decimal.Decimal, typeName string) {

	// Digits
	var digits string
	if p, ok := state.Precision(); ok && (verb == 'f' || verb == 'F') {
		digits = d.StringFixed(int32(p))
	} else {
		digits = d.String()
	}
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	// Arithmetic sign
	sign := ""
	switch {
	case neg:
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := len(quote) + len(sign) + len(digits) + len(quote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(quote)
	buf.WriteString(sign)
	buf.WriteString(strings.Repeat("0", lzeroes))
	buf.WriteString(digits)
	buf.WriteString(quote)
	buf.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		fmt.Fprint(state, buf.String())
	default:
		fmt.Fprintf(state, "%%!%c(%s=%s)", verb, typeName, buf.String())
	}
}
