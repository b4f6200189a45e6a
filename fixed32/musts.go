package fixed32

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding
// fixed-point numbers.
func MustParse(s string) Fixed {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return v
}

// MustFromDecimal is like [FromDecimal] but panics if the decimal is out of range.
func MustFromDecimal(d decimal.Decimal) Fixed {
	v, err := FromDecimal(d)
	if err != nil {
		panic(fmt.Sprintf("MustFromDecimal(%v) failed: %v", d, err))
	}
	return v
}
