package accuracy

import (
	"math"
	"strings"

	"github.com/govalues/fixed/fixed32"
	"github.com/govalues/fixed/fixed64"
	"github.com/govalues/fixed/internal/poly"
	"github.com/pkg/errors"
)

// Format selects the fixed-point type an operation is evaluated in.
type Format int

const (
	Fixed32 Format = 32 // Q16.16
	Fixed64 Format = 64 // Q32.32
)

// Formats lists all formats.
var Formats = [...]Format{Fixed32, Fixed64}

var (
	errUnknownFormat = errors.New("unknown format")
	errUnknownTier   = errors.New("unknown tier")
)

func (f Format) String() string {
	switch f {
	case Fixed32:
		return "fixed32"
	case Fixed64:
		return "fixed64"
	}
	return "unknown"
}

// ParseFormat converts "32", "64", "fixed32" or "fixed64" to a format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "32", "fixed32", "q16.16":
		return Fixed32, nil
	case "64", "fixed64", "q32.32":
		return Fixed64, nil
	}
	return 0, errors.Wrapf(errUnknownFormat, "parsing %q", s)
}

// ParseTier converts a tier name, such as "fast", to a tier.
func ParseTier(s string) (poly.Tier, error) {
	for _, t := range poly.Tiers {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, errors.Wrapf(errUnknownTier, "parsing %q", s)
}

// bounds returns the smallest and the largest float64 that convert to f
// without overflow.
func (f Format) bounds() (lo, hi float64) {
	if f == Fixed32 {
		return fixed32.ToDouble(fixed32.MinValue), fixed32.ToDouble(fixed32.MaxValue)
	}
	// float64 cannot hold MaxValue, the nearest lower value is 2^31 - 2^-21.
	return fixed64.ToDouble(fixed64.MinValue), fixed64.ToDouble(fixed64.MaxValue - 1<<11)
}

// Quantize clamps v to the range of f and rounds it toward zero to the
// nearest representable value.
func (f Format) Quantize(v float64) float64 {
	lo, hi := f.bounds()
	v = math.Max(lo, math.Min(hi, v))
	if f == Fixed32 {
		return fixed32.ToDouble(fixed32.FromDouble(v))
	}
	return fixed64.ToDouble(fixed64.FromDouble(v))
}

// inRange reports whether a reference value is safely inside the range of f.
func (f Format) inRange(v float64) bool {
	lo, hi := f.bounds()
	return v >= 0.99*lo && v <= 0.99*hi
}
