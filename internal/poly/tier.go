package poly

// Tier selects an accuracy and speed trade-off.
// Tiers never fall back to each other.
type Tier int

const (
	// Precise uses the largest tables and the most refinement.
	Precise Tier = iota
	// Fast trades a few bits of precision for speed.
	Fast
	// Fastest uses the lowest degree polynomials.
	Fastest
)

// Tiers lists all tiers from the most to the least precise.
var Tiers = [...]Tier{Precise, Fast, Fastest}

// String returns the tier name used on the command line.
func (t Tier) String() string {
	switch t {
	case Precise:
		return "precise"
	case Fast:
		return "fast"
	case Fastest:
		return "fastest"
	}
	return "unknown"
}

// Suffix returns the function name suffix of the tier: "", "Fast" or "Fastest".
func (t Tier) Suffix() string {
	switch t {
	case Fast:
		return "Fast"
	case Fastest:
		return "Fastest"
	}
	return ""
}

// family holds one evaluator per tier.
type family [len(Tiers)]Evaluator

var (
	exp2Family  = family{exp2Deg5, exp2Deg4, exp2Deg3}
	rcpFamily   = family{rcpDeg4Lut8, rcpDeg6, rcpDeg4}
	sqrtFamily  = family{sqrtDeg3Lut8, sqrtDeg4, sqrtDeg3}
	rsqrtFamily = family{rsqrtDeg3Lut16, rsqrtDeg5, rsqrtDeg3}
	logFamily   = family{logDeg5Lut8, logDeg3Lut8, logDeg5}
	log2Family  = family{log2Deg4Lut16, log2Deg3Lut16, log2Deg5}
	sinFamily   = family{sinDeg4, sinDeg3, sinDeg2}
	atanFamily  = family{atanDeg5Lut8, atanDeg3Lut8, atanDeg4}
)

// Exp2 approximates 2^k for k in [0, 1.0).
func Exp2(t Tier, k int32) int32 {
	return exp2Family[t].Eval(k)
}

// Rcp approximates 1/(1+k) for k in [0, 1.0).
func Rcp(t Tier, k int32) int32 {
	return rcpFamily[t].Eval(k)
}

// Sqrt approximates √(1+k) for k in [0, 1.0).
func Sqrt(t Tier, k int32) int32 {
	return sqrtFamily[t].Eval(k)
}

// RSqrt approximates 1/√(1+k) for k in [0, 1.0).
func RSqrt(t Tier, k int32) int32 {
	return rsqrtFamily[t].Eval(k)
}

// Log approximates ln(1+k) for k in [0, 1.0).
func Log(t Tier, k int32) int32 {
	return logFamily[t].Eval(k)
}

// Log2 approximates log2(1+k) for k in [0, 1.0).
func Log2(t Tier, k int32) int32 {
	return log2Family[t].Eval(k)
}

// Atan approximates atan(k) in radians for k in [0, 1.0].
func Atan(t Tier, k int32) int32 {
	return atanFamily[t].Eval(k)
}

// UnitSin approximates sin(z * π/2) for an s2.30 angle z.
// Four units make a full turn, so z wraps around naturally on overflow.
// The result is in s2.30.
func UnitSin(t Tier, z int32) int32 {
	// Quadrants 1 and 2 have different top two bits and are mirrored
	// into [-1, 1] by computing 2 - z (mod 4).
	if (z ^ (z << 1)) < 0 {
		z = -1<<31 - z
	}
	zz := Qmul30(z, z)
	return Qmul30(sinFamily[t].Eval(zz), z)
}

// Precision returns the declared worst-case bits of precision of an evaluator
// family by name, as listed in the table comments.
func Precision(name string, t Tier) float64 {
	p, ok := precision[name]
	if !ok {
		return 0
	}
	return p[t]
}

var precision = map[string][len(Tiers)]float64{
	"exp2":  {23.37, 18.19, 13.24},
	"rcp":   {24.07, 16.53, 11.33},
	"sqrt":  {23.56, 16.50, 13.36},
	"rsqrt": {24.59, 16.08, 10.55},
	"log":   {26.22, 15.35, 12.18},
	"log2":  {25.20, 18.77, 12.29},
	"sin":   {27.13, 19.56, 12.55},
	"atan":  {28.06, 17.98, 11.51},
}
