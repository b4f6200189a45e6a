/*
Package poly implements the integer approximation kernel shared by the
fixed32 and fixed64 packages.

All arithmetic is done on canonical s2.30 mantissas: signed 32-bit integers
where 1.0 is represented by 1<<30.
Positive inputs are normalized into [1.0, 2.0) with a leading-zero count,
the function is approximated on the reduced variable k = n - 1.0 with a
minimax polynomial (optionally selected per segment from a lookup table),
and the caller reconstructs the magnitude by shifting with the exponent.
*/
package poly

// Poly is a polynomial with s2.30 coefficients, ordered from the highest
// degree down to the constant term.
type Poly []int32

// Eval evaluates p at k using Horner's rule.
// Every product is quantized with [Qmul30].
func (p Poly) Eval(k int32) int32 {
	y := Qmul30(k, p[0])
	for _, c := range p[1 : len(p)-1] {
		y = Qmul30(k, y+c)
	}
	return y + p[len(p)-1]
}

// Degree returns the degree of p.
func (p Poly) Degree() int {
	return len(p) - 1
}

// Lut is a piecewise polynomial over [0, 1.0).
// The top bits of k select one of 2^bits rows of width coefficients.
type Lut struct {
	bits   uint
	width  int
	coeffs []int32
}

// Eval evaluates the segment polynomial that covers k.
func (t *Lut) Eval(k int32) int32 {
	i := int(k>>(30-t.bits)) * t.width
	return Poly(t.coeffs[i : i+t.width]).Eval(k)
}

// Segments returns the number of segments covering [0, 1.0).
func (t *Lut) Segments() int {
	return 1 << t.bits
}

// Rows returns the number of coefficient rows stored in the table.
func (t *Lut) Rows() int {
	return len(t.coeffs) / t.width
}

// Degree returns the degree of the segment polynomials.
func (t *Lut) Degree() int {
	return t.width - 1
}

// Evaluator is implemented by [Poly] and [Lut].
type Evaluator interface {
	Eval(k int32) int32
	Degree() int
}
