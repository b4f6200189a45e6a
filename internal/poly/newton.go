package poly

// RcpNewton refines an s2.30 estimate y of 1/n, for n in [1.0, 2.0),
// with one Newton-Raphson step y' = y * (2 - n*y).
// Each step roughly doubles the number of correct bits.
func RcpNewton(y, n int32) int32 {
	e := int64(2*One) - int64(Qmul30(n, y))
	return int32((int64(y) * e) >> 30)
}

// RSqrtNewton refines an s2.30 estimate y of 1/√n, for n in [1.0, 2.0),
// with one Newton-Raphson step y' = y/2 * (3 - n*y*y).
func RSqrtNewton(y, n int32) int32 {
	yy := Qmul30(y, y)
	e := int64(3*One) - int64(Qmul30(n, yy))
	return int32((int64(y) * e) >> 31)
}
