package cga

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	DefaultTolerance = 1.e-9
)

// NearZero reports |x| <= tol.
func NearZero(x, tol float64) bool { return scalar.EqualWithinAbs(x, 0, tol) }

// Ratio is the scalar t minimizing |a - t b| over the blade coefficients. It
// extracts the parameter of a generator along a reference generator, null
// ones included, and clamps degenerate results to zero.
func Ratio(a, b Multivector, tol float64) float64 {
	var num, den float64
	for i := range b {
		num += a[i] * b[i]
		den += b[i] * b[i]
	}
	if den <= tol*tol {
		return 0
	}
	t := num / den
	if NearZero(t, tol) {
		return 0
	}
	return t
}

// ApproxEqual compares coefficient by coefficient.
func ApproxEqual(a, b Multivector, tol float64) bool {
	return floats.EqualApprox(a[:], b[:], tol)
}

// Proportional reports whether a and b are scalar multiples, either sign.
func Proportional(a, b Multivector, tol float64) bool {
	t := Ratio(a, b, tol)
	if t == 0 {
		return a.IsZero(tol) && b.IsZero(tol)
	}
	return ApproxEqual(a, b.Scale(t), tol)
}
