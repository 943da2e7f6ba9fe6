package cga

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Multivector holds one coefficient per basis blade, indexed by blade bitmap.
type Multivector [NumBlades]float64

var (
	No = Vector(0, 0, 0, 1, 0) // origin, ½(e- - e+)
	Ni = Vector(0, 0, 0, 0, 1) // infinity, e+ + e-
	I  = Blade(1, Pss)
	// I² = -1, so the inverse pseudoscalar is -I
	IInv = Blade(-1, Pss)
)

// Scalar returns a grade-0 multivector.
func Scalar(x float64) (m Multivector) {
	m[0] = x
	return
}

// Blade returns x times the basis blade with the given bitmap.
func Blade(x float64, blade uint8) (m Multivector) {
	m[blade&Pss] = x
	return
}

// Vector builds a grade-1 element from Euclidean and null coefficients:
// x e1 + y e2 + z e3 + o no + f ni.
func Vector(x, y, z, o, f float64) (m Multivector) {
	m[E1], m[E2], m[E3] = x, y, z
	m[EP] = -0.5*o + f
	m[EM] = 0.5*o + f
	return
}

// Vec lifts a Euclidean vector.
func Vec(v r3.Vec) Multivector { return Vector(v.X, v.Y, v.Z, 0, 0) }

func (a Multivector) MV() Multivector { return a }

// Mul is the geometric product ab.
func (a Multivector) Mul(b Multivector) (c Multivector) {
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			if bv == 0 {
				continue
			}
			c[i^j] += gpSign[i][j] * av * bv
		}
	}
	return
}

// Wedge is the outer product a^b.
func (a Multivector) Wedge(b Multivector) (c Multivector) {
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			if bv == 0 || i&j != 0 {
				continue
			}
			c[i|j] += gpSign[i][j] * av * bv
		}
	}
	return
}

// Inner is the left contraction of a onto b.
func (a Multivector) Inner(b Multivector) (c Multivector) {
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			if bv == 0 || i&j != i {
				continue
			}
			c[i^j] += gpSign[i][j] * av * bv
		}
	}
	return
}

// ScalarProduct is the grade-0 part of ab, without forming the full product.
func (a Multivector) ScalarProduct(b Multivector) (s float64) {
	for i := range a {
		s += gpSign[i][i] * a[i] * b[i]
	}
	return
}

func (a Multivector) Add(b Multivector) (c Multivector) {
	for i := range a {
		c[i] = a[i] + b[i]
	}
	return
}

func (a Multivector) Sub(b Multivector) (c Multivector) {
	for i := range a {
		c[i] = a[i] - b[i]
	}
	return
}

func (a Multivector) Scale(f float64) (c Multivector) {
	for i := range a {
		c[i] = a[i] * f
	}
	return
}

// Reverse reverses the order of vectors in every blade.
func (a Multivector) Reverse() (c Multivector) {
	for i, v := range a {
		if grades[i]%4 > 1 {
			v = -v
		}
		c[i] = v
	}
	return
}

// Grade projects onto the blades of grade k.
func (a Multivector) Grade(k int) (c Multivector) {
	for i, v := range a {
		if grades[i] == k {
			c[i] = v
		}
	}
	return
}

// Inverse is valid for blades and versors, for which a ã is a scalar.
func (a Multivector) Inverse() Multivector {
	rev := a.Reverse()
	n := a.ScalarProduct(rev)
	if n == 0 {
		return Multivector{}
	}
	return rev.Scale(1 / n)
}

// Div is a b⁻¹.
func (a Multivector) Div(b Multivector) Multivector { return a.Mul(b.Inverse()) }

func (a Multivector) Dual() Multivector   { return a.Mul(IInv) }
func (a Multivector) Undual() Multivector { return a.Mul(I) }

func (a Multivector) Scalar() float64 { return a[0] }

// No is the origin coefficient of the vector part.
func (a Multivector) No() float64 { return a[EM] - a[EP] }

// Ni is the infinity coefficient of the vector part.
func (a Multivector) Ni() float64 { return 0.5 * (a[EP] + a[EM]) }

// Euclid is the e1,e2,e3 part of the vector.
func (a Multivector) Euclid() r3.Vec { return r3.Vec{X: a[E1], Y: a[E2], Z: a[E3]} }

// Norm2 is the sum of squared coefficients, independent of the metric.
func (a Multivector) Norm2() (n float64) {
	for _, v := range a {
		n += v * v
	}
	return
}

// TUnit scales by 1/sqrt|a ã|; a zero norm leaves a unchanged.
func (a Multivector) TUnit() Multivector {
	n := math.Sqrt(math.Abs(a.ScalarProduct(a.Reverse())))
	if n == 0 {
		return a
	}
	return a.Scale(1 / n)
}

func (a Multivector) IsZero(tol float64) bool { return a.Norm2() <= tol*tol }

// IsFinite reports whether no coefficient is NaN or infinite.
func (a Multivector) IsFinite() bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (a Multivector) String() string {
	var terms []string
	for i, v := range a {
		if v != 0 {
			terms = append(terms, fmt.Sprintf("%.6g%s", v, bladeName(uint8(i))))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
