package cga

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a null vector no + x + ½x² ni.
type Point struct{ Multivector }

// DualSphere is a grade-1 sphere; it is a dual plane when its origin
// coefficient vanishes.
type DualSphere struct{ Multivector }

// Pair is a grade-2 element: a point pair, a null tangent vector, a flat point
// or a generator bivector.
type Pair struct{ Multivector }

// Circle is a grade-3 direct circle, line, or null tangent bivector.
type Circle struct{ Multivector }

// Sphere is a grade-4 direct sphere or plane.
type Sphere struct{ Multivector }

// Versor is an even element acting on other elements by conjugation.
type Versor struct{ Multivector }

func NewPoint(x r3.Vec) Point {
	return Point{Vector(x.X, x.Y, x.Z, 1, 0.5*r3.Dot(x, x))}
}

// Pos is the Euclidean position after removing the point's weight.
func (p Point) Pos() r3.Vec {
	w := p.No()
	if w == 0 {
		return p.Euclid()
	}
	return r3.Scale(1/w, p.Euclid())
}

// Null re-embeds the position so the result is a unit-weight null vector.
func (p Point) Null() Point { return NewPoint(p.Pos()) }

func (p Point) Spin(v Versor) Point { return Point{v.Apply(p.Multivector).Grade(1)} }

// NewDualSphere is the sphere of the given center and radius.
func NewDualSphere(center r3.Vec, radius float64) DualSphere {
	p := NewPoint(center)
	return DualSphere{p.Sub(Ni.Scale(0.5 * radius * radius))}
}

// NewDualPlane is the plane x·n = d.
func NewDualPlane(n r3.Vec, d float64) DualSphere {
	return DualSphere{Vector(n.X, n.Y, n.Z, 0, d)}
}

// Normalize divides by the magnitude of the origin coefficient, keeping the
// sign, so a curved surface has weight ±1. A flat surface (weight within tol
// of zero) is truncated to its plane coefficients instead.
func (s DualSphere) Normalize(tol float64) DualSphere {
	w := s.No()
	if math.Abs(w) <= tol {
		n := s.Euclid()
		return DualSphere{Vector(n.X, n.Y, n.Z, 0, s.Ni())}
	}
	return DualSphere{s.Grade(1).Scale(1 / math.Abs(w))}
}

func (s DualSphere) IsFlat(tol float64) bool { return math.Abs(s.No()) <= tol }

// Unit scales a plane to a unit normal and a sphere to unit weight.
func (s DualSphere) Unit(tol float64) DualSphere {
	if s.IsFlat(tol) {
		n := r3.Norm(s.Euclid())
		if n == 0 {
			return s
		}
		return DualSphere{s.Scale(1 / n)}
	}
	return DualSphere{s.Scale(1 / math.Abs(s.No()))}
}

// Radius2 is the signed squared radius; negative for imaginary spheres.
func (s DualSphere) Radius2() float64 {
	w := s.No()
	if w == 0 {
		return math.Inf(1)
	}
	u := s.Scale(1 / w)
	return u.ScalarProduct(u)
}

// Side is p·s; zero on the surface, its sign tells the side.
func (s DualSphere) Side(p Point) float64 { return p.ScalarProduct(s.Multivector) }

func (s DualSphere) Spin(v Versor) DualSphere { return DualSphere{v.Apply(s.Multivector).Grade(1)} }

// Sphere is the direct representation of s.
func (s DualSphere) Sphere() Sphere { return Sphere{s.Undual().Grade(4)} }

// DualSphere is the dual representation of s.
func (s Sphere) DualSphere() DualSphere { return DualSphere{s.Dual().Grade(1)} }

// Unit rescales through the dual representation.
func (s Sphere) Unit(tol float64) Sphere { return s.DualSphere().Unit(tol).Sphere() }

func (t Pair) Spin(v Versor) Pair { return Pair{v.Apply(t.Multivector).Grade(2)} }

func (t Pair) Neg() Pair { return Pair{t.Scale(-1)} }

func (t Pair) Scaled(f float64) Pair { return Pair{t.Scale(f)} }

func (t Pair) Plus(o Pair) Pair { return Pair{t.Add(o.Multivector)} }

// Undual is the circle (bitangent) dual to t.
func (t Pair) Undual() Circle { return Circle{t.Multivector.Undual().Grade(3)} }

// Dual is the pair dual to c.
func (c Circle) Dual() Pair { return Pair{c.Multivector.Dual().Grade(2)} }

func (c Circle) Spin(v Versor) Circle { return Circle{v.Apply(c.Multivector).Grade(3)} }

// Identity is the versor that leaves every element unchanged.
func Identity() Versor { return Versor{Scalar(1)} }

// Apply is the sandwich V X Ṽ.
func (v Versor) Apply(x Multivector) Multivector {
	return v.Mul(x).Mul(v.Reverse())
}

// Compose returns the versor applying o first and then v.
func (v Versor) Compose(o Versor) Versor { return Versor{v.Mul(o.Multivector)} }
