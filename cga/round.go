package cga

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Location is the center of a round (sphere, pair, circle, tangent), X ni X
// reduced to a unit-weight point.
func Location(x Multivector) Point {
	c := x.Mul(Ni).Mul(x).Grade(1)
	w := c.No()
	if w == 0 {
		return NewPoint(c.Euclid())
	}
	return NewPoint(r3.Scale(1/w, c.Euclid()))
}

// Direction is the Euclidean direction carried by a tangent or pair, the
// Euclidean part of ni⌋X.
func Direction(x Multivector) r3.Vec { return Ni.Inner(x).Euclid() }

// TangentAt is the null pair at point at with direction d.
func TangentAt(d, at r3.Vec) Pair {
	dd := Vector(d.X, d.Y, d.Z, 0, r3.Dot(d, at))
	return Pair{dd.Wedge(NewPoint(at).Multivector)}
}

// NormalizePair rebuilds a tangent with unit direction at its own location.
func NormalizePair(t Pair) Pair {
	d := Direction(t.Multivector)
	if n := r3.Norm(d); n != 0 {
		d = r3.Scale(1/n, d)
	}
	return TangentAt(d, Location(t.Multivector).Pos())
}

// Carrier is the flat (plane) containing a circle.
func Carrier(c Circle) Sphere { return Sphere{c.Wedge(Ni)} }

// Surround is the dual sphere sharing the circle's center and radius.
func Surround(c Circle) DualSphere {
	return DualSphere{c.Div(Carrier(c).Multivector).Grade(1)}
}

// TangentOn is the null tangent circle of a direct sphere at a point on it.
func TangentOn(s Sphere, p Point) Circle { return Circle{p.Inner(s.Multivector).Grade(3)} }

// SplitPair decomposes a point pair into its two points. An imaginary pair
// yields the points of its real counterpart.
func SplitPair(pp Pair) (a, b Point) {
	var (
		s = math.Sqrt(math.Abs(pp.ScalarProduct(pp.Multivector)))
		d = Ni.Inner(pp.Multivector)
	)
	a = normalizeVector(pp.Sub(Scalar(s)).Mul(d).Grade(1))
	b = normalizeVector(pp.Add(Scalar(s)).Mul(d).Grade(1))
	return
}

func normalizeVector(v Multivector) Point {
	w := v.No()
	if w == 0 {
		return NewPoint(v.Euclid())
	}
	return NewPoint(r3.Scale(1/w, v.Euclid()))
}

// FlatPointLocation reads the point off a flat point α(no^ni + x^ni).
func FlatPointLocation(fp Pair) Point { return normalizeVector(No.Inner(fp.Multivector)) }

// MeetPlanes is the point common to three planes.
func MeetPlanes(p1, p2, p3 Sphere) Point {
	fp := p1.Dual().Wedge(p2.Dual()).Wedge(p3.Dual()).Dual().Grade(2)
	return FlatPointLocation(Pair{fp})
}

// PlaneThrough is the direct plane through three points.
func PlaneThrough(a, b, c Point) Sphere {
	return Sphere{a.Wedge(b.Multivector).Wedge(c.Multivector).Wedge(Ni)}
}

// CircleThrough is the direct circle through three points.
func CircleThrough(a, b, c Point) Circle {
	return Circle{a.Wedge(b.Multivector).Wedge(c.Multivector)}
}

// MeetSphereCircle is the point pair where a dual sphere cuts a circle.
func MeetSphereCircle(s DualSphere, c Circle) Pair {
	return Pair{s.Wedge(c.Multivector.Dual()).Dual().Grade(2)}
}
