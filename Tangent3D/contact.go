package Tangent3D

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gotangent/cga"
)

// Contact is a point on a sphere together with the tangent vector normal to
// the sphere there. The normal may point inwards.
type Contact struct {
	Sphere cga.DualSphere
	Point  cga.Point
	Tnv    cga.Pair
}

// NewContactPlane is the contact of p with a dual plane.
func NewContactPlane(p cga.Point, plane cga.DualSphere) Contact {
	return Contact{
		Sphere: plane,
		Point:  p,
		Tnv:    cga.Pair{Multivector: p.Inner(plane.Dual()).Dual().Grade(2)},
	}
}

// NewContactSphere is the contact of p with a dual sphere.
func NewContactSphere(p cga.Point, s cga.DualSphere) Contact {
	return Contact{
		Sphere: s,
		Point:  p,
		Tnv:    cga.TangentOn(s.Sphere(), p).Dual(),
	}
}

// NewContactProjected plunges from p on source orthogonally into target.
func NewContactProjected(p cga.Point, source, target cga.DualSphere) Contact {
	tnv := cga.TangentOn(source.Sphere(), p).Dual()
	return plunge(tnv, p, target)
}

// NewContactFrom plunges along the normal of c into target.
func NewContactFrom(c Contact, target cga.DualSphere) Contact {
	return plunge(c.Tnv, c.Point, target)
}

// plunge follows the circle leaving tnv that cuts target at right angles. Of
// the two cuts the one nearest from is kept; a flat target is cut once.
func plunge(tnv cga.Pair, from cga.Point, target cga.DualSphere) (c Contact) {
	var (
		orth = target.Wedge(tnv.Multivector).Dual().Grade(2)
		pair = cga.Pair{Multivector: orth.Wedge(target.Multivector).Dual().Grade(2)}
	)
	c.Sphere = target
	if target.IsFlat(tolerance) {
		c.Point = cga.FlatPointLocation(pair)
	} else {
		a, b := cga.SplitPair(pair)
		c.Point = a
		if r3.Norm2(r3.Sub(b.Pos(), from.Pos())) < r3.Norm2(r3.Sub(a.Pos(), from.Pos())) {
			c.Point = b
		}
	}
	c.Tnv = cga.TangentOn(target.Sphere(), c.Point).Dual()
	return
}

// Bitan is the tangent bivector dual to the normal.
func (c Contact) Bitan() cga.Circle { return c.Tnv.Undual() }

// Vec is the unit direction of the normal.
func (c Contact) Vec() r3.Vec {
	d := cga.Direction(c.Tnv.Multivector)
	if n := r3.Norm(d); n != 0 {
		d = r3.Scale(1/n, d)
	}
	return d
}

// Biv is the Euclidean bivector normal to Vec.
func (c Contact) Biv() cga.Multivector {
	return cga.Vec(c.Vec()).Mul(cga.Blade(1, cga.E1|cga.E2|cga.E3)).Grade(2)
}
