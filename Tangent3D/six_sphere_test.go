package Tangent3D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gotangent/cga"
)

func TestAccumulateCurvature(t *testing.T) {
	assert.Equal(t, 0., AccumulateCurvature(0, 3))
	assert.InDelta(t, -1., AccumulateCurvature(0.5, 1), tol)
	assert.InDelta(t, 1./3, AccumulateCurvature(-0.5, 1), tol)
	assert.InDelta(t, -1/(1/0.08-1.5), AccumulateCurvature(0.08, 1.5), tol)
}

func TestSixSphereFlat(t *testing.T) {
	ss := NewSixSphere(Frame{})
	assert.Equal(t, 1., ss.LengthY)
	ss.Set(0, 0, 0, 0, 0, 0, 2, 3, 4)
	// Zero curvature gives the corners of a box
	assertVec(t, r3.Vec{X: 2}, ss.X().Pos)
	assertVec(t, r3.Vec{Y: 3}, ss.Y().Pos)
	assertVec(t, r3.Vec{Z: 4}, ss.Z().Pos)
	assertVec(t, r3.Vec{X: 2, Y: 3}, ss.XY(0).Pos)
	assertVec(t, r3.Vec{X: 2, Z: 4}, ss.ZX(0).Pos)
	assertVec(t, r3.Vec{Y: 3, Z: 4}, ss.ZY(0).Pos)
	assertVec(t, r3.Vec{X: 2, Y: 3, Z: 4}, ss.XYZ(0, 0).Pos)

	// Moved frames keep the box
	ss = NewSixSphere(Frame{Pos: r3.Vec{X: 1, Y: 1, Z: 1}})
	assertVec(t, r3.Vec{X: 2, Y: 2, Z: 2}, ss.XYZ(0, 0).Pos)
}

func TestSixSphereCurved(t *testing.T) {
	ss := NewSixSphere(Frame{})
	ss.Set(0.1, -0.05, 0.08, 0.02, -0.06, 0.04, 1.5, 1, 2)
	assert.Equal(t, 0.1, ss.CYX())
	assert.Equal(t, -0.05, ss.CZX())
	assert.Equal(t, 0.08, ss.CXY())
	assert.Equal(t, 0.02, ss.CZY())
	assert.Equal(t, -0.06, ss.CXZ())
	assert.Equal(t, 0.04, ss.CYZ())

	var (
		o  = ss.Frame.Point()
		x  = ss.X()
		y  = ss.Y()
		xy = ss.XY(0)
	)
	// The x+y corner closes the circle through the origin, x and y on the
	// accumulated x surface
	cir := cga.CircleThrough(o, x.Point(), y.Point())
	assert.True(t, xy.Point().Wedge(cir.Multivector).IsZero(1.e-8))
	s := x.XSurface(AccumulateCurvature(ss.CXY(), ss.LengthX))
	assert.InDelta(t, 0., s.Side(xy.Point()), 1.e-8)
	assert.Greater(t, r3.Norm(r3.Sub(xy.Pos, x.Pos)), 0.5)

	// The far corner lies on both circles used to close it
	var (
		xyz = ss.XYZ(0, 0)
		c1  = cga.CircleThrough(xy.Point(), x.Point(), ss.ZX(0).Point())
		c2  = cga.CircleThrough(xy.Point(), y.Point(), ss.ZY(0).Point())
	)
	assert.InDelta(t, 0., cga.Surround(c1).Side(xyz.Point()), 1.e-8)
	assert.True(t, xyz.Point().Wedge(c2.Multivector).IsZero(1.e-8))
	assert.InDelta(t, 1.43099482455, xyz.Pos.X, 1.e-6)
	assert.InDelta(t, 1.03188090228, xyz.Pos.Y, 1.e-6)
	assert.InDelta(t, 2.05077954079, xyz.Pos.Z, 1.e-6)

	// Setters feed the corner frames
	ss.SetCXY(0)
	ss.SetCYX(0)
	ss.SetCZX(0)
	assertVec(t, r3.Vec{X: 1.5}, ss.X().Pos)
	assert.Equal(t, 0., ss.CXY())
}

func TestContact(t *testing.T) {
	var (
		unit = cga.NewDualSphere(r3.Vec{}, 1)
		p    = cga.NewPoint(r3.Vec{X: 1})
	)
	c := NewContactSphere(p, unit)
	assertVec(t, r3.Vec{X: 1}, c.Vec())
	assertVec(t, r3.Vec{X: 1}, cga.Location(c.Tnv.Multivector).Pos())
	assert.Equal(t, 1., c.Biv()[cga.E2|cga.E3])
	assert.True(t, c.Bitan().Dual().Sub(c.Tnv.Multivector).IsZero(tol))

	pl := NewContactPlane(cga.NewPoint(r3.Vec{X: 1, Y: 1, Z: 2}), cga.NewDualPlane(r3.Vec{Z: 1}, 2))
	assertVec(t, r3.Vec{Z: 1}, pl.Vec())
	assertVec(t, r3.Vec{X: 1, Y: 1, Z: 2}, cga.Location(pl.Tnv.Multivector).Pos())

	// Plunging into a concentric sphere keeps the nearer cut
	big := cga.NewDualSphere(r3.Vec{}, 2)
	pr := NewContactProjected(p, unit, big)
	assertVec(t, r3.Vec{X: 2}, pr.Point.Pos())
	assertVec(t, r3.Vec{X: 1}, pr.Vec())
	assert.Equal(t, big, pr.Sphere)
	fr := NewContactFrom(c, big)
	assertVec(t, pr.Point.Pos(), fr.Point.Pos())

	// Off center targets are cut on their surface
	off := cga.NewDualSphere(r3.Vec{Y: 1}, 3)
	pr = NewContactProjected(p, unit, off)
	assertVec(t, r3.Vec{X: 2.6470588235294117, Y: -0.4117647058823529}, pr.Point.Pos())
	assert.InDelta(t, 0., off.Side(pr.Point), 1.e-8)

	// A flat target has one cut
	pr = NewContactProjected(p, unit, cga.NewDualPlane(r3.Vec{X: 1}, 3))
	assertVec(t, r3.Vec{X: 3}, pr.Point.Pos())
}
