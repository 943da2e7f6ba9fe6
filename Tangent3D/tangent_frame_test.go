package Tangent3D

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gotangent/cga"
)

const tol = 1.e-9

var approx = cmpopts.EquateApprox(0, tol)

func assertVec(t *testing.T, want, got r3.Vec) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("vector mismatch (-want +got):\n%s", diff)
	}
}

func TestFrame(t *testing.T) {
	var f Frame
	assertVec(t, r3.Vec{X: 1}, f.X())
	assertVec(t, r3.Vec{Z: 1}, f.Z())
	assert.Equal(t, cga.Identity(), Frame{}.Versor().Compose(cga.Identity()))

	// Quarter turn about z, then moved
	s := math.Sin(math.Pi / 4)
	f = NewFrame(r3.Vec{X: 1, Y: 2, Z: 3}, quat.Number{Real: s, Kmag: s})
	assertVec(t, r3.Vec{Y: 1}, f.X())
	assertVec(t, r3.Vec{X: -1}, f.Y())
	assertVec(t, r3.Vec{Z: 1}, f.Z())
	assertVec(t, r3.Vec{Y: 1}, cga.Direction(f.TX().Multivector))
	assertVec(t, f.Pos, cga.Location(f.TZ().Multivector).Pos())

	v := f.Versor()
	assertVec(t, f.Pos, cga.NewPoint(r3.Vec{}).Spin(v).Pos())
	assertVec(t, r3.Vec{X: 1, Y: 3, Z: 3}, cga.NewPoint(r3.Vec{X: 1}).Spin(v).Pos())
}

func TestTangentFrame(t *testing.T) {
	tf := NewTangentFrame(Frame{})
	{
		assertVec(t, r3.Vec{X: 1}, tf.XDir())
		assertVec(t, r3.Vec{Y: 1}, tf.YDir())
		assertVec(t, r3.Vec{Z: 1}, tf.ZDir())
		assertVec(t, r3.Vec{Y: 2}, tf.YPoint(2).Pos())
		// Flat surfaces through the origin
		for j := 0; j < 3; j++ {
			assert.True(t, tf.plane(j).IsFlat(tol))
			assert.InDelta(t, 0., tf.plane(j).Side(tf.Point()), tol)
		}
	}
	// Curvature surfaces pass through the frame point with radius 1/k
	{
		for _, k := range []float64{0.5, -2} {
			for _, s := range []cga.DualSphere{tf.XSurface(k), tf.YSurface(k), tf.ZSurface(k)} {
				assert.InDelta(t, 1/(k*k), s.Radius2(), tol)
				assert.InDelta(t, 0., s.Side(tf.Point()), tol)
			}
		}
		assert.True(t, cga.ApproxEqual(tf.XSurface(0.5).Multivector,
			tf.XSurfaceBoost(tf.XCurve(0.5)).Multivector, tol))
		assert.True(t, tf.ZSurface(0).IsFlat(tol))
	}
	// Bending along x
	{
		x := tf.XBend(0, 0, 2)
		assertVec(t, r3.Vec{X: 2}, x.Pos)
		// The axis we moved along comes back reversed
		assertVec(t, r3.Vec{X: -1}, x.XDir())
		assertVec(t, r3.Vec{Y: 1}, x.YDir())
		assertVec(t, r3.Vec{Z: 1}, x.ZDir())
		x.Flip(0)
		assertVec(t, r3.Vec{X: 1}, x.XDir())

		// Curvature (ky, kz) puts the end on the circle of radius 1/|k| tangent
		// to x at the origin, centered along (0, ky, kz)
		var (
			ky, kz = 0.1, -0.05
			k2     = ky*ky + kz*kz
			c      = r3.Vec{Y: ky / k2, Z: kz / k2}
		)
		b := tf.XBend(ky, kz, 1.5)
		assert.InDelta(t, 1/k2, r3.Norm2(r3.Sub(b.Pos, c)), 1.e-8)
		assert.Greater(t, b.Pos.Y, 0.)
		assert.Less(t, b.Pos.Z, 0.)
	}
	// Unit copies
	{
		y := tf.YBend(0, 0, 3)
		u := y.Unit()
		assert.InDelta(t, 1., r3.Norm(cga.Direction(u.Tan[1].Multivector)), tol)
		assert.NotEqual(t, y.Tan[1], u.Tan[1])
		assertVec(t, y.Pos, u.Pos)
	}
	// Curves as meets of coordinate surfaces
	{
		line := tf.CalcCurve(0)
		assert.True(t, cga.NewPoint(r3.Vec{Z: 5}).Wedge(line.Multivector).IsZero(tol))
		assert.False(t, cga.NewPoint(r3.Vec{X: 1, Z: 5}).Wedge(line.Multivector).IsZero(tol))
		assert.Equal(t, line, tf.CalcCurve(2))
		assert.True(t, tf.CalcCurve(3).IsZero(0))
		z := tf.ZBend(0.2, 0.1, 1)
		assert.True(t, z.Point().Wedge(z.CalcCurve(1).Multivector).IsZero(tol))
	}
}

func TestCircleClose(t *testing.T) {
	var (
		tf = NewTangentFrame(Frame{}).XBend(0, 0, 2)
		o  = cga.NewPoint(r3.Vec{})
		pb = cga.NewPoint(r3.Vec{Y: 3})
	)
	// Flat: the fourth corner of the rectangle
	c := tf.XClose(0, o, pb)
	assertVec(t, r3.Vec{X: 2, Y: 3}, c.Pos)

	// Curved: the cut lies on the circle and on the surface, never at the start
	s := tf.XSurface(0.3)
	c = tf.CircleClose(s, o, pb)
	cir := cga.CircleThrough(tf.Point(), o, pb)
	assert.True(t, c.Point().Wedge(cir.Multivector).IsZero(1.e-8))
	assert.InDelta(t, 0., s.Side(c.Point()), 1.e-8)
	assert.Greater(t, r3.Norm(r3.Sub(c.Pos, tf.Pos)), 0.1)
}
