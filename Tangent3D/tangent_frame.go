package Tangent3D

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gotangent/cga"
)

const tolerance = cga.DefaultTolerance

// TangentFrame keeps a frame's axes as tangent vectors (null pairs), their
// dual tangent bivectors and the coordinate surface of each axis.
type TangentFrame struct {
	Frame
	Sphere [3]cga.Sphere // Coordinate surfaces through the frame point
	Tan    [3]cga.Pair
	Bitan  [3]cga.Circle
}

// NewTangentFrame stores f as tangents.
func NewTangentFrame(f Frame) (tf TangentFrame) {
	tf.Frame = f
	tf.Store()
	return
}

// NewTangentFrameAt builds the frame at p whose coordinate surfaces pass
// through p and hold the tangent bivectors of rel.
func NewTangentFrameAt(p cga.Point, rel TangentFrame) (tf TangentFrame) {
	tf.Set(p, rel)
	return
}

// Store rebuilds tangents from the rigid frame. The coordinate surfaces are
// the planes normal to each axis.
func (tf *TangentFrame) Store() *TangentFrame {
	tf.Tan = [3]cga.Pair{tf.TX(), tf.TY(), tf.TZ()}
	for j := range tf.Tan {
		tf.Bitan[j] = tf.Tan[j].Undual()
		tf.Sphere[j] = cga.Carrier(tf.Bitan[j])
	}
	return tf
}

// Set moves the frame to p. Each surface is the sphere through p holding the
// matching tangent bivector of rel; the new tangents are the normals of those
// surfaces at p. A tangent may come back reversed; Flip restores it.
func (tf *TangentFrame) Set(p cga.Point, rel TangentFrame) {
	tf.Frame = Frame{Pos: p.Pos(), Rot: rel.Rot}
	for j := range tf.Tan {
		tf.Sphere[j] = cga.Sphere{Multivector: rel.Bitan[j].Wedge(p.Multivector)}
		tf.Bitan[j] = cga.TangentOn(tf.Sphere[j], p)
		tf.Tan[j] = tf.Bitan[j].Dual()
	}
}

// Flip reverses the idx'th tangent.
func (tf *TangentFrame) Flip(idx int) *TangentFrame {
	tf.Tan[idx] = tf.Tan[idx].Neg()
	tf.Bitan[idx] = cga.Circle{Multivector: tf.Bitan[idx].Scale(-1)}
	return tf
}

// Unit is a copy with unit tangents and unit weight surfaces.
func (tf TangentFrame) Unit() TangentFrame {
	u := tf
	for j := range u.Tan {
		u.Sphere[j] = tf.Sphere[j].Unit(tolerance)
		u.Tan[j] = cga.NormalizePair(tf.Tan[j])
		u.Bitan[j] = u.Tan[j].Undual()
	}
	return u
}

// CalcCurve is the edge where two coordinate surfaces meet. Every valid index
// yields the meet of the x and y surfaces.
func (tf TangentFrame) CalcCurve(idx int) (c cga.Circle) {
	switch idx {
	case 0, 1, 2:
		c.Multivector = tf.Sphere[0].Dual().Wedge(tf.Sphere[1].Dual()).Undual().Grade(3)
	}
	return
}

func (tf TangentFrame) dir(idx int) r3.Vec {
	d := cga.Direction(tf.Tan[idx].Multivector)
	if n := r3.Norm(d); n != 0 {
		d = r3.Scale(1/n, d)
	}
	return d
}

func (tf TangentFrame) XDir() r3.Vec { return tf.dir(0) }
func (tf TangentFrame) YDir() r3.Vec { return tf.dir(1) }
func (tf TangentFrame) ZDir() r3.Vec { return tf.dir(2) }

func (tf TangentFrame) curve(amts [3]float64) cga.Versor {
	var b cga.Pair
	for j, a := range amts {
		if a != 0 {
			b = b.Plus(tf.Tan[j].Scaled(a))
		}
	}
	return cga.Boost(b.Scaled(-0.5))
}

// XCurve is the boost bending space by amt against the x tangent.
func (tf TangentFrame) XCurve(amt float64) cga.Versor { return tf.curve([3]float64{amt, 0, 0}) }
func (tf TangentFrame) YCurve(amt float64) cga.Versor { return tf.curve([3]float64{0, amt, 0}) }
func (tf TangentFrame) ZCurve(amt float64) cga.Versor { return tf.curve([3]float64{0, 0, amt}) }

// XYCurve bends against the x and y tangents together.
func (tf TangentFrame) XYCurve(amtX, amtY float64) cga.Versor {
	return tf.curve([3]float64{amtX, amtY, 0})
}

func (tf TangentFrame) XZCurve(amtX, amtZ float64) cga.Versor {
	return tf.curve([3]float64{amtX, 0, amtZ})
}

func (tf TangentFrame) YZCurve(amtY, amtZ float64) cga.Versor {
	return tf.curve([3]float64{0, amtY, amtZ})
}

func (tf TangentFrame) plane(idx int) cga.DualSphere {
	return cga.DualSphere{Multivector: cga.Carrier(tf.Bitan[idx]).Dual().Grade(1)}
}

// XSurfaceBoost is the constant x surface carried by b.
func (tf TangentFrame) XSurfaceBoost(b cga.Versor) cga.DualSphere { return tf.plane(0).Spin(b) }
func (tf TangentFrame) YSurfaceBoost(b cga.Versor) cga.DualSphere { return tf.plane(1).Spin(b) }
func (tf TangentFrame) ZSurfaceBoost(b cga.Versor) cga.DualSphere { return tf.plane(2).Spin(b) }

// XSurface is the constant x surface through the frame point with curvature
// amt.
func (tf TangentFrame) XSurface(amt float64) cga.DualSphere {
	return tf.plane(0).Unit(tolerance).Spin(tf.XCurve(amt))
}

func (tf TangentFrame) YSurface(amt float64) cga.DualSphere {
	return tf.plane(1).Unit(tolerance).Spin(tf.YCurve(amt))
}

func (tf TangentFrame) ZSurface(amt float64) cga.DualSphere {
	return tf.plane(2).Unit(tolerance).Spin(tf.ZCurve(amt))
}

func (tf TangentFrame) along(d r3.Vec, amt float64) cga.Point {
	return cga.NewPoint(r3.Add(tf.Pos, r3.Scale(amt, d)))
}

// XPoint is the point amt along the x direction.
func (tf TangentFrame) XPoint(amt float64) cga.Point { return tf.along(tf.XDir(), amt) }
func (tf TangentFrame) YPoint(amt float64) cga.Point { return tf.along(tf.YDir(), amt) }
func (tf TangentFrame) ZPoint(amt float64) cga.Point { return tf.along(tf.ZDir(), amt) }

// XBend is the frame dist along x after bending by amtY and amtZ.
func (tf TangentFrame) XBend(amtY, amtZ, dist float64) TangentFrame {
	pt := tf.XPoint(dist).Spin(tf.YZCurve(amtY, amtZ)).Null()
	return NewTangentFrameAt(pt, tf)
}

func (tf TangentFrame) YBend(amtX, amtZ, dist float64) TangentFrame {
	pt := tf.YPoint(dist).Spin(tf.XZCurve(amtX, amtZ)).Null()
	return NewTangentFrameAt(pt, tf)
}

func (tf TangentFrame) ZBend(amtX, amtY, dist float64) TangentFrame {
	pt := tf.ZPoint(dist).Spin(tf.XYCurve(amtX, amtY)).Null()
	return NewTangentFrameAt(pt, tf)
}

// XClose finds the fourth frame on the circle through this frame, pa and pb
// using the constant x surface of curvature amt.
func (tf TangentFrame) XClose(amt float64, pa, pb cga.Point) TangentFrame {
	return tf.CircleClose(tf.XSurface(amt), pa, pb)
}

func (tf TangentFrame) YClose(amt float64, pa, pb cga.Point) TangentFrame {
	return tf.CircleClose(tf.YSurface(amt), pa, pb)
}

func (tf TangentFrame) ZClose(amt float64, pa, pb cga.Point) TangentFrame {
	return tf.CircleClose(tf.ZSurface(amt), pa, pb)
}

// other picks the point of the pair that is not the frame position.
func (tf TangentFrame) other(pair cga.Pair) cga.Point {
	var (
		pt     = tf.Point()
		ta, tb = cga.SplitPair(pair)
	)
	if cga.NearZero(pt.ScalarProduct(ta.Multivector), tolerance) {
		return tb
	}
	return ta
}

// CircleClose cuts the circle through the frame position, pa and pb with s
// and moves to the cut that is not the current position.
func (tf TangentFrame) CircleClose(s cga.DualSphere, pa, pb cga.Point) TangentFrame {
	var (
		cir  = cga.CircleThrough(tf.Point(), pa, pb)
		pair = cga.MeetSphereCircle(s, cir)
	)
	return NewTangentFrameAt(tf.other(pair), tf)
}

// Close finds the corner opposite this frame given the frames on two circles
// through it: one through ta and tb, one through tc and td.
func (tf TangentFrame) Close(ta, tb, tc, td TangentFrame) TangentFrame {
	var (
		pt   = tf.Point()
		cir  = cga.CircleThrough(pt, ta.Point(), tb.Point())
		cir2 = cga.CircleThrough(pt, tc.Point(), td.Point())
		pair = cga.MeetSphereCircle(cga.Surround(cir), cir2)
	)
	return NewTangentFrameAt(tf.other(pair), tf)
}
