package cga

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1.e-9

func assertVec(t *testing.T, want, got r3.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}

func TestBladeProducts(t *testing.T) {
	e1, ep, em := Blade(1, E1), Blade(1, EP), Blade(1, EM)
	// Metric
	{
		assert.Equal(t, 1., e1.Mul(e1).Scalar())
		assert.Equal(t, 1., ep.Mul(ep).Scalar())
		assert.Equal(t, -1., em.Mul(em).Scalar())
		assert.Equal(t, -1., I.Mul(I).Scalar())
		assert.True(t, ApproxEqual(Scalar(1), I.Mul(IInv), tol))
	}
	// Null basis
	{
		assert.InDelta(t, 0., No.ScalarProduct(No), tol)
		assert.InDelta(t, 0., Ni.ScalarProduct(Ni), tol)
		assert.InDelta(t, -1., No.Inner(Ni).Scalar(), tol)
		assert.InDelta(t, 1., No.No(), tol)
		assert.InDelta(t, 1., Ni.Ni(), tol)
	}
	// Anticommuting basis vectors
	{
		e2 := Blade(1, E2)
		assert.True(t, ApproxEqual(e1.Wedge(e2), e2.Wedge(e1).Scale(-1), tol))
		assert.True(t, e1.Wedge(e1).IsZero(tol))
		assert.True(t, ApproxEqual(e1.Mul(e2), e1.Wedge(e2), tol))
	}
	// Duality round trip
	{
		x := Vector(1, 2, 3, 4, 5)
		assert.True(t, ApproxEqual(x, x.Dual().Undual(), tol))
		assert.Equal(t, 4, BladeGrade(x.Dual().nonZeroBlade()))
	}
}

func (a Multivector) nonZeroBlade() uint8 {
	for i, v := range a {
		if v != 0 {
			return uint8(i)
		}
	}
	return 0
}

func TestPoint(t *testing.T) {
	var (
		a = NewPoint(r3.Vec{X: 1, Y: 2, Z: 3})
		b = NewPoint(r3.Vec{X: 4, Y: 6, Z: 3})
	)
	assert.InDelta(t, 0., a.ScalarProduct(a.Multivector), tol)
	assert.InDelta(t, -0.5*25, a.ScalarProduct(b.Multivector), tol)
	assertVec(t, r3.Vec{X: 1, Y: 2, Z: 3}, a.Pos())
	assertVec(t, r3.Vec{X: 1, Y: 2, Z: 3}, Point{a.Scale(-3)}.Null().Pos())
}

func TestDualSphere(t *testing.T) {
	s := NewDualSphere(r3.Vec{X: 1}, 2)
	{
		assert.InDelta(t, 0., s.Side(NewPoint(r3.Vec{X: 3})), tol)
		assert.InDelta(t, 0., s.Side(NewPoint(r3.Vec{X: 1, Z: -2})), tol)
		assert.InDelta(t, 1.5, s.Side(NewPoint(r3.Vec{})), tol)
		assert.InDelta(t, 4., s.Radius2(), tol)
	}
	// Normalization keeps sign, truncates planes
	{
		n := DualSphere{s.Scale(-2)}.Normalize(tol)
		assert.InDelta(t, -1., n.No(), tol)
		assert.True(t, ApproxEqual(s.Scale(-1), n.Multivector, tol))

		pl := NewDualPlane(r3.Vec{Y: 1}, 2)
		assert.True(t, pl.IsFlat(tol))
		np := DualSphere{pl.Scale(3)}.Normalize(tol)
		assert.True(t, ApproxEqual(pl.Scale(3), np.Multivector, tol))
		assert.True(t, ApproxEqual(pl.Multivector, np.Unit(tol).Multivector, tol))
		assert.InDelta(t, 0., pl.Side(NewPoint(r3.Vec{X: 5, Y: 2, Z: -1})), tol)
	}
	// Direct and dual forms agree
	{
		assert.True(t, ApproxEqual(s.Multivector, s.Sphere().DualSphere().Multivector, tol))
	}
}

func TestVersorIdentity(t *testing.T) {
	var (
		id = Exp(Pair{})
		p  = NewPoint(r3.Vec{X: 1, Y: -2, Z: 0.5})
		s  = NewDualSphere(r3.Vec{Y: 1}, 3)
		tn = TangentAt(r3.Vec{Z: 1}, r3.Vec{X: 2})
	)
	assert.True(t, ApproxEqual(Identity().Multivector, id.Multivector, tol))
	assert.True(t, ApproxEqual(p.Multivector, p.Spin(id).Multivector, tol))
	assert.True(t, ApproxEqual(s.Multivector, s.Spin(id).Multivector, tol))
	assert.True(t, ApproxEqual(tn.Multivector, tn.Spin(id).Multivector, tol))
}

func TestTranslatorAndRotor(t *testing.T) {
	var (
		p  = NewPoint(r3.Vec{X: 1})
		tr = Translator(r3.Vec{X: 1, Y: 2, Z: 3})
		s  = math.Sqrt(0.5)
		rz = Rotor(quat.Number{Real: s, Kmag: s}) // 90° about z
	)
	assertVec(t, r3.Vec{X: 2, Y: 2, Z: 3}, p.Spin(tr).Pos())
	assertVec(t, r3.Vec{Y: 1}, p.Spin(rz).Pos())
	// Composition is a group action
	{
		seq := p.Spin(tr).Spin(rz)
		once := p.Spin(rz.Compose(tr))
		assert.True(t, ApproxEqual(seq.Multivector, once.Multivector, tol))
		assertVec(t, r3.Vec{X: -2, Y: 2, Z: 3}, once.Pos())
	}
	// Translating a plane shifts its offset
	{
		pl := NewDualPlane(r3.Vec{X: 1}, 0)
		assert.True(t, ApproxEqual(NewDualPlane(r3.Vec{X: 1}, 1).Multivector, pl.Spin(tr).Multivector, tol))
	}
}

func TestExpLog(t *testing.T) {
	e1, e2, ep, em := Blade(1, E1), Blade(1, E2), Blade(1, EP), Blade(1, EM)
	for _, b := range []Pair{
		{Vec(r3.Vec{X: 1, Y: 2}).Wedge(Ni).Scale(-0.5)}, // null
		{e1.Wedge(e2).Scale(0.7)},                       // elliptic
		{ep.Wedge(em).Scale(0.4)},                       // hyperbolic
		{e1.Wedge(em).Scale(-1.3)},                      // hyperbolic
	} {
		v := Exp(b)
		assert.InDelta(t, 1., math.Abs(v.ScalarProduct(v.Reverse())), tol)
		assert.True(t, ApproxEqual(b.Multivector, Log(v, false).Multivector, 1.e-8))
	}
	// The complementary arc reaches the same rotation
	{
		b := Pair{e1.Wedge(e2).Scale(0.7)}
		alt := Log(Exp(b), true)
		p := NewPoint(r3.Vec{X: 1, Y: 1})
		assert.True(t, ApproxEqual(p.Spin(Exp(b)).Multivector, p.Spin(Exp(alt)).Multivector, tol))
		assert.InDelta(t, 0.7-math.Pi, Ratio(alt.Multivector, e1.Wedge(e2), tol), 1.e-8)
	}
}

func TestRounds(t *testing.T) {
	// Tangents
	{
		d, at := r3.Vec{X: 0, Y: 3}, r3.Vec{X: 1, Y: 2, Z: -1}
		tn := TangentAt(d, at)
		assert.InDelta(t, 0., tn.ScalarProduct(tn.Multivector), tol)
		assertVec(t, at, Location(tn.Multivector).Pos())
		assertVec(t, d, Direction(tn.Multivector))
		nt := NormalizePair(Pair{tn.Scale(2.5)})
		assertVec(t, r3.Vec{Y: 1}, Direction(nt.Multivector))
		assertVec(t, at, Location(nt.Multivector).Pos())
		// The dual plane of a tangent passes through its point
		pl := DualSphere{Ni.Inner(tn.Multivector)}
		assert.InDelta(t, 0., pl.Side(NewPoint(at)), tol)
	}
	// Point pairs
	{
		a, b := NewPoint(r3.Vec{X: 1}), NewPoint(r3.Vec{Y: 2})
		pa, pb := SplitPair(Pair{a.Wedge(b.Multivector)})
		assertVec(t, a.Pos(), pa.Pos())
		assertVec(t, b.Pos(), pb.Pos())
		s := NewDualSphere(r3.Vec{X: 2}, 1)
		assertVec(t, r3.Vec{X: 2}, Location(s.Multivector).Pos())
	}
	// Planes meet in a point
	{
		pt := func(x, y, z float64) Point { return NewPoint(r3.Vec{X: x, Y: y, Z: z}) }
		px := PlaneThrough(pt(1, 0, 0), pt(1, 1, 0), pt(1, 0, 1))
		py := PlaneThrough(pt(0, 2, 0), pt(1, 2, 0), pt(0, 2, 1))
		pz := PlaneThrough(pt(0, 0, 3), pt(1, 0, 3), pt(0, 1, 3))
		assertVec(t, r3.Vec{X: 1, Y: 2, Z: 3}, MeetPlanes(px, py, pz).Pos())
	}
	// A sphere cuts a circle in two points
	{
		var (
			c = CircleThrough(NewPoint(r3.Vec{X: 1}), NewPoint(r3.Vec{Y: 1}), NewPoint(r3.Vec{X: -1}))
			s = NewDualPlane(r3.Vec{X: 1}, 0)
		)
		a, b := SplitPair(MeetSphereCircle(s, c))
		assert.InDelta(t, 1., math.Abs(a.Pos().Y), tol)
		assert.InDelta(t, 1., math.Abs(b.Pos().Y), tol)
		assert.InDelta(t, 0., a.Pos().Y+b.Pos().Y, tol)
		sur := Surround(c)
		assertVec(t, r3.Vec{}, Location(sur.Multivector).Pos())
		assert.InDelta(t, 1., DualSphere{sur.Scale(1 / sur.No())}.Radius2(), tol)
	}
}

func TestRatio(t *testing.T) {
	b := Vec(r3.Vec{Y: 1}).Wedge(Ni)
	assert.InDelta(t, 0.25, Ratio(b.Scale(0.25), b, tol), tol)
	assert.Equal(t, 0., Ratio(b.Scale(1.e-12), b, tol))
	assert.Equal(t, 0., Ratio(b, Multivector{}, tol))
	assert.True(t, Proportional(b.Scale(-3), b, tol))
	assert.False(t, Proportional(Vec(r3.Vec{X: 1}).Wedge(Ni), b, tol))
	assert.True(t, NearZero(-tol, tol))
	assert.False(t, NearZero(2*tol, tol))
	assert.False(t, NearZero(math.NaN(), tol))
}
