package cga

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Exp exponentiates a 2-blade. The sign of B² selects a hyperbolic (boost),
// elliptic (rotation) or null (translation, transversion) versor.
func Exp(b Pair) Versor {
	sq := b.ScalarProduct(b.Multivector)
	switch {
	case math.Abs(sq) <= DefaultTolerance:
		return Versor{Scalar(1).Add(b.Multivector)}
	case sq > 0:
		n := math.Sqrt(sq)
		return Versor{Scalar(math.Cosh(n)).Add(b.Scale(math.Sinh(n) / n))}
	default:
		n := math.Sqrt(-sq)
		return Versor{Scalar(math.Cos(n)).Add(b.Scale(math.Sin(n) / n))}
	}
}

// Log is the generator with Exp(Log(r)) = r for a normalized scalar+2-blade
// versor. A boost with negative scalar part is negated first. For a rotation,
// flip selects the complementary arc reaching the same end.
func Log(r Versor, flip bool) Pair {
	u := r.TUnit()
	s := u.Scalar()
	b := u.Grade(2)
	sq := b.ScalarProduct(b)
	switch {
	case math.Abs(sq) <= DefaultTolerance:
		if s == 0 {
			return Pair{b}
		}
		return Pair{b.Scale(1 / s)}
	case sq > 0:
		if s < 0 {
			b = b.Scale(-1)
		}
		n := math.Sqrt(sq)
		return Pair{b.Scale(math.Asinh(n) / n)}
	default:
		n := math.Sqrt(-sq)
		theta := math.Atan2(n, s)
		if flip {
			theta -= math.Pi
		}
		return Pair{b.Scale(theta / n)}
	}
}

// Boost is Exp of a tangent (or any) generator.
func Boost(t Pair) Versor { return Exp(t) }

// Translator moves points by t: 1 - ½ t ni.
func Translator(t r3.Vec) Versor {
	return Versor{Scalar(1).Add(Vec(t).Wedge(Ni).Scale(-0.5))}
}

// Rotor is the rotation of the unit quaternion q.
func Rotor(q quat.Number) Versor {
	var (
		e1, e2, e3 = Blade(1, E1), Blade(1, E2), Blade(1, E3)
		r          = Scalar(q.Real)
	)
	r = r.Sub(e2.Wedge(e3).Scale(q.Imag))
	r = r.Sub(e3.Wedge(e1).Scale(q.Jmag))
	r = r.Sub(e1.Wedge(e2).Scale(q.Kmag))
	return Versor{r}
}
