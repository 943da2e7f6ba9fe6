package Volume3D

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gotangent/cga"
)

// TFrame is an orthonormal triple of tangents at one point together with the
// six coordinate surfaces through that point. Spq is the surface of constant
// p seen while moving in direction q.
type TFrame struct {
	Tu, Tv, Tw cga.Pair
	Svu        cga.DualSphere
	Swu        cga.DualSphere
	Suv        cga.DualSphere
	Swv        cga.DualSphere
	Suw        cga.DualSphere
	Svw        cga.DualSphere
	cfg        Config
}

// NewTFrame is the canonical frame at the origin with flat surfaces.
func NewTFrame(cfg Config) TFrame {
	var (
		o = r3.Vec{}
	)
	return NewTFrameFrom(
		cga.TangentAt(r3.Vec{X: 1}, o),
		cga.TangentAt(r3.Vec{Y: 1}, o),
		cga.TangentAt(r3.Vec{Z: 1}, o),
		cfg)
}

func NewTFrameFrom(tu, tv, tw cga.Pair, cfg Config) (tf TFrame) {
	tf = TFrame{Tu: tu, Tv: tv, Tw: tw, cfg: cfg}
	tf.FlatSurfaces()
	return
}

func (tf TFrame) Config() Config { return tf.cfg }

// FlatSurfaces resets every surface to the plane normal to its tangent.
func (tf *TFrame) FlatSurfaces() {
	tf.Svu, tf.Svw = tf.plane(tf.Tv), tf.plane(tf.Tv)
	tf.Suv, tf.Suw = tf.plane(tf.Tu), tf.plane(tf.Tu)
	tf.Swu, tf.Swv = tf.plane(tf.Tw), tf.plane(tf.Tw)
}

func (tf TFrame) plane(t cga.Pair) cga.DualSphere {
	return cga.DualSphere{Multivector: cga.Ni.Scale(tf.cfg.sign()).Inner(t.Multivector)}
}

// bend perturbs the plane normal to t into a sphere of curvature k through
// the frame's point.
func (tf TFrame) bend(t cga.Pair, k float64) cga.DualSphere {
	p := tf.plane(t)
	return tf.cfg.normalize(p.Mul(t.Scale(k).Add(cga.Scalar(1))))
}

// USurf is the surface of constant u with curvature ku.
func (tf TFrame) USurf(ku float64) cga.DualSphere { return tf.bend(tf.Tu, ku) }

// VSurf is the surface of constant v with curvature kv.
func (tf TFrame) VSurf(kv float64) cga.DualSphere { return tf.bend(tf.Tv, kv) }

// WSurf is the surface of constant w with curvature kw.
func (tf TFrame) WSurf(kw float64) cga.DualSphere { return tf.bend(tf.Tw, kw) }

func (tf *TFrame) Surfaces(kvu, kwu, kuv, kwv, kuw, kvw float64) {
	tf.Svu = tf.VSurf(kvu)
	tf.Swu = tf.WSurf(kwu)
	tf.Suv = tf.USurf(kuv)
	tf.Swv = tf.WSurf(kwv)
	tf.Suw = tf.USurf(kuw)
	tf.Svw = tf.VSurf(kvw)
}

func unitDir(t cga.Pair) r3.Vec {
	d := cga.Direction(t.Multivector)
	n := r3.Norm(d)
	if n == 0 {
		return d
	}
	return r3.Scale(1/n, d)
}

func (tf TFrame) Du() r3.Vec { return unitDir(tf.Tu) }
func (tf TFrame) Dv() r3.Vec { return unitDir(tf.Tv) }
func (tf TFrame) Dw() r3.Vec { return unitDir(tf.Tw) }

func (tf TFrame) Point() cga.Point { return cga.Location(tf.Tu.Multivector) }

func (tf TFrame) Pos() r3.Vec { return tf.Point().Pos() }

// curve bends along two tangents and then moves dist along dir.
func curve(t1, t2 cga.Pair, k1, k2 float64, dir r3.Vec, dist float64) cga.Versor {
	b := t1.Scaled(k1).Plus(t2.Scaled(k2)).Scaled(-0.5)
	return cga.Boost(b).Compose(cga.Translator(r3.Scale(dist, dir)))
}

// UC moves along the u curve, fusing the bends kvu and kwu.
func (tf TFrame) UC(kvu, kwu, dist float64) cga.Versor {
	return curve(tf.Tv, tf.Tw, kvu, kwu, tf.Du(), dist)
}

// VC moves along the v curve, fusing the bends kuv and kwv.
func (tf TFrame) VC(kuv, kwv, dist float64) cga.Versor {
	return curve(tf.Tu, tf.Tw, kuv, kwv, tf.Dv(), dist)
}

// WC moves along the w curve, fusing the bends kuw and kvw.
func (tf TFrame) WC(kuw, kvw, dist float64) cga.Versor {
	return curve(tf.Tu, tf.Tv, kuw, kvw, tf.Dw(), dist)
}

// XF carries the frame by v. Each tangent is rebuilt with unit direction at
// its carried location; flipped axes are negated. The result has flat
// surfaces.
func (tf TFrame) XF(v cga.Versor, flipU, flipV, flipW bool) TFrame {
	carry := func(t cga.Pair, flip bool) cga.Pair {
		t = cga.NormalizePair(t.Spin(v))
		if flip {
			t = t.Neg()
		}
		return t
	}
	return NewTFrameFrom(carry(tf.Tu, flipU), carry(tf.Tv, flipV), carry(tf.Tw, flipW), tf.cfg)
}

func (tf *TFrame) UFlip() { tf.Tu = tf.Tu.Neg() }
func (tf *TFrame) VFlip() { tf.Tv = tf.Tv.Neg() }
func (tf *TFrame) WFlip() { tf.Tw = tf.Tw.Neg() }

// CalcGen2 is the generator taking beg to end, with the root chosen by the
// side of end that p is on.
func CalcGen2(p cga.Point, beg, end cga.DualSphere) cga.Pair {
	ratio := cga.Versor{Multivector: end.Div(beg.Multivector).TUnit()}
	if ratio.Scalar() < 0 && end.Side(p) > 0 {
		ratio = cga.Versor{Multivector: ratio.Scale(-1)}
	}
	return cga.Log(ratio, false).Scaled(0.5)
}

// CalcGen is the generator whose exponential takes the surface beg, holding
// tangent p1, to the surface end, holding p2. The ratio end/beg has two
// roots. The root is negated when p1 and p2 disagree in orientation against
// their surfaces, and the complementary arc is taken when p1 lies on the
// positive side of end. Surfaces are taken in the Sign 1 orientation.
func CalcGen(p1, p2 cga.Pair, beg, end cga.DualSphere, tol float64) cga.Pair {
	var (
		ratio = cga.Versor{Multivector: end.Div(beg.Multivector).TUnit()}
		flipA = beg.Inner(p1.Multivector).No() > 0
		flipB = end.Inner(p2.Multivector).No() > 0
		flipC = end.Side(cga.Location(p1.Multivector)) > tol
	)
	if flipA != flipB {
		ratio = cga.Versor{Multivector: ratio.Scale(-1)}
	}
	return cga.Log(ratio, flipC).Scaled(0.5)
}

func (tf TFrame) calcGen(p1, p2 cga.Pair, beg, end cga.DualSphere) cga.Pair {
	return tf.cfg.calcGen(p1, p2, beg, end)
}

// DUV sweeps the v direction curve over along u to o.
func (tf TFrame) DUV(o TFrame) cga.Pair { return tf.calcGen(tf.Tu, o.Tu, tf.Suv, o.Suv) }

// DUW sweeps the w direction curve over along u to o.
func (tf TFrame) DUW(o TFrame) cga.Pair { return tf.calcGen(tf.Tu, o.Tu, tf.Suw, o.Suw) }

// DVU sweeps the u direction curve up along v to o.
func (tf TFrame) DVU(o TFrame) cga.Pair { return tf.calcGen(tf.Tv, o.Tv, tf.Svu, o.Svu) }

// DVW sweeps the w direction curve up along v to o.
func (tf TFrame) DVW(o TFrame) cga.Pair { return tf.calcGen(tf.Tv, o.Tv, tf.Svw, o.Svw) }

// DWU sweeps the u direction curve in along w to o.
func (tf TFrame) DWU(o TFrame) cga.Pair { return tf.calcGen(tf.Tw, o.Tw, tf.Swu, o.Swu) }

// DWV sweeps the v direction curve in along w to o.
func (tf TFrame) DWV(o TFrame) cga.Pair { return tf.calcGen(tf.Tw, o.Tw, tf.Swv, o.Swv) }

// Surface returns the six surfaces in the order Svu, Swu, Suv, Swv, Suw, Svw.
func (tf TFrame) Surface() [6]cga.DualSphere {
	return [6]cga.DualSphere{tf.Svu, tf.Swu, tf.Suv, tf.Swv, tf.Suw, tf.Svw}
}

// IsFinite reports whether every tangent and surface is free of NaN and Inf.
func (tf TFrame) IsFinite() bool {
	for _, t := range []cga.Pair{tf.Tu, tf.Tv, tf.Tw} {
		if !t.IsFinite() {
			return false
		}
	}
	for _, s := range tf.Surface() {
		if !s.IsFinite() {
			return false
		}
	}
	return true
}
