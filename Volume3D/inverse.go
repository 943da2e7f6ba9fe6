package Volume3D

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gotangent/cga"
)

type Face uint8

const (
	LEFT   Face = iota // u = 0
	RIGHT              // u = 1
	BOTTOM             // v = 0
	TOP                // v = 1
	BACK               // w = 0
	FRONT              // w = 1
)

func (f Face) String() string {
	switch f {
	case LEFT:
		return "LEFT"
	case RIGHT:
		return "RIGHT"
	case BOTTOM:
		return "BOTTOM"
	case TOP:
		return "TOP"
	case BACK:
		return "BACK"
	case FRONT:
		return "FRONT"
	}
	return "UNKNOWN"
}

func ParseFace(s string) (f Face, ok bool) {
	for f = LEFT; f <= FRONT; f++ {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

// Coord is a normalized volume coordinate.
type Coord struct {
	U, V, W float64
}

// free are the two coordinates that vary over the face.
func (f Face) free() (a, b int) {
	switch f {
	case LEFT, RIGHT:
		return 1, 2
	case BOTTOM, TOP:
		return 0, 2
	}
	return 0, 1
}

func (c Coord) array() [3]float64 { return [3]float64{c.U, c.V, c.W} }

func coordOf(x [3]float64) Coord { return Coord{U: x[0], V: x[1], W: x[2]} }

// sweep is the parameter along gen of the surface through p, measured from
// base.
func (tv *TVolume) sweep(p cga.Point, gen cga.Pair, base cga.DualSphere) float64 {
	var (
		s     = p.Inner(gen.Multivector)
		ratio = cga.Versor{Multivector: s.Div(base.Scale(tv.cfg.sign())).TUnit()}
	)
	// Two roots; the near one has a positive scalar part
	if ratio.Scalar() < 0 {
		ratio = cga.Versor{Multivector: ratio.Scale(-1)}
	}
	return cga.Ratio(cga.Log(ratio, false).Scaled(0.5).Multivector, gen.Multivector, tv.cfg.tol())
}

// InverseMapping recovers the coordinate of a point on the given face. The
// coordinate fixed by the face is exact. The other two start from the sweep
// of the coordinate surfaces through p and are refined against the mapping
// until the origin corner is carried onto p.
func (tv *TVolume) InverseMapping(p cga.Point, face Face) (c Coord) {
	if face > FRONT {
		return
	}
	return tv.refine(p, face, tv.estimate(p, face))
}

func (tv *TVolume) estimate(p cga.Point, face Face) (c Coord) {
	var (
		f = tv.frames
		g = tv.gens
	)
	switch face {
	case LEFT:
		c.U = 0
		c.V = tv.sweep(p, g[DVWU0], f[CornerOrigin].Svw)
		c.W = tv.sweep(p, g[DWVU0], f[CornerOrigin].Swv)
	case RIGHT:
		c.U = 1
		c.V = tv.sweep(p, g[DVWU1], f[CornerU].Svw)
		c.W = tv.sweep(p, g[DWVU1], f[CornerU].Swv)
	case BOTTOM:
		c.U = tv.sweep(p, g[DUWV0], f[CornerOrigin].Suw)
		c.V = 0
		c.W = tv.sweep(p, g[DWUV0], f[CornerOrigin].Swu)
	case TOP:
		c.U = tv.sweep(p, g[DUWV1], f[CornerV].Suw)
		c.V = 1
		c.W = tv.sweep(p, g[DWUV1], f[CornerV].Swu)
	case BACK:
		c.U = tv.sweep(p, g[DUVW0], f[CornerOrigin].Suv)
		c.V = tv.sweep(p, g[DVUW0], f[CornerOrigin].Svu)
		c.W = 0
	case FRONT:
		c = tv.inverseFront(p)
	}
	return
}

// inverseFront compares the tangent generators of the surfaces through p
// with those reaching the far edges of the front face.
func (tv *TVolume) inverseFront(p cga.Point) Coord {
	var (
		f    = tv.frames
		wf   = f[CornerW]
		cfg  = tv.cfg
		tol  = cfg.tol()
		neg  = cga.Point{Multivector: p.Scale(-cfg.sign())}
		sv   = cfg.normalize(neg.Inner(tv.gens[DVUW1].Multivector))
		su   = cfg.normalize(neg.Inner(tv.gens[DUVW1].Multivector))
		svt  = cga.Pair{Multivector: sv.Wedge(p.Multivector)}
		sut  = cga.Pair{Multivector: su.Wedge(p.Multivector)}
		orig = func(g cga.Pair) cga.Multivector { return cga.No.Inner(g.Multivector) }
	)
	var (
		vpair  = orig(cfg.calcGen(wf.Tv, svt, wf.Svu, sv))
		vpair2 = orig(cfg.calcGen(wf.Tv, f[CornerVW].Tv, wf.Svu, f[CornerVW].Svu))
		upair  = orig(cfg.calcGen(wf.Tu, sut, wf.Suv, su))
		upair2 = orig(cfg.calcGen(wf.Tu, f[CornerUW].Tu, wf.Suv, f[CornerUW].Suv))
	)
	return Coord{
		U: cga.Ratio(upair, upair2, tol),
		V: cga.Ratio(vpair, vpair2, tol),
		W: 1,
	}
}

const maxRefine = 16

// refine moves the free coordinates of c until the origin corner mapped at c
// lands on p. A start that does not get there is retried from the middle of
// the face and the closer of the two is kept.
func (tv *TVolume) refine(p cga.Point, face Face, c Coord) Coord {
	var (
		tol    = tv.cfg.tol()
		a, b   = face.free()
		x      = c.array()
		target = p.Pos()
		origin = cga.NewPoint(r3.Vec{})
		miss   = func(y, ab []float64) {
			q := x
			q[a], q[b] = ab[0], ab[1]
			d := r3.Sub(origin.Spin(tv.CalcMappingAt(q[0], q[1], q[2])).Pos(), target)
			y[0], y[1], y[2] = d.X, d.Y, d.Z
		}
		best     = []float64{x[a], x[b]}
		bestMiss = math.Inf(1)
	)
	for _, start := range [][]float64{{x[a], x[b]}, {0.5, 0.5}} {
		ab, m := gaussNewton(miss, start, tol)
		if m < bestMiss {
			best, bestMiss = ab, m
		}
		if bestMiss <= tol {
			break
		}
	}
	x[a], x[b] = best[0], best[1]
	return coordOf(x)
}

// gaussNewton drives |f(x)| for f from R² to R³ below tol, halving each step
// until it reduces the miss. It returns the last x and its miss.
func gaussNewton(f func(y, x []float64), x0 []float64, tol float64) (x []float64, miss float64) {
	var (
		y    = make([]float64, 3)
		yt   = make([]float64, 3)
		xt   = make([]float64, 2)
		jac  = mat.NewDense(3, 2, nil)
		step mat.VecDense
	)
	x = append([]float64(nil), x0...)
	f(y, x)
	miss = floats.Norm(y, 2)
	for it := 0; it < maxRefine && miss > tol; it++ {
		fd.Jacobian(jac, f, x, &fd.JacobianSettings{Formula: fd.Central})
		if err := step.SolveVec(jac, mat.NewVecDense(3, y)); err != nil {
			return
		}
		improved := false
		for h := 1.; h > 1./256 && !improved; h /= 2 {
			floats.AddScaledTo(xt, x, -h, step.RawVector().Data)
			f(yt, xt)
			if m := floats.Norm(yt, 2); m < miss {
				copy(x, xt)
				copy(y, yt)
				miss, improved = m, true
			}
		}
		if !improved {
			return
		}
	}
	return
}
