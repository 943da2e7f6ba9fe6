package Volume3D

import (
	"github.com/notargets/gotangent/cga"
)

// snapshot is the state of the surface construction between stages. Stages
// take it by value and return the next one.
type snapshot struct {
	cfg     Config
	k       [9]float64
	spacing [3]float64
	frames  [8]TFrame
	gens    [12]cga.Pair
}

type stage func(s snapshot) snapshot

func runStages(s snapshot, stages ...stage) snapshot {
	for _, st := range stages {
		s = st(s)
	}
	return s
}

func (tv *TVolume) snapshot() snapshot {
	return snapshot{cfg: tv.cfg, k: tv.k, spacing: tv.spacing, frames: tv.frames, gens: tv.gens}
}

func (tv *TVolume) commit(s snapshot) {
	tv.frames, tv.gens = s.frames, s.gens
}

// calcSurfaces derives every corner frame, surface and generator from the
// nine curvatures and three spacings. Frames are kept unflipped; Config.Flip
// only applies when a frame is read out.
func (tv *TVolume) calcSurfaces() {
	s := tv.snapshot()
	s.frames[CornerOrigin] = NewTFrame(s.cfg)
	tv.commit(runStages(s,
		originSurfaces,
		adjacentFrames,
		secondaryBends,
		orthogonalSurfaces,
		nearGenerators,
		diagonalFrames,
		farCorner,
		farGenerators,
	))
}

// curves are the versors along u, v and w from the origin frame.
func (s snapshot) curves() (uc, vc, wc cga.Versor) {
	var (
		tf = s.frames[CornerOrigin]
		k  = s.k
	)
	uc = tf.UC(k[KVU], k[KWU], s.spacing[0])
	vc = tf.VC(k[KUV], k[KWV], s.spacing[1])
	wc = tf.WC(k[KUW], k[KVW], s.spacing[2])
	return
}

func originSurfaces(s snapshot) snapshot {
	k := s.k
	s.frames[CornerOrigin].Surfaces(k[KVU], k[KWU], k[KUV], k[KWV], k[KUW], k[KVW])
	return s
}

func adjacentFrames(s snapshot) snapshot {
	var (
		uc, vc, wc = s.curves()
		tf         = s.frames[CornerOrigin]
	)
	s.frames[CornerU] = tf.XF(uc, false, false, false)
	s.frames[CornerV] = tf.XF(vc, false, false, false)
	s.frames[CornerW] = tf.XF(wc, false, false, false)
	return s
}

// secondaryBends builds the three surfaces bending the other way: top going
// right, right going forward, front going up.
func secondaryBends(s snapshot) snapshot {
	var (
		f = &s.frames
		k = s.k
	)
	f[CornerV].Svu = f[CornerV].VSurf(k[KV1U])
	f[CornerU].Suw = f[CornerU].USurf(k[KU1W])
	f[CornerW].Swv = f[CornerW].WSurf(k[KW1V])
	return s
}

// ortho is the surface through t's point orthogonal to known. It takes its
// orientation from known.
func (s snapshot) ortho(known cga.DualSphere, t cga.Pair) cga.DualSphere {
	return s.cfg.normalize(known.Inner(t.Multivector))
}

func orthogonalSurfaces(s snapshot) snapshot {
	f := &s.frames
	f[CornerU].Suv = s.ortho(f[CornerV].Svu, f[CornerU].Tu)
	f[CornerU].Swv = s.ortho(f[CornerV].Svu, f[CornerU].Tw)
	f[CornerW].Swu = s.ortho(f[CornerU].Suw, f[CornerW].Tw)
	f[CornerW].Svu = s.ortho(f[CornerU].Suw, f[CornerW].Tv)
	f[CornerV].Svw = s.ortho(f[CornerW].Swv, f[CornerV].Tv)
	f[CornerV].Suw = s.ortho(f[CornerW].Swv, f[CornerV].Tu)
	// Bottom going forward, back going right, left going up
	f[CornerU].Svw = s.ortho(f[CornerW].Swu, f[CornerU].Tv)
	f[CornerV].Swu = s.ortho(f[CornerU].Suv, f[CornerV].Tw)
	f[CornerW].Suv = s.ortho(f[CornerV].Svw, f[CornerW].Tu)
	return s
}

func nearGenerators(s snapshot) snapshot {
	var (
		f  = s.frames
		tf = f[CornerOrigin]
	)
	s.gens[DUVW0] = tf.DUV(f[CornerU])
	s.gens[DUWV0] = tf.DUW(f[CornerU])
	s.gens[DVWU0] = tf.DVW(f[CornerV])
	s.gens[DVUW0] = tf.DVU(f[CornerV])
	s.gens[DWUV0] = tf.DWU(f[CornerW])
	s.gens[DWVU0] = tf.DWV(f[CornerW])
	return s
}

func diagonalFrames(s snapshot) snapshot {
	f := &s.frames
	f[CornerUV] = f[CornerV].XF(cga.Boost(s.gens[DUVW0]), false, false, false)
	f[CornerVW] = f[CornerW].XF(cga.Boost(s.gens[DVWU0]), false, false, false)
	f[CornerUW] = f[CornerU].XF(cga.Boost(s.gens[DWUV0]), false, false, false)
	return s
}

// farPoint is where the top, front and right planes through the known
// corners meet.
func (s snapshot) farPoint() cga.Point {
	pt := func(c Corner) cga.Point { return s.frames[c].Point() }
	var (
		top   = cga.PlaneThrough(pt(CornerV), pt(CornerUV), pt(CornerVW))
		front = cga.PlaneThrough(pt(CornerW), pt(CornerVW), pt(CornerUW))
		right = cga.PlaneThrough(pt(CornerU), pt(CornerUW), pt(CornerUV))
	)
	return cga.MeetPlanes(top, front, right)
}

// farCorner fixes the surfaces through the far corner at the double axis
// corners and builds the far corner's frame from them.
func farCorner(s snapshot) snapshot {
	var (
		f  = &s.frames
		np = s.farPoint()
		th = func(t cga.Pair) cga.DualSphere {
			return s.cfg.normalize(np.Inner(t.Scale(s.cfg.sign())))
		}
		// tangent at np normal to the surface
		normal = func(sur cga.DualSphere) cga.Pair {
			return cga.NormalizePair(cga.Pair{Multivector: sur.Wedge(np.Multivector).Scale(s.cfg.sign())})
		}
	)
	f[CornerUV].Suw = th(f[CornerUV].Tu)
	f[CornerUV].Svw = th(f[CornerUV].Tv)
	f[CornerVW].Svu = th(f[CornerVW].Tv)
	f[CornerVW].Swu = th(f[CornerVW].Tw)
	f[CornerUW].Swv = th(f[CornerUW].Tw)
	f[CornerUW].Suv = th(f[CornerUW].Tu)

	far := NewTFrameFrom(
		normal(f[CornerUV].Suw),
		normal(f[CornerUV].Svw),
		normal(f[CornerVW].Swu),
		s.cfg)
	far.Suw, far.Svw = f[CornerUV].Suw, f[CornerUV].Svw
	far.Svu, far.Swu = f[CornerVW].Svu, f[CornerVW].Swu
	far.Swv, far.Suv = f[CornerUW].Swv, f[CornerUW].Suv
	f[CornerUVW] = far
	return s
}

func farGenerators(s snapshot) snapshot {
	f := s.frames
	s.gens[DUVW1] = f[CornerW].DUV(f[CornerUW]) // front
	s.gens[DUWV1] = f[CornerV].DUW(f[CornerUV]) // top
	s.gens[DVWU1] = f[CornerU].DVW(f[CornerUV]) // right
	s.gens[DVUW1] = f[CornerW].DVU(f[CornerVW]) // front
	s.gens[DWUV1] = f[CornerV].DWU(f[CornerVW]) // top
	s.gens[DWVU1] = f[CornerU].DWV(f[CornerUW]) // right
	return s
}

// calcSurfacesFromFace rederives the volume from the four frames of a shared
// face. Only LEFT is supported: the origin, v, w and vw frames are taken as
// given.
func (tv *TVolume) calcSurfacesFromFace(face Face) {
	if face != LEFT {
		return
	}
	tv.commit(runStages(tv.snapshot(),
		leftFaceSurfaces,
		leftFaceBends,
		orthogonalLeftFace,
		nearGenerators,
		leftFaceDiagonals,
		farCorner,
		farGenerators,
	))
}

// through is the surface containing t and passing through p.
func (s snapshot) through(p cga.Point, t cga.Pair) cga.DualSphere {
	return s.cfg.normalize(p.Inner(t.Scale(s.cfg.sign())))
}

func leftFaceSurfaces(s snapshot) snapshot {
	var (
		f      = &s.frames
		vp, wp = f[CornerV].Point(), f[CornerW].Point()
		vwp    = f[CornerVW].Point()
	)
	f[CornerOrigin].Suv = s.through(vp, f[CornerOrigin].Tu)
	f[CornerOrigin].Swv = s.through(vp, f[CornerOrigin].Tw)
	f[CornerOrigin].Suw = s.through(wp, f[CornerOrigin].Tu)
	f[CornerOrigin].Svw = s.through(wp, f[CornerOrigin].Tv)
	f[CornerV].Suw = s.through(wp, f[CornerV].Tu)
	f[CornerV].Svw = s.through(wp, f[CornerV].Tv)
	f[CornerW].Suv = s.through(vwp, f[CornerW].Tu)
	f[CornerW].Swv = s.through(vwp, f[CornerW].Tw)
	return s
}

func leftFaceBends(s snapshot) snapshot {
	var (
		f  = &s.frames
		k  = s.k
		tf = f[CornerOrigin]
		uc = tf.UC(k[KVU], k[KWU], s.spacing[0])
	)
	f[CornerOrigin].Svu = tf.VSurf(k[KVU])
	f[CornerOrigin].Swu = tf.WSurf(k[KWU])
	f[CornerV].Svu = f[CornerV].VSurf(k[KV1U])
	f[CornerU] = tf.XF(uc, false, false, false)
	f[CornerU].Suw = f[CornerU].USurf(k[KU1W])
	return s
}

func orthogonalLeftFace(s snapshot) snapshot {
	f := &s.frames
	f[CornerU].Suv = s.ortho(f[CornerV].Svu, f[CornerU].Tu)
	f[CornerU].Swv = s.ortho(f[CornerV].Svu, f[CornerU].Tw)
	f[CornerW].Swu = s.ortho(f[CornerU].Suw, f[CornerW].Tw)
	f[CornerW].Svu = s.ortho(f[CornerU].Suw, f[CornerW].Tv)
	f[CornerU].Svw = s.ortho(f[CornerW].Swu, f[CornerU].Tv)
	f[CornerV].Swu = s.ortho(f[CornerU].Suv, f[CornerV].Tw)
	return s
}

func leftFaceDiagonals(s snapshot) snapshot {
	f := &s.frames
	f[CornerUV] = f[CornerV].XF(cga.Boost(s.gens[DUVW0]), false, false, false)
	f[CornerUW] = f[CornerU].XF(cga.Boost(s.gens[DWUV0]), false, false, false)
	return s
}
