package Volume3D

import (
	"fmt"
	"log"
	"math"

	"github.com/notargets/gotangent/InputParameters"
	"github.com/notargets/gotangent/cga"
)

// Corner is a 3 bit corner code: bit0 = u, bit1 = v, bit2 = w.
type Corner uint8

const (
	CornerOrigin Corner = 0
	CornerU      Corner = 1
	CornerV      Corner = 2
	CornerUV     Corner = 3
	CornerW      Corner = 4
	CornerUW     Corner = 5
	CornerVW     Corner = 6
	CornerUVW    Corner = 7
)

func (c Corner) String() string {
	return [...]string{"Origin", "U", "V", "UV", "W", "UW", "VW", "UVW"}[c&7]
}

// Curvature names a bend: KVU is the curvature of the v surface seen while
// sweeping along u, KV1U the same at v = 1.
type Curvature uint8

const (
	KVU Curvature = iota
	KWU
	KUV
	KWV
	KUW
	KVW
	KV1U
	KU1W
	KW1V
)

func (k Curvature) String() string {
	return [...]string{"kvu", "kwu", "kuv", "kwv", "kuw", "kvw", "kv1u", "ku1w", "kw1v"}[k]
}

// Generator names the bivector sweeping one constant surface along an edge.
// DUVW0 sweeps the v direction curve along u at w = 0; the suffix 1 marks
// the opposite edge.
type Generator uint8

const (
	DUVW0 Generator = iota
	DUWV0
	DVWU0
	DVUW0
	DWUV0
	DWVU0
	DUVW1
	DUWV1
	DVWU1
	DVUW1
	DWUV1
	DWVU1
)

func (g Generator) String() string {
	return [...]string{
		"duvw0", "duwv0", "dvwu0", "dvuw0", "dwuv0", "dwvu0",
		"duvw1", "duwv1", "dvwu1", "dvuw1", "dwuv1", "dwvu1",
	}[g]
}

// TVolume is a curved hexahedral cell. It is fully determined by nine
// curvatures and three spacings and is not modified after construction.
type TVolume struct {
	k              [9]float64
	spacing        [3]float64
	frames         [8]TFrame
	gens           [12]cga.Pair
	cfg            Config
	parallelDegree int
}

func newTVolume(k [9]float64, spacing [3]float64, opts []Option) (tv *TVolume) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	tv = &TVolume{
		k:              k,
		spacing:        spacing,
		cfg:            o.cfg,
		parallelDegree: o.parallelDegree,
	}
	return
}

func NewTVolume(kvu, kwu, kuv, kwv, kuw, kvw, kv1u, ku1w, kw1v,
	uSpacing, vSpacing, wSpacing float64, opts ...Option) (tv *TVolume) {
	tv = newTVolume(
		[9]float64{kvu, kwu, kuv, kwv, kuw, kvw, kv1u, ku1w, kw1v},
		[3]float64{uSpacing, vSpacing, wSpacing}, opts)
	tv.calcSurfaces()
	return
}

// NewDefaultTVolume is the flat cube with spacing 3 on each side.
func NewDefaultTVolume(opts ...Option) (tv *TVolume) {
	return NewTVolume(0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 3, opts...)
}

// NewTVolumeFromParams validates the parameters and builds the volume they
// describe.
func NewTVolumeFromParams(vp *InputParameters.VolumeParameters, opts ...Option) (tv *TVolume, err error) {
	spacing := [3]float64{vp.USpacing, vp.VSpacing, vp.WSpacing}
	for _, s := range spacing {
		if !(s > 0) || math.IsInf(s, 1) {
			err = fmt.Errorf("spacing %v: %w", s, ErrBadSpacing)
			return
		}
	}
	if err = vp.Validate(); err != nil {
		err = fmt.Errorf("volume parameters: %w", err)
		return
	}
	cfg := DefaultConfig()
	cfg.Flip = vp.Flip
	if vp.Sign != 0 {
		cfg.Sign = vp.Sign
	}
	if vp.Tolerance != 0 {
		cfg.Tolerance = vp.Tolerance
	}
	if err = cfg.Validate(); err != nil {
		return
	}
	opts = append([]Option{WithConfig(cfg)}, opts...)
	if vp.ParallelDegree > 0 {
		opts = append(opts, WithParallelDegree(vp.ParallelDegree))
	}
	tv = newTVolume(vp.Curvatures.Array(), spacing, opts)
	tv.calcSurfaces()
	log.Printf("volume %q: spacing %v, far corner at %v\n", vp.Title, tv.spacing, tv.UVWF().Pos())
	return
}

// NewTVolumeFromFace builds the neighbor of src sharing the given face of
// src. Only the RIGHT face carries geometry across; LEFT yields the default
// volume, and the remaining faces yield the default volume and
// ErrFaceNotImplemented.
func NewTVolumeFromFace(src *TVolume, face Face, opts ...Option) (tv *TVolume, err error) {
	switch face {
	case RIGHT:
		opts = append([]Option{WithConfig(src.cfg), WithParallelDegree(src.parallelDegree)}, opts...)
		tv = newTVolume(src.k, src.spacing, opts)
		tv.frames[CornerOrigin] = src.frames[CornerU]
		tv.frames[CornerW] = src.frames[CornerUW]
		tv.frames[CornerV] = src.frames[CornerUV]
		tv.frames[CornerVW] = src.frames[CornerUVW]
		tv.calcSurfacesFromFace(LEFT)
	case LEFT:
		tv = NewDefaultTVolume(opts...)
	default:
		tv = NewDefaultTVolume(opts...)
		err = fmt.Errorf("face %s: %w", face, ErrFaceNotImplemented)
	}
	return
}

func (tv *TVolume) Config() Config { return tv.cfg }

func (tv *TVolume) ParallelDegree() int { return tv.parallelDegree }

// Frame is the frame at corner c. With Config.Flip the axes swept to reach
// the corner are mirrored; the far corner is built from surface normals and
// never is.
func (tv *TVolume) Frame(c Corner) (f TFrame) {
	c &= 7
	f = tv.frames[c]
	if !tv.cfg.Flip || c == CornerUVW {
		return
	}
	if c&CornerU != 0 {
		f.UFlip()
	}
	if c&CornerV != 0 {
		f.VFlip()
	}
	if c&CornerW != 0 {
		f.WFlip()
	}
	return
}

func (tv *TVolume) TF() TFrame   { return tv.Frame(CornerOrigin) }
func (tv *TVolume) UF() TFrame   { return tv.Frame(CornerU) }
func (tv *TVolume) VF() TFrame   { return tv.Frame(CornerV) }
func (tv *TVolume) WF() TFrame   { return tv.Frame(CornerW) }
func (tv *TVolume) UVF() TFrame  { return tv.Frame(CornerUV) }
func (tv *TVolume) UWF() TFrame  { return tv.Frame(CornerUW) }
func (tv *TVolume) VWF() TFrame  { return tv.Frame(CornerVW) }
func (tv *TVolume) UVWF() TFrame { return tv.Frame(CornerUVW) }

func (tv *TVolume) K(c Curvature) float64 { return tv.k[c] }

func (tv *TVolume) KVU() float64  { return tv.k[KVU] }
func (tv *TVolume) KWU() float64  { return tv.k[KWU] }
func (tv *TVolume) KUV() float64  { return tv.k[KUV] }
func (tv *TVolume) KWV() float64  { return tv.k[KWV] }
func (tv *TVolume) KUW() float64  { return tv.k[KUW] }
func (tv *TVolume) KVW() float64  { return tv.k[KVW] }
func (tv *TVolume) KV1U() float64 { return tv.k[KV1U] }
func (tv *TVolume) KU1W() float64 { return tv.k[KU1W] }
func (tv *TVolume) KW1V() float64 { return tv.k[KW1V] }

func (tv *TVolume) USpacing() float64 { return tv.spacing[0] }
func (tv *TVolume) VSpacing() float64 { return tv.spacing[1] }
func (tv *TVolume) WSpacing() float64 { return tv.spacing[2] }

func (tv *TVolume) Gen(g Generator) cga.Pair { return tv.gens[g] }

func (tv *TVolume) DUVW0() cga.Pair { return tv.gens[DUVW0] }
func (tv *TVolume) DUWV0() cga.Pair { return tv.gens[DUWV0] }
func (tv *TVolume) DVWU0() cga.Pair { return tv.gens[DVWU0] }
func (tv *TVolume) DVUW0() cga.Pair { return tv.gens[DVUW0] }
func (tv *TVolume) DWUV0() cga.Pair { return tv.gens[DWUV0] }
func (tv *TVolume) DWVU0() cga.Pair { return tv.gens[DWVU0] }
func (tv *TVolume) DUVW1() cga.Pair { return tv.gens[DUVW1] }
func (tv *TVolume) DUWV1() cga.Pair { return tv.gens[DUWV1] }
func (tv *TVolume) DVWU1() cga.Pair { return tv.gens[DVWU1] }
func (tv *TVolume) DVUW1() cga.Pair { return tv.gens[DVUW1] }
func (tv *TVolume) DWUV1() cga.Pair { return tv.gens[DWUV1] }
func (tv *TVolume) DWVU1() cga.Pair { return tv.gens[DWVU1] }

// Print echoes the volume's corners and curvatures.
func (tv *TVolume) Print() {
	for c := CornerOrigin; c <= CornerUVW; c++ {
		p := tv.frames[c].Pos()
		fmt.Printf("[%-6s] = [%8.4f, %8.4f, %8.4f]\n", c, p.X, p.Y, p.Z)
	}
	for k := KVU; k <= KW1V; k++ {
		fmt.Printf("[%-4s] = %8.4f\n", k, tv.k[k])
	}
}
