package Tangent3D

import (
	"github.com/notargets/gotangent/cga"
)

// Curve holds the two curvatures of one coordinate line.
type Curve struct {
	A, B float64
}

// SixSphere is a coordinate system with a curvature in every direction: each
// of the three coordinate lines bends toward the other two axes.
type SixSphere struct {
	Frame                     TangentFrame
	Curve                     [3]Curve
	LengthX, LengthY, LengthZ float64
}

func NewSixSphere(f Frame) *SixSphere {
	return &SixSphere{
		Frame:   NewTangentFrame(f),
		LengthX: 1, LengthY: 1, LengthZ: 1,
	}
}

// Set takes the curvatures of constant x toward y and z, constant y toward x
// and z, constant z toward x and y, then the three lengths.
func (ss *SixSphere) Set(yx, zx, xy, zy, xz, yz, lx, ly, lz float64) {
	ss.Curve[0] = Curve{A: yx, B: zx}
	ss.Curve[1] = Curve{A: xy, B: zy}
	ss.Curve[2] = Curve{A: xz, B: yz}
	ss.LengthX, ss.LengthY, ss.LengthZ = lx, ly, lz
}

func (ss *SixSphere) CYX() float64 { return ss.Curve[0].A }
func (ss *SixSphere) CZX() float64 { return ss.Curve[0].B }
func (ss *SixSphere) CXY() float64 { return ss.Curve[1].A }
func (ss *SixSphere) CZY() float64 { return ss.Curve[1].B }
func (ss *SixSphere) CXZ() float64 { return ss.Curve[2].A }
func (ss *SixSphere) CYZ() float64 { return ss.Curve[2].B }

func (ss *SixSphere) SetCYX(c float64) { ss.Curve[0].A = c }
func (ss *SixSphere) SetCZX(c float64) { ss.Curve[0].B = c }
func (ss *SixSphere) SetCXY(c float64) { ss.Curve[1].A = c }
func (ss *SixSphere) SetCZY(c float64) { ss.Curve[1].B = c }
func (ss *SixSphere) SetCXZ(c float64) { ss.Curve[2].A = c }
func (ss *SixSphere) SetCYZ(c float64) { ss.Curve[2].B = c }

// AccumulateCurvature is the curvature at the far end of a coordinate line of
// the given length that starts with curvature k.
func AccumulateCurvature(k, length float64) float64 {
	switch {
	case k == 0:
		return 0
	case k > 0:
		return -(1 / ((1 / k) - length))
	default:
		return 1 / ((1 / -k) + length)
	}
}

// X is the frame at the end of the x line.
func (ss *SixSphere) X() TangentFrame {
	return ss.Frame.XBend(ss.Curve[0].A, ss.Curve[0].B, ss.LengthX).Unit()
}

func (ss *SixSphere) Y() TangentFrame {
	return ss.Frame.YBend(ss.Curve[1].A, ss.Curve[1].B, ss.LengthY).Unit()
}

func (ss *SixSphere) Z() TangentFrame {
	return ss.Frame.ZBend(ss.Curve[2].A, ss.Curve[2].B, ss.LengthZ).Unit()
}

func (ss *SixSphere) origin() cga.Point { return ss.Frame.Point() }

// XY is the frame in the x+y corner; c adds to the accumulated curvature.
func (ss *SixSphere) XY(c float64) TangentFrame {
	k := AccumulateCurvature(ss.CXY(), ss.LengthX)
	return ss.X().XClose(k+c, ss.origin(), ss.Y().Point()).Unit()
}

// ZX is the frame in the x+z corner.
func (ss *SixSphere) ZX(c float64) TangentFrame {
	k := AccumulateCurvature(ss.CZX(), ss.LengthZ)
	return ss.Z().ZClose(k+c, ss.origin(), ss.X().Point()).Unit()
}

// ZY is the frame in the y+z corner.
func (ss *SixSphere) ZY(c float64) TangentFrame {
	k := AccumulateCurvature(ss.CZY(), ss.LengthZ)
	return ss.Z().ZClose(k+c, ss.origin(), ss.Y().Point()).Unit()
}

// XYZ is the frame in the far corner.
func (ss *SixSphere) XYZ(cx, cy float64) TangentFrame {
	return ss.XY(0).Close(ss.X(), ss.ZX(cx), ss.Y(), ss.ZY(cy)).Unit()
}
