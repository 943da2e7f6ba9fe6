// Package Tangent3D holds rigid frames whose axes are expressed as conformal
// tangent vectors, the six-sphere coordinate system built from them, and
// contacts between points and spheres.
package Tangent3D

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gotangent/cga"
)

// Frame is a rigid placement. The zero value is the identity frame at the
// origin.
type Frame struct {
	Pos r3.Vec
	Rot quat.Number // Unit quaternion
}

func NewFrame(pos r3.Vec, rot quat.Number) Frame {
	return Frame{Pos: pos, Rot: rot}
}

func (f Frame) rotation() quat.Number {
	if f.Rot == (quat.Number{}) {
		return quat.Number{Real: 1}
	}
	return f.Rot
}

func (f Frame) rotate(v r3.Vec) r3.Vec {
	q := f.rotation()
	r := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return r3.Vec{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

func (f Frame) X() r3.Vec { return f.rotate(r3.Vec{X: 1}) }
func (f Frame) Y() r3.Vec { return f.rotate(r3.Vec{Y: 1}) }
func (f Frame) Z() r3.Vec { return f.rotate(r3.Vec{Z: 1}) }

// TX is the tangent at the frame position along the local x axis.
func (f Frame) TX() cga.Pair { return cga.TangentAt(f.X(), f.Pos) }
func (f Frame) TY() cga.Pair { return cga.TangentAt(f.Y(), f.Pos) }
func (f Frame) TZ() cga.Pair { return cga.TangentAt(f.Z(), f.Pos) }

func (f Frame) Point() cga.Point { return cga.NewPoint(f.Pos) }

// Versor rotates and then translates, carrying the identity frame onto f.
func (f Frame) Versor() cga.Versor {
	return cga.Translator(f.Pos).Compose(cga.Rotor(f.rotation()))
}
