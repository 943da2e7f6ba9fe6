// Package Volume3D builds curved coordinate volumes: eight tangent frames at
// the corners of a hexahedral cell, the twenty-four coordinate surfaces that
// bound it and the twelve generators that sweep one surface into the next.
// A volume maps normalized (u,v,w) parameters to conformal versors and, on
// each face, maps points back to parameters.
package Volume3D

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/notargets/gotangent/cga"
)

var (
	ErrFaceNotImplemented = errors.New("construction from this face is not implemented")
	ErrBadSpacing         = errors.New("spacing must be positive and finite")
	ErrBadResolution      = errors.New("resolution must be at least 1 in each direction")
	ErrBadSign            = errors.New("sign must be 1 or -1")
)

// Config carries the numeric conventions of a volume.
type Config struct {
	Sign      float64 // Orientation of the surfaces, +1 or -1
	Flip      bool    // Mirror the swept axes of the corner frames as read out
	Tolerance float64 // Near zero threshold for flatness and ratio clamping
}

func DefaultConfig() Config {
	return Config{
		Sign:      1,
		Flip:      false,
		Tolerance: cga.DefaultTolerance,
	}
}

func (c Config) Validate() (err error) {
	if c.Sign != 1 && c.Sign != -1 {
		err = fmt.Errorf("sign %v: %w", c.Sign, ErrBadSign)
		return
	}
	if c.Tolerance < 0 {
		err = fmt.Errorf("tolerance must be non negative, have %v", c.Tolerance)
	}
	return
}

func (c Config) sign() float64 {
	if c.Sign == 0 {
		return 1
	}
	return c.Sign
}

func (c Config) tol() float64 {
	if c.Tolerance == 0 {
		return cga.DefaultTolerance
	}
	return c.Tolerance
}

// normalize reads the vector part of m as a dual sphere and scales it to unit
// weight, or truncates it to a plane when flat.
func (c Config) normalize(m cga.Multivector) cga.DualSphere {
	return cga.DualSphere{Multivector: m}.Normalize(c.tol())
}

// calcGen derives a generator from surfaces oriented by c. Every surface of a
// volume with Sign -1 is the negative of its Sign 1 counterpart, so they are
// turned back before the side test in CalcGen.
func (c Config) calcGen(p1, p2 cga.Pair, beg, end cga.DualSphere) cga.Pair {
	if c.sign() < 0 {
		beg = cga.DualSphere{Multivector: beg.Scale(-1)}
		end = cga.DualSphere{Multivector: end.Scale(-1)}
	}
	return CalcGen(p1, p2, beg, end, c.tol())
}

type options struct {
	cfg            Config
	parallelDegree int
}

func defaultOptions() options {
	return options{
		cfg:            DefaultConfig(),
		parallelDegree: runtime.NumCPU(),
	}
}

type Option func(*options)

func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithParallelDegree sets the number of workers used by CalcMapping.
func WithParallelDegree(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelDegree = n
		}
	}
}
