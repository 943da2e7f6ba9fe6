// Package cga is the conformal model of 3D space used by the tangent frame and
// volume packages: points, dual spheres, point pairs, circles and versors
// expressed as 32-component multivectors over e1,e2,e3,e+,e-.
//
// Blades are addressed by a bitmap of their basis vectors, as in a naive
// geometric algebra; products are evaluated blade by blade from a table of
// reordering signs folded with the metric.
package cga

import (
	"math/bits"
	"strings"
)

// Basis vector bitmaps; e+ squares to +1, e- squares to -1.
const (
	E1 uint8 = 1 << iota
	E2
	E3
	EP
	EM
)

const (
	NumBlades = 32
	Pss       = E1 | E2 | E3 | EP | EM // pseudoscalar I = e1e2e3e+e-
)

var (
	gpSign [NumBlades][NumBlades]float64 // sign of blade product, including metric
	grades [NumBlades]int
)

func init() {
	for a := 0; a < NumBlades; a++ {
		grades[a] = bits.OnesCount8(uint8(a))
		for b := 0; b < NumBlades; b++ {
			s := reorderSign(uint8(a), uint8(b))
			if uint8(a)&uint8(b)&EM != 0 {
				s = -s
			}
			gpSign[a][b] = s
		}
	}
}

// reorderSign counts the swaps needed to bring the product of blades a and b
// into canonical order.
func reorderSign(a, b uint8) float64 {
	a = a >> 1
	n := 0
	for a != 0 {
		n += bits.OnesCount8(a & b)
		a = a >> 1
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}

// BladeGrade returns the number of basis vectors in blade.
func BladeGrade(blade uint8) int { return grades[blade&Pss] }

func bladeName(blade uint8) string {
	if blade == 0 {
		return "1"
	}
	var b strings.Builder
	b.WriteByte('e')
	for i, n := range []string{"1", "2", "3", "+", "-"} {
		if blade&(1<<uint(i)) != 0 {
			b.WriteString(n)
		}
	}
	return b.String()
}
