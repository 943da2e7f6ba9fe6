package InputParameters

import (
	"fmt"
	"math"
	"sort"

	"github.com/ghodss/yaml"
)

// Curvatures are the nine signed curvatures of a volume. The first six bend
// the coordinate surfaces at the origin corner, the last three bend them at
// the far corner of each axis.
type Curvatures struct {
	KVU  float64 `json:"KVU"`
	KWU  float64 `json:"KWU"`
	KUV  float64 `json:"KUV"`
	KWV  float64 `json:"KWV"`
	KUW  float64 `json:"KUW"`
	KVW  float64 `json:"KVW"`
	KV1U float64 `json:"KV1U"`
	KU1W float64 `json:"KU1W"`
	KW1V float64 `json:"KW1V"`
}

func (k Curvatures) Array() [9]float64 {
	return [9]float64{k.KVU, k.KWU, k.KUV, k.KWV, k.KUW, k.KVW, k.KV1U, k.KU1W, k.KW1V}
}

// Parameters obtained from the YAML input file. ghodss/yaml goes through
// encoding/json, so the field tags are json tags.
type VolumeParameters struct {
	Title          string      `json:"Title"`
	Curvatures     Curvatures  `json:"Curvatures"`
	USpacing       float64     `json:"USpacing"`
	VSpacing       float64     `json:"VSpacing"`
	WSpacing       float64     `json:"WSpacing"`
	ResU           int         `json:"ResU"`
	ResV           int         `json:"ResV"`
	ResW           int         `json:"ResW"`
	Sign           float64     `json:"Sign"` // Zero means +1
	Flip           bool        `json:"Flip"`
	Tolerance      float64     `json:"Tolerance"`
	ParallelDegree int         `json:"ParallelDegree"`
	Face           string      `json:"Face"`   // Face used for inverse mapping
	Points         [][]float64 `json:"Points"` // Points to map back to (u,v,w)
}

func (vp *VolumeParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, vp)
}

func (vp *VolumeParameters) Validate() (err error) {
	for _, s := range []struct {
		name string
		val  float64
	}{{"USpacing", vp.USpacing}, {"VSpacing", vp.VSpacing}, {"WSpacing", vp.WSpacing}} {
		if !(s.val > 0) || math.IsInf(s.val, 0) {
			err = fmt.Errorf("%s must be positive, have %v", s.name, s.val)
			return
		}
	}
	for _, k := range vp.Curvatures.Array() {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			err = fmt.Errorf("curvatures must be finite, have %v", vp.Curvatures)
			return
		}
	}
	if vp.ResU < 1 || vp.ResV < 1 || vp.ResW < 1 {
		err = fmt.Errorf("resolution must be at least 1, have [%d,%d,%d]", vp.ResU, vp.ResV, vp.ResW)
		return
	}
	if vp.ParallelDegree < 0 {
		err = fmt.Errorf("parallel degree must be non negative, have %d", vp.ParallelDegree)
		return
	}
	for i, p := range vp.Points {
		if len(p) != 3 {
			err = fmt.Errorf("point %d has %d coordinates, need 3", i, len(p))
			return
		}
	}
	return
}

func (vp *VolumeParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", vp.Title)
	fmt.Printf("[%8.5f,%8.5f,%8.5f]\t= Spacing\n", vp.USpacing, vp.VSpacing, vp.WSpacing)
	fmt.Printf("[%d,%d,%d]\t\t\t= Resolution\n", vp.ResU, vp.ResV, vp.ResW)
	fmt.Printf("%v\t\t\t\t= Sign\n", vp.Sign)
	fmt.Printf("%v\t\t\t\t= Flip\n", vp.Flip)
	if vp.Face != "" {
		fmt.Printf("[%s]\t\t\t= Face\n", vp.Face)
	}
	printCurvatures(map[string]float64{
		"KVU": vp.Curvatures.KVU, "KWU": vp.Curvatures.KWU, "KUV": vp.Curvatures.KUV,
		"KWV": vp.Curvatures.KWV, "KUW": vp.Curvatures.KUW, "KVW": vp.Curvatures.KVW,
		"KV1U": vp.Curvatures.KV1U, "KU1W": vp.Curvatures.KU1W, "KW1V": vp.Curvatures.KW1V,
	})
}

// SixSphereParameters describe a tangent frame with six coordinate line
// curvatures and three lengths.
type SixSphereParameters struct {
	Title    string     `json:"Title"`
	Position []float64  `json:"Position"` // Frame origin, defaults to zero
	Rotation []float64  `json:"Rotation"` // Unit quaternion w,x,y,z, defaults to identity
	CYX      float64    `json:"CYX"`
	CZX      float64    `json:"CZX"`
	CXY      float64    `json:"CXY"`
	CZY      float64    `json:"CZY"`
	CXZ      float64    `json:"CXZ"`
	CYZ      float64    `json:"CYZ"`
	Lengths  [3]float64 `json:"Lengths"`
}

func (sp *SixSphereParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SixSphereParameters) Validate() (err error) {
	if len(sp.Position) != 0 && len(sp.Position) != 3 {
		err = fmt.Errorf("position needs 3 coordinates, have %d", len(sp.Position))
		return
	}
	if len(sp.Rotation) != 0 && len(sp.Rotation) != 4 {
		err = fmt.Errorf("rotation needs 4 quaternion components, have %d", len(sp.Rotation))
		return
	}
	for i, l := range sp.Lengths {
		if l < 0 {
			err = fmt.Errorf("length %d must be non negative, have %v", i, l)
			return
		}
	}
	return
}

func (sp *SixSphereParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("%v\t\t\t= Position\n", sp.Position)
	fmt.Printf("%v\t\t\t= Rotation\n", sp.Rotation)
	fmt.Printf("%v\t\t= Lengths\n", sp.Lengths)
	printCurvatures(map[string]float64{
		"CYX": sp.CYX, "CZX": sp.CZX, "CXY": sp.CXY,
		"CZY": sp.CZY, "CXZ": sp.CXZ, "CYZ": sp.CYZ,
	})
}

func printCurvatures(k map[string]float64) {
	keys := make([]string, len(k))
	i := 0
	for key := range k {
		keys[i] = key
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Curvature[%s] = %v\n", key, k[key])
	}
}
