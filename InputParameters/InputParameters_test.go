package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeParameters(t *testing.T) {
	fileInput := []byte(`
Title: Bent Cell
Curvatures:
  KVU: 0.1
  KW1V: -0.25
USpacing: 3
VSpacing: 2.5
WSpacing: 2.
ResU: 4
ResV: 3
ResW: 2
Flip: true
Face: LEFT
Points:
  - [0, 1, 1]
  - [0, 0.5, 2]
`)
	var vp VolumeParameters
	require.NoError(t, vp.Parse(fileInput))
	assert.Equal(t, "Bent Cell", vp.Title)
	assert.Equal(t, 0.1, vp.Curvatures.KVU)
	assert.Equal(t, -0.25, vp.Curvatures.KW1V)
	assert.Equal(t, 0., vp.Curvatures.KUW)
	assert.Equal(t, [9]float64{0.1, 0, 0, 0, 0, 0, 0, 0, -0.25}, vp.Curvatures.Array())
	assert.Equal(t, 2.5, vp.VSpacing)
	assert.Equal(t, 3, vp.ResV)
	assert.True(t, vp.Flip)
	assert.Equal(t, 0., vp.Sign)
	assert.Equal(t, "LEFT", vp.Face)
	require.Len(t, vp.Points, 2)
	assert.Equal(t, []float64{0, 0.5, 2}, vp.Points[1])
	assert.NoError(t, vp.Validate())
	vp.Print()

	{
		bad := vp
		bad.USpacing = 0
		assert.Error(t, bad.Validate())
	}
	{
		bad := vp
		bad.ResW = 0
		assert.Error(t, bad.Validate())
	}
	{
		bad := vp
		bad.Points = [][]float64{{1, 2}}
		assert.Error(t, bad.Validate())
	}
	{
		bad := vp
		bad.ParallelDegree = -1
		assert.Error(t, bad.Validate())
	}
	// Malformed YAML
	assert.Error(t, vp.Parse([]byte("ResU: [1")))
}

func TestSixSphereParameters(t *testing.T) {
	fileInput := []byte(`
Title: Six
Position: [1, 2, 3]
CXY: 0.5
CYZ: -0.1
Lengths: [1, 2, 3]
`)
	var sp SixSphereParameters
	require.NoError(t, sp.Parse(fileInput))
	assert.Equal(t, 0.5, sp.CXY)
	assert.Equal(t, -0.1, sp.CYZ)
	assert.Equal(t, [3]float64{1, 2, 3}, sp.Lengths)
	assert.Equal(t, []float64{1, 2, 3}, sp.Position)
	assert.Nil(t, sp.Rotation)
	assert.NoError(t, sp.Validate())
	sp.Print()

	sp.Rotation = []float64{1, 0}
	assert.Error(t, sp.Validate())
	sp.Rotation = nil
	sp.Lengths[1] = -1
	assert.Error(t, sp.Validate())
}
