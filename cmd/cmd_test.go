package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gotangent/InputParameters"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(data), 0644))
	return file
}

func TestVolumeCommands(t *testing.T) {
	file := writeFile(t, "cell.yaml", `
Title: Box
USpacing: 1
VSpacing: 2
WSpacing: 3
ResU: 2
ResV: 2
ResW: 2
ParallelDegree: 2
Face: RIGHT
Points:
  - [1, 1, 1.5]
  - [1, 2, 0]
`)
	vp, err := readVolumeParameters(file)
	require.NoError(t, err)
	assert.Equal(t, "Box", vp.Title)
	tv, err := buildVolume(vp)
	require.NoError(t, err)
	assert.Equal(t, 2, tv.ParallelDegree())

	pos, err := runMapping(tv, vp.ResU, vp.ResV, vp.ResW)
	require.NoError(t, err)
	r, c := pos.Dims()
	assert.Equal(t, 8, r)
	assert.Equal(t, 3, c)
	// Last cell is the far corner
	assert.InDeltaSlice(t, []float64{1, 2, 3}, pos.RawRowView(7), 1.e-9)
	printPositions(pos, 4)

	coords, err := runInverse(tv, vp)
	require.NoError(t, err)
	require.Len(t, coords, 2)
	assert.Equal(t, 1., coords[0].U)
	assert.InDelta(t, 0.5, coords[0].V, 1.e-9)
	assert.InDelta(t, 0.5, coords[0].W, 1.e-9)
	assert.InDelta(t, 1., coords[1].V, 1.e-9)
	assert.InDelta(t, 0., coords[1].W, 1.e-9)

	vp.Face = "SIDE"
	_, err = runInverse(tv, vp)
	assert.Error(t, err)

	_, err = readVolumeParameters(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = readVolumeParameters(writeFile(t, "bad.yaml", "ResU: [1"))
	assert.Error(t, err)
}

func TestSixSphereCommand(t *testing.T) {
	s := math.Sin(math.Pi / 4)
	sp := &InputParameters.SixSphereParameters{
		Rotation: []float64{2 * s, 0, 0, 2 * s}, // normalized to a quarter turn about z
		Lengths:  [3]float64{2, 3, 4},
	}
	corners, err := runSixSphere(sp)
	require.NoError(t, err)
	require.Len(t, corners, 8)
	assert.Equal(t, "XYZ", corners[7].Name)
	assert.InDelta(t, 0., corners[1].Pos.X, 1.e-9)
	assert.InDelta(t, 2., corners[1].Pos.Y, 1.e-9)
	assert.InDelta(t, -3., corners[7].Pos.X, 1.e-9)
	assert.InDelta(t, 2., corners[7].Pos.Y, 1.e-9)
	assert.InDelta(t, 4., corners[7].Pos.Z, 1.e-9)

	// Missing lengths default to one
	corners, err = runSixSphere(&InputParameters.SixSphereParameters{})
	require.NoError(t, err)
	assert.InDelta(t, 1., corners[7].Pos.X, 1.e-9)
	assert.InDelta(t, 1., corners[7].Pos.Z, 1.e-9)

	_, err = runSixSphere(&InputParameters.SixSphereParameters{Position: []float64{1}})
	assert.Error(t, err)
}
