/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gotangent/Volume3D"
	"github.com/notargets/gotangent/cga"
	"github.com/notargets/gotangent/utils"
)

// MappingCmd represents the mapping command
var MappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Sample a curved cell on a (u,v,w) grid",
	Long: `
Evaluates the cell mapping at ResU x ResV x ResW parameters and prints the
image of the origin corner at every grid point,

gotangent mapping -I cell.yaml --profile`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mapping called")
		ipFile, _ := cmd.Flags().GetString("inputParametersFile")
		prof, _ := cmd.Flags().GetBool("profile")
		maxRows, _ := cmd.Flags().GetInt("maxRows")
		vp := mustReadVolume(ipFile)
		vp.Print()
		tv, err := buildVolume(vp)
		if err != nil {
			panic(err)
		}
		if prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		pos, err := runMapping(tv, vp.ResU, vp.ResV, vp.ResW)
		if err != nil {
			panic(err)
		}
		printPositions(pos, maxRows)
	},
}

func init() {
	rootCmd.AddCommand(MappingCmd)
	MappingCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for the cell curvatures, spacings and resolution")
	MappingCmd.Flags().Bool("profile", false, "write a CPU profile of the grid evaluation to the current directory")
	MappingCmd.Flags().IntP("maxRows", "m", 64, "print at most this many grid points")
}

// runMapping evaluates the grid and returns the images of the origin corner,
// one row per cell in (i,j,k) order.
func runMapping(tv *Volume3D.TVolume, resU, resV, resW int) (pos *mat.Dense, err error) {
	var (
		m     *Volume3D.Mapping
		start = time.Now()
	)
	if m, err = tv.CalcMapping(resU, resV, resW); err != nil {
		return
	}
	log.Printf("mapped %d cells with %d goroutines in %v\n", m.Len(), tv.ParallelDegree(), time.Since(start))
	log.Printf("%s\n", utils.GetMemUsage())
	pos = m.Positions(cga.NewPoint(r3.Vec{}))
	if !utils.IsNan(pos) {
		return
	}
	for n := 0; n < m.Len(); n++ {
		if utils.IsNan(pos.RawRowView(n)) {
			i, j, k := m.IJK(n)
			err = fmt.Errorf("grid of %dx%dx%d has a NaN position at cell (%d,%d,%d)",
				resU, resV, resW, i, j, k)
			break
		}
	}
	return
}

func printPositions(pos *mat.Dense, maxRows int) {
	r, _ := pos.Dims()
	if r > maxRows {
		fmt.Printf("showing %d of %d points\n", maxRows, r)
		r = maxRows
	}
	fmt.Printf("P = \n%v\n", mat.Formatted(pos.Slice(0, r, 0, 3), mat.Squeeze()))
}
