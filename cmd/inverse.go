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

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gotangent/InputParameters"
	"github.com/notargets/gotangent/Volume3D"
	"github.com/notargets/gotangent/cga"
)

// InverseCmd represents the inverse command
var InverseCmd = &cobra.Command{
	Use:   "inverse",
	Short: "Map points on a cell face back to (u,v,w)",
	Long: `
Recovers the normalized coordinates of the Points listed in the input file,
each assumed to lie on the input Face of the cell,

gotangent inverse -I cell.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("inverse called")
		ipFile, _ := cmd.Flags().GetString("inputParametersFile")
		vp := mustReadVolume(ipFile)
		if face, _ := cmd.Flags().GetString("face"); face != "" {
			vp.Face = face
		}
		vp.Print()
		tv, err := buildVolume(vp)
		if err != nil {
			panic(err)
		}
		coords, err := runInverse(tv, vp)
		if err != nil {
			panic(err)
		}
		for i, c := range coords {
			fmt.Printf("%v\t-> [%8.5f,%8.5f,%8.5f]\n", vp.Points[i], c.U, c.V, c.W)
		}
	},
}

func init() {
	rootCmd.AddCommand(InverseCmd)
	InverseCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for the cell and the points to invert")
	InverseCmd.Flags().StringP("face", "f", "", "face the points lie on: LEFT, RIGHT, BOTTOM, TOP, BACK or FRONT")
}

func runInverse(tv *Volume3D.TVolume, vp *InputParameters.VolumeParameters) (coords []Volume3D.Coord, err error) {
	face, ok := Volume3D.ParseFace(vp.Face)
	if !ok {
		err = fmt.Errorf("unknown face %q", vp.Face)
		return
	}
	coords = make([]Volume3D.Coord, len(vp.Points))
	for i, p := range vp.Points {
		coords[i] = tv.InverseMapping(cga.NewPoint(r3.Vec{X: p[0], Y: p[1], Z: p[2]}), face)
	}
	return
}
