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
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gotangent/InputParameters"
	"github.com/notargets/gotangent/Tangent3D"
)

// SixSphereCmd represents the sixsphere command
var SixSphereCmd = &cobra.Command{
	Use:   "sixsphere",
	Short: "Print the corner frames of a six-sphere coordinate system",
	Long: `
Bends the three coordinate lines of a frame by their six curvatures and closes
the remaining corners of the cell,

gotangent sixsphere -I six.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sixsphere called")
		ipFile, _ := cmd.Flags().GetString("inputParametersFile")
		if len(ipFile) == 0 {
			fmt.Printf("error: must supply an input parameters file (-I, --inputParametersFile)\n")
			os.Exit(1)
		}
		data, err := os.ReadFile(ipFile)
		if err != nil {
			panic(err)
		}
		sp := &InputParameters.SixSphereParameters{}
		if err = sp.Parse(data); err != nil {
			panic(err)
		}
		sp.Print()
		corners, err := runSixSphere(sp)
		if err != nil {
			panic(err)
		}
		for _, c := range corners {
			fmt.Printf("[%-3s] = [%8.4f, %8.4f, %8.4f]\n", c.Name, c.Pos.X, c.Pos.Y, c.Pos.Z)
		}
	},
}

func init() {
	rootCmd.AddCommand(SixSphereCmd)
	SixSphereCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for the six curvatures and three lengths")
}

type corner struct {
	Name string
	Pos  r3.Vec
}

func runSixSphere(sp *InputParameters.SixSphereParameters) (corners []corner, err error) {
	if err = sp.Validate(); err != nil {
		return
	}
	var f Tangent3D.Frame
	if len(sp.Position) == 3 {
		f.Pos = r3.Vec{X: sp.Position[0], Y: sp.Position[1], Z: sp.Position[2]}
	}
	if len(sp.Rotation) == 4 {
		f.Rot = quat.Number{Real: sp.Rotation[0], Imag: sp.Rotation[1], Jmag: sp.Rotation[2], Kmag: sp.Rotation[3]}
		if n := quat.Abs(f.Rot); n != 0 {
			f.Rot = quat.Scale(1/n, f.Rot)
		}
	}
	var (
		l  = sp.Lengths
		ss = Tangent3D.NewSixSphere(f)
	)
	for i := range l {
		if l[i] == 0 {
			l[i] = 1
		}
	}
	ss.Set(sp.CYX, sp.CZX, sp.CXY, sp.CZY, sp.CXZ, sp.CYZ, l[0], l[1], l[2])
	corners = []corner{
		{"O", ss.Frame.Pos},
		{"X", ss.X().Pos},
		{"Y", ss.Y().Pos},
		{"Z", ss.Z().Pos},
		{"XY", ss.XY(0).Pos},
		{"ZX", ss.ZX(0).Pos},
		{"ZY", ss.ZY(0).Pos},
		{"XYZ", ss.XYZ(0, 0).Pos},
	}
	return
}
