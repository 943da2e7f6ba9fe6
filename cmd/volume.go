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
	"github.com/spf13/viper"

	"github.com/notargets/gotangent/InputParameters"
	"github.com/notargets/gotangent/Volume3D"
)

const exampleVolumeFile = `
########################################
Title: "Bent Cell"
Curvatures:
  KVU: 0.1    # constant v surface bending along u
  KUW: -0.05
  KW1V: 0.02  # constant w surface at the far v corner
USpacing: 3
VSpacing: 2.5
WSpacing: 2
ResU: 8
ResV: 8
ResW: 8
Sign: 1     # surface orientation, 1 or -1
Flip: false
Face: LEFT  # for inverse mapping
Points:
  - [0, 1, 1]
########################################
`

// VolumeCmd represents the volume command
var VolumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Build a curved cell and print its corner frames",
	Long: `
Reads the nine curvatures and three spacings of a cell, derives the corner
frames and coordinate surfaces and prints the corner positions,

gotangent volume -I cell.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("volume called")
		ipFile, _ := cmd.Flags().GetString("inputParametersFile")
		vp := mustReadVolume(ipFile)
		vp.Print()
		tv, err := buildVolume(vp)
		if err != nil {
			panic(err)
		}
		tv.Print()
	},
}

func init() {
	rootCmd.AddCommand(VolumeCmd)
	VolumeCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for the cell curvatures, spacings and resolution")
}

// mustReadVolume exits with an example file when none is given.
func mustReadVolume(file string) (vp *InputParameters.VolumeParameters) {
	var err error
	if len(file) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputParametersFile)")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", exampleVolumeFile)
		os.Exit(1)
	}
	if vp, err = readVolumeParameters(file); err != nil {
		panic(err)
	}
	return
}

func readVolumeParameters(file string) (vp *InputParameters.VolumeParameters, err error) {
	var data []byte
	if data, err = os.ReadFile(file); err != nil {
		return
	}
	vp = &InputParameters.VolumeParameters{}
	if err = vp.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", file, err)
	}
	return
}

// buildVolume applies the command line parallel degree over the file's.
func buildVolume(vp *InputParameters.VolumeParameters) (*Volume3D.TVolume, error) {
	if pd := viper.GetInt("parallelDegree"); pd > 0 {
		vp.ParallelDegree = pd
	}
	return Volume3D.NewTVolumeFromParams(vp)
}
