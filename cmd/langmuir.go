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
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gofluid/InputParameters"
	"github.com/notargets/gofluid/model_problems/Langmuir"
)

type ModelLangmuir struct {
	ICFile  string
	Graph   bool
	Delay   time.Duration
	Profile bool
}

// LangmuirCmd represents the langmuir command
var LangmuirCmd = &cobra.Command{
	Use:   "langmuir",
	Short: "Standing Langmuir wave driven by its analytic electrostatic field",
	Long: `Standing Langmuir wave driven by its analytic electrostatic field,
validating the fluid push, advection and deposition stages against linear theory`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ml  = &ModelLangmuir{}
		)
		fmt.Println("langmuir called")
		if ml.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		ml.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		ml.Delay = time.Duration(dr) * time.Millisecond
		ml.Profile, _ = cmd.Flags().GetBool("profile")
		fp := processLangmuirInput(ml)
		RunLangmuir(ml, fp)
	},
}

func processLangmuirInput(ml *ModelLangmuir) (fp *InputParameters.FluidParameters) {
	if len(ml.ICFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Langmuir Wave"
Dimensionality: Z # Can be "3D" or "XZ"
Nx: 1
Ny: 1
Nz: 128
XMin: -20.e-6
XMax: 20.e-6
YMin: -20.e-6
YMax: 20.e-6
ZMin: -20.e-6
ZMax: 20.e-6
NPatches: 4
CFL: 0.4
FinalTime: 8.e-14
Density: 4.e24
Epsilon: 0.01
NOscZ: 2
DiagnosticsFile: langmuir.csv
Species:
  - Name: electrons
    Charge: -1.
    Mass: 1.
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	data, err := os.ReadFile(ml.ICFile)
	if err != nil {
		panic(err)
	}
	fp = &InputParameters.FluidParameters{}
	if err = fp.Parse(data); err != nil {
		panic(err)
	}
	fp.Print()
	return
}

func init() {
	rootCmd.AddCommand(LangmuirCmd)
	LangmuirCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- Density\n\t- Epsilon (perturbation amplitude)")
	LangmuirCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	LangmuirCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	LangmuirCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

func RunLangmuir(ml *ModelLangmuir, fp *InputParameters.FluidParameters) {
	if ml.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	c := Langmuir.NewLangmuir(fp)
	c.Run(ml.Graph, ml.Delay)
}
