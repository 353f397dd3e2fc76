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

	"github.com/notargets/gofea/FE2D"
	"github.com/notargets/gofea/InputParameters"
	"github.com/notargets/gofea/model_problems"
	"github.com/spf13/cobra"
)

// diffusionCmd represents the diffusion command
var diffusionCmd = &cobra.Command{
	Use:   "diffusion",
	Short: "Steady state scalar diffusion on a structured rectangular mesh",
	Long: `
Solves -div(k grad u) = s with Dirichlet boundary values on named edges of
the rectangle. Problem parameters come from flags or a YAML file,

gofea diffusion -f problem.yaml
gofea diffusion --resX 16 --resY 8 --bottom 1 --top 0`,
	Run: func(cmd *cobra.Command, args []string) {
		defer startProfile(cmd)()
		dp := processInput(cmd)
		dp.Print()
		RunDiffusion(dp)
	},
}

func init() {
	rootCmd.AddCommand(diffusionCmd)
	diffusionCmd.Flags().StringP("file", "f", "", "YAML problem definition file")
	diffusionCmd.Flags().Float64("xMin", 0, "minimum X coordinate of the domain")
	diffusionCmd.Flags().Float64("xMax", 2, "maximum X coordinate of the domain")
	diffusionCmd.Flags().Float64("yMin", 0, "minimum Y coordinate of the domain")
	diffusionCmd.Flags().Float64("yMax", 1, "maximum Y coordinate of the domain")
	diffusionCmd.Flags().Int("resX", 16, "number of elements along X")
	diffusionCmd.Flags().Int("resY", 8, "number of elements along Y")
	diffusionCmd.Flags().Float64P("diffusivity", "k", 1, "constant diffusivity k")
	diffusionCmd.Flags().Float64P("source", "s", 0, "constant source term")
	diffusionCmd.Flags().Float64("bottom", 1, "Dirichlet value on the bottom edge")
	diffusionCmd.Flags().Float64("top", 0, "Dirichlet value on the top edge")
	diffusionCmd.Flags().Float64("left", 0, "Dirichlet value on the left edge")
	diffusionCmd.Flags().Float64("right", 0, "Dirichlet value on the right edge")
}

func processInput(cmd *cobra.Command) (dp *InputParameters.DiffusionParameters) {
	fileName, _ := cmd.Flags().GetString("file")
	if len(fileName) != 0 {
		data, err := os.ReadFile(fileName)
		if err != nil {
			fmt.Printf("unable to read problem file [%s]: %v\n", fileName, err)
			os.Exit(1)
		}
		dp = &InputParameters.DiffusionParameters{}
		if err = dp.Parse(data); err != nil {
			fmt.Printf("unable to parse problem file [%s]: %v\n", fileName, err)
			os.Exit(1)
		}
		return
	}
	dp = &InputParameters.DiffusionParameters{
		Title: "commandline",
		BCs:   make(map[string]float64),
	}
	dp.XMin, _ = cmd.Flags().GetFloat64("xMin")
	dp.XMax, _ = cmd.Flags().GetFloat64("xMax")
	dp.YMin, _ = cmd.Flags().GetFloat64("yMin")
	dp.YMax, _ = cmd.Flags().GetFloat64("yMax")
	dp.ResX, _ = cmd.Flags().GetInt("resX")
	dp.ResY, _ = cmd.Flags().GetInt("resY")
	dp.Diffusivity, _ = cmd.Flags().GetFloat64("diffusivity")
	dp.Source, _ = cmd.Flags().GetFloat64("source")
	// Bottom and top are always constrained (the default conduction problem);
	// side walls only when their flags are given, otherwise natural/no-flux.
	dp.BCs["bottom"], _ = cmd.Flags().GetFloat64("bottom")
	dp.BCs["top"], _ = cmd.Flags().GetFloat64("top")
	for _, edge := range []string{"left", "right"} {
		if cmd.Flags().Changed(edge) {
			dp.BCs[edge], _ = cmd.Flags().GetFloat64(edge)
		}
	}
	return
}

// RunDiffusion executes the model problem described by dp.
func RunDiffusion(dp *InputParameters.DiffusionParameters) {
	mp := model_problems.NewSteadyDiffusion2D(
		[2]float64{dp.XMin, dp.YMin}, [2]float64{dp.XMax, dp.YMax},
		[2]int{dp.ResX, dp.ResY}, dp.Diffusivity, dp.Source)
	mp.Coef = coefModel(dp)
	for edge, val := range dp.BCs {
		mp.EdgeValues[edge] = val
	}
	mp.Tolerance = dp.Tolerance
	mp.MaxIterations = dp.MaxIterations

	start := time.Now()
	if err := mp.Run(); err != nil {
		fmt.Printf("solve failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("solve time: %v\n", time.Since(start))
	mp.Report()
}

func coefModel(dp *InputParameters.DiffusionParameters) FE2D.CoefFunc {
	k := dp.Diffusivity
	switch dp.CoefModel {
	case "rampX":
		xMin, xMax := dp.XMin, dp.XMax
		return FE2D.VarCoef(func(x, y float64) float64 {
			return k * (1 + (x-xMin)/(xMax-xMin))
		})
	case "rampY":
		yMin, yMax := dp.YMin, dp.YMax
		return FE2D.VarCoef(func(x, y float64) float64 {
			return k * (1 + (y-yMin)/(yMax-yMin))
		})
	default:
		return FE2D.ConstCoef(k)
	}
}
