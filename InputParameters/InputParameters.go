package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML problem definition file
type DiffusionParameters struct {
	Title         string             `yaml:"Title"`
	XMin          float64            `yaml:"XMin"`
	XMax          float64            `yaml:"XMax"`
	YMin          float64            `yaml:"YMin"`
	YMax          float64            `yaml:"YMax"`
	ResX          int                `yaml:"ResX"`
	ResY          int                `yaml:"ResY"`
	Diffusivity   float64            `yaml:"Diffusivity"`
	CoefModel     string             `yaml:"CoefModel"` // "constant", "rampX" or "rampY"
	Source        float64            `yaml:"Source"`
	BCs           map[string]float64 `yaml:"BCs"` // Key is edge name: bottom, right, top, left
	Tolerance     float64            `yaml:"Tolerance"`
	MaxIterations int                `yaml:"MaxIterations"`
}

func (dp *DiffusionParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, dp)
}

func (dp *DiffusionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", dp.Title)
	fmt.Printf("[%g,%g]x[%g,%g]\t= Domain\n", dp.XMin, dp.XMax, dp.YMin, dp.YMax)
	fmt.Printf("%dx%d\t\t\t= Resolution\n", dp.ResX, dp.ResY)
	fmt.Printf("%8.5f\t\t= Diffusivity\n", dp.Diffusivity)
	fmt.Printf("[%s]\t\t= CoefModel\n", dp.CoefModel)
	fmt.Printf("%8.5f\t\t= Source\n", dp.Source)
	keys := make([]string, len(dp.BCs))
	i := 0
	for k := range dp.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, dp.BCs[key])
	}
}
