package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type FluidParameters struct {
	Title           string  `yaml:"Title"`
	Dimensionality  string  `yaml:"Dimensionality"` // One of "3D", "XZ", "Z"
	Nx              int     `yaml:"Nx"`
	Ny              int     `yaml:"Ny"`
	Nz              int     `yaml:"Nz"`
	XMin            float64 `yaml:"XMin"`
	XMax            float64 `yaml:"XMax"`
	YMin            float64 `yaml:"YMin"`
	YMax            float64 `yaml:"YMax"`
	ZMin            float64 `yaml:"ZMin"`
	ZMax            float64 `yaml:"ZMax"`
	NPatches        int     `yaml:"NPatches"`
	CFL             float64 `yaml:"CFL"`
	FinalTime       float64 `yaml:"FinalTime"`
	MaxSteps        int     `yaml:"MaxSteps"`
	Density         float64 `yaml:"Density"` // Background number density [1/m^3]
	Epsilon         float64 `yaml:"Epsilon"` // Perturbation amplitude in units of c
	NOscZ           int     `yaml:"NOscZ"`   // Oscillation periods across the Z extent
	DiagnosticsFile string  `yaml:"DiagnosticsFile"`

	Species []SpeciesParameters `yaml:"Species"`
}

// Per species parameters; charge and mass are in multiples of the
// electron charge magnitude and mass
type SpeciesParameters struct {
	Name         string  `yaml:"Name"`
	Charge       float64 `yaml:"Charge"`
	Mass         float64 `yaml:"Mass"`
	DoNotPush    bool    `yaml:"DoNotPush"`
	DoNotGather  bool    `yaml:"DoNotGather"`
	DoNotDeposit bool    `yaml:"DoNotDeposit"`
}

func (fp *FluidParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, fp)
}

func (fp *FluidParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", fp.Title)
	fmt.Printf("[%s]\t\t\t= Dimensionality\n", fp.Dimensionality)
	fmt.Printf("[%d,%d,%d]\t\t= Cells\n", fp.Nx, fp.Ny, fp.Nz)
	fmt.Printf("[%d]\t\t\t\t= Patches\n", fp.NPatches)
	fmt.Printf("%8.5f\t\t= CFL\n", fp.CFL)
	fmt.Printf("%8.5g\t\t= FinalTime\n", fp.FinalTime)
	fmt.Printf("%8.5g\t\t= Density\n", fp.Density)
	fmt.Printf("%8.5f\t\t= Epsilon\n", fp.Epsilon)
	for _, sp := range fp.Species {
		fmt.Printf("Species[%s] = charge %4.1f, mass %8.2f\n",
			sp.Name, sp.Charge, sp.Mass)
	}
}
