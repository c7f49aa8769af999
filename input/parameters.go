package input

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/ShihengDuan/columndg/utils"
)

// SimulationParameters are the YAML-file inputs of a heat column run.
// Unset fields keep the documented defaults.
type SimulationParameters struct {
	Title string `yaml:"Title"`

	// Discretization
	PolynomialOrder int     `yaml:"PolynomialOrder"` // per-element order N
	NumElements     int     `yaml:"NumElements"`     // column element count K
	Depth           float64 `yaml:"Depth"`           // column extent [m], from z=0 up

	// Time stepping
	Fourier     float64 `yaml:"Fourier"`     // dt = Fourier*dx_min^2/Alpha
	FinalTime   float64 `yaml:"FinalTime"`   // target end time [s]
	OutputEvery float64 `yaml:"OutputEvery"` // output cadence in simulated seconds

	// Physics
	RhoC    float64 `yaml:"RhoC"`    // volumetric heat capacity [J/(m^3 K)]
	Alpha   float64 `yaml:"Alpha"`   // thermal diffusivity [m^2/s]
	T0      float64 `yaml:"T0"`      // initial temperature [K]
	TBottom float64 `yaml:"TBottom"` // bottom Dirichlet temperature [K]
	TopFlux float64 `yaml:"TopFlux"` // top diffusive flux alpha*d(rhocT)/dz
}

func DefaultParameters() SimulationParameters {
	return SimulationParameters{
		Title:           "Heat Column",
		PolynomialOrder: 4,
		NumElements:     10,
		Depth:           1,
		Fourier:         0.1,
		FinalTime:       10,
		OutputEvery:     1,
		RhoC:            1,
		Alpha:           0.01,
		T0:              295,
		TBottom:         300,
		TopFlux:         0.04,
	}
}

// Parse overlays the YAML document in data onto the receiver, so fields
// the file omits keep their current (default) values.
func (p *SimulationParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, p)
}

func (p *SimulationParameters) Validate() error {
	if p.PolynomialOrder < 1 {
		return utils.ConfigErrorf("PolynomialOrder must be positive, got %d", p.PolynomialOrder)
	}
	if p.NumElements < 1 {
		return utils.ConfigErrorf("NumElements must be positive, got %d", p.NumElements)
	}
	if p.Depth <= 0 {
		return utils.ConfigErrorf("Depth must be positive, got %g", p.Depth)
	}
	if p.Fourier <= 0 {
		return utils.ConfigErrorf("Fourier number must be positive, got %g", p.Fourier)
	}
	if p.Alpha <= 0 {
		return utils.ConfigErrorf("Alpha must be positive, got %g", p.Alpha)
	}
	if p.RhoC <= 0 {
		return utils.ConfigErrorf("RhoC must be positive, got %g", p.RhoC)
	}
	if p.OutputEvery <= 0 {
		return utils.ConfigErrorf("OutputEvery must be positive, got %g", p.OutputEvery)
	}
	return nil
}

func (p *SimulationParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", p.Title)
	fmt.Printf("[%d]\t\t\t= Polynomial Order\n", p.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t= Num Elements\n", p.NumElements)
	fmt.Printf("%8.5f\t\t= Depth\n", p.Depth)
	fmt.Printf("%8.5f\t\t= Fourier\n", p.Fourier)
	fmt.Printf("%8.5f\t\t= FinalTime\n", p.FinalTime)
	fmt.Printf("%8.5f\t\t= OutputEvery\n", p.OutputEvery)
	fmt.Printf("%8.5f\t\t= RhoC\n", p.RhoC)
	fmt.Printf("%8.5f\t\t= Alpha\n", p.Alpha)
	fmt.Printf("%8.5f\t\t= T0\n", p.T0)
	fmt.Printf("%8.5f\t\t= TBottom\n", p.TBottom)
	fmt.Printf("%8.5f\t\t= TopFlux\n", p.TopFlux)
}
