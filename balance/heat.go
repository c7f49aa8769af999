package balance

import (
	"github.com/ShihengDuan/columndg/utils"
)

// Variable names of the heat column model.
const (
	VarRhoCT = "rhocT"            // conservative energy density rho*c*T
	VarT     = "T"                // auxiliary temperature
	VarSigma = "alpha_grad_rhocT" // diffusive flux alpha*d(rhocT)/dz
)

// HeatColumnParameters configures the single-field heat column.
type HeatColumnParameters struct {
	// RhoC is the volumetric heat capacity rho*c [J/(m^3 K)].
	RhoC float64
	// Alpha is the thermal diffusivity [m^2/s].
	Alpha float64
	// T0 is the initial temperature [K], used when InitProfile is nil.
	T0 float64
	// TBottom is the Dirichlet temperature at the bottom face [K].
	TBottom float64
	// TopFlux is the prescribed diffusive flux alpha*d(rhocT)/dz at the
	// top face; positive values heat the column from above.
	TopFlux float64
	// InitProfile optionally gives the initial temperature as a
	// function of height, overriding T0.
	InitProfile func(z float64) float64
}

// DefaultHeatColumnParameters returns the reference soil-column setup:
// unit heat capacity, diffusivity 0.01, a column initially at 295 K
// heated to 300 K from below and by a small constant flux from above.
func DefaultHeatColumnParameters() HeatColumnParameters {
	return HeatColumnParameters{
		RhoC:    1,
		Alpha:   0.01,
		T0:      295,
		TBottom: 300,
		TopFlux: 0.04,
	}
}

// HeatColumn is the reference BalanceLawModel: linear diffusion of the
// energy density rho*c*T through a one-dimensional column, Dirichlet
// temperature below, prescribed flux above. First-order flux and source
// are the default no-ops.
type HeatColumn struct {
	NoFirstOrderFlux
	NoSource
	Param HeatColumnParameters
}

func NewHeatColumn(p HeatColumnParameters) *HeatColumn {
	return &HeatColumn{Param: p}
}

func (hc *HeatColumn) ConservativeVars() []string { return []string{VarRhoCT} }
func (hc *HeatColumn) AuxiliaryVars() []string    { return []string{VarT} }
func (hc *HeatColumn) GradientVars() []string     { return []string{VarRhoCT} }
func (hc *HeatColumn) GradientFluxVars() []string { return []string{VarSigma} }

func (hc *HeatColumn) BoundaryConditions() map[utils.BoundaryTag]BoundaryCondition {
	return map[utils.BoundaryTag]BoundaryCondition{
		utils.TagBottom: Dirichlet{Value: hc.Param.RhoC * hc.Param.TBottom},
		utils.TagTop:    Neumann{Flux: hc.Param.TopFlux},
	}
}

func (hc *HeatColumn) Init(x utils.Matrix, state, aux *State) {
	var (
		u = state.Field(VarRhoCT)
		T = aux.Field(VarT)
	)
	nr, nc := x.Dims()
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			temp := hc.Param.T0
			if hc.Param.InitProfile != nil {
				temp = hc.Param.InitProfile(x.At(i, j))
			}
			T.Set(i, j, temp)
			u.Set(i, j, hc.Param.RhoC*temp)
		}
	}
}

func (hc *HeatColumn) UpdateAuxiliary(state, aux *State) {
	aux.Field(VarT).Zero().Add(state.Field(VarRhoCT)).Scale(1 / hc.Param.RhoC)
}

func (hc *HeatColumn) GradientArgument(state, aux, grad *State) {
	grad.Field(VarRhoCT).Zero().Add(state.Field(VarRhoCT))
}

func (hc *HeatColumn) GradientFlux(grad, state, aux, flux *State) {
	flux.Field(VarSigma).Zero().Add(grad.Field(VarRhoCT)).Scale(hc.Param.Alpha)
}

func (hc *HeatColumn) FluxSecondOrder(sigma, state, aux, flux *State) {
	flux.Field(VarRhoCT).Add(sigma.Field(VarSigma).Copy().Scale(-1))
}
