package solver

import (
	"github.com/ShihengDuan/columndg/DG1D"
	"github.com/ShihengDuan/columndg/balance"
	"github.com/ShihengDuan/columndg/utils"
)

// GradientResolver turns the current conservative state into the
// diffusive flux: it differentiates the gradient-driving variables
// within each element, resolves one shared face value per interface
// with the central numerical flux, corrects the elementwise gradient by
// the face jumps, and applies the model's gradient-flux law.
type GradientResolver struct {
	el    *DG1D.Elements1D
	model balance.Model
	bcs   map[utils.BoundaryTag]balance.BoundaryCondition
}

func NewGradientResolver(el *DG1D.Elements1D, model balance.Model,
	bcs map[utils.BoundaryTag]balance.BoundaryCondition) *GradientResolver {
	return &GradientResolver{el: el, model: model, bcs: bcs}
}

// Resolve computes the volume diffusive flux and its exterior face
// traces. state/aux are the Np x K volume containers; extState/extAux
// hold the 2 x K exterior traces with boundary ghosts already applied.
func (gr *GradientResolver) Resolve(state, aux, extState, extAux *balance.State) (sigma, extSigma *balance.State) {
	var (
		el = gr.el
		nf = el.Nfp * el.NFaces
	)
	// gradient argument on volume nodes and on exterior traces
	gradArg := balance.NewState(el.Np, el.K, gr.model.GradientVars())
	extGrad := balance.NewState(nf, el.K, gr.model.GradientVars())
	gr.model.GradientArgument(state, aux, gradArg)
	gr.model.GradientArgument(extState, extAux, extGrad)

	// strong-form derivative, corrected by the central-flux face jump
	grad := balance.NewState(el.Np, el.K, gr.model.GradientVars())
	for _, name := range gr.model.GradientVars() {
		G := gradArg.Field(name)
		GM := G.Subset(el.VmapM, nf, el.K)
		GP := extGrad.Field(name)
		// n*(G- - G*) with G* = (G- + G+)/2
		jump := GM.Copy().Subtract(GP).Scale(0.5).ElMul(el.NX).ElMul(el.FScale)
		q := el.Rx.Copy().ElMul(el.Dr.Mul(G)).Subtract(el.LIFT.Mul(jump))
		grad.Field(name).Add(q)
	}

	sigma = balance.NewState(el.Np, el.K, gr.model.GradientFluxVars())
	gr.model.GradientFlux(grad, state, aux, sigma)

	// exterior flux traces: neighbor values inside, ghosts at the ends
	extSigma = balance.NewState(nf, el.K, gr.model.GradientFluxVars())
	for _, name := range gr.model.GradientFluxVars() {
		S := sigma.Field(name)
		SP := extSigma.Field(name)
		SP.Add(S.Subset(el.VmapP, nf, el.K))
		for _, b := range el.MapB {
			bc := gr.bcs[el.FaceTags[b]]
			interior := S.At(el.VmapM[b]%el.Np, el.VmapM[b]/el.Np)
			SP.Set(b%nf, b/nf, bc.GradientFluxExterior(interior, el.NX.At(b%nf, b/nf)))
		}
	}
	return
}
