package solver

import (
	"math"

	"github.com/ShihengDuan/columndg/DG1D"
	"github.com/ShihengDuan/columndg/balance"
	"github.com/ShihengDuan/columndg/utils"
)

// DGOperator assembles the right-hand side of the semi-discrete system:
// weak-form volume integrals of the total physical flux, central
// numerical fluxes at element faces with boundary ghost resolution, and
// source terms, scaled by the inverse metric Jacobian.
type DGOperator struct {
	El    *DG1D.Elements1D
	Model balance.Model

	bcs      map[utils.BoundaryTag]balance.BoundaryCondition
	gradient *GradientResolver
}

// NewDGOperator binds a model to a mesh, verifying the variable shape
// declarations and that a boundary condition exists for every boundary
// tag the mesh carries.
func NewDGOperator(el *DG1D.Elements1D, model balance.Model) (op *DGOperator, err error) {
	if len(model.ConservativeVars()) == 0 {
		return nil, utils.ConfigErrorf("model declares no conservative variables")
	}
	for _, group := range [][]string{
		model.ConservativeVars(), model.AuxiliaryVars(),
		model.GradientVars(), model.GradientFluxVars(),
	} {
		seen := make(map[string]bool, len(group))
		for _, name := range group {
			if name == "" {
				return nil, utils.ConfigErrorf("model declares an empty variable name")
			}
			if seen[name] {
				return nil, utils.ConfigErrorf("model declares variable %q twice", name)
			}
			seen[name] = true
		}
	}
	if len(model.GradientFluxVars()) > 0 && len(model.GradientVars()) == 0 {
		return nil, utils.ConfigErrorf("model declares gradient fluxes without gradient variables")
	}

	bcs := model.BoundaryConditions()
	for tag := range bcs {
		if tag != utils.TagBottom && tag != utils.TagTop {
			return nil, utils.ConfigErrorf("unrecognized boundary tag %s", tag)
		}
	}
	for _, b := range el.MapB {
		tag := el.FaceTags[b]
		if _, ok := bcs[tag]; !ok {
			return nil, utils.ConfigErrorf("no boundary condition bound for tag %s", tag)
		}
	}

	op = &DGOperator{
		El:       el,
		Model:    model,
		bcs:      bcs,
		gradient: NewGradientResolver(el, model, bcs),
	}
	return
}

// InitialState allocates and fills the conservative and auxiliary
// containers from the model's initialization.
func (op *DGOperator) InitialState() (state, aux *balance.State) {
	state = balance.NewState(op.El.Np, op.El.K, op.Model.ConservativeVars())
	aux = balance.NewState(op.El.Np, op.El.K, op.Model.AuxiliaryVars())
	op.Model.Init(op.El.X, state, aux)
	return
}

// EvaluateRHS computes the time derivative of the conservative state at
// time t. The auxiliary, gradient and flux containers are derived fresh
// on every call; nothing is cached across calls.
func (op *DGOperator) EvaluateRHS(state *balance.State, t float64) (rhs *balance.State, err error) {
	var (
		el    = op.El
		model = op.Model
		nf    = el.Nfp * el.NFaces
	)
	// 1. auxiliary update precedes everything else
	aux := balance.NewState(el.Np, el.K, model.AuxiliaryVars())
	model.UpdateAuxiliary(state, aux)

	// exterior conservative traces: neighbor values at interior faces,
	// primal boundary ghosts at the column ends
	extState := balance.NewState(nf, el.K, model.ConservativeVars())
	for _, name := range model.ConservativeVars() {
		U := state.Field(name)
		UP := extState.Field(name)
		UP.Add(U.Subset(el.VmapP, nf, el.K))
		for _, b := range el.MapB {
			bc := op.bcs[el.FaceTags[b]]
			interior := U.At(el.VmapM[b]%el.Np, el.VmapM[b]/el.Np)
			UP.Set(b%nf, b/nf, bc.PrimalExterior(interior))
		}
	}
	extAux := balance.NewState(nf, el.K, model.AuxiliaryVars())
	model.UpdateAuxiliary(extState, extAux)

	// 2. diffusive flux, skipped for purely advective models
	var sigma, extSigma *balance.State
	if len(model.GradientFluxVars()) > 0 {
		sigma, extSigma = op.gradient.Resolve(state, aux, extState, extAux)
	}

	// 3. total physical flux and source, volume and exterior traces
	flux := balance.NewState(el.Np, el.K, model.ConservativeVars())
	extFlux := balance.NewState(nf, el.K, model.ConservativeVars())
	model.FluxFirstOrder(state, aux, flux)
	model.FluxFirstOrder(extState, extAux, extFlux)
	if sigma != nil {
		model.FluxSecondOrder(sigma, state, aux, flux)
		model.FluxSecondOrder(extSigma, extState, extAux, extFlux)
	}
	src := balance.NewState(el.Np, el.K, model.ConservativeVars())
	model.Source(state, aux, src)

	// 4-6. weak-form volume term minus central face term plus source
	rhs = balance.NewState(el.Np, el.K, model.ConservativeVars())
	var sumAbs float64
	for _, name := range model.ConservativeVars() {
		F := flux.Field(name)
		FM := F.Subset(el.VmapM, nf, el.K)
		Fstar := FM.Add(extFlux.Field(name)).Scale(0.5)
		faceTerm := el.LIFT.Mul(Fstar.ElMul(el.NX).ElMul(el.FScale))
		R := el.Rx.Copy().ElMul(el.Drw.Mul(F)).Subtract(faceTerm).Add(src.Field(name))
		rhs.Field(name).Add(R)
		sumAbs += R.SumAbs()
	}
	if math.IsNaN(sumAbs) || math.IsInf(sumAbs, 0) {
		first, last := op.nonFiniteRange(rhs)
		return nil, &NumericalInstabilityError{Time: t, ElemFirst: first, ElemLast: last}
	}
	return
}

// nonFiniteRange locates the elements containing non-finite RHS values.
// Only called after the cheap per-call finiteness probe has tripped.
func (op *DGOperator) nonFiniteRange(rhs *balance.State) (first, last int) {
	first, last = -1, -1
	for _, name := range rhs.Names() {
		R := rhs.Field(name)
		for k := 0; k < op.El.K; k++ {
			for i := 0; i < op.El.Np; i++ {
				val := R.At(i, k)
				if math.IsNaN(val) || math.IsInf(val, 0) {
					if first < 0 || k < first {
						first = k
					}
					if k > last {
						last = k
					}
					break
				}
			}
		}
	}
	return
}
