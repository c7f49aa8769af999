package balance

import (
	"github.com/ShihengDuan/columndg/utils"
)

// Model supplies the physics of a balance law: the variable shapes of
// the state containers, pointwise transforms between them, and the
// boundary resolution at the column ends. All operations must be pure
// and node-local: every destination entry may depend only on the same
// entry of the inputs, because the solver also evaluates them on
// face-trace containers holding boundary ghost data.
type Model interface {
	// ConservativeVars names the fields advanced in time.
	ConservativeVars() []string
	// AuxiliaryVars names derived fields recomputed every evaluation.
	AuxiliaryVars() []string
	// GradientVars names the gradient-driving fields.
	GradientVars() []string
	// GradientFluxVars names the diffusive flux fields. An empty list
	// disables the gradient pipeline entirely.
	GradientFluxVars() []string

	// BoundaryConditions keys a condition per boundary tag. The solver
	// verifies at bind time that every mesh boundary tag is covered.
	BoundaryConditions() map[utils.BoundaryTag]BoundaryCondition

	// Init fills the conservative and auxiliary fields from the node
	// coordinates.
	Init(x utils.Matrix, state, aux *State)

	// UpdateAuxiliary recomputes aux from state. It runs before any
	// other evaluation in an RHS call.
	UpdateAuxiliary(state, aux *State)

	// GradientArgument writes the gradient-driving fields.
	GradientArgument(state, aux, grad *State)

	// GradientFlux converts the differentiated gradient fields into
	// the diffusive flux fields.
	GradientFlux(grad, state, aux, flux *State)

	// FluxFirstOrder adds the first-order (advective) flux into flux,
	// keyed by conservative variable. Optional; embed NoFirstOrderFlux
	// for a no-op.
	FluxFirstOrder(state, aux, flux *State)

	// FluxSecondOrder adds the second-order (diffusive) flux into
	// flux, keyed by conservative variable.
	FluxSecondOrder(sigma, state, aux, flux *State)

	// Source adds the source terms into src, keyed by conservative
	// variable. Optional; embed NoSource for a no-op.
	Source(state, aux, src *State)
}

// NoFirstOrderFlux is an embeddable no-op for purely diffusive models.
type NoFirstOrderFlux struct{}

func (NoFirstOrderFlux) FluxFirstOrder(state, aux, flux *State) {}

// NoSource is an embeddable no-op for source-free models.
type NoSource struct{}

func (NoSource) Source(state, aux, src *State) {}
