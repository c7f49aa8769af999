package balance

// BoundaryCondition resolves exterior ghost data at a boundary face.
// Two resolutions are needed because first-order and second-order terms
// want different exterior data: the primal resolution feeds the state
// traces and the gradient computation, the gradient-flux resolution
// feeds the diffusive flux traces. Ghost values are chosen so that the
// central numerical flux at the face lands exactly on the prescribed
// boundary value.
type BoundaryCondition interface {
	// PrimalExterior returns the ghost conservative value given the
	// interior trace value.
	PrimalExterior(interior float64) float64

	// GradientFluxExterior returns the ghost diffusive flux given the
	// interior trace value and the outward face normal.
	GradientFluxExterior(interior, normal float64) float64
}

// Dirichlet pins the face value of the conservative field: the primal
// ghost mirrors the interior about the prescribed value so the central
// average equals Value exactly. The diffusive flux passes through
// unconstrained.
type Dirichlet struct {
	Value float64
}

func (d Dirichlet) PrimalExterior(interior float64) float64 {
	return 2*d.Value - interior
}

func (d Dirichlet) GradientFluxExterior(interior, normal float64) float64 {
	return interior
}

// Neumann prescribes the outward diffusive flux sigma·n at the face:
// the flux ghost mirrors the interior about Flux·n so the central
// average equals the prescribed flux exactly. The conservative field
// passes through unconstrained (zero jump).
type Neumann struct {
	Flux float64
}

func (n Neumann) PrimalExterior(interior float64) float64 {
	return interior
}

func (n Neumann) GradientFluxExterior(interior, normal float64) float64 {
	return 2*n.Flux*normal - interior
}
