package solver

import "fmt"

// NumericalInstabilityError reports a non-finite value produced during
// an RHS evaluation. The run is lost; the caller may retry externally
// with a smaller time step.
type NumericalInstabilityError struct {
	Time                float64
	ElemFirst, ElemLast int
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("numerical instability: non-finite RHS at t=%g in elements %d..%d",
		e.Time, e.ElemFirst, e.ElemLast)
}

// StateError reports integrator misuse: stepping a finished integrator
// or constructing one with invalid time parameters.
type StateError struct {
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
