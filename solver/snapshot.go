package solver

import (
	"github.com/ShihengDuan/columndg/balance"
)

// Snapshot exposes the full solution at one instant as flat per-node
// sequences ordered bottom-to-top, for externally-owned output. It
// contains both the conservative and the freshly derived auxiliary
// variables.
type Snapshot struct {
	Time   float64
	Fields map[string][]float64
}

// Snapshot derives the output view of state at time t. The auxiliary
// variables are recomputed so the view is always consistent with the
// conservative state it was taken from.
func (op *DGOperator) Snapshot(state *balance.State, t float64) (snap Snapshot) {
	aux := balance.NewState(op.El.Np, op.El.K, op.Model.AuxiliaryVars())
	op.Model.UpdateAuxiliary(state, aux)
	snap = Snapshot{
		Time:   t,
		Fields: make(map[string][]float64),
	}
	for _, name := range op.Model.ConservativeVars() {
		snap.Fields[name] = op.El.FlattenField(state.Field(name))
	}
	for _, name := range op.Model.AuxiliaryVars() {
		snap.Fields[name] = op.El.FlattenField(aux.Field(name))
	}
	return
}
