package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShihengDuan/columndg/DG1D"
	"github.com/ShihengDuan/columndg/balance"
	"github.com/ShihengDuan/columndg/utils"
)

// insulatedColumn closes the heat column with zero-flux conditions at
// both ends, so the total energy content is a conserved quantity.
type insulatedColumn struct {
	*balance.HeatColumn
}

func (ic insulatedColumn) BoundaryConditions() map[utils.BoundaryTag]balance.BoundaryCondition {
	return map[utils.BoundaryTag]balance.BoundaryCondition{
		utils.TagBottom: balance.Neumann{},
		utils.TagTop:    balance.Neumann{},
	}
}

func TestStableTimeStep(t *testing.T) {
	el, err := DG1D.NewColumn(3, DG1D.UniformMesh1D(0, 2, 4))
	assert.NoError(t, err)
	dx := el.MinNodeSpacing()
	dt := StableTimeStep(el, 0.01, 0.1)
	assert.InDelta(t, 0.1*dx*dx/0.01, dt, 1.e-15)
}

func TestIntegratorStateMachine(t *testing.T) {
	p := balance.DefaultHeatColumnParameters()
	_, op := heatSetup(t, 2, 4, p)
	state, _ := op.InitialState()

	// invalid time parameters
	_, err := NewTimeIntegrator(op, state, 0, 0, 1)
	var stErr *StateError
	assert.True(t, errors.As(err, &stErr))
	_, err = NewTimeIntegrator(op, state, 0.01, 1, 1)
	assert.True(t, errors.As(err, &stErr))

	// phase transitions across a short run
	dt := StableTimeStep(op.El, p.Alpha, 0.05)
	ti, err := NewTimeIntegrator(op, state, dt, 0, 3*dt)
	assert.NoError(t, err)
	assert.Equal(t, Initialized, ti.CurrentPhase())
	assert.Equal(t, "Initialized", ti.CurrentPhase().String())

	assert.NoError(t, ti.Step())
	assert.Equal(t, Stepping, ti.CurrentPhase())
	assert.Equal(t, 1, ti.StepsTaken())
	assert.InDelta(t, dt, ti.Time(), 1.e-15)

	assert.NoError(t, ti.Step())
	assert.NoError(t, ti.Step())
	assert.Equal(t, Finished, ti.CurrentPhase())

	// a finished integrator refuses further work
	err = ti.Step()
	assert.True(t, errors.As(err, &stErr))
	err = ti.Run()
	assert.True(t, errors.As(err, &stErr))

	// invalid callback interval
	err = ti.SetStepCallback(0, func(Snapshot) error { return nil })
	assert.True(t, errors.As(err, &stErr))
}

func TestIntegratorCallbackCadence(t *testing.T) {
	p := balance.DefaultHeatColumnParameters()
	p.Alpha = 1.e-4
	_, op := heatSetup(t, 2, 4, p)
	state, _ := op.InitialState()

	// dt divides the output interval evenly: one initial snapshot plus
	// four interval snapshots over a unit run
	ti, err := NewTimeIntegrator(op, state, 0.01, 0, 1)
	assert.NoError(t, err)
	var times []float64
	err = ti.SetStepCallback(0.25, func(snap Snapshot) error {
		times = append(times, snap.Time)
		return nil
	})
	assert.NoError(t, err)
	assert.NoError(t, ti.Run())
	assert.Equal(t, Finished, ti.CurrentPhase())
	assert.Equal(t, 100, ti.StepsTaken())
	assert.Len(t, times, 5)
	assert.Equal(t, 0., times[0])
	assert.InDelta(t, 0.25, times[1], 1.e-9)
	assert.InDelta(t, 1.0, times[4], 1.e-9)
}

func TestIntegratorCallbackErrorTolerated(t *testing.T) {
	p := balance.DefaultHeatColumnParameters()
	p.Alpha = 1.e-4
	_, op := heatSetup(t, 2, 4, p)
	state, _ := op.InitialState()
	ti, _ := NewTimeIntegrator(op, state, 0.01, 0, 0.1)
	var fired int
	_ = ti.SetStepCallback(0.05, func(Snapshot) error {
		fired++
		return errors.New("disk full")
	})
	// output failures are reported but never abort the run
	assert.NoError(t, ti.Run())
	assert.Equal(t, Finished, ti.CurrentPhase())
	assert.Equal(t, 3, fired)
}

func TestEnergyConservation(t *testing.T) {
	p := balance.DefaultHeatColumnParameters()
	p.InitProfile = func(z float64) float64 { return 300 + 10*math.Cos(math.Pi*z) }
	el, err := DG1D.NewColumn(4, DG1D.UniformMesh1D(0, 1, 8))
	assert.NoError(t, err)
	model := insulatedColumn{balance.NewHeatColumn(p)}
	op, err := NewDGOperator(el, model)
	assert.NoError(t, err)

	state, _ := op.InitialState()
	before := el.Integrate(state.Field(balance.VarRhoCT))

	dt := StableTimeStep(el, p.Alpha, 0.05)
	ti, err := NewTimeIntegrator(op, state, dt, 0, 50*dt)
	assert.NoError(t, err)
	assert.NoError(t, ti.Run())

	after := el.Integrate(ti.State().Field(balance.VarRhoCT))
	assert.InDelta(t, before, after, 1.e-9*math.Abs(before))
	// diffusion smoothed the profile without changing its content
	U := ti.State().Field(balance.VarRhoCT)
	assert.Greater(t, U.Min(), 290.)
	assert.Less(t, U.Max(), 310.)
}

// Decaying sine mode with an exact closed form: T(z,t) =
// exp(-alpha*(pi/2)^2*t) * sin(pi*z/2) on [0,1], pinned to zero below,
// insulated above.
func TestHeatEquationConvergence(t *testing.T) {
	const (
		alpha     = 0.01
		finalTime = 2.0
	)
	p := balance.HeatColumnParameters{
		RhoC:    1,
		Alpha:   alpha,
		TBottom: 0,
		TopFlux: 0,
		InitProfile: func(z float64) float64 {
			return math.Sin(math.Pi * z / 2)
		},
	}
	el, err := DG1D.NewColumn(4, DG1D.UniformMesh1D(0, 1, 8))
	assert.NoError(t, err)
	op, err := NewDGOperator(el, balance.NewHeatColumn(p))
	assert.NoError(t, err)
	state, _ := op.InitialState()

	dt := StableTimeStep(el, alpha, 0.05)
	nSteps := math.Ceil(finalTime / dt)
	dt = finalTime / nSteps
	ti, err := NewTimeIntegrator(op, state, dt, 0, finalTime)
	assert.NoError(t, err)
	assert.NoError(t, ti.Run())

	decay := math.Exp(-alpha * math.Pi * math.Pi / 4 * finalTime)
	U := ti.State().Field(balance.VarRhoCT)
	var maxErr float64
	for k := 0; k < el.K; k++ {
		for i := 0; i < el.Np; i++ {
			exact := decay * math.Sin(math.Pi*el.X.At(i, k)/2)
			if e := math.Abs(U.At(i, k) - exact); e > maxErr {
				maxErr = e
			}
		}
	}
	assert.Less(t, maxErr, 1.e-4)
}

func TestStableAtNinetyPercentOfBound(t *testing.T) {
	p := balance.DefaultHeatColumnParameters()
	p.InitProfile = func(z float64) float64 { return 300 + 10*math.Cos(10*math.Pi*z) }
	_, op := heatSetup(t, 4, 8, p)
	state, _ := op.InitialState()

	dt := StableTimeStep(op.El, p.Alpha, 0.9*0.1)
	ti, err := NewTimeIntegrator(op, state, dt, 0, 500*dt)
	assert.NoError(t, err)
	assert.NoError(t, ti.Run())
	assert.Equal(t, Finished, ti.CurrentPhase())
	assert.False(t, math.IsNaN(ti.State().Field(balance.VarRhoCT).SumAbs()))
}

func TestInstabilityDetection(t *testing.T) {
	p := balance.DefaultHeatColumnParameters()
	p.InitProfile = func(z float64) float64 { return 300 + 10*math.Cos(10*math.Pi*z) }
	_, op := heatSetup(t, 4, 8, p)
	state, _ := op.InitialState()

	// an order of magnitude past the stability bound must blow up, and
	// the blowup must surface as a typed error instead of silent NaNs
	dt := StableTimeStep(op.El, p.Alpha, 1.0)
	ti, err := NewTimeIntegrator(op, state, dt, 0, 1.e6)
	assert.NoError(t, err)
	var instab *NumericalInstabilityError
	for i := 0; i < 5000; i++ {
		if err = ti.Step(); err != nil {
			break
		}
	}
	assert.True(t, errors.As(err, &instab))
}
