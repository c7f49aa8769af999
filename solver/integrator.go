package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/ShihengDuan/columndg/DG1D"
	"github.com/ShihengDuan/columndg/balance"
)

// Phase is the integrator life-cycle state.
type Phase uint8

const (
	Initialized Phase = iota
	Stepping
	Finished
)

func (p Phase) String() string {
	switch p {
	case Initialized:
		return "Initialized"
	case Stepping:
		return "Stepping"
	case Finished:
		return "Finished"
	}
	return "Unknown"
}

// StepCallback receives the current solution for externally-owned
// output. A non-nil error is reported but does not abort integration.
type StepCallback func(snap Snapshot) error

// StableTimeStep returns the diffusive stability bound
// dt = fourier * dx_min^2 / alpha, with dx_min the smallest collocation
// node spacing. The integrator never adjusts dt itself; callers pick dt
// from this bound before construction. Empirically the five-stage
// scheme holds up to fourier of about 0.1.
func StableTimeStep(el *DG1D.Elements1D, alpha, fourier float64) float64 {
	dx := el.MinNodeSpacing()
	return fourier * dx * dx / alpha
}

// TimeIntegrator advances a conservative state with the five-stage
// low-storage Runge-Kutta scheme at a fixed time step. Exactly two
// arrays per field are held: the evolving solution and one residual
// buffer.
type TimeIntegrator struct {
	Op *DGOperator

	state *balance.State
	resid *balance.State

	dt, time, endTime float64

	outputEvery float64
	nextOutput  float64
	callback    StepCallback

	phase Phase
	steps int

	log logrus.FieldLogger
}

// NewTimeIntegrator validates the time parameters and takes ownership
// of state: the conservative field is mutated only through stage
// updates from here on.
func NewTimeIntegrator(op *DGOperator, state *balance.State, dt, t0, endTime float64) (ti *TimeIntegrator, err error) {
	if dt <= 0 {
		return nil, &StateError{Op: "NewTimeIntegrator", Reason: "time step must be positive"}
	}
	if t0 >= endTime {
		return nil, &StateError{Op: "NewTimeIntegrator", Reason: "start time must precede end time"}
	}
	nr, nc := state.Dims()
	ti = &TimeIntegrator{
		Op:      op,
		state:   state,
		resid:   balance.NewState(nr, nc, state.Names()),
		dt:      dt,
		time:    t0,
		endTime: endTime,
		phase:   Initialized,
		log:     logrus.WithField("component", "integrator"),
	}
	return
}

// SetStepCallback registers cb to fire after every elapsed interval of
// simulated time (not integrator steps), and once for the initial state
// when Run begins.
func (ti *TimeIntegrator) SetStepCallback(every float64, cb StepCallback) error {
	if every <= 0 {
		return &StateError{Op: "SetStepCallback", Reason: "callback interval must be positive"}
	}
	ti.outputEvery = every
	ti.nextOutput = ti.time + every
	ti.callback = cb
	return nil
}

func (ti *TimeIntegrator) Time() float64         { return ti.time }
func (ti *TimeIntegrator) TimeStep() float64     { return ti.dt }
func (ti *TimeIntegrator) StepsTaken() int       { return ti.steps }
func (ti *TimeIntegrator) CurrentPhase() Phase   { return ti.phase }
func (ti *TimeIntegrator) State() *balance.State { return ti.state }

// Step performs one full five-stage update, advancing time by dt.
func (ti *TimeIntegrator) Step() error {
	if ti.phase == Finished {
		return &StateError{Op: "Step", Reason: "integrator already finished"}
	}
	ti.phase = Stepping
	for stage := 0; stage < 5; stage++ {
		stageTime := ti.time + ti.dt*rk4c[stage]
		rhs, err := ti.Op.EvaluateRHS(ti.state, stageTime)
		if err != nil {
			return err
		}
		for _, name := range ti.state.Names() {
			res := ti.resid.Field(name)
			res.Scale(rk4a[stage]).Add(rhs.Field(name).Scale(ti.dt))
			ti.state.Field(name).Add(res.Copy().Scale(rk4b[stage]))
		}
	}
	ti.time += ti.dt
	ti.steps++

	if ti.callback != nil && ti.time >= ti.nextOutput-1.e-12 {
		ti.fireCallback()
		ti.nextOutput += ti.outputEvery
	}
	if ti.time >= ti.endTime-1.e-12 {
		ti.phase = Finished
	}
	return nil
}

// Run integrates to the end time, firing the callback for the initial
// state first. Callback failures are logged and tolerated; RHS failures
// abort.
func (ti *TimeIntegrator) Run() error {
	const logFrequency = 50
	if ti.phase == Finished {
		return &StateError{Op: "Run", Reason: "integrator already finished"}
	}
	if ti.phase == Initialized && ti.callback != nil {
		ti.fireCallback()
	}
	for ti.phase != Finished {
		if err := ti.Step(); err != nil {
			return err
		}
		if ti.steps%logFrequency == 0 {
			ti.log.WithFields(logrus.Fields{
				"step": ti.steps,
				"time": ti.time,
			}).Debug("stepping")
		}
	}
	return nil
}

func (ti *TimeIntegrator) fireCallback() {
	snap := ti.Op.Snapshot(ti.state, ti.time)
	if err := ti.callback(snap); err != nil {
		ti.log.WithError(err).WithField("time", ti.time).Warn("output callback failed")
	}
}
