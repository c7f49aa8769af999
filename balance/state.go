package balance

import (
	"github.com/ShihengDuan/columndg/utils"
)

// State is a named collection of nodal fields sharing one shape. The
// solver uses it for conservative, auxiliary, gradient and flux
// containers alike; only the variable names differ. Fields are Np x K
// for volume data and 2 x K for face-trace data.
type State struct {
	nr, nc int
	names  []string
	fields map[string]utils.Matrix
}

func NewState(nr, nc int, names []string) (s *State) {
	s = &State{
		nr:     nr,
		nc:     nc,
		names:  append([]string{}, names...),
		fields: make(map[string]utils.Matrix, len(names)),
	}
	for _, name := range names {
		s.fields[name] = utils.NewMatrix(nr, nc)
	}
	return
}

func (s *State) Dims() (nr, nc int) { return s.nr, s.nc }

func (s *State) Names() []string { return append([]string{}, s.names...) }

func (s *State) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Field returns the named field matrix, which shares storage with the
// state: writes through it mutate the state.
func (s *State) Field(name string) utils.Matrix {
	f, ok := s.fields[name]
	if !ok {
		panic("no field named " + name)
	}
	return f
}

func (s *State) Copy() (r *State) {
	r = NewState(s.nr, s.nc, s.names)
	for name, f := range s.fields {
		r.fields[name].Add(f)
	}
	return
}

// Zero clears every field.
func (s *State) Zero() *State {
	for _, f := range s.fields {
		f.Zero()
	}
	return s
}
