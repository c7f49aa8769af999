package utils

import "fmt"

// Index is a list of linear positions into a Matrix or Vector. Linear
// positions within a Matrix are column-major: position p addresses entry
// (p mod nr, p / nr) of an nr x nc matrix, so that per-element fields laid
// out one column per element enumerate bottom-to-top within each element.
type Index []int

type Index2D struct {
	RI, CI Index
}

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

// NewRangeOffset creates an index from 1-based inclusive limits.
func NewRangeOffset(rmin, rmax int) (r Index) {
	return NewRange(rmin-1, rmax-1)
}

// NewRange creates an index from 0-based inclusive limits.
func NewRange(rmin, rmax int) (r Index) {
	r = make(Index, rmax-rmin+1)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Copy() (r Index) {
	r = make(Index, len(I))
	copy(r, I)
	return
}

func (I Index) Add(val int) (r Index) {
	r = I.Copy()
	for i := range r {
		r[i] += val
	}
	return
}

func (I Index) Apply(f func(val int) int) (r Index) {
	r = I.Copy()
	for i, val := range r {
		r[i] = f(val)
	}
	return
}

func (I Index) Subset(J Index) (r Index) {
	r = make(Index, len(J))
	for i, j := range J {
		r[i] = I[j]
	}
	return
}

func (I Index) Validate(imax int) error {
	for _, pos := range I {
		if pos < 0 || pos >= imax {
			return fmt.Errorf("index position %d out of range [0,%d)", pos, imax)
		}
	}
	return nil
}
