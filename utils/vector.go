package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum VecDense with chainable methods. Methods marked
// "changes receiver" operate in place; use Copy() first to preserve the
// original.
type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (v Vector) {
	var data []float64
	if len(dataO) != 0 {
		data = dataO[0]
	}
	return Vector{V: mat.NewVecDense(n, data)}
}

func NewVectorConstant(n int, val float64) (v Vector) {
	return NewVector(n, ConstArray(n, val))
}

func (v Vector) Len() int             { return v.V.Len() }
func (v Vector) AtVec(i int) float64  { return v.V.AtVec(i) }
func (v Vector) RawVector() []float64 { return v.V.RawVector().Data }
func (v Vector) Dims() (r, c int)     { return v.V.Dims() }
func (v Vector) At(i, j int) float64  { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix        { return v.V.T() }

func (v Vector) Copy() (r Vector) {
	r = NewVector(v.Len())
	r.V.CopyVec(v.V)
	return
}

// Set fills the vector with val. Changes receiver.
func (v Vector) Set(val float64) Vector {
	data := v.V.RawVector().Data
	for i := range data {
		data[i] = val
	}
	return v
}

// Scale multiplies by a. Changes receiver.
func (v Vector) Scale(a float64) Vector {
	v.V.ScaleVec(a, v.V)
	return v
}

// AddScalar adds a to every entry. Changes receiver.
func (v Vector) AddScalar(a float64) Vector {
	data := v.V.RawVector().Data
	for i := range data {
		data[i] += a
	}
	return v
}

// Apply maps f over the entries. Changes receiver.
func (v Vector) Apply(f func(float64) float64) Vector {
	data := v.V.RawVector().Data
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

// Subtract subtracts a elementwise. Changes receiver.
func (v Vector) Subtract(a Vector) Vector {
	v.V.SubVec(v.V, a.V)
	return v
}

func (v Vector) Min() (min float64) {
	min = math.Inf(1)
	for _, val := range v.V.RawVector().Data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	max = math.Inf(-1)
	for _, val := range v.V.RawVector().Data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) Dot(a Vector) float64 {
	return mat.Dot(v.V, a.V)
}

func (v Vector) SubsetIndex(I Index) (r Vector) {
	data := make([]float64, len(I))
	for i, pos := range I {
		data[i] = v.AtVec(pos)
	}
	return NewVector(len(I), data)
}

// Outer forms the outer product v * b', one column per entry of b.
func (v Vector) Outer(b Vector) (R Matrix) {
	R = NewMatrix(v.Len(), b.Len())
	R.M.Outer(1, v.V, b.V)
	return
}
