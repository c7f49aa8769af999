package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a gonum Dense with chainable methods. Methods marked
// "changes receiver" operate in place; use Copy() first to preserve the
// original. Per-element solver fields are laid out with one column per
// element, one row per node within the element.
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var data []float64
	if len(dataO) != 0 {
		data = dataO[0]
	}
	return Matrix{M: mat.NewDense(nr, nc, data)}
}

func (m Matrix) Dims() (r, c int)    { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix       { return m.M.T() }
func (m Matrix) RawData() []float64  { return m.M.RawMatrix().Data }

// Set changes receiver.
func (m Matrix) Set(i, j int, val float64) Matrix {
	m.M.Set(i, j, val)
	return m
}

// SetCol changes receiver.
func (m Matrix) SetCol(j int, data []float64) Matrix {
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) Copy() (R Matrix) {
	nr, nc := m.Dims()
	R = NewMatrix(nr, nc)
	R.M.Copy(m.M)
	return
}

func (m Matrix) Transpose() (R Matrix) {
	nr, nc := m.Dims()
	R = NewMatrix(nc, nr)
	R.M.Copy(m.M.T())
	return
}

// Mul returns the matrix product m*A without changing the receiver.
func (m Matrix) Mul(A Matrix) (R Matrix) {
	nr, _ := m.Dims()
	_, nc := A.Dims()
	R = NewMatrix(nr, nc)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) Inverse() (R Matrix, err error) {
	nr, nc := m.Dims()
	R = NewMatrix(nr, nc)
	err = R.M.Inverse(m.M)
	return
}

// Scale changes receiver.
func (m Matrix) Scale(a float64) Matrix {
	m.M.Scale(a, m.M)
	return m
}

// AddScalar changes receiver.
func (m Matrix) AddScalar(a float64) Matrix {
	data := m.RawData()
	for i := range data {
		data[i] += a
	}
	return m
}

// Add changes receiver.
func (m Matrix) Add(A Matrix) Matrix {
	m.M.Add(m.M, A.M)
	return m
}

// Subtract changes receiver.
func (m Matrix) Subtract(A Matrix) Matrix {
	m.M.Sub(m.M, A.M)
	return m
}

// ElMul multiplies elementwise. Changes receiver.
func (m Matrix) ElMul(A Matrix) Matrix {
	m.M.MulElem(m.M, A.M)
	return m
}

// POW raises each entry to the integer power p. Changes receiver.
func (m Matrix) POW(p int) Matrix {
	data := m.RawData()
	for i, val := range data {
		if p < 0 {
			data[i] = 1. / POW(val, -p)
		} else {
			data[i] = POW(val, p)
		}
	}
	return m
}

// Apply maps f over the entries. Changes receiver.
func (m Matrix) Apply(f func(float64) float64) Matrix {
	data := m.RawData()
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

// Zero clears all entries. Changes receiver.
func (m Matrix) Zero() Matrix {
	data := m.RawData()
	for i := range data {
		data[i] = 0
	}
	return m
}

// Subset gathers the column-major linear positions I into a new
// nr x nc matrix, filled column by column.
func (m Matrix) Subset(I Index, nr, nc int) (R Matrix) {
	var (
		mr, _ = m.Dims()
	)
	R = NewMatrix(nr, nc)
	for i, pos := range I {
		R.M.Set(i%nr, i/nr, m.At(pos%mr, pos/mr))
	}
	return
}

// Assign scatters A (read column by column) into the column-major linear
// positions I. Changes receiver.
func (m Matrix) Assign(I Index, A Matrix) Matrix {
	var (
		mr, _ = m.Dims()
		ar, _ = A.Dims()
	)
	for i, pos := range I {
		m.M.Set(pos%mr, pos/mr, A.At(i%ar, i/ar))
	}
	return m
}

// AssignScalar sets the column-major linear positions I to val. Changes
// receiver.
func (m Matrix) AssignScalar(I Index, val float64) Matrix {
	mr, _ := m.Dims()
	for _, pos := range I {
		m.M.Set(pos%mr, pos/mr, val)
	}
	return m
}

func (m Matrix) Row(i int) (V Vector) {
	_, nc := m.Dims()
	V = NewVector(nc)
	for j := 0; j < nc; j++ {
		V.V.SetVec(j, m.At(i, j))
	}
	return
}

func (m Matrix) Col(j int) (V Vector) {
	nr, _ := m.Dims()
	V = NewVector(nr)
	for i := 0; i < nr; i++ {
		V.V.SetVec(i, m.At(i, j))
	}
	return
}

func (m Matrix) Min() (min float64) {
	min = math.Inf(1)
	for _, val := range m.RawData() {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	max = math.Inf(-1)
	for _, val := range m.RawData() {
		if val > max {
			max = val
		}
	}
	return
}

// SumAbs accumulates the absolute values of all entries; a NaN or Inf
// anywhere makes the result non-finite, which gives a single cheap
// finiteness probe per matrix.
func (m Matrix) SumAbs() (sum float64) {
	for _, val := range m.RawData() {
		sum += math.Abs(val)
	}
	return
}

func (m Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.M, mat.Squeeze()))
}

// MatFind locates entries of an arbitrary gonum matrix satisfying op
// against val, returning parallel row/column position lists.
func MatFind(MI mat.Matrix, op EvalOp, val float64) (I2 Index2D) {
	nr, nc := MI.Dims()
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			if op.Eval(MI.At(i, j), val) {
				I2.RI = append(I2.RI, i)
				I2.CI = append(I2.CI, j)
			}
		}
	}
	return
}

// NewSymTriDiagonal builds a symmetric tridiagonal matrix from the main
// diagonal d0 and first off-diagonal d1.
func NewSymTriDiagonal(d0, d1 []float64) (J *mat.SymDense) {
	J = mat.NewSymDense(len(d0), nil)
	for i, val := range d0 {
		J.SetSym(i, i, val)
	}
	for i, val := range d1 {
		J.SetSym(i, i+1, val)
	}
	return
}
