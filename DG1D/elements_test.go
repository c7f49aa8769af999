package DG1D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShihengDuan/columndg/utils"
)

func TestElements1D(t *testing.T) {
	// node coordinates and lifting operator, order 3 on [0,2]
	{
		el, err := NewColumn(3, UniformMesh1D(0, 2, 4))
		assert.NoError(t, err)
		assert.Equal(t, 4, el.K)
		assert.Equal(t, 4, el.Np)
		assert.True(t, near(el.X.At(0, 1), 0.5))
		assert.True(t, near(el.X.At(3, 1), 1.0))
		assert.True(t, near(el.X.At(3, 2), 1.5))
		assert.True(t, near(el.X.At(2, 3), 1.8618033988))
		assert.True(t, near(el.X.At(1, 1), 0.6381966011))

		assert.True(t, near(el.LIFT.At(0, 0)+el.LIFT.At(0, 1), 6))
		assert.True(t, near(el.LIFT.At(3, 0)+el.LIFT.At(3, 1), 6))
		assert.True(t, near(el.LIFT.At(2, 0), 0.8944271909))
		assert.True(t, near(el.LIFT.At(2, 1), -0.8944271909))
		assert.True(t, near(el.LIFT.At(1, 0), -0.8944271909))
		assert.True(t, near(el.LIFT.At(1, 1), 0.8944271909))
	}
	// differentiation is exact on the polynomial space
	{
		el, _ := NewColumn(3, UniformMesh1D(0, 2, 4))
		F := utils.NewMatrix(el.Np, 1)
		for i := 0; i < el.Np; i++ {
			F.Set(i, 0, utils.POW(el.R.AtVec(i), 3))
		}
		DF := el.Dr.Mul(F)
		for i := 0; i < el.Np; i++ {
			r := el.R.AtVec(i)
			assert.InDelta(t, 3*r*r, DF.At(i, 0), 1.e-10)
		}
	}
	// weak operator adjoint identity M*Drw = Dr'*M
	{
		el, _ := NewColumn(4, UniformMesh1D(0, 1, 2))
		A := el.MassRef.Mul(el.Drw)
		B := el.Dr.Transpose().Mul(el.MassRef)
		for i := 0; i < el.Np; i++ {
			for j := 0; j < el.Np; j++ {
				assert.InDelta(t, B.At(i, j), A.At(i, j), 1.e-12)
			}
		}
		// quadrature weights integrate the constant over [-1,1]
		var sum float64
		for i := 0; i < el.Np; i++ {
			sum += el.W.AtVec(i)
		}
		assert.True(t, near(sum, 2))
	}
	// face trace maps and boundary tagging
	{
		el, _ := NewColumn(3, UniformMesh1D(0, 2, 4))
		assert.Equal(t, utils.Index{0, 3, 4, 7, 8, 11, 12, 15}, el.VmapM)
		assert.Equal(t, utils.Index{0, 4, 3, 8, 7, 12, 11, 15}, el.VmapP)
		assert.Equal(t, utils.Index{0, 7}, el.MapB)
		assert.Equal(t, 0, el.MapBottom)
		assert.Equal(t, 7, el.MapTop)
		assert.Equal(t, 0, el.VmapBottom)
		assert.Equal(t, 15, el.VmapTop)
		assert.Equal(t, utils.TagBottom, el.FaceTags[el.MapBottom])
		assert.Equal(t, utils.TagTop, el.FaceTags[el.MapTop])
		assert.Equal(t, utils.TagInterior, el.FaceTags[1])
	}
	// quadrature over the column
	{
		el, _ := NewColumn(3, UniformMesh1D(0, 2, 4))
		ones := utils.NewMatrix(el.Np, el.K).AddScalar(1)
		assert.True(t, near(el.Integrate(ones), 2))
		assert.True(t, near(el.Integrate(el.X), 2)) // integral of x over [0,2]
		assert.True(t, near(el.MinNodeSpacing(), 0.1381966011))
	}
	// uneven element sizes
	{
		el, err := NewColumn(2, []float64{0, 0.25, 0.75, 2})
		assert.NoError(t, err)
		assert.True(t, near(el.X.At(0, 0), 0))
		assert.True(t, near(el.X.At(el.Np-1, el.K-1), 2))
		assert.True(t, near(el.J.At(0, 0), 0.125))
		assert.True(t, near(el.J.At(0, 1), 0.25))
		assert.True(t, near(el.J.At(0, 2), 0.625))
		assert.True(t, near(el.FScale.At(0, 1), 4))
		ones := utils.NewMatrix(el.Np, el.K).AddScalar(1)
		assert.True(t, near(el.Integrate(ones), 2))
	}
	// construction errors
	{
		var cfgErr *utils.ConfigurationError
		_, err := NewColumn(0, UniformMesh1D(0, 1, 4))
		assert.True(t, errors.As(err, &cfgErr))
		_, err = NewColumn(2, []float64{0})
		assert.True(t, errors.As(err, &cfgErr))
		_, err = NewColumn(2, []float64{0, 1, 1})
		assert.True(t, errors.As(err, &cfgErr))
	}
}

func near(a, b float64) (l bool) {
	bound := math.Max(1.e-08*math.Abs(a), 1.e-10)
	if math.Abs(a-b) <= bound {
		l = true
	}
	return
}
