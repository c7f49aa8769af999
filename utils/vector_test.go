package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	// constructors
	{
		v := NewVector(3, []float64{1, 2, 3})
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, 2., v.AtVec(1))
		c := NewVectorConstant(4, 2.5)
		assert.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, c.RawVector())
	}
	// chained in-place ops, Copy preserves the original
	{
		v := NewVector(3, []float64{1, 2, 3})
		w := v.Copy().Scale(2).AddScalar(-1)
		assert.Equal(t, []float64{1, 3, 5}, w.RawVector())
		assert.Equal(t, []float64{1, 2, 3}, v.RawVector())
		w.Subtract(v)
		assert.Equal(t, []float64{0, 1, 2}, w.RawVector())
		w.Apply(math.Sqrt)
		assert.True(t, near(w.AtVec(2), math.Sqrt2, 1.e-15))
	}
	// Min, Max, Dot
	{
		v := NewVector(3, []float64{3, -1, 2})
		assert.Equal(t, -1., v.Min())
		assert.Equal(t, 3., v.Max())
		assert.Equal(t, 7., v.Dot(NewVector(3, []float64{1, 2, 3})))
	}
	// SubsetIndex
	{
		v := NewVector(4, []float64{10, 20, 30, 40})
		s := v.SubsetIndex(Index{3, 0})
		assert.Equal(t, []float64{40, 10}, s.RawVector())
	}
	// Outer
	{
		v := NewVector(2, []float64{1, 2})
		R := v.Outer(NewVector(3, []float64{1, 10, 100}))
		nr, nc := R.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		assert.Equal(t, 20., R.At(1, 1))
		assert.Equal(t, 200., R.At(1, 2))
	}
}
