package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solution.nc")
	z := []float64{0, 0.25, 0.5, 0.75, 1}
	names := []string{"rhocT", "T"}

	w, err := NewWriter(path, z, names)
	assert.NoError(t, err)

	rec0 := map[string][]float64{
		"rhocT": {295, 296, 297, 298, 299},
		"T":     {295, 296, 297, 298, 299},
	}
	rec1 := map[string][]float64{
		"rhocT": {300, 300, 300, 300, 300},
		"T":     {150, 150, 150, 150, 150},
	}
	assert.NoError(t, w.WriteRecord(0, rec0))
	assert.NoError(t, w.WriteRecord(0.5, rec1))
	assert.Equal(t, 2, w.Records())

	// shape mismatches are rejected before anything is written
	err = w.WriteRecord(1, map[string][]float64{"rhocT": {1, 2, 3, 4, 5}})
	assert.Error(t, err)
	err = w.WriteRecord(1, map[string][]float64{
		"rhocT": {1, 2},
		"T":     {1, 2},
	})
	assert.Error(t, err)

	assert.NoError(t, w.Close())

	zBack, err := ReadCoordinates(path)
	assert.NoError(t, err)
	assert.Equal(t, z, zBack)

	rec, err := ReadRecord(path, 1, names)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, rec.Time)
	assert.Equal(t, rec1["T"], rec.Fields["T"])
	assert.Equal(t, rec1["rhocT"], rec.Fields["rhocT"])

	rec, err = ReadRecord(path, 0, []string{"T"})
	assert.NoError(t, err)
	assert.Equal(t, 0., rec.Time)
	assert.Equal(t, rec0["T"], rec.Fields["T"])
}

func TestWriterValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solution.nc")
	_, err := NewWriter(path, nil, []string{"T"})
	assert.Error(t, err)
	_, err = NewWriter(path, []float64{0, 1}, nil)
	assert.Error(t, err)
}

func TestPlotProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.png")
	z := []float64{0, 0.5, 1}
	vals := []float64{300, 297, 295}
	assert.NoError(t, PlotProfile(path, "T", z, vals))
	fi, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))

	assert.Error(t, PlotProfile(path, "T", z, vals[:2]))
}
