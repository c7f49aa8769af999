package output

import (
	"fmt"
	"os"
	"sort"

	"github.com/ctessum/cdf"
)

// Writer persists solution records to a NetCDF file: one record per
// callback firing along an unlimited "time" dimension, each variable
// stored against the fixed "z" coordinate sequence written at creation.
type Writer struct {
	ff     *os.File
	f      *cdf.File
	names  []string
	nz     int
	record int
}

// NewWriter creates the file and writes the header and coordinate
// variable. names lists the per-node variables every record carries.
func NewWriter(path string, z []float64, names []string) (w *Writer, err error) {
	if len(z) == 0 {
		return nil, fmt.Errorf("output: empty coordinate sequence")
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("output: no variables to write")
	}
	sorted := append([]string{}, names...)
	sort.Strings(sorted)

	h := cdf.NewHeader([]string{"time", "z"}, []int{0, len(z)})
	h.AddAttribute("", "comment", "column balance-law solution records")
	h.AddVariable("time", []string{"time"}, []float64{0})
	h.AddAttribute("time", "units", "s")
	h.AddVariable("z", []string{"z"}, []float64{0})
	h.AddAttribute("z", "units", "m")
	for _, name := range sorted {
		h.AddVariable(name, []string{"time", "z"}, []float64{0})
	}
	h.Define()

	ff, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("output: create %s: %v", path, err)
	}
	f, err := cdf.Create(ff, h)
	if err != nil {
		ff.Close()
		return nil, fmt.Errorf("output: write header: %v", err)
	}
	w = &Writer{ff: ff, f: f, names: sorted, nz: len(z)}

	zw := w.f.Writer("z", []int{0}, []int{len(z)})
	if _, err = zw.Write(z); err != nil {
		ff.Close()
		return nil, fmt.Errorf("output: write coordinates: %v", err)
	}
	return
}

// WriteRecord appends one time record. fields must contain every
// variable named at creation, each with one value per node.
func (w *Writer) WriteRecord(t float64, fields map[string][]float64) error {
	for _, name := range w.names {
		vals, ok := fields[name]
		if !ok {
			return fmt.Errorf("output: record at t=%g missing variable %q", t, name)
		}
		if len(vals) != w.nz {
			return fmt.Errorf("output: variable %q has %d values, want %d", name, len(vals), w.nz)
		}
	}
	tw := w.f.Writer("time", []int{w.record}, []int{w.record + 1})
	if _, err := tw.Write([]float64{t}); err != nil {
		return fmt.Errorf("output: write time record: %v", err)
	}
	for _, name := range w.names {
		vw := w.f.Writer(name, []int{w.record, 0}, []int{w.record + 1, w.nz})
		if _, err := vw.Write(fields[name]); err != nil {
			return fmt.Errorf("output: write %q record: %v", name, err)
		}
	}
	w.record++
	return nil
}

// Records returns the number of records written so far.
func (w *Writer) Records() int { return w.record }

// Close finalizes the record count in the header and closes the file.
func (w *Writer) Close() error {
	if err := cdf.UpdateNumRecs(w.ff); err != nil {
		w.ff.Close()
		return fmt.Errorf("output: update record count: %v", err)
	}
	return w.ff.Close()
}

// Record is one time record read back from a solution file.
type Record struct {
	Time   float64
	Fields map[string][]float64
}

// ReadRecord reads record index of the named variables from a solution
// file written by Writer.
func ReadRecord(path string, index int, names []string) (rec Record, err error) {
	ff, err := os.Open(path)
	if err != nil {
		return rec, fmt.Errorf("output: open %s: %v", path, err)
	}
	defer ff.Close()
	f, err := cdf.Open(ff)
	if err != nil {
		return rec, fmt.Errorf("output: read header: %v", err)
	}

	tr := f.Reader("time", []int{index}, []int{index + 1})
	tbuf := tr.Zero(1)
	if _, err = tr.Read(tbuf); err != nil {
		return rec, fmt.Errorf("output: read time record %d: %v", index, err)
	}
	rec.Time = tbuf.([]float64)[0]

	rec.Fields = make(map[string][]float64, len(names))
	for _, name := range names {
		lens := f.Header.Lengths(name)
		if len(lens) != 2 {
			return rec, fmt.Errorf("output: variable %q not a record variable", name)
		}
		nz := lens[1]
		r := f.Reader(name, []int{index, 0}, []int{index + 1, nz})
		buf := r.Zero(nz)
		if _, err = r.Read(buf); err != nil {
			return rec, fmt.Errorf("output: read %q record %d: %v", name, index, err)
		}
		rec.Fields[name] = append([]float64{}, buf.([]float64)...)
	}
	return
}

// ReadCoordinates reads back the fixed coordinate sequence.
func ReadCoordinates(path string) (z []float64, err error) {
	ff, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("output: open %s: %v", path, err)
	}
	defer ff.Close()
	f, err := cdf.Open(ff)
	if err != nil {
		return nil, fmt.Errorf("output: read header: %v", err)
	}
	lens := f.Header.Lengths("z")
	if len(lens) != 1 {
		return nil, fmt.Errorf("output: no coordinate variable in %s", path)
	}
	r := f.Reader("z", []int{0}, []int{lens[0]})
	buf := r.Zero(lens[0])
	if _, err = r.Read(buf); err != nil {
		return nil, fmt.Errorf("output: read coordinates: %v", err)
	}
	return append([]float64{}, buf.([]float64)...), nil
}
