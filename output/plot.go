package output

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotProfile renders a variable-against-height profile to an image
// file (format chosen by extension, e.g. .png).
func PlotProfile(path, name string, z, vals []float64) error {
	if len(z) != len(vals) {
		return fmt.Errorf("output: plot %q: %d coordinates but %d values", name, len(z), len(vals))
	}
	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = name
	p.Y.Label.Text = "z [m]"

	xys := make(plotter.XYs, len(z))
	for i := range z {
		xys[i].X = vals[i]
		xys[i].Y = z[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("output: plot %q: %v", name, err)
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(4*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("output: save plot %q: %v", name, err)
	}
	return nil
}
