package analysis

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SavePNG writes the profiles as a line chart. The image format follows the
// file extension.
func SavePNG(path, title string, profiles ...Profile) error {
	if len(profiles) == 0 {
		return fmt.Errorf("no profiles to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "height"
	p.Add(plotter.NewGrid())

	for i, prof := range profiles {
		pts := make(plotter.XYs, len(prof.X))
		for j := range prof.X {
			pts[j] = plotter.XY{X: prof.X[j], Y: prof.Height[j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("profile %d: %w", i, err)
		}
		line.Width = vg.Points(1)
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("z=%.2f", prof.Z), line)
	}
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
