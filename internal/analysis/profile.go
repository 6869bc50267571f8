package analysis

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/warp/internal/surface"
)

// Profile is a cross-section of the surface at constant z.
type Profile struct {
	Z      float64
	X      []float64
	Height []float64
}

// Min returns the lowest height and the x where it occurs.
func (p Profile) Min() (x, height float64) {
	if len(p.Height) == 0 {
		return 0, 0
	}
	idx := 0
	for i, h := range p.Height {
		if h < p.Height[idx] {
			idx = i
		}
	}
	return p.X[idx], p.Height[idx]
}

// Slice returns the grid row closest to z. samples must be laid out the way
// surface.Regenerate produces them.
func Slice(samples []surface.Sample, spec surface.GridSpec, z float64) Profile {
	cols := spec.Resolution + 1
	if len(samples) < cols*cols {
		return Profile{Z: z}
	}

	half := spec.Extent / 2
	row := int(math.Round((z + half) / spec.Step()))
	row = max(0, min(spec.Resolution, row))

	p := Profile{
		Z:      -half + float64(row)*spec.Step(),
		X:      make([]float64, cols),
		Height: make([]float64, cols),
	}
	for j := 0; j < cols; j++ {
		s := samples[row*cols+j]
		p.X[j] = float64(s.X)
		p.Height[j] = float64(s.Y)
	}
	return p
}

// Chart renders the profile heights as a text line chart.
func Chart(p Profile, width, height int) string {
	if len(p.Height) == 0 {
		return "(no samples)"
	}
	return asciigraph.Plot(p.Height,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("height at z=%.2f", p.Z)))
}
