package metrics

import "github.com/san-kum/warp/internal/sim"

// Depth tracks the lowest surface height seen across all observed frames.
type Depth struct {
	name string
	min  float64
	seen bool
}

func NewDepth() *Depth {
	return &Depth{name: "max_depth"}
}

func (d *Depth) Name() string { return d.name }

func (d *Depth) Observe(f sim.Frame) {
	for _, s := range f.Samples {
		if !d.seen || float64(s.Y) < d.min {
			d.min = float64(s.Y)
			d.seen = true
		}
	}
}

func (d *Depth) Value() float64 {
	if !d.seen {
		return 0
	}
	return d.min
}

func (d *Depth) Reset() {
	d.min = 0
	d.seen = false
}

// MeanDepth averages each frame's mean sample height.
type MeanDepth struct {
	name    string
	sum     float64
	samples int
}

func NewMeanDepth() *MeanDepth {
	return &MeanDepth{name: "mean_depth"}
}

func (m *MeanDepth) Name() string { return m.name }

func (m *MeanDepth) Observe(f sim.Frame) {
	if len(f.Samples) == 0 {
		return
	}
	var total float64
	for _, s := range f.Samples {
		total += float64(s.Y)
	}
	m.sum += total / float64(len(f.Samples))
	m.samples++
}

func (m *MeanDepth) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanDepth) Reset() {
	m.sum = 0
	m.samples = 0
}
