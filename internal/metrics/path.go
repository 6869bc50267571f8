package metrics

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/warp/internal/sim"
)

// PathLength sums the distance the body travels between observed frames.
type PathLength struct {
	name   string
	total  float64
	last   r3.Vec
	primed bool
}

func NewPathLength() *PathLength {
	return &PathLength{name: "path_length"}
}

func (p *PathLength) Name() string { return p.name }

func (p *PathLength) Observe(f sim.Frame) {
	if p.primed {
		p.total += r3.Norm(r3.Sub(f.BodyPos, p.last))
	}
	p.last = f.BodyPos
	p.primed = true
}

func (p *PathLength) Value() float64 { return p.total }

func (p *PathLength) Reset() {
	p.total = 0
	p.primed = false
}

// Standard returns the metrics reported by the CLI.
func Standard() []sim.Metric {
	return []sim.Metric{NewDepth(), NewMeanDepth(), NewPathLength()}
}
