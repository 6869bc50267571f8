package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/warp/internal/sim"
	"github.com/san-kum/warp/internal/surface"
)

func frame(pos r3.Vec, heights ...float32) sim.Frame {
	samples := make([]surface.Sample, len(heights))
	for i, h := range heights {
		samples[i].Y = h
	}
	return sim.Frame{BodyPos: pos, Samples: samples}
}

func TestDepth(t *testing.T) {
	d := NewDepth()
	if d.Value() != 0 {
		t.Error("expected zero before any frame")
	}

	d.Observe(frame(r3.Vec{}, 0, -0.5, -0.2))
	d.Observe(frame(r3.Vec{}, -0.1, -0.7))
	if got := d.Value(); math.Abs(got+0.7) > 1e-6 {
		t.Errorf("expected -0.7, got %f", got)
	}

	d.Reset()
	if d.Value() != 0 {
		t.Error("expected reset to clear depth")
	}
}

func TestMeanDepth(t *testing.T) {
	m := NewMeanDepth()
	m.Observe(frame(r3.Vec{}, -1, 0))
	m.Observe(frame(r3.Vec{}, -2, -2))
	m.Observe(frame(r3.Vec{}))

	if got := m.Value(); math.Abs(got+1.25) > 1e-9 {
		t.Errorf("expected -1.25, got %f", got)
	}
}

func TestPathLength(t *testing.T) {
	p := NewPathLength()
	p.Observe(frame(r3.Vec{X: 0}))
	p.Observe(frame(r3.Vec{X: 3}))
	p.Observe(frame(r3.Vec{X: 3, Z: 4}))

	if got := p.Value(); math.Abs(got-7) > 1e-12 {
		t.Errorf("expected 7, got %f", got)
	}

	p.Reset()
	p.Observe(frame(r3.Vec{X: 100}))
	if p.Value() != 0 {
		t.Error("first frame after reset must only set the baseline")
	}
}

func TestStandardNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Standard() {
		if seen[m.Name()] {
			t.Errorf("duplicate metric %s", m.Name())
		}
		seen[m.Name()] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 metrics, got %d", len(seen))
	}
}
