// Package sim advances the orbiting body and regenerates the surface beneath
// it, independently of any rendering device.
package sim

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/warp/internal/curvature"
	"github.com/san-kum/warp/internal/dynamo"
	"github.com/san-kum/warp/internal/orbit"
	"github.com/san-kum/warp/internal/surface"
)

type Simulator struct {
	body    curvature.Body
	orbit   orbit.State
	step    float64
	surface *surface.Surface
	pos     r3.Vec
	frame   int

	metrics   []Metric
	observers []Observer
}

// New validates its inputs and regenerates the surface once for the body's
// starting position.
func New(body curvature.Body, o orbit.State, step float64, surf *surface.Surface) (*Simulator, error) {
	if err := body.Validate(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !(dynamo.State{step, o.Angle}).IsValid() {
		return nil, fmt.Errorf("orbit step %v, angle %v: %w", step, o.Angle, dynamo.ErrInvalidState)
	}
	if step < 0 {
		return nil, fmt.Errorf("orbit step must not be negative, got %f", step)
	}
	s := &Simulator{body: body, orbit: o, step: step, surface: surf}
	s.pos = o.Position()
	surf.Regenerate(s.pos, body)
	return s, nil
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Body() curvature.Body      { return s.body }
func (s *Simulator) Orbit() orbit.State        { return s.orbit }
func (s *Simulator) Surface() *surface.Surface { return s.surface }
func (s *Simulator) BodyPos() r3.Vec           { return s.pos }

func (s *Simulator) Frame() Frame {
	return Frame{
		Index:   s.frame,
		Angle:   s.orbit.Angle,
		BodyPos: s.pos,
		Samples: s.surface.Samples(),
	}
}

// Step advances the orbit by one increment and regenerates the surface.
func (s *Simulator) Step() Frame {
	s.pos = orbit.Advance(&s.orbit, s.step)
	s.surface.Regenerate(s.pos, s.body)
	s.frame++

	f := s.Frame()
	for _, m := range s.metrics {
		m.Observe(f)
	}
	for _, obs := range s.observers {
		obs.OnFrame(f)
	}
	return f
}

// Run steps the simulation frames times.
func (s *Simulator) Run(ctx context.Context, frames int) (*Result, error) {
	if frames < 0 {
		return nil, fmt.Errorf("frames must not be negative, got %d", frames)
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{Metrics: make(map[string]float64)}
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}
		s.Step()
		result.Frames++
	}

	result.Final = s.Frame()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}
