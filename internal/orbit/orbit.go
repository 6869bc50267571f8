// Package orbit moves the body along a closed ellipse in the horizontal plane.
package orbit

import (
	"math"

	"github.com/san-kum/warp/internal/dynamo"
	"github.com/san-kum/warp/internal/integrators"
	"gonum.org/v1/gonum/spatial/r3"
)

// State is the orbit parameters plus the accumulated angle. The angle is
// never wrapped; trigonometric periodicity closes the path.
type State struct {
	Angle     float64
	SemiMajor float64
	SemiMinor float64
	Center    r3.Vec
}

func (s State) Validate() error {
	if !(s.SemiMajor > 0) {
		return &dynamo.FieldError{Field: "orbit.semi_major", Value: s.SemiMajor, Wrapped: dynamo.ErrInvalidOrbit}
	}
	if !(s.SemiMinor > 0) {
		return &dynamo.FieldError{Field: "orbit.semi_minor", Value: s.SemiMinor, Wrapped: dynamo.ErrInvalidOrbit}
	}
	return nil
}

// Position returns the point on the ellipse at the current angle. The height
// stays at Center.Y.
func (s State) Position() r3.Vec {
	return r3.Add(s.Center, r3.Vec{
		X: s.SemiMajor * math.Cos(s.Angle),
		Z: s.SemiMinor * math.Sin(s.Angle),
	})
}

// Motion is the angle dynamics dθ/dt = Rate.
type Motion struct {
	Rate float64
}

func (m Motion) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	return dynamo.State{m.Rate}
}

func (m Motion) StateDim() int   { return 1 }
func (m Motion) ControlDim() int { return 0 }

var (
	unitMotion = Motion{Rate: 1}
	stepper    = integrators.NewEuler()
)

// Advance adds step to the angle and returns the new position.
func Advance(s *State, step float64) r3.Vec {
	s.Angle = stepper.Step(unitMotion, dynamo.State{s.Angle}, nil, 0, step)[0]
	return s.Position()
}
