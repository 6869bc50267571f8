// Package camera implements the free-fly camera: keyboard translation along
// the view and right vectors, and mouse-look via yaw and pitch in degrees.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	MaxPitch           = 89.0
	DefaultSensitivity = 0.1
	DefaultSpeed       = 0.05
)

// State is the camera pose. Front is kept unit length; Yaw and Pitch are the
// angles Front was last derived from.
type State struct {
	Position r3.Vec
	Front    r3.Vec
	Up       r3.Vec
	Yaw      float64
	Pitch    float64
}

// New returns a camera looking along front. Yaw and pitch are recovered from
// front so the first mouse movement continues from the current heading.
func New(position, front, up r3.Vec) State {
	f := r3.Unit(front)
	return State{
		Position: position,
		Front:    f,
		Up:       up,
		Yaw:      degrees(math.Atan2(f.Z, f.X)),
		Pitch:    degrees(math.Asin(f.Y)),
	}
}

// Right is the unit vector to the camera's right.
func (s State) Right() r3.Vec {
	return r3.Unit(r3.Cross(s.Front, s.Up))
}

// Target is the point the camera looks at.
func (s State) Target() r3.Vec {
	return r3.Add(s.Position, s.Front)
}

type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Move translates the camera by speed along d.
func (s *State) Move(d Direction, speed float64) {
	switch d {
	case Forward:
		s.Position = r3.Add(s.Position, r3.Scale(speed, s.Front))
	case Backward:
		s.Position = r3.Sub(s.Position, r3.Scale(speed, s.Front))
	case Left:
		s.Position = r3.Sub(s.Position, r3.Scale(speed, s.Right()))
	case Right:
		s.Position = r3.Add(s.Position, r3.Scale(speed, s.Right()))
	}
}

// Turn adds yaw and pitch offsets in degrees, clamps pitch to ±MaxPitch and
// recomputes Front.
func (s *State) Turn(dyaw, dpitch float64) {
	s.Yaw += dyaw
	s.Pitch = math.Max(-MaxPitch, math.Min(MaxPitch, s.Pitch+dpitch))
	s.Front = FrontFromAngles(s.Yaw, s.Pitch)
}

// FrontFromAngles converts yaw and pitch in degrees to a unit direction.
func FrontFromAngles(yaw, pitch float64) r3.Vec {
	y, p := radians(yaw), radians(pitch)
	return r3.Unit(r3.Vec{
		X: math.Cos(y) * math.Cos(p),
		Y: math.Sin(p),
		Z: math.Sin(y) * math.Cos(p),
	})
}

// MouseLook turns cursor positions into yaw and pitch offsets. The first
// sample only records the baseline.
type MouseLook struct {
	Sensitivity float64

	lastX, lastY float64
	primed       bool
}

func NewMouseLook(sensitivity float64) *MouseLook {
	return &MouseLook{Sensitivity: sensitivity}
}

// Look applies the cursor movement since the previous sample to cam. Screen y
// grows downward, so moving the cursor up raises the pitch.
func (m *MouseLook) Look(cam *State, x, y float64) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
		return
	}
	dx := (x - m.lastX) * m.Sensitivity
	dy := (m.lastY - y) * m.Sensitivity
	m.lastX, m.lastY = x, y

	if dx == 0 && dy == 0 {
		return
	}
	cam.Turn(dx, dy)
}

// Reset forgets the baseline so the next sample primes it again.
func (m *MouseLook) Reset() { m.primed = false }

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
