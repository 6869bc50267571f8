package sim

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/warp/internal/surface"
)

// Frame is a read-only view of the simulation after one step. Samples aliases
// the surface's internal slice and is only valid until the next step.
type Frame struct {
	Index   int
	Angle   float64
	BodyPos r3.Vec
	Samples []surface.Sample
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

type Result struct {
	Frames  int
	Final   Frame
	Metrics map[string]float64
}
