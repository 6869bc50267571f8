package integrators

import "github.com/san-kum/warp/internal/dynamo"

// Euler is the explicit first-order stepper. For a constant derivative it
// advances each component by exactly dt times the rate, which keeps the
// orbit angle identical to a plain accumulation.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x, u, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
