// Package dynamo provides the shared primitives of the curvature simulation.
//
// The package defines the small vocabulary the other packages agree on:
//
//   - [State]: vector representing integrated state (the orbit angle)
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical stepper interface
//   - sentinel errors for invalid bodies, grids, orbits and GPU failures
//
// # Example
//
//	motion := orbit.Motion{Rate: 1}
//	next := integrators.NewEuler().Step(motion, dynamo.State{angle}, nil, 0, step)
//
// Errors are wrapped with context using fmt.Errorf and can be matched with
// errors.Is against the sentinels declared here.
package dynamo
