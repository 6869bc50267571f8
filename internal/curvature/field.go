// Package curvature maps a point mass onto a visual height field.
//
// The field is the weak-field bending term G·M/(d·c²), negated so the surface
// dips toward the mass and multiplied by [VisualScale] so it is visible at
// demo scale. It is not a geodesic computation.
package curvature

import (
	"fmt"

	"github.com/san-kum/warp/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	G           = 6.674e-11
	C           = 3.0e8
	Epsilon     = 0.001
	VisualScale = 50.0
)

// Body is the massive object bending the surface.
type Body struct {
	Mass   float64
	Radius float64
}

func (b Body) Validate() error {
	if !(b.Mass > 0) {
		return &dynamo.FieldError{Field: "body.mass", Value: b.Mass, Wrapped: dynamo.ErrInvalidBody}
	}
	if !(b.Radius > 0) {
		return &dynamo.FieldError{Field: "body.radius", Value: b.Radius, Wrapped: dynamo.ErrInvalidBody}
	}
	return nil
}

// HeightAt returns the surface height at point for a body centred on source,
// both projected onto the horizontal plane. Points within the body's radius
// are flat (exactly zero) rather than following the singularity.
func HeightAt(point, source r2.Vec, body Body) float64 {
	d := r2.Norm(r2.Sub(point, source)) + Epsilon
	if d < body.Radius {
		return 0
	}
	bend := (G * body.Mass) / (d * C * C)
	return -bend * VisualScale
}

// Magnitude is the dimensionless curvature G·M/(r·c²) at distance radius.
func Magnitude(mass, radius float64) float64 {
	return (G * mass) / (radius * C * C)
}

// Diagnostic formats the mass, radius and surface curvature of b, one value
// per line.
func Diagnostic(b Body) string {
	return fmt.Sprintf("Object mass: %.3e kg\nObject radius: %.3f m\nCurvature: %.6e\n",
		b.Mass, b.Radius, Magnitude(b.Mass, b.Radius))
}
