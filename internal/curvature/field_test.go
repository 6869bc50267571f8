package curvature

import (
	"errors"
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/warp/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

var sun = Body{Mass: 1e26, Radius: 1.0}

func TestHeightAtInsideRadiusIsZero(t *testing.T) {
	source := r2.Vec{X: 1.5, Y: -2}

	tests := []struct {
		name   string
		offset r2.Vec
	}{
		{"at source", r2.Vec{}},
		{"half radius", r2.Vec{X: 0.5}},
		{"diagonal", r2.Vec{X: 0.6, Y: 0.6}},
		{"just inside", r2.Vec{Y: -0.998}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HeightAt(r2.Add(source, tt.offset), source, sun)
			if h != 0 {
				t.Errorf("expected exactly 0, got %g", h)
			}
		})
	}
}

func TestHeightAtEpsilonBand(t *testing.T) {
	// Distances in [radius-Epsilon, radius) are pushed past the radius by the
	// Epsilon offset and already follow the well.
	inside := HeightAt(r2.Vec{X: sun.Radius - Epsilon/2}, r2.Vec{}, sun)
	if inside >= 0 {
		t.Errorf("expected a negative height inside the band, got %g", inside)
	}

	edge := HeightAt(r2.Vec{X: sun.Radius - Epsilon*1.5}, r2.Vec{}, sun)
	if edge != 0 {
		t.Errorf("expected 0 below the band, got %g", edge)
	}
}

func TestHeightAtScenarioA(t *testing.T) {
	h := HeightAt(r2.Vec{X: 0.5}, r2.Vec{}, sun)
	if h != 0 {
		t.Errorf("expected 0, got %g", h)
	}
}

func TestHeightAtScenarioB(t *testing.T) {
	g := NewWithT(t)

	h := HeightAt(r2.Vec{X: 3, Y: 4}, r2.Vec{}, sun)
	want := -50 * 6.674e-11 * 1e26 / (5.001 * 3e8 * 3e8)

	g.Expect(h).To(BeNumerically("~", want, 1e-12))
	g.Expect(h).To(BeNumerically("~", -0.7414073, 1e-6))
}

func TestHeightAtMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for d := 1.0; d < 1e4; d *= 1.5 {
		h := HeightAt(r2.Vec{X: d}, r2.Vec{}, sun)
		if h >= 0 {
			t.Fatalf("height at %g should be negative, got %g", d, h)
		}
		if h <= prev {
			t.Fatalf("height magnitude must shrink with distance: h(%g)=%g, previous %g", d, h, prev)
		}
		prev = h
	}
	if math.Abs(prev) > 1e-3 {
		t.Errorf("expected height to approach 0 far away, got %g", prev)
	}
}

func TestHeightAtSymmetric(t *testing.T) {
	g := NewWithT(t)
	src := r2.Vec{X: 2, Y: 1}
	a := HeightAt(r2.Vec{X: 5, Y: 1}, src, sun)
	b := HeightAt(r2.Vec{X: 2, Y: -2}, src, sun)
	g.Expect(a).To(Equal(b))
}

func TestMagnitude(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Magnitude(1e26, 1.0)).To(BeNumerically("~", 6.674e15/9e16, 1e-15))
	g.Expect(Magnitude(1e26, 2.0)).To(BeNumerically("~", Magnitude(1e26, 1.0)/2, 1e-15))
}

func TestBodyValidate(t *testing.T) {
	tests := []struct {
		name string
		body Body
		ok   bool
	}{
		{"valid", Body{Mass: 1e26, Radius: 1}, true},
		{"zero mass", Body{Mass: 0, Radius: 1}, false},
		{"negative radius", Body{Mass: 1, Radius: -1}, false},
		{"nan mass", Body{Mass: math.NaN(), Radius: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.body.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, dynamo.ErrInvalidBody) {
				t.Errorf("expected ErrInvalidBody, got %v", err)
			}
		})
	}
}

func TestDiagnostic(t *testing.T) {
	g := NewWithT(t)
	out := Diagnostic(sun)
	g.Expect(out).To(Equal("Object mass: 1.000e+26 kg\nObject radius: 1.000 m\nCurvature: 7.415556e-02\n"))
}
