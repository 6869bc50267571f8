package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/warp/internal/curvature"
	"github.com/san-kum/warp/internal/orbit"
	"github.com/san-kum/warp/internal/sim"
	"github.com/san-kum/warp/internal/surface"
)

func newPreview(t *testing.T) Model {
	t.Helper()
	surf, err := surface.New(surface.GridSpec{Extent: 10, Resolution: 20}, 0)
	if err != nil {
		t.Fatal(err)
	}
	s, err := sim.New(curvature.Body{Mass: 1e26, Radius: 1}, orbit.State{SemiMajor: 3, SemiMinor: 2}, 0.002, surf)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(s)
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestProjectorCenter(t *testing.T) {
	g := NewWithT(t)
	c := NewCanvas(40, 20)
	view := DefaultOrbiter()

	p := NewProjector(view.Camera(), c)
	x, y, ok := p.Project(r3.Vec{})
	g.Expect(ok).To(BeTrue())

	w, h := c.Dots()
	g.Expect(x).To(BeNumerically("~", (w-1)/2, 1))
	g.Expect(y).To(BeNumerically("~", (h-1)/2, 1))
}

func TestProjectorRejectsBehindCamera(t *testing.T) {
	c := NewCanvas(40, 20)
	cam := DefaultOrbiter().Camera()
	p := NewProjector(cam, c)

	behind := r3.Sub(cam.Position, r3.Scale(5, cam.Front))
	if _, _, ok := p.Project(behind); ok {
		t.Error("expected point behind the camera to be rejected")
	}
}

func TestOrbiterLimits(t *testing.T) {
	o := DefaultOrbiter()
	o.Turn(0, 500)
	if o.Pitch != 89 {
		t.Errorf("expected pitch clamped to 89, got %v", o.Pitch)
	}
	o.Zoom(0.0001)
	if o.Distance != 2 {
		t.Errorf("expected minimum distance 2, got %v", o.Distance)
	}
}

func TestModelTickAdvances(t *testing.T) {
	g := NewWithT(t)
	m := newPreview(t)

	next, cmd := m.Update(TickMsg{})
	g.Expect(cmd).NotTo(BeNil())
	g.Expect(next.(Model).sim.Frame().Index).To(Equal(4))
}

func TestModelPause(t *testing.T) {
	g := NewWithT(t)
	m := newPreview(t)

	next, _ := m.Update(key(" "))
	next, _ = next.Update(TickMsg{})
	g.Expect(next.(Model).sim.Frame().Index).To(BeZero())
	g.Expect(next.View()).To(ContainSubstring("PAUSED"))
}

func TestModelQuit(t *testing.T) {
	m := newPreview(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModelDiagnostic(t *testing.T) {
	g := NewWithT(t)
	m := newPreview(t)
	g.Expect(m.View()).NotTo(ContainSubstring("Object mass"))

	next, _ := m.Update(key("i"))
	g.Expect(next.View()).To(ContainSubstring("Object mass: 1.000e+26 kg"))
}

func TestModelDrawsSurface(t *testing.T) {
	m := newPreview(t)
	if strings.Trim(m.canvas.String(), "⠀\n") == "" {
		t.Error("expected the surface to light some dots")
	}
}

func TestThemeCycle(t *testing.T) {
	m := newPreview(t)
	var next tea.Model = m
	for range Themes {
		next, _ = next.Update(key("t"))
	}
	if next.(Model).theme != 0 {
		t.Error("theme should wrap around")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}
