package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/warp/internal/analysis"
	"github.com/san-kum/warp/internal/curvature"
	"github.com/san-kum/warp/internal/sim"
)

const (
	canvasWidth  = 72
	canvasHeight = 22
	tickRate     = time.Second / 30
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the terminal preview. Each tick advances the simulation by
// StepsPerTick frames and redraws the surface as a point cloud.
type Model struct {
	sim          *sim.Simulator
	metrics      []sim.Metric
	canvas       *Canvas
	view         Orbiter
	theme        int
	running      bool
	showDiag     bool
	StepsPerTick int
}

func NewModel(s *sim.Simulator, metrics ...sim.Metric) Model {
	for _, m := range metrics {
		s.AddMetric(m)
	}
	m := Model{
		sim:          s,
		metrics:      metrics,
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		view:         DefaultOrbiter(),
		running:      true,
		StepsPerTick: 4,
	}
	m.draw()
	return m
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "i":
			m.showDiag = !m.showDiag
		case "left", "h":
			m.view.Turn(-5, 0)
		case "right", "l":
			m.view.Turn(5, 0)
		case "up", "k":
			m.view.Turn(0, 5)
		case "down", "j":
			m.view.Turn(0, -5)
		case "+", "=":
			m.view.Zoom(1 / 1.2)
		case "-", "_":
			m.view.Zoom(1.2)
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		}
		m.draw()
	case TickMsg:
		if m.running {
			for i := 0; i < m.StepsPerTick; i++ {
				m.sim.Step()
			}
		}
		m.draw()
		return m, tick()
	}
	return m, nil
}

func (m *Model) draw() {
	Draw(m.canvas, m.sim, m.view)
}

// Draw renders the surface samples as dots, the orbit as a closed trace and
// the body as a small block, seen from view.
func Draw(c *Canvas, s *sim.Simulator, view Orbiter) {
	c.Clear()
	proj := NewProjector(view.Camera(), c)

	for _, p := range s.Surface().Samples() {
		if x, y, ok := proj.Project(r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}); ok {
			c.Set(x, y)
		}
	}

	o := s.Orbit()
	const segments = 64
	var px, py int
	var prev bool
	for i := 0; i <= segments; i++ {
		o.Angle = float64(i) / segments * 2 * math.Pi
		x, y, ok := proj.Project(o.Position())
		if ok && prev {
			c.Line(px, py, x, y)
		}
		px, py, prev = x, y, ok
	}

	if x, y, ok := proj.Project(s.BodyPos()); ok {
		for dx := -1; dx <= 1; dx++ {
			for dy := -2; dy <= 2; dy++ {
				c.Set(x+dx, y+dy)
			}
		}
	}
}

func (m Model) View() string {
	st := Themes[m.theme].styles()
	frame := m.sim.Frame()

	var s strings.Builder
	s.WriteString(st.header.Render("SPACETIME CURVATURE") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", frame.Index))
	row("Angle", fmt.Sprintf("%.3f rad", frame.Angle))
	row("Body", fmt.Sprintf("(%.2f, %.2f, %.2f)", frame.BodyPos.X, frame.BodyPos.Y, frame.BodyPos.Z))
	row("Samples", fmt.Sprintf("%d", len(frame.Samples)))
	for _, metric := range m.metrics {
		row(metric.Name(), fmt.Sprintf("%.4f", metric.Value()))
	}

	if m.showDiag {
		s.WriteString("\n" + st.value.Render(strings.TrimRight(curvature.Diagnostic(m.sim.Body()), "\n")) + "\n")
	}

	profile := analysis.Slice(frame.Samples, m.sim.Surface().Spec(), frame.BodyPos.Z)
	s.WriteString(st.graph.Render(analysis.Chart(profile, 36, 6)) + "\n")

	s.WriteString(st.help.Render("SP:Pause I:Info T:Theme Q:Quit\n←→↑↓:View +/-:Zoom"))

	canvas := st.canvas.Render(m.canvas.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, st.stats.Render(s.String()))
}

// Run starts the preview on the terminal and blocks until it quits.
func Run(s *sim.Simulator, metrics ...sim.Metric) error {
	_, err := tea.NewProgram(NewModel(s, metrics...), tea.WithAltScreen()).Run()
	return err
}
