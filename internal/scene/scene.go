// Package scene composes the simulation, camera and renderer and drives one
// frame at a time from sampled input.
package scene

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/san-kum/warp/internal/camera"
	"github.com/san-kum/warp/internal/config"
	"github.com/san-kum/warp/internal/curvature"
	"github.com/san-kum/warp/internal/dynamo"
	"github.com/san-kum/warp/internal/gpu"
	"github.com/san-kum/warp/internal/input"
	"github.com/san-kum/warp/internal/logging"
	"github.com/san-kum/warp/internal/mesh"
	"github.com/san-kum/warp/internal/render"
	"github.com/san-kum/warp/internal/sim"
	"github.com/san-kum/warp/internal/surface"
)

const boostFactor = 2

type keys struct {
	forward, back, left, right input.Key
	boost, exit, info          input.Key
}

type Scene struct {
	sim      *sim.Simulator
	cfg      config.Config
	dev      gpu.Device
	log      *slog.Logger
	out      io.Writer
	camera   camera.State
	look     *camera.MouseLook
	keys     keys
	renderer *render.Renderer
	body     *mesh.StaticMesh

	capacityWarned bool
}

// New builds every resource the scene needs. A nil logger uses the package
// logger from internal/logging.
func New(cfg config.Config, dev gpu.Device, log *slog.Logger) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		log = logging.Logger()
	}

	surf, err := surface.New(cfg.GridSpec(), cfg.Grid.Capacity)
	if err != nil {
		return nil, err
	}
	simulator, err := sim.New(cfg.BodySpec(), cfg.OrbitState(), cfg.Orbit.Step, surf)
	if err != nil {
		return nil, err
	}

	sphere := mesh.Sphere(float32(cfg.Sphere.Radius), cfg.Sphere.Sectors, cfg.Sphere.Stacks)
	body, err := mesh.Upload(dev, sphere)
	if err != nil {
		return nil, fmt.Errorf("upload body: %w", err)
	}

	renderer, err := render.New(dev, cfg.Window.Width, cfg.Window.Height, cfg.Render.FloorProgram)
	if err != nil {
		body.Release(dev)
		return nil, err
	}

	s := &Scene{
		sim:      simulator,
		cfg:      cfg,
		dev:      dev,
		log:      log,
		out:      os.Stdout,
		camera:   cfg.CameraState(),
		look:     camera.NewMouseLook(cfg.Camera.Sensitivity),
		renderer: renderer,
		body:     body,
	}
	s.upload()

	log.Info("scene ready",
		"samples", cfg.GridSpec().Count(),
		"capacity", surf.Capacity(),
		"sphere_vertices", sphere.VertexCount(),
		"sphere_indices", len(sphere.Indices))
	return s, nil
}

// SetOutput redirects the diagnostic print. The default is stdout.
func (s *Scene) SetOutput(w io.Writer) { s.out = w }

func (s *Scene) Camera() camera.State      { return s.camera }
func (s *Scene) Simulator() *sim.Simulator { return s.sim }

// Resize forwards a new viewport size to the projection.
func (s *Scene) Resize(width, height int) {
	s.renderer.Resize(width, height)
}

// Frame runs one iteration: input, motion, surface regeneration, upload and
// draw. It returns false once exit has been requested; nothing is drawn for
// that frame.
func (s *Scene) Frame(in input.Frame) bool {
	if s.handleInput(in) {
		return false
	}

	s.sim.Step()
	s.upload()
	s.renderer.RenderFrame(s.camera, s.body, s.sim.Surface(), s.sim.BodyPos())
	return true
}

func (s *Scene) handleInput(in input.Frame) (exit bool) {
	k := &s.keys
	k.forward.Update(in.Forward)
	k.back.Update(in.Back)
	k.left.Update(in.Left)
	k.right.Update(in.Right)
	k.boost.Update(in.Boost)
	k.exit.Update(in.Exit)
	k.info.Update(in.Info)

	if k.exit.Down() {
		return true
	}

	speed := s.cfg.Camera.Speed
	if k.boost.Down() {
		speed *= boostFactor
	}
	moves := []struct {
		key *input.Key
		dir camera.Direction
	}{
		{&k.forward, camera.Forward},
		{&k.back, camera.Backward},
		{&k.left, camera.Left},
		{&k.right, camera.Right},
	}
	for _, m := range moves {
		if m.key.Down() {
			s.camera.Move(m.dir, speed)
		}
	}

	if in.HasCursor {
		s.look.Look(&s.camera, in.CursorX, in.CursorY)
	} else {
		s.look.Reset()
	}

	if k.info.Activated() {
		s.PrintDiagnostic()
	}
	return false
}

// PrintDiagnostic writes the body's mass, radius and curvature magnitude.
func (s *Scene) PrintDiagnostic() {
	fmt.Fprint(s.out, curvature.Diagnostic(s.sim.Body()))
}

func (s *Scene) upload() {
	err := s.sim.Surface().Upload(s.dev)
	if err == nil {
		return
	}
	if errors.Is(err, dynamo.ErrCapacityExceeded) {
		if !s.capacityWarned {
			s.log.Warn("surface truncated to buffer capacity", "err", err)
			s.capacityWarned = true
		}
		return
	}
	s.log.Error("surface upload failed", "err", err)
}

// Close releases every device resource owned by the scene.
func (s *Scene) Close() {
	s.sim.Surface().Release(s.dev)
	s.body.Release(s.dev)
	s.renderer.Release()
	s.log.Debug("scene released")
}
