package config

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/warp/internal/camera"
	"github.com/san-kum/warp/internal/curvature"
	"github.com/san-kum/warp/internal/dynamo"
	"github.com/san-kum/warp/internal/orbit"
	"github.com/san-kum/warp/internal/surface"
)

const (
	DefaultMass       = 1.0e26
	DefaultRadius     = 1.0
	DefaultExtent     = 10.0
	DefaultResolution = 100
	DefaultSemiMajor  = 3.0
	DefaultSemiMinor  = 2.0
	DefaultStep       = 0.002
	DefaultSectors    = 40
	DefaultStacks     = 40
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultTitle      = "3D Moving Sphere"
	DefaultFPS        = 60
)

type Config struct {
	Body   BodyConfig   `yaml:"body"`
	Grid   GridConfig   `yaml:"grid"`
	Orbit  OrbitConfig  `yaml:"orbit"`
	Sphere SphereConfig `yaml:"sphere"`
	Camera CameraConfig `yaml:"camera"`
	Window WindowConfig `yaml:"window"`
	Render RenderConfig `yaml:"render"`
}

type BodyConfig struct {
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
}

type GridConfig struct {
	Extent     float64 `yaml:"extent"`
	Resolution int     `yaml:"resolution"`
	// Capacity is the device buffer size in samples. Values below the
	// sample count, including zero, are raised to it.
	Capacity int `yaml:"capacity"`
}

type OrbitConfig struct {
	SemiMajor  float64    `yaml:"semi_major"`
	SemiMinor  float64    `yaml:"semi_minor"`
	Center     [3]float64 `yaml:"center,flow"`
	Step       float64    `yaml:"step"`
	StartAngle float64    `yaml:"start_angle"`
}

type SphereConfig struct {
	Radius  float64 `yaml:"radius"`
	Sectors int     `yaml:"sectors"`
	Stacks  int     `yaml:"stacks"`
}

type CameraConfig struct {
	Position    [3]float64 `yaml:"position,flow"`
	Front       [3]float64 `yaml:"front,flow"`
	Up          [3]float64 `yaml:"up,flow"`
	Speed       float64    `yaml:"speed"`
	Sensitivity float64    `yaml:"sensitivity"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type RenderConfig struct {
	FloorProgram bool `yaml:"floor_program"`
}

func DefaultConfig() *Config {
	return &Config{
		Body: BodyConfig{Mass: DefaultMass, Radius: DefaultRadius},
		Grid: GridConfig{Extent: DefaultExtent, Resolution: DefaultResolution},
		Orbit: OrbitConfig{
			SemiMajor: DefaultSemiMajor,
			SemiMinor: DefaultSemiMinor,
			Step:      DefaultStep,
		},
		Sphere: SphereConfig{Radius: DefaultRadius, Sectors: DefaultSectors, Stacks: DefaultStacks},
		Camera: CameraConfig{
			Position:    [3]float64{0, 0, 1},
			Front:       [3]float64{0, 0, 1},
			Up:          [3]float64{0, 1, 0},
			Speed:       camera.DefaultSpeed,
			Sensitivity: camera.DefaultSensitivity,
		},
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight, Title: DefaultTitle, FPS: DefaultFPS},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads path over base. Keys absent from the file keep base's values.
func LoadInto(path string, base *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func vec(a [3]float64) r3.Vec { return r3.Vec{X: a[0], Y: a[1], Z: a[2]} }

func (c *Config) BodySpec() curvature.Body {
	return curvature.Body{Mass: c.Body.Mass, Radius: c.Body.Radius}
}

func (c *Config) GridSpec() surface.GridSpec {
	return surface.GridSpec{Extent: c.Grid.Extent, Resolution: c.Grid.Resolution}
}

func (c *Config) OrbitState() orbit.State {
	return orbit.State{
		Angle:     c.Orbit.StartAngle,
		SemiMajor: c.Orbit.SemiMajor,
		SemiMinor: c.Orbit.SemiMinor,
		Center:    vec(c.Orbit.Center),
	}
}

func (c *Config) CameraState() camera.State {
	return camera.New(vec(c.Camera.Position), vec(c.Camera.Front), vec(c.Camera.Up))
}

func invalid(field string, value any) error {
	return &dynamo.FieldError{Field: field, Value: value, Wrapped: dynamo.ErrInvalidConfig}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.BodySpec().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.GridSpec().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Grid.Capacity < 0 {
		errs = append(errs, invalid("grid.capacity", c.Grid.Capacity))
	}
	if err := c.OrbitState().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Orbit.Step < 0 || !(dynamo.State{c.Orbit.Step}).IsValid() {
		errs = append(errs, invalid("orbit.step", c.Orbit.Step))
	}
	if !(dynamo.State{c.Orbit.StartAngle}).IsValid() {
		errs = append(errs, invalid("orbit.start_angle", c.Orbit.StartAngle))
	}
	if c.Sphere.Radius <= 0 {
		errs = append(errs, invalid("sphere.radius", c.Sphere.Radius))
	}
	if c.Sphere.Sectors < 3 {
		errs = append(errs, invalid("sphere.sectors", c.Sphere.Sectors))
	}
	if c.Sphere.Stacks < 2 {
		errs = append(errs, invalid("sphere.stacks", c.Sphere.Stacks))
	}
	if r3.Norm(vec(c.Camera.Front)) == 0 {
		errs = append(errs, invalid("camera.front", c.Camera.Front))
	} else if r3.Norm(r3.Cross(vec(c.Camera.Front), vec(c.Camera.Up))) == 0 {
		errs = append(errs, invalid("camera.up", c.Camera.Up))
	}
	if c.Camera.Speed <= 0 {
		errs = append(errs, invalid("camera.speed", c.Camera.Speed))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, invalid("window.size", [2]int{c.Window.Width, c.Window.Height}))
	}
	if c.Window.FPS < 0 {
		errs = append(errs, invalid("window.fps", c.Window.FPS))
	}
	return errors.Join(errs...)
}
