// Package render draws the body and the deformed surface with a single
// model/view/projection shader program.
package render

import (
	_ "embed"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/warp/internal/camera"
	"github.com/san-kum/warp/internal/gpu"
	"github.com/san-kum/warp/internal/logging"
	"github.com/san-kum/warp/internal/mesh"
	"github.com/san-kum/warp/internal/surface"
)

var (
	//go:embed shaders/scene.vert
	VertexShader string
	//go:embed shaders/scene.frag
	FragmentShader string
	//go:embed shaders/floor.frag
	FloorFragmentShader string
)

const (
	FieldOfView = 45.0
	Near        = 0.1
	Far         = 100.0
)

func vec(v r3.Vec) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// View is lookAt(position, position+front, up).
func View(cam camera.State) mgl32.Mat4 {
	return mgl32.LookAtV(vec(cam.Position), vec(cam.Target()), vec(cam.Up))
}

// Projection is a 45 degree perspective for a width x height viewport.
func Projection(width, height int) mgl32.Mat4 {
	aspect := float32(width) / float32(math.Max(1, float64(height)))
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, Near, Far)
}

// Model translates the unit-space body to its position.
func Model(pos r3.Vec) mgl32.Mat4 {
	return mgl32.Translate3D(float32(pos.X), float32(pos.Y), float32(pos.Z))
}

type uniforms struct {
	model, view, projection int32
}

type Renderer struct {
	dev      gpu.Device
	program  uint32
	floor    uint32
	loc      uniforms
	floorLoc uniforms
	width    int
	height   int
}

func locate(dev gpu.Device, program uint32) uniforms {
	return uniforms{
		model:      dev.UniformLocation(program, "model"),
		view:       dev.UniformLocation(program, "view"),
		projection: dev.UniformLocation(program, "projection"),
	}
}

// New compiles the scene program and, when withFloor is set, the floor
// program, which then shades the surface. Compilation failures are returned
// with the driver's log.
func New(dev gpu.Device, width, height int, withFloor bool) (*Renderer, error) {
	program, err := dev.CompileProgram(VertexShader, FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}
	r := &Renderer{dev: dev, program: program, width: width, height: height}
	r.loc = locate(dev, program)

	if withFloor {
		floor, err := dev.CompileProgram(VertexShader, FloorFragmentShader)
		if err != nil {
			dev.DeleteProgram(program)
			return nil, fmt.Errorf("floor program: %w", err)
		}
		r.floor = floor
		r.floorLoc = locate(dev, floor)
	}
	logging.Logger().Debug("programs compiled", "scene", program, "floor", r.floor)
	return r, nil
}

func (r *Renderer) Program() uint32      { return r.program }
func (r *Renderer) FloorProgram() uint32 { return r.floor }

// Resize updates the viewport used for the projection matrix.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// RenderFrame issues the draw calls for one frame: the body as indexed
// triangles translated to bodyPos, then the surface as points in world space.
// Neither the mesh nor the surface is modified. Depth testing is switched
// off again on return so 2D overlays drawn afterwards are not occluded.
func (r *Renderer) RenderFrame(cam camera.State, body *mesh.StaticMesh, surf *surface.Surface, bodyPos r3.Vec) {
	dev := r.dev
	view := View(cam)
	projection := Projection(r.width, r.height)

	dev.SetDepthTest(true)
	dev.UseProgram(r.program)
	dev.UniformMatrix4(r.loc.view, (*[16]float32)(&view))
	dev.UniformMatrix4(r.loc.projection, (*[16]float32)(&projection))

	if vao, count, ok := body.Drawable(); ok {
		model := Model(bodyPos)
		dev.UniformMatrix4(r.loc.model, (*[16]float32)(&model))
		dev.BindVertexArray(vao)
		dev.DrawElements(gpu.Triangles, count)
	}

	if vao, count, ok := surf.Drawable(); ok && count > 0 {
		loc := r.loc
		if r.floor != 0 {
			dev.UseProgram(r.floor)
			loc = r.floorLoc
			dev.UniformMatrix4(loc.view, (*[16]float32)(&view))
			dev.UniformMatrix4(loc.projection, (*[16]float32)(&projection))
		}
		model := mgl32.Ident4()
		dev.UniformMatrix4(loc.model, (*[16]float32)(&model))
		dev.BindVertexArray(vao)
		dev.DrawArrays(gpu.Points, 0, count)
	}

	dev.BindVertexArray(0)
	dev.SetDepthTest(false)
}

func (r *Renderer) Release() {
	if r.program != 0 {
		r.dev.DeleteProgram(r.program)
		r.program = 0
	}
	if r.floor != 0 {
		r.dev.DeleteProgram(r.floor)
		r.floor = 0
	}
}
