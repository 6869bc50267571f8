package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/warp/internal/camera"
	"github.com/san-kum/warp/internal/render"
)

// Orbiter is a camera that circles the origin looking inward.
type Orbiter struct {
	Yaw      float64 // degrees around the y axis
	Pitch    float64 // degrees above the horizontal plane
	Distance float64
}

func DefaultOrbiter() Orbiter {
	return Orbiter{Yaw: 90, Pitch: 35, Distance: 12}
}

func (o Orbiter) Camera() camera.State {
	front := camera.FrontFromAngles(o.Yaw, -o.Pitch)
	pos := r3.Scale(-o.Distance, front)
	return camera.New(pos, front, r3.Vec{Y: 1})
}

// Turn rotates the orbiter, keeping the pitch inside the camera's limit.
func (o *Orbiter) Turn(dyaw, dpitch float64) {
	o.Yaw += dyaw
	o.Pitch = math.Max(-camera.MaxPitch, math.Min(camera.MaxPitch, o.Pitch+dpitch))
}

// Zoom scales the distance, bounded to stay inside the clip range.
func (o *Orbiter) Zoom(factor float64) {
	o.Distance = math.Max(2, math.Min(render.Far/2, o.Distance*factor))
}

// Projector maps world points to canvas dots.
type Projector struct {
	mvp        mgl32.Mat4
	dotW, dotH int
}

func NewProjector(cam camera.State, c *Canvas) Projector {
	w, h := c.Dots()
	return Projector{
		mvp:  render.Projection(w, h).Mul4(render.View(cam)),
		dotW: w,
		dotH: h,
	}
}

// Project returns the dot for p, or ok=false when p is behind the camera or
// outside the view.
func (p Projector) Project(v r3.Vec) (x, y int, ok bool) {
	clip := p.mvp.Mul4x1(mgl32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), 1})
	if clip.W() <= 0 {
		return 0, 0, false
	}
	nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
	if nx < -1 || nx > 1 || ny < -1 || ny > 1 {
		return 0, 0, false
	}
	x = int(math.Round(float64((nx + 1) / 2 * float32(p.dotW-1))))
	y = int(math.Round(float64((1 - ny) / 2 * float32(p.dotH-1))))
	return x, y, true
}
