// Package surface builds the deformable grid under the orbiting body.
//
// The grid is a square lattice of (resolution+1)² samples in row-major order:
// the outer loop walks z, the inner loop walks x. Rendering treats the samples
// as an unindexed point list, so the order is part of the contract.
package surface

import (
	"fmt"
	"unsafe"

	"github.com/san-kum/warp/internal/curvature"
	"github.com/san-kum/warp/internal/dynamo"
	"github.com/san-kum/warp/internal/gpu"
	"github.com/san-kum/warp/internal/logging"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sample is one grid vertex. Y is the height.
type Sample struct {
	X, Y, Z float32
}

const sampleStride = int(unsafe.Sizeof(Sample{}))

// GridSpec fixes the world-space side length and the divisions per side.
type GridSpec struct {
	Extent     float64
	Resolution int
}

func (g GridSpec) Count() int {
	n := g.Resolution + 1
	return n * n
}

func (g GridSpec) Step() float64 {
	return g.Extent / float64(g.Resolution)
}

func (g GridSpec) Validate() error {
	if !(g.Extent > 0) {
		return &dynamo.FieldError{Field: "grid.extent", Value: g.Extent, Wrapped: dynamo.ErrInvalidGrid}
	}
	if g.Resolution < 1 {
		return &dynamo.FieldError{Field: "grid.resolution", Value: g.Resolution, Wrapped: dynamo.ErrInvalidGrid}
	}
	return nil
}

// Regenerate computes a fresh sample list for a body centred on source. Only
// the x and z components of source are used.
func Regenerate(spec GridSpec, source r3.Vec, body curvature.Body) []Sample {
	return fill(make([]Sample, 0, spec.Count()), spec, source, body)
}

func fill(dst []Sample, spec GridSpec, source r3.Vec, body curvature.Body) []Sample {
	dst = dst[:0]
	step := spec.Step()
	half := spec.Extent / 2
	src := r2.Vec{X: source.X, Y: source.Z}

	for i := 0; i <= spec.Resolution; i++ {
		z := -half + float64(i)*step
		for j := 0; j <= spec.Resolution; j++ {
			x := -half + float64(j)*step
			y := curvature.HeightAt(r2.Vec{X: x, Y: z}, src, body)
			dst = append(dst, Sample{X: float32(x), Y: float32(y), Z: float32(z)})
		}
	}
	return dst
}

// Surface owns the CPU-side samples and the device buffers they are uploaded
// to. The sample slice is refilled in place on every Regenerate; callers must
// not hold on to it across frames.
type Surface struct {
	spec     GridSpec
	capacity int
	samples  []Sample
	vao      *gpu.VertexArray
	vbo      *gpu.Buffer
	resident int
}

// New prepares a surface for spec. capacity is the number of samples the
// device buffer is sized for; zero or anything below the grid's sample count
// means exactly the sample count.
func New(spec GridSpec, capacity int) (*Surface, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	capacity = max(capacity, spec.Count())

	vbo := gpu.NewBuffer(gpu.ArrayBuffer, gpu.DynamicDraw)
	vbo.Reserve(capacity * sampleStride)

	return &Surface{
		spec:     spec,
		capacity: capacity,
		samples:  make([]Sample, 0, spec.Count()),
		vao:      gpu.NewVertexArray(),
		vbo:      vbo,
	}, nil
}

func (s *Surface) Spec() GridSpec    { return s.spec }
func (s *Surface) Capacity() int     { return s.capacity }
func (s *Surface) Samples() []Sample { return s.samples }
func (s *Surface) Resident() int     { return s.resident }
func (s *Surface) Allocated() bool   { _, ok := s.vbo.Handle(); return ok }

// Regenerate recomputes every sample for the body at source.
func (s *Surface) Regenerate(source r3.Vec, body curvature.Body) []Sample {
	s.samples = fill(s.samples, s.spec, source, body)
	return s.samples
}

// Upload copies the current samples to the device. The first call allocates
// the vertex array and buffer and configures attribute slot 0; later calls
// overwrite the same buffer. Samples beyond capacity are dropped and the
// returned error wraps dynamo.ErrCapacityExceeded.
func (s *Surface) Upload(dev gpu.Device) error {
	created := s.vao.Bind(dev)
	n, err := s.vbo.Write(dev, gpu.Bytes(s.samples))
	if created {
		dev.VertexAttrib(0, 3, int32(sampleStride))
		h, _ := s.vbo.Handle()
		logging.Logger().Debug("surface buffer allocated",
			"handle", h, "capacity", s.capacity, "samples", len(s.samples))
	}
	dev.BindVertexArray(0)

	s.resident = n / sampleStride
	if err != nil {
		return fmt.Errorf("upload surface: %w", err)
	}
	return nil
}

// Drawable returns the vertex array and the number of points resident on the
// device. ok is false before the first Upload.
func (s *Surface) Drawable() (vao uint32, count int32, ok bool) {
	h, ok := s.vao.Handle()
	return h, int32(s.resident), ok
}

func (s *Surface) Release(dev gpu.Device) {
	s.vao.Release(dev)
	s.vbo.Release(dev)
	s.resident = 0
}
