// Package mesh generates the static sphere that stands in for the orbiting
// mass.
package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/san-kum/warp/internal/gpu"
)

// Mesh is an indexed triangle list. Vertices holds xyz triples.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

func (m Mesh) VertexCount() int { return len(m.Vertices) / 3 }

// Sphere builds a UV sphere. Stacks run from the +z pole (+90°) to the -z
// pole (-90°); each stack carries sectors+1 vertices so the seam is
// duplicated. Each quad is split as (first, second, first+1) and
// (second, second+1, first+1), which fixes the front-face winding.
func Sphere(radius float32, sectors, stacks int) Mesh {
	sectorStep := 2 * math32.Pi / float32(sectors)
	stackStep := math32.Pi / float32(stacks)

	m := Mesh{
		Vertices: make([]float32, 0, (stacks+1)*(sectors+1)*3),
		Indices:  make([]uint32, 0, stacks*sectors*6),
	}

	for i := 0; i <= stacks; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep
		xy := radius * math32.Cos(stackAngle)
		z := radius * math32.Sin(stackAngle)

		for j := 0; j <= sectors; j++ {
			sectorAngle := float32(j) * sectorStep
			m.Vertices = append(m.Vertices, xy*math32.Cos(sectorAngle), xy*math32.Sin(sectorAngle), z)
		}
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			first := uint32(i*(sectors+1) + j)
			second := first + uint32(sectors) + 1
			m.Indices = append(m.Indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}
	return m
}

// StaticMesh is a mesh resident on the device. It is uploaded once and never
// modified.
type StaticMesh struct {
	vao   *gpu.VertexArray
	vbo   *gpu.Buffer
	ebo   *gpu.Buffer
	count int32
}

// Upload creates the vertex array, vertex buffer and index buffer for m with
// static usage.
func Upload(dev gpu.Device, m Mesh) (*StaticMesh, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, fmt.Errorf("upload mesh: empty mesh (%d vertices, %d indices)", m.VertexCount(), len(m.Indices))
	}
	sm := &StaticMesh{
		vao:   gpu.NewVertexArray(),
		vbo:   gpu.NewBuffer(gpu.ArrayBuffer, gpu.StaticDraw),
		ebo:   gpu.NewBuffer(gpu.ElementArrayBuffer, gpu.StaticDraw),
		count: int32(len(m.Indices)),
	}

	sm.vao.Bind(dev)
	if _, err := sm.vbo.Write(dev, gpu.Bytes(m.Vertices)); err != nil {
		return nil, fmt.Errorf("upload mesh vertices: %w", err)
	}
	if _, err := sm.ebo.Write(dev, gpu.Bytes(m.Indices)); err != nil {
		return nil, fmt.Errorf("upload mesh indices: %w", err)
	}
	dev.VertexAttrib(0, 3, 3*4)
	dev.BindVertexArray(0)
	return sm, nil
}

// Drawable returns the vertex array and index count.
func (s *StaticMesh) Drawable() (vao uint32, count int32, ok bool) {
	h, ok := s.vao.Handle()
	return h, s.count, ok
}

func (s *StaticMesh) Release(dev gpu.Device) {
	s.vao.Release(dev)
	s.vbo.Release(dev)
	s.ebo.Release(dev)
}
