package gpu

import "unsafe"

type Target int

const (
	ArrayBuffer Target = iota
	ElementArrayBuffer
)

func (t Target) String() string {
	switch t {
	case ArrayBuffer:
		return "array"
	case ElementArrayBuffer:
		return "element_array"
	}
	return "unknown"
}

type Usage int

const (
	StaticDraw Usage = iota
	DynamicDraw
)

func (u Usage) String() string {
	if u == DynamicDraw {
		return "dynamic"
	}
	return "static"
}

type Primitive int

const (
	Triangles Primitive = iota
	Points
)

// Device is the subset of a graphics API the renderer drives. All calls are
// made from the thread that owns the context.
type Device interface {
	GenBuffer() uint32
	DeleteBuffer(handle uint32)
	BindBuffer(target Target, handle uint32)
	// BufferData (re)allocates storage for the bound buffer. A nil data
	// slice allocates size bytes of undefined contents.
	BufferData(target Target, size int, data []byte, usage Usage)
	BufferSubData(target Target, offset int, data []byte)

	GenVertexArray() uint32
	DeleteVertexArray(handle uint32)
	BindVertexArray(handle uint32)
	// VertexAttrib enables slot as `components` consecutive float32 values
	// with the given stride in bytes, read from the bound array buffer.
	VertexAttrib(slot uint32, components int32, stride int32)

	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m *[16]float32)

	SetDepthTest(enabled bool)
	DrawElements(mode Primitive, count int32)
	DrawArrays(mode Primitive, first, count int32)
}

// Bytes reinterprets a slice of fixed-size values as its raw bytes without
// copying. The result aliases s.
func Bytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}
