// Package gputest provides a recording gpu.Device for tests.
package gputest

import (
	"fmt"
	"unsafe"

	"github.com/san-kum/warp/internal/dynamo"
	"github.com/san-kum/warp/internal/gpu"
)

// Call is one recorded device call. Args holds the scalar arguments in call
// order; uploaded bytes are kept in the buffer store, not here.
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string { return fmt.Sprintf("%s%v", c.Op, c.Args) }

// Recorder implements gpu.Device in memory. Handles start at 1 so a zero
// handle never denotes a live object.
type Recorder struct {
	Calls []Call

	// Buffers maps live buffer handles to their current contents.
	Buffers map[uint32][]byte
	// Uniforms maps uniform locations to the last uploaded matrix.
	Uniforms map[int32][16]float32
	// Programs maps live program handles to their uniform locations.
	Programs map[uint32]map[string]int32
	// FailCompile makes CompileProgram fail with dynamo.ErrShaderCompile.
	FailCompile bool

	VertexArrays map[uint32]bool
	DepthTest    bool

	next         uint32
	nextLocation int32
	bound        map[gpu.Target]uint32
	vao          uint32
	program      uint32
}

func NewRecorder() *Recorder {
	return &Recorder{
		Buffers:      make(map[uint32][]byte),
		Uniforms:     make(map[int32][16]float32),
		Programs:     make(map[uint32]map[string]int32),
		VertexArrays: make(map[uint32]bool),
		bound:        make(map[gpu.Target]uint32),
	}
}

func (r *Recorder) record(op string, args ...any) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) handle() uint32 {
	r.next++
	return r.next
}

// Count returns how many calls with the given op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Ops returns the recorded op names in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset drops the call log but keeps device objects alive.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Floats decodes the contents of a buffer as float32 values.
func (r *Recorder) Floats(handle uint32) []float32 {
	b := r.Buffers[handle]
	if len(b) < 4 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&b[0])), len(b)/4)
}

// Uniform returns the last matrix uploaded to the named uniform of program.
func (r *Recorder) Uniform(program uint32, name string) ([16]float32, bool) {
	loc, ok := r.Programs[program][name]
	if !ok {
		return [16]float32{}, false
	}
	m, ok := r.Uniforms[loc]
	return m, ok
}

func (r *Recorder) GenBuffer() uint32 {
	h := r.handle()
	r.Buffers[h] = nil
	r.record("GenBuffer", h)
	return h
}

func (r *Recorder) DeleteBuffer(handle uint32) {
	delete(r.Buffers, handle)
	r.record("DeleteBuffer", handle)
}

func (r *Recorder) BindBuffer(target gpu.Target, handle uint32) {
	r.bound[target] = handle
	r.record("BindBuffer", target, handle)
}

func (r *Recorder) BufferData(target gpu.Target, size int, data []byte, usage gpu.Usage) {
	buf := make([]byte, size)
	copy(buf, data)
	r.Buffers[r.bound[target]] = buf
	r.record("BufferData", target, size, usage)
}

func (r *Recorder) BufferSubData(target gpu.Target, offset int, data []byte) {
	buf := r.Buffers[r.bound[target]]
	if offset+len(data) > len(buf) {
		panic(fmt.Sprintf("gputest: sub data [%d:%d] beyond buffer of %d bytes", offset, offset+len(data), len(buf)))
	}
	copy(buf[offset:], data)
	r.record("BufferSubData", target, offset, len(data))
}

func (r *Recorder) GenVertexArray() uint32 {
	h := r.handle()
	r.VertexArrays[h] = true
	r.record("GenVertexArray", h)
	return h
}

func (r *Recorder) DeleteVertexArray(handle uint32) {
	delete(r.VertexArrays, handle)
	r.record("DeleteVertexArray", handle)
}

func (r *Recorder) BindVertexArray(handle uint32) {
	r.vao = handle
	r.record("BindVertexArray", handle)
}

func (r *Recorder) VertexAttrib(slot uint32, components int32, stride int32) {
	r.record("VertexAttrib", slot, components, stride)
}

func (r *Recorder) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	if r.FailCompile {
		r.record("CompileProgram", uint32(0))
		return 0, fmt.Errorf("%w: 0:1(1): error: syntax error", dynamo.ErrShaderCompile)
	}
	h := r.handle()
	r.Programs[h] = make(map[string]int32)
	r.record("CompileProgram", h)
	return h, nil
}

func (r *Recorder) DeleteProgram(program uint32) {
	delete(r.Programs, program)
	r.record("DeleteProgram", program)
}

func (r *Recorder) UseProgram(program uint32) {
	r.program = program
	r.record("UseProgram", program)
}

func (r *Recorder) UniformLocation(program uint32, name string) int32 {
	locs, ok := r.Programs[program]
	if !ok {
		return -1
	}
	loc, ok := locs[name]
	if !ok {
		loc = r.nextLocation
		r.nextLocation++
		locs[name] = loc
	}
	r.record("UniformLocation", program, name)
	return loc
}

func (r *Recorder) UniformMatrix4(location int32, m *[16]float32) {
	r.Uniforms[location] = *m
	r.record("UniformMatrix4", location)
}

func (r *Recorder) SetDepthTest(enabled bool) {
	r.DepthTest = enabled
	r.record("SetDepthTest", enabled)
}

func (r *Recorder) DrawElements(mode gpu.Primitive, count int32) {
	r.record("DrawElements", mode, count, r.vao, r.program)
}

func (r *Recorder) DrawArrays(mode gpu.Primitive, first, count int32) {
	r.record("DrawArrays", mode, first, count, r.vao, r.program)
}

var _ gpu.Device = (*Recorder)(nil)
