package gpu

import (
	"fmt"

	"github.com/san-kum/warp/internal/dynamo"
)

// State is the allocation state of a device resource: [Uninitialized] or
// [Allocated]. Callers switch on the concrete type.
type State interface {
	isState()
}

type Uninitialized struct{}

// Allocated records the device handle and the number of bytes reserved for it.
type Allocated struct {
	Handle   uint32
	Capacity int
}

func (Uninitialized) isState() {}
func (Allocated) isState()     {}

// Buffer owns at most one device buffer allocation.
type Buffer struct {
	target  Target
	usage   Usage
	reserve int
	state   State
}

func NewBuffer(target Target, usage Usage) *Buffer {
	return &Buffer{target: target, usage: usage, state: Uninitialized{}}
}

// Reserve sets the minimum size in bytes of the first allocation. It has no
// effect once the buffer is allocated.
func (b *Buffer) Reserve(size int) {
	b.reserve = size
}

func (b *Buffer) State() State { return b.state }

func (b *Buffer) Handle() (uint32, bool) {
	if a, ok := b.state.(Allocated); ok {
		return a.Handle, true
	}
	return 0, false
}

// Write uploads data to the buffer, allocating on first use and replacing the
// contents in place afterwards. The buffer stays bound to its target. If data
// is larger than the allocation only the leading capacity bytes are written
// and the error wraps [dynamo.ErrCapacityExceeded].
func (b *Buffer) Write(dev Device, data []byte) (int, error) {
	switch s := b.state.(type) {
	case Uninitialized:
		handle := dev.GenBuffer()
		dev.BindBuffer(b.target, handle)
		size := max(b.reserve, len(data))
		if size == len(data) {
			dev.BufferData(b.target, size, data, b.usage)
		} else {
			dev.BufferData(b.target, size, nil, b.usage)
			if len(data) > 0 {
				dev.BufferSubData(b.target, 0, data)
			}
		}
		b.state = Allocated{Handle: handle, Capacity: size}
		return len(data), nil
	case Allocated:
		dev.BindBuffer(b.target, s.Handle)
		if len(data) > s.Capacity {
			dev.BufferSubData(b.target, 0, data[:s.Capacity])
			return s.Capacity, fmt.Errorf("%s buffer %d: %d bytes into %d: %w",
				b.target, s.Handle, len(data), s.Capacity, dynamo.ErrCapacityExceeded)
		}
		if len(data) > 0 {
			dev.BufferSubData(b.target, 0, data)
		}
		return len(data), nil
	}
	return 0, fmt.Errorf("%s buffer: unknown state %T", b.target, b.state)
}

// Release frees the device allocation, if any.
func (b *Buffer) Release(dev Device) {
	if a, ok := b.state.(Allocated); ok {
		dev.DeleteBuffer(a.Handle)
	}
	b.state = Uninitialized{}
}

// VertexArray owns at most one vertex array object.
type VertexArray struct {
	state State
}

func NewVertexArray() *VertexArray {
	return &VertexArray{state: Uninitialized{}}
}

// Bind binds the vertex array, creating it on first use. It reports whether
// the array was created by this call so callers can configure attributes once.
func (v *VertexArray) Bind(dev Device) (created bool) {
	switch s := v.state.(type) {
	case Allocated:
		dev.BindVertexArray(s.Handle)
		return false
	default:
		handle := dev.GenVertexArray()
		dev.BindVertexArray(handle)
		v.state = Allocated{Handle: handle}
		return true
	}
}

func (v *VertexArray) Handle() (uint32, bool) {
	if a, ok := v.state.(Allocated); ok {
		return a.Handle, true
	}
	return 0, false
}

func (v *VertexArray) Release(dev Device) {
	if a, ok := v.state.(Allocated); ok {
		dev.DeleteVertexArray(a.Handle)
	}
	v.state = Uninitialized{}
}
