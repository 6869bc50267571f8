package gpu_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/warp/internal/dynamo"
	"github.com/san-kum/warp/internal/gpu"
	"github.com/san-kum/warp/internal/gpu/gputest"
)

func TestBufferAllocatesOnceAndReusesHandle(t *testing.T) {
	g := NewWithT(t)
	dev := gputest.NewRecorder()
	buf := gpu.NewBuffer(gpu.ArrayBuffer, gpu.DynamicDraw)

	g.Expect(buf.State()).To(Equal(gpu.Uninitialized{}))

	n, err := buf.Write(dev, gpu.Bytes([]float32{1, 2, 3}))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(n).To(Equal(12))

	handle, ok := buf.Handle()
	g.Expect(ok).To(BeTrue())
	g.Expect(buf.State()).To(Equal(gpu.Allocated{Handle: handle, Capacity: 12}))

	for i := 0; i < 5; i++ {
		_, err := buf.Write(dev, gpu.Bytes([]float32{4, 5, float32(i)}))
		g.Expect(err).NotTo(HaveOccurred())
	}

	g.Expect(dev.Count("GenBuffer")).To(Equal(1))
	g.Expect(dev.Count("BufferData")).To(Equal(1))
	g.Expect(dev.Count("BufferSubData")).To(Equal(5))
	g.Expect(dev.Floats(handle)).To(Equal([]float32{4, 5, 4}))

	again, _ := buf.Handle()
	g.Expect(again).To(Equal(handle))
}

func TestBufferReserveAllocatesCapacityUpFront(t *testing.T) {
	g := NewWithT(t)
	dev := gputest.NewRecorder()
	buf := gpu.NewBuffer(gpu.ArrayBuffer, gpu.DynamicDraw)
	buf.Reserve(64)

	_, err := buf.Write(dev, gpu.Bytes([]float32{7, 8}))
	g.Expect(err).NotTo(HaveOccurred())

	handle, _ := buf.Handle()
	g.Expect(dev.Buffers[handle]).To(HaveLen(64))
	g.Expect(dev.Floats(handle)[:2]).To(Equal([]float32{7, 8}))
	g.Expect(dev.Ops()).To(Equal([]string{"GenBuffer", "BindBuffer", "BufferData", "BufferSubData"}))
}

func TestBufferWriteBeyondCapacityTruncates(t *testing.T) {
	g := NewWithT(t)
	dev := gputest.NewRecorder()
	buf := gpu.NewBuffer(gpu.ArrayBuffer, gpu.DynamicDraw)

	_, err := buf.Write(dev, gpu.Bytes([]float32{1, 2}))
	g.Expect(err).NotTo(HaveOccurred())

	n, err := buf.Write(dev, gpu.Bytes([]float32{3, 4, 5, 6}))
	g.Expect(errors.Is(err, dynamo.ErrCapacityExceeded)).To(BeTrue())
	g.Expect(n).To(Equal(8))

	handle, _ := buf.Handle()
	g.Expect(dev.Floats(handle)).To(Equal([]float32{3, 4}))
	g.Expect(dev.Count("GenBuffer")).To(Equal(1))
}

func TestBufferRelease(t *testing.T) {
	g := NewWithT(t)
	dev := gputest.NewRecorder()
	buf := gpu.NewBuffer(gpu.ElementArrayBuffer, gpu.StaticDraw)

	buf.Release(dev)
	g.Expect(dev.Count("DeleteBuffer")).To(Equal(0))

	_, _ = buf.Write(dev, gpu.Bytes([]uint32{0, 1, 2}))
	handle, _ := buf.Handle()
	buf.Release(dev)

	g.Expect(buf.State()).To(Equal(gpu.Uninitialized{}))
	g.Expect(dev.Buffers).NotTo(HaveKey(handle))

	_, _ = buf.Write(dev, gpu.Bytes([]uint32{0, 1, 2}))
	g.Expect(dev.Count("GenBuffer")).To(Equal(2))
}

func TestVertexArrayBindCreatesOnce(t *testing.T) {
	g := NewWithT(t)
	dev := gputest.NewRecorder()
	vao := gpu.NewVertexArray()

	g.Expect(vao.Bind(dev)).To(BeTrue())
	g.Expect(vao.Bind(dev)).To(BeFalse())
	g.Expect(dev.Count("GenVertexArray")).To(Equal(1))

	h, ok := vao.Handle()
	g.Expect(ok).To(BeTrue())

	vao.Release(dev)
	g.Expect(dev.VertexArrays).NotTo(HaveKey(h))
	_, ok = vao.Handle()
	g.Expect(ok).To(BeFalse())
}

func TestBytes(t *testing.T) {
	g := NewWithT(t)
	g.Expect(gpu.Bytes([]float32(nil))).To(BeNil())
	g.Expect(gpu.Bytes([]float32{1, 2, 3})).To(HaveLen(12))
	g.Expect(gpu.Bytes([]uint32{1})).To(HaveLen(4))
}
