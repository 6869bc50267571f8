// Package gpu wraps the graphics device behind a narrow [Device] interface.
//
// The interface covers exactly what the scene needs: buffer and vertex-array
// lifecycle, program compilation, uniform upload and two draw modes. [GL] is
// the OpenGL implementation used by the window; package gputest provides a
// recording fake for tests.
//
// # Buffer lifecycle
//
// A [Buffer] is either [Uninitialized] or [Allocated]. The first Write
// allocates device storage and records the handle; later writes reuse the
// same handle and replace the contents in place:
//
//	vbo := gpu.NewBuffer(gpu.ArrayBuffer, gpu.DynamicDraw)
//	vbo.Reserve(capacity)
//	n, err := vbo.Write(dev, gpu.Bytes(samples))
//
// Release frees the allocation and returns the buffer to Uninitialized, so a
// handle is never dropped while still owning device memory.
package gpu
