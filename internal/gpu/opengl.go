package gpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/san-kum/warp/internal/dynamo"
	"github.com/san-kum/warp/internal/logging"
)

// GL implements Device on the current OpenGL 3.3 core context. The window
// must have made its context current before InitGL is called.
type GL struct {
	Version string
}

func InitGL() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to init opengl: %w", err)
	}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	logging.Logger().Info("opengl initialized", "version", version)

	gl.Enable(gl.DEPTH_TEST)
	return &GL{Version: version}, nil
}

func glTarget(t Target) uint32 {
	if t == ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func glUsage(u Usage) uint32 {
	if u == DynamicDraw {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

func glMode(p Primitive) uint32 {
	if p == Points {
		return gl.POINTS
	}
	return gl.TRIANGLES
}

func (*GL) GenBuffer() uint32 {
	var h uint32
	gl.GenBuffers(1, &h)
	return h
}

func (*GL) DeleteBuffer(handle uint32) { gl.DeleteBuffers(1, &handle) }

func (*GL) BindBuffer(target Target, handle uint32) { gl.BindBuffer(glTarget(target), handle) }

func (*GL) BufferData(target Target, size int, data []byte, usage Usage) {
	if len(data) == 0 {
		gl.BufferData(glTarget(target), size, nil, glUsage(usage))
		return
	}
	gl.BufferData(glTarget(target), size, gl.Ptr(data), glUsage(usage))
}

func (*GL) BufferSubData(target Target, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(glTarget(target), offset, len(data), gl.Ptr(data))
}

func (*GL) GenVertexArray() uint32 {
	var h uint32
	gl.GenVertexArrays(1, &h)
	return h
}

func (*GL) DeleteVertexArray(handle uint32) { gl.DeleteVertexArrays(1, &handle) }

func (*GL) BindVertexArray(handle uint32) { gl.BindVertexArray(handle) }

func (*GL) VertexAttrib(slot uint32, components int32, stride int32) {
	gl.VertexAttribPointer(slot, components, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(slot)
}

func (*GL) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vShader)

	fShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vShader)
	gl.AttachShader(program, fShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", dynamo.ErrShaderLink, strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", dynamo.ErrShaderCompile, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func (*GL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (*GL) UseProgram(program uint32) { gl.UseProgram(program) }

func (*GL) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*GL) UniformMatrix4(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (*GL) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (*GL) DrawElements(mode Primitive, count int32) {
	gl.DrawElements(glMode(mode), count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (*GL) DrawArrays(mode Primitive, first, count int32) {
	gl.DrawArrays(glMode(mode), first, count)
}
