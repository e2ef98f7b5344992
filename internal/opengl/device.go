// Package opengl implements renderer.Device on an OpenGL 4.1 core context.
package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"fireball/renderer"
)

// Device issues renderer calls against the current OpenGL context. The
// context must be current on the calling thread for every method.
type Device struct {
	vao uint32
}

// NewDevice loads the GL function pointers, checks the context version and
// sets up the state every frame relies on.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)
	if err := renderer.CheckVersion(version, 4, 1); err != nil {
		return nil, err
	}

	d := &Device{}
	// Core profile refuses attribute setup without a bound vertex array.
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return d, nil
}

// Destroy releases the vertex array created by NewDevice.
func (d *Device) Destroy() {
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

// ── Buffers ───────────────────────────────────────────────────────────────────

func (d *Device) CreateBuffer() renderer.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return renderer.Buffer(b)
}

func (d *Device) BindBuffer(target renderer.BufferTarget, b renderer.Buffer) {
	gl.BindBuffer(glTarget(target), uint32(b))
}

func (d *Device) BufferFloats(target renderer.BufferTarget, data []float32) {
	if len(data) == 0 {
		gl.BufferData(glTarget(target), 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(glTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) BufferIndices(data []uint32) {
	if len(data) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) DeleteBuffer(b renderer.Buffer) {
	name := uint32(b)
	gl.DeleteBuffers(1, &name)
}

func glTarget(target renderer.BufferTarget) uint32 {
	if target == renderer.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

// ── Shaders ───────────────────────────────────────────────────────────────────

func (d *Device) CreateShader(stage renderer.ShaderStage) renderer.Shader {
	shaderType := uint32(gl.VERTEX_SHADER)
	if stage == renderer.FragmentStage {
		shaderType = gl.FRAGMENT_SHADER
	}
	return renderer.Shader(gl.CreateShader(shaderType))
}

func (d *Device) ShaderSource(s renderer.Shader, source string) {
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(s), 1, csrc, nil)
	free()
}

func (d *Device) CompileShader(s renderer.Shader) {
	gl.CompileShader(uint32(s))
}

func (d *Device) ShaderCompiled(s renderer.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(s renderer.Shader) string {
	var logLen int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(uint32(s), logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Device) DeleteShader(s renderer.Shader) {
	gl.DeleteShader(uint32(s))
}

// ── Programs ──────────────────────────────────────────────────────────────────

func (d *Device) CreateProgram() renderer.Program {
	return renderer.Program(gl.CreateProgram())
}

func (d *Device) AttachShader(p renderer.Program, s renderer.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (d *Device) LinkProgram(p renderer.Program) {
	gl.LinkProgram(uint32(p))
}

func (d *Device) ProgramLinked(p renderer.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(p renderer.Program) string {
	var logLen int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(uint32(p), logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Device) UseProgram(p renderer.Program) {
	gl.UseProgram(uint32(p))
}

func (d *Device) DeleteProgram(p renderer.Program) {
	gl.DeleteProgram(uint32(p))
}

// ── Inputs ────────────────────────────────────────────────────────────────────

func (d *Device) AttribLocation(p renderer.Program, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
}

func (d *Device) UniformLocation(p renderer.Program, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (d *Device) EnableVertexAttribArray(loc int32) {
	gl.EnableVertexAttribArray(uint32(loc))
}

func (d *Device) DisableVertexAttribArray(loc int32) {
	gl.DisableVertexAttribArray(uint32(loc))
}

func (d *Device) VertexAttribPointer(loc int32, size int32) {
	gl.VertexAttribPointer(uint32(loc), size, gl.FLOAT, false, 0, nil)
}

// UniformMatrix4 uploads m as stored; math.Mat4 elements are already in
// column-major order.
func (d *Device) UniformMatrix4(loc int32, m [16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (d *Device) Uniform4f(loc int32, x, y, z, w float32) {
	gl.Uniform4f(loc, x, y, z, w)
}

func (d *Device) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (d *Device) Uniform1i(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

// ── Frame ─────────────────────────────────────────────────────────────────────

func (d *Device) DrawElements(mode renderer.Primitive, count int32) {
	gl.DrawElements(glPrimitive(mode), count, gl.UNSIGNED_INT, nil)
}

func (d *Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func glPrimitive(mode renderer.Primitive) uint32 {
	switch mode {
	case renderer.Lines:
		return gl.LINES
	case renderer.Points:
		return gl.POINTS
	}
	return gl.TRIANGLES
}

var _ renderer.Device = (*Device)(nil)
