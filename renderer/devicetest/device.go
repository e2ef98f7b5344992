// Package devicetest provides an in-memory renderer.Device that records
// every call, for testing code above the graphics API.
package devicetest

import (
	"fmt"
	"strings"

	"fireball/renderer"
)

// Call is one recorded device call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Device is a fake renderer.Device. Shader sources containing
// FailCompileMarker fail to compile; programs fail to link while FailLink
// is set. Attribute and uniform names not listed in Inputs resolve to
// renderer.NoLocation; a nil Inputs resolves every name.
type Device struct {
	Calls []Call

	FailLink bool
	Inputs   map[string]bool

	nextHandle uint32
	locations  map[string]int32

	Buffers       map[renderer.Buffer][]float32
	IndexBuffers  map[renderer.Buffer][]uint32
	Uniforms      map[int32]any
	boundArray    renderer.Buffer
	boundElements renderer.Buffer

	shaderSources map[renderer.Shader]string
	compiled      map[renderer.Shader]bool
	linked        map[renderer.Program]bool

	liveBuffers  map[renderer.Buffer]bool
	liveShaders  map[renderer.Shader]bool
	livePrograms map[renderer.Program]bool
}

// FailCompileMarker makes a shader source fail to compile.
const FailCompileMarker = "#error"

func New() *Device {
	return &Device{
		locations:     make(map[string]int32),
		Buffers:       make(map[renderer.Buffer][]float32),
		IndexBuffers:  make(map[renderer.Buffer][]uint32),
		Uniforms:      make(map[int32]any),
		shaderSources: make(map[renderer.Shader]string),
		compiled:      make(map[renderer.Shader]bool),
		linked:        make(map[renderer.Program]bool),
		liveBuffers:   make(map[renderer.Buffer]bool),
		liveShaders:   make(map[renderer.Shader]bool),
		livePrograms:  make(map[renderer.Program]bool),
	}
}

func (d *Device) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Device) handle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

// Count returns how many calls named name were recorded.
func (d *Device) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps device objects.
func (d *Device) Reset() {
	d.Calls = nil
}

// Live reports how many buffers, shaders and programs are still allocated.
func (d *Device) Live() (buffers, shaders, programs int) {
	return len(d.liveBuffers), len(d.liveShaders), len(d.livePrograms)
}

// Location returns the location handed out for name, or NoLocation.
func (d *Device) Location(name string) int32 {
	if loc, ok := d.locations[name]; ok {
		return loc
	}
	return renderer.NoLocation
}

func (d *Device) CreateBuffer() renderer.Buffer {
	b := renderer.Buffer(d.handle())
	d.liveBuffers[b] = true
	d.record("CreateBuffer", b)
	return b
}

func (d *Device) BindBuffer(target renderer.BufferTarget, b renderer.Buffer) {
	if target == renderer.ElementArrayBuffer {
		d.boundElements = b
	} else {
		d.boundArray = b
	}
	d.record("BindBuffer", target, b)
}

func (d *Device) BufferFloats(target renderer.BufferTarget, data []float32) {
	d.Buffers[d.boundArray] = append([]float32(nil), data...)
	d.record("BufferFloats", target, len(data))
}

func (d *Device) BufferIndices(data []uint32) {
	d.IndexBuffers[d.boundElements] = append([]uint32(nil), data...)
	d.record("BufferIndices", len(data))
}

func (d *Device) DeleteBuffer(b renderer.Buffer) {
	delete(d.liveBuffers, b)
	delete(d.Buffers, b)
	delete(d.IndexBuffers, b)
	d.record("DeleteBuffer", b)
}

func (d *Device) CreateShader(stage renderer.ShaderStage) renderer.Shader {
	s := renderer.Shader(d.handle())
	d.liveShaders[s] = true
	d.record("CreateShader", stage)
	return s
}

func (d *Device) ShaderSource(s renderer.Shader, source string) {
	d.shaderSources[s] = source
	d.record("ShaderSource", s)
}

func (d *Device) CompileShader(s renderer.Shader) {
	d.compiled[s] = !strings.Contains(d.shaderSources[s], FailCompileMarker)
	d.record("CompileShader", s)
}

func (d *Device) ShaderCompiled(s renderer.Shader) bool {
	return d.compiled[s]
}

func (d *Device) ShaderInfoLog(s renderer.Shader) string {
	if d.compiled[s] {
		return ""
	}
	return fmt.Sprintf("ERROR: 0:1: shader %d: %s directive", s, FailCompileMarker)
}

func (d *Device) DeleteShader(s renderer.Shader) {
	delete(d.liveShaders, s)
	d.record("DeleteShader", s)
}

func (d *Device) CreateProgram() renderer.Program {
	p := renderer.Program(d.handle())
	d.livePrograms[p] = true
	d.record("CreateProgram", p)
	return p
}

func (d *Device) AttachShader(p renderer.Program, s renderer.Shader) {
	d.record("AttachShader", p, s)
}

func (d *Device) LinkProgram(p renderer.Program) {
	d.linked[p] = !d.FailLink
	d.record("LinkProgram", p)
}

func (d *Device) ProgramLinked(p renderer.Program) bool {
	return d.linked[p]
}

func (d *Device) ProgramInfoLog(p renderer.Program) string {
	if d.linked[p] {
		return ""
	}
	return "error: vs_Pos is not written by any stage"
}

func (d *Device) UseProgram(p renderer.Program) {
	d.record("UseProgram", p)
}

func (d *Device) DeleteProgram(p renderer.Program) {
	delete(d.livePrograms, p)
	d.record("DeleteProgram", p)
}

func (d *Device) resolve(name string) int32 {
	if d.Inputs != nil && !d.Inputs[name] {
		return renderer.NoLocation
	}
	if loc, ok := d.locations[name]; ok {
		return loc
	}
	loc := int32(len(d.locations))
	d.locations[name] = loc
	return loc
}

func (d *Device) AttribLocation(p renderer.Program, name string) int32 {
	return d.resolve(name)
}

func (d *Device) UniformLocation(p renderer.Program, name string) int32 {
	return d.resolve(name)
}

func (d *Device) EnableVertexAttribArray(loc int32) {
	d.record("EnableVertexAttribArray", loc)
}

func (d *Device) DisableVertexAttribArray(loc int32) {
	d.record("DisableVertexAttribArray", loc)
}

func (d *Device) VertexAttribPointer(loc int32, size int32) {
	d.record("VertexAttribPointer", loc, size, d.boundArray)
}

func (d *Device) setUniform(name string, loc int32, v any) {
	if loc == renderer.NoLocation {
		panic(fmt.Sprintf("devicetest: %s written to an unused location", name))
	}
	d.Uniforms[loc] = v
	d.record(name, loc)
}

func (d *Device) UniformMatrix4(loc int32, m [16]float32) {
	d.setUniform("UniformMatrix4", loc, m)
}

func (d *Device) Uniform4f(loc int32, x, y, z, w float32) {
	d.setUniform("Uniform4f", loc, [4]float32{x, y, z, w})
}

func (d *Device) Uniform1f(loc int32, v float32) {
	d.setUniform("Uniform1f", loc, v)
}

func (d *Device) Uniform1i(loc int32, v int32) {
	d.setUniform("Uniform1i", loc, v)
}

func (d *Device) DrawElements(mode renderer.Primitive, count int32) {
	d.record("DrawElements", mode, count, d.boundElements)
}

func (d *Device) Viewport(x, y, width, height int32) {
	d.record("Viewport", x, y, width, height)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.record("ClearColor", r, g, b, a)
}

func (d *Device) Clear() {
	d.record("Clear")
}

var _ renderer.Device = (*Device)(nil)
