package renderer

import (
	"fmt"
)

// Handles are opaque device object names. Zero never names a live object.
type (
	Buffer  uint32
	Shader  uint32
	Program uint32
)

// NoLocation marks an attribute or uniform the linked program does not use.
const NoLocation int32 = -1

type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

type Primitive int

const (
	Triangles Primitive = iota
	Lines
	Points
)

// Device is the slice of the graphics API the renderer drives. Bind calls
// mutate device-global state; nothing is assumed to persist between draws.
type Device interface {
	CreateBuffer() Buffer
	BindBuffer(target BufferTarget, b Buffer)
	// BufferFloats replaces the contents of the buffer bound to target.
	BufferFloats(target BufferTarget, data []float32)
	// BufferIndices replaces the contents of the bound element buffer.
	BufferIndices(data []uint32)
	DeleteBuffer(b Buffer)

	CreateShader(stage ShaderStage) Shader
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	AttribLocation(p Program, name string) int32
	UniformLocation(p Program, name string) int32
	EnableVertexAttribArray(loc int32)
	DisableVertexAttribArray(loc int32)
	// VertexAttribPointer sources loc from the bound array buffer as tightly
	// packed float vectors of the given size.
	VertexAttribPointer(loc int32, size int32)

	UniformMatrix4(loc int32, m [16]float32)
	Uniform4f(loc int32, x, y, z, w float32)
	Uniform1f(loc int32, v float32)
	Uniform1i(loc int32, v int32)

	DrawElements(mode Primitive, count int32)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
}

// CheckVersion parses a GL_VERSION string such as "4.6.0 NVIDIA 535.54"
// and fails when it is older than major.minor.
func CheckVersion(version string, major, minor int) error {
	var gotMajor, gotMinor int
	if _, err := fmt.Sscanf(version, "%d.%d", &gotMajor, &gotMinor); err != nil {
		return fmt.Errorf("unrecognized OpenGL version %q: %w", version, err)
	}
	if gotMajor < major || (gotMajor == major && gotMinor < minor) {
		return fmt.Errorf("OpenGL %d.%d required, got %q", major, minor, version)
	}
	return nil
}
