// Package app drives one fireball: it owns the parameter set, rebuilds the
// icosphere when the tessellation level changes and pushes the shader
// parameters every tick.
package app

import (
	"fmt"

	"fireball/controls"
	"fireball/core"
	"fireball/math"
	"fireball/renderer"
	"fireball/scene"
)

type State int

const (
	Idle State = iota
	Rendering
)

func (s State) String() string {
	if s == Rendering {
		return "rendering"
	}
	return "idle"
}

// Options configures an App. Zero fields take the defaults from
// DefaultOptions.
type Options struct {
	Center     math.Vec3
	Radius     float32
	TimeStep   float32
	ClearColor core.Color
	QueueSize  int
}

func DefaultOptions() Options {
	return Options{
		Center:     math.Vec3Zero,
		Radius:     1,
		TimeStep:   0.01,
		ClearColor: core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1},
		QueueSize:  64,
	}
}

// App is the frame loop. All methods except Queue().Push must be called
// from the goroutine that owns the graphics context.
type App struct {
	opts   Options
	params controls.Params
	queue  *controls.Queue

	camera   *scene.Camera
	renderer *renderer.Renderer
	program  *renderer.ShaderProgram
	drawable *renderer.Drawable

	state        State
	closed       bool
	time         float32
	appliedLevel int
	pendingLoad  bool

	rebuilds    int
	vertexCount int
	faceCount   int
}

// New compiles the fireball program and uploads the initial mesh. A shader
// failure is returned as *renderer.CompileError or *renderer.LinkError.
func New(ctx *renderer.Context, camera *scene.Camera, params controls.Params, opts Options) (*App, error) {
	def := DefaultOptions()
	if opts.Radius <= 0 {
		opts.Radius = def.Radius
	}
	if opts.TimeStep <= 0 {
		opts.TimeStep = def.TimeStep
	}
	if opts.ClearColor == (core.Color{}) {
		opts.ClearColor = def.ClearColor
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = def.QueueSize
	}
	params.Clamp()

	program, err := renderer.NewShaderProgram(ctx, renderer.FireballShaders())
	if err != nil {
		return nil, fmt.Errorf("fireball shader: %w", err)
	}

	a := &App{
		opts:     opts,
		params:   params,
		queue:    controls.NewQueue(opts.QueueSize),
		camera:   camera,
		renderer: renderer.NewRenderer(ctx),
		program:  program,
		drawable: renderer.NewDrawable(ctx),
	}
	a.renderer.SetClearColor(opts.ClearColor)

	if err := a.rebuild(); err != nil {
		a.Shutdown()
		return nil, err
	}
	return a, nil
}

// Queue accepts commands from any goroutine; they are applied at the start
// of the next Tick.
func (a *App) Queue() *controls.Queue {
	return a.queue
}

// Dispatch applies cmd immediately. A Load Scene command schedules a
// rebuild for the current or next tick.
func (a *App) Dispatch(cmd controls.Command) error {
	load, err := a.params.Apply(cmd)
	if err != nil {
		return err
	}
	if load {
		a.pendingLoad = true
	}
	return nil
}

// Tick renders one frame. It does nothing after Shutdown.
func (a *App) Tick() error {
	if a.closed {
		return nil
	}

	for _, cmd := range a.queue.Drain() {
		if err := a.Dispatch(cmd); err != nil {
			fmt.Printf("Ignoring command %v: %v\n", cmd, err)
		}
	}
	a.state = Rendering

	a.time += a.opts.TimeStep
	a.camera.Update()
	a.renderer.Clear()

	if a.pendingLoad || a.params.Tesselations != a.appliedLevel {
		if err := a.rebuild(); err != nil {
			return err
		}
	}

	base, secondary, tertiary := a.params.Colors()
	a.program.SetBaseColor(base)
	a.program.SetSecondaryColor(secondary)
	a.program.SetTertiaryColor(tertiary)
	a.program.SetTime(a.time)
	a.program.SetPersistence(a.params.Persistence)
	a.program.SetAmplitude(a.params.Amplitude)
	a.program.SetFrequency(a.params.Frequency)
	a.program.SetOctaves(a.params.Octaves)

	a.renderer.Render(a.camera, a.program, []*renderer.Drawable{a.drawable})
	return nil
}

// rebuild regenerates the icosphere at the current level and replaces the
// drawable's buffers. The CPU mesh is dropped afterwards.
func (a *App) rebuild() error {
	mesh, err := scene.BuildIcosphere(a.opts.Center, a.opts.Radius, a.params.Tesselations)
	if err != nil {
		return fmt.Errorf("rebuild icosphere: %w", err)
	}
	a.drawable.Upload(mesh)

	a.appliedLevel = a.params.Tesselations
	a.pendingLoad = false
	a.rebuilds++
	a.vertexCount = len(mesh.Vertices)
	a.faceCount = len(mesh.Faces)
	return nil
}

// Resize applies a new drawable size right away. Degenerate sizes are
// ignored.
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.renderer.SetSize(width, height)
	a.camera.SetAspectRatio(float32(width) / float32(height))
	a.camera.UpdateProjectionMatrix()
}

// Shutdown releases the mesh buffers and the shader program.
func (a *App) Shutdown() {
	if a.closed {
		return
	}
	a.drawable.Destroy()
	a.program.Destroy()
	a.closed = true
}

func (a *App) State() State {
	return a.state
}

// Params returns a copy of the current parameter set.
func (a *App) Params() controls.Params {
	return a.params
}

// Time is the shader clock.
func (a *App) Time() float32 {
	return a.time
}

// Level is the tessellation level of the uploaded mesh.
func (a *App) Level() int {
	return a.appliedLevel
}

// Rebuilds counts mesh builds since New, including the initial one.
func (a *App) Rebuilds() int {
	return a.rebuilds
}

// MeshSize reports the vertex and face count of the uploaded mesh.
func (a *App) MeshSize() (vertices, faces int) {
	return a.vertexCount, a.faceCount
}

func (a *App) Camera() *scene.Camera {
	return a.camera
}
