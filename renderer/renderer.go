package renderer

import (
	"fireball/core"
	"fireball/math"
	"fireball/scene"
)

// Renderer owns the framebuffer-level state: clear color and viewport.
type Renderer struct {
	ctx        *Context
	clearColor core.Color
	viewport   core.Viewport
}

func NewRenderer(ctx *Context) *Renderer {
	return &Renderer{
		ctx:        ctx,
		clearColor: core.ColorBlack,
	}
}

func (r *Renderer) SetClearColor(c core.Color) {
	r.clearColor = c
	r.ctx.Device.ClearColor(c.R, c.G, c.B, c.A)
}

// SetSize resizes the viewport to the drawable size in pixels.
func (r *Renderer) SetSize(width, height int) {
	r.viewport = core.Viewport{Width: width, Height: height}
	r.ctx.Device.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) Viewport() core.Viewport {
	return r.viewport
}

// Clear clears color and depth.
func (r *Renderer) Clear() {
	r.ctx.Device.Clear()
}

// Render draws each drawable with an identity model matrix and the
// camera's view-projection.
func (r *Renderer) Render(camera *scene.Camera, prog *ShaderProgram, drawables []*Drawable) {
	prog.SetModelMatrix(math.Mat4Identity())
	prog.SetViewProjMatrix(camera.ViewProjectionMatrix())

	for _, d := range drawables {
		prog.Draw(d)
	}
}
