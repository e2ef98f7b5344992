package scene

import (
	stdmath "math"

	"fireball/math"
)

// Camera is a look-at camera. View and projection are recomputed by
// Update on every frame and by UpdateProjectionMatrix after a resize.
type Camera struct {
	Position    math.Vec3
	Target      math.Vec3
	Up          math.Vec3
	FOV         float32 // vertical, radians
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	viewMatrix       math.Mat4
	projectionMatrix math.Mat4
	viewProjMatrix   math.Mat4
}

// DefaultFOV is 45 degrees.
const DefaultFOV = float32(stdmath.Pi / 4)

func NewCamera(position, target math.Vec3) *Camera {
	c := &Camera{
		Position:    position,
		Target:      target,
		Up:          math.Vec3Up,
		FOV:         DefaultFOV,
		AspectRatio: 1,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
	c.Update()
	return c
}

// SetAspectRatio stores a new aspect ratio. The projection is not rebuilt
// until UpdateProjectionMatrix or Update runs.
func (c *Camera) SetAspectRatio(aspect float32) {
	if aspect > 0 {
		c.AspectRatio = aspect
	}
}

func (c *Camera) UpdateProjectionMatrix() {
	c.projectionMatrix = math.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
	c.viewProjMatrix = c.viewMatrix.Mul(c.projectionMatrix)
}

// Update recomputes the view and projection matrices from the current
// fields, whether or not they changed.
func (c *Camera) Update() {
	c.viewMatrix = math.Mat4LookAt(c.Position, c.Target, c.Up)
	c.UpdateProjectionMatrix()
}

func (c *Camera) ViewMatrix() math.Mat4 {
	return c.viewMatrix
}

func (c *Camera) ProjectionMatrix() math.Mat4 {
	return c.projectionMatrix
}

// ViewProjectionMatrix maps world space to clip space (view applied first).
func (c *Camera) ViewProjectionMatrix() math.Mat4 {
	return c.viewProjMatrix
}

func (c *Camera) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}
