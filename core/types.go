package core

import (
	"fireball/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// ColorFromRGB8 converts 0-255 channels into an opaque unit-interval color.
func ColorFromRGB8(rgb [3]uint8) Color {
	return Color{
		R: float32(rgb[0]) / 255,
		G: float32(rgb[1]) / 255,
		B: float32(rgb[2]) / 255,
		A: 1,
	}
}

func (c Color) Vec4() math.Vec4 {
	return math.Vec4{X: c.R, Y: c.G, Z: c.B, W: c.A}
}

// Vertex carries homogenized attributes: Position has w=1, Normal has w=0.
type Vertex struct {
	Position math.Vec4
	Normal   math.Vec4
}

type Viewport struct {
	X, Y, Width, Height int
}

// AspectRatio returns width/height, or 0 for a degenerate viewport.
func (v Viewport) AspectRatio() float32 {
	if v.Height <= 0 {
		return 0
	}
	return float32(v.Width) / float32(v.Height)
}
