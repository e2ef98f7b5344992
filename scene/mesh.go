package scene

import (
	"fireball/core"
	"fireball/math"
)

// DrawMode controls the primitive type used when rendering a mesh.
type DrawMode int

const (
	DrawTriangles DrawMode = iota // default
	DrawLines
	DrawPoints
)

// Face holds three vertex indices in counter-clockwise order when viewed
// from outside the surface.
type Face [3]uint32

// Mesh holds CPU-side vertex/face data. It is handed to the renderer for
// upload and may be discarded afterwards.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Faces    []Face
	DrawMode DrawMode // defaults to DrawTriangles

	// Colors is optional per-vertex color; nil when the mesh has none.
	Colors []math.Vec4
}

// Indices flattens the faces into an index buffer.
func (m *Mesh) Indices() []uint32 {
	indices := make([]uint32, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		indices = append(indices, f[0], f[1], f[2])
	}
	return indices
}

// Positions returns the homogenized positions as a flat xyzw slice.
func (m *Mesh) Positions() []float32 {
	out := make([]float32, 0, len(m.Vertices)*4)
	for _, v := range m.Vertices {
		out = append(out, v.Position.X, v.Position.Y, v.Position.Z, v.Position.W)
	}
	return out
}

// Normals returns the homogenized normals as a flat xyzw slice.
func (m *Mesh) Normals() []float32 {
	out := make([]float32, 0, len(m.Vertices)*4)
	for _, v := range m.Vertices {
		out = append(out, v.Normal.X, v.Normal.Y, v.Normal.Z, v.Normal.W)
	}
	return out
}

// ColorData returns the per-vertex colors as a flat rgba slice, or nil.
func (m *Mesh) ColorData() []float32 {
	if len(m.Colors) == 0 {
		return nil
	}
	out := make([]float32, 0, len(m.Colors)*4)
	for _, c := range m.Colors {
		out = append(out, c.X, c.Y, c.Z, c.W)
	}
	return out
}
