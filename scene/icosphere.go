package scene

import (
	"errors"
	"fmt"
	stdmath "math"

	"fireball/core"
	"fireball/math"
)

// MaxSubdivisionLevel bounds BuildIcosphere; level 8 already yields
// 1,310,720 faces.
const MaxSubdivisionLevel = 8

// ErrInvalidArgument is returned for an out-of-range level or a
// non-positive radius.
var ErrInvalidArgument = errors.New("invalid argument")

// Base icosahedron (unit circumradius after normalization). Faces are
// counter-clockwise seen from outside.
var (
	icoPhi = float32((1 + stdmath.Sqrt(5)) / 2)

	icoVertices = [12]math.Vec3{
		{X: -1, Y: icoPhi, Z: 0}, {X: 1, Y: icoPhi, Z: 0}, {X: -1, Y: -icoPhi, Z: 0}, {X: 1, Y: -icoPhi, Z: 0},
		{X: 0, Y: -1, Z: icoPhi}, {X: 0, Y: 1, Z: icoPhi}, {X: 0, Y: -1, Z: -icoPhi}, {X: 0, Y: 1, Z: -icoPhi},
		{X: icoPhi, Y: 0, Z: -1}, {X: icoPhi, Y: 0, Z: 1}, {X: -icoPhi, Y: 0, Z: -1}, {X: -icoPhi, Y: 0, Z: 1},
	}

	icoFaces = [20]Face{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// FaceCount returns the number of faces of an icosphere at level.
func FaceCount(level int) int {
	return 20 << (2 * uint(level))
}

// VertexCount returns the number of distinct vertices of an icosphere at
// level (Euler: V = F/2 + 2).
func VertexCount(level int) int {
	return 10<<(2*uint(level)) + 2
}

// edgeKey identifies an edge by its endpoints regardless of direction.
type edgeKey struct {
	lo, hi uint32
}

func makeEdgeKey(a, b uint32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// icosphereBuilder accumulates unit-sphere directions; positions are only
// derived once subdivision is finished so that every vertex is projected
// from the exact unit direction.
type icosphereBuilder struct {
	dirs  []math.Vec3
	faces []Face
}

func (b *icosphereBuilder) subdivide() {
	midpoints := make(map[edgeKey]uint32, len(b.faces)*3/2)
	midpoint := func(i1, i2 uint32) uint32 {
		key := makeEdgeKey(i1, i2)
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		idx := uint32(len(b.dirs))
		b.dirs = append(b.dirs, b.dirs[i1].Add(b.dirs[i2]).Normalize())
		midpoints[key] = idx
		return idx
	}

	faces := make([]Face, 0, len(b.faces)*4)
	for _, f := range b.faces {
		m01 := midpoint(f[0], f[1])
		m12 := midpoint(f[1], f[2])
		m20 := midpoint(f[2], f[0])

		// Corner children keep the parent's vertex order; the center child
		// walks the midpoints in the same rotational sense.
		faces = append(faces,
			Face{f[0], m01, m20},
			Face{f[1], m12, m01},
			Face{f[2], m20, m12},
			Face{m01, m12, m20},
		)
	}
	b.faces = faces
}

// BuildIcosphere tessellates a sphere of the given center and radius by
// recursively splitting each icosahedron face into four. Shared edges
// share midpoint vertices, so the result is watertight. Normals are the
// radial directions from center. The output is deterministic.
func BuildIcosphere(center math.Vec3, radius float32, level int) (*Mesh, error) {
	if level < 0 || level > MaxSubdivisionLevel {
		return nil, fmt.Errorf("subdivision level %d outside [0,%d]: %w", level, MaxSubdivisionLevel, ErrInvalidArgument)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("radius %v must be positive: %w", radius, ErrInvalidArgument)
	}

	b := &icosphereBuilder{
		dirs:  make([]math.Vec3, 0, VertexCount(level)),
		faces: append([]Face(nil), icoFaces[:]...),
	}
	for _, v := range icoVertices {
		b.dirs = append(b.dirs, v.Normalize())
	}
	for i := 0; i < level; i++ {
		b.subdivide()
	}

	vertices := make([]core.Vertex, len(b.dirs))
	for i, dir := range b.dirs {
		vertices[i] = core.Vertex{
			Position: center.Add(dir.Mul(radius)).ToVec4(1),
			Normal:   dir.ToVec4(0),
		}
	}

	return &Mesh{
		Name:     fmt.Sprintf("Icosphere%d", level),
		Vertices: vertices,
		Faces:    b.faces,
		DrawMode: DrawTriangles,
	}, nil
}
