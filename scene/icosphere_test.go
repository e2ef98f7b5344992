package scene

import (
	"errors"
	stdmath "math"
	"testing"

	"fireball/math"
)

const sphereTolerance = 1e-5

func mustBuild(t *testing.T, center math.Vec3, radius float32, level int) *Mesh {
	t.Helper()
	mesh, err := BuildIcosphere(center, radius, level)
	if err != nil {
		t.Fatalf("BuildIcosphere(%v, %v, %d): %v", center, radius, level, err)
	}
	return mesh
}

func maxLevel(t *testing.T) int {
	if testing.Short() {
		return 5
	}
	return MaxSubdivisionLevel
}

func TestIcosphereCounts(t *testing.T) {
	for level := 0; level <= maxLevel(t); level++ {
		mesh := mustBuild(t, math.Vec3Zero, 1, level)

		wantFaces := 20 * int(stdmath.Pow(4, float64(level)))
		wantVerts := 10*int(stdmath.Pow(4, float64(level))) + 2
		if len(mesh.Faces) != wantFaces || FaceCount(level) != wantFaces {
			t.Errorf("level %d: expected %d faces, got %d (FaceCount %d)", level, wantFaces, len(mesh.Faces), FaceCount(level))
		}
		if len(mesh.Vertices) != wantVerts || VertexCount(level) != wantVerts {
			t.Errorf("level %d: expected %d vertices, got %d (VertexCount %d)", level, wantVerts, len(mesh.Vertices), VertexCount(level))
		}
	}
}

func TestIcosphereBaseAndFirstLevel(t *testing.T) {
	base := mustBuild(t, math.Vec3Zero, 1, 0)
	if len(base.Vertices) != 12 || len(base.Faces) != 20 {
		t.Fatalf("level 0: expected 12 vertices / 20 faces, got %d / %d", len(base.Vertices), len(base.Faces))
	}
	for i, v := range base.Vertices {
		if n := v.Position.ToVec3().Length(); stdmath.Abs(float64(n-1)) > sphereTolerance {
			t.Errorf("level 0 vertex %d: expected norm 1, got %v", i, n)
		}
	}

	first := mustBuild(t, math.Vec3Zero, 1, 1)
	if len(first.Vertices) != 42 || len(first.Faces) != 80 {
		t.Errorf("level 1: expected 42 vertices / 80 faces, got %d / %d", len(first.Vertices), len(first.Faces))
	}
}

func TestIcosphereVerticesOnSphere(t *testing.T) {
	center := math.NewVec3(1, -2, 3)
	radius := float32(2.5)
	mesh := mustBuild(t, center, radius, 4)

	for i, v := range mesh.Vertices {
		if v.Position.W != 1 || v.Normal.W != 0 {
			t.Fatalf("vertex %d: expected w=1 position and w=0 normal, got %v / %v", i, v.Position.W, v.Normal.W)
		}
		offset := v.Position.ToVec3().Sub(center)
		if d := offset.Length(); stdmath.Abs(float64(d-radius)) > sphereTolerance*float64(radius)*4 {
			t.Errorf("vertex %d: expected distance %v from center, got %v", i, radius, d)
		}
		radial := offset.Normalize()
		if diff := v.Normal.ToVec3().Sub(radial).Length(); diff > 1e-4 {
			t.Errorf("vertex %d: normal %v differs from radial %v", i, v.Normal, radial)
		}
		if n := v.Normal.ToVec3().Length(); stdmath.Abs(float64(n-1)) > sphereTolerance {
			t.Errorf("vertex %d: expected unit normal, got length %v", i, n)
		}
	}
}

func TestIcosphereWindingOutward(t *testing.T) {
	center := math.NewVec3(-3, 0.5, 2)
	for level := 0; level <= 4; level++ {
		mesh := mustBuild(t, center, 0.75, level)
		for i, f := range mesh.Faces {
			a := mesh.Vertices[f[0]].Position.ToVec3()
			b := mesh.Vertices[f[1]].Position.ToVec3()
			c := mesh.Vertices[f[2]].Position.ToVec3()

			normal := b.Sub(a).Cross(c.Sub(a))
			centroid := a.Add(b).Add(c).Mul(1.0 / 3)
			if normal.Dot(centroid.Sub(center)) <= 0 {
				t.Fatalf("level %d face %d: winding is not outward", level, i)
			}
		}
	}
}

func TestIcosphereWatertight(t *testing.T) {
	for level := 0; level <= 4; level++ {
		mesh := mustBuild(t, math.Vec3Zero, 1, level)

		// Each directed edge appears once and its reverse appears once.
		directed := make(map[[2]uint32]int)
		for _, f := range mesh.Faces {
			for k := 0; k < 3; k++ {
				directed[[2]uint32{f[k], f[(k+1)%3]}]++
			}
		}
		for e, n := range directed {
			if n != 1 {
				t.Fatalf("level %d: directed edge %v used %d times", level, e, n)
			}
			if directed[[2]uint32{e[1], e[0]}] != 1 {
				t.Fatalf("level %d: edge %v has no opposite half-edge", level, e)
			}
		}
		if want := len(mesh.Faces) * 3 / 2; len(directed)/2 != want {
			t.Errorf("level %d: expected %d edges, got %d", level, want, len(directed)/2)
		}
	}
}

func TestIcosphereNoDuplicateVertices(t *testing.T) {
	mesh := mustBuild(t, math.Vec3Zero, 1, 3)
	seen := make(map[[3]int32]int)
	for i, v := range mesh.Vertices {
		// Quantize well below the minimum edge length at this level.
		key := [3]int32{
			int32(stdmath.Round(float64(v.Position.X) * 1e4)),
			int32(stdmath.Round(float64(v.Position.Y) * 1e4)),
			int32(stdmath.Round(float64(v.Position.Z) * 1e4)),
		}
		if j, ok := seen[key]; ok {
			t.Fatalf("vertices %d and %d coincide at %v", j, i, v.Position)
		}
		seen[key] = i
	}
}

func TestIcosphereDeterministic(t *testing.T) {
	center := math.NewVec3(0.25, 0.5, -1)
	a := mustBuild(t, center, 3, 5)
	b := mustBuild(t, center, 3, 5)

	if len(a.Vertices) != len(b.Vertices) || len(a.Faces) != len(b.Faces) {
		t.Fatal("repeated builds differ in size")
	}
	pa, pb := a.Positions(), b.Positions()
	for i := range pa {
		if stdmath.Float32bits(pa[i]) != stdmath.Float32bits(pb[i]) {
			t.Fatalf("position component %d differs: %v vs %v", i, pa[i], pb[i])
		}
	}
	ia, ib := a.Indices(), b.Indices()
	for i := range ia {
		if ia[i] != ib[i] {
			t.Fatalf("index %d differs: %d vs %d", i, ia[i], ib[i])
		}
	}
}

func TestIcosphereInvalidArgument(t *testing.T) {
	tests := []struct {
		name   string
		radius float32
		level  int
	}{
		{"negative level", 1, -1},
		{"level above max", 1, MaxSubdivisionLevel + 1},
		{"zero radius", 0, 2},
		{"negative radius", -1, 2},
		{"NaN radius", float32(stdmath.NaN()), 2},
	}
	for _, tt := range tests {
		_, err := BuildIcosphere(math.Vec3Zero, tt.radius, tt.level)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", tt.name, err)
		}
	}
}

func TestIcosphereBaseFacesNotAliased(t *testing.T) {
	mesh := mustBuild(t, math.Vec3Zero, 1, 0)
	mesh.Faces[0] = Face{1, 2, 3}

	again := mustBuild(t, math.Vec3Zero, 1, 0)
	if again.Faces[0] == (Face{1, 2, 3}) {
		t.Error("mutating a level-0 mesh changed later builds")
	}
}

func TestMeshBuffers(t *testing.T) {
	mesh := mustBuild(t, math.Vec3Zero, 1, 1)
	if got := len(mesh.Positions()); got != len(mesh.Vertices)*4 {
		t.Errorf("Positions: expected %d floats, got %d", len(mesh.Vertices)*4, got)
	}
	if got := len(mesh.Normals()); got != len(mesh.Vertices)*4 {
		t.Errorf("Normals: expected %d floats, got %d", len(mesh.Vertices)*4, got)
	}
	if got := len(mesh.Indices()); got != len(mesh.Faces)*3 {
		t.Errorf("Indices: expected %d, got %d", len(mesh.Faces)*3, got)
	}
	if mesh.ColorData() != nil {
		t.Error("ColorData: expected nil for a mesh without colors")
	}
}

func BenchmarkBuildIcosphere(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := BuildIcosphere(math.Vec3Zero, 1, 5); err != nil {
			b.Fatal(err)
		}
	}
}
