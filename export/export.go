// Package export writes icosphere snapshots to disk.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"fireball/scene"
)

// Save writes mesh to path, choosing the format from the extension
// (.obj or .glb).
func Save(path string, mesh *scene.Mesh) error {
	var write func(io.Writer, *scene.Mesh) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		write = WriteOBJ
	case ".glb":
		write = WriteGLB
	default:
		return fmt.Errorf("unsupported export format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f, mesh); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}

// WriteOBJ writes mesh as a Wavefront OBJ object with per-vertex normals.
func WriteOBJ(w io.Writer, mesh *scene.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Exported by fireball")
	fmt.Fprintf(bw, "o %s\n", mesh.Name)

	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "v %f %f %f\n", v.Position.X, v.Position.Y, v.Position.Z)
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "vn %f %f %f\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
	}

	// OBJ indices are 1-based.
	for _, f := range mesh.Faces {
		a, b, c := f[0]+1, f[1]+1, f[2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	return bw.Flush()
}

// WriteGLB writes mesh as a single-node binary glTF.
func WriteGLB(w io.Writer, mesh *scene.Mesh) error {
	positions := make([][3]float32, len(mesh.Vertices))
	normals := make([][3]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = [3]float32{v.Position.X, v.Position.Y, v.Position.Z}
		normals[i] = [3]float32{v.Normal.X, v.Normal.Y, v.Normal.Z}
	}

	doc := gltf.NewDocument()
	posIdx := modeler.WritePosition(doc, positions)
	norIdx := modeler.WriteNormal(doc, normals)
	indIdx := modeler.WriteIndices(doc, mesh.Indices())

	doc.Meshes = []*gltf.Mesh{{
		Name: mesh.Name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(indIdx),
			Attributes: map[string]int{
				"POSITION": posIdx,
				"NORMAL":   norIdx,
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: mesh.Name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode glb: %w", err)
	}
	return nil
}
