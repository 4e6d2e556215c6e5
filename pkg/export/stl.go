// Package export writes tessellated meshes to interchange formats.
// The file-based STL path reuses the sdfx render package's writer; the
// io.Writer path encodes the same triangles for embedding callers that
// stream to a buffer or network response.
package export

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/chazu/burl/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// toTriangles converts a kernel mesh into sdfx render triangles.
func toTriangles(m *kernel.Mesh) ([]*sdf.Triangle3, error) {
	if len(m.Indices)%3 != 0 {
		return nil, fmt.Errorf("export: mesh %q has %d indices, not a multiple of 3", m.SolidName, len(m.Indices))
	}
	at := func(idx uint32) (v3.Vec, error) {
		if int(idx)*3+2 >= len(m.Vertices) {
			return v3.Vec{}, fmt.Errorf("export: mesh %q index %d out of range", m.SolidName, idx)
		}
		return v3.Vec{
			X: float64(m.Vertices[idx*3]),
			Y: float64(m.Vertices[idx*3+1]),
			Z: float64(m.Vertices[idx*3+2]),
		}, nil
	}

	tris := make([]*sdf.Triangle3, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		var tri sdf.Triangle3
		for j := 0; j < 3; j++ {
			v, err := at(m.Indices[i+j])
			if err != nil {
				return nil, err
			}
			tri[j] = v
		}
		tris = append(tris, &tri)
	}
	return tris, nil
}

// collectTriangles converts and concatenates all meshes, rejecting an
// empty result so callers never emit a bodyless STL file.
func collectTriangles(meshes []*kernel.Mesh) ([]*sdf.Triangle3, error) {
	var tris []*sdf.Triangle3
	for _, m := range meshes {
		t, err := toTriangles(m)
		if err != nil {
			return nil, err
		}
		tris = append(tris, t...)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("export: no triangles to write")
	}
	return tris, nil
}

// stlTriangle is one 50-byte record of a binary STL body.
type stlTriangle struct {
	Normal [3]float32
	Verts  [3][3]float32
	Attr   uint16
}

// WriteSTL writes the meshes to w as a single binary STL stream:
// an 80-byte header, a little-endian triangle count, and one 50-byte
// record per triangle.
func WriteSTL(w io.Writer, meshes []*kernel.Mesh) error {
	tris, err := collectTriangles(meshes)
	if err != nil {
		return err
	}

	var header [80]byte
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("export: write STL header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tris))); err != nil {
		return fmt.Errorf("export: write STL count: %w", err)
	}

	for _, tri := range tris {
		n := tri.Normal()
		rec := stlTriangle{
			Normal: [3]float32{float32(n.X), float32(n.Y), float32(n.Z)},
		}
		for j := 0; j < 3; j++ {
			rec.Verts[j] = [3]float32{float32(tri[j].X), float32(tri[j].Y), float32(tri[j].Z)}
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("export: write STL triangle: %w", err)
		}
	}
	return nil
}

// SaveSTL writes the meshes to path as a single binary STL file.
func SaveSTL(path string, meshes []*kernel.Mesh) error {
	tris, err := collectTriangles(meshes)
	if err != nil {
		return fmt.Errorf("%w (target %s)", err, path)
	}
	return render.SaveSTL(path, tris)
}
