// Package bsp implements the kernel.Kernel interface on the polygon CSG
// engine in pkg/csg. Solids are boundary polygon soups; boolean operations
// build BSP trees, combine them, and extract the resulting boundary.
package bsp

import (
	"math"

	"github.com/chazu/burl/pkg/csg"
	"github.com/chazu/burl/pkg/kernel"
)

// Compile-time interface checks.
var _ kernel.Kernel = (*BSPKernel)(nil)
var _ kernel.Solid = (*bspSolid)(nil)
var _ kernel.Colorer = (*bspSolid)(nil)

// bspSolid wraps a boundary polygon list to implement kernel.Solid.
type bspSolid struct {
	polys []csg.Polygon
}

// BoundingBox returns the axis-aligned bounding box of the solid's
// boundary vertices.
func (s *bspSolid) BoundingBox() (min, max [3]float64) {
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range s.polys {
		for _, v := range p.Points {
			min[0] = math.Min(min[0], v.X)
			min[1] = math.Min(min[1], v.Y)
			min[2] = math.Min(min[2], v.Z)
			max[0] = math.Max(max[0], v.X)
			max[1] = math.Max(max[1], v.Y)
			max[2] = math.Max(max[2], v.Z)
		}
	}
	if len(s.polys) == 0 {
		return [3]float64{}, [3]float64{}
	}
	return min, max
}

// Polygons returns the solid's boundary polygons. The slice is shared
// with the solid and must not be mutated.
func (s *bspSolid) Polygons() []csg.Polygon {
	return s.polys
}

// WithColor returns a copy of the solid with every face tagged with the
// given color. Point slices are shared; operations never mutate them.
func (s *bspSolid) WithColor(color uint32) kernel.Solid {
	out := make([]csg.Polygon, len(s.polys))
	for i, p := range s.polys {
		out[i] = csg.Polygon{Color: color, Points: p.Points}
	}
	return wrap(out)
}

// BSPKernel implements kernel.Kernel using BSP-tree CSG.
type BSPKernel struct{}

// New returns a new BSPKernel.
func New() *BSPKernel {
	return &BSPKernel{}
}

// FromPolygons wraps an existing boundary polygon list as a kernel.Solid.
// The polygons must bound a closed solid with outward windings.
func FromPolygons(polys []csg.Polygon) kernel.Solid {
	return &bspSolid{polys: polys}
}

// unwrap extracts the polygon list from a kernel.Solid.
func unwrap(s kernel.Solid) []csg.Polygon {
	return s.(*bspSolid).polys
}

// wrap creates a kernel.Solid from a polygon list.
func wrap(polys []csg.Polygon) kernel.Solid {
	return &bspSolid{polys: polys}
}

// Union returns the union of two solids.
func (k *BSPKernel) Union(a, b kernel.Solid) kernel.Solid {
	t := csg.Union(csg.PolygonList(unwrap(a)), csg.PolygonList(unwrap(b)))
	return wrap(t.Polygons())
}

// Difference returns the difference a - b.
func (k *BSPKernel) Difference(a, b kernel.Solid) kernel.Solid {
	t := csg.Subtract(csg.PolygonList(unwrap(a)), csg.PolygonList(unwrap(b)))
	return wrap(t.Polygons())
}

// Intersection returns the intersection of two solids.
func (k *BSPKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	t := csg.Intersect(csg.PolygonList(unwrap(a)), csg.PolygonList(unwrap(b)))
	return wrap(t.Polygons())
}

// Translate moves a solid by (x, y, z).
func (k *BSPKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	d := csg.Vector{X: x, Y: y, Z: z}
	src := unwrap(s)
	out := make([]csg.Polygon, len(src))
	for i, p := range src {
		pts := make([]csg.Vector, len(p.Points))
		for j, v := range p.Points {
			pts[j] = v.Add(d)
		}
		out[i] = csg.Polygon{Color: p.Color, Points: pts}
	}
	return wrap(out)
}

// Rotate rotates a solid by Euler angles (degrees) around the X, Y, Z
// axes, applied in X, Y, Z order. Rigid motions keep polygons planar and
// convex, so points are transformed directly.
func (k *BSPKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := rotationZ(z * math.Pi / 180).mul(rotationY(y * math.Pi / 180)).mul(rotationX(x * math.Pi / 180))
	src := unwrap(s)
	out := make([]csg.Polygon, len(src))
	for i, p := range src {
		pts := make([]csg.Vector, len(p.Points))
		for j, v := range p.Points {
			pts[j] = m.apply(v)
		}
		out[i] = csg.Polygon{Color: p.Color, Points: pts}
	}
	return wrap(out)
}

// ToMesh fan-triangulates each convex boundary polygon, emitting flat
// per-face normals. Vertices are not shared across faces. When every
// face carries the same color tag it is propagated to the mesh;
// mixed-color solids (e.g. booleans of differently tagged inputs) leave
// the mesh untagged.
func (k *BSPKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	mesh := &kernel.Mesh{}
	uniform, first := true, true
	for _, p := range unwrap(s) {
		if len(p.Points) < 3 {
			continue
		}
		if first {
			mesh.Color = p.Color
			first = false
		} else if p.Color != mesh.Color {
			uniform = false
		}
		n := p.Normal()
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)
		base := uint32(mesh.VertexCount())
		for _, v := range p.Points {
			mesh.Vertices = append(mesh.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			mesh.Normals = append(mesh.Normals, nx, ny, nz)
		}
		for i := 2; i < len(p.Points); i++ {
			mesh.Indices = append(mesh.Indices, base, base+uint32(i-1), base+uint32(i))
		}
	}
	if !uniform {
		mesh.Color = 0
	}
	return mesh, nil
}

// mat3 is a row-major 3x3 matrix.
type mat3 [3][3]float64

func (a mat3) mul(b mat3) mat3 {
	var m mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				m[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return m
}

func (a mat3) apply(v csg.Vector) csg.Vector {
	return csg.Vector{
		X: a[0][0]*v.X + a[0][1]*v.Y + a[0][2]*v.Z,
		Y: a[1][0]*v.X + a[1][1]*v.Y + a[1][2]*v.Z,
		Z: a[2][0]*v.X + a[2][1]*v.Y + a[2][2]*v.Z,
	}
}

func rotationX(a float64) mat3 {
	s, c := math.Sin(a), math.Cos(a)
	return mat3{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

func rotationY(a float64) mat3 {
	s, c := math.Sin(a), math.Cos(a)
	return mat3{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
}

func rotationZ(a float64) mat3 {
	s, c := math.Sin(a), math.Cos(a)
	return mat3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}
