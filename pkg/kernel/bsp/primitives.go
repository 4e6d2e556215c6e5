package bsp

import (
	"math"

	"github.com/chazu/burl/pkg/csg"
	"github.com/chazu/burl/pkg/kernel"
)

// boxFaces are the vertex index patterns of an axis-aligned box, one quad
// per face, wound so every normal points outward. Bit 0 of an index
// selects the +x corner, bit 1 +y, bit 2 +z.
var boxFaces = [6][4]int{
	{0, 4, 6, 2}, // -x
	{1, 3, 7, 5}, // +x
	{0, 1, 5, 4}, // -y
	{2, 6, 7, 3}, // +y
	{0, 2, 3, 1}, // -z
	{4, 5, 7, 6}, // +z
}

// Box creates an axis-aligned box with the given dimensions, centered at
// the origin: six outward-wound quads.
func (k *BSPKernel) Box(x, y, z float64) kernel.Solid {
	half := csg.Vector{X: x / 2, Y: y / 2, Z: z / 2}
	corner := func(idx int) csg.Vector {
		v := half.Neg()
		if idx&1 != 0 {
			v.X = half.X
		}
		if idx&2 != 0 {
			v.Y = half.Y
		}
		if idx&4 != 0 {
			v.Z = half.Z
		}
		return v
	}
	polys := make([]csg.Polygon, 0, 6)
	for _, face := range boxFaces {
		pts := make([]csg.Vector, 4)
		for i, idx := range face {
			pts[i] = corner(idx)
		}
		polys = append(polys, csg.Polygon{Points: pts})
	}
	return wrap(polys)
}

// Sphere creates a faceted sphere centered at the origin from slices
// meridian strips and stacks latitude bands: quads in the middle bands,
// triangles at the poles.
func (k *BSPKernel) Sphere(radius float64, slices, stacks int) kernel.Solid {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}
	point := func(i, j int) csg.Vector {
		theta := 2 * math.Pi * float64(i) / float64(slices)
		phi := math.Pi * float64(j) / float64(stacks)
		return csg.Vector{
			X: radius * math.Cos(theta) * math.Sin(phi),
			Y: radius * math.Cos(phi),
			Z: radius * math.Sin(theta) * math.Sin(phi),
		}
	}
	var polys []csg.Polygon
	for i := 0; i < slices; i++ {
		for j := 0; j < stacks; j++ {
			var pts []csg.Vector
			pts = append(pts, point(i, j))
			if j > 0 {
				pts = append(pts, point(i+1, j))
			}
			if j < stacks-1 {
				pts = append(pts, point(i+1, j+1))
			}
			pts = append(pts, point(i, j+1))
			polys = append(polys, csg.Polygon{Points: pts})
		}
	}
	return wrap(polys)
}

// Cylinder creates a faceted cylinder along the Z axis, centered at the
// origin: one side quad per segment plus two n-gon caps.
func (k *BSPKernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	if segments < 3 {
		segments = 3
	}
	h := height / 2
	rim := func(i int, z float64) csg.Vector {
		a := 2 * math.Pi * float64(i) / float64(segments)
		return csg.Vector{X: radius * math.Cos(a), Y: radius * math.Sin(a), Z: z}
	}
	var polys []csg.Polygon
	top := make([]csg.Vector, segments)
	bottom := make([]csg.Vector, segments)
	for i := 0; i < segments; i++ {
		// Top cap winds counter-clockwise seen from +z, bottom cap the
		// reverse, so both normals point outward.
		top[i] = rim(i, h)
		bottom[i] = rim(segments-1-i, -h)
		polys = append(polys, csg.Polygon{
			Points: []csg.Vector{rim(i, -h), rim(i+1, -h), rim(i+1, h), rim(i, h)},
		})
	}
	polys = append(polys,
		csg.Polygon{Points: top},
		csg.Polygon{Points: bottom},
	)
	return wrap(polys)
}
