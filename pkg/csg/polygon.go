package csg

// Polygon is the public input/output form of a boundary face: a convex
// planar loop of at least 3 points wound counter-clockwise around its
// outward normal (right-hand rule from the first three points), plus a
// color/material tag that survives boolean operations unchanged.
//
// Input polygons are assumed well-formed; no planarity or convexity
// validation is performed. Output polygons own their point slices and
// share no storage with any tree.
type Polygon struct {
	Color  uint32
	Points []Vector
}

// Normal returns the polygon's outward unit normal.
func (p Polygon) Normal() Vector {
	return PlaneFromPoints(p.Points[0], p.Points[1], p.Points[2]).Normal
}

// Plane returns the plane the polygon lies on.
func (p Polygon) Plane() Plane {
	return PlaneFromPoints(p.Points[0], p.Points[1], p.Points[2])
}

// polygon is the in-tree representation of a face. It carries no plane of
// its own: the plane travels alongside it, either precomputed at insertion
// or taken from the node whose bundle holds it.
//
// flipped defers orientation reversal: while set, the polygon's logical
// winding is the reverse of its stored point order. Points are only
// actually reversed at output time, which lets tree inversion touch planes
// and a bit per polygon instead of rewriting vertex lists.
//
// parent links a split fragment to the polygon it was cut from. The links
// form a forest (a child is always newer than its parent); output
// extraction walks them to re-merge fragment pairs that both survived.
type polygon struct {
	points  []Vector
	color   uint32
	flipped bool
	parent  *polygon
}
