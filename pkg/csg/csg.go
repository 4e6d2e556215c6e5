package csg

// Tree is a solid represented as a BSP tree over its boundary polygons.
// The zero Tree is the empty solid.
//
// Trees are not safe for concurrent use, and the boolean operations
// consume their tree arguments: a *Tree passed to Union, Subtract or
// Intersect is clipped and merged in place and must not be reused.
type Tree struct {
	root *node
}

// Input is a source of boundary polygons for a boolean operation: either a
// PolygonList, which builds a fresh tree, or an already-built *Tree, which
// is used (and consumed) directly.
type Input interface {
	asTree() *Tree
}

// PolygonList is a list of boundary polygons usable as an operation input.
type PolygonList []Polygon

func (l PolygonList) asTree() *Tree {
	return NewTree(l)
}

func (t *Tree) asTree() *Tree {
	return t
}

// NewTree builds a BSP tree from polys, inserting them in order. Polygons
// with fewer than 3 points are skipped.
func NewTree(polys []Polygon) *Tree {
	t := &Tree{}
	for _, p := range polys {
		if len(p.Points) < 3 {
			continue
		}
		pts := make([]Vector, len(p.Points))
		copy(pts, p.Points)
		t.root = t.root.insert(&polygon{points: pts, color: p.Color}, p.Plane())
	}
	return t
}

// Invert flips the tree's sense of solid and empty, reversing the
// orientation of the boundary it represents. Invert is involutive.
func (t *Tree) Invert() {
	t.root.invert()
}

// ClipTo removes from t every piece of its polygons that lies inside the
// solid represented by other.
func (t *Tree) ClipTo(other *Tree) {
	t.root.walk(func(n *node) {
		n.polygons = other.root.clipPolygons(n.polygons, n.plane)
	})
}

// merge inserts every polygon of src into t, keyed by the plane of the
// node that held it. src's polygons are owned by t afterwards.
func (t *Tree) merge(src *Tree) {
	src.root.walk(func(s *node) {
		for _, p := range s.polygons {
			t.root = t.root.insert(p, s.plane)
		}
	})
}

// Union returns the union of the given solids, folding pairwise left to
// right. With no inputs it returns the empty solid.
func Union(inputs ...Input) *Tree {
	if len(inputs) == 0 {
		return &Tree{}
	}
	a := inputs[0].asTree()
	for _, in := range inputs[1:] {
		a = union(a, in.asTree())
	}
	return a
}

// union combines a and b in place and returns a. Clipping both trees to
// each other removes the overlapping boundary; the inverted re-clip of b
// then strips b's coplanar faces that sit on a's boundary facing inward,
// leaving exactly one copy of any shared face.
func union(a, b *Tree) *Tree {
	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	a.merge(b)
	return a
}

// Subtract returns a minus b: inverting a turns its inside out, so the
// union of the inversion with b carves b's volume out of a once a is
// inverted back.
func Subtract(a, b Input) *Tree {
	ta := a.asTree()
	ta.Invert()
	union(ta, b.asTree())
	ta.Invert()
	return ta
}

// Intersect returns the intersection of a and b.
func Intersect(a, b Input) *Tree {
	ta := a.asTree()
	tb := b.asTree()
	ta.Invert()
	tb.ClipTo(ta)
	tb.Invert()
	ta.ClipTo(tb)
	tb.ClipTo(ta)
	ta.merge(tb)
	ta.Invert()
	return ta
}
