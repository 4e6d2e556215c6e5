package csg

// node is one partitioning step of a BSP tree: a plane, the bundle of
// polygons coplanar with it, and subtrees for the strictly-front and
// strictly-back remainders of space. A nil *node is the empty tree.
type node struct {
	plane    Plane
	polygons []*polygon
	front    *node
	back     *node
}

// walk applies fn to every node in pre-order: the node itself, then the
// front subtree, then the back. fn may mutate bundles and planes but must
// not restructure the subtree being walked.
func (n *node) walk(fn func(*node)) {
	if n == nil {
		return
	}
	fn(n)
	n.front.walk(fn)
	n.back.walk(fn)
}

// insert adds p, lying on plane pl, below n and returns the resulting
// subtree. The first polygon to reach an empty subtree donates its plane
// to the new node, so tree shape follows insertion order. Coplanar
// polygons join the node's bundle; spanning polygons are split and each
// fragment descends its own side.
func (n *node) insert(p *polygon, pl Plane) *node {
	if n == nil {
		return &node{plane: pl, polygons: []*polygon{p}}
	}
	f, b := n.plane.splitPolygon(p)
	if f == nil && b == nil {
		n.polygons = append(n.polygons, p)
		return n
	}
	if f != nil {
		n.front = n.front.insert(f, pl)
	}
	if b != nil {
		n.back = n.back.insert(b, pl)
	}
	return n
}

// invert flips the solid/empty interpretation of the subtree: every plane
// reverses, front and back exchange at every node, and every bundled
// polygon's deferred-flip bit toggles.
func (n *node) invert() {
	n.walk(func(m *node) {
		for _, p := range m.polygons {
			p.flipped = !p.flipped
		}
		m.plane = m.plane.Flip()
		m.front, m.back = m.back, m.front
	})
}

// clipPolygons removes from polys, each lying on plane pl, every piece
// inside the solid n represents, returning the surviving pieces.
func (n *node) clipPolygons(polys []*polygon, pl Plane) []*polygon {
	if n == nil {
		return polys
	}
	var out []*polygon
	for _, q := range polys {
		n.clipPolygon(q, pl, &out)
	}
	return out
}

// clipPolygon pushes the parts of q outside the solid onto out. Fragments
// descend front or back; a fragment reaching a missing front child is
// outside the solid and survives, one reaching a missing back child is
// inside and is dropped.
//
// When q lies on this node's plane the split yields nothing and the tie is
// broken by facing: the sign of the dot product of q's normal and the node
// plane's normal routes same-facing polygons front (outside) and
// opposite-facing ones back (inside). This is what lets the
// invert/clip/invert step of Union strip interior coplanar faces while
// keeping the shared boundary.
func (n *node) clipPolygon(q *polygon, pl Plane, out *[]*polygon) {
	f, b := n.plane.splitPolygon(q)
	if f == nil && b == nil {
		if n.plane.Normal.Dot(pl.Normal) > 0 {
			f = q
		} else {
			b = q
		}
	}
	if f != nil {
		if n.front != nil {
			n.front.clipPolygon(f, pl, out)
		} else {
			*out = append(*out, f)
		}
	}
	if b != nil && n.back != nil {
		n.back.clipPolygon(b, pl, out)
	}
}
