package graph

import "fmt"

// Default facet resolutions for curved primitives that do not specify
// their own.
const (
	DefaultSphereSlices     = 16
	DefaultSphereStacks     = 8
	DefaultCylinderSegments = 16
)

// Defaults contains graph-wide default settings.
type Defaults struct {
	SphereSlices     int    `json:"sphere_slices"`
	SphereStacks     int    `json:"sphere_stacks"`
	CylinderSegments int    `json:"cylinder_segments"`
	Units            string `json:"units"` // "mm" (only option for now)
}

// DesignGraph is the top-level data structure produced by Lisp
// evaluation. It is never mutated after evaluation completes; each
// evaluation produces a new graph.
type DesignGraph struct {
	Nodes     map[NodeID]*Node  `json:"nodes"`
	Roots     []NodeID          `json:"roots"`
	NameIndex map[string]NodeID `json:"name_index"`
	Defaults  Defaults          `json:"defaults"`
	Version   uint64            `json:"version"`
}

// New creates an empty DesignGraph with default settings.
func New() *DesignGraph {
	return &DesignGraph{
		Nodes:     make(map[NodeID]*Node),
		NameIndex: make(map[string]NodeID),
		Defaults: Defaults{
			SphereSlices:     DefaultSphereSlices,
			SphereStacks:     DefaultSphereStacks,
			CylinderSegments: DefaultCylinderSegments,
			Units:            "mm",
		},
	}
}

// AddNode adds a node to the graph. It does not check for duplicates.
func (g *DesignGraph) AddNode(n *Node) {
	g.Nodes[n.ID] = n
	if n.Name != "" {
		g.NameIndex[n.Name] = n.ID
	}
}

// AddRoot registers a node ID as a root of the graph.
func (g *DesignGraph) AddRoot(id NodeID) {
	g.Roots = append(g.Roots, id)
}

// Lookup returns the node with the given user-assigned name, or nil.
func (g *DesignGraph) Lookup(name string) *Node {
	id, ok := g.NameIndex[name]
	if !ok {
		return nil
	}
	return g.Nodes[id]
}

// MustLookup returns the node with the given name, or panics.
func (g *DesignGraph) MustLookup(name string) *Node {
	n := g.Lookup(name)
	if n == nil {
		panic(fmt.Sprintf("graph: no node named %q", name))
	}
	return n
}

// Get returns the node with the given ID, or nil.
func (g *DesignGraph) Get(id NodeID) *Node {
	return g.Nodes[id]
}

// Primitives returns all primitive nodes in the graph.
func (g *DesignGraph) Primitives() []*Node {
	var prims []*Node
	for _, n := range g.Nodes {
		if n.Kind == NodePrimitive {
			prims = append(prims, n)
		}
	}
	return prims
}

// Booleans returns all boolean nodes in the graph.
func (g *DesignGraph) Booleans() []*Node {
	var ops []*Node
	for _, n := range g.Nodes {
		if n.Kind == NodeBoolean {
			ops = append(ops, n)
		}
	}
	return ops
}

// Children returns the child nodes of the given node. Dangling
// references are skipped; validation reports them.
func (g *DesignGraph) Children(n *Node) []*Node {
	children := make([]*Node, 0, len(n.Children))
	for _, cid := range n.Children {
		if c := g.Nodes[cid]; c != nil {
			children = append(children, c)
		}
	}
	return children
}

// NodeCount returns the total number of nodes.
func (g *DesignGraph) NodeCount() int {
	return len(g.Nodes)
}
