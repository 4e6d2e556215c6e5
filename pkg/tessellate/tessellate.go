// Package tessellate walks a scene graph and produces triangle meshes
// using a geometry kernel. One mesh is produced per scene child, so an
// embedding application can color and pick solids independently.
package tessellate

import (
	"fmt"

	"github.com/chazu/burl/pkg/graph"
	"github.com/chazu/burl/pkg/kernel"
)

// Tessellate walks the scene graph and produces one triangle mesh per
// root child using the provided geometry kernel. Roots that are not
// groups produce a single mesh. The tessellator is read-only and never
// mutates the graph.
func Tessellate(g *graph.DesignGraph, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if g == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh
	for _, rootID := range g.Roots {
		root := g.Get(rootID)
		if root == nil {
			continue
		}

		members := []*graph.Node{root}
		if root.Kind == graph.NodeGroup {
			members = g.Children(root)
		}

		for _, n := range members {
			solid, err := evalNode(g, k, n)
			if err != nil {
				return nil, fmt.Errorf("tessellate: scene %s: %w", rootID.Short(), err)
			}
			mesh, err := k.ToMesh(solid)
			if err != nil {
				return nil, fmt.Errorf("tessellate: ToMesh failed for node %s: %w", n.ID.Short(), err)
			}
			if n.Name != "" {
				mesh.SolidName = n.Name
			} else {
				mesh.SolidName = n.ID.Short()
			}
			meshes = append(meshes, mesh)
		}
	}

	return meshes, nil
}

// evalNode recursively evaluates a node to a kernel solid.
func evalNode(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node) (kernel.Solid, error) {
	switch n.Kind {
	case graph.NodePrimitive:
		return evalPrimitive(g, k, n)

	case graph.NodeBoolean:
		return evalBoolean(g, k, n)

	case graph.NodeTransform:
		return evalTransform(g, k, n)

	case graph.NodeGroup:
		// Nested groups fold into a union of their members.
		return evalChildrenFold(g, k, n, k.Union)

	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}
}

// evalPrimitive creates geometry for a primitive node, falling back to
// the graph defaults for unspecified facet counts and tagging the solid
// with its color when the kernel supports face tags.
func evalPrimitive(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node) (kernel.Solid, error) {
	switch data := n.Data.(type) {
	case graph.BoxData:
		return applyColor(k.Box(data.Size.X, data.Size.Y, data.Size.Z), data.Color), nil

	case graph.SphereData:
		slices, stacks := data.Slices, data.Stacks
		if slices == 0 {
			slices = g.Defaults.SphereSlices
		}
		if stacks == 0 {
			stacks = g.Defaults.SphereStacks
		}
		return applyColor(k.Sphere(data.Radius, slices, stacks), data.Color), nil

	case graph.CylinderData:
		segments := data.Segments
		if segments == 0 {
			segments = g.Defaults.CylinderSegments
		}
		return applyColor(k.Cylinder(data.Height, data.Radius, segments), data.Color), nil

	default:
		return nil, fmt.Errorf("primitive node %s has unsupported data type %T", n.ID.Short(), n.Data)
	}
}

// applyColor tags the solid with color when it is set and the backend
// carries face tags; other backends pass through untouched.
func applyColor(s kernel.Solid, color uint32) kernel.Solid {
	if color == 0 {
		return s
	}
	if c, ok := s.(kernel.Colorer); ok {
		return c.WithColor(color)
	}
	return s
}

// evalBoolean combines the node's children with its boolean operation.
// Union folds left over any number of children; difference and
// intersection are binary (validation enforces the arity).
func evalBoolean(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node) (kernel.Solid, error) {
	bd, ok := n.Data.(graph.BooleanData)
	if !ok {
		return nil, fmt.Errorf("boolean node %s has unexpected data type %T", n.ID.Short(), n.Data)
	}

	var op func(a, b kernel.Solid) kernel.Solid
	switch bd.Op {
	case graph.OpUnion:
		op = k.Union
	case graph.OpDifference:
		op = k.Difference
	case graph.OpIntersection:
		op = k.Intersection
	default:
		return nil, fmt.Errorf("boolean node %s has unknown op %d", n.ID.Short(), int(bd.Op))
	}
	return evalChildrenFold(g, k, n, op)
}

// evalChildrenFold evaluates all children and folds them left with op.
func evalChildrenFold(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node, op func(a, b kernel.Solid) kernel.Solid) (kernel.Solid, error) {
	children := g.Children(n)
	if len(children) == 0 {
		return nil, fmt.Errorf("node %s has no children to combine", n.ID.Short())
	}

	acc, err := evalNode(g, k, children[0])
	if err != nil {
		return nil, err
	}
	for _, c := range children[1:] {
		s, err := evalNode(g, k, c)
		if err != nil {
			return nil, err
		}
		acc = op(acc, s)
	}
	return acc, nil
}

// evalTransform evaluates the child, then applies rotation before
// translation.
func evalTransform(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node) (kernel.Solid, error) {
	td, ok := n.Data.(graph.TransformData)
	if !ok {
		return nil, fmt.Errorf("transform node %s has unexpected data type %T", n.ID.Short(), n.Data)
	}

	children := g.Children(n)
	if len(children) != 1 {
		return nil, fmt.Errorf("transform node %s has %d children, want 1", n.ID.Short(), len(children))
	}
	solid, err := evalNode(g, k, children[0])
	if err != nil {
		return nil, err
	}

	if td.Rotation != nil && !td.Rotation.IsZero() {
		solid = k.Rotate(solid, td.Rotation.X, td.Rotation.Y, td.Rotation.Z)
	}
	if td.Translation != nil && !td.Translation.IsZero() {
		solid = k.Translate(solid, td.Translation.X, td.Translation.Y, td.Translation.Z)
	}
	return solid, nil
}
