package tessellate

import (
	"math"
	"testing"

	"github.com/chazu/burl/pkg/engine"
	"github.com/chazu/burl/pkg/graph"
	"github.com/chazu/burl/pkg/kernel"
	"github.com/chazu/burl/pkg/kernel/bsp"
)

// evalGraph evaluates DSL source into a scene graph.
func evalGraph(t *testing.T, source string) *graph.DesignGraph {
	t.Helper()
	g, evalErrs, err := engine.NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	return g
}

func TestTessellateNilGraph(t *testing.T) {
	meshes, err := Tessellate(nil, bsp.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meshes != nil {
		t.Errorf("expected nil meshes, got %v", meshes)
	}
}

func TestTessellateEmptyGraph(t *testing.T) {
	meshes, err := Tessellate(graph.New(), bsp.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 0 {
		t.Errorf("expected no meshes, got %d", len(meshes))
	}
}

func TestTessellateSingleCube(t *testing.T) {
	g := evalGraph(t, `(scene "main" (cube :size (vec3 2 2 2)))`)
	meshes, err := Tessellate(g, bsp.New())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}
	if meshes[0].TriangleCount() != 12 {
		t.Errorf("cube mesh has %d triangles, want 12", meshes[0].TriangleCount())
	}
}

func TestTessellateNamedSolid(t *testing.T) {
	g := evalGraph(t, `
(defsolid "plate" (cube :size (vec3 10 10 1)))
(scene "main" (solid "plate"))
`)
	meshes, err := Tessellate(g, bsp.New())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}
	if meshes[0].SolidName != "plate" {
		t.Errorf("mesh name = %q, want plate", meshes[0].SolidName)
	}
}

func TestTessellateOneMeshPerSceneChild(t *testing.T) {
	g := evalGraph(t, `
(scene "main"
  (cube :size (vec3 1 1 1))
  (translate (cube :size (vec3 1 1 1)) :by (vec3 5 0 0))
  (sphere :radius 1))
`)
	meshes, err := Tessellate(g, bsp.New())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 3 {
		t.Fatalf("expected 3 meshes, got %d", len(meshes))
	}
}

func TestTessellateBooleanScene(t *testing.T) {
	g := evalGraph(t, `
(scene "main"
  (difference
    (cube :size (vec3 1 1 1))
    (translate (cube :size (vec3 1 1 1)) :by (vec3 0.5 0.5 0.5))))
`)
	meshes, err := Tessellate(g, bsp.New())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}
	if v := meshVolume(meshes[0]); math.Abs(v-0.875) > 1e-6 {
		t.Errorf("carved cube volume = %g, want 0.875", v)
	}
}

func TestTessellateTransformOrder(t *testing.T) {
	// Rotation applies before translation: a bar rotated 90 degrees
	// about z and then moved along x ends up upright at x=10.
	g := evalGraph(t, `
(scene "main"
  (translate (rotate (cube :size (vec3 4 1 1)) :by (vec3 0 0 90)) :by (vec3 10 0 0)))
`)
	meshes, err := Tessellate(g, bsp.New())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	m := meshes[0]
	for i := 0; i < len(m.Vertices); i += 3 {
		minX = math.Min(minX, float64(m.Vertices[i]))
		maxX = math.Max(maxX, float64(m.Vertices[i]))
		minY = math.Min(minY, float64(m.Vertices[i+1]))
		maxY = math.Max(maxY, float64(m.Vertices[i+1]))
	}
	if math.Abs(minX-9.5) > 1e-5 || math.Abs(maxX-10.5) > 1e-5 {
		t.Errorf("x extent = [%g, %g], want [9.5, 10.5]", minX, maxX)
	}
	if math.Abs(minY+2) > 1e-5 || math.Abs(maxY-2) > 1e-5 {
		t.Errorf("y extent = [%g, %g], want [-2, 2]", minY, maxY)
	}
}

func TestTessellateSphereUsesDefaults(t *testing.T) {
	g := evalGraph(t, `(scene "main" (sphere :radius 1))`)
	meshes, err := Tessellate(g, bsp.New())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	// With default slices and stacks the sphere has slices*stacks faces:
	// quads triangulate to 2, pole triangles to 1.
	s, st := graph.DefaultSphereSlices, graph.DefaultSphereStacks
	wantTris := s*(st-2)*2 + 2*s
	if got := meshes[0].TriangleCount(); got != wantTris {
		t.Errorf("sphere mesh has %d triangles, want %d", got, wantTris)
	}
}

// meshVolume computes the signed volume of a triangle mesh via the
// divergence theorem.
func meshVolume(m *kernel.Mesh) float64 {
	at := func(idx uint32) [3]float64 {
		return [3]float64{
			float64(m.Vertices[idx*3]),
			float64(m.Vertices[idx*3+1]),
			float64(m.Vertices[idx*3+2]),
		}
	}
	var v float64
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := at(m.Indices[i]), at(m.Indices[i+1]), at(m.Indices[i+2])
		v += a[0]*(b[1]*c[2]-b[2]*c[1]) +
			a[1]*(b[2]*c[0]-b[0]*c[2]) +
			a[2]*(b[0]*c[1]-b[1]*c[0])
	}
	return v / 6
}
