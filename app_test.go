package burl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEvaluateProducesMeshes(t *testing.T) {
	app := NewApp()
	result := app.Evaluate(`
(scene "main"
  (difference
    (cube :size (vec3 2 2 2))
    (translate (cube :size (vec3 2 2 2)) :by (vec3 1 1 1))))
`)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(result.Meshes))
	}
	m := result.Meshes[0]
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		t.Error("mesh has no geometry")
	}
	if m.Color == "" {
		t.Error("mesh has no color assigned")
	}
}

func TestEvaluateReportsErrors(t *testing.T) {
	app := NewApp()
	result := app.Evaluate(`(solid "missing")`)
	if len(result.Errors) == 0 {
		t.Fatal("expected errors for unknown solid")
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected no meshes, got %d", len(result.Meshes))
	}
}

func TestEvaluateReportsWarnings(t *testing.T) {
	app := NewApp()
	result := app.Evaluate(`
(defsolid "block" (cube :size (vec3 1 1 1)))
(scene "main" (difference (solid "block") (solid "block")))
`)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w.Message, "itself") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected self-difference warning, got %v", result.Warnings)
	}
}

func TestEvaluateUsesSolidColor(t *testing.T) {
	app := NewApp()
	result := app.Evaluate(`(scene "main" (cube :size (vec3 1 1 1) :color "#FF8800"))`)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(result.Meshes))
	}
	if result.Meshes[0].Color != "#FF8800" {
		t.Errorf("mesh color = %q, want #FF8800", result.Meshes[0].Color)
	}
}

func TestEvaluateColorSurvivesTransform(t *testing.T) {
	app := NewApp()
	result := app.Evaluate(`
(scene "main"
  (translate (sphere :radius 1 :color "#2ECC71") :by (vec3 5 0 0)))
`)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Meshes[0].Color != "#2ECC71" {
		t.Errorf("mesh color = %q, want #2ECC71", result.Meshes[0].Color)
	}
}

func TestEvaluateAssignsDistinctColors(t *testing.T) {
	app := NewApp()
	result := app.Evaluate(`
(scene "main"
  (cube :size (vec3 1 1 1))
  (translate (cube :size (vec3 1 1 1)) :by (vec3 3 0 0)))
`)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(result.Meshes))
	}
	if result.Meshes[0].Color == result.Meshes[1].Color {
		t.Error("adjacent meshes share a palette color")
	}
}

func TestExportSTL(t *testing.T) {
	app := NewApp()
	path := filepath.Join(t.TempDir(), "out.stl")
	err := app.ExportSTL(`(scene "main" (cube :size (vec3 2 2 2)))`, path)
	if err != nil {
		t.Fatalf("ExportSTL failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported STL is empty")
	}
}

func TestExportSTLPropagatesEvalErrors(t *testing.T) {
	app := NewApp()
	path := filepath.Join(t.TempDir(), "out.stl")
	if err := app.ExportSTL(`(solid "missing")`, path); err == nil {
		t.Fatal("expected error for invalid source")
	}
}
