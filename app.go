// Package burl is a CSG solid modeler: a BSP-tree boolean engine with a
// Lisp scene DSL on top. This file is the embedding façade tying the
// engine, scene graph, tessellation and geometry kernels together.
package burl

import (
	"fmt"
	"log"

	"github.com/chazu/burl/pkg/engine"
	"github.com/chazu/burl/pkg/export"
	"github.com/chazu/burl/pkg/kernel"
	"github.com/chazu/burl/pkg/kernel/bsp"
	"github.com/chazu/burl/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to solids.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App exposes evaluation and export to an embedding frontend.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
}

// MeshData is the JSON-serializable mesh format sent to a frontend.
type MeshData struct {
	Vertices  []float32 `json:"vertices"`
	Normals   []float32 `json:"normals"`
	Indices   []uint32  `json:"indices"`
	SolidName string    `json:"solidName"`
	Color     string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error for a frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to a frontend.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates a new App with an engine and the native bsp kernel.
func NewApp() *App {
	return NewAppWithKernel(bsp.New())
}

// NewAppWithKernel creates a new App with an engine and the given kernel.
func NewAppWithKernel(k kernel.Kernel) *App {
	return &App{
		engine: engine.NewEngine(),
		kernel: k,
	}
}

// Evaluate takes Lisp source and returns mesh data + errors + warnings.
// This is the primary call for an embedding editor.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source into a scene graph, collecting
	// errors and advisory warnings.
	er := a.engine.EvaluateAll(source)
	for _, w := range er.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{
			Line:    w.Line,
			Col:     w.Col,
			Message: w.Message,
		})
	}
	if len(er.Errors) > 0 {
		for _, e := range er.Errors {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 2: Tessellate the scene graph into triangle meshes.
	meshes, err := tessellate.Tessellate(er.Graph, a.kernel)
	if err != nil {
		log.Printf("Tessellate error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}

	// Step 3: Convert kernel meshes to the frontend MeshData format.
	// A mesh with a uniform face tag keeps its own color; untagged
	// meshes cycle through the palette.
	for i, m := range meshes {
		color := colorPalette[i%len(colorPalette)]
		if m.Color != 0 {
			color = fmt.Sprintf("#%06X", m.Color)
		}
		result.Meshes = append(result.Meshes, MeshData{
			Vertices:  m.Vertices,
			Normals:   m.Normals,
			Indices:   m.Indices,
			SolidName: m.SolidName,
			Color:     color,
		})
	}

	return result
}

// ExportSTL evaluates source and writes the tessellated scenes to path
// as binary STL.
func (a *App) ExportSTL(source, path string) error {
	er := a.engine.EvaluateAll(source)
	if len(er.Errors) > 0 {
		return er.Errors[0]
	}
	meshes, err := tessellate.Tessellate(er.Graph, a.kernel)
	if err != nil {
		return err
	}
	return export.SaveSTL(path, meshes)
}
