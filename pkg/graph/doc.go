// Package graph defines the scene graph data structures for burl: the
// primitives, boolean operations, transforms and groups that describe a
// CSG design, plus validation over the assembled graph.
package graph
