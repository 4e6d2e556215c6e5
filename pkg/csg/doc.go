// Package csg computes boolean combinations of closed solids bounded by
// convex polygons, using binary space partitioning trees.
package csg
