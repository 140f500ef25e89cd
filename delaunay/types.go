package delaunay

import "github.com/EP-Guy/grpf/geom"

// Edge is a directed pair of point indices. Two edges are reverse-equal when
// one has endpoints (a, b) and the other (b, a); the contour extractor and
// region walker both rely on that symmetry.
type Edge struct {
	A, B int
}

// Reverse returns the edge with its endpoints swapped.
func (e Edge) Reverse() Edge {
	return Edge{A: e.B, B: e.A}
}

// Triangle is an ordered triple of point indices.
type Triangle struct {
	A, B, C int
}

// Edges returns the triangle's three directed edges, in its stored
// orientation: A->B, B->C, C->A.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// Has reports whether v is one of the triangle's three vertices.
func (t Triangle) Has(v int) bool {
	return t.A == v || t.B == v || t.C == v
}

// Tessellation is the capability set the GRPF engine needs from a
// triangulator: bulk point insertion, directed solid-edge iteration, solid
// triangle iteration, and per-vertex adjacency. Any triangulation library
// exposing these four operations can stand in for Triangulation below; the
// engine depends only on this interface (design note: "Capability sets, not
// inheritance").
type Tessellation interface {
	// MinCoord and MaxCoord are the coordinate range the tessellation
	// requires inserted points to lie within. The engine reads these once
	// per call and caches them; implementations must not change them for
	// the lifetime of a Tessellation value.
	MinCoord() float64
	MaxCoord() float64

	// BulkInsert adds all of the given points to the tessellation in one
	// operation, re-triangulating as needed. Points must have unique,
	// already-assigned Index fields.
	BulkInsert(points []*geom.Point) error

	// Edges returns every solid edge currently in the tessellation, each
	// appearing exactly once, in the orientation of whichever triangle
	// emitted it first. Order is unspecified.
	Edges() []Edge

	// Triangles returns every solid triangle currently in the
	// tessellation. Order is unspecified.
	Triangles() []Triangle

	// VertexTriangles returns every triangle incident to the point at the
	// given index.
	VertexTriangles(index int) []Triangle
}
