// Package delaunay is the triangulation facade: a thin adapter exposing
// only the operations the GRPF engine needs (spec §4, "Triangulation
// facade"). No general-purpose Delaunay package turned up anywhere in the
// surveyed corpus, so Triangulation is this module's own incremental
// Bowyer-Watson triangulator, built over an index-addressed vertex/triangle
// store in the spirit of the half-edge mesh in MauriceGit/sweepcircle
// (HEVertex/HEEdge/HEFace, everything referenced by index rather than
// pointer). Points are never removed; triangles are deleted when an
// insertion re-triangulates their cavity, and triangle ids are never
// reused. Triangulation
// satisfies Tessellation; the engine in package grpf only ever sees that
// interface, so any other triangulator can be substituted.
package delaunay

import (
	"github.com/EP-Guy/grpf/geom"
	"github.com/pkg/errors"
)

// Coordinate bounds every inserted point must fall within. Chosen to give a
// Bowyer-Watson super-triangle comfortable room outside the usable range
// while staying well clear of float64 precision loss at the tolerances the
// refinement loop cares about (spec default tolerance 1e-9).
const (
	minCoord = -1000.0
	maxCoord = 1000.0
)

// superVertex indices are negative so real point indices (which the spec
// requires to be contiguous from 0 or 1) never collide with them.
const (
	super0 = -1
	super1 = -2
	super2 = -3
)

type triRecord struct {
	id  int
	tri Triangle
}

// Triangulation is an incremental Bowyer-Watson Delaunay triangulator.
type Triangulation struct {
	points map[int]*geom.Point

	tris    map[int]Triangle // triangle id -> triangle
	nextTri int

	// byVertex indexes triangle ids incident to each point index, kept in
	// sync on every insertion. This is what makes VertexTriangles cheap.
	byVertex map[int]map[int]struct{}
}

// New constructs an empty Triangulation seeded with a super-triangle
// enclosing [MinCoord, MaxCoord]^2.
func New() *Triangulation {
	t := &Triangulation{
		points:   map[int]*geom.Point{},
		tris:     map[int]Triangle{},
		byVertex: map[int]map[int]struct{}{},
	}
	// A triangle comfortably enclosing the coordinate square, with plenty
	// of margin so no legally-inserted point can ever lie on its boundary.
	margin := 50 * (maxCoord - minCoord)
	cx := (minCoord + maxCoord) / 2
	cy := (minCoord + maxCoord) / 2
	t.points[super0] = &geom.Point{Index: super0, X: cx - margin, Y: cy - margin}
	t.points[super1] = &geom.Point{Index: super1, X: cx + margin, Y: cy - margin}
	t.points[super2] = &geom.Point{Index: super2, X: cx, Y: cy + margin*2}
	t.addTriangle(Triangle{super0, super1, super2})
	return t
}

func (t *Triangulation) MinCoord() float64 { return minCoord }
func (t *Triangulation) MaxCoord() float64 { return maxCoord }

func (t *Triangulation) addTriangle(tri Triangle) int {
	id := t.nextTri
	t.nextTri++
	t.tris[id] = tri
	for _, v := range [3]int{tri.A, tri.B, tri.C} {
		set, ok := t.byVertex[v]
		if !ok {
			set = map[int]struct{}{}
			t.byVertex[v] = set
		}
		set[id] = struct{}{}
	}
	return id
}

func (t *Triangulation) removeTriangle(id int) {
	tri := t.tris[id]
	delete(t.tris, id)
	for _, v := range [3]int{tri.A, tri.B, tri.C} {
		delete(t.byVertex[v], id)
	}
}

// BulkInsert adds every point in points to the triangulation, one at a time
// (Bowyer-Watson has no true batched form), re-triangulating the affected
// region of the mesh after each insertion.
func (t *Triangulation) BulkInsert(points []*geom.Point) error {
	for _, p := range points {
		if p.X < minCoord || p.X > maxCoord || p.Y < minCoord || p.Y > maxCoord {
			return errors.Errorf("delaunay: point %v outside [%g,%g]", p, minCoord, maxCoord)
		}
		if _, exists := t.points[p.Index]; exists {
			return errors.Errorf("delaunay: duplicate point index %d", p.Index)
		}
		t.points[p.Index] = p
		t.insertOne(p.Index)
	}
	return nil
}

// insertOne performs one Bowyer-Watson insertion of the point at index idx,
// which must already be present in t.points.
func (t *Triangulation) insertOne(idx int) {
	p := t.points[idx]

	// Find every triangle whose circumcircle contains p ("bad" triangles).
	var badIDs []int
	for id, tri := range t.tris {
		if t.inCircumcircle(tri, p) {
			badIDs = append(badIDs, id)
		}
	}

	// The boundary of the union of bad triangles is the set of edges that
	// belong to exactly one bad triangle.
	edgeCount := map[Edge]int{}
	canon := func(e Edge) Edge {
		if e.A < e.B {
			return e
		}
		return e.Reverse()
	}
	edgeOwner := map[Edge]Edge{} // canonical -> original orientation from its owning triangle
	for _, id := range badIDs {
		tri := t.tris[id]
		for _, e := range tri.Edges() {
			c := canon(e)
			edgeCount[c]++
			edgeOwner[c] = e
		}
	}

	for _, id := range badIDs {
		t.removeTriangle(id)
	}

	// Re-triangulate the cavity: one new triangle per boundary edge,
	// oriented consistently (CCW) with the new point.
	for c, count := range edgeCount {
		if count != 1 {
			continue // interior edge shared by two bad triangles; discard
		}
		e := edgeOwner[c]
		a := t.points[e.A]
		b := t.points[e.B]
		tri := orientCCW(Triangle{e.A, e.B, idx}, a, b, p)
		t.addTriangle(tri)
	}
}

// inCircumcircle reports whether p lies strictly inside the circumcircle of
// tri. Super-triangle vertices are given an effectively infinite
// circumradius contribution by using the standard determinant test, which
// handles points at large coordinates without special-casing.
func (t *Triangulation) inCircumcircle(tri Triangle, p *geom.Point) bool {
	a := t.points[tri.A]
	b := t.points[tri.B]
	c := t.points[tri.C]

	// Ensure CCW orientation for the determinant test below.
	if signedArea(a, b, c) < 0 {
		a, b = b, a
	}

	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y

	ad := ax*ax + ay*ay
	bd := bx*bx + by*by
	cd := cx*cx + cy*cy

	det := ax*(by*cd-bd*cy) - ay*(bx*cd-bd*cx) + ad*(bx*cy-by*cx)
	return det > 0
}

func signedArea(a, b, c *geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// orientCCW returns tri (whose vertex coordinates are a, b, c in that
// order) rearranged if necessary so it winds counterclockwise.
func orientCCW(tri Triangle, a, b, c *geom.Point) Triangle {
	if signedArea(a, b, c) < 0 {
		return Triangle{tri.A, tri.C, tri.B}
	}
	return tri
}

// solid reports whether a triangle's vertices are all genuine (non-super)
// points; only solid triangles/edges are ever surfaced to callers.
func solid(tri Triangle) bool {
	return tri.A >= 0 && tri.B >= 0 && tri.C >= 0
}

func (t *Triangulation) Triangles() []Triangle {
	out := make([]Triangle, 0, len(t.tris))
	for _, tri := range t.tris {
		if solid(tri) {
			out = append(out, tri)
		}
	}
	return out
}

func (t *Triangulation) Edges() []Edge {
	seen := map[Edge]struct{}{}
	var out []Edge
	for _, tri := range t.tris {
		if !solid(tri) {
			continue
		}
		for _, e := range tri.Edges() {
			rev := e.Reverse()
			if _, ok := seen[rev]; ok {
				continue
			}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

func (t *Triangulation) VertexTriangles(index int) []Triangle {
	ids := t.byVertex[index]
	out := make([]Triangle, 0, len(ids))
	for id := range ids {
		tri := t.tris[id]
		if solid(tri) {
			out = append(out, tri)
		}
	}
	return out
}

// Point returns the point stored at index, or nil if none was inserted
// there.
func (t *Triangulation) Point(index int) *geom.Point {
	return t.points[index]
}

// NextIndex returns the smallest point index greater than every index
// currently in use, which is where the refinement engine's freshly emitted
// points should start (spec §4.4 step 6: "fresh indices after the current
// maximum").
func (t *Triangulation) NextIndex() int {
	max := -1
	for idx := range t.points {
		if idx > max {
			max = idx
		}
	}
	return max + 1
}

var _ Tessellation = (*Triangulation)(nil)
