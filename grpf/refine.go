package grpf

import (
	"sort"

	"github.com/EP-Guy/grpf/delaunay"
	"github.com/EP-Guy/grpf/geom"
)

// refinementStep holds the points a single refinement pass produced, not
// yet inserted into the tessellation.
type refinementStep struct {
	points []*geom.Point
}

// planRefinement implements spec §4.4: given the full candidate set, decide
// which edges still exceed tolerance, partition their incident triangles
// into zone-1 and zone-2, and emit the new sample points those triangles
// call for. An empty, non-nil step (zero points but selectE nonempty) is
// never expected in a well-formed mesh; the caller treats it as a
// monotonicity violation and stops with a warning rather than looping
// forever.
func planRefinement(
	points map[int]*geom.Point,
	tess delaunay.Tessellation,
	candidates []delaunay.Edge,
	tolerance float64,
	skinnyThreshold float64,
	nextIndex int,
) (step refinementStep, converged bool) {
	var selectE []delaunay.Edge
	for _, e := range candidates {
		if edgeLengthScaled(points, e) > tolerance {
			selectE = append(selectE, e)
		}
	}
	if len(selectE) == 0 {
		return refinementStep{}, true
	}

	u := map[int]struct{}{}
	for _, e := range selectE {
		u[e.A] = struct{}{}
		u[e.B] = struct{}{}
	}

	triangles := map[delaunay.Triangle]struct{}{}
	for v := range u {
		for _, tri := range tess.VertexTriangles(v) {
			triangles[tri] = struct{}{}
		}
	}

	countInU := func(tri delaunay.Triangle) int {
		n := 0
		for _, v := range [3]int{tri.A, tri.B, tri.C} {
			if _, ok := u[v]; ok {
				n++
			}
		}
		return n
	}

	seenMidpoint := map[delaunay.Edge]struct{}{}
	idx := nextIndex
	var emitted []*geom.Point

	// Visit the triangles in a fixed order so that fresh indices go to the
	// same points on every run with the same input.
	ordered := make([]delaunay.Triangle, 0, len(triangles))
	for tri := range triangles {
		ordered = append(ordered, tri)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.A != b.A {
			return a.A < b.A
		}
		if a.B != b.B {
			return a.B < b.B
		}
		return a.C < b.C
	})

	for _, tri := range ordered {
		switch countInU(tri) {
		case 2, 3: // zone-1: incident to >=2 candidate-set nodes
			for _, e := range tri.Edges() {
				c := canonical(e)
				if _, ok := seenMidpoint[c]; ok {
					continue
				}
				seenMidpoint[c] = struct{}{}
				if edgeLengthScaled(points, e) <= tolerance {
					continue
				}
				x, y := geom.Midpoint(points[e.A], points[e.B])
				emitted = append(emitted, &geom.Point{Index: idx, X: x, Y: y})
				idx++
			}
		case 1: // zone-2: skinny-check candidate
			if skinniness(points, tri) > skinnyThreshold {
				x, y := geom.Centroid(points[tri.A], points[tri.B], points[tri.C])
				emitted = append(emitted, &geom.Point{Index: idx, X: x, Y: y})
				idx++
			}
		}
	}

	return refinementStep{points: emitted}, false
}

// skinniness is the longest/shortest edge ratio of a triangle, in scaled
// coordinates. The scaling can stretch the two axes by different factors,
// so this ratio can differ from the same triangle's ratio in user
// coordinates.
func skinniness(points map[int]*geom.Point, tri delaunay.Triangle) float64 {
	edges := tri.Edges()
	min, max := edgeLengthScaled(points, edges[0]), edgeLengthScaled(points, edges[0])
	for _, e := range edges[1:] {
		l := edgeLengthScaled(points, e)
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	if min == 0 {
		return 0 // degenerate triangle; never worth splitting on skinniness alone
	}
	return max / min
}
