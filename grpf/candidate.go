package grpf

import (
	"github.com/EP-Guy/grpf/delaunay"
	"github.com/EP-Guy/grpf/geom"
)

// phaseDiff is the mod-4 quadrant difference of an edge's endpoints.
// Swapping the endpoints negates it mod 4, and 2 is its own negative, so
// endpoint order doesn't affect whether an edge is a candidate.
func phaseDiff(a, b geom.Quadrant) int {
	d := (int(a) - int(b)) % 4
	if d < 0 {
		d += 4
	}
	return d
}

// phaseDiffs computes ΔQ for every edge currently in the tessellation. This
// is the full inspection the diagnostic API exposes (spec §6,
// grpf_with_plot_data's "phase-difference tag for every inspected edge").
func phaseDiffs(points map[int]*geom.Point, edges []delaunay.Edge) map[delaunay.Edge]int {
	out := make(map[delaunay.Edge]int, len(edges))
	for _, e := range edges {
		out[e] = phaseDiff(points[e.A].Quadrant, points[e.B].Quadrant)
	}
	return out
}

// candidateEdges selects, from edges, those whose endpoints differ by
// ΔQ = 2 (mod 4) — a necessary condition for a nearby root or pole (spec
// §4.3).
func candidateEdges(points map[int]*geom.Point, edges []delaunay.Edge) []delaunay.Edge {
	var out []delaunay.Edge
	for _, e := range edges {
		if phaseDiff(points[e.A].Quadrant, points[e.B].Quadrant) == 2 {
			out = append(out, e)
		}
	}
	return out
}

// edgeLengthScaled is the Euclidean length of an edge in the triangulation's
// scaled coordinate system, which is the system refinement tolerance is
// specified in.
func edgeLengthScaled(points map[int]*geom.Point, e delaunay.Edge) float64 {
	return geom.Distance(points[e.A], points[e.B])
}

// canonical returns e with its endpoints ordered so that reverse-equal
// edges compare equal; used only for deduplication, never for the ΔQ test
// itself (which is already symmetric).
func canonical(e delaunay.Edge) delaunay.Edge {
	if e.A <= e.B {
		return e
	}
	return e.Reverse()
}
