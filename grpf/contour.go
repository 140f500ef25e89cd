package grpf

import "github.com/EP-Guy/grpf/delaunay"

// extractContour implements spec §4.5. Input is the full candidate set (not
// the tolerance-filtered selectE): every triangle that touches the
// candidate set contributes all three of its directed edges, and edges that
// appear with both orientations — the interior edges shared between two
// contributing triangles — cancel out, leaving the outer boundary of each
// candidate region.
func extractContour(tess delaunay.Tessellation, candidates []delaunay.Edge) []delaunay.Edge {
	candidateSet := map[delaunay.Edge]struct{}{}
	for _, e := range candidates {
		candidateSet[canonical(e)] = struct{}{}
	}

	counts := map[delaunay.Edge]int{}
	for _, tri := range tess.Triangles() {
		touches := false
		for _, e := range tri.Edges() {
			if _, ok := candidateSet[canonical(e)]; ok {
				touches = true
				break
			}
		}
		if !touches {
			continue
		}
		for _, e := range tri.Edges() {
			counts[e]++
		}
	}

	var contour []delaunay.Edge
	for e := range counts {
		if _, cancelled := counts[e.Reverse()]; !cancelled {
			contour = append(contour, e)
		}
	}
	return contour
}
