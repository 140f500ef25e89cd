package grpf

import (
	"github.com/EP-Guy/grpf/geom"
)

// nodeKind is what the argument principle concluded a region encloses.
type nodeKind int

const (
	nodeNone nodeKind = iota
	nodeZero
	nodePole
)

// evaluateRegion implements spec §4.7: normalize the region's phase-diff
// sequence, sum it, and classify by the sign of the quarter-turn count q.
// region is the cyclic vertex index list walkRegions produced (first and
// last entries equal); the forward differences are taken over k=0..n-2,
// matching that duplicated-endpoint convention exactly so the closing edge
// a_{n-2}->a0 is counted once. The triangulation stores its triangles
// counterclockwise, so a walked region runs counterclockwise as well and
// each step contributes q_{k+1}-q_k with no sign flip: a positive sum is a
// zero, a negative sum a pole.
func evaluateRegion(points map[int]*geom.Point, region []int) (nodeKind, complex128) {
	n := len(region)
	if n < 2 {
		return nodeNone, 0
	}

	sum := 0
	for k := 0; k < n-1; k++ {
		a := points[region[k]].Quadrant
		b := points[region[k+1]].Quadrant
		sum += normalizeDelta(phaseDiff(b, a))
	}

	q := sum / 4
	var kind nodeKind
	switch {
	case q > 0:
		kind = nodeZero
	case q < 0:
		kind = nodePole
	default:
		return nodeNone, 0
	}

	pts := make([]*geom.Point, n)
	for i, idx := range region {
		pts[i] = points[idx]
	}
	return kind, regionCentroid(pts)
}

// normalizeDelta maps a raw mod-4 phase difference onto the signed
// quarter-turn count the argument principle sums: a wraparound of 3 is
// really a turn of -1, a wraparound of -3 is really +1, and an ambiguous
// |Δ|=2 step contributes nothing (it never resolves which way the phase
// went around).
func normalizeDelta(d int) int {
	switch d {
	case 3:
		return -1
	case -3:
		return 1
	case 2, -2:
		return 0
	default:
		return d
	}
}

// regionCentroid is the mean of every vertex in the walked region,
// including the duplicated closing vertex — the same averaging the region
// walk's vertex list is built from, so it stays consistent with how n was
// counted above.
func regionCentroid(pts []*geom.Point) complex128 {
	var sum complex128
	for _, p := range pts {
		sum += p.Complex()
	}
	return sum / complex(float64(len(pts)), 0)
}
