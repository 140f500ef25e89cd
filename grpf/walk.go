package grpf

import (
	"math"

	"github.com/EP-Guy/grpf/delaunay"
	"github.com/EP-Guy/grpf/geom"
)

// walkRegions implements spec §4.6: trace the bag of directed contour edges
// into ordered closed loops. Each returned region is a cyclic vertex index
// sequence whose first and last elements coincide — the starting edge of a
// region is consumed as soon as the walk begins, and every other vertex has
// as many outgoing contour edges as incoming ones, so the walk can only run
// out of edges at the start vertex, and closes by re-appending it. The
// argument-principle evaluator (§4.7) is written against that convention.
func walkRegions(points map[int]*geom.Point, contour []delaunay.Edge) [][]int {
	remaining := append([]delaunay.Edge(nil), contour...)
	var regions [][]int

	for len(remaining) > 0 {
		e0 := remaining[0]
		remaining = remaining[1:]

		region := []int{e0.A}
		ref := e0.B

		for {
			var matches []int
			for i, e := range remaining {
				if e.A == ref {
					matches = append(matches, i)
				}
			}

			if len(matches) == 0 {
				region = append(region, ref)
				break
			}

			chosen := matches[0]
			if len(matches) > 1 {
				chosen = findNextEdge(points, region[len(region)-1], ref, matches, remaining)
			}

			region = append(region, ref)
			ref = remaining[chosen].B
			remaining = append(remaining[:chosen], remaining[chosen+1:]...)
		}

		regions = append(regions, region)
	}
	return regions
}

// findNextEdge is findnextnode: at a junction where more than one
// remaining edge leaves S (=ref), pick the candidate head N minimizing
// φ(N) = (arg(prev-S) - arg(N-S)) mod 2π — the smallest positive left turn
// from the incoming direction, which keeps the walk's orientation
// consistent around the loop.
func findNextEdge(points map[int]*geom.Point, prev, s int, candidates []int, remaining []delaunay.Edge) int {
	prevZ := points[prev].Complex()
	sZ := points[s].Complex()
	inbound := cmplxArg(prevZ - sZ)

	best := candidates[0]
	bestPhi := math.Inf(1)
	for _, c := range candidates {
		n := remaining[c].B
		nZ := points[n].Complex()
		outbound := cmplxArg(nZ - sZ)
		phi := mod2Pi(inbound - outbound)
		if phi < bestPhi {
			bestPhi = phi
			best = c
		}
	}
	return best
}

func cmplxArg(z complex128) float64 {
	return math.Atan2(imag(z), real(z))
}

func mod2Pi(theta float64) float64 {
	const twoPi = 2 * math.Pi
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	return theta
}
