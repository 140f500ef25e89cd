package grpf

import (
	"log"

	"github.com/EP-Guy/grpf/delaunay"
	"github.com/EP-Guy/grpf/geom"
)

// Result is what RunWithPlotData returns in addition to the zero/pole
// lists: the diagnostic state the plain Run entry point throws away.
type Result struct {
	Zeros, Poles []complex128
	Points       map[int]*geom.Point
	PhaseDiffs   map[delaunay.Edge]int
	Tess         delaunay.Tessellation
	Scale        geom.Scale
}

// Run drives the full GRPF pipeline (spec §5): scale the seed mesh into
// the triangulator's coordinate range, classify quadrants, iteratively
// refine the candidate edges, extract the contour, walk it into regions,
// and evaluate each region by the argument principle.
func Run(f Func, initialMesh []complex128, params Params) (zeros, poles []complex128, err error) {
	res, err := RunWithPlotData(f, initialMesh, params)
	if err != nil {
		return nil, nil, err
	}
	return res.Zeros, res.Poles, nil
}

// RunWithPlotData is Run, plus the quadrant-tagged points, the last
// full phase-difference map, and the tessellation handle — the state
// internal/plot needs to render a diagnostic view of the run.
func RunWithPlotData(f Func, initialMesh []complex128, params Params) (result Result, err error) {
	params.Check()
	defer recoverPrecondition(&err)

	if len(initialMesh) < 3 {
		fail("initial mesh must contain at least 3 points, got %d", len(initialMesh))
	}

	tess := delaunay.New()
	scale, scaleErr := geom.NewScale(initialMesh, tess.MinCoord(), tess.MaxCoord())
	if scaleErr != nil {
		return Result{}, scaleErr
	}

	points := map[int]*geom.Point{}
	nextIndex := 0

	seed := make([]*geom.Point, len(initialMesh))
	for i, z := range initialMesh {
		x, y, fpErr := scale.ForwardPoint(z)
		if fpErr != nil {
			fail("%s", fpErr)
		}
		p := &geom.Point{Index: nextIndex, X: x, Y: y}
		seed[i] = p
		points[p.Index] = p
		nextIndex++
	}
	if insertErr := tess.BulkInsert(seed); insertErr != nil {
		return Result{}, insertErr
	}
	if quadErr := assignQuadrants(f, scale, seed, params.Multithreading); quadErr != nil {
		return Result{}, quadErr
	}

	var candidates []delaunay.Edge
	iteration := 0
	for ; iteration < params.MaxIterations; iteration++ {
		candidates = candidateEdges(points, tess.Edges())

		step, converged := planRefinement(points, tess, candidates, params.Tolerance, params.SkinnyTriangle, nextIndex)
		if converged {
			break
		}
		if len(step.points) == 0 {
			log.Printf("grpf: refinement stalled at iteration %d with unresolved candidate edges; stopping early", iteration)
			break
		}
		if nextIndex+len(step.points) > params.MaxNodes {
			log.Printf("grpf: warning: node budget %d reached at iteration %d; returning best-effort result with unresolved candidate edges", params.MaxNodes, iteration)
			break
		}

		if insertErr := tess.BulkInsert(step.points); insertErr != nil {
			return Result{}, insertErr
		}
		for _, p := range step.points {
			points[p.Index] = p
		}
		if quadErr := assignQuadrants(f, scale, step.points, params.Multithreading); quadErr != nil {
			return Result{}, quadErr
		}
		nextIndex += len(step.points)
	}
	if iteration == params.MaxIterations {
		log.Printf("grpf: warning: max_iterations budget %d exhausted; returning best-effort result with unresolved candidate edges", params.MaxIterations)
	}

	candidates = candidateEdges(points, tess.Edges())
	contour := extractContour(tess, candidates)
	regions := walkRegions(points, contour)

	var zeros, poles []complex128
	for _, region := range regions {
		kind, centroid := evaluateRegion(points, region)
		switch kind {
		case nodeZero:
			zeros = append(zeros, scale.Inverse(real(centroid), imag(centroid)))
		case nodePole:
			poles = append(poles, scale.Inverse(real(centroid), imag(centroid)))
		}
	}

	return Result{
		Zeros:      zeros,
		Poles:      poles,
		Points:     points,
		PhaseDiffs: phaseDiffs(points, tess.Edges()),
		Tess:       tess,
		Scale:      scale,
	}, nil
}
