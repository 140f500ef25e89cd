// Package geom holds the geometry primitives shared by the mesh producers,
// the triangulation facade and the core GRPF algorithm: points tagged with a
// quadrant, the handful of measurements the refinement engine needs, and the
// affine rescaling between a user's domain and a triangulator's coordinate
// range.
package geom

import (
	"fmt"
	"math"
)

// Quadrant is the integer tag assigned to a sample f(z). Zero means
// unassigned; the engine requires every inserted point be classified before
// the next candidate-edge detection pass.
type Quadrant int

const (
	Unassigned Quadrant = 0
	Q1         Quadrant = 1
	Q2         Quadrant = 2
	Q3         Quadrant = 3
	Q4         Quadrant = 4
)

// Classify maps a complex value to its quadrant using the boundary
// convention from the argument-principle construction: z == 0 is checked
// first and classified Q1; every other finite value falls in exactly one of
// the four quadrant clauses. This convention is load-bearing for the
// argument-principle evaluator and must not be altered.
func Classify(z complex128) (Quadrant, error) {
	r, i := real(z), imag(z)
	if math.IsNaN(r) || math.IsNaN(i) || math.IsInf(r, 0) || math.IsInf(i, 0) {
		return Unassigned, fmt.Errorf("geom: cannot classify non-finite value %v", z)
	}
	switch {
	case r == 0 && i == 0:
		return Q1, nil
	case r > 0 && i >= 0:
		return Q1, nil
	case r <= 0 && i > 0:
		return Q2, nil
	case r < 0 && i <= 0:
		return Q3, nil
	default: // r >= 0 && i < 0
		return Q4, nil
	}
}

// Point is a node of the triangulation. Its identity is the index it was
// inserted at, not its coordinates: two Points with the same (X, Y) but
// different Index are distinct, and equality must always be tested on
// Index. Quadrant is mutable and is populated by the quadrant-assignment
// phase, never inferred lazily.
type Point struct {
	Index    int
	X, Y     float64 // scaled coordinates, as held by the triangulation
	Quadrant Quadrant
	// Label is an optional human-readable debug name (see internal/dbg),
	// left empty outside of verbose/plot runs.
	Label string
}

func (p *Point) String() string {
	if p.Label != "" {
		return fmt.Sprintf("%s(%.6g,%.6g)", p.Label, p.X, p.Y)
	}
	return fmt.Sprintf("#%d(%.6g,%.6g)", p.Index, p.X, p.Y)
}

// Complex returns the point's scaled coordinates as a complex128, which is
// the representation most of the geometric predicates are easiest to state
// in.
func (p *Point) Complex() complex128 {
	return complex(p.X, p.Y)
}

// Distance is the Euclidean distance between two points in whatever
// coordinate system they're expressed in. The refinement engine always
// calls this on scaled coordinates, since tolerance is specified in scaled
// units.
func Distance(a, b *Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Hypot(dx, dy)
}

// Midpoint is the arithmetic mean of two points' coordinates. Used by the
// refinement engine to emit new nodes along zone-1 edges.
func Midpoint(a, b *Point) (x, y float64) {
	return (a.X + b.X) / 2, (a.Y + b.Y) / 2
}

// Centroid is the arithmetic mean of the given points' coordinates. Used by
// the refinement engine to emit new nodes inside skinny zone-2 triangles.
func Centroid(pts ...*Point) (x, y float64) {
	for _, p := range pts {
		x += p.X
		y += p.Y
	}
	n := float64(len(pts))
	return x / n, y / n
}
