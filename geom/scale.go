package geom

import (
	"math"

	"github.com/pkg/errors"
)

// Scale is the affine map (ra, rb, ia, ib) with x -> ra*x + rb, y -> ia*y +
// ib taking a user's bounding box into a triangulation library's required
// coordinate range [MinCoord, MaxCoord]. f is always evaluated at the
// unscaled complex value; every geometric predicate in the refinement loop,
// including the caller's tolerance, operates in the scaled system.
type Scale struct {
	Ra, Rb float64
	Ia, Ib float64
	Min    float64
	Max    float64
}

// NewScale derives the forward map from the bounding box of a set of seed
// points and the triangulator's coordinate span [min, max]. It is a
// precondition failure for the seed set to be empty or degenerate on either
// axis.
func NewScale(seeds []complex128, min, max float64) (Scale, error) {
	if len(seeds) == 0 {
		return Scale{}, errors.New("geom: cannot derive a scaling transform from zero seed points")
	}
	rmin, rmax := real(seeds[0]), real(seeds[0])
	imin, imax := imag(seeds[0]), imag(seeds[0])
	for _, z := range seeds[1:] {
		r, i := real(z), imag(z)
		if r < rmin {
			rmin = r
		}
		if r > rmax {
			rmax = r
		}
		if i < imin {
			imin = i
		}
		if i > imax {
			imax = i
		}
	}
	if rmax == rmin || imax == imin {
		return Scale{}, errors.New("geom: seed points must span a nondegenerate rectangle")
	}

	w := max - min
	ra := w / (rmax - rmin)
	rb := max - ra*rmax
	ia := w / (imax - imin)
	ib := max - ia*imax

	return Scale{Ra: ra, Rb: rb, Ia: ia, Ib: ib, Min: min, Max: max}, nil
}

// Forward maps a user-space complex value into scaled coordinates.
func (s Scale) Forward(z complex128) (x, y float64) {
	return s.Ra*real(z) + s.Rb, s.Ia*imag(z) + s.Ib
}

// ForwardPoint is Forward but checked against the triangulator's coordinate
// range; out-of-range input is a precondition failure (spec: "After mapping,
// every seed coordinate must lie in [min_coord, max_coord]").
func (s Scale) ForwardPoint(z complex128) (x, y float64, err error) {
	x, y = s.Forward(z)
	// A seed on the edge of the bounding box NewScale was derived from can
	// land a rounding error outside [Min, Max]; such values are pinned to the
	// bound rather than rejected.
	slack := 1e-12 * (s.Max - s.Min)
	if x < s.Min-slack || x > s.Max+slack || y < s.Min-slack || y > s.Max+slack {
		return 0, 0, errors.Errorf("geom: seed %v maps to (%.6g,%.6g), outside [%.6g,%.6g]", z, x, y, s.Min, s.Max)
	}
	x = math.Min(math.Max(x, s.Min), s.Max)
	y = math.Min(math.Max(y, s.Min), s.Max)
	return x, y, nil
}

// Inverse maps scaled coordinates back into the user's coordinate system.
// Used whenever f must be evaluated at a triangulation point, and whenever a
// root/pole centroid is returned to the caller.
func (s Scale) Inverse(x, y float64) complex128 {
	r := (x - s.Rb) / s.Ra
	i := (y - s.Ib) / s.Ia
	return complex(r, i)
}

// InversePoint is a convenience wrapper around Inverse for a *Point.
func (s Scale) InversePoint(p *Point) complex128 {
	return s.Inverse(p.X, p.Y)
}
