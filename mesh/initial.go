// Package mesh produces the seed points GRPF starts from: a hexagonal
// close-packed sampling of a rectangle or a disk, or (a supplemented
// producer not present in the distilled core spec) of an arbitrary simple
// polygon loaded from an SVG file. None of these do anything with f; they
// are pure geometry, the "straightforward geometric producer of seed
// points" the core spec takes as given.
package mesh

import "math"

// RectangularDomain hexagonal-close-packs the axis-aligned rectangle with
// corners zLo and zHi at spacing r: rows are stacked r*sqrt(3)/2 apart, and
// alternate rows are offset by r/2, which packs the plane with equilateral
// triangles of side r.
func RectangularDomain(zLo, zHi complex128, r float64) []complex128 {
	if r <= 0 {
		panic("mesh: sample spacing must be positive")
	}
	x0, x1 := real(zLo), real(zHi)
	y0, y1 := imag(zLo), imag(zHi)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}

	rowHeight := r * math.Sqrt(3) / 2
	var points []complex128
	row := 0
	for y := y0; y <= y1+1e-12; y += rowHeight {
		xOffset := 0.0
		if row%2 == 1 {
			xOffset = r / 2
		}
		for x := x0 + xOffset; x <= x1+1e-12; x += r {
			points = append(points, complex(x, y))
		}
		row++
	}
	return points
}

// DiskDomain hexagonal-close-packs the disk of radius R centered at the
// origin at spacing r, by packing the bounding square and discarding
// samples outside the disk.
func DiskDomain(R, r float64) []complex128 {
	candidates := RectangularDomain(complex(-R, -R), complex(R, R), r)
	points := candidates[:0]
	for _, z := range candidates {
		if math.Hypot(real(z), imag(z)) <= R+1e-12 {
			points = append(points, z)
		}
	}
	return points
}
