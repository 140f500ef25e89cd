package grpf

import "log"

// Params holds the tuning knobs for a Run/RunWithPlotData call (spec §6,
// "Parameter object"). Zero-value Params is not valid; use DefaultParams
// and override the fields that matter, mirroring the teacher's
// construct-then-drive flow.
type Params struct {
	// MaxIterations caps the number of refinement passes.
	MaxIterations int
	// MaxNodes caps the total number of inserted points.
	MaxNodes int
	// SkinnyTriangle is the longest/shortest edge ratio above which a
	// zone-2 triangle is split by centroid insertion.
	SkinnyTriangle float64
	// TessSizeHint is a pre-allocation hint for the triangulation; it must
	// not exceed MaxNodes.
	TessSizeHint int
	// Tolerance is the scaled-unit edge length below which refinement
	// stops.
	Tolerance float64
	// Multithreading permits parallel evaluation of f during quadrant
	// assignment. f must then be safe for concurrent use.
	Multithreading bool
}

// DefaultParams returns the parameter defaults from spec §6.
func DefaultParams() Params {
	return Params{
		MaxIterations:  100,
		MaxNodes:       500_000,
		SkinnyTriangle: 3,
		TessSizeHint:   5_000,
		Tolerance:      1e-9,
		Multithreading: false,
	}
}

// Check validates the parameter combination, logging (not failing on) the
// one documented warning-only constraint: TessSizeHint > MaxNodes.
func (p Params) Check() {
	if p.TessSizeHint > p.MaxNodes {
		log.Printf("grpf: warning: tess_size_hint (%d) exceeds max_nodes (%d)", p.TessSizeHint, p.MaxNodes)
	}
}
