package grpf

import (
	"sync"

	"github.com/EP-Guy/grpf/geom"
)

// Func is a user-supplied complex function, evaluated only at unscaled
// (user-space) coordinates. It must be pure and, when Params.Multithreading
// is set, safe to call concurrently from multiple goroutines.
type Func func(complex128) complex128

// assignQuadrants evaluates f at every point in pts (via scale's inverse
// map) and sets each point's Quadrant. This is the only phase ever run in
// parallel (spec §5): the engine fans out across workers when
// multithreaded is set, but every other phase stays single-threaded over
// one shared tessellation.
func assignQuadrants(f Func, scale geom.Scale, pts []*geom.Point, multithreaded bool) error {
	if !multithreaded || len(pts) < 2 {
		for _, p := range pts {
			if err := classifyOne(f, scale, p); err != nil {
				return err
			}
		}
		return nil
	}

	workers := len(pts)
	if workers > maxQuadrantWorkers {
		workers = maxQuadrantWorkers
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	chunk := (len(pts) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if lo >= len(pts) {
			break
		}
		if hi > len(pts) {
			hi = len(pts)
		}
		wg.Add(1)
		go func(slice []*geom.Point) {
			defer wg.Done()
			for _, p := range slice {
				if err := classifyOne(f, scale, p); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
			}
		}(pts[lo:hi])
	}
	wg.Wait()
	return firstErr
}

// maxQuadrantWorkers bounds fan-out so a handful of refinement-pass points
// doesn't spin up thousands of goroutines.
const maxQuadrantWorkers = 16

func classifyOne(f Func, scale geom.Scale, p *geom.Point) error {
	z := scale.Inverse(p.X, p.Y)
	fz := f(z)
	q, err := geom.Classify(fz)
	if err != nil {
		return err
	}
	p.Quadrant = q
	return nil
}
