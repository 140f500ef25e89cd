// Package polyloc answers "is this point inside that simple polygon?" in
// O(log n) amortized time by building a trapezoidal point-location
// structure over the polygon's edges (Seidel's randomized incremental
// algorithm), instead of an O(n) crossing-count test repeated for every
// sample. It backs mesh.PolygonDomain, which needs exactly this query,
// over and over, while hex-packing a candidate domain.
package polyloc

// Vertex is a polygon boundary point. Vertices are compared by pointer
// identity throughout this package: two vertices with equal coordinates are
// still distinct unless they are the same *Vertex.
type Vertex struct {
	X, Y float64
}

// Below reports whether v sits below other in the lexicographic order used
// throughout this package to simulate a coordinate system with no exactly
// equal Y values: ties on Y are broken by X, so no two distinct vertices in
// a polygon are ever considered equal in height.
func (v *Vertex) Below(other *Vertex) bool {
	if v.Y == other.Y {
		return v.X < other.X
	}
	return v.Y < other.Y
}

func (v *Vertex) Above(other *Vertex) bool {
	return !v.Below(other)
}

// Edge is a directed polygon boundary segment.
type Edge struct {
	Start, End *Vertex
}

func (e *Edge) Top() *Vertex {
	if e.Start.Above(e.End) {
		return e.Start
	}
	return e.End
}

func (e *Edge) Bottom() *Vertex {
	if e.Start.Below(e.End) {
		return e.Start
	}
	return e.End
}

func (e *Edge) PointsDown() bool {
	return e.Start.Above(e.End)
}

func (e *Edge) IsHorizontal() bool {
	return e.Start.Y == e.End.Y
}

// side reports which side of the line through e (extended infinitely) a
// point lies on, via the sign of the cross product; side > 0 means p is
// left of the directed line from Bottom() to Top().
func (e *Edge) side(p *Vertex) float64 {
	bottom, top := e.Bottom(), e.Top()
	return (top.X-bottom.X)*(p.Y-bottom.Y) - (top.Y-bottom.Y)*(p.X-bottom.X)
}

func (e *Edge) IsLeftOf(p *Vertex) bool  { return e.side(p) > 0 }
func (e *Edge) IsRightOf(p *Vertex) bool { return e.side(p) < 0 }

// XAt solves the line through e for x at the given y (e must not be
// horizontal).
func (e *Edge) XAt(y float64) float64 {
	dx := e.End.X - e.Start.X
	dy := e.End.Y - e.Start.Y
	t := (y - e.Start.Y) / dy
	return e.Start.X + t*dx
}

// Polygon is a simple, closed, counterclockwise polygon boundary.
type Polygon struct {
	Vertices []*Vertex
}

func circularIndex(i, n int) int {
	return (i%n + n) % n
}

// SignedArea is twice the polygon's signed area (shoelace formula);
// positive for a counterclockwise boundary.
func (p Polygon) SignedArea() float64 {
	var sum float64
	n := len(p.Vertices)
	for i, v := range p.Vertices {
		next := p.Vertices[circularIndex(i+1, n)]
		sum += v.X*next.Y - next.X*v.Y
	}
	return sum
}

func (p Polygon) IsClockwise() bool {
	return p.SignedArea() < 0
}

// CCW returns p, reversed if necessary so it winds counterclockwise.
func (p Polygon) CCW() Polygon {
	if !p.IsClockwise() {
		return p
	}
	reversed := make([]*Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		reversed[len(p.Vertices)-1-i] = v
	}
	return Polygon{Vertices: reversed}
}

func (p Polygon) edges() []*Edge {
	n := len(p.Vertices)
	edges := make([]*Edge, n)
	for i, v := range p.Vertices {
		edges[i] = &Edge{Start: v, End: p.Vertices[circularIndex(i+1, n)]}
	}
	return edges
}
