package polyloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square() Polygon {
	return Polygon{Vertices: []*Vertex{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}}
}

func TestContainsPointSquare(t *testing.T) {
	g := NewGraph(square())

	inside := []*Vertex{{X: 5, Y: 5}, {X: 1, Y: 1}, {X: 9, Y: 9}}
	for _, p := range inside {
		assert.True(t, g.ContainsPoint(p), "%v should be inside", p)
	}

	outside := []*Vertex{{X: -1, Y: 5}, {X: 11, Y: 5}, {X: 5, Y: -1}, {X: 5, Y: 11}}
	for _, p := range outside {
		assert.False(t, g.ContainsPoint(p), "%v should be outside", p)
	}
}

func TestContainsPointLShape(t *testing.T) {
	// An L-shaped polygon; the notch at (5,5)-(10,5)-(10,10)-(5,10) is
	// excluded from the region.
	poly := Polygon{Vertices: []*Vertex{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 5},
		{X: 5, Y: 5},
		{X: 5, Y: 10},
		{X: 0, Y: 10},
	}}
	g := NewGraph(poly)

	assert.True(t, g.ContainsPoint(&Vertex{X: 2, Y: 2}))
	assert.True(t, g.ContainsPoint(&Vertex{X: 8, Y: 2}))
	assert.True(t, g.ContainsPoint(&Vertex{X: 2, Y: 8}))
	assert.False(t, g.ContainsPoint(&Vertex{X: 8, Y: 8}), "notch corner should be outside the L")
}

func TestCWPolygonIsReoriented(t *testing.T) {
	cw := Polygon{Vertices: []*Vertex{
		{X: 0, Y: 0},
		{X: 0, Y: 10},
		{X: 10, Y: 10},
		{X: 10, Y: 0},
	}}
	assert.True(t, cw.IsClockwise())
	g := NewGraph(cw)
	assert.True(t, g.ContainsPoint(&Vertex{X: 5, Y: 5}))
}
