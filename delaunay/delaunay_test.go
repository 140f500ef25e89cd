package delaunay

import (
	"testing"

	"github.com/EP-Guy/grpf/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridPoints() []*geom.Point {
	pts := []*geom.Point{}
	idx := 0
	for y := -5.0; y <= 5.0; y += 2.5 {
		for x := -5.0; x <= 5.0; x += 2.5 {
			pts = append(pts, &geom.Point{Index: idx, X: x, Y: y})
			idx++
		}
	}
	return pts
}

func TestBulkInsertProducesSolidTriangulation(t *testing.T) {
	tr := New()
	require.NoError(t, tr.BulkInsert(gridPoints()))

	triangles := tr.Triangles()
	require.NotEmpty(t, triangles)
	for _, tri := range triangles {
		assert.True(t, solid(tri))
		assert.NotEqual(t, tri.A, tri.B)
		assert.NotEqual(t, tri.B, tri.C)
		assert.NotEqual(t, tri.A, tri.C)
	}

	edges := tr.Edges()
	require.NotEmpty(t, edges)
	seen := map[Edge]bool{}
	for _, e := range edges {
		assert.False(t, seen[e], "edge %v double emitted", e)
		assert.False(t, seen[e.Reverse()], "edge %v emitted in both orientations", e)
		seen[e] = true
	}
}

func TestVertexTrianglesAreIncident(t *testing.T) {
	tr := New()
	require.NoError(t, tr.BulkInsert(gridPoints()))

	for idx := range gridPoints() {
		for _, tri := range tr.VertexTriangles(idx) {
			assert.True(t, tri.Has(idx))
		}
	}
}

func TestBulkInsertRejectsOutOfRange(t *testing.T) {
	tr := New()
	err := tr.BulkInsert([]*geom.Point{{Index: 0, X: 1e9, Y: 0}})
	assert.Error(t, err)
}

func TestBulkInsertRejectsDuplicateIndex(t *testing.T) {
	tr := New()
	require.NoError(t, tr.BulkInsert([]*geom.Point{{Index: 0, X: 0, Y: 0}}))
	err := tr.BulkInsert([]*geom.Point{{Index: 0, X: 1, Y: 1}})
	assert.Error(t, err)
}

func TestNextIndexTracksMaximum(t *testing.T) {
	tr := New()
	require.NoError(t, tr.BulkInsert([]*geom.Point{{Index: 0, X: 0, Y: 0}, {Index: 4, X: 1, Y: 1}}))
	assert.Equal(t, 5, tr.NextIndex())
}

func TestIncrementalInsertionStaysDelaunay(t *testing.T) {
	// A square plus its center: the center lies inside the circumcircle of
	// both triangles of the square, so re-triangulating that cavity leaves
	// exactly four solid triangles, all touching the center.
	tr := New()
	pts := []*geom.Point{
		{Index: 0, X: -1, Y: -1},
		{Index: 1, X: 1, Y: -1},
		{Index: 2, X: 1, Y: 1},
		{Index: 3, X: -1, Y: 1},
		{Index: 4, X: 0, Y: 0},
	}
	require.NoError(t, tr.BulkInsert(pts))
	assert.Len(t, tr.Triangles(), 4)
	for _, tri := range tr.Triangles() {
		assert.True(t, tri.Has(4), "every triangle of a square+center triangulation touches the center")
	}
}
