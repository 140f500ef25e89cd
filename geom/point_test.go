package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		z    complex128
		want Quadrant
	}{
		{"strictly Q1", complex(1, 1), Q1},
		{"positive real axis", complex(1, 0), Q1},
		{"origin", complex(0, 0), Q1},
		{"strictly Q2", complex(-1, 1), Q2},
		{"positive imaginary axis", complex(0, 1), Q2},
		{"strictly Q3", complex(-1, -1), Q3},
		{"negative real axis", complex(-1, 0), Q3},
		{"strictly Q4", complex(1, -1), Q4},
		{"negative imaginary axis", complex(0, -1), Q4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q, err := Classify(c.z)
			require.NoError(t, err)
			assert.Equal(t, c.want, q)
		})
	}
}

func TestClassifyNonFinite(t *testing.T) {
	_, err := Classify(complex(math.NaN(), 0))
	assert.Error(t, err)
	_, err = Classify(complex(math.Inf(1), 0))
	assert.Error(t, err)
}

func TestDistanceMidpointCentroid(t *testing.T) {
	a := &Point{X: 0, Y: 0}
	b := &Point{X: 3, Y: 4}
	assert.InDelta(t, 5.0, Distance(a, b), 1e-12)

	mx, my := Midpoint(a, b)
	assert.InDelta(t, 1.5, mx, 1e-12)
	assert.InDelta(t, 2.0, my, 1e-12)

	c := &Point{X: 6, Y: 8}
	cx, cy := Centroid(a, b, c)
	assert.InDelta(t, 3.0, cx, 1e-12)
	assert.InDelta(t, 4.0, cy, 1e-12)
}
