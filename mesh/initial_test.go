package mesh

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangularDomainCoversBox(t *testing.T) {
	points := RectangularDomain(complex(-1, -1), complex(1, 1), 0.25)
	require.NotEmpty(t, points)
	for _, z := range points {
		assert.GreaterOrEqual(t, real(z), -1.0-1e-9)
		assert.LessOrEqual(t, real(z), 1.0+1e-9)
		assert.GreaterOrEqual(t, imag(z), -1.0-1e-9)
		assert.LessOrEqual(t, imag(z), 1.0+1e-9)
	}
}

func TestRectangularDomainIsOrderIndependentOnCorners(t *testing.T) {
	a := RectangularDomain(complex(-1, -1), complex(1, 1), 0.5)
	b := RectangularDomain(complex(1, 1), complex(-1, -1), 0.5)
	assert.Equal(t, len(a), len(b))
}

func TestDiskDomainStaysWithinRadius(t *testing.T) {
	points := DiskDomain(2, 0.2)
	require.NotEmpty(t, points)
	for _, z := range points {
		assert.LessOrEqual(t, math.Hypot(real(z), imag(z)), 2.0+1e-9)
	}
}

func TestDiskDomainIsDenserThanItsInscribedSquare(t *testing.T) {
	disk := DiskDomain(2, 0.2)
	square := RectangularDomain(complex(-2/math.Sqrt2, -2/math.Sqrt2), complex(2/math.Sqrt2, 2/math.Sqrt2), 0.2)
	assert.Greater(t, len(disk), len(square))
}

const testSquareSVG = `<svg><polygon points="0,0 10,0 10,10 0,10"/></svg>`

func TestPolygonDomainSamplesInterior(t *testing.T) {
	points, err := PolygonDomain(strings.NewReader(testSquareSVG), 1)
	require.NoError(t, err)
	require.NotEmpty(t, points)
	for _, z := range points {
		assert.GreaterOrEqual(t, real(z), -1e-9)
		assert.LessOrEqual(t, real(z), 10.0+1e-9)
	}
}

func TestPolygonDomainRejectsMissingPolygon(t *testing.T) {
	_, err := PolygonDomain(strings.NewReader(`<svg></svg>`), 1)
	assert.Error(t, err)
}
