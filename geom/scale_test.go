package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleRoundTrip(t *testing.T) {
	seeds := []complex128{complex(-2, -2), complex(2, 2), complex(-2, 2), complex(2, -2)}
	s, err := NewScale(seeds, -1, 1)
	require.NoError(t, err)

	for _, z := range seeds {
		x, y, err := s.ForwardPoint(z)
		require.NoError(t, err)
		assert.InDelta(t, real(z), real(s.Inverse(x, y)), 1e-9)
		assert.InDelta(t, imag(z), imag(s.Inverse(x, y)), 1e-9)
	}
}

func TestScaleRejectsDegenerateSeeds(t *testing.T) {
	_, err := NewScale(nil, -1, 1)
	assert.Error(t, err)

	_, err = NewScale([]complex128{complex(1, 1), complex(1, 2)}, -1, 1)
	assert.Error(t, err, "all seeds sharing a real part cannot derive a real-axis scale")
}

func TestForwardPointOutOfRange(t *testing.T) {
	s, err := NewScale([]complex128{complex(-1, -1), complex(1, 1)}, -1, 1)
	require.NoError(t, err)
	// A point well outside the seed bounding box still forward-maps linearly,
	// and here lands outside [min,max].
	_, _, err = s.ForwardPoint(complex(100, 100))
	assert.Error(t, err)
}
