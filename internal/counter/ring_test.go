package counter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRing_Geometry checks the exact offset at half progress for the default ring.
func TestRing_Geometry(t *testing.T) {
	t.Parallel()

	ring := Ring{Diameter: 160, StrokeWidth: 8}

	require.Equal(t, 76.0, ring.Radius())
	require.InDelta(t, 2*math.Pi*76, ring.Circumference(), 1e-12)
	require.InDelta(t, ring.Circumference()/2, ring.DashOffset(50), 1e-12)

	require.InDelta(t, ring.Circumference(), ring.DashOffset(0), 1e-12)
	require.InDelta(t, 0, ring.DashOffset(100), 1e-12)
	require.Equal(t, DefaultRing, ring)
}

// TestRing_Clamp keeps out-of-range progress inside the ring.
func TestRing_Clamp(t *testing.T) {
	t.Parallel()

	ring := DefaultRing

	require.InDelta(t, ring.DashOffset(0), ring.DashOffset(-20), 1e-12)
	require.InDelta(t, ring.DashOffset(100), ring.DashOffset(140), 1e-12)
	require.InDelta(t, 0.25, ring.Filled(25), 1e-12)
	require.Zero(t, Ring{}.Filled(50))
}
