package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestEasing_Endpoints pins every curve to 0 and 1 at the ends and clamps outside.
func TestEasing_Endpoints(t *testing.T) {
	t.Parallel()

	for _, e := range []Easing{Linear, EaseOut, EaseInOut} {
		require.InDelta(t, 0, e.Apply(0), 1e-12)
		require.InDelta(t, 1, e.Apply(1), 1e-12)
		require.InDelta(t, 0, e.Apply(-3), 1e-12)
		require.InDelta(t, 1, e.Apply(7), 1e-12)
	}

	require.InDelta(t, 0.5, Linear.Apply(0.5), 1e-12)
	require.InDelta(t, 0.875, EaseOut.Apply(0.5), 1e-12)
	require.InDelta(t, 0.5, EaseInOut.Apply(0.5), 1e-12)
}

// TestDescriptor_At samples a fade-up before, during and after its window.
func TestDescriptor_At(t *testing.T) {
	t.Parallel()

	d := FadeUp().WithDelay(200 * time.Millisecond)
	require.Equal(t, 800*time.Millisecond, d.Total())

	require.Equal(t, d.From, d.At(0))
	require.Equal(t, d.From, d.At(200*time.Millisecond))
	require.False(t, d.Done(500*time.Millisecond))

	mid := d.At(500 * time.Millisecond)
	require.Greater(t, mid.Opacity, 0.5)
	require.Less(t, mid.OffsetY, 15.0)

	require.Equal(t, Rest, d.At(time.Second))
	require.True(t, d.Done(800*time.Millisecond))
}

// TestDescriptor_ZeroDuration jumps straight to the final pose after the delay.
func TestDescriptor_ZeroDuration(t *testing.T) {
	t.Parallel()

	d := Descriptor{Delay: time.Second, From: Pose{}, To: Rest}

	require.Equal(t, Pose{}, d.At(time.Second))
	require.Equal(t, Rest, d.At(time.Second+time.Nanosecond))
}

// TestStagger spaces siblings evenly after a base delay.
func TestStagger(t *testing.T) {
	t.Parallel()

	require.Equal(t, 100*time.Millisecond, Stagger(100*time.Millisecond, StaggerStep, 0))
	require.Equal(t, 400*time.Millisecond, Stagger(100*time.Millisecond, StaggerStep, 3))
	require.Equal(t, 200*time.Millisecond, Stagger(0, StaggerStep, 2))
}

// TestPresets start away from rest and finish at rest.
func TestPresets(t *testing.T) {
	t.Parallel()

	for _, d := range []Descriptor{FadeUp(), StatEntry(StaggerStep), SlideIn(0)} {
		require.NotEqual(t, Rest, d.From)
		require.Equal(t, Rest, d.To)
	}

	require.Equal(t, -100.0, SlideOut().To.OffsetX)
	require.Equal(t, 100.0, SlideIn(0).From.OffsetX)
	require.Equal(t, 0.9, StatEntry(0).From.Scale)
}
