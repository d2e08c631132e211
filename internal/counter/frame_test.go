package counter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFrames_MonotonicConvergence checks non-decreasing values ending exactly at the target.
func TestFrames_MonotonicConvergence(t *testing.T) {
	t.Parallel()

	for _, display := range []string{"1,200+", "900+", "15+", "98%", "3", "1"} {
		spec, err := Parse(display)
		require.NoError(t, err)

		var (
			frames       []Frame
			lastValue    int64
			lastProgress float64
		)

		for frame := range spec.Frames(DefaultSteps) {
			require.GreaterOrEqual(t, frame.Value, lastValue, display)
			require.GreaterOrEqual(t, frame.Progress, lastProgress, display)
			require.LessOrEqual(t, frame.Progress, 100.0, display)
			require.True(t, strings.HasSuffix(frame.Display, spec.Suffix), display)

			lastValue, lastProgress = frame.Value, frame.Progress
			frames = append(frames, frame)
		}

		require.Len(t, frames, DefaultSteps, display)

		last := frames[len(frames)-1]
		require.True(t, last.Complete, display)
		require.Equal(t, spec.Target, last.Value, display)
		require.Equal(t, 100.0, last.Progress, display)
		require.Equal(t, display, last.Display)

		for _, frame := range frames[:len(frames)-1] {
			require.False(t, frame.Complete, display)
		}
	}
}

// TestFrames_ZeroTarget completes on the first tick without dividing by zero.
func TestFrames_ZeroTarget(t *testing.T) {
	t.Parallel()

	spec, err := Parse("0+")
	require.NoError(t, err)

	var frames []Frame
	for frame := range spec.Frames(DefaultSteps) {
		frames = append(frames, frame)
	}

	require.Len(t, frames, 1)
	require.True(t, frames[0].Complete)
	require.Equal(t, int64(0), frames[0].Value)
	require.Equal(t, 100.0, frames[0].Progress)
	require.Equal(t, "0+", frames[0].Display)
}

// TestFrameAt_Intermediate verifies floor semantics and grouping of intermediate values.
func TestFrameAt_Intermediate(t *testing.T) {
	t.Parallel()

	spec := Spec{Target: 1200, Suffix: "+"}

	first := spec.FrameAt(1, DefaultSteps)
	require.Equal(t, int64(24), first.Value)
	require.Equal(t, "24+", first.Display)
	require.InDelta(t, 2.0, first.Progress, 1e-9)

	mid := spec.FrameAt(43, DefaultSteps)
	require.Equal(t, int64(1032), mid.Value)
	require.Equal(t, "1,032+", mid.Display)
	require.False(t, mid.Complete)

	odd := Spec{Target: 98, Suffix: "%"}.FrameAt(1, DefaultSteps)
	require.Equal(t, int64(1), odd.Value)
	require.InDelta(t, 2.0, odd.Progress, 1e-9)

	// A non-positive step count falls back to the default.
	require.Equal(t, first, spec.FrameAt(1, 0))
}

// TestFrames_StopEarly ensures the sequence honours an early break.
func TestFrames_StopEarly(t *testing.T) {
	t.Parallel()

	count := 0

	for range (Spec{Target: 500}).Frames(DefaultSteps) {
		count++
		if count == 3 {
			break
		}
	}

	require.Equal(t, 3, count)
}
