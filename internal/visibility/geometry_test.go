package visibility

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestIntersectionRatio covers full, partial, disjoint and degenerate spans.
func TestIntersectionRatio(t *testing.T) {
	t.Parallel()

	viewport := Rect{Top: 10, Height: 20}

	cases := []struct {
		name         string
		element      Rect
		ratio        float64
		intersecting bool
	}{
		{name: "fully inside", element: Rect{Top: 12, Height: 5}, ratio: 1, intersecting: true},
		{name: "top half", element: Rect{Top: 20, Height: 20}, ratio: 0.5, intersecting: true},
		{name: "bottom quarter", element: Rect{Top: 0, Height: 12}, ratio: 2.0 / 12.0, intersecting: true},
		{name: "below", element: Rect{Top: 30, Height: 4}, ratio: 0, intersecting: false},
		{name: "above", element: Rect{Top: 0, Height: 10}, ratio: 0, intersecting: false},
		{name: "larger than viewport", element: Rect{Top: 0, Height: 80}, ratio: 0.25, intersecting: true},
		{name: "point inside", element: Rect{Top: 15, Height: 0}, ratio: 1, intersecting: true},
		{name: "point at bottom edge", element: Rect{Top: 30, Height: 0}, ratio: 0, intersecting: false},
	}

	for _, tc := range cases {
		ratio, intersecting := IntersectionRatio(tc.element, viewport)
		require.InDelta(t, tc.ratio, ratio, 1e-9, tc.name)
		require.Equal(t, tc.intersecting, intersecting, tc.name)
	}

	_, intersecting := IntersectionRatio(Rect{Top: 0, Height: 5}, Rect{Top: 0, Height: 0})
	require.False(t, intersecting)
}

// TestMeasure_FeedsTrigger drives a trigger from scroll geometry the way the page does.
func TestMeasure_FeedsTrigger(t *testing.T) {
	t.Parallel()

	var (
		section = Rect{Top: 40, Height: 10}
		tr      = MustNew(0.5)
	)

	for top := 0; top <= 60; top += 2 {
		tr.Observe(Measure(section, Rect{Top: top, Height: 35}))

		if top < 10 {
			require.False(t, tr.Visible(), "top=%d", top)
		}
	}

	// Scrolled past the section entirely; still visible.
	require.True(t, tr.Visible())
}
