package carousel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// gallery is the six-card sequence used across the tests.
func gallery() []string {
	return []string{"A", "B", "C", "D", "E", "F"}
}

// TestNew_RejectsEmpty fails fast instead of dividing by zero later.
func TestNew_RejectsEmpty(t *testing.T) {
	t.Parallel()

	c, err := New[string](nil)
	require.ErrorIs(t, err, ErrEmpty)
	require.Nil(t, c)

	ci, err := New([]int{})
	require.ErrorIs(t, err, ErrEmpty)
	require.Nil(t, ci)
}

// TestController_WrapAround covers Previous from zero and a full Next cycle.
func TestController_WrapAround(t *testing.T) {
	t.Parallel()

	c, err := New(gallery())
	require.NoError(t, err)
	require.Equal(t, 6, c.Len())
	require.Equal(t, 0, c.Index())

	require.Equal(t, 5, c.Previous())
	require.Equal(t, "F", c.Current())

	for start := range c.Len() {
		require.NoError(t, c.JumpTo(start))

		for range c.Len() {
			c.Next()
		}

		require.Equal(t, start, c.Index())
	}
}

// TestController_JumpTo rejects out-of-range indices without touching the position.
func TestController_JumpTo(t *testing.T) {
	t.Parallel()

	c, err := New(gallery())
	require.NoError(t, err)

	require.NoError(t, c.JumpTo(4))
	require.Equal(t, "E", c.Current())

	for _, bad := range []int{-1, 6, 100} {
		require.ErrorIs(t, c.JumpTo(bad), ErrIndexOutOfRange)
		require.Equal(t, 4, c.Index())
	}
}

// TestController_VisibleWindow checks wrapping, repetition and degenerate sizes.
func TestController_VisibleWindow(t *testing.T) {
	t.Parallel()

	c, err := New(gallery())
	require.NoError(t, err)
	require.NoError(t, c.JumpTo(5))

	cases := []struct {
		size int
		want []string
	}{
		{size: 3, want: []string{"F", "A", "B"}},
		{size: 1, want: []string{"F"}},
		{size: 8, want: []string{"F", "A", "B", "C", "D", "E", "F", "A"}},
		{size: 0, want: []string{}},
		{size: -2, want: []string{}},
	}

	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, c.VisibleWindow(tc.size)); diff != "" {
			t.Errorf("VisibleWindow(%d) mismatch (-want +got):\n%s", tc.size, diff)
		}
	}
}

// TestController_GalleryScenario walks the gallery end to end with a window of three.
func TestController_GalleryScenario(t *testing.T) {
	t.Parallel()

	items := []string{"item0", "item1", "item2", "item3", "item4", "item5"}

	c, err := New(items)
	require.NoError(t, err)

	require.Equal(t, []string{"item0", "item1", "item2"}, c.VisibleWindow(3))

	for range 3 {
		c.Next()
	}

	require.Equal(t, 3, c.Index())
	require.Equal(t, []string{"item3", "item4", "item5"}, c.VisibleWindow(3))

	require.Equal(t, 4, c.Next())
	require.Equal(t, []string{"item4", "item5", "item0"}, c.VisibleWindow(3))
}

// TestController_SingleItem keeps a one-item slider pinned at zero.
func TestController_SingleItem(t *testing.T) {
	t.Parallel()

	c, err := New([]string{"only"})
	require.NoError(t, err)

	require.Equal(t, 0, c.Next())
	require.Equal(t, 0, c.Previous())
	require.Equal(t, []string{"only", "only"}, c.VisibleWindow(2))
}

// TestController_Isolation ensures the controller owns its own copy of the items.
func TestController_Isolation(t *testing.T) {
	t.Parallel()

	items := gallery()

	c, err := New(items)
	require.NoError(t, err)

	items[0] = "mutated"
	require.Equal(t, "A", c.Current())

	copied := c.Items()
	copied[1] = "mutated"
	require.Equal(t, "B", c.VisibleWindow(2)[1])
}

// TestController_Indicators marks exactly the current dot.
func TestController_Indicators(t *testing.T) {
	t.Parallel()

	c, err := New(gallery())
	require.NoError(t, err)

	c.Previous()
	require.Equal(t, []bool{false, false, false, false, false, true}, c.Indicators())
}

// TestSlideTransition is fixed regardless of navigation direction.
func TestSlideTransition(t *testing.T) {
	t.Parallel()

	tr := SlideTransition()
	require.Equal(t, Right, tr.EnterFrom)
	require.Equal(t, Left, tr.ExitTo)
	require.Equal(t, "right", tr.EnterFrom.String())
	require.Equal(t, "left", tr.ExitTo.String())
}
