package counter

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParse covers suffix preservation, separators and malformed input.
func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		display string
		target  int64
		suffix  string
	}{
		{display: "1,200+", target: 1200, suffix: "+"},
		{display: "98%", target: 98, suffix: "%"},
		{display: "900+", target: 900, suffix: "+"},
		{display: "15+", target: 15, suffix: "+"},
		{display: "2,000+", target: 2000, suffix: "+"},
		{display: "42", target: 42, suffix: ""},
		{display: " 7 days ", target: 7, suffix: " days"},
		{display: "4.9/5", target: 4, suffix: ".9/5"},
		{display: "0", target: 0, suffix: ""},
	}

	for _, tc := range cases {
		spec, err := Parse(tc.display)
		require.NoError(t, err, tc.display)
		require.Equal(t, tc.target, spec.Target, tc.display)
		require.Equal(t, tc.suffix, spec.Suffix, tc.display)
	}
}

// TestParse_Failures verifies inputs without a leading magnitude are rejected.
func TestParse_Failures(t *testing.T) {
	t.Parallel()

	_, err := Parse("")
	require.ErrorIs(t, err, errEmptyDisplay)

	for _, display := range []string{"N/A", "+100", "$5M", ",,,"} {
		_, err = Parse(display)
		require.ErrorIs(t, err, ErrNoDigits, display)
	}

	_, err = Parse("99,999,999,999,999,999,999+")
	require.ErrorIs(t, err, strconv.ErrRange)
}

// TestGroup checks thousands grouping for a range of magnitudes.
func TestGroup(t *testing.T) {
	t.Parallel()

	cases := map[int64]string{
		0:       "0",
		7:       "7",
		999:     "999",
		1000:    "1,000",
		1200:    "1,200",
		100000:  "100,000",
		1234567: "1,234,567",
		-1234:   "-1,234",
	}

	for value, want := range cases {
		require.Equal(t, want, Group(value))
	}
}

// TestSpec_Format appends the suffix after grouping.
func TestSpec_Format(t *testing.T) {
	t.Parallel()

	spec := Spec{Target: 1200, Suffix: "+"}
	require.Equal(t, "1,200+", spec.Format(1200))
	require.Equal(t, "24+", spec.Format(24))
}
