package landing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestContentClone verifies that Clone returns a deep copy and handles nil safely.
func TestContentClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Content)(nil).Clone())

	c := &Content{
		Company: "Mr Adam Construction",
		Stats: []Stat{
			{Value: "1,200+", Label: "Projects Completed", Color: "#C5A572"},
		},
		Projects: []Project{
			{Title: "Modern Villa Estate", Category: "Residential"},
		},
		Testimonials: []Testimonial{
			{Name: "Sarah Johnson", Rating: 5, Initials: "SJ"},
		},
		Budgets: []string{"Under $50,000"},
	}

	cloned := c.Clone()
	require.Equal(t, c, cloned)
	require.NotSame(t, c, cloned)

	// Ensure slices are not shared.
	cloned.Stats[0].Value = "0"
	cloned.Projects[0].Title = "changed"
	cloned.Testimonials[0].Rating = 1
	cloned.Budgets[0] = "changed"

	require.Equal(t, "1,200+", c.Stats[0].Value)
	require.Equal(t, "Modern Villa Estate", c.Projects[0].Title)
	require.Equal(t, 5, c.Testimonials[0].Rating)
	require.Equal(t, "Under $50,000", c.Budgets[0])
}

// TestSessionClone verifies that Clone copies every field and handles nil safely.
func TestSessionClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Session)(nil).Clone())

	s := &Session{
		ID:               "b7f4",
		SavedAt:          time.Unix(100, 0).UTC(),
		GalleryIndex:     3,
		TestimonialIndex: 1,
		ScrollOffset:     42,
	}

	c := s.Clone()
	require.Equal(t, s, c)
	require.NotSame(t, s, c)
}
