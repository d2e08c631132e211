package landing

import "time"

// Session is the reader's position on the page, restored between preview runs.
type Session struct {
	// ID identifies the preview session that saved the position.
	ID string
	// SavedAt is when the position was last saved.
	SavedAt time.Time
	// GalleryIndex is the current index of the project gallery.
	GalleryIndex int
	// TestimonialIndex is the current index of the testimonial slider.
	TestimonialIndex int
	// ScrollOffset is the first visible row of the page.
	ScrollOffset int
}

// Clone returns a copy of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	cloned := *s

	return &cloned
}
