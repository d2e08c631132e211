package preview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/oshokin/landing-motion/internal/domain/landing"
	"github.com/oshokin/landing-motion/internal/landing"
	"github.com/oshokin/landing-motion/internal/logger"
	"github.com/oshokin/landing-motion/internal/repository/snapshot"
)

// loadSession returns the saved session or a fresh one. An unreadable snapshot
// is logged and replaced rather than blocking the preview.
func loadSession(ctx context.Context, repo snapshot.Repository) *domain.Session {
	fresh := &domain.Session{ID: uuid.NewString()}

	if repo == nil {
		return fresh
	}

	session, err := repo.Load(ctx)

	switch {
	case err == nil && session != nil:
		if session.ID == "" {
			session.ID = fresh.ID
		}

		return session
	case err == nil, errors.Is(err, snapshot.ErrNotFound):
		// Keep the fresh session.
	default:
		logger.WarnKV(ctx, "Session snapshot ignored", "error", err)
	}

	return fresh
}

// restoreSession moves the carousels to the saved positions and returns the
// saved scroll offset. Positions that no longer exist are skipped.
func restoreSession(ctx context.Context, page *landing.Landing, session *domain.Session, now time.Time) int {
	if session.GalleryIndex != 0 {
		if err := page.Gallery.JumpTo(ctx, now, session.GalleryIndex); err != nil {
			logger.WarnKV(ctx, "Saved gallery position skipped", "index", session.GalleryIndex, "error", err)
		}
	}

	if session.TestimonialIndex != 0 {
		if err := page.Testimonials.JumpTo(ctx, now, session.TestimonialIndex); err != nil {
			logger.WarnKV(ctx, "Saved testimonial position skipped", "index", session.TestimonialIndex, "error", err)
		}
	}

	return max(session.ScrollOffset, 0)
}

// saveSession records the current positions.
func saveSession(
	ctx context.Context,
	repo snapshot.Repository,
	session *domain.Session,
	page *landing.Landing,
	offset int,
	now time.Time,
) error {
	session.SavedAt = now
	session.GalleryIndex = page.Gallery.Index()
	session.TestimonialIndex = page.Testimonials.Index()
	session.ScrollOffset = offset

	if repo == nil {
		return nil
	}

	if err := repo.Save(ctx, session.Clone()); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	logger.DebugKV(ctx, "Session saved",
		"session_id", session.ID,
		"gallery_index", session.GalleryIndex,
		"testimonial_index", session.TestimonialIndex,
		"scroll_offset", session.ScrollOffset,
	)

	return nil
}
