package landing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oshokin/landing-motion/internal/carousel"
	domain "github.com/oshokin/landing-motion/internal/domain/landing"
	"github.com/oshokin/landing-motion/internal/logger"
	"github.com/oshokin/landing-motion/internal/motion"
)

const (
	galleryCardOffset = headingRows + 1
	galleryCardRows   = 7
	galleryNavOffset  = galleryCardOffset + galleryCardRows + 1
	galleryNavRows    = 2
)

// Gallery is the project carousel showing a window of consecutive cards.
type Gallery struct {
	// Heading reveals the section title and the carousel.
	Heading *Element

	// slider holds the current project.
	slider *carousel.Controller[domain.Project]
	// window is the number of cards shown at once.
	window int

	// mu guards changedAt.
	mu sync.Mutex
	// changedAt is when the window last moved; cards replay their entry from it.
	changedAt time.Time
}

// NewGallery builds the gallery. It fails when there are no projects.
func NewGallery(projects []domain.Project, window int) (*Gallery, error) {
	slider, err := carousel.New(projects)
	if err != nil {
		return nil, fmt.Errorf("gallery: %w", err)
	}

	return &Gallery{
		Heading: newElement("gallery", 0, headingRows, headingThreshold, motion.FadeUp()),
		slider:  slider,
		window:  window,
	}, nil
}

// Kind implements Section.
func (g *Gallery) Kind() Kind { return KindGallery }

// Height implements Section.
func (g *Gallery) Height() int { return galleryNavOffset + galleryNavRows }

// Elements implements Section.
func (g *Gallery) Elements() []*Element { return []*Element{g.Heading} }

// CardOffset is the first row of the cards relative to the section.
func (g *Gallery) CardOffset() int { return galleryCardOffset }

// NavOffset is the first row of the arrows and indicators relative to the section.
func (g *Gallery) NavOffset() int { return galleryNavOffset }

// Index returns the current project index.
func (g *Gallery) Index() int { return g.slider.Index() }

// Len returns the number of projects.
func (g *Gallery) Len() int { return g.slider.Len() }

// Window returns the visible projects starting at the current one.
func (g *Gallery) Window() []domain.Project {
	return g.slider.VisibleWindow(g.window)
}

// Indicators marks the current project among all of them.
func (g *Gallery) Indicators() []bool {
	return g.slider.Indicators()
}

// Next moves to the following project.
func (g *Gallery) Next(ctx context.Context, now time.Time) int {
	return g.moved(ctx, now, g.slider.Next())
}

// Previous moves to the preceding project.
func (g *Gallery) Previous(ctx context.Context, now time.Time) int {
	return g.moved(ctx, now, g.slider.Previous())
}

// JumpTo selects project i. Out of range indices are rejected.
func (g *Gallery) JumpTo(ctx context.Context, now time.Time, i int) error {
	if err := g.slider.JumpTo(i); err != nil {
		return fmt.Errorf("gallery: %w", err)
	}

	g.moved(ctx, now, i)

	return nil
}

// CardPose samples the entry of the i-th visible card. Cards follow the heading
// until the window moves after the reveal.
func (g *Gallery) CardPose(now time.Time, i int) motion.Pose {
	g.mu.Lock()
	changedAt := g.changedAt
	g.mu.Unlock()

	revealedAt := g.Heading.RevealedAt()
	if revealedAt.IsZero() || changedAt.Before(revealedAt) {
		return g.Heading.Pose(now)
	}

	return motion.SlideIn(motion.Stagger(0, motion.StaggerStep, i)).At(now.Sub(changedAt))
}

func (g *Gallery) moved(ctx context.Context, now time.Time, index int) int {
	g.mu.Lock()
	g.changedAt = now
	g.mu.Unlock()

	logger.DebugKV(ctx, "Gallery moved", "index", index)

	return index
}
