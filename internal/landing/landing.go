package landing

import (
	"context"
	"errors"
	"time"

	"github.com/oshokin/landing-motion/internal/counter"
	domain "github.com/oshokin/landing-motion/internal/domain/landing"
	"github.com/oshokin/landing-motion/internal/notify"
)

// Options tune the assembled page.
type Options struct {
	// CounterSteps overrides counter.DefaultSteps when positive.
	CounterSteps int
	// TickInterval overrides counter.DefaultInterval when positive.
	TickInterval time.Duration
	// Ring is the stat ring geometry; zero uses counter.DefaultRing.
	Ring counter.Ring
	// GalleryWindow is the number of gallery cards shown at once.
	GalleryWindow int
	// Notifier receives consultation acknowledgements.
	Notifier notify.Notifier
}

// Landing is the assembled page with typed access to every section.
type Landing struct {
	*Page

	Hero         *Hero
	Stats        *Stats
	Services     *Services
	Gallery      *Gallery
	Testimonials *Testimonials
	CTA          *CTA
	Footer       *Footer
}

// DefaultGalleryWindow is used when Options.GalleryWindow is not positive.
const DefaultGalleryWindow = 3

var errContentIsNotSet = errors.New("landing content is not set")

// New assembles the page from content.
func New(content *domain.Content, opts Options) (*Landing, error) {
	if content == nil {
		return nil, errContentIsNotSet
	}

	var counterOpts []counter.Option
	if opts.CounterSteps > 0 {
		counterOpts = append(counterOpts, counter.WithSteps(opts.CounterSteps))
	}

	if opts.TickInterval > 0 {
		counterOpts = append(counterOpts, counter.WithInterval(opts.TickInterval))
	}

	var ring *counter.Ring
	if opts.Ring != (counter.Ring{}) {
		ring = &opts.Ring
	}

	window := opts.GalleryWindow
	if window <= 0 {
		window = DefaultGalleryWindow
	}

	gallery, err := NewGallery(content.Projects, window)
	if err != nil {
		return nil, err
	}

	testimonials, err := NewTestimonials(content.Testimonials, content.Highlights)
	if err != nil {
		return nil, err
	}

	l := &Landing{
		Hero:         NewHero(content.Hero),
		Stats:        NewStats(content.Stats, ring, counterOpts...),
		Services:     NewServices(content.Services),
		Gallery:      gallery,
		Testimonials: testimonials,
		CTA:          NewCTA(content.Budgets, opts.Notifier),
		Footer:       NewFooter(content.Company, content.Contact),
	}

	l.Page = NewPage(l.Hero, l.Stats, l.Services, l.Gallery, l.Testimonials, l.CTA, l.Footer)

	return l, nil
}

// Mount starts the page's background work.
func (l *Landing) Mount(ctx context.Context) {
	l.Stats.Mount(ctx)
}

// Unmount stops the page's background work and waits for it.
func (l *Landing) Unmount() {
	l.Stats.Unmount()
}

// Consultation submits the consultation form.
func (l *Landing) Consultation(ctx context.Context, now time.Time) {
	l.CTA.Submit(ctx, now)
}
