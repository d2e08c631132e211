package landing

import (
	"context"
	"sync"

	"github.com/oshokin/landing-motion/internal/counter"
	domain "github.com/oshokin/landing-motion/internal/domain/landing"
	"github.com/oshokin/landing-motion/internal/logger"
	"github.com/oshokin/landing-motion/internal/motion"
)

const (
	statCardOffset = headingRows + 1
	statCardRows   = 9
)

// Stat is one statistic card: a counter gated on its own trigger, drawn with a ring.
type Stat struct {
	// Stat is the card copy.
	Stat domain.Stat
	// Card reveals the card and releases the counter.
	Card *Element
	// Animator drives the displayed number.
	Animator *counter.Animator
	// Ring is the circular progress geometry.
	Ring counter.Ring
}

// Progress returns the ring fill in percent.
func (s *Stat) Progress() float64 {
	return s.Animator.State().ProgressPercent
}

// Stats is the statistics block. Every card counts independently once it is
// half visible.
type Stats struct {
	// Heading reveals the section title.
	Heading *Element
	// Items are the statistic cards in layout order.
	Items []*Stat

	// mu guards mounted.
	mu sync.Mutex
	// mounted is set between Mount and Unmount.
	mounted bool
}

// NewStats builds the statistics section. A nil ring uses counter.DefaultRing.
func NewStats(stats []domain.Stat, ring *counter.Ring, opts ...counter.Option) *Stats {
	geometry := counter.DefaultRing
	if ring != nil {
		geometry = *ring
	}

	s := &Stats{
		Heading: newElement("stats heading", 0, headingRows, headingThreshold, motion.FadeUp()),
		Items:   make([]*Stat, 0, len(stats)),
	}

	for i, stat := range stats {
		s.Items = append(s.Items, &Stat{
			Stat: stat,
			Card: newElement("stat "+stat.Label, statCardOffset, statCardRows, statThreshold,
				motion.StatEntry(motion.Stagger(0, motion.StaggerStep, i))),
			Animator: counter.New(stat.Value, opts...),
			Ring:     geometry,
		})
	}

	return s
}

// Kind implements Section.
func (s *Stats) Kind() Kind { return KindStats }

// Height implements Section.
func (s *Stats) Height() int { return statCardOffset + statCardRows }

// Elements implements Section.
func (s *Stats) Elements() []*Element {
	elements := make([]*Element, 0, len(s.Items)+1)
	elements = append(elements, s.Heading)

	for _, item := range s.Items {
		elements = append(elements, item.Card)
	}

	return elements
}

// Mount starts every counter. Each one waits for its own card to be revealed.
// Mounting twice is a no-op.
func (s *Stats) Mount(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mounted {
		return
	}

	for _, item := range s.Items {
		item.Animator.Start(ctx, item.Card.Trigger(), nil)
	}

	s.mounted = true

	logger.DebugKV(ctx, "Stats mounted", "counters", len(s.Items))
}

// Unmount cancels pending ticks and waits for every counter to stop.
// Completed counters keep their final values.
func (s *Stats) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mounted {
		return
	}

	for _, item := range s.Items {
		item.Animator.Stop()
	}

	s.mounted = false
}
