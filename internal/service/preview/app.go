package preview

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/oshokin/landing-motion/internal/config"
	"github.com/oshokin/landing-motion/internal/counter"
	domain "github.com/oshokin/landing-motion/internal/domain/landing"
	"github.com/oshokin/landing-motion/internal/landing"
	"github.com/oshokin/landing-motion/internal/logger"
	"github.com/oshokin/landing-motion/internal/notify"
	"github.com/oshokin/landing-motion/internal/repository/snapshot"
)

const (
	// eventBuffer is the capacity of the terminal event queue.
	eventBuffer = 64
	// statusRows is the number of rows reserved for the status line.
	statusRows = 1
)

// appConfig holds the dependencies of the preview.
type appConfig struct {
	screen   tcell.Screen
	settings *config.Config
	content  *domain.Content
	repo     snapshot.Repository
	toast    *notify.Toast
	notifier notify.Notifier
}

// app is the terminal preview. All fields are owned by the goroutine in run.
type app struct {
	// screen is the terminal surface.
	screen tcell.Screen
	// settings are the resolved preview settings.
	settings *config.Config
	// repo keeps the session between runs.
	repo snapshot.Repository
	// toast shows acknowledgements on the status line.
	toast *notify.Toast
	// notifier receives consultation acknowledgements.
	notifier notify.Notifier
	// page is the landing page being previewed.
	page *landing.Landing
	// session is the reader's position.
	session *domain.Session
	// offset is the first visible row of the page.
	offset int
	// reloads delivers new content revisions from the watcher.
	reloads chan *domain.Content
	// now returns the current time; replaced in tests.
	now func() time.Time
}

// newApp builds the page, restores the saved session and starts the counters.
func newApp(ctx context.Context, cfg *appConfig) (*app, error) {
	a := &app{
		screen:   cfg.screen,
		settings: cfg.settings,
		repo:     cfg.repo,
		toast:    cfg.toast,
		notifier: cfg.notifier,
		reloads:  make(chan *domain.Content),
		now:      time.Now,
	}

	if a.toast == nil {
		a.toast = notify.NewToast(notify.DefaultToastTTL)
	}

	if a.notifier == nil {
		a.notifier = a.toast
	}

	page, err := a.build(cfg.content)
	if err != nil {
		return nil, err
	}

	a.page = page
	a.session = loadSession(ctx, a.repo)
	a.offset = restoreSession(ctx, a.page, a.session, a.now())

	a.page.Mount(ctx)

	return a, nil
}

// build assembles a landing page from content with the current settings.
func (a *app) build(c *domain.Content) (*landing.Landing, error) {
	return landing.New(c, landing.Options{
		CounterSteps: a.settings.Counter.Steps,
		TickInterval: a.settings.Counter.TickInterval,
		Ring: counter.Ring{
			Diameter:    a.settings.Ring.Diameter,
			StrokeWidth: a.settings.Ring.StrokeWidth,
		},
		GalleryWindow: a.settings.Gallery.WindowSize,
		Notifier:      a.notifier,
	})
}

// run draws frames and handles input until the reader quits or ctx is done.
func (a *app) run(ctx context.Context) error {
	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})

	defer close(done)

	go a.pollEvents(events, done)

	ticker := time.NewTicker(a.settings.FrameInterval)
	defer ticker.Stop()

	a.scroll(ctx, 0)
	a.draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.handleEvent(ctx, ev) {
				return nil
			}

			a.draw()
		case c := <-a.reloads:
			a.reload(ctx, c)
			a.draw()
		case <-ticker.C:
			a.draw()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized or run exits.
func (a *app) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent reacts to one terminal event and reports whether to keep running.
func (a *app) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
		a.scroll(ctx, 0)
	}

	return true
}

// handleKey applies one key press and reports whether to keep running.
func (a *app) handleKey(ctx context.Context, key tcell.Key, r rune) bool {
	now := a.now()
	page := a.viewHeight()

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.scroll(ctx, -1)
	case tcell.KeyDown:
		a.scroll(ctx, 1)
	case tcell.KeyPgUp:
		a.scroll(ctx, -page)
	case tcell.KeyPgDn:
		a.scroll(ctx, page)
	case tcell.KeyHome:
		a.scroll(ctx, -a.page.Height())
	case tcell.KeyEnd:
		a.scroll(ctx, a.page.Height())
	case tcell.KeyLeft:
		a.page.Gallery.Previous(ctx, now)
	case tcell.KeyRight:
		a.page.Gallery.Next(ctx, now)
	case tcell.KeyRune:
		return a.handleRune(ctx, r, now)
	}

	return true
}

// handleRune applies one printable key and reports whether to keep running.
func (a *app) handleRune(ctx context.Context, r rune, now time.Time) bool {
	switch {
	case r == 'q':
		return false
	case r == 'j':
		a.scroll(ctx, 1)
	case r == 'k':
		a.scroll(ctx, -1)
	case r == ',':
		a.page.Testimonials.Previous(ctx, now)
	case r == '.':
		a.page.Testimonials.Next(ctx, now)
	case r == 'c':
		a.page.Consultation(ctx, now)
	case r >= '1' && r <= '9':
		if err := a.page.Gallery.JumpTo(ctx, now, int(r-'1')); err != nil {
			logger.DebugKV(ctx, "Gallery jump ignored", "key", string(r), "error", err)
		}
	}

	return true
}

// scroll moves the viewport by delta rows and reveals what came into view.
func (a *app) scroll(ctx context.Context, delta int) {
	height := a.viewHeight()

	a.offset = a.page.ClampOffset(a.offset+delta, height)
	a.page.Scroll(ctx, a.now(), a.offset, height)
}

// viewHeight is the number of rows available to the page.
func (a *app) viewHeight() int {
	_, height := a.screen.Size()

	return max(height-statusRows, 1)
}

// reload swaps the page for a new content revision, keeping the reader's position.
func (a *app) reload(ctx context.Context, c *domain.Content) {
	page, err := a.build(c)
	if err != nil {
		logger.WarnKV(ctx, "Content revision rejected", "error", err)

		return
	}

	now := a.now()

	// Positions past the end of the new content fall back to the last item.
	_ = page.Gallery.JumpTo(ctx, now, min(a.page.Gallery.Index(), page.Gallery.Len()-1))
	_ = page.Testimonials.JumpTo(ctx, now, min(a.page.Testimonials.Index(), page.Testimonials.Len()-1))

	a.page.Unmount()

	a.page = page
	a.page.Mount(ctx)
	a.scroll(ctx, 0)

	a.toast.Notify(ctx, "Content reloaded")
}

// close stops the counters and saves the session.
func (a *app) close(ctx context.Context) error {
	a.page.Unmount()

	return saveSession(ctx, a.repo, a.session, a.page, a.offset, a.now())
}
