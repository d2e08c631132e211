package notify

import (
	"context"
	"sync"
	"time"

	"github.com/oshokin/landing-motion/internal/logger"
)

// DefaultToastTTL is how long a toast stays on screen.
const DefaultToastTTL = 3 * time.Second

// ConsultationReceived is the acknowledgement of a sent consultation form.
const ConsultationReceived = "Consultation request received! We'll contact you soon."

// Notifier delivers a user-facing acknowledgement. It never fails.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Toast keeps the latest message until it expires. It is safe for concurrent use.
type Toast struct {
	// ttl is how long a message stays visible.
	ttl time.Duration
	// now returns the current time; replaced in tests.
	now func() time.Time

	// mu guards message and expires.
	mu sync.Mutex
	// message is the latest notification text.
	message string
	// expires is when message stops being visible.
	expires time.Time
}

// NewToast creates a toast surface with the given lifetime.
// A non-positive ttl falls back to DefaultToastTTL.
func NewToast(ttl time.Duration) *Toast {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}

	return &Toast{
		ttl: ttl,
		now: time.Now,
	}
}

// Notify shows message, replacing any visible one.
func (t *Toast) Notify(ctx context.Context, message string) {
	t.mu.Lock()
	t.message = message
	t.expires = t.now().Add(t.ttl)
	t.mu.Unlock()

	logger.InfoKV(ctx, "Notification shown", "message", message)
}

// Current returns the visible message, if any.
func (t *Toast) Current() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.message == "" || !t.now().Before(t.expires) {
		return "", false
	}

	return t.message, true
}

// Fanout forwards every notification to all of its notifiers in order.
type Fanout []Notifier

// Notify implements Notifier.
func (f Fanout) Notify(ctx context.Context, message string) {
	for _, n := range f {
		if n != nil {
			n.Notify(ctx, message)
		}
	}
}
