package counter

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oshokin/landing-motion/internal/logger"
)

// InitialDisplay is shown before the first tick and forever by inert animators.
const InitialDisplay = "0"

// Gate releases an animator. visibility.Trigger satisfies it.
type Gate interface {
	Done() <-chan struct{}
}

// RunState is the observable state of an animator.
type RunState struct {
	// CurrentValue is the last emitted value.
	CurrentValue int64
	// ProgressPercent is the last emitted progress.
	ProgressPercent float64
	// IsComplete is set once the target has been emitted.
	IsComplete bool
}

// Option configures an Animator.
type Option func(*Animator)

// WithSteps overrides the number of ticks. Non-positive values are ignored.
func WithSteps(steps int) Option {
	return func(a *Animator) {
		if steps > 0 {
			a.steps = steps
		}
	}
}

// WithInterval overrides the delay between ticks. Non-positive values are ignored.
func WithInterval(interval time.Duration) Option {
	return func(a *Animator) {
		if interval > 0 {
			a.interval = interval
		}
	}
}

// errAlreadyRunning is returned when Run is called while another Run is active.
var errAlreadyRunning = errors.New("counter animation is already running")

// Animator drives one statistic from zero to its target.
// Ticks of one animator never overlap; state reads are safe from any goroutine.
type Animator struct {
	// display is the raw statistic string, kept for logs.
	display string
	// spec is the parsed statistic; zero when parsing failed.
	spec Spec
	// parseErr is the parse failure that made the animator inert.
	parseErr error
	// steps is the number of ticks of a full run.
	steps int
	// interval is the delay between ticks.
	interval time.Duration

	// mu guards every field below.
	mu sync.Mutex
	// step is the number of ticks already emitted.
	step int
	// state is the last emitted run state.
	state RunState
	// display of the last emitted frame.
	current string
	// running is set while Run owns the ticker.
	running bool
	// cancel stops the goroutine started by Start.
	cancel context.CancelFunc
	// stopped is closed when the goroutine started by Start exits.
	stopped chan struct{}
}

// New creates an animator for a display string such as "1,200+".
// A string without a leading number yields an inert animator that keeps its zero
// state forever; Err reports why.
func New(display string, opts ...Option) *Animator {
	spec, err := Parse(display)

	a := &Animator{
		display:  display,
		spec:     spec,
		parseErr: err,
		steps:    DefaultSteps,
		interval: DefaultInterval,
		current:  InitialDisplay,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Spec returns the parsed statistic.
func (a *Animator) Spec() Spec {
	return a.spec
}

// Err returns the parse failure of an inert animator, or nil.
func (a *Animator) Err() error {
	return a.parseErr
}

// Inert reports whether the animator will never leave its zero state.
func (a *Animator) Inert() bool {
	return a.parseErr != nil
}

// Duration is the wall-clock length of a full run.
func (a *Animator) Duration() time.Duration {
	return time.Duration(a.steps) * a.interval
}

// State returns the last emitted run state.
func (a *Animator) State() RunState {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.state
}

// Display returns the text of the last emitted frame.
func (a *Animator) Display() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.current
}

// Tick advances the animation by one step and returns the emitted frame.
// It returns false once the run is complete or when the animator is inert.
func (a *Animator) Tick() (Frame, bool) {
	if a.Inert() {
		return Frame{}, false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state.IsComplete {
		return Frame{}, false
	}

	a.step++
	frame := a.spec.FrameAt(a.step, a.steps)

	a.state = RunState{
		CurrentValue:    frame.Value,
		ProgressPercent: frame.Progress,
		IsComplete:      frame.Complete,
	}
	a.current = frame.Display

	return frame, true
}

// Run ticks the animation on its interval until it completes or ctx is done.
// onFrame, if set, is called synchronously after every tick. An inert or
// completed animator returns nil immediately.
func (a *Animator) Run(ctx context.Context, onFrame func(Frame)) error {
	return a.RunWhen(ctx, nil, onFrame)
}

// RunWhen waits for gate to open and then behaves like Run. A nil gate is open.
// Once released the run is not interrupted by anything except ctx.
func (a *Animator) RunWhen(ctx context.Context, gate Gate, onFrame func(Frame)) error {
	if a.Inert() {
		logger.DebugKV(ctx, "Counter is inert", "display", a.display, "error", a.parseErr)

		return nil
	}

	if gate != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-gate.Done():
		}
	}

	a.mu.Lock()
	if a.running {
		a.mu.Unlock()

		return errAlreadyRunning
	}

	a.running = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.running = false
		a.mu.Unlock()
	}()

	logger.DebugKV(ctx, "Counter started", "display", a.display, "target", a.spec.Target)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			frame, ok := a.Tick()
			if !ok {
				return nil
			}

			if onFrame != nil {
				onFrame(frame)
			}

			if frame.Complete {
				logger.DebugKV(ctx, "Counter completed", "display", frame.Display, "steps", frame.Step)

				return nil
			}
		}
	}
}

// Start runs the animation in the background once gate opens.
// Calling Start on an animator that is already started is a no-op.
func (a *Animator) Start(ctx context.Context, gate Gate, onFrame func(Frame)) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})

	a.cancel = cancel
	a.stopped = stopped

	go func() {
		defer close(stopped)

		if err := a.RunWhen(runCtx, gate, onFrame); err != nil && !errors.Is(err, context.Canceled) {
			logger.WarnKV(runCtx, "Counter stopped", "display", a.display, "error", err)
		}
	}()
}

// Stop cancels pending ticks and waits for the background run to exit.
// It is safe to call on an animator that was never started. A stopped animator
// can be started again and resumes from its last frame.
func (a *Animator) Stop() {
	a.mu.Lock()
	cancel, stopped := a.cancel, a.stopped
	a.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-stopped

	a.mu.Lock()
	if a.stopped == stopped {
		a.cancel, a.stopped = nil, nil
	}
	a.mu.Unlock()
}
