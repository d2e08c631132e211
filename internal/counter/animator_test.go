package counter

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// gate is a manually opened Gate for tests.
type gate struct {
	ch   chan struct{}
	once sync.Once
}

func newGate() *gate {
	return &gate{ch: make(chan struct{})}
}

func (g *gate) Done() <-chan struct{} { return g.ch }

func (g *gate) open() { g.once.Do(func() { close(g.ch) }) }

// TestAnimator_Run emits every frame in order and ends in the terminal state.
func TestAnimator_Run(t *testing.T) {
	t.Parallel()

	a := New("1,200+", WithInterval(time.Millisecond))
	require.Equal(t, InitialDisplay, a.Display())
	require.Equal(t, RunState{}, a.State())
	require.Equal(t, 50*time.Millisecond, a.Duration())

	var frames []Frame

	require.NoError(t, a.Run(context.Background(), func(f Frame) {
		frames = append(frames, f)
	}))

	require.Len(t, frames, DefaultSteps)

	for _, f := range frames {
		require.True(t, strings.HasSuffix(f.Display, "+"))
	}

	require.Equal(t, RunState{CurrentValue: 1200, ProgressPercent: 100, IsComplete: true}, a.State())
	require.Equal(t, "1,200+", a.Display())

	// Terminal state is stable: further ticks and runs change nothing.
	_, ok := a.Tick()
	require.False(t, ok)
	require.NoError(t, a.Run(context.Background(), nil))
	require.Equal(t, "1,200+", a.Display())
}

// TestAnimator_Tick drives the animation manually with a custom step count.
func TestAnimator_Tick(t *testing.T) {
	t.Parallel()

	a := New("98%", WithSteps(4), WithSteps(-1), WithInterval(0))
	require.Equal(t, DefaultInterval, a.Duration()/4)

	var displays []string

	for {
		f, ok := a.Tick()
		if !ok {
			break
		}

		displays = append(displays, f.Display)
	}

	require.Equal(t, []string{"24%", "49%", "73%", "98%"}, displays)
	require.True(t, a.State().IsComplete)
}

// TestAnimator_Inert keeps a malformed statistic at its zero state forever.
func TestAnimator_Inert(t *testing.T) {
	t.Parallel()

	a := New("Award-winning", WithInterval(time.Millisecond))
	require.True(t, a.Inert())
	require.ErrorIs(t, a.Err(), ErrNoDigits)

	_, ok := a.Tick()
	require.False(t, ok)

	open := newGate()
	open.open()

	require.NoError(t, a.RunWhen(context.Background(), open, func(Frame) {
		require.Fail(t, "inert animator must not emit frames")
	}))

	require.Equal(t, RunState{}, a.State())
	require.Equal(t, InitialDisplay, a.Display())
}

// TestAnimator_ZeroTarget completes on its first tick.
func TestAnimator_ZeroTarget(t *testing.T) {
	t.Parallel()

	a := New("0%")

	f, ok := a.Tick()
	require.True(t, ok)
	require.True(t, f.Complete)
	require.Equal(t, RunState{CurrentValue: 0, ProgressPercent: 100, IsComplete: true}, a.State())
	require.Equal(t, "0%", a.Display())
}

// TestAnimator_StartWaitsForGate does not tick before the gate opens, then runs to completion.
func TestAnimator_StartWaitsForGate(t *testing.T) {
	t.Parallel()

	var (
		a    = New("15+", WithInterval(time.Millisecond))
		g    = newGate()
		done = make(chan struct{})
	)

	a.Start(context.Background(), g, func(f Frame) {
		if f.Complete {
			close(done)
		}
	})
	defer a.Stop()

	// A second Start is ignored.
	a.Start(context.Background(), g, nil)

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, InitialDisplay, a.Display())

	g.open()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.Fail(t, "animation did not complete")
	}

	require.Equal(t, "15+", a.Display())
}

// TestAnimator_StopCancelsPendingTicks verifies teardown before completion leaves no goroutine behind.
func TestAnimator_StopCancelsPendingTicks(t *testing.T) {
	t.Parallel()

	a := New("900+", WithInterval(time.Hour))
	a.Start(context.Background(), nil, nil)
	a.Stop()
	a.Stop()

	require.False(t, a.State().IsComplete)
	require.Equal(t, InitialDisplay, a.Display())

	// Stopping a never-started animator is a no-op.
	New("1+").Stop()
}

// TestAnimator_StopThenStart resumes a stopped animation from its last frame.
func TestAnimator_StopThenStart(t *testing.T) {
	t.Parallel()

	a := New("900+", WithSteps(1000), WithInterval(time.Millisecond))

	a.Start(context.Background(), nil, nil)
	require.Eventually(t, func() bool {
		return a.State().CurrentValue > 0
	}, 5*time.Second, time.Millisecond)
	a.Stop()

	paused := a.State()
	require.False(t, paused.IsComplete)

	a.Start(context.Background(), nil, nil)
	defer a.Stop()

	require.Eventually(t, func() bool {
		return a.State().IsComplete
	}, 10*time.Second, time.Millisecond)
	require.Equal(t, "900+", a.Display())
}

// TestAnimator_RunWhenCancelled returns the context error while waiting on a closed gate.
func TestAnimator_RunWhenCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New("5+").RunWhen(ctx, newGate(), nil)
	require.ErrorIs(t, err, context.Canceled)
}

// TestAnimator_RejectsConcurrentRun allows only one ticker per animator.
func TestAnimator_RejectsConcurrentRun(t *testing.T) {
	t.Parallel()

	var (
		a           = New("1,200+", WithInterval(time.Hour))
		ctx, cancel = context.WithCancel(context.Background())
		errs        = make(chan error, 1)
	)

	go func() {
		errs <- a.Run(ctx, nil)
	}()

	require.Eventually(t, func() bool {
		a.mu.Lock()
		defer a.mu.Unlock()

		return a.running
	}, time.Second, time.Millisecond)

	require.ErrorIs(t, a.Run(context.Background(), nil), errAlreadyRunning)

	cancel()
	require.ErrorIs(t, <-errs, context.Canceled)
}
