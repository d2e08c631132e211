package motion

import (
	"math"
	"time"
)

// Easing maps linear time progress in [0, 1] to animation progress.
type Easing int

const (
	// Linear progresses at a constant rate.
	Linear Easing = iota
	// EaseOut decelerates towards the end (cubic).
	EaseOut
	// EaseInOut accelerates and then decelerates (cubic).
	EaseInOut
)

// Apply evaluates the easing curve at t, clamped to [0, 1].
func (e Easing) Apply(t float64) float64 {
	t = clamp01(t)

	switch e {
	case EaseOut:
		return 1 - math.Pow(1-t, 3)
	case EaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}

		return 1 - math.Pow(-2*t+2, 3)/2
	default:
		return t
	}
}

// Pose is a snapshot of the animated properties of an element.
type Pose struct {
	// Opacity is in [0, 1].
	Opacity float64
	// OffsetX is the horizontal displacement in layout units.
	OffsetX float64
	// OffsetY is the vertical displacement in layout units.
	OffsetY float64
	// Scale is the size factor, 1 being natural size.
	Scale float64
}

// Rest is the natural pose every entry animation ends in.
//
//nolint:gochecknoglobals // Immutable pose constant.
var Rest = Pose{Opacity: 1, Scale: 1}

// Lerp interpolates between p and q at progress t.
func (p Pose) Lerp(q Pose, t float64) Pose {
	return Pose{
		Opacity: lerp(p.Opacity, q.Opacity, t),
		OffsetX: lerp(p.OffsetX, q.OffsetX, t),
		OffsetY: lerp(p.OffsetY, q.OffsetY, t),
		Scale:   lerp(p.Scale, q.Scale, t),
	}
}

// Descriptor is one declarative animation timeline.
type Descriptor struct {
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing
	From     Pose
	To       Pose
}

// WithDelay returns a copy of d starting after delay.
func (d Descriptor) WithDelay(delay time.Duration) Descriptor {
	d.Delay = delay

	return d
}

// Total is the time from the animation's start signal to its final pose.
func (d Descriptor) Total() time.Duration {
	return d.Delay + d.Duration
}

// Progress returns the eased progress at elapsed time since the start signal.
func (d Descriptor) Progress(elapsed time.Duration) float64 {
	if elapsed <= d.Delay {
		return 0
	}

	if d.Duration <= 0 || elapsed >= d.Total() {
		return 1
	}

	return d.Easing.Apply(float64(elapsed-d.Delay) / float64(d.Duration))
}

// At samples the pose at elapsed time since the start signal.
func (d Descriptor) At(elapsed time.Duration) Pose {
	return d.From.Lerp(d.To, d.Progress(elapsed))
}

// Done reports whether the final pose has been reached.
func (d Descriptor) Done(elapsed time.Duration) bool {
	return elapsed >= d.Total()
}

// Stagger returns base + step*index, the delay of the index-th sibling.
func Stagger(base, step time.Duration, index int) time.Duration {
	return base + step*time.Duration(index)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
