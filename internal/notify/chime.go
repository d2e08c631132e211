package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/oshokin/landing-motion/internal/logger"
)

const (
	// chimeSampleRate is the speaker sample rate.
	chimeSampleRate = beep.SampleRate(44100)
	// chimeNote is the length of each of the two notes.
	chimeNote = 90 * time.Millisecond
	// chimeLow and chimeHigh are the two notes of the chime (A5, E6).
	chimeLow  = 880.0
	chimeHigh = 1318.5
)

// Chime plays a short two-note tone for every notification.
type Chime struct {
	// sampleRate is the rate the tones are generated at.
	sampleRate beep.SampleRate
	// play hands a streamer to the audio device.
	play func(beep.Streamer)
	// closeFn releases the audio device.
	closeFn func()
}

// NewChime opens the default audio device. Failing to open it is not fatal for
// callers: they can keep notifying through the toast alone.
func NewChime() (*Chime, error) {
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	return &Chime{
		sampleRate: chimeSampleRate,
		play: func(s beep.Streamer) {
			speaker.Play(s)
		},
		closeFn: speaker.Close,
	}, nil
}

// Notify implements Notifier by playing the chime.
func (c *Chime) Notify(ctx context.Context, _ string) {
	tone, err := c.tone()
	if err != nil {
		logger.WarnKV(ctx, "Chime skipped", "error", err)

		return
	}

	c.play(tone)
}

// Close releases the audio device.
func (c *Chime) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}

// tone builds the two-note streamer.
func (c *Chime) tone() (beep.Streamer, error) {
	low, err := generators.SineTone(c.sampleRate, chimeLow)
	if err != nil {
		return nil, fmt.Errorf("low note: %w", err)
	}

	high, err := generators.SineTone(c.sampleRate, chimeHigh)
	if err != nil {
		return nil, fmt.Errorf("high note: %w", err)
	}

	n := c.sampleRate.N(chimeNote)

	return beep.Seq(beep.Take(n, low), beep.Take(n, high)), nil
}
