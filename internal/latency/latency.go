// Package latency simulates slow collaborators ("network calls", device warm-up)
// without hard-coding real sleeps into the demos.
//
// A Simulator scales every requested delay by a factor:
//   - 1 plays the demos at the speed the narrative describes
//   - 0 (the zero value) turns every delay into a no-op, which is what tests use
package latency

import (
	"context"
	"time"
)

// Simulator waits for scaled durations. The zero value never waits.
type Simulator struct {
	scale float64
}

// None is a Simulator that never waits.
var None = Simulator{}

// Real waits exactly as long as requested.
var Real = Simulator{scale: 1}

// New returns a Simulator that multiplies every delay by scale.
// Negative scales are treated as zero.
func New(scale float64) Simulator {
	if scale < 0 {
		scale = 0
	}
	return Simulator{scale: scale}
}

// Scale reports the configured factor.
func (s Simulator) Scale() float64 { return s.scale }

// Scaled returns d multiplied by the factor.
func (s Simulator) Scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * s.scale)
}

// Wait blocks for the scaled duration or until ctx is done, whichever comes first.
// It returns ctx.Err() when the context ends the wait.
func (s Simulator) Wait(ctx context.Context, d time.Duration) error {
	scaled := s.Scaled(d)
	if scaled <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(scaled)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
