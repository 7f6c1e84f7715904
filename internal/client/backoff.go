// ABOUTME: Exponential backoff with proportional jitter for reconnect loops
// ABOUTME: Doubles per failure up to a cap, resets on success

package client

import (
	"context"
	"math/rand/v2"
	"time"
)

const (
	defaultInitialBackoff = 1 * time.Second
	defaultMaxBackoff     = 60 * time.Second
)

// Backoff computes reconnect delays: Initial, doubling per call, capped at
// Max, with +-25% jitter so a fleet of agents does not reconnect in
// lockstep. The zero value uses the defaults. Not safe for concurrent use;
// each reconnect loop owns its own.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration

	current time.Duration
}

// Next returns the delay to sleep before the next attempt and advances the
// sequence.
func (b *Backoff) Next() time.Duration {
	initial, max := b.Initial, b.Max
	if initial <= 0 {
		initial = defaultInitialBackoff
	}
	if max <= 0 {
		max = defaultMaxBackoff
	}

	if b.current == 0 {
		b.current = initial
	} else {
		b.current *= 2
		if b.current > max {
			b.current = max
		}
	}

	return jitter(b.current)
}

// Reset restarts the sequence after a successful attempt.
func (b *Backoff) Reset() {
	b.current = 0
}

// jitter spreads d over [0.75d, 1.25d).
func jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return d
	}
	return d - d/4 + time.Duration(rand.Int64N(int64(d)/2))
}

// sleep waits for d or until ctx is done, reporting whether the full wait
// elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
