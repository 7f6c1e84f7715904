// ABOUTME: Background sweep demoting silent agents to unknown_status
// ABOUTME: Demotions are batched into a single forced broadcast per sweep

package liveness

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/roostlabs/roost/internal/status"
)

const (
	DefaultInterval = 60 * time.Second
	DefaultGrace    = 90 * time.Second
)

// Notifier receives the forced broadcast after a sweep that demoted agents.
type Notifier interface {
	NotifyChanged(isFullUpdate bool)
}

// Checker periodically demotes agents whose last_seen has exceeded the grace
// window. Records are never deleted; a demoted agent comes back online on
// its next heartbeat through the normal update path.
type Checker struct {
	store    *status.Store
	notifier Notifier
	interval time.Duration
	grace    time.Duration
	logger   *slog.Logger

	// now is swappable for tests.
	now func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewChecker creates a checker. Non-positive interval or grace select the
// defaults; grace below interval is raised to it so one missed heartbeat
// never demotes. Pass nil logger for default.
func NewChecker(store *status.Store, notifier Notifier, interval, grace time.Duration, logger *slog.Logger) *Checker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if grace <= 0 {
		grace = DefaultGrace
	}
	if grace < interval {
		grace = interval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		store:    store,
		notifier: notifier,
		interval: interval,
		grace:    grace,
		logger:   logger.With("component", "liveness"),
		now:      time.Now,
	}
}

// Start launches the sweep loop. Runs until ctx is done or Stop is called.
func (c *Checker) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		return
	}

	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep(c.now())
			}
		}
	}()

	c.logger.Info("liveness checker started", "interval", c.interval, "grace", c.grace)
}

// Stop halts the loop and waits for the in-flight sweep to finish.
func (c *Checker) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// sweep demotes every record silent past the grace window and not already
// unknown_status, then emits at most one forced broadcast. Returns the
// number of demoted agents.
func (c *Checker) sweep(now time.Time) int {
	demoted := 0
	for _, rec := range c.store.Snapshot() {
		if now.Sub(rec.LastSeen) <= c.grace {
			continue
		}
		if rec.State() == status.StateUnknownStatus {
			continue
		}
		// Supplying the stored timestamp keeps last_seen where it was.
		c.store.Update(status.Update{
			AgentID:  rec.AgentID,
			LastSeen: rec.LastSeen,
			Metrics:  map[string]string{status.MetricInternalState: string(status.StateUnknownStatus)},
		})
		c.logger.Warn("agent silent past grace, demoted",
			"agent_id", rec.AgentID,
			"last_seen", rec.LastSeen,
			"silent_for", now.Sub(rec.LastSeen))
		demoted++
	}

	if demoted > 0 && c.notifier != nil {
		c.notifier.NotifyChanged(true)
	}
	return demoted
}
