// ABOUTME: Tests for command queue FIFO ordering, correlation, and cancellation
// ABOUTME: Covers idempotent result recording and lifecycle state side effects

package command

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roostlabs/roost/internal/status"
)

type countingNotifier struct {
	full atomic.Int64
}

func (n *countingNotifier) NotifyChanged(isFullUpdate bool) {
	if isFullUpdate {
		n.full.Add(1)
	}
}

func newTestBus(t *testing.T, agents ...string) (*Bus, *status.Store, *countingNotifier) {
	t.Helper()
	store := status.NewStore(nil)
	for _, id := range agents {
		store.Update(status.Update{AgentID: id, Metrics: map[string]string{status.MetricInternalState: "idle"}})
	}
	notifier := &countingNotifier{}
	return NewBus(store, notifier, nil), store, notifier
}

func TestEnqueue(t *testing.T) {
	t.Run("unknown agent rejected", func(t *testing.T) {
		bus, _, _ := newTestBus(t)
		_, err := bus.Enqueue("ghost", "run", "echo hi", nil)
		assert.ErrorIs(t, err, ErrUnknownAgent)
	})

	t.Run("offline agent still accepts commands", func(t *testing.T) {
		bus, store, _ := newTestBus(t, "a1")
		store.Update(status.Update{AgentID: "a1", Metrics: map[string]string{status.MetricInternalState: "offline"}})

		id, err := bus.Enqueue("a1", "run", "echo hi", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, 1, bus.QueueDepth("a1"))
	})

	t.Run("command ids are unique and pending", func(t *testing.T) {
		bus, _, _ := newTestBus(t, "a1")
		id1, err := bus.Enqueue("a1", "run", "one", nil)
		require.NoError(t, err)
		id2, err := bus.Enqueue("a1", "run", "two", nil)
		require.NoError(t, err)

		assert.NotEqual(t, id1, id2)
		assert.True(t, bus.Pending(id1))
		assert.True(t, bus.Pending(id2))
	})
}

func TestFIFOPerAgent(t *testing.T) {
	bus, _, _ := newTestBus(t, "x", "y")

	c1, _ := bus.Enqueue("x", "run", "first", nil)
	bus.Enqueue("y", "run", "interleaved", nil)
	c2, _ := bus.Enqueue("x", "run", "second", nil)
	bus.Enqueue("y", "run", "interleaved", nil)
	c3, _ := bus.Enqueue("x", "run", "third", nil)

	ctx := context.Background()
	for i, want := range []string{c1, c2, c3} {
		cmd, err := bus.Next(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, want, cmd.GetCommandId(), "position %d", i)
	}
}

func TestNext(t *testing.T) {
	t.Run("blocks until command arrives", func(t *testing.T) {
		bus, _, _ := newTestBus(t, "a1")

		got := make(chan string, 1)
		go func() {
			cmd, err := bus.Next(context.Background(), "a1")
			if err != nil {
				got <- "err:" + err.Error()
				return
			}
			got <- cmd.GetCommandId()
		}()

		// Consumer attaches before any dispatch.
		time.Sleep(20 * time.Millisecond)
		id, err := bus.Enqueue("a1", "run", "wake up", nil)
		require.NoError(t, err)

		select {
		case recv := <-got:
			assert.Equal(t, id, recv)
		case <-time.After(2 * time.Second):
			t.Fatal("Next never woke")
		}
	})

	t.Run("context cancellation unblocks", func(t *testing.T) {
		bus, _, _ := newTestBus(t, "a1")
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			_, err := bus.Next(ctx, "a1")
			done <- err
		}()

		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("Next ignored cancellation")
		}
	})

	t.Run("queue survives consumer churn", func(t *testing.T) {
		bus, _, _ := newTestBus(t, "a1")
		id, _ := bus.Enqueue("a1", "run", "queued while away", nil)

		// Simulates an agent that was disconnected at dispatch time.
		cmd, err := bus.Next(context.Background(), "a1")
		require.NoError(t, err)
		assert.Equal(t, id, cmd.GetCommandId())
	})
}

func TestCancel(t *testing.T) {
	t.Run("unknown command", func(t *testing.T) {
		bus, _, _ := newTestBus(t, "a1")
		assert.False(t, bus.Cancel("nope"))
	})

	t.Run("resolved command", func(t *testing.T) {
		bus, _, _ := newTestBus(t, "a1")
		id, _ := bus.Enqueue("a1", "run", "done already", nil)
		bus.RecordResult(Result{CommandID: id, AgentID: "a1", Success: true})
		assert.False(t, bus.Cancel(id))
	})

	t.Run("pending command gets cancellation variant", func(t *testing.T) {
		bus, _, _ := newTestBus(t, "a1")
		id, _ := bus.Enqueue("a1", "run", "slow thing", nil)
		require.True(t, bus.Cancel(id))

		ctx := context.Background()
		original, err := bus.Next(ctx, "a1")
		require.NoError(t, err)
		assert.False(t, original.GetIsCancellation())

		cancellation, err := bus.Next(ctx, "a1")
		require.NoError(t, err)
		assert.True(t, cancellation.GetIsCancellation())
		assert.Equal(t, id, cancellation.GetCommandId(), "cancellation references the original")

		// Pending entry stays until a result arrives.
		assert.True(t, bus.Pending(id))
	})
}

func TestRecordResult(t *testing.T) {
	t.Run("clears pending and stores result", func(t *testing.T) {
		bus, _, _ := newTestBus(t, "a1")
		id, _ := bus.Enqueue("a1", "run", "work", nil)

		bus.RecordResult(Result{CommandID: id, AgentID: "a1", Success: true, Output: "done"})
		assert.False(t, bus.Pending(id))

		res, ok := bus.ResultFor(id)
		require.True(t, ok)
		assert.Equal(t, "done", res.Output)
	})

	t.Run("duplicate result is idempotent", func(t *testing.T) {
		bus, _, _ := newTestBus(t, "a1")
		id, _ := bus.Enqueue("a1", "run", "work", nil)

		bus.RecordResult(Result{CommandID: id, Success: true, Output: "first"})
		bus.RecordResult(Result{CommandID: id, Success: false, Output: "second"})

		assert.False(t, bus.Pending(id))
		res, _ := bus.ResultFor(id)
		assert.Equal(t, "first", res.Output, "first result wins")
	})

	t.Run("late result for unknown command accepted", func(t *testing.T) {
		bus, _, _ := newTestBus(t)
		bus.RecordResult(Result{CommandID: "never-dispatched", Success: true})
		res, ok := bus.ResultFor("never-dispatched")
		assert.True(t, ok)
		assert.True(t, res.Success)
	})
}

func TestLifecycleSideEffects(t *testing.T) {
	t.Run("pause marks paused and forces broadcast", func(t *testing.T) {
		bus, store, notifier := newTestBus(t, "a1")
		_, err := bus.Enqueue("a1", TypePause, "", nil)
		require.NoError(t, err)

		rec, _ := store.Get("a1")
		assert.Equal(t, status.StatePaused, rec.State())
		assert.Equal(t, int64(1), notifier.full.Load())
	})

	t.Run("resume marks idle", func(t *testing.T) {
		bus, store, notifier := newTestBus(t, "a1")
		bus.Enqueue("a1", TypePause, "", nil)
		bus.Enqueue("a1", TypeResume, "", nil)

		rec, _ := store.Get("a1")
		assert.Equal(t, status.StateIdle, rec.State())
		assert.Equal(t, int64(2), notifier.full.Load())
	})

	t.Run("plain commands have no state side effect", func(t *testing.T) {
		bus, store, notifier := newTestBus(t, "a1")
		bus.Enqueue("a1", "run", "echo hi", nil)

		rec, _ := store.Get("a1")
		assert.Equal(t, status.StateIdle, rec.State())
		assert.Equal(t, int64(0), notifier.full.Load())
	})
}
