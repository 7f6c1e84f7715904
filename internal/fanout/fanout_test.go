// ABOUTME: Tests for subscriber fan-out delivery, overflow drops, and teardown
// ABOUTME: Covers slow-subscriber isolation and idempotent double cleanup

package fanout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roostlabs/roost/internal/status"
	roostpb "github.com/roostlabs/roost/proto/roost"
)

func newTestFanout(t *testing.T, capacity int, agents ...string) (*Fanout, *status.Store) {
	t.Helper()
	store := status.NewStore(nil)
	for _, id := range agents {
		store.Update(status.Update{
			AgentID:   id,
			AgentName: "agent-" + id,
			Metrics:   map[string]string{status.MetricInternalState: "idle"},
		})
	}
	return New(store, capacity, nil), store
}

func drain(t *testing.T, sub *Subscriber) *roostpb.AgentStatusSnapshot {
	t.Helper()
	select {
	case snap, ok := <-sub.Deliveries():
		require.True(t, ok, "channel closed unexpectedly")
		return snap
	default:
		t.Fatal("no snapshot queued")
		return nil
	}
}

func TestSubscribe(t *testing.T) {
	t.Run("first delivery is a full snapshot", func(t *testing.T) {
		fo, _ := newTestFanout(t, 0, "a", "b")
		sub := fo.Subscribe("broker-1")

		snap := drain(t, sub)
		assert.True(t, snap.GetIsFullUpdate())
		assert.Len(t, snap.GetAgents(), 2)
		assert.Equal(t, "broker-1", sub.BrokerID())
	})

	t.Run("empty store yields empty full snapshot", func(t *testing.T) {
		fo, _ := newTestFanout(t, 0)
		sub := fo.Subscribe("broker-1")

		snap := drain(t, sub)
		assert.True(t, snap.GetIsFullUpdate())
		assert.Empty(t, snap.GetAgents())
	})

	t.Run("duplicate broker ids get distinct subscriptions", func(t *testing.T) {
		fo, _ := newTestFanout(t, 0)
		s1 := fo.Subscribe("same")
		s2 := fo.Subscribe("same")
		assert.NotEqual(t, s1.ID(), s2.ID())
		assert.Equal(t, 2, fo.SubscriberCount())
	})
}

func TestNotifyChanged(t *testing.T) {
	t.Run("every subscriber receives the push", func(t *testing.T) {
		fo, store := newTestFanout(t, 0, "a")
		s1 := fo.Subscribe("b1")
		s2 := fo.Subscribe("b2")
		drain(t, s1)
		drain(t, s2)

		store.Update(status.Update{AgentID: "a", Metrics: map[string]string{"cpu": "50"}})
		fo.NotifyChanged(false)

		snap1 := drain(t, s1)
		snap2 := drain(t, s2)
		assert.False(t, snap1.GetIsFullUpdate())
		assert.Equal(t, "50", snap1.GetAgents()[0].GetMetrics()["cpu"])
		assert.Equal(t, "50", snap2.GetAgents()[0].GetMetrics()["cpu"])
	})

	t.Run("partial pushes still carry the complete set", func(t *testing.T) {
		fo, _ := newTestFanout(t, 0, "a", "b", "c")
		sub := fo.Subscribe("b1")
		drain(t, sub)

		fo.NotifyChanged(false)
		snap := drain(t, sub)
		assert.False(t, snap.GetIsFullUpdate())
		assert.Len(t, snap.GetAgents(), 3)
	})

	t.Run("slow subscriber drops, fast subscriber still delivered", func(t *testing.T) {
		fo, _ := newTestFanout(t, 1, "a")
		slow := fo.Subscribe("slow") // initial snapshot fills the whole queue
		fast := fo.Subscribe("fast")
		drain(t, fast)

		fo.NotifyChanged(true)

		// slow still holds only the initial snapshot; the push was dropped.
		drain(t, slow)
		select {
		case extra := <-slow.Deliveries():
			t.Fatalf("expected drop for slow subscriber, got %v", extra)
		default:
		}

		snap := drain(t, fast)
		assert.True(t, snap.GetIsFullUpdate())
	})

	t.Run("no subscribers is a no-op", func(t *testing.T) {
		fo, _ := newTestFanout(t, 0, "a")
		fo.NotifyChanged(true)
	})
}

func TestUnsubscribe(t *testing.T) {
	t.Run("closes the delivery channel", func(t *testing.T) {
		fo, _ := newTestFanout(t, 0)
		sub := fo.Subscribe("b1")
		drain(t, sub)

		fo.Unsubscribe(sub.ID())
		_, ok := <-sub.Deliveries()
		assert.False(t, ok)
		assert.Equal(t, 0, fo.SubscriberCount())
	})

	t.Run("double cleanup is idempotent", func(t *testing.T) {
		fo, _ := newTestFanout(t, 0)
		sub := fo.Subscribe("b1")

		// Completion callback and loop exit may both fire.
		fo.Unsubscribe(sub.ID())
		fo.Unsubscribe(sub.ID())
		assert.Equal(t, 0, fo.SubscriberCount())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		fo, _ := newTestFanout(t, 0)
		fo.Unsubscribe("never-subscribed")
	})

	t.Run("detached subscriber receives no further pushes", func(t *testing.T) {
		fo, _ := newTestFanout(t, 0, "a")
		gone := fo.Subscribe("gone")
		stay := fo.Subscribe("stay")
		drain(t, gone)
		drain(t, stay)

		fo.Unsubscribe(gone.ID())
		fo.NotifyChanged(true)

		_, ok := <-gone.Deliveries()
		assert.False(t, ok)
		assert.NotNil(t, drain(t, stay))
	})
}

func TestSnapshotOnce(t *testing.T) {
	fo, _ := newTestFanout(t, 0, "a", "b")
	snap := fo.SnapshotOnce()
	assert.True(t, snap.GetIsFullUpdate())
	assert.Len(t, snap.GetAgents(), 2)
	assert.Equal(t, 0, fo.SubscriberCount(), "no subscription side effects")
}
