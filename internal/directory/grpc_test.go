// ABOUTME: Tests for the RoostDirectory service implementation over mock streams
// ABOUTME: Covers registration, dispatch, result correlation, and the subscribe loop

package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/roostlabs/roost/internal/config"
	"github.com/roostlabs/roost/internal/status"
	roostpb "github.com/roostlabs/roost/proto/roost"
)

func newTestDirectory(t *testing.T) (*Directory, *directoryService) {
	t.Helper()
	cfg := config.Default()
	cfg.Fanout.RefreshInterval = time.Hour // keep the refresh ticker quiet
	d := New(cfg, nil, nil)
	return d, &directoryService{directory: d}
}

func registerAgent(t *testing.T, svc *directoryService, id, name string) string {
	t.Helper()
	resp, err := svc.RegisterAgent(context.Background(), &roostpb.RegisterAgentRequest{
		AgentId:   id,
		AgentName: name,
	})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess())
	return resp.GetServerAssignedId()
}

// mockCommandStream implements grpc.ServerStreamingServer[roostpb.Command].
type mockCommandStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent chan *roostpb.Command
}

func newMockCommandStream(ctx context.Context) *mockCommandStream {
	return &mockCommandStream{ctx: ctx, sent: make(chan *roostpb.Command, 16)}
}

func (m *mockCommandStream) Context() context.Context        { return m.ctx }
func (m *mockCommandStream) Send(cmd *roostpb.Command) error { m.sent <- cmd; return nil }

// mockSnapshotStream implements grpc.ServerStreamingServer[roostpb.AgentStatusSnapshot].
type mockSnapshotStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent chan *roostpb.AgentStatusSnapshot
}

func newMockSnapshotStream(ctx context.Context) *mockSnapshotStream {
	return &mockSnapshotStream{ctx: ctx, sent: make(chan *roostpb.AgentStatusSnapshot, 16)}
}

func (m *mockSnapshotStream) Context() context.Context { return m.ctx }
func (m *mockSnapshotStream) Send(snap *roostpb.AgentStatusSnapshot) error {
	m.sent <- snap
	return nil
}

func recvSnapshot(t *testing.T, ch chan *roostpb.AgentStatusSnapshot) *roostpb.AgentStatusSnapshot {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func TestRegisterAgent(t *testing.T) {
	t.Run("empty id gets server-assigned uuid", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		id := registerAgent(t, svc, "", "anon")
		require.NotEmpty(t, id)

		rec, ok := d.store.Get(id)
		require.True(t, ok)
		assert.Equal(t, "anon", rec.AgentName)
		assert.Equal(t, status.StateOnline, rec.State())
	})

	t.Run("supplied id echoed back", func(t *testing.T) {
		_, svc := newTestDirectory(t)
		assert.Equal(t, "worker-7", registerAgent(t, svc, "worker-7", "w"))
	})

	t.Run("capabilities and host facts land in metrics", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		resp, err := svc.RegisterAgent(context.Background(), &roostpb.RegisterAgentRequest{
			AgentId:      "a1",
			AgentName:    "alpha",
			Capabilities: map[string]string{"gpu": "true"},
			Hostname:     "node-3",
			Platform:     "linux/amd64",
			Version:      "1.4.0",
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())

		rec, _ := d.store.Get("a1")
		assert.Equal(t, "true", rec.Metrics["gpu"])
		assert.Equal(t, "node-3", rec.Metrics["hostname"])
		assert.Equal(t, "linux/amd64", rec.Metrics["platform"])
		assert.Equal(t, "1.4.0", rec.Metrics["version"])
	})

	t.Run("re-registration revives a demoted agent", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		registerAgent(t, svc, "a1", "alpha")
		d.store.Update(status.Update{
			AgentID: "a1",
			Metrics: map[string]string{status.MetricInternalState: string(status.StateUnknownStatus)},
		})

		registerAgent(t, svc, "a1", "alpha")
		rec, _ := d.store.Get("a1")
		assert.Equal(t, status.StateOnline, rec.State())
	})
}

func TestUnregisterAgent(t *testing.T) {
	t.Run("unknown agent is a boolean failure", func(t *testing.T) {
		_, svc := newTestDirectory(t)
		ack, err := svc.UnregisterAgent(context.Background(), &roostpb.UnregisterAgentRequest{AgentId: "ghost"})
		require.NoError(t, err)
		assert.False(t, ack.GetSuccess())
	})

	t.Run("record kept and marked offline", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		registerAgent(t, svc, "a1", "alpha")

		ack, err := svc.UnregisterAgent(context.Background(), &roostpb.UnregisterAgentRequest{AgentId: "a1"})
		require.NoError(t, err)
		require.True(t, ack.GetSuccess())

		rec, ok := d.store.Get("a1")
		require.True(t, ok, "unregister must not delete the record")
		assert.Equal(t, status.StateOffline, rec.State())
	})

	t.Run("queued commands survive unregistration", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		registerAgent(t, svc, "a1", "alpha")
		resp, err := svc.DispatchCommand(context.Background(), &roostpb.DispatchCommandRequest{
			AgentId: "a1", Type: "run", Content: "pending work",
		})
		require.NoError(t, err)
		require.True(t, resp.GetSuccess())

		svc.UnregisterAgent(context.Background(), &roostpb.UnregisterAgentRequest{AgentId: "a1"})
		assert.Equal(t, 1, d.bus.QueueDepth("a1"))
	})

	t.Run("cancels the live command stream", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		registerAgent(t, svc, "a1", "alpha")

		stream := newMockCommandStream(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- svc.ReceiveCommands(&roostpb.ReceiveCommandsRequest{AgentId: "a1"}, stream)
		}()

		// Wait until the stream has attached.
		require.Eventually(t, func() bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			return len(d.streams) == 1
		}, 2*time.Second, 10*time.Millisecond)

		svc.UnregisterAgent(context.Background(), &roostpb.UnregisterAgentRequest{AgentId: "a1"})
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("stream did not exit on unregister")
		}
	})
}

func TestSendAgentStatus(t *testing.T) {
	t.Run("unknown agent creates a record", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		ack, err := svc.SendAgentStatus(context.Background(), &roostpb.AgentStatusUpdate{
			AgentId:   "drifter",
			AgentName: "drifter",
			Metrics:   map[string]string{status.MetricInternalState: "idle"},
		})
		require.NoError(t, err)
		assert.True(t, ack.GetSuccess())

		rec, ok := d.store.Get("drifter")
		require.True(t, ok)
		assert.Equal(t, status.StateIdle, rec.State())
	})

	t.Run("change-gated broadcast", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		sub := d.fanout.Subscribe("observer")
		<-sub.Deliveries() // initial full snapshot

		push := func(metrics map[string]string) {
			_, err := svc.SendAgentStatus(context.Background(), &roostpb.AgentStatusUpdate{
				AgentId: "a1", AgentName: "alpha", Metrics: metrics,
			})
			require.NoError(t, err)
		}

		push(map[string]string{"cpu": "10"}) // first sight: change
		push(map[string]string{"cpu": "10"}) // identical: no change
		push(map[string]string{"cpu": "20"}) // differs: change

		var pushes int
	drainloop:
		for {
			select {
			case <-sub.Deliveries():
				pushes++
			default:
				break drainloop
			}
		}
		assert.Equal(t, 2, pushes)
	})

	t.Run("client timestamp respected but never regressed", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		now := time.Now().UnixMilli()
		svc.SendAgentStatus(context.Background(), &roostpb.AgentStatusUpdate{AgentId: "a1", LastSeenUnixMs: now})
		svc.SendAgentStatus(context.Background(), &roostpb.AgentStatusUpdate{AgentId: "a1", LastSeenUnixMs: now - 60_000})

		rec, _ := d.store.Get("a1")
		assert.Equal(t, now, rec.LastSeen.UnixMilli())
	})
}

func TestReceiveCommands(t *testing.T) {
	t.Run("drains queued commands in FIFO order", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		registerAgent(t, svc, "a1", "alpha")

		var want []string
		for _, content := range []string{"one", "two", "three"} {
			id, err := d.bus.Enqueue("a1", "run", content, nil)
			require.NoError(t, err)
			want = append(want, id)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		stream := newMockCommandStream(ctx)
		done := make(chan error, 1)
		go func() {
			done <- svc.ReceiveCommands(&roostpb.ReceiveCommandsRequest{AgentId: "a1"}, stream)
		}()

		for i, id := range want {
			select {
			case cmd := <-stream.sent:
				assert.Equal(t, id, cmd.GetCommandId(), "position %d", i)
			case <-time.After(2 * time.Second):
				t.Fatal("command never delivered")
			}
		}

		cancel()
		require.NoError(t, <-done)
	})

	t.Run("second stream supersedes the first", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		registerAgent(t, svc, "a1", "alpha")

		first := newMockCommandStream(context.Background())
		firstDone := make(chan error, 1)
		go func() {
			firstDone <- svc.ReceiveCommands(&roostpb.ReceiveCommandsRequest{AgentId: "a1"}, first)
		}()

		require.Eventually(t, func() bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			return len(d.streams) == 1
		}, 2*time.Second, 10*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		second := newMockCommandStream(ctx)
		secondDone := make(chan error, 1)
		go func() {
			secondDone <- svc.ReceiveCommands(&roostpb.ReceiveCommandsRequest{AgentId: "a1"}, second)
		}()

		select {
		case err := <-firstDone:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("first stream was not superseded")
		}

		// The replacement stream still delivers.
		id, err := d.bus.Enqueue("a1", "run", "after handoff", nil)
		require.NoError(t, err)
		select {
		case cmd := <-second.sent:
			assert.Equal(t, id, cmd.GetCommandId())
		case <-time.After(2 * time.Second):
			t.Fatal("replacement stream never delivered")
		}

		cancel()
		require.NoError(t, <-secondDone)
	})
}

func TestSendCommandResult(t *testing.T) {
	d, svc := newTestDirectory(t)
	registerAgent(t, svc, "a1", "alpha")
	resp, err := svc.DispatchCommand(context.Background(), &roostpb.DispatchCommandRequest{
		AgentId: "a1", Type: "run", Content: "work",
	})
	require.NoError(t, err)
	id := resp.GetCommandId()

	t.Run("correlates and clears pending", func(t *testing.T) {
		ack, err := svc.SendCommandResult(context.Background(), &roostpb.CommandResult{
			CommandId: id, AgentId: "a1", Success: true, Output: "done", ExecutionTimeMs: 42,
		})
		require.NoError(t, err)
		assert.True(t, ack.GetReceived())
		assert.False(t, d.bus.Pending(id))
	})

	t.Run("duplicate and unknown results acknowledged", func(t *testing.T) {
		for _, cid := range []string{id, "never-issued"} {
			ack, err := svc.SendCommandResult(context.Background(), &roostpb.CommandResult{
				CommandId: cid, AgentId: "a1", Success: false,
			})
			require.NoError(t, err)
			assert.True(t, ack.GetReceived())
		}
	})
}

func TestDispatchCommand(t *testing.T) {
	t.Run("unknown agent is a boolean failure", func(t *testing.T) {
		_, svc := newTestDirectory(t)
		resp, err := svc.DispatchCommand(context.Background(), &roostpb.DispatchCommandRequest{AgentId: "ghost", Type: "run"})
		require.NoError(t, err)
		assert.False(t, resp.GetSuccess())
		assert.Empty(t, resp.GetCommandId())
	})

	t.Run("offline agent still queues", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		registerAgent(t, svc, "a1", "alpha")
		svc.UnregisterAgent(context.Background(), &roostpb.UnregisterAgentRequest{AgentId: "a1"})

		resp, err := svc.DispatchCommand(context.Background(), &roostpb.DispatchCommandRequest{AgentId: "a1", Type: "run"})
		require.NoError(t, err)
		assert.True(t, resp.GetSuccess())
		assert.Equal(t, 1, d.bus.QueueDepth("a1"))
	})
}

func TestCancelCommand(t *testing.T) {
	_, svc := newTestDirectory(t)
	registerAgent(t, svc, "a1", "alpha")

	resp, _ := svc.DispatchCommand(context.Background(), &roostpb.DispatchCommandRequest{AgentId: "a1", Type: "run"})
	ack, err := svc.CancelCommand(context.Background(), &roostpb.CancelCommandRequest{CommandId: resp.GetCommandId()})
	require.NoError(t, err)
	assert.True(t, ack.GetSuccess())

	ack, err = svc.CancelCommand(context.Background(), &roostpb.CancelCommandRequest{CommandId: "bogus"})
	require.NoError(t, err)
	assert.False(t, ack.GetSuccess())
}

func TestSubscribeToAgentStatus(t *testing.T) {
	t.Run("initial full snapshot then change pushes", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		registerAgent(t, svc, "a1", "alpha")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		stream := newMockSnapshotStream(ctx)
		done := make(chan error, 1)
		go func() {
			done <- svc.SubscribeToAgentStatus(&roostpb.SubscribeRequest{BrokerId: "b1"}, stream)
		}()

		first := recvSnapshot(t, stream.sent)
		assert.True(t, first.GetIsFullUpdate())
		require.Len(t, first.GetAgents(), 1)
		assert.Equal(t, "a1", first.GetAgents()[0].GetAgentId())

		d.store.Update(status.Update{AgentID: "a1", Metrics: map[string]string{"cpu": "99"}})
		d.fanout.NotifyChanged(false)

		next := recvSnapshot(t, stream.sent)
		assert.False(t, next.GetIsFullUpdate())
		assert.Equal(t, "99", next.GetAgents()[0].GetMetrics()["cpu"])

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("subscribe loop did not exit on cancel")
		}
		assert.Equal(t, 0, d.fanout.SubscriberCount(), "teardown must unsubscribe")
	})

	t.Run("periodic refresh sends forced full snapshots", func(t *testing.T) {
		d, svc := newTestDirectory(t)
		d.cfg.Fanout.RefreshInterval = 30 * time.Millisecond
		registerAgent(t, svc, "a1", "alpha")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		stream := newMockSnapshotStream(ctx)
		go svc.SubscribeToAgentStatus(&roostpb.SubscribeRequest{BrokerId: "b1"}, stream)

		recvSnapshot(t, stream.sent) // initial
		refresh := recvSnapshot(t, stream.sent)
		assert.True(t, refresh.GetIsFullUpdate())
	})
}

func TestGetAgentStatus(t *testing.T) {
	d, svc := newTestDirectory(t)
	registerAgent(t, svc, "a1", "alpha")
	registerAgent(t, svc, "a2", "beta")

	snap, err := svc.GetAgentStatus(context.Background(), &roostpb.SubscribeRequest{BrokerId: "b1"})
	require.NoError(t, err)
	assert.True(t, snap.GetIsFullUpdate())
	assert.Len(t, snap.GetAgents(), 2)
	assert.Equal(t, 0, d.fanout.SubscriberCount())
}

func TestRegisterBroker(t *testing.T) {
	d, svc := newTestDirectory(t)
	ack, err := svc.RegisterBroker(context.Background(), &roostpb.RegisterBrokerRequest{
		BrokerId: "b1", BrokerName: "dashboard",
	})
	require.NoError(t, err)
	assert.True(t, ack.GetSuccess())

	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Equal(t, "dashboard", d.brokers["b1"])
}
