// ABOUTME: Tests for the agent session loop against a fake directory client
// ABOUTME: Covers registration, command handling, result reporting, and reconnect

package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	roostpb "github.com/roostlabs/roost/proto/roost"
)

type fakeCommandStream struct {
	grpc.ClientStream
	ctx  context.Context
	cmds chan *roostpb.Command
	err  error
}

func (f *fakeCommandStream) Recv() (*roostpb.Command, error) {
	if f.err != nil {
		return nil, f.err
	}
	select {
	case cmd := <-f.cmds:
		return cmd, nil
	case <-f.ctx.Done():
		return nil, f.ctx.Err()
	}
}

// fakeDirectoryClient records session traffic. Streams are handed out in
// order from the streams slice; the last one repeats.
type fakeDirectoryClient struct {
	mu            sync.Mutex
	registrations int
	heartbeats    []*roostpb.AgentStatusUpdate
	results       []*roostpb.CommandResult
	assignID      string
	streams       []*fakeCommandStream
	streamIdx     int
}

func (f *fakeDirectoryClient) RegisterAgent(ctx context.Context, in *roostpb.RegisterAgentRequest, opts ...grpc.CallOption) (*roostpb.RegisterAgentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registrations++
	id := in.GetAgentId()
	if id == "" {
		id = f.assignID
	}
	return &roostpb.RegisterAgentResponse{Success: true, ServerAssignedId: id}, nil
}

func (f *fakeDirectoryClient) UnregisterAgent(ctx context.Context, in *roostpb.UnregisterAgentRequest, opts ...grpc.CallOption) (*roostpb.Ack, error) {
	return &roostpb.Ack{Success: true}, nil
}

func (f *fakeDirectoryClient) SendAgentStatus(ctx context.Context, in *roostpb.AgentStatusUpdate, opts ...grpc.CallOption) (*roostpb.Ack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heartbeats = append(f.heartbeats, in)
	return &roostpb.Ack{Success: true}, nil
}

func (f *fakeDirectoryClient) ReceiveCommands(ctx context.Context, in *roostpb.ReceiveCommandsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[roostpb.Command], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stream := f.streams[f.streamIdx]
	if f.streamIdx < len(f.streams)-1 {
		f.streamIdx++
	}
	stream.ctx = ctx
	return stream, nil
}

func (f *fakeDirectoryClient) SendCommandResult(ctx context.Context, in *roostpb.CommandResult, opts ...grpc.CallOption) (*roostpb.CommandResultAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, in)
	return &roostpb.CommandResultAck{Received: true}, nil
}

func (f *fakeDirectoryClient) DispatchCommand(ctx context.Context, in *roostpb.DispatchCommandRequest, opts ...grpc.CallOption) (*roostpb.DispatchCommandResponse, error) {
	return &roostpb.DispatchCommandResponse{Success: true}, nil
}

func (f *fakeDirectoryClient) CancelCommand(ctx context.Context, in *roostpb.CancelCommandRequest, opts ...grpc.CallOption) (*roostpb.Ack, error) {
	return &roostpb.Ack{Success: true}, nil
}

func (f *fakeDirectoryClient) RegisterBroker(ctx context.Context, in *roostpb.RegisterBrokerRequest, opts ...grpc.CallOption) (*roostpb.Ack, error) {
	return &roostpb.Ack{Success: true}, nil
}

func (f *fakeDirectoryClient) SubscribeToAgentStatus(ctx context.Context, in *roostpb.SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[roostpb.AgentStatusSnapshot], error) {
	return nil, errors.New("not used in these tests")
}

func (f *fakeDirectoryClient) GetAgentStatus(ctx context.Context, in *roostpb.SubscribeRequest, opts ...grpc.CallOption) (*roostpb.AgentStatusSnapshot, error) {
	return &roostpb.AgentStatusSnapshot{IsFullUpdate: true}, nil
}

func (f *fakeDirectoryClient) registrationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registrations
}

func (f *fakeDirectoryClient) lastResult() *roostpb.CommandResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.results) == 0 {
		return nil
	}
	return f.results[len(f.results)-1]
}

func TestAgentSessionExecutesCommands(t *testing.T) {
	cmds := make(chan *roostpb.Command, 1)
	fake := &fakeDirectoryClient{
		assignID: "assigned-1",
		streams:  []*fakeCommandStream{{cmds: cmds}},
	}

	handled := make(chan *roostpb.Command, 1)
	session := NewAgentSession(AgentOptions{
		Client:    fake,
		AgentName: "tester",
		Handler: func(ctx context.Context, cmd *roostpb.Command) Outcome {
			handled <- cmd
			return Outcome{Success: true, Output: "ran " + cmd.GetContent()}
		},
		HeartbeatInterval: time.Hour,
		Backoff:           Backoff{Initial: time.Millisecond, Max: time.Millisecond},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	cmds <- &roostpb.Command{CommandId: "c1", Type: "run", Content: "thing"}

	select {
	case cmd := <-handled:
		assert.Equal(t, "c1", cmd.GetCommandId())
	case <-time.After(2 * time.Second):
		t.Fatal("handler never invoked")
	}

	require.Eventually(t, func() bool { return fake.lastResult() != nil }, 2*time.Second, 10*time.Millisecond)
	res := fake.lastResult()
	assert.Equal(t, "c1", res.GetCommandId())
	assert.Equal(t, "assigned-1", res.GetAgentId(), "session adopts the server-assigned id")
	assert.True(t, res.GetSuccess())
	assert.Equal(t, "ran thing", res.GetOutput())

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop on cancel")
	}
}

func TestAgentSessionReconnectsAfterStreamFailure(t *testing.T) {
	broken := &fakeCommandStream{err: errors.New("transport blip")}
	healthy := &fakeCommandStream{cmds: make(chan *roostpb.Command)}
	fake := &fakeDirectoryClient{
		assignID: "a1",
		streams:  []*fakeCommandStream{broken, healthy},
	}

	session := NewAgentSession(AgentOptions{
		Client:            fake,
		AgentID:           "a1",
		AgentName:         "tester",
		Handler:           func(ctx context.Context, cmd *roostpb.Command) Outcome { return Outcome{} },
		HeartbeatInterval: time.Hour,
		Backoff:           Backoff{Initial: time.Millisecond, Max: time.Millisecond},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go session.Run(ctx)

	// One registration per pass: the broken stream forces a second pass.
	require.Eventually(t, func() bool { return fake.registrationCount() >= 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestAgentSessionHeartbeatCarriesMetrics(t *testing.T) {
	stream := &fakeCommandStream{cmds: make(chan *roostpb.Command)}
	fake := &fakeDirectoryClient{assignID: "a1", streams: []*fakeCommandStream{stream}}

	session := NewAgentSession(AgentOptions{
		Client:            fake,
		AgentID:           "a1",
		AgentName:         "tester",
		Handler:           func(ctx context.Context, cmd *roostpb.Command) Outcome { return Outcome{} },
		HeartbeatInterval: 10 * time.Millisecond,
		Backoff:           Backoff{Initial: time.Millisecond, Max: time.Millisecond},
	})
	session.SetMetric("queue_depth", "3")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go session.Run(ctx)

	require.Eventually(t, func() bool {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		for _, hb := range fake.heartbeats {
			if hb.GetMetrics()["queue_depth"] == "3" && hb.GetMetrics()["internal_state"] == "idle" {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}
