// ABOUTME: Broker-side subscription loop maintaining a local view of the fleet
// ABOUTME: Honors the full/partial snapshot reconciliation contract

package client

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	roostpb "github.com/roostlabs/roost/proto/roost"
)

// BrokerOptions configures a BrokerView.
type BrokerOptions struct {
	Client     roostpb.RoostDirectoryClient
	BrokerID   string
	BrokerName string

	// OnUpdate, if set, fires after each applied snapshot.
	OnUpdate func()
	Backoff  Backoff
	Logger   *slog.Logger
}

// BrokerView subscribes to the directory's status feed and maintains a
// local copy of the agent population. Run reconnects and resubscribes
// forever; the view survives across reconnects and is reconciled by the
// next full snapshot.
type BrokerView struct {
	opts   BrokerOptions
	logger *slog.Logger

	mu      sync.RWMutex
	agents  map[string]*roostpb.AgentInfo
	backoff Backoff
}

// NewBrokerView creates a view with an empty agent set.
func NewBrokerView(opts BrokerOptions) *BrokerView {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &BrokerView{
		opts:    opts,
		logger:  logger.With("component", "broker-view"),
		agents:  make(map[string]*roostpb.AgentInfo),
		backoff: opts.Backoff,
	}
}

// Apply reconciles one snapshot into the view. A full update is
// authoritative: agents absent from the payload are discarded. A partial
// update merges by agent ID and never deletes.
func (v *BrokerView) Apply(snap *roostpb.AgentStatusSnapshot) {
	v.mu.Lock()
	if snap.GetIsFullUpdate() {
		v.agents = make(map[string]*roostpb.AgentInfo, len(snap.GetAgents()))
	}
	for _, info := range snap.GetAgents() {
		v.agents[info.GetAgentId()] = info
	}
	v.mu.Unlock()

	if v.opts.OnUpdate != nil {
		v.opts.OnUpdate()
	}
}

// Agents returns the current view sorted by agent ID.
func (v *BrokerView) Agents() []*roostpb.AgentInfo {
	v.mu.RLock()
	out := make([]*roostpb.AgentInfo, 0, len(v.agents))
	for _, info := range v.agents {
		out = append(out, info)
	}
	v.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].GetAgentId() < out[j].GetAgentId() })
	return out
}

// Get returns one agent from the view.
func (v *BrokerView) Get(agentID string) (*roostpb.AgentInfo, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	info, ok := v.agents[agentID]
	return info, ok
}

// Run registers the broker and consumes the subscription stream until ctx
// is cancelled, reconnecting with backoff on every transport failure.
func (v *BrokerView) Run(ctx context.Context) error {
	for {
		if err := v.runOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			delay := v.backoff.Next()
			v.logger.Warn("subscription lost, backing off", "error", err, "delay", delay)
			if !sleep(ctx, delay) {
				return ctx.Err()
			}
			continue
		}
		return ctx.Err()
	}
}

func (v *BrokerView) runOnce(ctx context.Context) error {
	ack, err := v.opts.Client.RegisterBroker(ctx, &roostpb.RegisterBrokerRequest{
		BrokerId:   v.opts.BrokerID,
		BrokerName: v.opts.BrokerName,
	})
	if err != nil {
		return fmt.Errorf("registering broker: %w", err)
	}
	if !ack.GetSuccess() {
		return fmt.Errorf("broker registration refused: %s", ack.GetMessage())
	}

	stream, err := v.opts.Client.SubscribeToAgentStatus(ctx, &roostpb.SubscribeRequest{
		BrokerId: v.opts.BrokerID,
	})
	if err != nil {
		return fmt.Errorf("subscribing: %w", err)
	}

	v.logger.Info("subscribed", "broker_id", v.opts.BrokerID)
	for {
		snap, err := stream.Recv()
		if err != nil {
			return fmt.Errorf("status stream: %w", err)
		}
		// The server's first message after (re)subscribe is a full snapshot,
		// so a healthy receive means the view is current again.
		v.backoff.Reset()
		v.Apply(snap)
	}
}
