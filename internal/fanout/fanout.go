// ABOUTME: Per-subscriber snapshot fan-out with bounded queues and drop-on-overflow
// ABOUTME: Slow subscribers never stall the notifier or each other

package fanout

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/roostlabs/roost/internal/status"
	roostpb "github.com/roostlabs/roost/proto/roost"
)

// defaultQueueCapacity bounds each subscriber's delivery queue. Overflow
// drops the newest message for that subscriber only.
const defaultQueueCapacity = 10

// Snapshotter supplies the agent records a snapshot is built from.
// Satisfied by the status store.
type Snapshotter interface {
	Snapshot() []status.Record
}

// Subscriber is one attached snapshot consumer. Delivery stops and the
// channel closes when the subscription is torn down.
type Subscriber struct {
	id       string
	brokerID string
	ch       chan *roostpb.AgentStatusSnapshot
	active   bool
}

// ID is the process-local subscription handle.
func (s *Subscriber) ID() string { return s.id }

// BrokerID is the caller-supplied label. Not required to be unique.
func (s *Subscriber) BrokerID() string { return s.brokerID }

// Deliveries is the subscriber's snapshot queue. Closed on unsubscribe.
func (s *Subscriber) Deliveries() <-chan *roostpb.AgentStatusSnapshot { return s.ch }

// Fanout maintains the subscriber table and serializes the status store
// into snapshot messages.
type Fanout struct {
	mu       sync.Mutex
	subs     map[string]*Subscriber
	source   Snapshotter
	capacity int
	logger   *slog.Logger
}

// New creates a fan-out over the given source. capacity <= 0 selects the
// default. Pass nil logger for default.
func New(source Snapshotter, capacity int, logger *slog.Logger) *Fanout {
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fanout{
		subs:     make(map[string]*Subscriber),
		source:   source,
		capacity: capacity,
		logger:   logger.With("component", "fanout"),
	}
}

// Subscribe attaches a new subscriber and queues an immediate full snapshot
// as its first delivery.
func (f *Fanout) Subscribe(brokerID string) *Subscriber {
	sub := &Subscriber{
		id:       uuid.New().String(),
		brokerID: brokerID,
		ch:       make(chan *roostpb.AgentStatusSnapshot, f.capacity),
		active:   true,
	}

	f.mu.Lock()
	f.subs[sub.id] = sub
	sub.ch <- f.buildSnapshot(true)
	f.mu.Unlock()

	f.logger.Info("subscriber attached", "broker_id", brokerID, "sub_id", sub.id)
	return sub
}

// Unsubscribe tears down a subscription and closes its delivery channel.
// Idempotent: the transport completion callback and the stream loop exit
// both call it, in either order.
func (f *Fanout) Unsubscribe(subID string) {
	f.mu.Lock()
	sub, ok := f.subs[subID]
	if !ok || !sub.active {
		f.mu.Unlock()
		return
	}
	sub.active = false
	delete(f.subs, subID)
	close(sub.ch)
	f.mu.Unlock()

	f.logger.Info("subscriber detached", "broker_id", sub.brokerID, "sub_id", subID)
}

// NotifyChanged materializes one snapshot and pushes it to every active
// subscriber with a non-blocking enqueue. A subscriber at capacity loses
// the message with a warning; the rest still receive it.
//
// Policy: change-triggered pushes are flagged partial, forced pushes
// (initial subscribe, periodic refresh, liveness demotion, lifecycle
// dispatch) are full. Every push carries the complete agent set, so either
// interpretation of the flag reconciles correctly on the receiver.
func (f *Fanout) NotifyChanged(isFullUpdate bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.subs) == 0 {
		return
	}
	snap := f.buildSnapshot(isFullUpdate)
	for _, sub := range f.subs {
		select {
		case sub.ch <- snap:
		default:
			f.logger.Warn("delivery queue full, dropping snapshot",
				"broker_id", sub.brokerID,
				"sub_id", sub.id)
		}
	}
}

// SnapshotOnce returns one full snapshot with no subscription side effects.
func (f *Fanout) SnapshotOnce() *roostpb.AgentStatusSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buildSnapshot(true)
}

// SubscriberCount returns the number of attached subscribers.
func (f *Fanout) SubscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *Fanout) buildSnapshot(isFullUpdate bool) *roostpb.AgentStatusSnapshot {
	records := f.source.Snapshot()
	agents := make([]*roostpb.AgentInfo, 0, len(records))
	for _, rec := range records {
		agents = append(agents, &roostpb.AgentInfo{
			AgentId:        rec.AgentID,
			AgentName:      rec.AgentName,
			LastSeenUnixMs: rec.LastSeen.UnixMilli(),
			Metrics:        rec.Metrics,
		})
	}
	return &roostpb.AgentStatusSnapshot{
		Agents:       agents,
		IsFullUpdate: isFullUpdate,
	}
}
