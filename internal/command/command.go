// ABOUTME: Per-agent command queues with pending-result correlation and cancellation
// ABOUTME: Queues are created lazily and survive agent stream disconnects

package command

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roostlabs/roost/internal/status"
	roostpb "github.com/roostlabs/roost/proto/roost"
)

// ErrUnknownAgent is returned by Enqueue when no status record exists for
// the target. Liveness is deliberately not checked: dispatch to an offline
// agent queues for its next reconnect.
var ErrUnknownAgent = errors.New("unknown agent")

// Lifecycle command types with immediate status side effects.
const (
	TypePause    = "pause"
	TypeResume   = "resume"
	TypeShutdown = "shutdown"
	TypeCancel   = "cancel"
)

// Result is a completed command execution reported by an agent.
type Result struct {
	CommandID     string
	AgentID       string
	Success       bool
	Output        string
	ErrorMessage  string
	ExitCode      int32
	ExecutionTime time.Duration
}

// Notifier receives a broadcast nudge when a dispatch mutates agent state.
// Satisfied by the fan-out; nil disables.
type Notifier interface {
	NotifyChanged(isFullUpdate bool)
}

// queue is one agent's FIFO of outbound commands. A single buffered signal
// token wakes the blocked consumer; Pop re-checks the slice after every wake
// so a consumed token never strands an item.
type queue struct {
	mu     sync.Mutex
	items  []*roostpb.Command
	signal chan struct{}
}

func newQueue() *queue {
	return &queue{signal: make(chan struct{}, 1)}
}

func (q *queue) push(cmd *roostpb.Command) {
	q.mu.Lock()
	q.items = append(q.items, cmd)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// pop blocks until a command is available or ctx is done.
func (q *queue) pop(ctx context.Context) (*roostpb.Command, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			cmd := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return cmd, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-q.signal:
		}
	}
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Bus owns every per-agent queue, the pending-command table, and the
// received-result table.
type Bus struct {
	mu      sync.Mutex
	queues  map[string]*queue
	pending map[string]string // command_id -> agent_id
	results map[string]Result

	store    *status.Store
	notifier Notifier
	logger   *slog.Logger
}

// NewBus creates a bus over the given status store. Pass nil notifier to
// skip broadcast nudges, nil logger for default.
func NewBus(store *status.Store, notifier Notifier, logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		queues:   make(map[string]*queue),
		pending:  make(map[string]string),
		results:  make(map[string]Result),
		store:    store,
		notifier: notifier,
		logger:   logger.With("component", "command"),
	}
}

// Enqueue dispatches a command to the named agent and returns the generated
// command ID. The only failure is an agent with no status record; an agent
// marked offline or unknown_status still accepts queued commands.
//
// pause and resume rewrite the agent's internal_state immediately and force
// a broadcast so observers see the transition without waiting for the
// agent's acknowledgement round-trip.
func (b *Bus) Enqueue(agentID, typ, content string, params map[string]string) (string, error) {
	if _, ok := b.store.Get(agentID); !ok {
		return "", ErrUnknownAgent
	}

	cmd := &roostpb.Command{
		CommandId:  uuid.New().String(),
		Type:       typ,
		Content:    content,
		Parameters: params,
	}

	b.mu.Lock()
	b.pending[cmd.CommandId] = agentID
	q := b.queueLocked(agentID)
	b.mu.Unlock()

	q.push(cmd)
	b.logger.Info("command enqueued",
		"agent_id", agentID,
		"command_id", cmd.CommandId,
		"type", typ)

	switch typ {
	case TypePause:
		b.applyState(agentID, status.StatePaused)
	case TypeResume:
		b.applyState(agentID, status.StateIdle)
	}

	return cmd.CommandId, nil
}

// Cancel enqueues a cancellation-flagged command carrying the original
// command ID to the owning agent. Returns false for unknown or already
// resolved IDs. The original pending entry is left in place; the agent
// replies to the cancellation instead.
func (b *Bus) Cancel(commandID string) bool {
	b.mu.Lock()
	agentID, ok := b.pending[commandID]
	if !ok {
		b.mu.Unlock()
		return false
	}
	q := b.queueLocked(agentID)
	b.mu.Unlock()

	q.push(&roostpb.Command{
		CommandId:      commandID,
		Type:           TypeCancel,
		IsCancellation: true,
	})
	b.logger.Info("cancellation enqueued", "agent_id", agentID, "command_id", commandID)
	return true
}

// RecordResult correlates a result with its pending command and stores it.
// Unknown or duplicate command IDs are accepted with no side effects so that
// late and re-delivered results never error.
func (b *Bus) RecordResult(res Result) {
	b.mu.Lock()
	_, wasPending := b.pending[res.CommandID]
	delete(b.pending, res.CommandID)
	if _, dup := b.results[res.CommandID]; !dup {
		b.results[res.CommandID] = res
	}
	b.mu.Unlock()

	if !wasPending {
		b.logger.Debug("result for unknown or resolved command", "command_id", res.CommandID)
	}
}

// Next blocks until the agent's next queued command or ctx cancellation.
// The queue is created on first use and persists across calls, so commands
// enqueued while the agent was disconnected are delivered on reconnect.
func (b *Bus) Next(ctx context.Context, agentID string) (*roostpb.Command, error) {
	b.mu.Lock()
	q := b.queueLocked(agentID)
	b.mu.Unlock()
	return q.pop(ctx)
}

// Pending reports whether the command is still awaiting a result.
func (b *Bus) Pending(commandID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.pending[commandID]
	return ok
}

// ResultFor returns the stored result for a command, if one has arrived.
func (b *Bus) ResultFor(commandID string) (Result, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	res, ok := b.results[commandID]
	return res, ok
}

// QueueDepth returns how many commands await delivery to the agent.
func (b *Bus) QueueDepth(agentID string) int {
	b.mu.Lock()
	q, ok := b.queues[agentID]
	b.mu.Unlock()
	if !ok {
		return 0
	}
	return q.len()
}

func (b *Bus) queueLocked(agentID string) *queue {
	q, ok := b.queues[agentID]
	if !ok {
		q = newQueue()
		b.queues[agentID] = q
	}
	return q
}

func (b *Bus) applyState(agentID string, st status.State) {
	b.store.Update(status.Update{
		AgentID: agentID,
		Metrics: map[string]string{status.MetricInternalState: string(st)},
	})
	if b.notifier != nil {
		b.notifier.NotifyChanged(true)
	}
}
