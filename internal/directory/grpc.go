// ABOUTME: RoostDirectory gRPC service implementation over the directory components
// ABOUTME: Application failures are boolean acks, never transport faults

package directory

import (
	"context"
	"errors"
	"maps"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/roostlabs/roost/internal/command"
	"github.com/roostlabs/roost/internal/status"
	roostpb "github.com/roostlabs/roost/proto/roost"
)

type directoryService struct {
	roostpb.UnimplementedRoostDirectoryServer
	directory *Directory
}

// RegisterAgent creates or refreshes the agent's status record and marks it
// online. An empty agent_id gets a server-assigned UUID; a supplied one is
// echoed back so re-registration after reconnect keeps identity.
func (s *directoryService) RegisterAgent(ctx context.Context, req *roostpb.RegisterAgentRequest) (*roostpb.RegisterAgentResponse, error) {
	d := s.directory

	agentID := req.GetAgentId()
	if agentID == "" {
		agentID = uuid.New().String()
	}

	metrics := make(map[string]string, len(req.GetCapabilities())+4)
	maps.Copy(metrics, req.GetCapabilities())
	if req.GetHostname() != "" {
		metrics["hostname"] = req.GetHostname()
	}
	if req.GetPlatform() != "" {
		metrics["platform"] = req.GetPlatform()
	}
	if req.GetVersion() != "" {
		metrics["version"] = req.GetVersion()
	}
	metrics[status.MetricInternalState] = string(status.StateOnline)

	changed := d.store.Update(status.Update{
		AgentID:   agentID,
		AgentName: req.GetAgentName(),
		Metrics:   metrics,
	})
	if changed {
		d.fanout.NotifyChanged(false)
	}

	d.logger.Info("agent registered",
		"agent_id", agentID,
		"agent_name", req.GetAgentName(),
		"hostname", req.GetHostname())

	return &roostpb.RegisterAgentResponse{
		Success:          true,
		Message:          "registered",
		ServerAssignedId: agentID,
	}, nil
}

// UnregisterAgent marks the agent offline and cancels its live command
// stream. The status record and command queue are kept so late results stay
// attributable and queued commands await a future reconnect.
func (s *directoryService) UnregisterAgent(ctx context.Context, req *roostpb.UnregisterAgentRequest) (*roostpb.Ack, error) {
	d := s.directory

	if _, ok := d.store.Get(req.GetAgentId()); !ok {
		return &roostpb.Ack{Success: false, Message: "unknown agent"}, nil
	}

	d.dropStream(req.GetAgentId())
	d.store.Update(status.Update{
		AgentID: req.GetAgentId(),
		Metrics: map[string]string{status.MetricInternalState: string(status.StateOffline)},
	})
	d.fanout.NotifyChanged(true)

	d.logger.Info("agent unregistered", "agent_id", req.GetAgentId())
	return &roostpb.Ack{Success: true, Message: "unregistered"}, nil
}

// SendAgentStatus merges a heartbeat into the store. A push from an unknown
// agent_id creates the record. Only observable changes trigger a push.
func (s *directoryService) SendAgentStatus(ctx context.Context, req *roostpb.AgentStatusUpdate) (*roostpb.Ack, error) {
	d := s.directory

	var lastSeen time.Time
	if ms := req.GetLastSeenUnixMs(); ms > 0 {
		lastSeen = time.UnixMilli(ms)
	}

	changed := d.store.Update(status.Update{
		AgentID:   req.GetAgentId(),
		AgentName: req.GetAgentName(),
		LastSeen:  lastSeen,
		Metrics:   req.GetMetrics(),
	})
	if changed {
		d.fanout.NotifyChanged(false)
	}

	return &roostpb.Ack{Success: true, Message: "ok"}, nil
}

// ReceiveCommands is the agent's long-lived command feed. The per-agent
// queue outlives the stream; a reconnect drains whatever queued while the
// agent was away. A second stream for the same agent supersedes the first.
func (s *directoryService) ReceiveCommands(req *roostpb.ReceiveCommandsRequest, stream grpc.ServerStreamingServer[roostpb.Command]) error {
	d := s.directory
	agentID := req.GetAgentId()

	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()
	handle := d.attachStream(agentID, cancel)
	defer d.detachStream(agentID, handle)

	d.logger.Info("command stream opened", "agent_id", agentID)
	for {
		cmd, err := d.bus.Next(ctx, agentID)
		if err != nil {
			// Stream cancelled, superseded, or agent unregistered.
			d.logger.Info("command stream closed", "agent_id", agentID, "reason", err)
			return nil
		}
		if err := stream.Send(cmd); err != nil {
			d.logger.Warn("command send failed", "agent_id", agentID, "command_id", cmd.GetCommandId(), "error", err)
			return err
		}
	}
}

// SendCommandResult correlates a result with its pending command. Unknown
// and duplicate command IDs are acknowledged anyway.
func (s *directoryService) SendCommandResult(ctx context.Context, req *roostpb.CommandResult) (*roostpb.CommandResultAck, error) {
	d := s.directory

	res := command.Result{
		CommandID:     req.GetCommandId(),
		AgentID:       req.GetAgentId(),
		Success:       req.GetSuccess(),
		Output:        req.GetOutput(),
		ErrorMessage:  req.GetErrorMessage(),
		ExitCode:      req.GetExitCode(),
		ExecutionTime: time.Duration(req.GetExecutionTimeMs()) * time.Millisecond,
	}
	d.bus.RecordResult(res)
	d.journal.ResultReceived(res)

	// A result is a sign of life for a known agent; an unknown agent_id does
	// not create a record here.
	if _, ok := d.store.Get(req.GetAgentId()); ok {
		d.store.Update(status.Update{AgentID: req.GetAgentId()})
	}

	return &roostpb.CommandResultAck{Received: true, Message: "ok"}, nil
}

// DispatchCommand enqueues a command for an agent. The only refusal is an
// agent with no status record; liveness never gates dispatch.
func (s *directoryService) DispatchCommand(ctx context.Context, req *roostpb.DispatchCommandRequest) (*roostpb.DispatchCommandResponse, error) {
	d := s.directory

	commandID, err := d.bus.Enqueue(req.GetAgentId(), req.GetType(), req.GetContent(), req.GetParameters())
	if err != nil {
		if errors.Is(err, command.ErrUnknownAgent) {
			return &roostpb.DispatchCommandResponse{Success: false, Message: "unknown agent"}, nil
		}
		return &roostpb.DispatchCommandResponse{Success: false, Message: err.Error()}, nil
	}

	d.journal.CommandDispatched(req.GetAgentId(), &roostpb.Command{
		CommandId:  commandID,
		Type:       req.GetType(),
		Content:    req.GetContent(),
		Parameters: req.GetParameters(),
	})

	return &roostpb.DispatchCommandResponse{
		Success:   true,
		Message:   "queued",
		CommandId: commandID,
	}, nil
}

// CancelCommand requests cancellation of a pending command. Unknown or
// already resolved IDs are a boolean failure, not an error.
func (s *directoryService) CancelCommand(ctx context.Context, req *roostpb.CancelCommandRequest) (*roostpb.Ack, error) {
	if !s.directory.bus.Cancel(req.GetCommandId()) {
		return &roostpb.Ack{Success: false, Message: "unknown or resolved command"}, nil
	}
	return &roostpb.Ack{Success: true, Message: "cancellation queued"}, nil
}

// RegisterBroker records the broker's display name. Brokers need no record
// to subscribe; registration exists for operator-facing labeling.
func (s *directoryService) RegisterBroker(ctx context.Context, req *roostpb.RegisterBrokerRequest) (*roostpb.Ack, error) {
	s.directory.rememberBroker(req.GetBrokerId(), req.GetBrokerName())
	s.directory.logger.Info("broker registered", "broker_id", req.GetBrokerId(), "broker_name", req.GetBrokerName())
	return &roostpb.Ack{Success: true, Message: "registered"}, nil
}

// SubscribeToAgentStatus is the broker's long-lived snapshot feed: one full
// snapshot up front, change-triggered pushes after, and a periodic forced
// full refresh. Teardown converges on one idempotent unsubscribe whether the
// transport context fires first or the delivery channel closes first.
func (s *directoryService) SubscribeToAgentStatus(req *roostpb.SubscribeRequest, stream grpc.ServerStreamingServer[roostpb.AgentStatusSnapshot]) error {
	d := s.directory

	sub := d.fanout.Subscribe(req.GetBrokerId())
	defer d.fanout.Unsubscribe(sub.ID())

	ctx := stream.Context()
	go func() {
		<-ctx.Done()
		d.fanout.Unsubscribe(sub.ID())
	}()

	refresh := time.NewTicker(d.cfg.Fanout.RefreshInterval)
	defer refresh.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-sub.Deliveries():
			if !ok {
				return nil
			}
			if err := stream.Send(snap); err != nil {
				d.logger.Warn("snapshot send failed", "broker_id", req.GetBrokerId(), "error", err)
				return err
			}
		case <-refresh.C:
			if err := stream.Send(d.fanout.SnapshotOnce()); err != nil {
				d.logger.Warn("refresh send failed", "broker_id", req.GetBrokerId(), "error", err)
				return err
			}
		}
	}
}

// GetAgentStatus returns one full snapshot with no subscription side effects.
func (s *directoryService) GetAgentStatus(ctx context.Context, req *roostpb.SubscribeRequest) (*roostpb.AgentStatusSnapshot, error) {
	return s.directory.fanout.SnapshotOnce(), nil
}
