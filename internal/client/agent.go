// ABOUTME: Agent-side session against the directory: register, heartbeat, command loop
// ABOUTME: Transport-transient errors are retried forever with backoff

package client

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/roostlabs/roost/internal/status"
	roostpb "github.com/roostlabs/roost/proto/roost"
)

const defaultHeartbeatInterval = 30 * time.Second

// Outcome is what a command handler produces for one executed command.
type Outcome struct {
	Success      bool
	Output       string
	ErrorMessage string
	ExitCode     int32
}

// CommandHandler executes one command. Cancellations arrive here too, with
// IsCancellation set and the original command's ID.
type CommandHandler func(ctx context.Context, cmd *roostpb.Command) Outcome

// AgentOptions configures an AgentSession.
type AgentOptions struct {
	Client       roostpb.RoostDirectoryClient
	AgentID      string // empty requests a server-assigned ID
	AgentName    string
	Capabilities map[string]string
	Hostname     string
	Platform     string
	Version      string

	// HeartbeatInterval defaults to 30s.
	HeartbeatInterval time.Duration
	Handler           CommandHandler
	Backoff           Backoff
	Logger            *slog.Logger
}

// AgentSession maintains one agent's logical session: register, heartbeat,
// receive commands, report results. Run retries through every transport
// failure until its context is cancelled.
type AgentSession struct {
	opts   AgentOptions
	logger *slog.Logger

	mu      sync.Mutex
	agentID string
	metrics map[string]string
	backoff Backoff
}

// NewAgentSession creates a session. The handler is required; everything
// else has defaults.
func NewAgentSession(opts AgentOptions) *AgentSession {
	if opts.HeartbeatInterval <= 0 {
		opts.HeartbeatInterval = defaultHeartbeatInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := map[string]string{
		status.MetricInternalState: string(status.StateInitializing),
	}
	return &AgentSession{
		opts:    opts,
		logger:  logger.With("component", "agent-session"),
		agentID: opts.AgentID,
		metrics: metrics,
		backoff: opts.Backoff,
	}
}

// AgentID returns the effective agent ID, which may be server-assigned
// after the first successful registration.
func (s *AgentSession) AgentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agentID
}

// SetMetric updates one metric reported on the next heartbeat.
func (s *AgentSession) SetMetric(key, value string) {
	s.mu.Lock()
	s.metrics[key] = value
	s.mu.Unlock()
}

// SetState updates the internal_state metric.
func (s *AgentSession) SetState(st status.State) {
	s.SetMetric(status.MetricInternalState, string(st))
}

func (s *AgentSession) currentState() status.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return status.State(s.metrics[status.MetricInternalState])
}

// Run drives the session until ctx is cancelled. Each pass registers,
// starts heartbeating, and drains the command stream; any failure tears the
// pass down and the next one starts after backoff.
func (s *AgentSession) Run(ctx context.Context) error {
	for {
		if err := s.runOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			delay := s.backoff.Next()
			s.logger.Warn("session attempt failed, backing off", "error", err, "delay", delay)
			if !sleep(ctx, delay) {
				return ctx.Err()
			}
			continue
		}
		return ctx.Err()
	}
}

func (s *AgentSession) runOnce(ctx context.Context) error {
	if err := s.register(ctx); err != nil {
		return err
	}
	s.backoff.Reset()
	s.SetState(status.StateIdle)

	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	go s.heartbeatLoop(hbCtx)

	// Push the idle state before blocking on commands.
	s.sendHeartbeat(ctx)

	return s.commandLoop(ctx)
}

func (s *AgentSession) register(ctx context.Context) error {
	s.mu.Lock()
	agentID := s.agentID
	s.mu.Unlock()

	resp, err := s.opts.Client.RegisterAgent(ctx, &roostpb.RegisterAgentRequest{
		AgentId:      agentID,
		AgentName:    s.opts.AgentName,
		Capabilities: s.opts.Capabilities,
		Hostname:     s.opts.Hostname,
		Platform:     s.opts.Platform,
		Version:      s.opts.Version,
	})
	if err != nil {
		return fmt.Errorf("registering: %w", err)
	}
	if !resp.GetSuccess() {
		return fmt.Errorf("registration refused: %s", resp.GetMessage())
	}

	s.mu.Lock()
	s.agentID = resp.GetServerAssignedId()
	s.mu.Unlock()

	s.logger.Info("registered", "agent_id", resp.GetServerAssignedId())
	return nil
}

func (s *AgentSession) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(s.opts.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sendHeartbeat(ctx)
		}
	}
}

func (s *AgentSession) sendHeartbeat(ctx context.Context) {
	s.mu.Lock()
	agentID := s.agentID
	metrics := maps.Clone(s.metrics)
	s.mu.Unlock()

	_, err := s.opts.Client.SendAgentStatus(ctx, &roostpb.AgentStatusUpdate{
		AgentId:   agentID,
		AgentName: s.opts.AgentName,
		Metrics:   metrics,
	})
	if err != nil && ctx.Err() == nil {
		// The command stream notices the outage; heartbeats just log.
		s.logger.Debug("heartbeat failed", "error", err)
	}
}

func (s *AgentSession) commandLoop(ctx context.Context) error {
	stream, err := s.opts.Client.ReceiveCommands(ctx, &roostpb.ReceiveCommandsRequest{
		AgentId: s.AgentID(),
	})
	if err != nil {
		return fmt.Errorf("opening command stream: %w", err)
	}

	s.logger.Info("command stream open", "agent_id", s.AgentID())
	for {
		cmd, err := stream.Recv()
		if err != nil {
			return fmt.Errorf("command stream: %w", err)
		}
		s.handleCommand(ctx, cmd)
	}
}

func (s *AgentSession) handleCommand(ctx context.Context, cmd *roostpb.Command) {
	s.logger.Info("command received",
		"command_id", cmd.GetCommandId(),
		"type", cmd.GetType(),
		"is_cancellation", cmd.GetIsCancellation())

	prev := s.currentState()
	s.SetState(status.StateResponding)
	started := time.Now()
	outcome := s.opts.Handler(ctx, cmd)
	elapsed := time.Since(started)
	// Restore the prior state unless the handler moved it (pause, shutdown).
	if s.currentState() == status.StateResponding {
		s.SetState(prev)
	}

	_, err := s.opts.Client.SendCommandResult(ctx, &roostpb.CommandResult{
		CommandId:       cmd.GetCommandId(),
		AgentId:         s.AgentID(),
		Success:         outcome.Success,
		Output:          outcome.Output,
		ErrorMessage:    outcome.ErrorMessage,
		ExitCode:        outcome.ExitCode,
		ExecutionTimeMs: elapsed.Milliseconds(),
	})
	if err != nil && ctx.Err() == nil {
		// The directory tolerates the gap: the pending entry stays until a
		// retried result or cancellation resolves it.
		s.logger.Warn("result delivery failed", "command_id", cmd.GetCommandId(), "error", err)
	}
}
