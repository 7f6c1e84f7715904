// ABOUTME: Directory wiring and gRPC server lifecycle for roost-directory
// ABOUTME: Owns the status store, command bus, fan-out, and liveness checker

package directory

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"

	"github.com/roostlabs/roost/internal/command"
	"github.com/roostlabs/roost/internal/config"
	"github.com/roostlabs/roost/internal/fanout"
	"github.com/roostlabs/roost/internal/journal"
	"github.com/roostlabs/roost/internal/liveness"
	"github.com/roostlabs/roost/internal/status"
	roostpb "github.com/roostlabs/roost/proto/roost"
)

// Directory binds the status store, command bus, subscription fan-out, and
// liveness checker behind the RoostDirectory gRPC service. One Directory per
// process; no ambient global state.
type Directory struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *status.Store
	bus     *command.Bus
	fanout  *fanout.Fanout
	checker *liveness.Checker
	journal *journal.Journal

	mu      sync.Mutex
	brokers map[string]string        // broker_id -> broker_name
	streams map[string]*streamHandle // agent_id -> live command stream

	grpcServer *grpc.Server
}

// New constructs a directory from config. jrnl may be nil to disable the
// dispatch journal. Pass nil logger for default.
func New(cfg *config.Config, jrnl *journal.Journal, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	store := status.NewStore(logger)
	fo := fanout.New(store, cfg.Fanout.QueueCapacity, logger)
	bus := command.NewBus(store, fo, logger)
	checker := liveness.NewChecker(store, fo, cfg.Liveness.Interval, cfg.Liveness.Grace, logger)

	return &Directory{
		cfg:     cfg,
		logger:  logger.With("component", "directory"),
		store:   store,
		bus:     bus,
		fanout:  fo,
		checker: checker,
		journal: jrnl,
		brokers: make(map[string]string),
		streams: make(map[string]*streamHandle),
	}
}

// Store exposes the status store for the admin surface and tests.
func (d *Directory) Store() *status.Store { return d.store }

// Bus exposes the command bus for the admin surface and tests.
func (d *Directory) Bus() *command.Bus { return d.bus }

// Service returns the gRPC service implementation without starting a server.
func (d *Directory) Service() roostpb.RoostDirectoryServer {
	return &directoryService{directory: d}
}

// Run listens on the configured address and serves until ctx is done, then
// stops gracefully. Extra server options (e.g. a stats handler for tracing)
// are appended after the keepalive settings.
func (d *Directory) Run(ctx context.Context, extraOpts ...grpc.ServerOption) error {
	ln, err := net.Listen("tcp", d.cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", d.cfg.Server.GRPCAddr, err)
	}

	opts := append([]grpc.ServerOption{
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    15 * time.Second,
			Timeout: 5 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	}, extraOpts...)

	d.grpcServer = grpc.NewServer(opts...)
	roostpb.RegisterRoostDirectoryServer(d.grpcServer, d.Service())

	d.checker.Start(ctx)
	defer d.checker.Stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- d.grpcServer.Serve(ln)
	}()
	d.logger.Info("directory listening", "addr", ln.Addr().String())

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		d.shutdownGRPCServer()
		<-serveErr
		return nil
	}
}

// shutdownGRPCServer gracefully stops the gRPC server, force-stopping if
// draining takes too long.
func (d *Directory) shutdownGRPCServer() {
	stopped := make(chan struct{})
	go func() {
		d.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(10 * time.Second):
		d.grpcServer.Stop()
	}
}

// streamHandle identifies one live command stream so that teardown only
// removes the registration it still owns.
type streamHandle struct {
	cancel context.CancelFunc
}

// attachStream records an agent's live command stream, superseding and
// cancelling any previous stream for the same agent.
func (d *Directory) attachStream(agentID string, cancel context.CancelFunc) *streamHandle {
	h := &streamHandle{cancel: cancel}

	d.mu.Lock()
	prev := d.streams[agentID]
	d.streams[agentID] = h
	d.mu.Unlock()

	if prev != nil {
		d.logger.Info("superseding command stream", "agent_id", agentID)
		prev.cancel()
	}
	return h
}

// detachStream drops the registration only if h still owns it; a superseded
// stream exiting late must not evict its replacement.
func (d *Directory) detachStream(agentID string, h *streamHandle) {
	d.mu.Lock()
	if d.streams[agentID] == h {
		delete(d.streams, agentID)
	}
	d.mu.Unlock()
}

// dropStream cancels and removes an agent's live stream, if any. Used by
// unregistration.
func (d *Directory) dropStream(agentID string) {
	d.mu.Lock()
	h, ok := d.streams[agentID]
	delete(d.streams, agentID)
	d.mu.Unlock()

	if ok {
		h.cancel()
	}
}

// rememberBroker records the broker's display name.
func (d *Directory) rememberBroker(brokerID, brokerName string) {
	d.mu.Lock()
	d.brokers[brokerID] = brokerName
	d.mu.Unlock()
}
