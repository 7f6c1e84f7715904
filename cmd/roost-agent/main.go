// ABOUTME: Reference agent for roost — registers, heartbeats, and executes commands
// ABOUTME: Usage: roost-agent [-addr localhost:50051] [-profile agent.toml]

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/BurntSushi/toml"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/roostlabs/roost/internal/client"
	"github.com/roostlabs/roost/internal/status"
	roostpb "github.com/roostlabs/roost/proto/roost"
)

var version = "dev"

// profile is the agent's TOML identity file.
type profile struct {
	AgentID      string            `toml:"agent_id"`
	AgentName    string            `toml:"agent_name"`
	Capabilities map[string]string `toml:"capabilities"`

	// WorkDelay simulates per-command execution time.
	WorkDelay string `toml:"work_delay"`
}

func loadProfile(path string) (*profile, error) {
	p := &profile{
		AgentName:    "roost agent",
		Capabilities: map[string]string{"echo": "true"},
		WorkDelay:    "250ms",
	}
	if path == "" {
		return p, nil
	}
	if _, err := toml.DecodeFile(path, p); err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", path, err)
	}
	return p, nil
}

func main() {
	addr := flag.String("addr", "localhost:50051", "directory gRPC address")
	profilePath := flag.String("profile", "", "TOML profile path")
	flag.Parse()

	if err := run(*addr, *profilePath); err != nil {
		log.Fatal(err)
	}
}

func run(addr, profilePath string) error {
	prof, err := loadProfile(profilePath)
	if err != nil {
		return err
	}
	workDelay, err := time.ParseDuration(prof.WorkDelay)
	if err != nil {
		return fmt.Errorf("parsing work_delay: %w", err)
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	hostname, _ := os.Hostname()

	var paused atomic.Bool
	var session *client.AgentSession
	session = client.NewAgentSession(client.AgentOptions{
		Client:       roostpb.NewRoostDirectoryClient(conn),
		AgentID:      prof.AgentID,
		AgentName:    prof.AgentName,
		Capabilities: prof.Capabilities,
		Hostname:     hostname,
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
		Version:      version,
		Handler: func(cmdCtx context.Context, cmd *roostpb.Command) client.Outcome {
			return handleCommand(cmdCtx, cmd, session, &paused, workDelay, cancel)
		},
		Logger: slog.Default(),
	})

	fmt.Fprintf(os.Stderr, "roost-agent %s connecting to %s\n", version, addr)
	err = session.Run(ctx)
	if ctx.Err() != nil {
		return nil // graceful shutdown
	}
	return err
}

// handleCommand executes one command. pause and resume flip the reported
// state; a paused agent acknowledges commands without doing the work.
func handleCommand(ctx context.Context, cmd *roostpb.Command, session *client.AgentSession, paused *atomic.Bool, workDelay time.Duration, shutdown context.CancelFunc) client.Outcome {
	if cmd.GetIsCancellation() {
		return client.Outcome{Success: true, Output: "cancelled " + cmd.GetCommandId()}
	}

	switch cmd.GetType() {
	case "pause":
		paused.Store(true)
		session.SetState(status.StatePaused)
		return client.Outcome{Success: true, Output: "paused"}
	case "resume":
		paused.Store(false)
		session.SetState(status.StateIdle)
		return client.Outcome{Success: true, Output: "resumed"}
	case "shutdown":
		session.SetState(status.StateShuttingDown)
		defer shutdown()
		return client.Outcome{Success: true, Output: "shutting down"}
	}

	if paused.Load() {
		return client.Outcome{
			Success:      false,
			ErrorMessage: "agent is paused",
			ExitCode:     1,
		}
	}

	// Simulated work: real deployments swap in an executor here.
	select {
	case <-ctx.Done():
		return client.Outcome{Success: false, ErrorMessage: ctx.Err().Error(), ExitCode: 1}
	case <-time.After(workDelay):
	}

	return client.Outcome{
		Success: true,
		Output:  fmt.Sprintf("executed %s: %s", cmd.GetType(), cmd.GetContent()),
	}
}
