// ABOUTME: Admin CLI for the roost directory — fleet status and dispatch control
// ABOUTME: Usage: roost-admin <status|send|cancel|pause|resume> [flags]

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/roostlabs/roost/internal/status"
	roostpb "github.com/roostlabs/roost/proto/roost"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func usage() {
	fmt.Println("Usage: roost-admin <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  status                      List known agents")
	fmt.Println("  send   -agent ID [-type T] [-content C]   Dispatch a command")
	fmt.Println("  cancel -command ID          Cancel a pending command")
	fmt.Println("  pause  -agent ID            Pause an agent")
	fmt.Println("  resume -agent ID            Resume a paused agent")
	fmt.Println()
	fmt.Println("The directory address comes from -addr or ROOST_DIRECTORY_ADDR")
	fmt.Println("(default localhost:50051).")
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	cmd, args := os.Args[1], os.Args[2:]

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	addr := fs.String("addr", getEnv("ROOST_DIRECTORY_ADDR", "localhost:50051"), "directory gRPC address")
	agentID := fs.String("agent", "", "target agent ID")
	commandID := fs.String("command", "", "command ID")
	cmdType := fs.String("type", "run", "command type")
	content := fs.String("content", "", "command content")
	fs.Parse(args)

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()
	client := roostpb.NewRoostDirectoryClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cmd {
	case "status":
		err = runStatus(ctx, client)
	case "send":
		err = runSend(ctx, client, *agentID, *cmdType, *content)
	case "cancel":
		err = runCancel(ctx, client, *commandID)
	case "pause":
		err = runSend(ctx, client, *agentID, "pause", "")
	case "resume":
		err = runSend(ctx, client, *agentID, "resume", "")
	default:
		usage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStatus(ctx context.Context, client roostpb.RoostDirectoryClient) error {
	snap, err := client.GetAgentStatus(ctx, &roostpb.SubscribeRequest{BrokerId: "roost-admin"})
	if err != nil {
		return fmt.Errorf("fetching status: %w", err)
	}

	if len(snap.GetAgents()) == 0 {
		fmt.Println("no agents known")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "AGENT\tNAME\tSTATE\tLAST SEEN\tMETRICS")
	for _, a := range snap.GetAgents() {
		st := status.State(a.GetMetrics()[status.MetricInternalState])
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			a.GetAgentId(),
			a.GetAgentName(),
			renderState(st),
			renderAge(a.GetLastSeenUnixMs()),
			renderMetrics(a.GetMetrics()),
		)
	}
	return w.Flush()
}

func renderState(st status.State) string {
	if st == "" {
		st = status.StateUnknownStatus
	}
	if st.Online() {
		return color.GreenString(string(st))
	}
	return color.RedString(string(st))
}

func renderAge(unixMs int64) string {
	if unixMs == 0 {
		return "-"
	}
	age := time.Since(time.UnixMilli(unixMs)).Round(time.Second)
	if age < 0 {
		age = 0
	}
	return fmt.Sprintf("%s ago", age)
}

func renderMetrics(metrics map[string]string) string {
	var parts []string
	for k, v := range metrics {
		if k == status.MetricInternalState {
			continue
		}
		parts = append(parts, k+"="+v)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func runSend(ctx context.Context, client roostpb.RoostDirectoryClient, agentID, cmdType, content string) error {
	if agentID == "" {
		return fmt.Errorf("-agent is required")
	}

	resp, err := client.DispatchCommand(ctx, &roostpb.DispatchCommandRequest{
		AgentId: agentID,
		Type:    cmdType,
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("dispatching: %w", err)
	}
	if !resp.GetSuccess() {
		return fmt.Errorf("dispatch refused: %s", resp.GetMessage())
	}

	fmt.Printf("queued %s for %s (command %s)\n", cmdType, agentID, resp.GetCommandId())
	return nil
}

func runCancel(ctx context.Context, client roostpb.RoostDirectoryClient, commandID string) error {
	if commandID == "" {
		return fmt.Errorf("-command is required")
	}

	ack, err := client.CancelCommand(ctx, &roostpb.CancelCommandRequest{CommandId: commandID})
	if err != nil {
		return fmt.Errorf("cancelling: %w", err)
	}
	if !ack.GetSuccess() {
		return fmt.Errorf("cancel refused: %s", ack.GetMessage())
	}

	fmt.Printf("cancellation queued for %s\n", commandID)
	return nil
}
