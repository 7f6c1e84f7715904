// ABOUTME: Live terminal dashboard over the directory's status feed
// ABOUTME: Usage: roost-top [-addr localhost:50051]

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/roostlabs/roost/internal/client"
	"github.com/roostlabs/roost/internal/status"
	roostpb "github.com/roostlabs/roost/proto/roost"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	onlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// refreshMsg arrives whenever the broker view applies a snapshot. The model
// re-reads the view; the message carries nothing.
type refreshMsg struct{}

// tickMsg re-renders LAST SEEN ages between snapshots.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	view  *client.BrokerView
	table table.Model
	addr  string
}

func newModel(view *client.BrokerView, addr string) model {
	columns := []table.Column{
		{Title: "AGENT", Width: 36},
		{Title: "NAME", Width: 20},
		{Title: "STATE", Width: 14},
		{Title: "LAST SEEN", Width: 12},
		{Title: "METRICS", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return model{view: view, table: t, addr: addr}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 6)
	case refreshMsg:
		m.table.SetRows(m.rows())
		return m, nil
	case tickMsg:
		m.table.SetRows(m.rows())
		return m, tick()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) rows() []table.Row {
	agents := m.view.Agents()
	rows := make([]table.Row, 0, len(agents))
	for _, a := range agents {
		st := status.State(a.GetMetrics()[status.MetricInternalState])
		if st == "" {
			st = status.StateUnknownStatus
		}
		rows = append(rows, table.Row{
			a.GetAgentId(),
			a.GetAgentName(),
			renderState(st),
			renderAge(a.GetLastSeenUnixMs()),
			renderMetrics(a.GetMetrics()),
		})
	}
	return rows
}

func (m model) View() string {
	online := 0
	agents := m.view.Agents()
	for _, a := range agents {
		if status.State(a.GetMetrics()[status.MetricInternalState]).Online() {
			online++
		}
	}

	header := headerStyle.Render(fmt.Sprintf("roost ▸ %s", m.addr))
	summary := footerStyle.Render(fmt.Sprintf("%d agents, %d online", len(agents), online))
	footer := footerStyle.Render("q quit · ↑/↓ scroll")

	return lipgloss.JoinVertical(lipgloss.Left,
		header+"  "+summary,
		borderStyle.Render(m.table.View()),
		footer,
	)
}

func renderState(st status.State) string {
	if st.Online() {
		return onlineStyle.Render(string(st))
	}
	return offlineStyle.Render(string(st))
}

func renderAge(unixMs int64) string {
	if unixMs == 0 {
		return "-"
	}
	age := time.Since(time.UnixMilli(unixMs)).Round(time.Second)
	if age < 0 {
		age = 0
	}
	return age.String()
}

func renderMetrics(metrics map[string]string) string {
	var parts []string
	for k, v := range metrics {
		if k == status.MetricInternalState {
			continue
		}
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, " ")
}

func main() {
	addr := flag.String("addr", getEnv("ROOST_DIRECTORY_ADDR", "localhost:50051"), "directory gRPC address")
	flag.Parse()

	if err := run(*addr); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(addr string) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hostname, _ := os.Hostname()

	var p *tea.Program
	view := client.NewBrokerView(client.BrokerOptions{
		Client:     roostpb.NewRoostDirectoryClient(conn),
		BrokerID:   "roost-top-" + uuid.NewString(),
		BrokerName: "roost-top@" + hostname,
		OnUpdate: func() {
			p.Send(refreshMsg{})
		},
		// The alternate screen owns stdout; keep subscription noise out of it.
		Logger: slog.New(slog.DiscardHandler),
	})
	p = tea.NewProgram(newModel(view, addr), tea.WithAltScreen())

	// The view reconnects on its own; it only returns once ctx is cancelled.
	go view.Run(ctx)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
