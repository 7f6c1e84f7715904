// ABOUTME: Append-only SQLite trail of dispatched commands and received results
// ABOUTME: Write-path only; the directory never reads it back for recovery

package journal

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/roostlabs/roost/internal/command"
	roostpb "github.com/roostlabs/roost/proto/roost"
)

// Journal records dispatch traffic for offline inspection. A nil *Journal is
// valid and disables every method.
type Journal struct {
	db     *sql.DB
	logger *slog.Logger
}

// Entry is one journaled dispatch row.
type Entry struct {
	CommandID    string
	AgentID      string
	Type         string
	Content      string
	DispatchedAt time.Time
}

// Open creates or opens the journal database at the given path.
// The schema is automatically created if it doesn't exist.
// Parent directories are created if needed.
func Open(path string) (*Journal, error) {
	logger := slog.Default().With("component", "journal")

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	j := &Journal{db: db, logger: logger}
	if err := j.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("journal opened", "path", path)
	return j, nil
}

func (j *Journal) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS dispatches (
			command_id TEXT PRIMARY KEY,
			agent_id TEXT NOT NULL,
			type TEXT NOT NULL,
			content TEXT NOT NULL,
			dispatched_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_dispatches_agent
			ON dispatches(agent_id, dispatched_at);

		CREATE TABLE IF NOT EXISTS results (
			command_id TEXT NOT NULL,
			agent_id TEXT NOT NULL,
			success INTEGER NOT NULL,
			output TEXT NOT NULL,
			error_message TEXT NOT NULL,
			exit_code INTEGER NOT NULL,
			execution_time_ms INTEGER NOT NULL,
			received_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_results_command
			ON results(command_id);
	`
	if _, err := j.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// CommandDispatched appends one dispatch row. Duplicate command IDs are
// ignored so a retried dispatch never double-journals.
func (j *Journal) CommandDispatched(agentID string, cmd *roostpb.Command) {
	if j == nil {
		return
	}
	_, err := j.db.Exec(
		`INSERT OR IGNORE INTO dispatches (command_id, agent_id, type, content, dispatched_at)
		 VALUES (?, ?, ?, ?, ?)`,
		cmd.GetCommandId(), agentID, cmd.GetType(), cmd.GetContent(), time.Now().UTC(),
	)
	if err != nil {
		j.logger.Warn("failed to journal dispatch", "command_id", cmd.GetCommandId(), "error", err)
	}
}

// ResultReceived appends one result row. Duplicates are appended as-is; the
// trail records what arrived, not what was accepted.
func (j *Journal) ResultReceived(res command.Result) {
	if j == nil {
		return
	}
	_, err := j.db.Exec(
		`INSERT INTO results (command_id, agent_id, success, output, error_message, exit_code, execution_time_ms, received_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		res.CommandID, res.AgentID, res.Success, res.Output, res.ErrorMessage,
		res.ExitCode, res.ExecutionTime.Milliseconds(), time.Now().UTC(),
	)
	if err != nil {
		j.logger.Warn("failed to journal result", "command_id", res.CommandID, "error", err)
	}
}

// RecentDispatches returns the newest dispatch rows, most recent first.
// Used by the admin CLI, never by the directory itself.
func (j *Journal) RecentDispatches(limit int) ([]Entry, error) {
	if j == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := j.db.Query(
		`SELECT command_id, agent_id, type, content, dispatched_at
		 FROM dispatches ORDER BY dispatched_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying dispatches: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.CommandID, &e.AgentID, &e.Type, &e.Content, &e.DispatchedAt); err != nil {
			return nil, fmt.Errorf("scanning dispatch row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}
