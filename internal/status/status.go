// ABOUTME: In-memory agent status store with field-level change detection
// ABOUTME: Owns liveness classification and the monotonic last_seen invariant

package status

import (
	"log/slog"
	"maps"
	"sort"
	"sync"
	"time"
)

// MetricInternalState is the reserved metrics key that drives liveness
// classification. All other metric keys are opaque telemetry.
const MetricInternalState = "internal_state"

// State is the value space of the internal_state metric. The set is open:
// unrecognized values classify as online so that new agent states never
// read as outages.
type State string

const (
	StateInitializing  State = "initializing"
	StateIdle          State = "idle"
	StateResponding    State = "responding"
	StatePaused        State = "paused"
	StateOnline        State = "online"
	StateOffline       State = "offline"
	StateShuttingDown  State = "shutting_down"
	StateError         State = "error"
	StateUnknownStatus State = "unknown_status"
	StateUnavailable   State = "unavailable"
)

// Online reports whether the state counts as reachable. The offline set is
// closed; anything outside it, including the empty string, is online.
func (s State) Online() bool {
	switch s {
	case StateOffline, StateShuttingDown, StateError, StateUnknownStatus, StateUnavailable:
		return false
	case StateInitializing, StateIdle, StateResponding, StatePaused, StateOnline:
		return true
	default:
		return true
	}
}

// Record is one agent's materialized status. Metrics always includes
// internal_state once any update has set it.
type Record struct {
	AgentID   string
	AgentName string
	LastSeen  time.Time
	Metrics   map[string]string
}

// State returns the record's internal_state metric.
func (r Record) State() State {
	return State(r.Metrics[MetricInternalState])
}

// Update is one status push. A zero LastSeen means "now". Metrics are merged
// additively into the stored record; keys absent from the update are kept.
type Update struct {
	AgentID   string
	AgentName string
	LastSeen  time.Time
	Metrics   map[string]string
}

// Store holds every known agent record. Records are created on first sight
// and removed only by explicit Delete; liveness demotion rewrites
// internal_state instead of deleting.
type Store struct {
	mu     sync.RWMutex
	agents map[string]*Record
	logger *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewStore creates an empty store. Pass nil logger for default.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		agents: make(map[string]*Record),
		logger: logger.With("component", "status"),
		now:    time.Now,
	}
}

// Update merges u into the stored record, creating it if absent, and reports
// whether any observable field changed: agent_name, any metric value, or the
// derived online classification. last_seen advances to the maximum of the
// stored and supplied values and never regresses; a bare heartbeat that only
// moves last_seen is not a change.
func (s *Store) Update(u Update) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := u.LastSeen
	if seen.IsZero() {
		seen = s.now()
	}

	rec, ok := s.agents[u.AgentID]
	if !ok {
		rec = &Record{
			AgentID: u.AgentID,
			Metrics: make(map[string]string),
		}
		s.agents[u.AgentID] = rec
		s.logger.Info("agent record created", "agent_id", u.AgentID, "agent_name", u.AgentName)
		rec.AgentName = u.AgentName
		rec.LastSeen = seen
		maps.Copy(rec.Metrics, u.Metrics)
		return true
	}

	changed := false

	if u.AgentName != "" && u.AgentName != rec.AgentName {
		rec.AgentName = u.AgentName
		changed = true
	}

	wasOnline := rec.State().Online()
	for k, v := range u.Metrics {
		if prev, exists := rec.Metrics[k]; !exists || prev != v {
			rec.Metrics[k] = v
			changed = true
		}
	}
	if rec.State().Online() != wasOnline {
		changed = true
	}

	if seen.After(rec.LastSeen) {
		rec.LastSeen = seen
	}

	return changed
}

// Get returns a copy of one record.
func (s *Store) Get(agentID string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.agents[agentID]
	if !ok {
		return Record{}, false
	}
	return cloneRecord(rec), true
}

// Snapshot returns a copy of every record, sorted by agent ID for stable
// output. Safe for concurrent readers.
func (s *Store) Snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.agents))
	for _, rec := range s.agents {
		out = append(out, cloneRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AgentID < out[j].AgentID })
	return out
}

// Len returns the number of known agents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.agents)
}

// Delete removes a record outright. The directory facade never calls this;
// unregistration demotes to offline so late results stay attributable.
func (s *Store) Delete(agentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.agents, agentID)
}

func cloneRecord(rec *Record) Record {
	out := *rec
	out.Metrics = maps.Clone(rec.Metrics)
	return out
}
