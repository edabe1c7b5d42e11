package monitor

import (
	"sort"
	"sync"
	"time"

	"digital.vasic.softassert/pkg/collector"
)

// DashboardData is a live view of the failures recorded in a run,
// grouped by wrapper kind.
type DashboardData struct {
	mu        sync.RWMutex
	RunID     string               `json:"run_id"`
	StartTime time.Time            `json:"start_time"`
	Status    string               `json:"status"` // running, passed, failed
	Kinds     map[string]KindState `json:"kinds"`
	Summary   DashboardSummary     `json:"summary"`
}

// KindState aggregates the failures of one wrapper kind.
type KindState struct {
	Kind        string    `json:"kind"`
	Failures    int       `json:"failures"`
	LastCheck   string    `json:"last_check"`
	LastSummary string    `json:"last_summary"`
	LastAt      time.Time `json:"last_at"`
}

// DashboardSummary holds aggregate stats for the dashboard.
type DashboardSummary struct {
	Failures int      `json:"failures"`
	Kinds    []string `json:"kinds"`
	Elapsed  string   `json:"elapsed"`
}

// Run statuses shown on the dashboard.
const (
	StatusRunning = "running"
	StatusPassed  = "passed"
	StatusFailed  = "failed"
)

// NewDashboardData creates a new dashboard data instance.
func NewDashboardData(runID string) *DashboardData {
	return &DashboardData{
		RunID:     runID,
		StartTime: time.Now(),
		Status:    StatusRunning,
		Kinds:     make(map[string]KindState),
	}
}

// UpdateFromFailure folds one failure into the dashboard.
func (d *DashboardData) UpdateFromFailure(f collector.Failure) {
	d.mu.Lock()
	defer d.mu.Unlock()

	state := d.Kinds[f.Kind]
	state.Kind = f.Kind
	state.Failures++
	state.LastCheck = f.Check
	state.LastSummary = f.Summary
	state.LastAt = f.Time
	d.Kinds[f.Kind] = state

	d.recalcSummary()
}

func (d *DashboardData) recalcSummary() {
	s := DashboardSummary{Kinds: make([]string, 0, len(d.Kinds))}
	for kind, st := range d.Kinds {
		s.Failures += st.Failures
		s.Kinds = append(s.Kinds, kind)
	}
	sort.Strings(s.Kinds)
	s.Elapsed = time.Since(d.StartTime).Round(time.Millisecond).String()
	d.Summary = s
}

// Snapshot returns a copy of the current dashboard state.
func (d *DashboardData) Snapshot() *DashboardData {
	d.mu.RLock()
	defer d.mu.RUnlock()
	snap := &DashboardData{
		RunID:     d.RunID,
		StartTime: d.StartTime,
		Status:    d.Status,
		Kinds:     make(map[string]KindState, len(d.Kinds)),
		Summary:   d.Summary,
	}
	snap.Summary.Kinds = append([]string(nil), d.Summary.Kinds...)
	for k, v := range d.Kinds {
		snap.Kinds[k] = v
	}
	return snap
}

// SetStatus sets the overall run status.
func (d *DashboardData) SetStatus(status string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Status = status
}

// BuildDashboardData creates a DashboardData by replaying the
// failures already recorded in c.
func BuildDashboardData(runID string, c *collector.Collector) *DashboardData {
	data := NewDashboardData(runID)
	data.StartTime = c.Stats().StartTime
	for _, f := range c.Failures() {
		data.UpdateFromFailure(f)
	}
	return data
}
