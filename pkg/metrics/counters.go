package metrics

import "sync"

// CounterMetrics implements AssertionMetrics with in-memory
// counters. Exporting them is left to the host application.
type CounterMetrics struct {
	mu       sync.Mutex
	checks   map[string]int
	failures map[string]int
	runTotal int
}

// NewCounterMetrics creates a new CounterMetrics instance.
func NewCounterMetrics() *CounterMetrics {
	return &CounterMetrics{
		checks:   make(map[string]int),
		failures: make(map[string]int),
	}
}

func (m *CounterMetrics) RecordCheck(kind, check string, passed bool) {
	status := "failed"
	if passed {
		status = "passed"
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks[kind+":"+check+":"+status]++
}

func (m *CounterMetrics) RecordFailure(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[kind]++
}

func (m *CounterMetrics) IncrementRunTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runTotal++
}

// CheckCount returns how often a kind+check combination ended
// with the given outcome.
func (m *CounterMetrics) CheckCount(kind, check string, passed bool) int {
	status := "failed"
	if passed {
		status = "passed"
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checks[kind+":"+check+":"+status]
}

// FailureCount returns the number of failures recorded for a kind.
func (m *CounterMetrics) FailureCount(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failures[kind]
}

// RunTotal returns the total number of runs.
func (m *CounterMetrics) RunTotal() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runTotal
}
