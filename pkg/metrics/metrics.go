// Package metrics counts soft assertion checks and failures.
package metrics

// AssertionMetrics defines the interface for recording soft
// assertion metrics.
type AssertionMetrics interface {
	// RecordCheck records one evaluated check of the given
	// wrapper kind.
	RecordCheck(kind, check string, passed bool)
	// RecordFailure records a failure handed to the collector.
	RecordFailure(kind string)
	// IncrementRunTotal increments the number of finished runs.
	IncrementRunTotal()
}

// NoopMetrics is a no-op implementation of AssertionMetrics
// useful for testing or when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordCheck(_, _ string, _ bool) {}
func (NoopMetrics) RecordFailure(_ string)          {}
func (NoopMetrics) IncrementRunTotal()              {}
