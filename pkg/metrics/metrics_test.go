package metrics

import (
	"testing"
)

func TestNoopMetrics_ImplementsInterface(t *testing.T) {
	var _ AssertionMetrics = NoopMetrics{}
}

func TestNoopMetrics(t *testing.T) {
	m := &NoopMetrics{}
	// Should not panic
	m.RecordCheck("int", "IsZero", true)
	m.RecordFailure("int")
	m.IncrementRunTotal()
}
