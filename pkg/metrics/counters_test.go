package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterMetrics_ImplementsInterface(t *testing.T) {
	var _ AssertionMetrics = &CounterMetrics{}
}

func TestCounterMetrics_RecordCheck(t *testing.T) {
	m := NewCounterMetrics()
	m.RecordCheck("int", "IsPositive", true)
	m.RecordCheck("int", "IsPositive", true)
	m.RecordCheck("int", "IsPositive", false)

	assert.Equal(t, 2, m.CheckCount("int", "IsPositive", true))
	assert.Equal(t, 1, m.CheckCount("int", "IsPositive", false))
	assert.Equal(t, 0, m.CheckCount("string", "Contains", true))
	assert.Equal(t, 2, m.checks["int:IsPositive:passed"])
}

func TestCounterMetrics_RecordFailure(t *testing.T) {
	m := NewCounterMetrics()
	m.RecordFailure("error")
	m.RecordFailure("error")

	assert.Equal(t, 2, m.FailureCount("error"))
	assert.Equal(t, 0, m.FailureCount("int"))
}

func TestCounterMetrics_RunTotal(t *testing.T) {
	m := NewCounterMetrics()
	m.IncrementRunTotal()
	m.IncrementRunTotal()
	assert.Equal(t, 2, m.RunTotal())
}

func TestCounterMetrics_Concurrent(t *testing.T) {
	m := NewCounterMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordCheck("bool", "IsTrue", false)
			m.RecordFailure("bool")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, m.CheckCount("bool", "IsTrue", false))
	assert.Equal(t, 20, m.FailureCount("bool"))
}
