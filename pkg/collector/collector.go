// Package collector holds the failures recorded by soft assertions
// until a test decides to report them.
package collector

import (
	"sync"
	"time"

	"go.uber.org/multierr"
)

// Collector captures soft assertion failures and check counts. It
// is safe for concurrent use.
type Collector struct {
	mu       sync.RWMutex
	failures []Failure
	handlers []func(Failure)
	stats    Stats
	seq      int
}

// Stats holds aggregate check counts.
type Stats struct {
	Total     int       `json:"total" yaml:"total"`
	Passed    int       `json:"passed" yaml:"passed"`
	Failed    int       `json:"failed" yaml:"failed"`
	StartTime time.Time `json:"start_time" yaml:"start_time"`
}

// New creates an empty collector.
func New() *Collector {
	return &Collector{
		failures: make([]Failure, 0, 16),
		stats:    Stats{StartTime: time.Now()},
	}
}

// OnFailure registers a handler called for every recorded failure.
// Handlers run on the recording goroutine, outside the lock.
func (c *Collector) OnFailure(handler func(Failure)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Record stores a failure, stamping its sequence number and time,
// and notifies all handlers. The stored failure is returned.
func (c *Collector) Record(f Failure) Failure {
	if f.Time.IsZero() {
		f.Time = time.Now()
	}

	c.mu.Lock()
	c.seq++
	f.Seq = c.seq
	c.failures = append(c.failures, f)
	handlers := make([]func(Failure), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(f)
	}
	return f
}

// Observe counts one evaluated check.
func (c *Collector) Observe(passed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Total++
	if passed {
		c.stats.Passed++
	} else {
		c.stats.Failed++
	}
}

// Failures returns a copy of all recorded failures in record order.
func (c *Collector) Failures() []Failure {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Failure, len(c.failures))
	copy(result, c.failures)
	return result
}

// Errors returns the recorded failures as errors.
func (c *Collector) Errors() []error {
	failures := c.Failures()
	errs := make([]error, len(failures))
	for i, f := range failures {
		errs[i] = f
	}
	return errs
}

// Err combines all recorded failures into a single error, or nil
// when nothing failed.
func (c *Collector) Err() error {
	return multierr.Combine(c.Errors()...)
}

// Len returns the number of recorded failures.
func (c *Collector) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.failures)
}

// Stats returns the current check counts.
func (c *Collector) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Reset drops all failures and counts. Handlers stay registered.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = c.failures[:0]
	c.stats = Stats{StartTime: time.Now()}
	c.seq = 0
}
