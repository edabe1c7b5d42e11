// Package soft provides BDD-style soft assertions. Every Then
// function wraps a value in a typed assertion whose failures are
// collected rather than stopping the test, so one run reports all
// of them:
//
//	func TestUser(t *testing.T) {
//		s := soft.New()
//		defer s.AssertAll(t)
//
//		s.ThenString(user.Name).StartsWith("A")
//		s.ThenInt(user.Age).IsBetween(18, 99)
//		s.ThenThrownBy(func() error { return user.Delete() }).
//			HasMessageContaining("forbidden")
//	}
package soft

import (
	"context"
	"time"

	"go.uber.org/multierr"

	"digital.vasic.softassert/pkg/collector"
	"digital.vasic.softassert/pkg/logging"
	"digital.vasic.softassert/pkg/metrics"
	"digital.vasic.softassert/pkg/monitor"
	"digital.vasic.softassert/pkg/report"
)

const (
	defaultRunName = "soft-assertions"
	closeTimeout   = 5 * time.Second
)

// TestingT is the subset of *testing.T used to report collected
// failures.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// SoftAssertions creates soft assertion wrappers that share one
// failure collector. It is safe for concurrent use.
type SoftAssertions struct {
	collector *collector.Collector
	logger    logging.Logger
	metrics   metrics.AssertionMetrics
	registry  *Registry
	monitor   *monitor.Server
	reporter  report.Reporter
	reportDir string
	runName   string
	started   time.Time
}

// Option configures a SoftAssertions.
type Option func(*SoftAssertions)

// WithLogger sets the logger for checks, failures and summaries.
func WithLogger(l logging.Logger) Option {
	return func(s *SoftAssertions) {
		s.logger = l
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m metrics.AssertionMetrics) Option {
	return func(s *SoftAssertions) {
		s.metrics = m
	}
}

// WithCollector shares an existing collector, e.g. one a monitor
// is already attached to.
func WithCollector(c *collector.Collector) Option {
	return func(s *SoftAssertions) {
		s.collector = c
	}
}

// WithMonitor publishes the run status to m when AssertAll runs and
// stops m on Close. m should watch the same collector, see
// WithCollector.
func WithMonitor(m *monitor.Server) Option {
	return func(s *SoftAssertions) {
		s.monitor = m
	}
}

// WithReport makes AssertAll save a report of the run in dir.
func WithReport(r report.Reporter, dir, name string) Option {
	return func(s *SoftAssertions) {
		s.reporter = r
		s.reportDir = dir
		s.runName = name
	}
}

// New creates a SoftAssertions with a fresh collector, a
// NullLogger and no-op metrics unless options say otherwise.
func New(opts ...Option) *SoftAssertions {
	s := &SoftAssertions{
		logger:  logging.NullLogger{},
		metrics: metrics.NoopMetrics{},
		runName: defaultRunName,
		started: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.collector == nil {
		s.collector = collector.New()
	}
	s.registry = newRegistry()
	return s
}

// Run creates a SoftAssertions, passes it to fn and reports every
// collected failure to t once fn returns or panics.
func Run(t TestingT, fn func(s *SoftAssertions), opts ...Option) {
	t.Helper()
	s := New(opts...)
	defer s.AssertAll(t)
	fn(s)
}

// Collector returns the collector failures are recorded in.
func (s *SoftAssertions) Collector() *collector.Collector {
	return s.collector
}

// Registry returns the runtime dispatch table used by Then.
func (s *SoftAssertions) Registry() *Registry {
	return s.registry
}

// Failures returns the collected failures in record order.
func (s *SoftAssertions) Failures() []collector.Failure {
	return s.collector.Failures()
}

// Errors returns the collected failures as errors.
func (s *SoftAssertions) Errors() []error {
	return s.collector.Errors()
}

// Err returns all collected failures combined, or nil.
func (s *SoftAssertions) Err() error {
	return s.collector.Err()
}

// WasSuccess reports whether no failure has been collected.
func (s *SoftAssertions) WasSuccess() bool {
	return s.collector.Len() == 0
}

// Monitor returns the live monitor, or nil when none is attached.
func (s *SoftAssertions) Monitor() *monitor.Server {
	return s.monitor
}

// Close stops the monitor and releases the logger.
func (s *SoftAssertions) Close() error {
	var err error
	if s.monitor != nil {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		err = s.monitor.Stop(ctx)
	}
	return multierr.Append(err, s.logger.Close())
}

// AssertAll reports every collected failure to t, one Errorf call
// per failure in record order, after publishing the run status to
// the monitor and writing the configured report.
// t is left untouched when nothing failed.
func (s *SoftAssertions) AssertAll(t TestingT) {
	t.Helper()

	failures := s.collector.Failures()
	stats := s.collector.Stats()
	s.metrics.IncrementRunTotal()

	fields := []logging.Field{
		logging.StringField("run", s.runName),
		logging.IntField("checks", stats.Total),
		logging.IntField("failures", len(failures)),
		logging.DurationField("elapsed", time.Since(s.started)),
	}
	passed := len(failures) == 0
	if passed {
		logging.Success(s.logger, "soft assertions passed", fields...)
	} else {
		s.logger.Error("soft assertions failed", fields...)
	}
	if s.monitor != nil {
		s.monitor.Finish(passed)
	}

	if err := s.writeReport(); err != nil {
		s.logger.Error("write report", logging.ErrorField(err))
		t.Errorf("soft assertions: %v", err)
	}

	for i, f := range failures {
		t.Errorf("soft assertion %d of %d failed: %s\n%s",
			i+1, len(failures), f.Error(), f.Message)
	}
}

func (s *SoftAssertions) writeReport() error {
	if s.reporter == nil {
		return nil
	}
	run := report.NewRun(s.runName, s.started, s.collector)
	path, err := report.Save(s.reportDir, run, s.reporter)
	if err != nil {
		return err
	}
	s.logger.Info("report written", logging.StringField("path", path))
	return nil
}

// proxy binds a value to this SoftAssertions under the given kind.
// Every Then function builds its wrapper around the result.
func (s *SoftAssertions) proxy(kind Kind, actual any) base {
	return base{soft: s, kind: kind, actual: actual}
}

func (s *SoftAssertions) observe(kind Kind, check string, passed bool) {
	s.collector.Observe(passed)
	s.metrics.RecordCheck(kind.String(), check, passed)
	s.logger.Debug("check evaluated",
		logging.StringField("kind", kind.String()),
		logging.StringField("check", check),
		logging.BoolField("passed", passed),
	)
}

func (s *SoftAssertions) record(f collector.Failure) {
	stored := s.collector.Record(f)
	s.metrics.RecordFailure(f.Kind)
	s.logger.Warn("soft assertion failed",
		logging.IntField("seq", stored.Seq),
		logging.StringField("kind", stored.Kind),
		logging.StringField("check", stored.Check),
		logging.StringField("description", stored.Description),
		logging.StringField("summary", stored.Summary),
	)
}
