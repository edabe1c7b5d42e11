// Package report renders the outcome of a soft assertion run as
// JSON, YAML, Markdown or HTML and keeps a history of saved runs.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"digital.vasic.softassert/pkg/collector"
)

// Run is the outcome of one soft assertion run.
type Run struct {
	Name       string              `json:"name" yaml:"name"`
	StartedAt  time.Time           `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time           `json:"finished_at" yaml:"finished_at"`
	Duration   time.Duration       `json:"duration" yaml:"duration"`
	Stats      collector.Stats     `json:"stats" yaml:"stats"`
	Failures   []collector.Failure `json:"failures" yaml:"failures"`
	Passed     bool                `json:"passed" yaml:"passed"`
}

// NewRun snapshots the collector into a Run finishing now.
func NewRun(name string, started time.Time, c *collector.Collector) *Run {
	finished := time.Now()
	failures := c.Failures()
	return &Run{
		Name:       name,
		StartedAt:  started,
		FinishedAt: finished,
		Duration:   finished.Sub(started),
		Stats:      c.Stats(),
		Failures:   failures,
		Passed:     len(failures) == 0,
	}
}

// Status returns "PASSED" or "FAILED".
func (r *Run) Status() string {
	if r.Passed {
		return "PASSED"
	}
	return "FAILED"
}

// Reporter renders a Run in one format.
type Reporter interface {
	// Generate renders the run.
	Generate(run *Run) ([]byte, error)

	// Write renders the run to w.
	Write(w io.Writer, run *Run) error

	// Extension is the file extension for saved reports,
	// without the dot.
	Extension() string
}

// Formats lists the names ForFormat accepts.
var Formats = []string{"json", "yaml", "markdown", "html"}

// ForFormat returns the Reporter for a format name.
func ForFormat(name string) (Reporter, error) {
	switch strings.ToLower(name) {
	case "json":
		return NewJSONReporter(true), nil
	case "yaml", "yml":
		return NewYAMLReporter(), nil
	case "markdown", "md":
		return NewMarkdownReporter(), nil
	case "html":
		return NewHTMLReporter(), nil
	default:
		return nil, fmt.Errorf(
			"unknown report format %q (want one of %s)",
			name, strings.Join(Formats, ", "),
		)
	}
}

// generate renders through a reporter's Write method.
func generate(r Reporter, run *Run) ([]byte, error) {
	var sb strings.Builder
	if err := r.Write(&sb, run); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
