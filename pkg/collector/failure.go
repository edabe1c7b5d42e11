package collector

import (
	"fmt"
	"strings"
	"time"
)

// Failure is a single soft assertion that did not hold.
type Failure struct {
	// Seq is the 1-based position of the failure in its collector.
	Seq int `json:"seq" yaml:"seq"`

	// Kind names the wrapper variant that ran the check
	// (e.g. "int", "string", "error").
	Kind string `json:"kind" yaml:"kind"`

	// Check is the assertion method that failed (e.g. "IsTrue").
	Check string `json:"check" yaml:"check"`

	// Description is the optional text set with As.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Summary is the one-line reason for the failure.
	Summary string `json:"summary" yaml:"summary"`

	// Message is the full failure output.
	Message string `json:"message" yaml:"message"`

	// Time is when the failure was recorded.
	Time time.Time `json:"time" yaml:"time"`
}

// Error implements error.
func (f Failure) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s.%s]", f.Kind, f.Check)
	if f.Description != "" {
		fmt.Fprintf(&sb, " [%s]", f.Description)
	}
	summary := f.Summary
	if summary == "" {
		summary = strings.TrimSpace(f.Message)
	}
	sb.WriteString(" ")
	sb.WriteString(summary)
	return sb.String()
}

// labels are the headings testify's assert package prints before
// each block of its failure output.
var labels = []string{
	"Error Trace:",
	"Error:",
	"Test:",
	"Messages:",
}

// Summarize extracts the "Error:" block from testify's labelled
// failure output. Output without labels is returned trimmed.
func Summarize(message string) string {
	lines := strings.Split(message, "\n")

	var (
		parts   []string
		inError bool
	)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		label := labelOf(trimmed)
		switch {
		case label == "Error:":
			inError = true
			if rest := strings.TrimSpace(
				strings.TrimPrefix(trimmed, label),
			); rest != "" {
				parts = append(parts, rest)
			}
		case label != "":
			if inError {
				return strings.Join(parts, " ")
			}
		case inError && trimmed != "":
			parts = append(parts, trimmed)
		}
	}

	if len(parts) == 0 {
		return strings.TrimSpace(message)
	}
	return strings.Join(parts, " ")
}

func labelOf(line string) string {
	for _, l := range labels {
		if strings.HasPrefix(line, l) {
			return l
		}
	}
	return ""
}
