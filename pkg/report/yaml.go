package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLReporter renders runs as YAML.
type YAMLReporter struct{}

// NewYAMLReporter creates a YAML reporter.
func NewYAMLReporter() *YAMLReporter {
	return &YAMLReporter{}
}

// Generate renders run as YAML.
func (r *YAMLReporter) Generate(run *Run) ([]byte, error) {
	return generate(r, run)
}

// Write renders run to w.
func (r *YAMLReporter) Write(w io.Writer, run *Run) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(run); err != nil {
		return err
	}
	return enc.Close()
}

// Extension returns "yaml".
func (r *YAMLReporter) Extension() string { return "yaml" }
