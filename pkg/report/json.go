package report

import (
	"encoding/json"
	"io"
)

// JSONReporter renders runs as JSON. Saved JSON runs can be read
// back with Load.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a JSON reporter. When pretty is true,
// output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// Generate renders the run as JSON.
func (r *JSONReporter) Generate(run *Run) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(run, "", "  ")
	}
	return json.Marshal(run)
}

// Write writes the JSON report to w.
func (r *JSONReporter) Write(w io.Writer, run *Run) error {
	data, err := r.Generate(run)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Extension returns "json".
func (r *JSONReporter) Extension() string { return "json" }
