package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// HistoryFile is the JSON-lines log Save appends to in each report
// directory.
const HistoryFile = "history.jsonl"

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Save writes the run to dir as <name>_<timestamp>.<ext>, points
// latest.<ext> at it and appends an entry to the history log. It
// returns the path of the written report.
func Save(dir string, run *Run, r Reporter) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	data, err := r.Generate(run)
	if err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}

	name := strings.Trim(unsafeName.ReplaceAllString(run.Name, "_"), "_")
	if name == "" {
		name = "run"
	}
	file := fmt.Sprintf("%s_%s.%s",
		name, run.FinishedAt.Format("20060102_150405.000"), r.Extension())
	path := filepath.Join(dir, file)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	latest := filepath.Join(dir, "latest."+r.Extension())
	_ = os.Remove(latest)
	_ = os.Symlink(file, latest)

	if err := AppendHistory(filepath.Join(dir, HistoryFile), run, path); err != nil {
		return path, err
	}
	return path, nil
}

// Load reads a run saved as JSON or YAML, chosen by extension.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	var run Run
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &run)
	default:
		err = json.Unmarshal(data, &run)
	}
	if err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	return &run, nil
}
