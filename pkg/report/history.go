package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// HistoryEntry is one saved run in the history log.
type HistoryEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	Duration   string    `json:"duration"`
	Checks     int       `json:"checks"`
	Failures   int       `json:"failures"`
	ReportPath string    `json:"report_path"`
}

// AppendHistory adds an entry for run to the log at historyPath.
// Each entry is a single JSON line.
func AppendHistory(historyPath string, run *Run, reportPath string) error {
	entry := HistoryEntry{
		Timestamp:  run.FinishedAt,
		Name:       run.Name,
		Status:     run.Status(),
		Duration:   run.Duration.String(),
		Checks:     run.Stats.Total,
		Failures:   len(run.Failures),
		ReportPath: reportPath,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	file, err := os.OpenFile(historyPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}

// ReadHistory returns the entries of the log at historyPath in the
// order they were appended.
func ReadHistory(historyPath string) ([]HistoryEntry, error) {
	file, err := os.Open(historyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var entries []HistoryEntry
	scanner := bufio.NewScanner(file)
	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e HistoryEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("history line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}
