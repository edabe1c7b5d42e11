package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.softassert/pkg/collector"
)

func makeTestRun(t *testing.T) *Run {
	t.Helper()
	c := collector.New()
	c.Observe(true)
	c.Observe(false)
	c.Record(collector.Failure{
		Kind:        "string",
		Check:       "Contains",
		Description: "user <name>",
		Summary:     `"bob" does not contain "al"`,
		Message:     "Error: \"bob\" does not contain \"al\"",
	})
	return NewRun("users|test", time.Now().Add(-time.Second), c)
}

func TestNewRun(t *testing.T) {
	run := makeTestRun(t)

	assert.Equal(t, "users|test", run.Name)
	assert.False(t, run.Passed)
	assert.Equal(t, "FAILED", run.Status())
	assert.Equal(t, 2, run.Stats.Total)
	assert.Equal(t, 1, run.Stats.Failed)
	require.Len(t, run.Failures, 1)
	assert.GreaterOrEqual(t, run.Duration, time.Second)
}

func TestNewRun_Passed(t *testing.T) {
	run := NewRun("ok", time.Now(), collector.New())

	assert.True(t, run.Passed)
	assert.Equal(t, "PASSED", run.Status())
	assert.Empty(t, run.Failures)
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		name string
		ext  string
	}{
		{"json", "json"},
		{"yaml", "yaml"},
		{"yml", "yaml"},
		{"markdown", "md"},
		{"MD", "md"},
		{"html", "html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ForFormat(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.ext, r.Extension())
		})
	}

	_, err := ForFormat("pdf")
	assert.ErrorContains(t, err, "unknown report format")
}

func TestJSONReporter(t *testing.T) {
	run := makeTestRun(t)

	pretty, err := NewJSONReporter(true).Generate(run)
	require.NoError(t, err)
	assert.True(t, json.Valid(pretty))
	assert.Contains(t, string(pretty), "\n  ")

	compact, err := NewJSONReporter(false).Generate(run)
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")

	var decoded Run
	require.NoError(t, json.Unmarshal(compact, &decoded))
	assert.Equal(t, run.Name, decoded.Name)
	assert.Equal(t, run.Failures[0].Summary, decoded.Failures[0].Summary)
}

func TestYAMLReporter(t *testing.T) {
	data, err := NewYAMLReporter().Generate(makeTestRun(t))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "users|test")
	assert.Contains(t, out, "check: Contains")
	assert.Contains(t, out, "passed: false")
}

func TestMarkdownReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownReporter().Write(&buf, makeTestRun(t)))

	out := buf.String()
	assert.Contains(t, out, "# Soft Assertions: users|test")
	assert.Contains(t, out, "**Status:** FAILED")
	assert.Contains(t, out, "| Failed | 1 |")
	assert.Contains(t, out, "### 1. string.Contains")
}

func TestMarkdownReporter_Passed(t *testing.T) {
	data, err := NewMarkdownReporter().Generate(NewRun("ok", time.Now(), collector.New()))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "## Failures")
}

func TestHTMLReporter_Escapes(t *testing.T) {
	data, err := NewHTMLReporter().Generate(makeTestRun(t))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "user &lt;name&gt;")
	assert.NotContains(t, out, "user <name>")
	assert.Contains(t, out, `class="status-failed"`)
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	run := makeTestRun(t)

	path, err := Save(dir, run, NewJSONReporter(true))
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, ".json", filepath.Ext(path))
	assert.Contains(t, filepath.Base(path), "users_test_")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, run.Name, loaded.Name)
	assert.Equal(t, run.Stats.Failed, loaded.Stats.Failed)
	require.Len(t, loaded.Failures, 1)
	assert.Equal(t, "Contains", loaded.Failures[0].Check)

	target, err := os.Readlink(filepath.Join(dir, "latest.json"))
	if err == nil {
		assert.Equal(t, filepath.Base(path), target)
	}

	entries, err := ReadHistory(filepath.Join(dir, HistoryFile))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "FAILED", entries[0].Status)
	assert.Equal(t, 1, entries[0].Failures)
	assert.Equal(t, path, entries[0].ReportPath)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	run := makeTestRun(t)

	path, err := Save(dir, run, NewYAMLReporter())
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, run.Name, loaded.Name)
	assert.Equal(t, run.Duration, loaded.Duration)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read report")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parse report")
}

func TestHistory_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), HistoryFile)
	run := makeTestRun(t)

	require.NoError(t, AppendHistory(path, run, "a.json"))
	require.NoError(t, AppendHistory(path, run, "b.json"))

	entries, err := ReadHistory(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.json", entries[0].ReportPath)
	assert.Equal(t, "b.json", entries[1].ReportPath)
}

func TestReadHistory_Missing(t *testing.T) {
	_, err := ReadHistory(filepath.Join(t.TempDir(), "none.jsonl"))
	assert.Error(t, err)
}
