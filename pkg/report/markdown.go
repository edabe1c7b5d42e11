package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// MarkdownReporter renders a summary table followed by one
// section per failure.
type MarkdownReporter struct{}

// NewMarkdownReporter creates a Markdown reporter.
func NewMarkdownReporter() *MarkdownReporter {
	return &MarkdownReporter{}
}

// Generate renders run as Markdown.
func (r *MarkdownReporter) Generate(run *Run) ([]byte, error) {
	return generate(r, run)
}

// Write renders run to w.
func (r *MarkdownReporter) Write(w io.Writer, run *Run) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Soft Assertions: %s\n\n", run.Name)
	fmt.Fprintf(&sb, "**Status:** %s\n\n", run.Status())
	fmt.Fprintf(&sb, "**Finished:** %s\n\n", run.FinishedAt.Format(time.RFC3339))

	sb.WriteString("## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	fmt.Fprintf(&sb, "| Checks | %d |\n", run.Stats.Total)
	fmt.Fprintf(&sb, "| Passed | %d |\n", run.Stats.Passed)
	fmt.Fprintf(&sb, "| Failed | %d |\n", run.Stats.Failed)
	fmt.Fprintf(&sb, "| Duration | %v |\n", run.Duration)

	if len(run.Failures) > 0 {
		sb.WriteString("\n## Failures\n\n")
		sb.WriteString("| # | Kind | Check | Description | Summary |\n")
		sb.WriteString("|---|------|-------|-------------|---------|\n")
		for _, f := range run.Failures {
			fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s |\n",
				f.Seq, f.Kind, f.Check,
				escapeCell(f.Description), escapeCell(f.Summary))
		}

		for _, f := range run.Failures {
			fmt.Fprintf(&sb, "\n### %d. %s.%s\n\n", f.Seq, f.Kind, f.Check)
			sb.WriteString("```\n")
			sb.WriteString(strings.TrimSpace(f.Message))
			sb.WriteString("\n```\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Extension returns "md".
func (r *MarkdownReporter) Extension() string { return "md" }

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
