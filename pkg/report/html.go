package report

import (
	"fmt"
	"html"
	"io"
	"strings"
	"time"
)

// HTMLReporter renders a standalone HTML page. All run content is
// escaped.
type HTMLReporter struct{}

// NewHTMLReporter creates an HTML reporter.
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{}
}

// Generate renders run as a standalone HTML page.
func (r *HTMLReporter) Generate(run *Run) ([]byte, error) {
	return generate(r, run)
}

// Write renders run to w.
func (r *HTMLReporter) Write(w io.Writer, run *Run) error {
	var sb strings.Builder
	title := "Soft Assertions: " + run.Name

	r.writeHeader(&sb, title)
	fmt.Fprintf(&sb, "<h1>%s</h1>\n", html.EscapeString(title))
	fmt.Fprintf(&sb, "<p><strong>Finished:</strong> %s</p>\n",
		run.FinishedAt.Format(time.RFC3339))

	r.writeSummaryTable(&sb, run)
	r.writeFailures(&sb, run)
	r.writeFooter(&sb)

	_, err := io.WriteString(w, sb.String())
	return err
}

// Extension returns "html".
func (r *HTMLReporter) Extension() string { return "html" }

func (r *HTMLReporter) writeSummaryTable(sb *strings.Builder, run *Run) {
	statusClass := "status-passed"
	if !run.Passed {
		statusClass = "status-failed"
	}

	sb.WriteString("<h2>Summary</h2>\n<table>\n")
	sb.WriteString("<tr><th>Metric</th><th>Value</th></tr>\n")
	fmt.Fprintf(sb, "<tr><td>Status</td><td class=\"%s\">%s</td></tr>\n",
		statusClass, run.Status())
	fmt.Fprintf(sb, "<tr><td>Checks</td><td>%d</td></tr>\n", run.Stats.Total)
	fmt.Fprintf(sb, "<tr><td>Passed</td><td>%d</td></tr>\n", run.Stats.Passed)
	fmt.Fprintf(sb, "<tr><td>Failed</td><td>%d</td></tr>\n", run.Stats.Failed)
	fmt.Fprintf(sb, "<tr><td>Duration</td><td>%v</td></tr>\n", run.Duration)
	sb.WriteString("</table>\n")
}

func (r *HTMLReporter) writeFailures(sb *strings.Builder, run *Run) {
	if len(run.Failures) == 0 {
		return
	}

	sb.WriteString("<h2>Failures</h2>\n<table>\n")
	sb.WriteString("<tr><th>#</th><th>Check</th><th>Description</th><th>Summary</th></tr>\n")
	for _, f := range run.Failures {
		fmt.Fprintf(sb,
			"<tr><td>%d</td><td><code>%s.%s</code></td><td>%s</td><td>%s</td></tr>\n",
			f.Seq,
			html.EscapeString(f.Kind),
			html.EscapeString(f.Check),
			html.EscapeString(f.Description),
			html.EscapeString(f.Summary),
		)
	}
	sb.WriteString("</table>\n")

	for _, f := range run.Failures {
		fmt.Fprintf(sb, "<h3>%d. %s.%s</h3>\n<pre>%s</pre>\n",
			f.Seq,
			html.EscapeString(f.Kind),
			html.EscapeString(f.Check),
			html.EscapeString(strings.TrimSpace(f.Message)),
		)
	}
}

func (r *HTMLReporter) writeHeader(sb *strings.Builder, title string) {
	fmt.Fprintf(sb, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 0 auto; padding: 20px; color: #333; }
h1 { border-bottom: 2px solid #3498db; padding-bottom: 10px; }
table { border-collapse: collapse; width: 100%%; margin: 10px 0; }
th, td { border: 1px solid #ddd; padding: 6px 10px; text-align: left; }
th { background: #3498db; color: #fff; }
pre { background: #ecf0f1; padding: 10px; overflow-x: auto; }
.status-passed { color: #27ae60; font-weight: bold; }
.status-failed { color: #e74c3c; font-weight: bold; }
</style>
</head>
<body>
`, html.EscapeString(title))
}

func (r *HTMLReporter) writeFooter(sb *strings.Builder) {
	sb.WriteString("<footer><p>Generated by softassert</p></footer>\n")
	sb.WriteString("</body>\n</html>\n")
}
