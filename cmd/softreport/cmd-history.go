package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"digital.vasic.softassert/pkg/report"
)

var commandHistory = &cli.Command{
	Name:      "history",
	Usage:     "list the runs saved in a report directory",
	ArgsUsage: "[dir]",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "show only the most recent runs",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		dir := cmd.Args().First()
		if dir == "" {
			dir = "reports"
		}

		entries, err := report.ReadHistory(filepath.Join(dir, report.HistoryFile))
		if err != nil {
			return err
		}
		if limit := int(cmd.Int("limit")); limit > 0 && limit < len(entries) {
			entries = entries[len(entries)-limit:]
		}

		w := cmd.Root().Writer
		for _, e := range entries {
			fmt.Fprintf(w, "%s  %-6s  %3d/%-3d  %-10s  %s\n",
				e.Timestamp.Format("2006-01-02 15:04:05"),
				e.Status, e.Failures, e.Checks, e.Duration, e.ReportPath)
		}
		return nil
	},
}
