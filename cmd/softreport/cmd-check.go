package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"digital.vasic.softassert/pkg/logging"
	"digital.vasic.softassert/pkg/report"
)

var commandCheck = &cli.Command{
	Name:      "check",
	Usage:     "print the totals of a saved run; fails when it has failures",
	ArgsUsage: "<report>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.Args().First()
		if path == "" {
			return errors.New("check: report path is required")
		}

		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Close() }()

		run, err := report.Load(path)
		if err != nil {
			return err
		}

		w := cmd.Root().Writer
		fmt.Fprintf(w, "%s: %s (%d checks, %d passed, %d failed)\n",
			run.Name, run.Status(),
			run.Stats.Total, run.Stats.Passed, len(run.Failures))
		for _, f := range run.Failures {
			fmt.Fprintf(w, "  %d. %s\n", f.Seq, f.Error())
		}

		logger.Info("run checked",
			logging.StringField("run", run.Name),
			logging.IntField("failures", len(run.Failures)),
		)
		if !run.Passed {
			return errRunFailed
		}
		return nil
	},
}
