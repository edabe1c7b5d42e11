package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"digital.vasic.softassert/pkg/logging"
	"digital.vasic.softassert/pkg/report"
)

var commandRender = &cli.Command{
	Name:      "render",
	Usage:     "re-render a saved JSON or YAML run in another format",
	ArgsUsage: "<report>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "markdown",
			Usage:   "json, yaml, markdown or html",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write to this file instead of stdout",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.Args().First()
		if path == "" {
			return errors.New("render: report path is required")
		}

		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Close() }()

		r, err := report.ForFormat(cmd.String("format"))
		if err != nil {
			return err
		}
		run, err := report.Load(path)
		if err != nil {
			return err
		}

		out := cmd.String("output")
		if out == "" {
			return r.Write(cmd.Root().Writer, run)
		}

		data, err := r.Generate(run)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		logger.Info("report rendered",
			logging.StringField("from", path),
			logging.StringField("to", out),
		)
		return nil
	},
}
