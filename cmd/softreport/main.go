// Command softreport renders and checks soft assertion reports
// saved by AssertAll.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"digital.vasic.softassert/pkg/config"
	"digital.vasic.softassert/pkg/logging"
)

const (
	exitCodeFailed = 1
	exitCodeError  = 2
)

// errRunFailed is returned by check when the run has failures.
var errRunFailed = errors.New("run has failures")

func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "softreport",
		Usage:  "render and check soft assertion reports",
		Writer: stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file for logging",
			},
		},
		Commands: []*cli.Command{
			commandRender,
			commandCheck,
			commandHistory,
		},
	}
}

// loggerFor builds the logger configured by --config, or a
// NullLogger when no config is given.
func loggerFor(cmd *cli.Command) (logging.Logger, error) {
	path := cmd.String("config")
	if path == "" {
		return logging.NullLogger{}, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return logging.New(cfg.Logging)
}

func main() {
	err := newApp(os.Stdout).Run(context.Background(), os.Args)
	switch {
	case err == nil:
	case errors.Is(err, errRunFailed):
		os.Exit(exitCodeFailed)
	default:
		fmt.Fprintln(os.Stderr, "softreport:", err)
		os.Exit(exitCodeError)
	}
}
