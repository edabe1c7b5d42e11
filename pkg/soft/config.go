package soft

import (
	"context"
	"fmt"

	"digital.vasic.softassert/pkg/config"
	"digital.vasic.softassert/pkg/logging"
	"digital.vasic.softassert/pkg/monitor"
	"digital.vasic.softassert/pkg/report"
)

// FromConfig creates a SoftAssertions with the logger, report and
// monitor described by cfg. opts are applied after the configured
// ones. A configured monitor is listening when FromConfig returns.
// Call Close when done to stop it and release the logger.
func FromConfig(cfg config.Config, opts ...Option) (*SoftAssertions, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	configured := []Option{WithLogger(logger)}
	if cfg.Report.Format != "" {
		r, err := report.ForFormat(cfg.Report.Format)
		if err != nil {
			_ = logger.Close()
			return nil, fmt.Errorf("create reporter: %w", err)
		}
		name := cfg.Report.Name
		if name == "" {
			name = defaultRunName
		}
		configured = append(configured, WithReport(r, cfg.Report.Dir, name))
	}

	s := New(append(configured, opts...)...)
	if cfg.Monitor.Addr == "" {
		return s, nil
	}

	m, err := monitor.FromConfig(cfg.Monitor, s.Collector())
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	addr, err := m.Listen(context.Background())
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("start monitor: %w", err)
	}
	s.monitor = m
	s.logger.Info("monitor listening", logging.StringField("addr", addr.String()))
	return s, nil
}
