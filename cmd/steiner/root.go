package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsteiner/config"
)

// app carries what every subcommand needs once the root pre-run is done.
type app struct {
	out, errOut io.Writer

	configPath string
	logLevel   string
	logFormat  string
	trace      bool
	metrics    bool

	cfg       config.Config
	runID     string
	logger    *slog.Logger
	telemetry *telemetry
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:           "steiner",
		Short:         "Exact Steiner tree solver for STP instances",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.BoolVar(&a.trace, "trace", false, "print OpenTelemetry spans to stderr")
	pf.BoolVar(&a.metrics, "metrics", false, "print OpenTelemetry metrics to stderr on exit")

	root.AddCommand(newSolveCmd(a), newInfoCmd(a), newGenerateCmd(a))

	return root
}

// setup loads the configuration, applies the root flags and builds the
// logger and telemetry providers.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Observability.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Observability.LogFormat = a.logFormat
	}
	if flags.Changed("trace") {
		cfg.Observability.Tracing = a.trace
	}
	if flags.Changed("metrics") {
		cfg.Observability.Metrics = a.metrics
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Observability.Level()
	hopts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(a.errOut, hopts)
	if cfg.Observability.LogFormat == "json" {
		handler = slog.NewJSONHandler(a.errOut, hopts)
	}
	a.runID = uuid.NewString()
	a.logger = slog.New(handler).With(slog.String("run_id", a.runID))

	if cfg.Observability.Tracing || cfg.Observability.Metrics {
		t, err := initTelemetry(a.errOut, cfg.Observability.Tracing, cfg.Observability.Metrics)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		a.telemetry = t
	}

	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.telemetry == nil {
		return nil
	}
	if err := a.telemetry.Shutdown(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("shutdown telemetry: %w", err)
	}

	return nil
}
