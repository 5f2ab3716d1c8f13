package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/decompose"
	"github.com/katalvlaran/lvsteiner/reduce"
	"github.com/katalvlaran/lvsteiner/steiner"
	"github.com/katalvlaran/lvsteiner/stpio"
)

// Solve outcomes reported in the final log line.
const (
	statusOptimal  = "optimal"
	statusFallback = "timeout-fallback"
)

type solveFlags struct {
	timeout        time.Duration
	fallback       bool
	reduce         bool
	decompose      bool
	dualAscent     bool
	maxConcurrency int
	output         string
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve <file.stp|->",
		Short: "Solve an STP instance and print the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applySolveFlags(cmd, f)
			return a.runSolve(cmd, args[0], f.output)
		},
	}
	fl := cmd.Flags()
	fl.DurationVar(&f.timeout, "timeout", 0, "whole-solve time limit, 0 for none")
	fl.BoolVar(&f.fallback, "fallback", true, "answer with the approximation on timeout")
	fl.BoolVar(&f.reduce, "reduce", true, "run the reduction pipeline first")
	fl.BoolVar(&f.decompose, "decompose", true, "split the instance at bridges")
	fl.BoolVar(&f.dualAscent, "dual-ascent", false, "prune with the dual ascent bound")
	fl.IntVar(&f.maxConcurrency, "max-concurrency", 0, "parts solved at once")
	fl.StringVarP(&f.output, "output", "o", "", "solution file, stdout by default")

	return cmd
}

// applySolveFlags lets explicitly set flags win over the configuration.
func (a *app) applySolveFlags(cmd *cobra.Command, f solveFlags) {
	fl := cmd.Flags()
	if fl.Changed("timeout") {
		a.cfg.Solver.Timeout = f.timeout
	}
	if fl.Changed("fallback") {
		a.cfg.Solver.Fallback = f.fallback
	}
	if fl.Changed("reduce") {
		a.cfg.Reduce.Enabled = f.reduce
	}
	if fl.Changed("decompose") {
		a.cfg.Decompose.Enabled = f.decompose
	}
	if fl.Changed("dual-ascent") {
		a.cfg.Solver.DualAscentHeuristic = f.dualAscent
	}
	if fl.Changed("max-concurrency") && f.maxConcurrency > 0 {
		a.cfg.Decompose.MaxConcurrency = f.maxConcurrency
	}
}

func (a *app) runSolve(cmd *cobra.Command, path, output string) error {
	ctx := cmd.Context()
	start := time.Now()
	inst, err := readInstance(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	g := inst.Graph
	log := a.logger.With(slog.String("instance", inst.Name))
	log.Info("instance loaded",
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("terminals", g.TerminalCount()))

	var pipeline *reduce.Pipeline
	if a.cfg.Reduce.Enabled {
		if pipeline, err = a.cfg.Reduce.Pipeline(log); err != nil {
			return err
		}
		if _, err := pipeline.Run(ctx, g); err != nil {
			return fmt.Errorf("reduce: %w", err)
		}
	}

	tree, status, err := a.solveGraph(ctx, g, log)
	if err != nil {
		return err
	}
	if pipeline != nil {
		if tree, err = pipeline.Restore(tree); err != nil {
			return err
		}
	}

	w, closeOut, err := openOutput(output, a.out)
	if err != nil {
		return err
	}
	if err := stpio.WriteSolution(w, tree); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}
	log.Info("solve finished",
		slog.String("status", status),
		slog.Int64("cost", tree.Cost),
		slog.Int("edges", len(tree.Edges)),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}

// solveGraph runs the exact solver under the configured time limit, through
// the bridge decomposition when enabled.
func (a *app) solveGraph(parent context.Context, g *core.Graph, log *slog.Logger) (core.Tree, string, error) {
	ctx := parent
	if a.cfg.Solver.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Solver.Timeout)
		defer cancel()
	}
	opts := a.cfg.Solver.Options(log)
	exact := func(ctx context.Context, part *core.Graph) (core.Tree, error) {
		res, err := steiner.SolveWithin(ctx, part, opts...)
		return res.Tree, err
	}

	var (
		tree core.Tree
		err  error
	)
	if a.cfg.Decompose.Enabled {
		var res decompose.Result
		res, err = decompose.Solve(ctx, g, exact, a.cfg.Decompose.Options(log)...)
		tree = res.Tree
	} else {
		tree, err = exact(ctx, g)
	}
	if err == nil {
		return tree, statusOptimal, nil
	}
	if parent.Err() != nil || (!errors.Is(err, steiner.ErrTimeout) && !errors.Is(err, context.DeadlineExceeded)) {
		return tree, "", err
	}
	if !a.cfg.Solver.Fallback {
		if !errors.Is(err, steiner.ErrTimeout) {
			err = fmt.Errorf("%w: %w", steiner.ErrTimeout, err)
		}
		return tree, "", err
	}

	log.Warn("solve timed out, using the approximation",
		slog.Duration("timeout", a.cfg.Solver.Timeout),
		slog.String("error", err.Error()))
	approx, aerr := g.Approximation()
	if aerr != nil {
		return approx, "", fmt.Errorf("fallback approximation: %w", aerr)
	}

	return approx, statusFallback, nil
}
