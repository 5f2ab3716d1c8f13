package steiner

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvsteiner/core"
)

// Package-level tracer and meter for solver operations.
var (
	tracer = otel.Tracer("lvsteiner.steiner")
	meter  = otel.Meter("lvsteiner.steiner")
)

// Metrics for solves.
var (
	solveLatency  metric.Float64Histogram
	solveTotal    metric.Int64Counter
	labelsSettled metric.Int64Histogram
	labelsPruned  metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		solveLatency, err = meter.Float64Histogram(
			"steiner_solve_duration_seconds",
			metric.WithDescription("Duration of exact solves"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		solveTotal, err = meter.Int64Counter(
			"steiner_solve_total",
			metric.WithDescription("Total number of exact solves"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		labelsSettled, err = meter.Int64Histogram(
			"steiner_labels_settled",
			metric.WithDescription("Labels settled per solve"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		labelsPruned, err = meter.Int64Counter(
			"steiner_labels_pruned_total",
			metric.WithDescription("Label candidates dropped by pruning"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordSolveMetrics records metrics for one solve.
func recordSolveMetrics(ctx context.Context, duration time.Duration, st Stats, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("success", success))
	solveLatency.Record(ctx, duration.Seconds(), attrs)
	solveTotal.Add(ctx, 1, attrs)

	if success {
		labelsSettled.Record(ctx, int64(st.Settled))
	}
	labelsPruned.Add(ctx, int64(st.PrunedBound), metric.WithAttributes(attribute.String("reason", "bound")))
	labelsPruned.Add(ctx, int64(st.PrunedSubset), metric.WithAttributes(attribute.String("reason", "subset")))
}

// startSolveSpan creates a span for a solve.
func startSolveSpan(ctx context.Context, g *core.Graph) (context.Context, trace.Span) {
	return tracer.Start(ctx, "steiner.Solve",
		trace.WithAttributes(
			attribute.Int("graph.node_count", g.NodeCount()),
			attribute.Int("graph.edge_count", g.EdgeCount()),
			attribute.Int("graph.terminal_count", g.TerminalCount()),
		),
	)
}

// setSolveSpanResult sets the result attributes on a solve span.
func setSolveSpanResult(span trace.Span, res Result, err error) {
	span.SetAttributes(
		attribute.Int64("steiner.cost", res.Tree.Cost),
		attribute.Int64("steiner.upper_bound", res.Stats.UpperBound),
		attribute.Int("steiner.labels", res.Stats.Labels),
		attribute.Int("steiner.settled", res.Stats.Settled),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
