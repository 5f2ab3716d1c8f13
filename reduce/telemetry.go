package reduce

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvsteiner/core"
)

// Package-level tracer and meter for reductions.
var (
	tracer = otel.Tracer("lvsteiner.reduce")
	meter  = otel.Meter("lvsteiner.reduce")
)

var (
	ruleLatency    metric.Float64Histogram
	eliminated     metric.Int64Counter
	ruleTimeouts   metric.Int64Counter
	metricsOnce    sync.Once
	metricsInitErr error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error
		if ruleLatency, err = meter.Float64Histogram(
			"reduce_rule_duration_seconds",
			metric.WithDescription("Duration of one reduction rule call"),
			metric.WithUnit("s"),
		); err != nil {
			metricsInitErr = err
			return
		}
		if eliminated, err = meter.Int64Counter(
			"reduce_eliminated_total",
			metric.WithDescription("Graph elements eliminated by reductions"),
		); err != nil {
			metricsInitErr = err
			return
		}
		if ruleTimeouts, err = meter.Int64Counter(
			"reduce_rule_timeouts_total",
			metric.WithDescription("Reduction rule calls stopped by their deadline"),
		); err != nil {
			metricsInitErr = err
			return
		}
	})
	return metricsInitErr
}

func recordRuleMetrics(ctx context.Context, run RuleRun) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("rule", run.Rule))
	ruleLatency.Record(ctx, run.Elapsed.Seconds(), attrs)
	eliminated.Add(ctx, int64(run.Count), attrs)
	if run.TimedOut {
		ruleTimeouts.Add(ctx, 1, attrs)
	}
}

func startRunSpan(ctx context.Context, g *core.Graph) (context.Context, trace.Span) {
	return tracer.Start(ctx, "reduce.Pipeline",
		trace.WithAttributes(
			attribute.Int("graph.node_count", g.NodeCount()),
			attribute.Int("graph.edge_count", g.EdgeCount()),
		),
	)
}

func setRunSpanResult(span trace.Span, rep Report) {
	span.SetAttributes(
		attribute.Int("reduce.passes", rep.Passes),
		attribute.Int("reduce.eliminated", rep.Eliminated),
		attribute.Int("graph.node_count_after", rep.NodesAfter),
		attribute.Int("graph.edge_count_after", rep.EdgesAfter),
	)
}

func startRuleSpan(ctx context.Context, rule string, pass int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "reduce."+rule,
		trace.WithAttributes(
			attribute.String("reduce.rule", rule),
			attribute.Int("reduce.pass", pass),
		),
	)
}

func setRuleSpanResult(span trace.Span, run RuleRun, err error) {
	span.SetAttributes(
		attribute.Int("reduce.count", run.Count),
		attribute.Bool("reduce.timed_out", run.TimedOut),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
