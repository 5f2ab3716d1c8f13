package decompose

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvsteiner/core"
)

var tracer = otel.Tracer("lvsteiner.decompose")

func startSolveSpan(ctx context.Context, g *core.Graph) (context.Context, trace.Span) {
	var nodes, terms int
	if g != nil {
		nodes, terms = g.NodeCount(), g.TerminalCount()
	}
	return tracer.Start(ctx, "decompose.Solve",
		trace.WithAttributes(
			attribute.Int("decompose.nodes", nodes),
			attribute.Int("decompose.terminals", terms),
		),
	)
}

func startPartSpan(ctx context.Context, i int, part *core.Graph) (context.Context, trace.Span) {
	return tracer.Start(ctx, "decompose.part",
		trace.WithAttributes(
			attribute.Int("decompose.part", i),
			attribute.Int("decompose.part.nodes", part.NodeCount()),
			attribute.Int("decompose.part.terminals", part.TerminalCount()),
		),
	)
}

func setSolveSpanResult(span trace.Span, res Result, err error) {
	span.SetAttributes(
		attribute.Int("decompose.parts", len(res.Plan.Parts)),
		attribute.Int("decompose.bridges", res.Plan.Bridges),
		attribute.Int("decompose.required", len(res.Plan.Required)),
		attribute.Int("decompose.dropped", res.Plan.Dropped),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(attribute.Int64("decompose.cost", res.Tree.Cost))
}
