package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "lvsteiner"

// telemetry holds the providers installed for one run.
type telemetry struct {
	shutdowns []func(context.Context) error
}

func newResource() *resource.Resource {
	return resource.NewWithAttributes("",
		attribute.String("service.name", serviceName),
	)
}

// initTelemetry installs the global tracer and meter providers requested
// by the flags. Both print to w.
func initTelemetry(w io.Writer, tracing, metrics bool) (*telemetry, error) {
	t := &telemetry{}
	res := newResource()
	if tracing {
		tp, err := initTracing(w, res)
		if err != nil {
			return nil, err
		}
		t.shutdowns = append(t.shutdowns, tp.Shutdown)
	}
	if metrics {
		mp, err := initMeter(w, res)
		if err != nil {
			return nil, errors.Join(err, t.Shutdown(context.Background()))
		}
		t.shutdowns = append(t.shutdowns, mp.Shutdown)
	}

	return t, nil
}

// initTracing prints every span to w as it ends.
func initTracing(w io.Writer, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	return tp, nil
}

// initMeter collects metrics in memory; the final collection is printed to
// w on shutdown.
func initMeter(w io.Writer, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w), stdoutmetric.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	otel.SetMeterProvider(mp)

	return mp, nil
}

// Shutdown flushes and stops the providers in reverse order.
func (t *telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(t.shutdowns) - 1; i >= 0; i-- {
		errs = append(errs, t.shutdowns[i](ctx))
	}
	t.shutdowns = nil

	return errors.Join(errs...)
}
