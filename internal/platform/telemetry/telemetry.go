// Package telemetry wires OpenTelemetry tracing and metrics for the board.
//
//	p, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer p.Shutdown(ctx)
//	p.Metrics.MutationTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrOperation.String("task.move")))
//
// With telemetry disabled Setup returns empty Providers: Metrics is nil and
// every consumer treats nil metrics as "do not record".
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
)

// Attribute keys shared by spans and metric series.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("kanban.operation")
	AttrEntity      = attribute.Key("kanban.entity")
	AttrActor       = attribute.Key("kanban.actor")
)

// Providers owns the SDK providers registered as otel globals.
type Providers struct {
	ServiceName string
	Tracer      *sdktrace.TracerProvider
	Meter       *sdkmetric.MeterProvider
	Metrics     *Metrics
}

// Setup builds the tracer and meter providers for cfg, registers them as
// otel globals together with the W3C trace context and baggage propagators,
// and creates the board's instruments.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	p := &Providers{ServiceName: cfg.ServiceName}
	if !cfg.Enabled {
		return p, nil
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	spans, err := newSpanExporter(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("span exporter: %w", err)
	}
	p.Tracer = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spans),
		sdktrace.WithResource(res),
	)

	readings, err := newMetricExporter(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("metric exporter: %w", err), p.Shutdown(ctx))
	}
	p.Meter = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
		sdkmetric.WithResource(res),
	)

	p.Metrics, err = NewMetrics(p.Meter, cfg.ServiceName)
	if err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// ObserveEntities registers the entity count gauge. A no-op when telemetry
// is disabled.
func (p *Providers) ObserveEntities(counts func() EntityCounts) error {
	if p.Meter == nil {
		return nil
	}
	return RegisterEntityGauges(p.Meter, p.ServiceName, counts)
}

// Shutdown flushes and stops whichever providers were created.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}
