package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var errMissingEndpoint = errors.New("otlp exporter requires an endpoint")

// collector splits an OTLP endpoint URL into the host:port the exporters
// want and whether plain HTTP must be allowed.
type collector struct {
	host     string
	insecure bool
}

func parseCollector(endpoint string) (collector, error) {
	if endpoint == "" {
		return collector{}, errMissingEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		// Bare host:port.
		return collector{host: endpoint, insecure: true}, nil
	}
	return collector{host: u.Host, insecure: u.Scheme != "https"}, nil
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		c, err := parseCollector(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(c.host)}
		if c.insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdoutmetric.New()
	case ExporterOTLP:
		c, err := parseCollector(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(c.host)}
		if c.insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}
