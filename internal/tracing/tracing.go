// Package tracing builds the OpenTelemetry tracer provider used by the HTTP
// middleware.
package tracing

import (
	"fmt"
	"io"

	"fruitarians-api/internal/config"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewProvider returns nil when tracing is off. Spans from the stdout exporter
// are written to w as JSON. Callers own Shutdown, which flushes pending spans.
func NewProvider(cfg config.TracingConfig, serviceName string, w io.Writer) (*sdktrace.TracerProvider, error) {
	switch cfg.Exporter {
	case "", config.TracingNone:
		return nil, nil
	case config.TracingStdout:
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
		}
		return sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
			sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
		), nil
	default:
		return nil, fmt.Errorf("unsupported tracing exporter %q", cfg.Exporter)
	}
}
