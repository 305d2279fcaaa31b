package tracing

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// ServiceName identifies the catalog in traces.
const ServiceName = "magazine-catalog"

// tracer is the global tracer instance for the catalog.
var tracer = otel.Tracer(ServiceName)

// GetTracer returns the global tracer for creating spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "catalog.publish")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}

// Config configures the tracer provider.
type Config struct {
	// Enabled controls whether spans are recorded at all.
	Enabled bool
	// Exporter selects the export backend: "none" or "stdout".
	// The stdout exporter writes to stderr so it never mixes with command output.
	Exporter string
}

// Provider wraps the SDK tracer provider so callers can flush on exit.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// NewProvider builds a tracer provider from cfg and installs it globally.
// When tracing is disabled the global no-op provider is left in place.
func NewProvider(cfg Config) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{}, nil
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", ServiceName),
		)),
	}

	switch cfg.Exporter {
	case "stdout":
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(os.Stderr),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithSyncer(exporter))
	case "none", "":
	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", cfg.Exporter)
	}

	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)
	return &Provider{provider: provider}, nil
}

// Shutdown flushes pending spans. It is a no-op when tracing is disabled.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
