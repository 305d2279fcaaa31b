// Package tracing provides OpenTelemetry tracing integration.
//
// The catalog's use-case layer opens one span per operation using GetTracer.
// NewProvider installs an SDK tracer provider, optionally exporting spans to
// stdout for local inspection.
//
// Example usage:
//
//	provider, err := tracing.NewProvider(tracing.Config{Enabled: true, Exporter: "stdout"})
//	if err != nil {
//	    return err
//	}
//	defer provider.Shutdown(context.Background())
package tracing
