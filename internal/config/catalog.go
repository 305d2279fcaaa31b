// Package config assembles the catalog's runtime configuration from the environment.
package config

import (
	"fmt"

	envconfig "magazine-catalog/pkg/config"
)

// Report formats accepted by REPORT_FORMAT.
const (
	ReportFormatText = "text"
	ReportFormatYAML = "yaml"
)

// CatalogConfig holds configuration for the catalog demo and its observability.
type CatalogConfig struct {
	// Logging configures the slog handler.
	Logging LoggingConfig

	// ReportFormat selects how the catalog report is rendered: "text" or "yaml".
	// Default: "text"
	ReportFormat string

	// MetricsEnabled dumps the Prometheus registry after the report.
	// Default: false
	MetricsEnabled bool

	// Tracing configures OpenTelemetry spans.
	Tracing TracingConfig
}

// LoggingConfig holds log level and format.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error. Default: "info"
	Level string
	// Format is "json" or "text". Default: "json"
	Format string
}

// TracingConfig holds tracing settings.
type TracingConfig struct {
	// Enabled turns on the SDK tracer provider. Default: false
	Enabled bool
	// Exporter is "none" or "stdout". Default: "none"
	Exporter string
}

// LoadCatalogConfig loads configuration from environment variables.
// Unsupported values fall back to defaults with a logged warning.
func LoadCatalogConfig() (*CatalogConfig, error) {
	cfg := &CatalogConfig{
		Logging: LoggingConfig{
			Level:  envconfig.GetEnvEnum("LOG_LEVEL", "info", "debug", "info", "warn", "error"),
			Format: envconfig.GetEnvEnum("LOG_FORMAT", "json", "json", "text"),
		},
		ReportFormat:   envconfig.GetEnvEnum("REPORT_FORMAT", ReportFormatText, ReportFormatText, ReportFormatYAML),
		MetricsEnabled: envconfig.GetEnvBool("METRICS_ENABLED", false),
		Tracing: TracingConfig{
			Enabled:  envconfig.GetEnvBool("TRACING_ENABLED", false),
			Exporter: envconfig.GetEnvEnum("TRACING_EXPORTER", "none", "none", "stdout"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *CatalogConfig) Validate() error {
	switch c.ReportFormat {
	case ReportFormatText, ReportFormatYAML:
	default:
		return fmt.Errorf("REPORT_FORMAT must be %q or %q", ReportFormatText, ReportFormatYAML)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("LOG_FORMAT must be \"json\" or \"text\"")
	}
	if c.Tracing.Enabled && c.Tracing.Exporter == "" {
		return fmt.Errorf("TRACING_EXPORTER cannot be empty when tracing is enabled")
	}
	return nil
}
