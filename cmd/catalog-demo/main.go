// Package main replays a small publishing walkthrough against an in-memory
// catalog and prints the resulting report.
// Usage: LOG_LEVEL=debug REPORT_FORMAT=yaml catalog-demo
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/report"
	"magazine-catalog/internal/usecase/publishing"
)

func main() {
	cfg, err := config.LoadCatalogConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	slog.SetDefault(logger)

	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:  cfg.Tracing.Enabled,
		Exporter: cfg.Tracing.Exporter,
	})
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shut down tracing", slog.Any("error", err))
		}
	}()

	ctx := logging.WithLogger(context.Background(), logger)
	if err := run(ctx, cfg, os.Stdout); err != nil {
		logger.Error("catalog demo failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// run builds the walkthrough catalog and writes the report (and optionally the metrics) to out.
func run(ctx context.Context, cfg *config.CatalogConfig, out io.Writer) error {
	svc := &publishing.Service{Registry: entity.NewRegistry()}
	if err := seed(ctx, svc); err != nil {
		return err
	}

	summary := report.Build(svc.Registry)
	var err error
	switch cfg.ReportFormat {
	case config.ReportFormatYAML:
		err = report.WriteYAML(out, summary)
	default:
		err = report.WriteText(out, summary)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.MetricsEnabled {
		if err := writeMetrics(out, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

// seed registers two authors, three magazines and four articles, then shows
// that an invalid title is rejected without touching the catalog.
func seed(ctx context.Context, svc *publishing.Service) error {
	jane, err := svc.RegisterAuthor(ctx, "Jane Doe")
	if err != nil {
		return err
	}
	john, err := svc.RegisterAuthor(ctx, "John Smith")
	if err != nil {
		return err
	}

	tech, err := svc.RegisterMagazine(ctx, "Tech Monthly", "Technology")
	if err != nil {
		return err
	}
	science, err := svc.RegisterMagazine(ctx, "Science Today", "Science")
	if err != nil {
		return err
	}
	art, err := svc.RegisterMagazine(ctx, "Art Weekly", "Art")
	if err != nil {
		return err
	}

	articles := []struct {
		author   *entity.Author
		magazine *entity.Magazine
		title    string
	}{
		{jane, tech, "The Future of AI"},
		{jane, science, "Exploring Quantum Physics"},
		{john, tech, "Blockchain in Finance"},
		{john, art, "Modern Art Movements"},
	}
	for _, a := range articles {
		if _, err := svc.Publish(ctx, a.author, a.magazine, a.title); err != nil {
			return err
		}
	}

	if _, err := svc.Publish(ctx, jane, tech, "AI"); !errors.Is(err, entity.ErrValidationFailed) {
		return fmt.Errorf("short title was not rejected: %v", err)
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
