package publishing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
)

// Service provides catalog use cases on top of a Registry.
// Logger and Tracer are optional; when nil the context logger and the global tracer are used.
type Service struct {
	Registry *entity.Registry
	Logger   *slog.Logger
	Tracer   trace.Tracer
}

// RegisterAuthor creates a new Author.
// Returns a ValidationError if the name is empty.
func (s *Service) RegisterAuthor(ctx context.Context, name string) (*entity.Author, error) {
	ctx, span := s.start(ctx, "catalog.register_author", attribute.String("author.name", name))
	defer span.End()
	start := time.Now()

	author, err := s.Registry.NewAuthor(name)
	metrics.RecordOperationDuration("register_author", time.Since(start))
	if err != nil {
		s.reject(ctx, span, metrics.EntityAuthor, err)
		return nil, fmt.Errorf("register author: %w", err)
	}

	metrics.RecordEntityCreated(metrics.EntityAuthor)
	s.refreshSize()
	logging.WithEntity(s.logger(ctx), metrics.EntityAuthor, author.ID().String()).
		Info("author registered", slog.String("name", author.Name()))
	return author, nil
}

// RegisterMagazine creates a new Magazine.
// Returns a ValidationError if the name or category is invalid.
func (s *Service) RegisterMagazine(ctx context.Context, name, category string) (*entity.Magazine, error) {
	ctx, span := s.start(ctx, "catalog.register_magazine",
		attribute.String("magazine.name", name),
		attribute.String("magazine.category", category))
	defer span.End()
	start := time.Now()

	magazine, err := s.Registry.NewMagazine(name, category)
	metrics.RecordOperationDuration("register_magazine", time.Since(start))
	if err != nil {
		s.reject(ctx, span, metrics.EntityMagazine, err)
		return nil, fmt.Errorf("register magazine: %w", err)
	}

	metrics.RecordEntityCreated(metrics.EntityMagazine)
	s.refreshSize()
	logging.WithEntity(s.logger(ctx), metrics.EntityMagazine, magazine.ID().String()).
		Info("magazine registered",
			slog.String("name", name),
			slog.String("category", category))
	return magazine, nil
}

// Publish creates an Article by author in magazine.
// Returns a ReferenceError if author or magazine is unusable and a
// ValidationError if the title length is out of range.
func (s *Service) Publish(ctx context.Context, author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	ctx, span := s.start(ctx, "catalog.publish", attribute.String("article.title", title))
	defer span.End()
	start := time.Now()

	article, err := s.Registry.NewArticle(author, magazine, title)
	metrics.RecordOperationDuration("publish", time.Since(start))
	if err != nil {
		s.reject(ctx, span, metrics.EntityArticle, err)
		return nil, fmt.Errorf("publish article: %w", err)
	}

	metrics.RecordEntityCreated(metrics.EntityArticle)
	s.refreshSize()
	logging.WithEntity(s.logger(ctx), metrics.EntityArticle, article.ID().String()).
		Info("article published",
			slog.String("title", article.Title()),
			slog.String("author", article.Author().Name()),
			slog.String("magazine", article.Magazine().Name()))
	return article, nil
}

// Rename changes a magazine's name.
// Returns a ReferenceError if magazine is nil or not part of the service's Registry.
func (s *Service) Rename(ctx context.Context, magazine *entity.Magazine, name string) error {
	ctx, span := s.start(ctx, "catalog.rename_magazine", attribute.String("magazine.name", name))
	defer span.End()

	if err := s.Registry.CheckMagazine(magazine); err != nil {
		s.reject(ctx, span, metrics.EntityMagazine, err)
		return fmt.Errorf("rename magazine: %w", err)
	}

	old := magazine.Name()
	if err := magazine.SetName(name); err != nil {
		s.reject(ctx, span, metrics.EntityMagazine, err)
		return fmt.Errorf("rename magazine: %w", err)
	}
	logging.WithEntity(s.logger(ctx), metrics.EntityMagazine, magazine.ID().String()).
		Info("magazine renamed", slog.String("from", old), slog.String("to", name))
	return nil
}

// Recategorize changes a magazine's category.
// Returns a ReferenceError if magazine is nil or not part of the service's Registry.
func (s *Service) Recategorize(ctx context.Context, magazine *entity.Magazine, category string) error {
	ctx, span := s.start(ctx, "catalog.recategorize_magazine", attribute.String("magazine.category", category))
	defer span.End()

	if err := s.Registry.CheckMagazine(magazine); err != nil {
		s.reject(ctx, span, metrics.EntityMagazine, err)
		return fmt.Errorf("recategorize magazine: %w", err)
	}

	old := magazine.Category()
	if err := magazine.SetCategory(category); err != nil {
		s.reject(ctx, span, metrics.EntityMagazine, err)
		return fmt.Errorf("recategorize magazine: %w", err)
	}
	logging.WithEntity(s.logger(ctx), metrics.EntityMagazine, magazine.ID().String()).
		Info("magazine recategorized", slog.String("from", old), slog.String("to", category))
	return nil
}

// TopPublisher returns the magazine with the most articles.
// Returns ErrNoPublisher when no article has been published.
func (s *Service) TopPublisher(ctx context.Context) (*entity.Magazine, error) {
	_, span := s.start(ctx, "catalog.top_publisher")
	defer span.End()

	top := s.Registry.TopPublisher()
	if top == nil {
		return nil, ErrNoPublisher
	}
	span.SetAttributes(
		attribute.String("magazine.name", top.Name()),
		attribute.Int("magazine.article_count", top.ArticleCount()))
	return top, nil
}

func (s *Service) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tr := s.Tracer
	if tr == nil {
		tr = tracing.GetTracer()
	}
	return tr.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.FromContext(ctx)
}

// reject records a failed operation on the span, the metrics and the log.
func (s *Service) reject(ctx context.Context, span trace.Span, kind string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	field := ""
	var vErr *entity.ValidationError
	var rErr *entity.ReferenceError
	switch {
	case errors.As(err, &vErr):
		field = vErr.Field
	case errors.As(err, &rErr):
		field = rErr.Field
	}
	metrics.RecordValidationFailure(kind, field)

	logging.WithFields(s.logger(ctx), map[string]interface{}{
		"entity": kind,
		"field":  field,
	}).Warn("operation rejected", slog.Any("error", err))
}

func (s *Service) refreshSize() {
	metrics.UpdateCatalogSize(
		len(s.Registry.Authors()),
		len(s.Registry.Magazines()),
		len(s.Registry.Articles()),
	)
}
