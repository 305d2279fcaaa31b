// Package metrics provides centralized Prometheus metrics for the catalog.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entity kinds used as label values.
const (
	EntityAuthor   = "author"
	EntityMagazine = "magazine"
	EntityArticle  = "article"
)

// Business metrics track catalog activity
var (
	// EntitiesCreatedTotal counts successfully constructed entities by kind
	EntitiesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_entities_created_total",
			Help: "Total number of entities created",
		},
		[]string{"entity"},
	)

	// ValidationFailuresTotal counts rejected operations by entity kind and field
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_validation_failures_total",
			Help: "Total number of operations rejected by validation",
		},
		[]string{"entity", "field"},
	)

	// ArticlesTotal tracks the number of registered articles
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_articles_total",
			Help: "Current number of registered articles",
		},
	)

	// MagazinesTotal tracks the number of registered magazines
	MagazinesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_magazines_total",
			Help: "Current number of registered magazines",
		},
	)

	// AuthorsTotal tracks the number of registered authors
	AuthorsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_authors_total",
			Help: "Current number of registered authors",
		},
	)
)

// Performance metrics
var (
	// OperationDuration measures catalog operation duration in seconds
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_operation_duration_seconds",
			Help:    "Duration of catalog operations in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
		[]string{"operation"},
	)
)
