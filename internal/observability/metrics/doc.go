// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the catalog's metrics:
//   - Entity creation counters
//   - Validation failure counters by entity and field
//   - Registry size gauges
//   - Operation durations
//
// All metrics are registered with the Prometheus default registry.
//
// Example usage:
//
//	start := time.Now()
//	art, err := author.AddArticle(magazine, title)
//	metrics.RecordOperationDuration("publish", time.Since(start))
//	if err == nil {
//	    metrics.RecordEntityCreated(metrics.EntityArticle)
//	}
package metrics
