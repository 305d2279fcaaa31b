package metrics

import "time"

// RecordEntityCreated records a successful construction of an entity kind.
func RecordEntityCreated(entity string) {
	EntitiesCreatedTotal.WithLabelValues(entity).Inc()
}

// RecordValidationFailure records an operation rejected because of field.
// Field is "unknown" when the error carried no field information.
func RecordValidationFailure(entity, field string) {
	if field == "" {
		field = "unknown"
	}
	ValidationFailuresTotal.WithLabelValues(entity, field).Inc()
}

// UpdateCatalogSize sets the registry size gauges.
func UpdateCatalogSize(authors, magazines, articles int) {
	AuthorsTotal.Set(float64(authors))
	MagazinesTotal.Set(float64(magazines))
	ArticlesTotal.Set(float64(articles))
}

// RecordOperationDuration records the time taken by a catalog operation.
func RecordOperationDuration(operation string, duration time.Duration) {
	OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
