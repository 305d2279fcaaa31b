// Package publishing provides use cases for registering authors and magazines
// and publishing articles into an entity.Registry.
// Every operation is traced, timed, logged and reflected in the catalog metrics.
package publishing

import "errors"

// Sentinel errors for publishing use case operations.
var (
	// ErrNoPublisher indicates that no magazine has published any article yet.
	ErrNoPublisher = errors.New("no magazine has published an article")
)
