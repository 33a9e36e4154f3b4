package ports

import (
	"dashboard-metrics-service/internal/dashboard/core/domain"
)

type AggregatorPort interface {
	// Kind is the stable variant tag used for dashboard lookups.
	Kind() domain.Kind

	// Collect:
	//   builds a fresh Metrics map on every call
	//   a nil map with a nil error is a valid empty contribution
	//   an error means the aggregator contributes nothing this pass
	Collect() (domain.Metrics, error)
}
