package usecase

import (
	"dashboard-metrics-service/internal/metrics/core/domain"
	"dashboard-metrics-service/internal/metrics/core/ports"
)

// MetricsCalculator computes usage and conflict tallies in a single pass
// over the given events. It holds no state; every call builds a fresh map.
type MetricsCalculator struct{}

func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

var _ ports.CalculatorPort = (*MetricsCalculator)(nil)

func (c *MetricsCalculator) CalculateUsage(events []domain.Event) domain.UsageStats {
	stats := make(domain.UsageStats)

	for _, e := range events {
		// Untyped events tally under the zero-value key instead of
		// being dropped.
		stats[e.Type]++
	}

	return stats
}

func (c *MetricsCalculator) CalculateConflicts(events []domain.Event) domain.ConflictReport {
	report := make(domain.ConflictReport)

	for _, e := range events {
		if e.Conflict == "" {
			continue
		}
		report[e.Conflict]++
	}

	return report
}
