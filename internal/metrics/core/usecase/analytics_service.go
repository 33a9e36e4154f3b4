package usecase

import (
	"dashboard-metrics-service/internal/metrics/core/domain"
	"dashboard-metrics-service/internal/metrics/core/ports"
)

// AnalyticsService is the high-level entry point for event metrics. It
// owns no state beyond the calculator it delegates to.
type AnalyticsService struct {
	calc ports.CalculatorPort
}

// NewAnalyticsService wires the service; a nil calc falls back to the
// default MetricsCalculator.
func NewAnalyticsService(calc ports.CalculatorPort) *AnalyticsService {
	if calc == nil {
		calc = NewMetricsCalculator()
	}
	return &AnalyticsService{calc: calc}
}

// GetUsageStats returns aggregated usage statistics for the given events.
func (s *AnalyticsService) GetUsageStats(events []domain.Event) domain.UsageStats {
	return s.calc.CalculateUsage(events)
}

// GetConflictReport returns a conflict report for the given events.
func (s *AnalyticsService) GetConflictReport(events []domain.Event) domain.ConflictReport {
	return s.calc.CalculateConflicts(events)
}
