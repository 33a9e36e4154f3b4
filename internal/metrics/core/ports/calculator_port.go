package ports

import (
	"dashboard-metrics-service/internal/metrics/core/domain"
)

type CalculatorPort interface {
	// CalculateUsage:
	//   one entry per distinct Type value, untyped events under ""
	//   counts always sum to len(events)
	CalculateUsage(events []domain.Event) domain.UsageStats

	// CalculateConflicts:
	//   events with an empty Conflict are skipped entirely
	CalculateConflicts(events []domain.Event) domain.ConflictReport
}
