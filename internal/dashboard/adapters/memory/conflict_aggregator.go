package memory

import (
	"dashboard-metrics-service/internal/dashboard/core/domain"
	"dashboard-metrics-service/internal/dashboard/core/ports"
	metricsDomain "dashboard-metrics-service/internal/metrics/core/domain"
)

// Metric keys owned by the conflict aggregator.
const (
	MetricConflictedEvents  = "conflicted_events"
	MetricDistinctConflicts = "distinct_conflicts"
)

// ConflictAggregator reports conflict volume over an event snapshot fixed
// at construction time. Events with an empty Conflict are ignored, the
// same filter the conflict report applies.
type ConflictAggregator struct {
	events []metricsDomain.Event
}

var _ ports.AggregatorPort = (*ConflictAggregator)(nil)

// NewConflictAggregator copies the given events; later changes to the
// caller's slice never reach the aggregator.
func NewConflictAggregator(events []metricsDomain.Event) *ConflictAggregator {
	snapshot := make([]metricsDomain.Event, len(events))
	copy(snapshot, events)
	return &ConflictAggregator{events: snapshot}
}

func (a *ConflictAggregator) Kind() domain.Kind {
	return domain.KindConflicts
}

func (a *ConflictAggregator) Collect() (domain.Metrics, error) {
	var conflicted int64
	seen := make(map[string]struct{})

	for _, e := range a.events {
		if e.Conflict == "" {
			continue
		}
		conflicted++
		seen[e.Conflict] = struct{}{}
	}

	return domain.Metrics{
		MetricConflictedEvents:  conflicted,
		MetricDistinctConflicts: int64(len(seen)),
	}, nil
}
