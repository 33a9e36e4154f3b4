package memory

import (
	"dashboard-metrics-service/internal/dashboard/core/domain"
	"dashboard-metrics-service/internal/dashboard/core/ports"
	metricsDomain "dashboard-metrics-service/internal/metrics/core/domain"
)

// Metric key owned by the event aggregator. Keys are disjoint across
// aggregator kinds so registry merges never collide.
const MetricTotalEvents = "total_events"

// EventAggregator reports volume metrics over an event snapshot fixed at
// construction time.
type EventAggregator struct {
	events []metricsDomain.Event
}

var _ ports.AggregatorPort = (*EventAggregator)(nil)

// NewEventAggregator copies the given events; later changes to the
// caller's slice never reach the aggregator.
func NewEventAggregator(events []metricsDomain.Event) *EventAggregator {
	snapshot := make([]metricsDomain.Event, len(events))
	copy(snapshot, events)
	return &EventAggregator{events: snapshot}
}

func (a *EventAggregator) Kind() domain.Kind {
	return domain.KindEvents
}

func (a *EventAggregator) Collect() (domain.Metrics, error) {
	return domain.Metrics{
		MetricTotalEvents: int64(len(a.events)),
	}, nil
}
