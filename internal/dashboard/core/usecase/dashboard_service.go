package usecase

import (
	"dashboard-metrics-service/internal/dashboard/core/domain"
	"dashboard-metrics-service/internal/dashboard/core/ports"
)

// DashboardService answers dashboard queries from its own aggregator
// registry.
//
// The registry is owned: seeding from an existing analytics service copies
// its aggregators, and later registrations land on the dashboard's registry
// only. The seed service is never mutated.
//
// Summary and per-kind lookups read different lists. The summary covers
// the whole owned registry; the per-kind getters answer only from the
// aggregators handed directly to the constructor.
//
// Like AnalyticsService, it is not safe for concurrent use.
type DashboardService struct {
	analytics *AnalyticsService
	aggs      []ports.AggregatorPort
}

// NewDashboardService builds a dashboard over a registry seeded with the
// analytics service's aggregators (if any) followed by the extra ones.
func NewDashboardService(analytics *AnalyticsService, extra ...ports.AggregatorPort) *DashboardService {
	var seed []ports.AggregatorPort
	if analytics != nil {
		seed = analytics.Aggregators()
	}
	seed = append(seed, extra...)

	own := make([]ports.AggregatorPort, len(extra))
	copy(own, extra)

	return &DashboardService{
		analytics: NewAnalyticsService(seed...),
		aggs:      own,
	}
}

// RegisterAggregator adds an aggregator to the dashboard's own registry.
// It will show up in the summary; the per-kind getters keep answering from
// the construction-time list.
func (s *DashboardService) RegisterAggregator(a ports.AggregatorPort) {
	s.analytics.RegisterAggregator(a)
}

// GetSummaryMetrics merges every registered aggregator into one map,
// reporting collect failures alongside.
func (s *DashboardService) GetSummaryMetrics() GatherResult {
	return s.analytics.GatherMetrics()
}

// GetEventMetrics returns the event aggregator's metrics.
func (s *DashboardService) GetEventMetrics() (domain.Metrics, error) {
	return s.collectKind(domain.KindEvents)
}

// GetUserMetrics returns the user aggregator's metrics.
func (s *DashboardService) GetUserMetrics() (domain.Metrics, error) {
	return s.collectKind(domain.KindUsers)
}

// GetConflictMetrics returns the conflict aggregator's metrics.
func (s *DashboardService) GetConflictMetrics() (domain.Metrics, error) {
	return s.collectKind(domain.KindConflicts)
}

// collectKind collects from the first construction-supplied aggregator of
// the given kind. Its error, if any, propagates as-is. No aggregator of
// that kind yields an empty map.
func (s *DashboardService) collectKind(kind domain.Kind) (domain.Metrics, error) {
	for _, agg := range s.aggs {
		if agg.Kind() != kind {
			continue
		}
		data, err := agg.Collect()
		if err != nil {
			return nil, err
		}
		if data == nil {
			data = domain.Metrics{}
		}
		return data, nil
	}

	return domain.Metrics{}, nil
}
