package usecase

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"dashboard-metrics-service/internal/dashboard/core/domain"
	"dashboard-metrics-service/internal/dashboard/core/ports"
)

// ErrNilAggregator marks a nil registry entry encountered during a gather.
var ErrNilAggregator = errors.New("nil aggregator registered")

// CollectFailure records one aggregator that could not contribute to a
// gather pass.
type CollectFailure struct {
	Kind domain.Kind
	Err  error
}

// GatherResult carries the merged metrics plus the aggregators that failed
// along the way. A failure never aborts a gather; it is reported here and
// logged, nothing more.
type GatherResult struct {
	Metrics  domain.Metrics
	Failures []CollectFailure
}

// AnalyticsService collects metrics from registered aggregators.
//
// It is not safe for concurrent use: register aggregators while wiring the
// application, then gather.
type AnalyticsService struct {
	aggregators []ports.AggregatorPort
}

// NewAnalyticsService builds a registry seeded with the given aggregators
// (copied; empty if none).
func NewAnalyticsService(aggs ...ports.AggregatorPort) *AnalyticsService {
	registry := make([]ports.AggregatorPort, len(aggs))
	copy(registry, aggs)
	return &AnalyticsService{aggregators: registry}
}

// RegisterAggregator appends an aggregator to the registry. Registration
// is monotonic: no dedup, no removal.
func (s *AnalyticsService) RegisterAggregator(a ports.AggregatorPort) {
	s.aggregators = append(s.aggregators, a)
}

// Aggregators returns a snapshot copy of the registry in registration
// order.
func (s *AnalyticsService) Aggregators() []ports.AggregatorPort {
	out := make([]ports.AggregatorPort, len(s.aggregators))
	copy(out, s.aggregators)
	return out
}

// GatherMetrics collects from every registered aggregator in registration
// order and merges the results; on key collision the later registration
// wins. A failing aggregator contributes nothing this pass — a returned
// error, a panicking Collect, or a nil registry entry is recorded on the
// result, logged, and the pass moves on to the next aggregator.
func (s *AnalyticsService) GatherMetrics() GatherResult {
	res := GatherResult{Metrics: domain.Metrics{}}

	for _, agg := range s.aggregators {
		data, kind, err := collectFrom(agg)
		if err != nil {
			res.Failures = append(res.Failures, CollectFailure{Kind: kind, Err: err})
			log.Warn().
				Str("kind", string(kind)).
				Err(err).
				Msg("aggregator collect failed, skipping")
			continue
		}

		for k, v := range data {
			res.Metrics[k] = v
		}
	}

	return res
}

// collectFrom invokes one aggregator under the gather's batch protection:
// a nil entry or a panic becomes an error instead of unwinding through the
// whole report.
func collectFrom(agg ports.AggregatorPort) (data domain.Metrics, kind domain.Kind, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = fmt.Errorf("aggregator panicked: %v", r)
		}
	}()

	if agg == nil {
		return nil, "", ErrNilAggregator
	}

	kind = agg.Kind()
	data, err = agg.Collect()
	return data, kind, err
}
