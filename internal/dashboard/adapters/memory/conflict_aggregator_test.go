package memory

import (
	"testing"

	"dashboard-metrics-service/internal/dashboard/core/domain"
	metricsDomain "dashboard-metrics-service/internal/metrics/core/domain"
)

// ------------------------------------------------------------
// COLLECT
// ------------------------------------------------------------

func TestConflictAggregator_CollectCounts(t *testing.T) {
	events := []metricsDomain.Event{
		{Type: "play"},
		{Type: "pause"},
		{Type: "play", Conflict: "double"},
		{Type: "play", Conflict: "double"},
	}

	agg := NewConflictAggregator(events)

	metrics, err := agg.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics[MetricConflictedEvents] != 2 {
		t.Fatalf("expected conflicted_events=2, got %d", metrics[MetricConflictedEvents])
	}
	if metrics[MetricDistinctConflicts] != 1 {
		t.Fatalf("expected distinct_conflicts=1, got %d", metrics[MetricDistinctConflicts])
	}
}

func TestConflictAggregator_IgnoresConflictFreeEvents(t *testing.T) {
	events := []metricsDomain.Event{
		{Type: "play"},
		{Type: "pause", Conflict: ""},
	}

	agg := NewConflictAggregator(events)

	metrics, err := agg.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics[MetricConflictedEvents] != 0 {
		t.Fatalf("expected conflicted_events=0, got %d", metrics[MetricConflictedEvents])
	}
	if metrics[MetricDistinctConflicts] != 0 {
		t.Fatalf("expected distinct_conflicts=0, got %d", metrics[MetricDistinctConflicts])
	}
}

func TestConflictAggregator_DistinctKeys(t *testing.T) {
	events := []metricsDomain.Event{
		{Conflict: "double"},
		{Conflict: "overlap"},
		{Conflict: "double"},
	}

	agg := NewConflictAggregator(events)

	metrics, err := agg.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics[MetricConflictedEvents] != 3 {
		t.Fatalf("expected conflicted_events=3, got %d", metrics[MetricConflictedEvents])
	}
	if metrics[MetricDistinctConflicts] != 2 {
		t.Fatalf("expected distinct_conflicts=2, got %d", metrics[MetricDistinctConflicts])
	}
}

// ------------------------------------------------------------
// SNAPSHOT ISOLATION
// ------------------------------------------------------------

func TestConflictAggregator_DefensiveCopy(t *testing.T) {
	events := []metricsDomain.Event{
		{Conflict: "double"},
		{Conflict: "double"},
	}

	agg := NewConflictAggregator(events)

	// Mutations after construction must not leak into the snapshot.
	events[0].Conflict = ""
	events[1].Conflict = "overlap"

	metrics, err := agg.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics[MetricConflictedEvents] != 2 {
		t.Fatalf("expected conflicted_events=2 from the snapshot, got %d", metrics[MetricConflictedEvents])
	}
	if metrics[MetricDistinctConflicts] != 1 {
		t.Fatalf("expected distinct_conflicts=1 from the snapshot, got %d", metrics[MetricDistinctConflicts])
	}
}

// ------------------------------------------------------------
// KIND
// ------------------------------------------------------------

func TestConflictAggregator_Kind(t *testing.T) {
	agg := NewConflictAggregator(nil)

	if agg.Kind() != domain.KindConflicts {
		t.Fatalf("expected kind %q, got %q", domain.KindConflicts, agg.Kind())
	}
}
