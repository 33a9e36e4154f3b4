package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	dashMemory "dashboard-metrics-service/internal/dashboard/adapters/memory"
	dashDomain "dashboard-metrics-service/internal/dashboard/core/domain"
	dashUsecase "dashboard-metrics-service/internal/dashboard/core/usecase"

	metricsDomain "dashboard-metrics-service/internal/metrics/core/domain"
	metricsUsecase "dashboard-metrics-service/internal/metrics/core/usecase"

	"dashboard-metrics-service/internal/logger"
)

// fixture is the optional JSON input pointed at by DASHBOARD_FIXTURE.
type fixture struct {
	Events []eventDTO `json:"events"`
	Users  []userDTO  `json:"users"`
}

type eventDTO struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Conflict   string         `json:"conflict"`
	UserID     string         `json:"user_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Metadata   map[string]any `json:"metadata"`
}

type userDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type report struct {
	Summary        dashDomain.Metrics           `json:"summary"`
	Events         dashDomain.Metrics           `json:"events"`
	Users          dashDomain.Metrics           `json:"users"`
	Conflicts      dashDomain.Metrics           `json:"conflicts"`
	UsageStats     metricsDomain.UsageStats     `json:"usage_stats"`
	ConflictReport metricsDomain.ConflictReport `json:"conflict_report"`
}

func main() {
	// Config
	logger.Initialize(os.Getenv("LOG_LEVEL"))

	events, users := loadData(os.Getenv("DASHBOARD_FIXTURE"))

	log.Info().
		Int("events", len(events)).
		Int("users", len(users)).
		Msg("data loaded")

	// Aggregators
	eventAgg := dashMemory.NewEventAggregator(events)
	userAgg := dashMemory.NewUserAggregator(users)
	conflictAgg := dashMemory.NewConflictAggregator(events)

	// Services
	analytics := dashUsecase.NewAnalyticsService()
	dashboard := dashUsecase.NewDashboardService(analytics, eventAgg, userAgg, conflictAgg)

	calculator := metricsUsecase.NewMetricsCalculator()
	stats := metricsUsecase.NewAnalyticsService(calculator)

	// Report
	summary := dashboard.GetSummaryMetrics()
	if n := len(summary.Failures); n > 0 {
		log.Warn().Int("failed", n).Msg("summary gathered with failures")
	}

	out := report{
		Summary:        summary.Metrics,
		Events:         collectOrEmpty(dashboard.GetEventMetrics),
		Users:          collectOrEmpty(dashboard.GetUserMetrics),
		Conflicts:      collectOrEmpty(dashboard.GetConflictMetrics),
		UsageStats:     stats.GetUsageStats(events),
		ConflictReport: stats.GetConflictReport(events),
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode report")
	}

	os.Stdout.Write(append(encoded, '\n'))
}

// collectOrEmpty keeps the report shape stable when a per-kind lookup
// fails: the error is logged and an empty map takes its place.
func collectOrEmpty(get func() (dashDomain.Metrics, error)) dashDomain.Metrics {
	data, err := get()
	if err != nil {
		log.Error().Err(err).Msg("per-kind collect failed")
		return dashDomain.Metrics{}
	}
	return data
}

// loadData reads the fixture when DASHBOARD_FIXTURE is set, otherwise
// falls back to the built-in sample.
func loadData(path string) ([]metricsDomain.Event, []dashDomain.User) {
	if path == "" {
		return sampleData()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to read fixture")
	}

	var fx fixture
	if err := json.Unmarshal(raw, &fx); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to parse fixture")
	}

	events := make([]metricsDomain.Event, 0, len(fx.Events))
	for _, dto := range fx.Events {
		events = append(events, dto.toDomain())
	}

	users := make([]dashDomain.User, 0, len(fx.Users))
	for _, dto := range fx.Users {
		users = append(users, dto.toDomain())
	}

	return events, users
}

func (dto eventDTO) toDomain() metricsDomain.Event {
	id := dto.ID
	if id == "" {
		id = uuid.New().String()
	}
	return metricsDomain.Event{
		ID:         id,
		Type:       dto.Type,
		Conflict:   dto.Conflict,
		UserID:     dto.UserID,
		OccurredAt: dto.OccurredAt,
		Metadata:   dto.Metadata,
	}
}

func (dto userDTO) toDomain() dashDomain.User {
	id := dto.ID
	if id == "" {
		id = uuid.New().String()
	}
	return dashDomain.User{
		ID:     id,
		Name:   dto.Name,
		Active: dto.Active,
	}
}

func sampleData() ([]metricsDomain.Event, []dashDomain.User) {
	events := []metricsDomain.Event{
		metricsDomain.NewEvent("play", ""),
		metricsDomain.NewEvent("pause", ""),
		metricsDomain.NewEvent("play", "double"),
		metricsDomain.NewEvent("play", "double"),
	}

	users := []dashDomain.User{
		dashDomain.NewUser("ada", true),
		dashDomain.NewUser("brin", false),
		dashDomain.NewUser("cleo", true),
	}

	return events, users
}
