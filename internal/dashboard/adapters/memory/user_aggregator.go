package memory

import (
	"dashboard-metrics-service/internal/dashboard/core/domain"
	"dashboard-metrics-service/internal/dashboard/core/ports"
)

// Metric keys owned by the user aggregator.
const (
	MetricTotalUsers  = "total_users"
	MetricActiveUsers = "active_users"
)

// UserAggregator reports user counts over a snapshot fixed at construction
// time.
type UserAggregator struct {
	users []domain.User
}

var _ ports.AggregatorPort = (*UserAggregator)(nil)

// NewUserAggregator copies the given users; later changes to the caller's
// slice never reach the aggregator.
func NewUserAggregator(users []domain.User) *UserAggregator {
	snapshot := make([]domain.User, len(users))
	copy(snapshot, users)
	return &UserAggregator{users: snapshot}
}

func (a *UserAggregator) Kind() domain.Kind {
	return domain.KindUsers
}

func (a *UserAggregator) Collect() (domain.Metrics, error) {
	var active int64
	for _, u := range a.users {
		if u.Active {
			active++
		}
	}

	return domain.Metrics{
		MetricTotalUsers:  int64(len(a.users)),
		MetricActiveUsers: active,
	}, nil
}
