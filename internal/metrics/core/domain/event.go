package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a single analytics event supplied by the caller. Zero values
// stand for absent fields: an event with an empty Type still counts (under
// the untyped bucket) and an empty Conflict means the event has no conflict
// at all.
type Event struct {
	ID         string
	Type       string
	Conflict   string
	UserID     string
	OccurredAt time.Time
	Metadata   map[string]any
}

// NewEvent builds an event with a fresh id and a UTC timestamp.
func NewEvent(eventType, conflict string) Event {
	return Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		Conflict:   conflict,
		OccurredAt: time.Now().UTC(),
	}
}
