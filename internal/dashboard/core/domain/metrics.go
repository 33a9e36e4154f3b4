package domain

// Metrics maps metric names to counts. Every query builds a fresh map;
// results are never cached or shared between calls.
type Metrics map[string]int64

// Kind tags an aggregator variant. Dashboard lookups dispatch on the tag
// instead of on concrete types.
type Kind string

const (
	KindEvents    Kind = "events"
	KindUsers     Kind = "users"
	KindConflicts Kind = "conflicts"
)
