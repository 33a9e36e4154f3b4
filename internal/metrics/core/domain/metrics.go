package domain

// UsageStats counts events grouped by event type. Built fresh on every
// query, never cached.
type UsageStats map[string]int64

// ConflictReport counts events grouped by conflict key. Events without a
// conflict do not appear under any key.
type ConflictReport map[string]int64
