package metrics

import (
	"time"
)

// Type tags a metric record.
type Type string

// Record types.
const (
	// TypeCapability records a capability detection result.
	TypeCapability Type = "capability"
	// TypeThreshold records threshold configuration.
	TypeThreshold Type = "threshold"
	// TypeComponent records a per-component render decision.
	TypeComponent Type = "component"
	// TypeFPS records an aggregated FPS sample.
	TypeFPS Type = "fps"
	// TypeEvent records a degradation or recovery event.
	TypeEvent Type = "event"
)

// Record is one append-only metric entry. The JSON field names are
// wire-stable; external tooling reads the persisted list.
type Record struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	SessionID string         `json:"sessionId"`
	Type      Type           `json:"type"`
	Data      map[string]any `json:"data,omitempty"`
}

// Filter selects records in Query. Zero fields match everything.
type Filter struct {
	// Type restricts results to one record type.
	Type Type
	// Since restricts results to records at or after this time.
	Since time.Time
}

// matches reports whether a record passes the filter.
func (f Filter) matches(r Record) bool {
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if !f.Since.IsZero() && r.Timestamp.Before(f.Since) {
		return false
	}
	return true
}

// Summary aggregates the stored records for diagnostics.
type Summary struct {
	Total  int
	ByType map[Type]int
	Oldest time.Time
	Newest time.Time
}
