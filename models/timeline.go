package models

import "time"

// Timeline event types. Each corresponds to the intelligence record table the
// event was derived from.
const (
	EventAddress     = "address"
	EventSocialMedia = "social_media"
	EventEmployment  = "employment"
	EventCredential  = "credential"
	EventMedia       = "media"
	EventNetwork     = "network"
	EventPhone       = "phone"
)

// Importance levels assigned to timeline events.
const (
	ImportanceLow      = "low"
	ImportanceNormal   = "normal"
	ImportanceHigh     = "high"
	ImportanceCritical = "critical"
)

// TimelineEvent is a single dated occurrence derived from one intelligence
// sub-record, used to reconstruct a target's activity history.
//
// Rows are unique per (TargetID, SourceTable, SourceID, EventDate); the
// timeline builder uses that key to skip duplicates on re-generation.
type TimelineEvent struct {
	// EventID is the internal unique identifier of the event row.
	EventID int64 `json:"event_id"`

	// TargetID references the target the event belongs to.
	TargetID int64 `json:"target_id"`

	// EventType is one of the Event* constants.
	EventType string `json:"event_type"`

	// EventDate is the date the underlying observation occurred.
	EventDate time.Time `json:"event_date"`

	// Title and Description are the human-readable rendering of the event.
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// SourceTable and SourceID trace the event back to the record it was
	// derived from. SourceID is stored as text and defaults to "" when the
	// source record carries no identifier.
	SourceTable string `json:"source_table"`
	SourceID    string `json:"source_id"`

	// Metadata carries opaque type-specific context for the UI.
	Metadata map[string]any `json:"metadata,omitempty"`

	// Importance is one of the Importance* constants.
	Importance string `json:"importance"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the TimelineEvent model.
func (e TimelineEvent) TableName() string {
	return "timeline_events"
}

// TimelineStats aggregates a target's timeline: total event count, counts
// grouped by type and importance, and the span of observed event dates.
type TimelineStats struct {
	TotalEvents  int            `json:"total_events"`
	ByType       map[string]int `json:"by_type"`
	ByImportance map[string]int `json:"by_importance"`

	// Earliest and Latest bound the event dates; nil when the timeline
	// is empty.
	Earliest *time.Time `json:"earliest,omitempty"`
	Latest   *time.Time `json:"latest,omitempty"`
}
