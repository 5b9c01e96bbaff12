// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Gavrilov

package models

import "time"

// Pattern types persisted in the pattern_matches table. A pattern records
// that two or more targets share a correlating key (username, email, email
// domain, password hash, or IP subnet).
const (
	PatternUsernameReuse = "username_reuse"
	PatternEmail         = "email_pattern"
	PatternPassword      = "password_pattern"
	PatternIPRange       = "ip_range"
)

// PatternMatch is a derived, persisted correlation produced by the pattern
// detectors. Rows are unique per (PatternType, PatternValue): re-running a
// detector updates the existing row in place rather than inserting a second
// one.
type PatternMatch struct {
	// PatternID is the internal unique identifier of the pattern row.
	PatternID int64 `json:"pattern_id"`

	// PatternType is one of the Pattern* constants.
	PatternType string `json:"pattern_type"`

	// PatternValue is the shared key: the normalized username, email,
	// "@domain" suffix, truncated password hash, or subnet CIDR.
	PatternValue string `json:"pattern_value"`

	// MatchingTargets lists the identifiers of all targets sharing the key.
	// Order is not significant.
	MatchingTargets []int64 `json:"matching_targets"`

	// MatchCount is the number of distinct targets in MatchingTargets.
	MatchCount int `json:"match_count"`

	// ConfidenceScore is a 0-100 heuristic derived solely from MatchCount.
	ConfidenceScore int `json:"confidence_score"`

	// Metadata carries type-specific context, e.g. which platform records
	// matched for a username pattern, or the full hash for a password pattern.
	Metadata map[string]any `json:"metadata,omitempty"`

	// IsAnomaly is set when MatchCount exceeds the heightened per-type
	// threshold, suggesting unusually strong correlation.
	IsAnomaly bool `json:"is_anomaly"`

	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`

	// Notes is free text an operator may attach to the pattern.
	Notes string `json:"notes,omitempty"`
}

// TableName returns the name of the database table
// associated with the PatternMatch model.
func (p PatternMatch) TableName() string {
	return "pattern_matches"
}

// DetectionSummary reports how many pattern rows each detector created or
// updated during one full detection run.
type DetectionSummary struct {
	UsernamePatterns int `json:"username_patterns"`
	EmailPatterns    int `json:"email_patterns"`
	PasswordPatterns int `json:"password_patterns"`
	IPRangePatterns  int `json:"ip_range_patterns"`
	Total            int `json:"total"`
}
