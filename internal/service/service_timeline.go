package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/store"
	"github.com/mgavrilov/blackraven/internal/utils"
	"github.com/mgavrilov/blackraven/models"
)

// timelineService is the concrete implementation of TimelineService.
//
// Generation is a fixed set of per-table extraction rules: each record table
// maps to one date field, a title/description template, and an importance
// policy. A record whose date field is NULL contributes nothing. The
// duplicate key (target_id, source_table, source_id, event_date) makes
// generation idempotent: re-running it never duplicates events.
type timelineService struct {
	intel    store.IntelRepository
	targets  store.TargetRepository
	timeline store.TimelineRepository
	logger   *logger.Logger
}

// NewTimelineService constructs a TimelineService over the intel, target,
// and timeline repositories.
func NewTimelineService(repos *store.Repositories, logger *logger.Logger) TimelineService {
	return &timelineService{
		intel:    repos.IntelRepository,
		targets:  repos.TargetRepository,
		timeline: repos.TimelineRepository,
		logger:   logger,
	}
}

// GenerateTimelineForTarget scans every record table of the target in a
// fixed order and materializes one event per qualifying date. Fetch failures
// skip that table; insert failures skip that record. The returned count
// covers events created or already present.
func (s *timelineService) GenerateTimelineForTarget(ctx context.Context, targetID int64) (int, error) {
	if !s.callerOwnsTarget(ctx, targetID) {
		return 0, nil
	}

	log := logger.FromContext(ctx)
	total := 0

	addresses, err := s.intel.AddressesByTarget(ctx, targetID)
	if err != nil {
		log.Err(err).Int64("target_id", targetID).Msg("address scan skipped")
	}
	for _, rec := range addresses {
		if rec.LastSeen == nil {
			continue
		}

		importance := models.ImportanceNormal
		if rec.Verified {
			importance = models.ImportanceHigh
		}

		if s.createTimelineEvent(ctx, models.TimelineEvent{
			TargetID:    targetID,
			EventType:   models.EventAddress,
			EventDate:   *rec.LastSeen,
			Title:       "Observed at " + rec.City,
			Description: addressLine(rec),
			SourceTable: rec.TableName(),
			SourceID:    strconv.FormatInt(rec.ID, 10),
			Metadata:    map[string]any{"city": rec.City, "verified": rec.Verified},
			Importance:  importance,
		}) {
			total++
		}
	}

	accounts, err := s.intel.SocialMediaByTarget(ctx, targetID)
	if err != nil {
		log.Err(err).Int64("target_id", targetID).Msg("social media scan skipped")
	}
	for _, rec := range accounts {
		if rec.LastActivity == nil {
			continue
		}

		if s.createTimelineEvent(ctx, models.TimelineEvent{
			TargetID:    targetID,
			EventType:   models.EventSocialMedia,
			EventDate:   *rec.LastActivity,
			Title:       "Activity on " + rec.Platform,
			Description: fmt.Sprintf("Account %q last active", rec.Username),
			SourceTable: rec.TableName(),
			SourceID:    strconv.FormatInt(rec.ID, 10),
			Metadata:    map[string]any{"platform": rec.Platform, "username": rec.Username},
			Importance:  models.ImportanceNormal,
		}) {
			total++
		}
	}

	positions, err := s.intel.EmploymentByTarget(ctx, targetID)
	if err != nil {
		log.Err(err).Int64("target_id", targetID).Msg("employment scan skipped")
	}
	for _, rec := range positions {
		importance := models.ImportanceNormal
		if rec.Verified {
			importance = models.ImportanceHigh
		}

		if rec.StartDate != nil {
			if s.createTimelineEvent(ctx, models.TimelineEvent{
				TargetID:    targetID,
				EventType:   models.EventEmployment,
				EventDate:   *rec.StartDate,
				Title:       "Started at " + rec.Company,
				Description: positionLine(rec),
				SourceTable: rec.TableName(),
				SourceID:    strconv.FormatInt(rec.ID, 10),
				Metadata:    map[string]any{"company": rec.Company, "phase": "started"},
				Importance:  importance,
			}) {
				total++
			}
		}

		// a separate departure event, but only for positions already left
		if rec.EndDate != nil && !rec.IsCurrent {
			if s.createTimelineEvent(ctx, models.TimelineEvent{
				TargetID:    targetID,
				EventType:   models.EventEmployment,
				EventDate:   *rec.EndDate,
				Title:       "Left " + rec.Company,
				Description: positionLine(rec),
				SourceTable: rec.TableName(),
				SourceID:    strconv.FormatInt(rec.ID, 10),
				Metadata:    map[string]any{"company": rec.Company, "phase": "ended"},
				Importance:  importance,
			}) {
				total++
			}
		}
	}

	credentials, err := s.intel.CredentialsByTarget(ctx, targetID)
	if err != nil {
		log.Err(err).Int64("target_id", targetID).Msg("credential scan skipped")
	}
	for _, rec := range credentials {
		if rec.BreachDate == nil {
			continue
		}

		if s.createTimelineEvent(ctx, models.TimelineEvent{
			TargetID:    targetID,
			EventType:   models.EventCredential,
			EventDate:   *rec.BreachDate,
			Title:       "Credential exposed in breach",
			Description: breachLine(rec),
			SourceTable: rec.TableName(),
			SourceID:    strconv.FormatInt(rec.ID, 10),
			Metadata:    map[string]any{"source": rec.Source},
			Importance:  models.ImportanceCritical,
		}) {
			total++
		}
	}

	media, err := s.intel.MediaByTarget(ctx, targetID)
	if err != nil {
		log.Err(err).Int64("target_id", targetID).Msg("media scan skipped")
	}
	for _, rec := range media {
		if rec.CapturedDate == nil {
			continue
		}

		if s.createTimelineEvent(ctx, models.TimelineEvent{
			TargetID:    targetID,
			EventType:   models.EventMedia,
			EventDate:   *rec.CapturedDate,
			Title:       "Media captured: " + rec.FileName,
			Description: rec.MediaType,
			SourceTable: rec.TableName(),
			SourceID:    strconv.FormatInt(rec.ID, 10),
			Metadata:    map[string]any{"media_type": rec.MediaType},
			Importance:  models.ImportanceNormal,
		}) {
			total++
		}
	}

	observations, err := s.intel.NetworkDataByTarget(ctx, targetID)
	if err != nil {
		log.Err(err).Int64("target_id", targetID).Msg("network scan skipped")
	}
	for _, rec := range observations {
		if rec.FirstSeen == nil {
			continue
		}

		if s.createTimelineEvent(ctx, models.TimelineEvent{
			TargetID:    targetID,
			EventType:   models.EventNetwork,
			EventDate:   *rec.FirstSeen,
			Title:       "First seen from " + rec.IPAddress,
			Description: rec.Hostname,
			SourceTable: rec.TableName(),
			SourceID:    strconv.FormatInt(rec.ID, 10),
			Metadata:    map[string]any{"ip_address": rec.IPAddress, "isp": rec.ISP},
			Importance:  models.ImportanceNormal,
		}) {
			total++
		}
	}

	phones, err := s.intel.PhonesByTarget(ctx, targetID)
	if err != nil {
		log.Err(err).Int64("target_id", targetID).Msg("phone scan skipped")
	}
	for _, rec := range phones {
		if rec.LastSeen == nil {
			continue
		}

		importance := models.ImportanceNormal
		if rec.Verified {
			importance = models.ImportanceHigh
		}

		if s.createTimelineEvent(ctx, models.TimelineEvent{
			TargetID:    targetID,
			EventType:   models.EventPhone,
			EventDate:   *rec.LastSeen,
			Title:       "Phone number observed: " + rec.Number,
			Description: rec.Carrier,
			SourceTable: rec.TableName(),
			SourceID:    strconv.FormatInt(rec.ID, 10),
			Metadata:    map[string]any{"carrier": rec.Carrier, "verified": rec.Verified},
			Importance:  importance,
		}) {
			total++
		}
	}

	return total, nil
}

// GetTargetTimeline returns the target's events, most recent first.
func (s *timelineService) GetTargetTimeline(ctx context.Context, targetID int64) ([]models.TimelineEvent, error) {
	if !s.callerOwnsTarget(ctx, targetID) {
		return []models.TimelineEvent{}, nil
	}

	return s.timeline.EventsByTarget(ctx, targetID)
}

// DeleteTimelineEvent removes one event by ID. The delete is scoped to the
// caller's own dossiers, so a foreign event reports [store.ErrEventNotFound].
// Without a session the call is a no-op.
func (s *timelineService) DeleteTimelineEvent(ctx context.Context, eventID int64) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}

	return s.timeline.DeleteEvent(ctx, eventID, userID)
}

// RegenerateTimeline deletes every stored event of the target and rebuilds
// the timeline from the current records. A full rebuild, not a diff: events
// whose source record has since been deleted do not survive it.
func (s *timelineService) RegenerateTimeline(ctx context.Context, targetID int64) (int, error) {
	if !s.callerOwnsTarget(ctx, targetID) {
		return 0, nil
	}

	if err := s.timeline.DeleteEventsByTarget(ctx, targetID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("target_id", targetID).Msg("timeline clear failed")
		return 0, fmt.Errorf("timeline clear failed: %w", err)
	}

	return s.GenerateTimelineForTarget(ctx, targetID)
}

// GetTimelineStats aggregates the target's timeline in one linear pass:
// total count, counts by type and importance, and the earliest and latest
// event dates.
func (s *timelineService) GetTimelineStats(ctx context.Context, targetID int64) (models.TimelineStats, error) {
	stats := models.TimelineStats{
		ByType:       make(map[string]int),
		ByImportance: make(map[string]int),
	}

	if !s.callerOwnsTarget(ctx, targetID) {
		return stats, nil
	}

	events, err := s.timeline.EventsByTarget(ctx, targetID)
	if err != nil {
		return models.TimelineStats{}, fmt.Errorf("timeline fetch failed: %w", err)
	}

	for i := range events {
		event := &events[i]

		stats.TotalEvents++
		stats.ByType[event.EventType]++
		stats.ByImportance[event.Importance]++

		if stats.Earliest == nil || event.EventDate.Before(*stats.Earliest) {
			stats.Earliest = cloneTime(event.EventDate)
		}
		if stats.Latest == nil || event.EventDate.After(*stats.Latest) {
			stats.Latest = cloneTime(event.EventDate)
		}
	}

	return stats, nil
}

// createTimelineEvent is the idempotent insert primitive. An event matching
// the (target_id, source_table, source_id, event_date) key is already
// present: the insert is skipped and the call still reports success. Insert
// failures are logged and reported false so the scan continues.
func (s *timelineService) createTimelineEvent(ctx context.Context, event models.TimelineEvent) bool {
	log := logger.FromContext(ctx)

	exists, err := s.timeline.EventExists(ctx, event.TargetID, event.SourceTable, event.SourceID, event.EventDate)
	if err != nil {
		log.Err(err).Str("source_table", event.SourceTable).Str("source_id", event.SourceID).Msg("duplicate check failed")
		return false
	}
	if exists {
		return true
	}

	if _, err := s.timeline.InsertEvent(ctx, event); err != nil {
		log.Err(err).Str("source_table", event.SourceTable).Str("source_id", event.SourceID).Msg("event insert failed")
		return false
	}

	return true
}

// callerOwnsTarget reports whether the context carries a session whose
// analyst owns the target. Both failure modes (no session, foreign target)
// collapse to false: the analysis surface answers with empty results, never
// authorization errors.
func (s *timelineService) callerOwnsTarget(ctx context.Context, targetID int64) bool {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return false
	}

	owned, err := s.targets.TargetOwnedBy(ctx, targetID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("target_id", targetID).Msg("target ownership check failed")
		return false
	}

	return owned
}

func addressLine(rec models.Address) string {
	line := rec.City
	if rec.Street != "" {
		line = rec.Street + ", " + line
	}
	if rec.Country != "" {
		line = line + ", " + rec.Country
	}
	return line
}

func positionLine(rec models.Employment) string {
	if rec.Position == "" {
		return rec.Company
	}
	return rec.Position + " at " + rec.Company
}

func breachLine(rec models.Credential) string {
	if rec.Source == "" {
		return "Email " + rec.Email + " found in breach data"
	}
	return "Email " + rec.Email + " found in " + rec.Source
}

func cloneTime(t time.Time) *time.Time {
	return &t
}
