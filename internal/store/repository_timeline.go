package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/models"
)

// timelineRepository is the PostgreSQL-backed implementation of
// [TimelineRepository].
type timelineRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTimelineRepository constructs a [TimelineRepository] backed by the
// provided database connection and logger.
func NewTimelineRepository(db *DB, logger *logger.Logger) TimelineRepository {
	logger.Debug().Msg("creating timeline repository")
	return &timelineRepository{
		db:     db,
		logger: logger,
	}
}

// EventExists reports whether an event with the given dedup key
// (target, source table, source row, event date) is already stored.
func (r *timelineRepository) EventExists(ctx context.Context, targetID int64, sourceTable, sourceID string, eventDate time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool

	row := r.db.QueryRowContext(ctx, eventExists, targetID, sourceTable, sourceID, eventDate)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*timelineRepository.EventExists").Int64("target_id", targetID).Msg("failed to check event existence")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return exists, nil
}

// InsertEvent stores one timeline event and returns it with the
// server-assigned ID and creation timestamp.
func (r *timelineRepository) InsertEvent(ctx context.Context, event models.TimelineEvent) (models.TimelineEvent, error) {
	log := logger.FromContext(ctx)

	metadata, err := marshalJSONColumn(event.Metadata)
	if err != nil {
		log.Err(err).Str("func", "*timelineRepository.InsertEvent").Msg("failed to encode metadata")
		return models.TimelineEvent{}, err
	}

	row := r.db.QueryRowContext(ctx, insertEvent,
		event.TargetID, event.EventType, event.EventDate, event.Title,
		event.Description, event.SourceTable, event.SourceID, metadata, event.Importance)
	if err := row.Scan(&event.EventID, &event.CreatedAt); err != nil {
		log.Err(err).Str("func", "*timelineRepository.InsertEvent").Int64("target_id", event.TargetID).
			Bool("retryable", r.db.IsRetryable(err)).Msg("failed to insert event")
		return models.TimelineEvent{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return event, nil
}

// EventsByTarget returns the target's timeline, most recent events first.
func (r *timelineRepository) EventsByTarget(ctx context.Context, targetID int64) ([]models.TimelineEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildEventsByTargetQuery(targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*timelineRepository.EventsByTarget").Int64("target_id", targetID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.TimelineEvent, 0, 50)

	for rows.Next() {
		event, scanErr := scanEvent(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*timelineRepository.EventsByTarget").Msg("failed to scan event")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		events = append(events, event)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*timelineRepository.EventsByTarget").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return events, nil
}

// DeleteEventsByTarget removes every stored event for the target. Deleting
// from an empty timeline is not an error.
func (r *timelineRepository) DeleteEventsByTarget(ctx context.Context, targetID int64) error {
	if _, err := r.db.ExecContext(ctx, deleteEventsByTarget, targetID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*timelineRepository.DeleteEventsByTarget").Int64("target_id", targetID).Msg("failed to delete events")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteEvent removes one event by ID, joined through targets and dossiers
// so only events under the analyst's own dossiers are reachable. Returns
// [ErrEventNotFound] when no row matched, including events of foreign targets.
func (r *timelineRepository) DeleteEvent(ctx context.Context, eventID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteEvent, eventID, userID)
	if err != nil {
		log.Err(err).Str("func", "*timelineRepository.DeleteEvent").Int64("event_id", eventID).Msg("failed to delete event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*timelineRepository.DeleteEvent").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// scanEvent scans one timeline row in eventColumns order and decodes the
// metadata JSONB column.
func scanEvent(row rowScanner) (models.TimelineEvent, error) {
	var (
		event    models.TimelineEvent
		metadata []byte
	)

	err := row.Scan(&event.EventID, &event.TargetID, &event.EventType, &event.EventDate,
		&event.Title, &event.Description, &event.SourceTable, &event.SourceID,
		&metadata, &event.Importance, &event.CreatedAt)
	if err != nil {
		return models.TimelineEvent{}, err
	}

	if err := unmarshalJSONColumn(metadata, &event.Metadata); err != nil {
		return models.TimelineEvent{}, err
	}

	return event, nil
}
