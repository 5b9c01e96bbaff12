// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Gavrilov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/models"
)

// patternRepository is the PostgreSQL-backed implementation of
// [PatternRepository]. The matching_targets and metadata columns are JSONB
// and go through the marshal helpers in json.go.
type patternRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPatternRepository constructs a [PatternRepository] backed by the
// provided database connection and logger.
func NewPatternRepository(db *DB, logger *logger.Logger) PatternRepository {
	logger.Debug().Msg("creating pattern repository")
	return &patternRepository{
		db:     db,
		logger: logger,
	}
}

// FindByKey returns the pattern stored under (pattern_type, pattern_value).
// Returns [ErrPatternNotFound] when no such pattern exists.
func (r *patternRepository) FindByKey(ctx context.Context, patternType, patternValue string) (models.PatternMatch, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findPatternByKey, patternType, patternValue)

	pattern, err := scanPattern(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PatternMatch{}, ErrPatternNotFound
		}

		log.Err(err).Str("func", "*patternRepository.FindByKey").Str("pattern_type", patternType).Msg("failed to scan pattern")
		return models.PatternMatch{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return pattern, nil
}

// Insert stores a new pattern and returns it with the server-assigned ID and
// first_seen/last_seen timestamps.
func (r *patternRepository) Insert(ctx context.Context, pattern models.PatternMatch) (models.PatternMatch, error) {
	log := logger.FromContext(ctx)

	targets, err := marshalJSONColumn(pattern.MatchingTargets)
	if err != nil {
		log.Err(err).Str("func", "*patternRepository.Insert").Msg("failed to encode matching targets")
		return models.PatternMatch{}, err
	}

	metadata, err := marshalJSONColumn(pattern.Metadata)
	if err != nil {
		log.Err(err).Str("func", "*patternRepository.Insert").Msg("failed to encode metadata")
		return models.PatternMatch{}, err
	}

	row := r.db.QueryRowContext(ctx, insertPattern,
		pattern.PatternType, pattern.PatternValue, targets,
		pattern.MatchCount, pattern.ConfidenceScore, metadata, pattern.IsAnomaly)
	if err := row.Scan(&pattern.PatternID, &pattern.FirstSeen, &pattern.LastSeen); err != nil {
		log.Err(err).Str("func", "*patternRepository.Insert").Str("pattern_type", pattern.PatternType).
			Bool("retryable", r.db.IsRetryable(err)).Msg("failed to insert pattern")
		return models.PatternMatch{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return pattern, nil
}

// UpdateByKey rewrites the mutable fields of the pattern stored under
// (pattern_type, pattern_value) and bumps last_seen.
func (r *patternRepository) UpdateByKey(ctx context.Context, pattern models.PatternMatch) error {
	log := logger.FromContext(ctx)

	targets, err := marshalJSONColumn(pattern.MatchingTargets)
	if err != nil {
		log.Err(err).Str("func", "*patternRepository.UpdateByKey").Msg("failed to encode matching targets")
		return err
	}

	metadata, err := marshalJSONColumn(pattern.Metadata)
	if err != nil {
		log.Err(err).Str("func", "*patternRepository.UpdateByKey").Msg("failed to encode metadata")
		return err
	}

	result, err := r.db.ExecContext(ctx, updatePatternByKey,
		pattern.PatternType, pattern.PatternValue, targets,
		pattern.MatchCount, pattern.ConfidenceScore, metadata, pattern.IsAnomaly)
	if err != nil {
		log.Err(err).Str("func", "*patternRepository.UpdateByKey").Str("pattern_type", pattern.PatternType).
			Bool("retryable", r.db.IsRetryable(err)).Msg("failed to update pattern")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*patternRepository.UpdateByKey").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPatternNotFound
	}

	return nil
}

// List returns stored patterns ordered by confidence descending. An empty
// patternType returns patterns of every type.
func (r *patternRepository) List(ctx context.Context, patternType string) ([]models.PatternMatch, error) {
	query, args, err := buildPatternListQuery(patternType, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPatterns(ctx, "*patternRepository.List", query, args)
}

// Anomalies returns only the patterns flagged as anomalous, ordered by
// confidence descending.
func (r *patternRepository) Anomalies(ctx context.Context) ([]models.PatternMatch, error) {
	query, args, err := buildPatternListQuery("", true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPatterns(ctx, "*patternRepository.Anomalies", query, args)
}

// Delete removes one pattern by ID. Returns [ErrPatternNotFound] when no row
// matched.
func (r *patternRepository) Delete(ctx context.Context, patternID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePattern, patternID)
	if err != nil {
		log.Err(err).Str("func", "*patternRepository.Delete").Int64("pattern_id", patternID).Msg("failed to delete pattern")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*patternRepository.Delete").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPatternNotFound
	}

	return nil
}

func (r *patternRepository) queryPatterns(ctx context.Context, funcName, query string, args []any) ([]models.PatternMatch, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	patterns := make([]models.PatternMatch, 0, 20)

	for rows.Next() {
		pattern, scanErr := scanPattern(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan pattern")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		patterns = append(patterns, pattern)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return patterns, nil
}

// scanPattern scans one pattern row in patternColumns order and decodes the
// JSONB columns.
func scanPattern(row rowScanner) (models.PatternMatch, error) {
	var (
		pattern  models.PatternMatch
		targets  []byte
		metadata []byte
	)

	err := row.Scan(&pattern.PatternID, &pattern.PatternType, &pattern.PatternValue,
		&targets, &pattern.MatchCount, &pattern.ConfidenceScore, &metadata,
		&pattern.IsAnomaly, &pattern.FirstSeen, &pattern.LastSeen, &pattern.Notes)
	if err != nil {
		return models.PatternMatch{}, err
	}

	if err := unmarshalJSONColumn(targets, &pattern.MatchingTargets); err != nil {
		return models.PatternMatch{}, err
	}
	if err := unmarshalJSONColumn(metadata, &pattern.Metadata); err != nil {
		return models.PatternMatch{}, err
	}

	return pattern, nil
}
