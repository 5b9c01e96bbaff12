package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/models"
)

// targetRepository is the PostgreSQL-backed implementation of
// [TargetRepository]. The alias list is stored as a JSONB column.
type targetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTargetRepository constructs a [TargetRepository] backed by the provided
// database connection and logger.
func NewTargetRepository(db *DB, logger *logger.Logger) TargetRepository {
	logger.Debug().Msg("creating target repository")
	return &targetRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTarget persists a new person of interest and returns it with
// server-assigned fields. Empty first/last names are stored as the
// [models.NameNotDetermined] placeholder.
func (r *targetRepository) CreateTarget(ctx context.Context, target models.Target) (models.Target, error) {
	log := logger.FromContext(ctx)

	if target.FirstName == "" {
		target.FirstName = models.NameNotDetermined
	}
	if target.LastName == "" {
		target.LastName = models.NameNotDetermined
	}

	aliases, err := marshalJSONColumn(target.Aliases)
	if err != nil {
		log.Err(err).Str("func", "*targetRepository.CreateTarget").Msg("failed to encode aliases")
		return models.Target{}, err
	}

	row := r.db.QueryRowContext(ctx, createTarget, target.DossierID, target.CodeName, target.FirstName, target.LastName, aliases)

	created, scanErr := scanTarget(row)
	if scanErr != nil {
		log.Err(scanErr).Str("func", "*targetRepository.CreateTarget").Int64("dossier_id", target.DossierID).Msg("error creating target")
		return models.Target{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return created, nil
}

// TargetsByDossier returns every target in a dossier in creation order.
func (r *targetRepository) TargetsByDossier(ctx context.Context, dossierID int64) ([]models.Target, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTargetsByDossierQuery(dossierID)
	if err != nil {
		log.Err(err).Str("func", "*targetRepository.TargetsByDossier").Int64("dossier_id", dossierID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*targetRepository.TargetsByDossier").Int64("dossier_id", dossierID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	targets := make([]models.Target, 0, 10)

	for rows.Next() {
		t, scanErr := scanTarget(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*targetRepository.TargetsByDossier").Int64("dossier_id", dossierID).Msg("failed to scan target row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		targets = append(targets, t)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*targetRepository.TargetsByDossier").Int64("dossier_id", dossierID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return targets, nil
}

// TargetByID retrieves one target. Returns [ErrTargetNotFound] when the row
// does not exist.
func (r *targetRepository) TargetByID(ctx context.Context, targetID int64) (models.Target, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, targetByID, targetID)

	t, scanErr := scanTarget(row)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Target{}, ErrTargetNotFound
		}

		log.Err(scanErr).Str("func", "*targetRepository.TargetByID").Int64("target_id", targetID).Msg("failed to scan target row")
		return models.Target{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return t, nil
}

// TargetOwnedBy reports whether the target belongs to a dossier owned by the
// given analyst. Used by the services before per-target operations.
func (r *targetRepository) TargetOwnedBy(ctx context.Context, targetID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var owned bool
	row := r.db.QueryRowContext(ctx, targetOwnedBy, targetID, userID)
	if err := row.Scan(&owned); err != nil {
		log.Err(err).Str("func", "*targetRepository.TargetOwnedBy").Int64("target_id", targetID).Msg("failed to check target ownership")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return owned, nil
}

// DeleteTarget removes a target. Intelligence records and timeline events
// are removed by the ON DELETE CASCADE constraints.
//
// Returns [ErrTargetNotFound] when nothing was deleted.
func (r *targetRepository) DeleteTarget(ctx context.Context, targetID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTarget, targetID)
	if err != nil {
		log.Err(err).Str("func", "*targetRepository.DeleteTarget").Int64("target_id", targetID).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*targetRepository.DeleteTarget").Int64("target_id", targetID).Msg("target not found")
		return ErrTargetNotFound
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTarget(row rowScanner) (models.Target, error) {
	var t models.Target
	var aliases []byte

	if err := row.Scan(&t.TargetID, &t.DossierID, &t.CodeName, &t.FirstName, &t.LastName, &aliases, &t.CreatedAt); err != nil {
		return models.Target{}, err
	}

	if err := unmarshalJSONColumn(aliases, &t.Aliases); err != nil {
		return models.Target{}, err
	}

	return t, nil
}
