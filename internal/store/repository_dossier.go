package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/models"
)

// dossierRepository is the PostgreSQL-backed implementation of
// [DossierRepository]. Every read and delete is scoped by owner: a dossier
// that exists but belongs to a different analyst behaves exactly like a
// missing one.
type dossierRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDossierRepository constructs a [DossierRepository] backed by the
// provided database connection and logger.
func NewDossierRepository(db *DB, logger *logger.Logger) DossierRepository {
	logger.Debug().Msg("creating dossier repository")
	return &dossierRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDossier persists a new case folder and returns it with
// server-assigned fields (DossierID, CreatedAt, UpdatedAt).
func (r *dossierRepository) CreateDossier(ctx context.Context, dossier models.Dossier) (models.Dossier, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDossier, dossier.UserID, dossier.Name, dossier.Description)

	var created models.Dossier
	if err := row.Scan(&created.DossierID, &created.UserID, &created.Name, &created.Description, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*dossierRepository.CreateDossier").Int64("user_id", dossier.UserID).Msg("error creating dossier")
		return models.Dossier{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// DossiersByOwner returns every dossier owned by the analyst, most recently
// created first. An empty result is not an error.
func (r *dossierRepository) DossiersByOwner(ctx context.Context, userID int64) ([]models.Dossier, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDossiersByOwnerQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*dossierRepository.DossiersByOwner").Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*dossierRepository.DossiersByOwner").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	dossiers := make([]models.Dossier, 0, 10)

	for rows.Next() {
		var d models.Dossier
		if scanErr := rows.Scan(&d.DossierID, &d.UserID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*dossierRepository.DossiersByOwner").Int64("user_id", userID).Msg("failed to scan dossier row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		dossiers = append(dossiers, d)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*dossierRepository.DossiersByOwner").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return dossiers, nil
}

// DossierByID retrieves one dossier scoped to its owner.
//
// Returns [ErrDossierNotFound] when no row matches the (dossierID, userID)
// pair — either because the dossier does not exist or because it belongs to
// another analyst.
func (r *dossierRepository) DossierByID(ctx context.Context, dossierID, userID int64) (models.Dossier, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDossierByIDQuery(dossierID, userID)
	if err != nil {
		log.Err(err).Str("func", "*dossierRepository.DossierByID").Int64("dossier_id", dossierID).Msg("failed to build query")
		return models.Dossier{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var d models.Dossier
	row := r.db.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&d.DossierID, &d.UserID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Dossier{}, ErrDossierNotFound
		}

		log.Err(scanErr).Str("func", "*dossierRepository.DossierByID").Int64("dossier_id", dossierID).Msg("failed to scan dossier row")
		return models.Dossier{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return d, nil
}

// DeleteDossier removes a dossier owned by the analyst. Targets and their
// intelligence records are removed by the ON DELETE CASCADE constraints.
//
// Returns [ErrDossierNotFound] when nothing was deleted.
func (r *dossierRepository) DeleteDossier(ctx context.Context, dossierID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteDossier, dossierID, userID)
	if err != nil {
		log.Err(err).Str("func", "*dossierRepository.DeleteDossier").Int64("dossier_id", dossierID).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*dossierRepository.DeleteDossier").Int64("dossier_id", dossierID).Msg("dossier not found")
		return ErrDossierNotFound
	}

	return nil
}
