package store

import (
	"context"
	"fmt"

	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/models"
)

// intelRepository is the PostgreSQL-backed implementation of
// [IntelRepository]. It owns all reads and writes against the seven
// per-target intelligence record tables.
//
// Reads come in two scopes: owner-scoped scans (JOIN through targets and
// dossiers, used by the pattern detectors) and per-target reads (used by the
// timeline builder and the listing endpoints). Both are built through the
// shared squirrel builders in sql_queries.go so the column order matches the
// scan helpers below.
type intelRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewIntelRepository constructs an [IntelRepository] backed by the provided
// database connection and logger.
func NewIntelRepository(db *DB, logger *logger.Logger) IntelRepository {
	logger.Debug().Msg("creating intel repository")
	return &intelRepository{
		db:     db,
		logger: logger,
	}
}

// queryIntel executes a built SELECT and scans every row through scan.
// It is the shared read path for all record kinds.
func queryIntel[T any](ctx context.Context, db *DB, funcName, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0, 50)

	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// SocialMediaByOwner returns every social media account reachable from
// dossiers owned by the analyst.
func (r *intelRepository) SocialMediaByOwner(ctx context.Context, userID int64) ([]models.SocialMediaAccount, error) {
	query, args, err := buildIntelByOwnerQuery("social_media", socialMediaColumns, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryIntel(ctx, r.db, "*intelRepository.SocialMediaByOwner", query, args, scanSocialMedia)
}

// CredentialsByOwner returns every credential reachable from dossiers owned
// by the analyst.
func (r *intelRepository) CredentialsByOwner(ctx context.Context, userID int64) ([]models.Credential, error) {
	query, args, err := buildIntelByOwnerQuery("credentials", credentialColumns, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryIntel(ctx, r.db, "*intelRepository.CredentialsByOwner", query, args, scanCredential)
}

// NetworkDataByOwner returns every network observation reachable from
// dossiers owned by the analyst.
func (r *intelRepository) NetworkDataByOwner(ctx context.Context, userID int64) ([]models.NetworkData, error) {
	query, args, err := buildIntelByOwnerQuery("network_data", networkDataColumns, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryIntel(ctx, r.db, "*intelRepository.NetworkDataByOwner", query, args, scanNetworkData)
}

func (r *intelRepository) AddressesByTarget(ctx context.Context, targetID int64) ([]models.Address, error) {
	query, args, err := buildIntelByTargetQuery("addresses", addressColumns, targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryIntel(ctx, r.db, "*intelRepository.AddressesByTarget", query, args, scanAddress)
}

func (r *intelRepository) SocialMediaByTarget(ctx context.Context, targetID int64) ([]models.SocialMediaAccount, error) {
	query, args, err := buildIntelByTargetQuery("social_media", socialMediaColumns, targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryIntel(ctx, r.db, "*intelRepository.SocialMediaByTarget", query, args, scanSocialMedia)
}

func (r *intelRepository) EmploymentByTarget(ctx context.Context, targetID int64) ([]models.Employment, error) {
	query, args, err := buildIntelByTargetQuery("employment", employmentColumns, targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryIntel(ctx, r.db, "*intelRepository.EmploymentByTarget", query, args, scanEmployment)
}

func (r *intelRepository) CredentialsByTarget(ctx context.Context, targetID int64) ([]models.Credential, error) {
	query, args, err := buildIntelByTargetQuery("credentials", credentialColumns, targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryIntel(ctx, r.db, "*intelRepository.CredentialsByTarget", query, args, scanCredential)
}

func (r *intelRepository) MediaByTarget(ctx context.Context, targetID int64) ([]models.MediaFile, error) {
	query, args, err := buildIntelByTargetQuery("media_files", mediaFileColumns, targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryIntel(ctx, r.db, "*intelRepository.MediaByTarget", query, args, scanMediaFile)
}

func (r *intelRepository) NetworkDataByTarget(ctx context.Context, targetID int64) ([]models.NetworkData, error) {
	query, args, err := buildIntelByTargetQuery("network_data", networkDataColumns, targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryIntel(ctx, r.db, "*intelRepository.NetworkDataByTarget", query, args, scanNetworkData)
}

func (r *intelRepository) PhonesByTarget(ctx context.Context, targetID int64) ([]models.PhoneNumber, error) {
	query, args, err := buildIntelByTargetQuery("phone_numbers", phoneNumberColumns, targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryIntel(ctx, r.db, "*intelRepository.PhonesByTarget", query, args, scanPhoneNumber)
}

// CreateSocialMedia inserts one social media record and returns it with the
// server-assigned ID and creation timestamp.
func (r *intelRepository) CreateSocialMedia(ctx context.Context, rec models.SocialMediaAccount) (models.SocialMediaAccount, error) {
	row := r.db.QueryRowContext(ctx, insertSocialMedia, rec.TargetID, rec.Platform, rec.Username, rec.ProfileURL, rec.LastActivity)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*intelRepository.CreateSocialMedia").Int64("target_id", rec.TargetID).Msg("failed to insert record")
		return models.SocialMediaAccount{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rec, nil
}

// CreateCredential inserts one credential record.
func (r *intelRepository) CreateCredential(ctx context.Context, rec models.Credential) (models.Credential, error) {
	row := r.db.QueryRowContext(ctx, insertCredential, rec.TargetID, rec.Email, rec.PasswordHash, rec.Source, rec.BreachDate)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*intelRepository.CreateCredential").Int64("target_id", rec.TargetID).Msg("failed to insert record")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rec, nil
}

// CreateNetworkData inserts one network observation record.
func (r *intelRepository) CreateNetworkData(ctx context.Context, rec models.NetworkData) (models.NetworkData, error) {
	row := r.db.QueryRowContext(ctx, insertNetworkData, rec.TargetID, rec.IPAddress, rec.Hostname, rec.ISP, rec.FirstSeen, rec.LastSeen)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*intelRepository.CreateNetworkData").Int64("target_id", rec.TargetID).Msg("failed to insert record")
		return models.NetworkData{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rec, nil
}

// CreateAddress inserts one address record.
func (r *intelRepository) CreateAddress(ctx context.Context, rec models.Address) (models.Address, error) {
	row := r.db.QueryRowContext(ctx, insertAddress, rec.TargetID, rec.Street, rec.City, rec.Country, rec.Verified, rec.LastSeen)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*intelRepository.CreateAddress").Int64("target_id", rec.TargetID).Msg("failed to insert record")
		return models.Address{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rec, nil
}

// CreateEmployment inserts one employment record.
func (r *intelRepository) CreateEmployment(ctx context.Context, rec models.Employment) (models.Employment, error) {
	row := r.db.QueryRowContext(ctx, insertEmployment, rec.TargetID, rec.Company, rec.Position, rec.StartDate, rec.EndDate, rec.IsCurrent, rec.Verified)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*intelRepository.CreateEmployment").Int64("target_id", rec.TargetID).Msg("failed to insert record")
		return models.Employment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rec, nil
}

// CreateMediaFile inserts one media record.
func (r *intelRepository) CreateMediaFile(ctx context.Context, rec models.MediaFile) (models.MediaFile, error) {
	row := r.db.QueryRowContext(ctx, insertMediaFile, rec.TargetID, rec.FileName, rec.MediaType, rec.CapturedDate)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*intelRepository.CreateMediaFile").Int64("target_id", rec.TargetID).Msg("failed to insert record")
		return models.MediaFile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rec, nil
}

// CreatePhoneNumber inserts one phone number record.
func (r *intelRepository) CreatePhoneNumber(ctx context.Context, rec models.PhoneNumber) (models.PhoneNumber, error) {
	row := r.db.QueryRowContext(ctx, insertPhoneNumber, rec.TargetID, rec.Number, rec.Carrier, rec.Verified, rec.LastSeen)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*intelRepository.CreatePhoneNumber").Int64("target_id", rec.TargetID).Msg("failed to insert record")
		return models.PhoneNumber{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rec, nil
}

// DeleteRecord removes one row from the named intel table, scoped to the
// given target. The table name is validated against the known set inside the
// query builder.
func (r *intelRepository) DeleteRecord(ctx context.Context, table string, targetID, recordID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteIntelRecordQuery(table, targetID, recordID)
	if err != nil {
		log.Err(err).Str("func", "*intelRepository.DeleteRecord").Str("table", table).Msg("failed to build delete query")
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*intelRepository.DeleteRecord").Str("table", table).Int64("record_id", recordID).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Scan helpers. The destination order must match the per-table column lists
// in sql_queries.go.

func scanSocialMedia(row rowScanner) (models.SocialMediaAccount, error) {
	var rec models.SocialMediaAccount
	err := row.Scan(&rec.ID, &rec.TargetID, &rec.Platform, &rec.Username, &rec.ProfileURL, &rec.LastActivity, &rec.CreatedAt)
	return rec, err
}

func scanCredential(row rowScanner) (models.Credential, error) {
	var rec models.Credential
	err := row.Scan(&rec.ID, &rec.TargetID, &rec.Email, &rec.PasswordHash, &rec.Source, &rec.BreachDate, &rec.CreatedAt)
	return rec, err
}

func scanNetworkData(row rowScanner) (models.NetworkData, error) {
	var rec models.NetworkData
	err := row.Scan(&rec.ID, &rec.TargetID, &rec.IPAddress, &rec.Hostname, &rec.ISP, &rec.FirstSeen, &rec.LastSeen, &rec.CreatedAt)
	return rec, err
}

func scanAddress(row rowScanner) (models.Address, error) {
	var rec models.Address
	err := row.Scan(&rec.ID, &rec.TargetID, &rec.Street, &rec.City, &rec.Country, &rec.Verified, &rec.LastSeen, &rec.CreatedAt)
	return rec, err
}

func scanEmployment(row rowScanner) (models.Employment, error) {
	var rec models.Employment
	err := row.Scan(&rec.ID, &rec.TargetID, &rec.Company, &rec.Position, &rec.StartDate, &rec.EndDate, &rec.IsCurrent, &rec.Verified, &rec.CreatedAt)
	return rec, err
}

func scanMediaFile(row rowScanner) (models.MediaFile, error) {
	var rec models.MediaFile
	err := row.Scan(&rec.ID, &rec.TargetID, &rec.FileName, &rec.MediaType, &rec.CapturedDate, &rec.CreatedAt)
	return rec, err
}

func scanPhoneNumber(row rowScanner) (models.PhoneNumber, error) {
	var rec models.PhoneNumber
	err := row.Scan(&rec.ID, &rec.TargetID, &rec.Number, &rec.Carrier, &rec.Verified, &rec.LastSeen, &rec.CreatedAt)
	return rec, err
}
