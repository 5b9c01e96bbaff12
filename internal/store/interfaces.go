package store

import (
	"context"
	"time"

	"github.com/mgavrilov/blackraven/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists analyst accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// DossierRepository persists case folders and answers ownership questions for
// the authorization scoping performed by the services.
type DossierRepository interface {
	CreateDossier(ctx context.Context, dossier models.Dossier) (models.Dossier, error)
	DossiersByOwner(ctx context.Context, userID int64) ([]models.Dossier, error)
	DossierByID(ctx context.Context, dossierID, userID int64) (models.Dossier, error)
	DeleteDossier(ctx context.Context, dossierID, userID int64) error
}

// TargetRepository persists persons of interest.
type TargetRepository interface {
	CreateTarget(ctx context.Context, target models.Target) (models.Target, error)
	TargetsByDossier(ctx context.Context, dossierID int64) ([]models.Target, error)
	TargetByID(ctx context.Context, targetID int64) (models.Target, error)
	// TargetOwnedBy reports whether the target belongs to a dossier owned by
	// the given analyst.
	TargetOwnedBy(ctx context.Context, targetID, userID int64) (bool, error)
	DeleteTarget(ctx context.Context, targetID int64) error
}

// IntelRepository reads and writes the per-target intelligence record tables.
//
// The *ByOwner scans join through targets and dossiers and return every
// record reachable from dossiers owned by the given analyst; they feed the
// pattern detectors. The *ByTarget reads feed the timeline builder and the
// listing endpoints.
type IntelRepository interface {
	SocialMediaByOwner(ctx context.Context, userID int64) ([]models.SocialMediaAccount, error)
	CredentialsByOwner(ctx context.Context, userID int64) ([]models.Credential, error)
	NetworkDataByOwner(ctx context.Context, userID int64) ([]models.NetworkData, error)

	AddressesByTarget(ctx context.Context, targetID int64) ([]models.Address, error)
	SocialMediaByTarget(ctx context.Context, targetID int64) ([]models.SocialMediaAccount, error)
	EmploymentByTarget(ctx context.Context, targetID int64) ([]models.Employment, error)
	CredentialsByTarget(ctx context.Context, targetID int64) ([]models.Credential, error)
	MediaByTarget(ctx context.Context, targetID int64) ([]models.MediaFile, error)
	NetworkDataByTarget(ctx context.Context, targetID int64) ([]models.NetworkData, error)
	PhonesByTarget(ctx context.Context, targetID int64) ([]models.PhoneNumber, error)

	CreateSocialMedia(ctx context.Context, rec models.SocialMediaAccount) (models.SocialMediaAccount, error)
	CreateCredential(ctx context.Context, rec models.Credential) (models.Credential, error)
	CreateNetworkData(ctx context.Context, rec models.NetworkData) (models.NetworkData, error)
	CreateAddress(ctx context.Context, rec models.Address) (models.Address, error)
	CreateEmployment(ctx context.Context, rec models.Employment) (models.Employment, error)
	CreateMediaFile(ctx context.Context, rec models.MediaFile) (models.MediaFile, error)
	CreatePhoneNumber(ctx context.Context, rec models.PhoneNumber) (models.PhoneNumber, error)

	// DeleteRecord removes one record from the named intel table, scoped to
	// the owning target. The table name is validated against the known set
	// before any SQL is built.
	DeleteRecord(ctx context.Context, table string, targetID, recordID int64) error
}

// PatternRepository persists derived pattern correlations. Rows are unique
// per (pattern_type, pattern_value); the upsert itself is composed in the
// service layer as a read-then-conditional-write over FindByKey, Insert,
// and UpdateByKey.
type PatternRepository interface {
	FindByKey(ctx context.Context, patternType, patternValue string) (models.PatternMatch, error)
	Insert(ctx context.Context, pattern models.PatternMatch) (models.PatternMatch, error)
	UpdateByKey(ctx context.Context, pattern models.PatternMatch) error
	// List returns patterns ordered by confidence descending; an empty
	// patternType returns all types.
	List(ctx context.Context, patternType string) ([]models.PatternMatch, error)
	Anomalies(ctx context.Context) ([]models.PatternMatch, error)
	Delete(ctx context.Context, patternID int64) error
}

// TimelineRepository persists derived timeline events. Rows are unique per
// (target_id, source_table, source_id, event_date).
type TimelineRepository interface {
	EventExists(ctx context.Context, targetID int64, sourceTable, sourceID string, eventDate time.Time) (bool, error)
	InsertEvent(ctx context.Context, event models.TimelineEvent) (models.TimelineEvent, error)
	// EventsByTarget returns events ordered by event_date descending.
	EventsByTarget(ctx context.Context, targetID int64) ([]models.TimelineEvent, error)
	DeleteEventsByTarget(ctx context.Context, targetID int64) error
	// DeleteEvent removes one event, scoped to the analyst's own dossiers.
	// Foreign events report [ErrEventNotFound].
	DeleteEvent(ctx context.Context, eventID, userID int64) error
}
