package service

import (
	"context"

	"github.com/mgavrilov/blackraven/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles analyst registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterAnalyst(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CaseService is the CRUD surface for dossiers, targets, and intelligence
// records. Every operation resolves the calling analyst from the context and
// scopes access to dossiers that analyst owns.
type CaseService interface {
	CreateDossier(ctx context.Context, dossier models.Dossier) (models.Dossier, error)
	ListDossiers(ctx context.Context) ([]models.Dossier, error)
	GetDossier(ctx context.Context, dossierID int64) (models.Dossier, error)
	DeleteDossier(ctx context.Context, dossierID int64) error

	CreateTarget(ctx context.Context, target models.Target) (models.Target, error)
	ListTargets(ctx context.Context, dossierID int64) ([]models.Target, error)
	GetTarget(ctx context.Context, targetID int64) (models.Target, error)
	DeleteTarget(ctx context.Context, targetID int64) error

	AddSocialMedia(ctx context.Context, rec models.SocialMediaAccount) (models.SocialMediaAccount, error)
	AddCredential(ctx context.Context, rec models.Credential) (models.Credential, error)
	AddNetworkData(ctx context.Context, rec models.NetworkData) (models.NetworkData, error)
	AddAddress(ctx context.Context, rec models.Address) (models.Address, error)
	AddEmployment(ctx context.Context, rec models.Employment) (models.Employment, error)
	AddMediaFile(ctx context.Context, rec models.MediaFile) (models.MediaFile, error)
	AddPhoneNumber(ctx context.Context, rec models.PhoneNumber) (models.PhoneNumber, error)

	ListSocialMedia(ctx context.Context, targetID int64) ([]models.SocialMediaAccount, error)
	ListCredentials(ctx context.Context, targetID int64) ([]models.Credential, error)
	ListNetworkData(ctx context.Context, targetID int64) ([]models.NetworkData, error)
	ListAddresses(ctx context.Context, targetID int64) ([]models.Address, error)
	ListEmployment(ctx context.Context, targetID int64) ([]models.Employment, error)
	ListMediaFiles(ctx context.Context, targetID int64) ([]models.MediaFile, error)
	ListPhoneNumbers(ctx context.Context, targetID int64) ([]models.PhoneNumber, error)

	// RemoveRecord deletes one intelligence record from the named intel
	// table (social_media, credentials, ...) after verifying the target sits
	// under a dossier owned by the calling analyst.
	RemoveRecord(ctx context.Context, targetID int64, table string, recordID int64) error
}

// PatternService is the correlation engine. Each detector performs one linear
// pass over the calling analyst's records, groups them by a derived key, and
// persists groups crossing the per-type threshold as pattern matches.
//
// Detectors are fail-soft: a missing session or a failed fetch yields a zero
// count, never an error that would abort a batch run.
type PatternService interface {
	DetectUsernamePatterns(ctx context.Context) (int, error)
	DetectEmailPatterns(ctx context.Context) (int, error)
	DetectPasswordPatterns(ctx context.Context) (int, error)
	DetectIPRangePatterns(ctx context.Context) (int, error)

	// RunAllPatternDetection runs the four detectors sequentially and
	// returns per-category and total counts.
	RunAllPatternDetection(ctx context.Context) (models.DetectionSummary, error)

	// GetPatternMatches returns stored patterns ordered by confidence
	// descending; an empty patternType returns every type.
	GetPatternMatches(ctx context.Context, patternType string) ([]models.PatternMatch, error)
	GetAnomalies(ctx context.Context) ([]models.PatternMatch, error)
	DeletePattern(ctx context.Context, patternID int64) error
}

// TimelineService reconstructs a target's activity history from its
// date-bearing intelligence records.
type TimelineService interface {
	// GenerateTimelineForTarget scans every record table of the target and
	// materializes one event per qualifying date. Returns the number of
	// events created or already present.
	GenerateTimelineForTarget(ctx context.Context, targetID int64) (int, error)

	GetTargetTimeline(ctx context.Context, targetID int64) ([]models.TimelineEvent, error)
	DeleteTimelineEvent(ctx context.Context, eventID int64) error

	// RegenerateTimeline drops the target's stored events and rebuilds them
	// from the current records.
	RegenerateTimeline(ctx context.Context, targetID int64) (int, error)

	GetTimelineStats(ctx context.Context, targetID int64) (models.TimelineStats, error)
}
