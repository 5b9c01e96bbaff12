package service

import (
	"context"
	"fmt"

	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/store"
	"github.com/mgavrilov/blackraven/internal/utils"
	"github.com/mgavrilov/blackraven/internal/validators"
	"github.com/mgavrilov/blackraven/models"
)

// caseService is the concrete implementation of CaseService. It is thin CRUD
// glue: every operation resolves the analyst from the context, enforces
// dossier ownership, validates the payload, and delegates to the
// repositories.
type caseService struct {
	dossiers  store.DossierRepository
	targets   store.TargetRepository
	intel     store.IntelRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewCaseService constructs a CaseService over the dossier, target, and intel
// repositories.
func NewCaseService(repos *store.Repositories, logger *logger.Logger) CaseService {
	return &caseService{
		dossiers:  repos.DossierRepository,
		targets:   repos.TargetRepository,
		intel:     repos.IntelRepository,
		validator: validators.NewIntelValidator(),
		logger:    logger,
	}
}

// CreateDossier stores a new case folder owned by the calling analyst.
func (c *caseService) CreateDossier(ctx context.Context, dossier models.Dossier) (models.Dossier, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.Dossier{}, ErrNoSession
	}
	if err := c.validator.Validate(ctx, dossier); err != nil {
		return models.Dossier{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	dossier.UserID = userID

	created, err := c.dossiers.CreateDossier(ctx, dossier)
	if err != nil {
		return models.Dossier{}, fmt.Errorf("dossier creation failed: %w", err)
	}

	return created, nil
}

// ListDossiers returns every dossier owned by the calling analyst.
func (c *caseService) ListDossiers(ctx context.Context) ([]models.Dossier, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	return c.dossiers.DossiersByOwner(ctx, userID)
}

// GetDossier returns one owned dossier. A dossier belonging to another
// analyst is indistinguishable from a missing one.
func (c *caseService) GetDossier(ctx context.Context, dossierID int64) (models.Dossier, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.Dossier{}, ErrNoSession
	}

	return c.dossiers.DossierByID(ctx, dossierID, userID)
}

// DeleteDossier removes an owned dossier. Targets and their records go with
// it via the cascade.
func (c *caseService) DeleteDossier(ctx context.Context, dossierID int64) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrNoSession
	}

	return c.dossiers.DeleteDossier(ctx, dossierID, userID)
}

// CreateTarget stores a new person of interest under an owned dossier.
func (c *caseService) CreateTarget(ctx context.Context, target models.Target) (models.Target, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.Target{}, ErrNoSession
	}
	if err := c.validator.Validate(ctx, target); err != nil {
		return models.Target{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := c.dossiers.DossierByID(ctx, target.DossierID, userID); err != nil {
		log.Err(err).Int64("dossier_id", target.DossierID).Msg("target creation rejected")
		return models.Target{}, ErrAccessDenied
	}

	created, err := c.targets.CreateTarget(ctx, target)
	if err != nil {
		return models.Target{}, fmt.Errorf("target creation failed: %w", err)
	}

	return created, nil
}

// ListTargets returns every target in an owned dossier.
func (c *caseService) ListTargets(ctx context.Context, dossierID int64) ([]models.Target, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	if _, err := c.dossiers.DossierByID(ctx, dossierID, userID); err != nil {
		return nil, ErrAccessDenied
	}

	return c.targets.TargetsByDossier(ctx, dossierID)
}

// GetTarget returns one target after verifying it sits under an owned dossier.
func (c *caseService) GetTarget(ctx context.Context, targetID int64) (models.Target, error) {
	if err := c.requireTargetOwnership(ctx, targetID); err != nil {
		return models.Target{}, err
	}

	return c.targets.TargetByID(ctx, targetID)
}

// DeleteTarget removes one owned target and, via the cascade, its records.
func (c *caseService) DeleteTarget(ctx context.Context, targetID int64) error {
	if err := c.requireTargetOwnership(ctx, targetID); err != nil {
		return err
	}

	return c.targets.DeleteTarget(ctx, targetID)
}

func (c *caseService) AddSocialMedia(ctx context.Context, rec models.SocialMediaAccount) (models.SocialMediaAccount, error) {
	if err := c.requireTargetOwnership(ctx, rec.TargetID); err != nil {
		return models.SocialMediaAccount{}, err
	}
	if err := c.validator.Validate(ctx, rec); err != nil {
		return models.SocialMediaAccount{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.intel.CreateSocialMedia(ctx, rec)
}

func (c *caseService) AddCredential(ctx context.Context, rec models.Credential) (models.Credential, error) {
	if err := c.requireTargetOwnership(ctx, rec.TargetID); err != nil {
		return models.Credential{}, err
	}
	if err := c.validator.Validate(ctx, rec); err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.intel.CreateCredential(ctx, rec)
}

func (c *caseService) AddNetworkData(ctx context.Context, rec models.NetworkData) (models.NetworkData, error) {
	if err := c.requireTargetOwnership(ctx, rec.TargetID); err != nil {
		return models.NetworkData{}, err
	}
	if err := c.validator.Validate(ctx, rec); err != nil {
		return models.NetworkData{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.intel.CreateNetworkData(ctx, rec)
}

func (c *caseService) AddAddress(ctx context.Context, rec models.Address) (models.Address, error) {
	if err := c.requireTargetOwnership(ctx, rec.TargetID); err != nil {
		return models.Address{}, err
	}
	if err := c.validator.Validate(ctx, rec); err != nil {
		return models.Address{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.intel.CreateAddress(ctx, rec)
}

func (c *caseService) AddEmployment(ctx context.Context, rec models.Employment) (models.Employment, error) {
	if err := c.requireTargetOwnership(ctx, rec.TargetID); err != nil {
		return models.Employment{}, err
	}
	if err := c.validator.Validate(ctx, rec); err != nil {
		return models.Employment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.intel.CreateEmployment(ctx, rec)
}

func (c *caseService) AddMediaFile(ctx context.Context, rec models.MediaFile) (models.MediaFile, error) {
	if err := c.requireTargetOwnership(ctx, rec.TargetID); err != nil {
		return models.MediaFile{}, err
	}
	if err := c.validator.Validate(ctx, rec); err != nil {
		return models.MediaFile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.intel.CreateMediaFile(ctx, rec)
}

func (c *caseService) AddPhoneNumber(ctx context.Context, rec models.PhoneNumber) (models.PhoneNumber, error) {
	if err := c.requireTargetOwnership(ctx, rec.TargetID); err != nil {
		return models.PhoneNumber{}, err
	}
	if err := c.validator.Validate(ctx, rec); err != nil {
		return models.PhoneNumber{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return c.intel.CreatePhoneNumber(ctx, rec)
}

func (c *caseService) ListSocialMedia(ctx context.Context, targetID int64) ([]models.SocialMediaAccount, error) {
	if err := c.requireTargetOwnership(ctx, targetID); err != nil {
		return nil, err
	}
	return c.intel.SocialMediaByTarget(ctx, targetID)
}

func (c *caseService) ListCredentials(ctx context.Context, targetID int64) ([]models.Credential, error) {
	if err := c.requireTargetOwnership(ctx, targetID); err != nil {
		return nil, err
	}
	return c.intel.CredentialsByTarget(ctx, targetID)
}

func (c *caseService) ListNetworkData(ctx context.Context, targetID int64) ([]models.NetworkData, error) {
	if err := c.requireTargetOwnership(ctx, targetID); err != nil {
		return nil, err
	}
	return c.intel.NetworkDataByTarget(ctx, targetID)
}

func (c *caseService) ListAddresses(ctx context.Context, targetID int64) ([]models.Address, error) {
	if err := c.requireTargetOwnership(ctx, targetID); err != nil {
		return nil, err
	}
	return c.intel.AddressesByTarget(ctx, targetID)
}

func (c *caseService) ListEmployment(ctx context.Context, targetID int64) ([]models.Employment, error) {
	if err := c.requireTargetOwnership(ctx, targetID); err != nil {
		return nil, err
	}
	return c.intel.EmploymentByTarget(ctx, targetID)
}

func (c *caseService) ListMediaFiles(ctx context.Context, targetID int64) ([]models.MediaFile, error) {
	if err := c.requireTargetOwnership(ctx, targetID); err != nil {
		return nil, err
	}
	return c.intel.MediaByTarget(ctx, targetID)
}

func (c *caseService) ListPhoneNumbers(ctx context.Context, targetID int64) ([]models.PhoneNumber, error) {
	if err := c.requireTargetOwnership(ctx, targetID); err != nil {
		return nil, err
	}
	return c.intel.PhonesByTarget(ctx, targetID)
}

// RemoveRecord deletes one record from the named intel table after the same
// ownership check every other record operation runs.
func (c *caseService) RemoveRecord(ctx context.Context, targetID int64, table string, recordID int64) error {
	if err := c.requireTargetOwnership(ctx, targetID); err != nil {
		return err
	}

	return c.intel.DeleteRecord(ctx, table, targetID, recordID)
}

// requireTargetOwnership rejects operations on targets that do not sit under
// a dossier owned by the calling analyst.
func (c *caseService) requireTargetOwnership(ctx context.Context, targetID int64) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrNoSession
	}

	owned, err := c.targets.TargetOwnedBy(ctx, targetID, userID)
	if err != nil {
		return fmt.Errorf("target ownership check failed: %w", err)
	}
	if !owned {
		logger.FromContext(ctx).Warn().Int64("target_id", targetID).Int64("user_id", userID).Msg("target access denied")
		return ErrAccessDenied
	}

	return nil
}
