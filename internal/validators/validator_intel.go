package validators

import (
	"context"

	"github.com/mgavrilov/blackraven/models"
)

const (
	FieldLogin       = "login"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldCodeName    = "code_name"
	FieldPlatform    = "platform"
	FieldUsername    = "username"
	FieldCredential  = "credential"
	FieldNetwork     = "network"
	FieldCity        = "city"
	FieldCompany     = "company"
	FieldFileName    = "file_name"
	FieldPhoneNumber = "number"
)

// IntelValidator enforces the required fields of dossiers, targets, analyst
// accounts, and every intelligence record kind before they reach storage.
type IntelValidator struct {
}

func NewIntelValidator() Validator {
	return &IntelValidator{}
}

func (v *IntelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Dossier:
		return v.validateDossier(ctx, value, fields...)
	case *models.Dossier:
		return v.validateDossier(ctx, *value, fields...)

	case models.Target:
		return v.validateTarget(ctx, value, fields...)
	case *models.Target:
		return v.validateTarget(ctx, *value, fields...)

	case models.SocialMediaAccount:
		return v.validateSocialMedia(ctx, value, fields...)
	case *models.SocialMediaAccount:
		return v.validateSocialMedia(ctx, *value, fields...)

	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	case models.NetworkData:
		return v.validateNetworkData(ctx, value, fields...)
	case *models.NetworkData:
		return v.validateNetworkData(ctx, *value, fields...)

	case models.Address:
		return v.validateAddress(ctx, value, fields...)
	case *models.Address:
		return v.validateAddress(ctx, *value, fields...)

	case models.Employment:
		return v.validateEmployment(ctx, value, fields...)
	case *models.Employment:
		return v.validateEmployment(ctx, *value, fields...)

	case models.MediaFile:
		return v.validateMediaFile(ctx, value, fields...)
	case *models.MediaFile:
		return v.validateMediaFile(ctx, *value, fields...)

	case models.PhoneNumber:
		return v.validatePhoneNumber(ctx, value, fields...)
	case *models.PhoneNumber:
		return v.validatePhoneNumber(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *IntelValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if user.Login == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		}
	}

	return nil
}

func (v *IntelValidator) validateDossier(_ context.Context, dossier models.Dossier, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		if f == FieldName && dossier.Name == "" {
			return ErrEmptyDossierName
		}
	}

	return nil
}

func (v *IntelValidator) validateTarget(_ context.Context, target models.Target, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCodeName}
	}

	for _, f := range fields {
		if f == FieldCodeName && target.CodeName == "" {
			return ErrEmptyCodeName
		}
	}

	return nil
}

func (v *IntelValidator) validateSocialMedia(_ context.Context, rec models.SocialMediaAccount, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlatform, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldPlatform:
			if rec.Platform == "" {
				return ErrEmptyPlatform
			}
		case FieldUsername:
			if rec.Username == "" {
				return ErrEmptyUsername
			}
		}
	}

	return nil
}

// validateCredential accepts a record with either an email or a password
// hash. Records missing both carry nothing the detectors can correlate.
func (v *IntelValidator) validateCredential(_ context.Context, rec models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredential}
	}

	for _, f := range fields {
		if f == FieldCredential && rec.Email == "" && rec.PasswordHash == "" {
			return ErrNoCredentialData
		}
	}

	return nil
}

func (v *IntelValidator) validateNetworkData(_ context.Context, rec models.NetworkData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNetwork}
	}

	for _, f := range fields {
		if f == FieldNetwork && rec.IPAddress == "" && rec.Hostname == "" {
			return ErrNoNetworkLocator
		}
	}

	return nil
}

func (v *IntelValidator) validateAddress(_ context.Context, rec models.Address, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCity}
	}

	for _, f := range fields {
		if f == FieldCity && rec.City == "" {
			return ErrEmptyCity
		}
	}

	return nil
}

func (v *IntelValidator) validateEmployment(_ context.Context, rec models.Employment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompany}
	}

	for _, f := range fields {
		if f == FieldCompany && rec.Company == "" {
			return ErrEmptyCompany
		}
	}

	return nil
}

func (v *IntelValidator) validateMediaFile(_ context.Context, rec models.MediaFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName}
	}

	for _, f := range fields {
		if f == FieldFileName && rec.FileName == "" {
			return ErrEmptyFileName
		}
	}

	return nil
}

func (v *IntelValidator) validatePhoneNumber(_ context.Context, rec models.PhoneNumber, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPhoneNumber}
	}

	for _, f := range fields {
		if f == FieldPhoneNumber && rec.Number == "" {
			return ErrEmptyPhoneNumber
		}
	}

	return nil
}
