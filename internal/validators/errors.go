// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Gavrilov

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyLogin       = errors.New("login is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyDossierName = errors.New("dossier name is required")
	ErrEmptyCodeName    = errors.New("code name is required")
	ErrEmptyPlatform    = errors.New("platform is required")
	ErrEmptyUsername    = errors.New("username is required")
	ErrNoCredentialData = errors.New("credential requires an email or a password hash")
	ErrNoNetworkLocator = errors.New("network record requires an IP address or a hostname")
	ErrEmptyCity        = errors.New("city is required")
	ErrEmptyCompany     = errors.New("company is required")
	ErrEmptyFileName    = errors.New("file name is required")
	ErrEmptyPhoneNumber = errors.New("phone number is required")
)
