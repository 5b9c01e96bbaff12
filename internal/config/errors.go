// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Gavrilov

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key, issuer, or duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
