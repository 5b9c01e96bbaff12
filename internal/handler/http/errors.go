// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Gavrilov

package http

import "errors"

// Failures produced while reading the "Authorization" request header.
// The auth middleware matches on them with [errors.Is] before rejecting
// the request.
var (
	// ErrEmptyAuthorizationHeader signals that the header is absent.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader signals that the header could not be
	// split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken signals that the scheme is present but the token value
	// is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
