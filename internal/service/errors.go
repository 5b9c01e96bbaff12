// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Gavrilov

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired = errors.New("token is expired")

	// ErrNoSession is returned by CRUD operations invoked without an
	// authenticated analyst in the context. The analysis services never
	// return it: per their contract an absent session yields empty results.
	ErrNoSession = errors.New("no active session")

	// ErrAccessDenied is returned when the requested dossier or target is
	// not reachable from the calling analyst's dossiers.
	ErrAccessDenied = errors.New("access denied")

	ErrUnknownRecordKind = errors.New("unknown intelligence record kind")
)
