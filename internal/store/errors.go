// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Gavrilov

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new
	// analyst fails because an account with the same login already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDossierNotFound is returned when a query targets a dossier that does
	// not exist or is not owned by the requesting analyst.
	ErrDossierNotFound = errors.New("dossier was not found")

	// ErrTargetNotFound is returned when a query targets a target record that
	// does not exist.
	ErrTargetNotFound = errors.New("target was not found")

	// ErrPatternNotFound is returned when no pattern_matches row exists for a
	// given (pattern_type, pattern_value) key or pattern ID.
	ErrPatternNotFound = errors.New("pattern match was not found")

	// ErrEventNotFound is returned when a delete targets a timeline event
	// that does not exist.
	ErrEventNotFound = errors.New("timeline event was not found")

	// ErrUnknownRecordKind is returned when an intel operation names a record
	// table outside the known set.
	ErrUnknownRecordKind = errors.New("unknown intelligence record kind")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingJSON is returned when a JSONB-bound field (matching targets,
	// metadata, aliases) cannot be marshaled or unmarshaled.
	ErrEncodingJSON = errors.New("failed to encode json column")
)
