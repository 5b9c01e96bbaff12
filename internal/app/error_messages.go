// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Gavrilov

// Package app contains shared application-layer constants used across the
// BlackRaven server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing analyst account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgUnknownRecordKind is returned when the record kind segment of the
	// URL does not name one of the intelligence record tables.
	MsgUnknownRecordKind = "unknown record kind"

	// MsgInvalidDossierID is returned when the dossier ID URL segment is not
	// a valid integer.
	MsgInvalidDossierID = "invalid dossier id"

	// MsgInvalidTargetID is returned when the target ID URL segment is not a
	// valid integer.
	MsgInvalidTargetID = "invalid target id"

	// MsgInvalidRecordID is returned when the record ID URL segment is not a
	// valid integer.
	MsgInvalidRecordID = "invalid record id"

	// MsgInvalidPatternID is returned when the pattern ID URL segment is not
	// a valid integer.
	MsgInvalidPatternID = "invalid pattern id"

	// MsgInvalidEventID is returned when the timeline event ID URL segment
	// is not a valid integer.
	MsgInvalidEventID = "invalid event id"
)
