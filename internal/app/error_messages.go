// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// poster server handlers and the client adapters.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, gRPC status messages or log entries. Keeping them in
// one place lets the client recognise a rejection by its wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLocation is returned when a poster location is outside the
	// valid latitude/longitude ranges.
	MsgInvalidLocation = "invalid location"

	// MsgInvalidSince is returned when the updates watermark is not a
	// non-negative Unix millisecond timestamp.
	MsgInvalidSince = "invalid since parameter"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a poster request omits the user
	// or party it acts for.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the request names a user or party
	// that differs from the one the auth key was issued for.
	MsgAccessDenied = "access denied"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing an auth key.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgPosterNotFound is returned when no party poster lies within the
	// removal radius of the requested location.
	MsgPosterNotFound = "no poster found within 20 meters"
)
