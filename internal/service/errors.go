package service

import "errors"

// Server-side business errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrAccessDenied is returned when a request acts for a user or party
	// other than the one the auth key was issued for.
	ErrAccessDenied = errors.New("access denied")

	ErrValidationNoUserID = errors.New("no user ID for poster request was given")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors. Every remote failure seen by the sync engine is
// classified as one of these two.
var (
	// ErrTransientNetwork covers timeouts, unreachable endpoints and
	// overloaded gateways. The operation is retried on the next cycle.
	ErrTransientNetwork = errors.New("transient network failure")

	// ErrRemoteRejected is an explicit failure response of the remote.
	// Retrying the same request without user action will not help.
	ErrRemoteRejected = errors.New("remote rejected the request")

	// ErrNotSignedIn is returned when an operation needs a session and
	// none was given.
	ErrNotSignedIn = errors.New("not signed in")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)
