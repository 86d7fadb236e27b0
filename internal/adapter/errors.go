package adapter

import "errors"

// Sentinel errors every transport maps its failures to.
var (
	// ErrUnavailable means the remote could not be reached or did not answer
	// in time: connection refused, DNS failure, timeout, HTTP 502/503/504,
	// gRPC Unavailable or DeadlineExceeded.
	ErrUnavailable = errors.New("remote service unavailable")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidResponse is returned when a successful response cannot be
	// decoded.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrInvalidSession is returned before any network call when the session
	// has no auth key, user or party.
	ErrInvalidSession = errors.New("invalid session")
)
