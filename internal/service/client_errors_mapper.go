// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-poster-keeper/internal/adapter"
	"github.com/MKhiriev/go-poster-keeper/internal/app"
	"github.com/MKhiriev/go-poster-keeper/internal/store"
)

// classifyRemoteError sorts an adapter failure into ErrTransientNetwork or
// ErrRemoteRejected. The original error stays in the chain.
func classifyRemoteError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrTransientNetwork), errors.Is(err, ErrRemoteRejected):
		return err
	case errors.Is(err, adapter.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTransientNetwork, err)
	default:
		return fmt.Errorf("%w: %w", ErrRemoteRejected, err)
	}
}

// IsActionable reports whether err is a rejection the user has to resolve,
// typically by signing in again.
func IsActionable(err error) bool {
	return errors.Is(err, ErrNotSignedIn) ||
		errors.Is(err, adapter.ErrUnauthorized) ||
		errors.Is(err, adapter.ErrForbidden) ||
		errors.Is(err, adapter.ErrInvalidSession)
}

// isRemoteNotFound reports whether the remote had nothing to act on.
func isRemoteNotFound(err error) bool {
	return errors.Is(err, adapter.ErrNotFound)
}

// mapAccountError translates an account call failure into the business
// error the user sees. Unknown failures are classified like sync errors.
func mapAccountError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized) && hasMessage(err, app.MsgInvalidLoginPassword):
		return fmt.Errorf("%w: %w", ErrWrongPassword, err)
	case errors.Is(err, adapter.ErrConflict) && hasMessage(err, app.MsgLoginAlreadyExists):
		return fmt.Errorf("%w: %w", store.ErrLoginAlreadyExists, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return classifyRemoteError(err)
}

// hasMessage looks for one of the shared app messages in the error text.
// HTTP bodies and gRPC status messages both end up there.
func hasMessage(err error, msg string) bool {
	return strings.Contains(err.Error(), msg)
}
