// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote poster service.
//
// The primary abstraction is [PosterService], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPPosterService]) and a gRPC implementation
// ([NewGRPCPosterService]); [NewPosterService] picks one from the config.
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] regardless of the protocol (e.g. [ErrUnavailable]
// for an unreachable endpoint, [ErrNotFound] for an unknown removal target).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-poster-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_poster_service_mock.go -package=mock -mock_names PosterService=MockRemotePosterService

// PosterService is the authoritative remote service. Every call that acts on
// behalf of a user takes the session explicitly.
type PosterService interface {
	// Register creates an account and returns its id.
	Register(ctx context.Context, req models.RegisterRequest) (int64, error)

	// Login exchanges credentials for a session.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Place creates a poster at location and returns its server id.
	Place(ctx context.Context, session models.Session, location models.Location) (int64, error)

	// Remove removes the nearest party poster within 20 m of location and
	// returns the server id of the poster it removed.
	Remove(ctx context.Context, session models.Session, location models.Location) (int64, error)

	// FetchUpdatesSince returns every party poster changed after since. A
	// zero since asks for the full set.
	FetchUpdatesSince(ctx context.Context, session models.Session, since time.Time) ([]models.PosterDelta, error)

	// Close releases the underlying connection.
	Close() error
}
