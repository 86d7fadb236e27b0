package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-poster-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService reconciles the local poster cache with the remote
// service. Every method takes the session explicitly.
type ClientSyncService interface {
	// FlushPending pushes every pending record to the remote. Remote failures
	// of single records are collected in the report and leave the record
	// pending; a local storage failure aborts the flush and is returned.
	FlushPending(ctx context.Context, session models.Session) (models.FlushReport, error)

	// PullUpdates fetches remote changes since the checkpoint, merges them
	// atomically and then advances the checkpoint. On failure the
	// checkpoint is left untouched.
	PullUpdates(ctx context.Context, session models.Session) (models.PullReport, error)

	// RunSyncCycle flushes, then pulls, then purges confirmed tombstones.
	// Concurrent callers share one in-flight cycle, which is not cancelled
	// by any caller.
	RunSyncCycle(ctx context.Context, session models.Session) (models.SyncReport, error)
}

// ClientPosterService is the user-facing poster workflow. Every local change
// is durable before any network activity.
type ClientPosterService interface {
	// Place records a poster at location and runs a sync cycle. A remote
	// failure does not fail the call; the record stays pending.
	Place(ctx context.Context, session models.Session, location models.Location) (models.Poster, models.SyncReport, error)

	// Remove takes down the nearest active poster within 20 meters and runs
	// a sync cycle. Returns store.ErrPosterNotFound when there is none.
	Remove(ctx context.Context, session models.Session, location models.Location) (models.Location, models.SyncReport, error)

	// List returns the active posters from the local cache.
	List(ctx context.Context) ([]models.Poster, error)
}

// ClientSessionService manages the signed-in account on this device.
type ClientSessionService interface {
	Register(ctx context.Context, req models.RegisterRequest) (int64, error)

	// Login authenticates remotely, wipes the cache of any previous session
	// and persists the new one.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Restore loads the persisted session or returns
	// store.ErrLocalSessionNotFound.
	Restore(ctx context.Context) (models.Session, error)

	// Logout forgets the session and wipes the cache.
	Logout(ctx context.Context) error
}

// ClientSyncJob runs sync cycles periodically in the background.
type ClientSyncJob interface {
	// Start stops any previous run and launches a new one. A non-positive
	// interval falls back to 5 minutes.
	Start(ctx context.Context, session models.Session, interval time.Duration)

	// Stop cancels the background run and waits for it to exit.
	Stop()
}
