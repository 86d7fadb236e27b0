package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-poster-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalPosterRepository is the durable poster cache of the client.
//
// Every multi-row operation is atomic. Every storage failure is reported
// wrapped in ErrLocalStorageFailure.
type LocalPosterRepository interface {
	// Insert stores a record and returns its local id. A record that
	// carries a server id is upserted on it.
	Insert(ctx context.Context, poster models.Poster) (int64, error)
	// InsertBatch stores all records in one transaction.
	InsertBatch(ctx context.Context, posters ...models.Poster) ([]int64, error)
	// Get loads a record by local id.
	Get(ctx context.Context, localID int64) (models.Poster, error)
	// ListActive returns every record that is not a tombstone.
	ListActive(ctx context.Context) ([]models.Poster, error)
	// ListPending returns every record awaiting remote acknowledgement.
	ListPending(ctx context.Context) ([]models.Poster, error)
	// MarkSynced binds serverID to the record and clears its pending flag.
	MarkSynced(ctx context.Context, localID, serverID int64) error
	// MarkRemovedByServerID turns the record into a pending tombstone and
	// returns where it was.
	MarkRemovedByServerID(ctx context.Context, serverID int64) (models.Location, error)
	// PurgeByServerID deletes the record physically.
	PurgeByServerID(ctx context.Context, serverID int64) error
	// PurgeByLocalID deletes the record physically.
	PurgeByLocalID(ctx context.Context, localID int64) error
	// PurgeTombstones deletes acknowledged tombstones.
	PurgeTombstones(ctx context.Context) (int64, error)
	// ApplyRemoteDelta merges remote changes in one transaction.
	ApplyRemoteDelta(ctx context.Context, deltas []models.PosterDelta) error
	// ResetAll wipes the cache and zeroes the checkpoint atomically.
	ResetAll(ctx context.Context) error
}

// CheckpointRepository persists the "last synchronized at" watermark.
type CheckpointRepository interface {
	// Get returns the zero time when no pull has succeeded yet.
	Get(ctx context.Context) (time.Time, error)
	// Advance moves the watermark forward; an older value is ignored.
	Advance(ctx context.Context, t time.Time) error
	// Reset zeroes the watermark. Used only at session start.
	Reset(ctx context.Context) error
}

// SessionRepository persists the signed-in session across restarts.
type SessionRepository interface {
	Save(ctx context.Context, session models.Session) error
	Get(ctx context.Context) (models.Session, error)
	Clear(ctx context.Context) error
}
