package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "cache", "posters.db")}}
	s, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

var (
	berlin  = models.Location{Lat: 52.5200, Lng: 13.4050}
	potsdam = models.Location{Lat: 52.3906, Lng: 13.0645}
	leipzig = models.Location{Lat: 51.3397, Lng: 12.3731}
)

func pendingPoster(loc models.Location) models.Poster {
	return models.Poster{Location: loc, PendingSync: true}
}

func syncedPoster(serverID int64, loc models.Location) models.Poster {
	return models.Poster{ServerID: models.Int64Ptr(serverID), Location: loc}
}

// ── Insert / Get ──────────────────────────────────────────────────────────────

func TestLocalPosters_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	localID, err := repo.Insert(ctx, pendingPoster(berlin))
	require.NoError(t, err)
	assert.Positive(t, localID)

	got, err := repo.Get(ctx, localID)
	require.NoError(t, err)
	assert.Equal(t, localID, got.LocalID)
	assert.Nil(t, got.ServerID)
	assert.Equal(t, berlin, got.Location)
	assert.True(t, got.PendingSync)
	assert.False(t, got.Removed)
}

func TestLocalPosters_InsertUpsertsOnServerID(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	first, err := repo.Insert(ctx, syncedPoster(42, berlin))
	require.NoError(t, err)

	second, err := repo.Insert(ctx, syncedPoster(42, potsdam))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, potsdam, active[0].Location)
}

func TestLocalPosters_InsertRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	_, err := repo.Insert(ctx, models.Poster{Location: berlin})
	assert.ErrorIs(t, err, ErrInvalidPoster)

	_, err = repo.Insert(ctx, pendingPoster(models.Location{Lat: 91}))
	assert.ErrorIs(t, err, ErrInvalidPoster)
}

func TestLocalPosters_GetNotFound(t *testing.T) {
	_, err := newTestClientStorages(t).Posters.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrPosterNotFound)
}

func TestLocalPosters_InsertBatch(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	ids, err := repo.InsertBatch(ctx, pendingPoster(berlin), syncedPoster(7, potsdam), pendingPoster(leipzig))
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.Less(t, ids[0], ids[1])
	assert.Less(t, ids[1], ids[2])

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestLocalPosters_InsertBatchIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	_, err := repo.InsertBatch(ctx, pendingPoster(berlin), models.Poster{Location: potsdam})
	require.ErrorIs(t, err, ErrInvalidPoster)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

// ── ListActive / ListPending ──────────────────────────────────────────────────

func TestLocalPosters_Lists(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	_, err := repo.Insert(ctx, pendingPoster(berlin))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, syncedPoster(1, potsdam))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, syncedPoster(2, leipzig))
	require.NoError(t, err)
	_, err = repo.MarkRemovedByServerID(ctx, 2)
	require.NoError(t, err)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, p := range active {
		assert.False(t, p.Removed)
	}

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, p := range pending {
		assert.True(t, p.PendingSync)
	}
}

func TestLocalPosters_ListsEmptyAreNotNil(t *testing.T) {
	active, err := newTestClientStorages(t).Posters.ListActive(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, active)
	assert.Empty(t, active)
}

// ── MarkSynced ────────────────────────────────────────────────────────────────

func TestLocalPosters_MarkSyncedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	localID, err := repo.Insert(ctx, pendingPoster(berlin))
	require.NoError(t, err)

	require.NoError(t, repo.MarkSynced(ctx, localID, 100))
	require.NoError(t, repo.MarkSynced(ctx, localID, 100))

	got, err := repo.Get(ctx, localID)
	require.NoError(t, err)
	require.NotNil(t, got.ServerID)
	assert.Equal(t, int64(100), *got.ServerID)
	assert.False(t, got.PendingSync)

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestLocalPosters_MarkSyncedCollapsesDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	localID, err := repo.Insert(ctx, pendingPoster(berlin))
	require.NoError(t, err)
	require.NoError(t, repo.ApplyRemoteDelta(ctx, []models.PosterDelta{{ServerID: 100, Location: berlin}}))

	require.NoError(t, repo.MarkSynced(ctx, localID, 100))

	_, err = repo.Get(ctx, localID)
	assert.ErrorIs(t, err, ErrPosterNotFound)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, int64(100), *active[0].ServerID)
	assert.False(t, active[0].PendingSync)
}

func TestLocalPosters_MarkSyncedNotFound(t *testing.T) {
	err := newTestClientStorages(t).Posters.MarkSynced(context.Background(), 404, 1)
	assert.ErrorIs(t, err, ErrPosterNotFound)
}

// ── MarkRemovedByServerID ─────────────────────────────────────────────────────

func TestLocalPosters_MarkRemovedByServerID(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	localID, err := repo.Insert(ctx, syncedPoster(5, potsdam))
	require.NoError(t, err)

	loc, err := repo.MarkRemovedByServerID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, potsdam, loc)

	got, err := repo.Get(ctx, localID)
	require.NoError(t, err)
	assert.True(t, got.Removed)
	assert.True(t, got.PendingSync)

	_, err = repo.MarkRemovedByServerID(ctx, 6)
	assert.ErrorIs(t, err, ErrPosterNotFound)
}

func TestLocalPosters_MarkRemovedTwiceKeepsConfirmedTombstone(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	localID, err := repo.Insert(ctx, syncedPoster(5, potsdam))
	require.NoError(t, err)
	_, err = repo.MarkRemovedByServerID(ctx, 5)
	require.NoError(t, err)
	require.NoError(t, repo.MarkSynced(ctx, localID, 5))

	_, err = repo.MarkRemovedByServerID(ctx, 5)
	require.NoError(t, err)

	got, err := repo.Get(ctx, localID)
	require.NoError(t, err)
	assert.True(t, got.Removed)
	assert.False(t, got.PendingSync)
}

// ── Purge ─────────────────────────────────────────────────────────────────────

func TestLocalPosters_Purge(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	unsynced, err := repo.Insert(ctx, pendingPoster(berlin))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, syncedPoster(9, potsdam))
	require.NoError(t, err)

	require.NoError(t, repo.PurgeByLocalID(ctx, unsynced))
	require.NoError(t, repo.PurgeByServerID(ctx, 9))

	assert.ErrorIs(t, repo.PurgeByLocalID(ctx, unsynced), ErrPosterNotFound)
	assert.ErrorIs(t, repo.PurgeByServerID(ctx, 9), ErrPosterNotFound)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestLocalPosters_PurgeTombstonesKeepsPendingRemovals(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	confirmed, err := repo.Insert(ctx, syncedPoster(1, berlin))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, syncedPoster(2, potsdam))
	require.NoError(t, err)

	_, err = repo.MarkRemovedByServerID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, repo.MarkSynced(ctx, confirmed, 1))
	_, err = repo.MarkRemovedByServerID(ctx, 2)
	require.NoError(t, err)

	purged, err := repo.PurgeTombstones(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(2), *pending[0].ServerID)
}

// ── ApplyRemoteDelta ──────────────────────────────────────────────────────────

func TestLocalPosters_ApplyRemoteDeltaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	deltas := []models.PosterDelta{
		{ServerID: 1, Location: berlin},
		{ServerID: 2, Location: potsdam},
	}

	require.NoError(t, repo.ApplyRemoteDelta(ctx, deltas))
	once, err := repo.ListActive(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.ApplyRemoteDelta(ctx, deltas))
	twice, err := repo.ListActive(ctx)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	require.Len(t, twice, 2)
	for _, p := range twice {
		assert.False(t, p.PendingSync)
	}
}

func TestLocalPosters_ApplyRemoteDeltaRemoval(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	require.NoError(t, repo.ApplyRemoteDelta(ctx, []models.PosterDelta{{ServerID: 1, Location: berlin}}))
	require.NoError(t, repo.ApplyRemoteDelta(ctx, []models.PosterDelta{
		{ServerID: 1, Location: berlin, Removed: true},
		// unknown removal is not materialized
		{ServerID: 77, Location: leipzig, Removed: true},
	}))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	purged, err := repo.PurgeTombstones(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}

func TestLocalPosters_ApplyRemoteDeltaKeepsPendingLocalRemoval(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	localID, err := repo.Insert(ctx, syncedPoster(3, berlin))
	require.NoError(t, err)
	_, err = repo.MarkRemovedByServerID(ctx, 3)
	require.NoError(t, err)

	require.NoError(t, repo.ApplyRemoteDelta(ctx, []models.PosterDelta{{ServerID: 3, Location: potsdam}}))

	got, err := repo.Get(ctx, localID)
	require.NoError(t, err)
	assert.True(t, got.Removed)
	assert.True(t, got.PendingSync)
	assert.Equal(t, berlin, got.Location)

	// the remote confirms the same removal: nothing left to flush
	require.NoError(t, repo.ApplyRemoteDelta(ctx, []models.PosterDelta{{ServerID: 3, Location: berlin, Removed: true}}))

	got, err = repo.Get(ctx, localID)
	require.NoError(t, err)
	assert.True(t, got.Removed)
	assert.False(t, got.PendingSync)
}

func TestLocalPosters_ApplyRemoteDeltaKeepsConfirmedTombstone(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	localID, err := repo.Insert(ctx, syncedPoster(42, berlin))
	require.NoError(t, err)

	require.NoError(t, repo.ApplyRemoteDelta(ctx, []models.PosterDelta{{ServerID: 42, Location: berlin, Removed: true}}))
	// a stale upsert for the same server id arrives later
	require.NoError(t, repo.ApplyRemoteDelta(ctx, []models.PosterDelta{{ServerID: 42, Location: potsdam}}))

	got, err := repo.Get(ctx, localID)
	require.NoError(t, err)
	assert.True(t, got.Removed)
	assert.False(t, got.PendingSync)
	assert.Equal(t, berlin, got.Location)
	require.NotNil(t, got.ServerID)
	assert.Equal(t, int64(42), *got.ServerID)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestLocalPosters_ApplyRemoteDeltaSkipsMalformed(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Posters

	require.NoError(t, repo.ApplyRemoteDelta(ctx, []models.PosterDelta{
		{ServerID: 7, Location: berlin},
		{ServerID: 8, Location: models.Location{Lat: 200, Lng: 0}},
		{ServerID: 0, Location: potsdam},
	}))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.NotNil(t, active[0].ServerID)
	assert.Equal(t, int64(7), *active[0].ServerID)
	assert.Equal(t, berlin, active[0].Location)

	// только мусор: транзакция даже не открывается
	require.NoError(t, repo.ApplyRemoteDelta(ctx, []models.PosterDelta{
		{ServerID: 9, Location: models.Location{Lat: 0, Lng: -181}},
	}))
	active, err = repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestLocalPosters_ApplyRemoteDeltaEmpty(t *testing.T) {
	assert.NoError(t, newTestClientStorages(t).Posters.ApplyRemoteDelta(context.Background(), nil))
}

// ── ResetAll ──────────────────────────────────────────────────────────────────

func TestLocalPosters_ResetAll(t *testing.T) {
	ctx := context.Background()
	s := newTestClientStorages(t)

	before, err := s.Posters.Insert(ctx, pendingPoster(berlin))
	require.NoError(t, err)
	require.NoError(t, s.Checkpoint.Advance(ctx, time.UnixMilli(1_700_000_000_000)))

	require.NoError(t, s.Posters.ResetAll(ctx))

	active, err := s.Posters.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
	pending, err := s.Posters.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	cp, err := s.Checkpoint.Get(ctx)
	require.NoError(t, err)
	assert.True(t, cp.IsZero())

	// local ids are never reused
	after, err := s.Posters.Insert(ctx, pendingPoster(potsdam))
	require.NoError(t, err)
	assert.Greater(t, after, before)
}
