package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-poster-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpoint_StartsAtZero(t *testing.T) {
	cp, err := newTestClientStorages(t).Checkpoint.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, cp.IsZero())
}

func TestCheckpoint_NeverDecreases(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Checkpoint

	t1 := time.UnixMilli(1_700_000_000_000)
	t2 := t1.Add(time.Hour)

	require.NoError(t, repo.Advance(ctx, t2))
	require.NoError(t, repo.Advance(ctx, t1))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.Equal(t2), "expected %v, got %v", t2, got)
}

func TestCheckpoint_MillisecondPrecision(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Checkpoint

	at := time.Date(2026, 3, 1, 12, 30, 15, 123_456_789, time.UTC)
	require.NoError(t, repo.Advance(ctx, at))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, at.UnixMilli(), got.UnixMilli())
}

func TestCheckpoint_Reset(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Checkpoint

	require.NoError(t, repo.Advance(ctx, time.Now()))
	require.NoError(t, repo.Reset(ctx))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestSession_SaveGetClear(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).Session

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, ErrLocalSessionNotFound)

	first := models.Session{AuthKey: "k1", UserID: 1, PartyID: 2, PartyName: "Greens"}
	second := models.Session{AuthKey: "k2", UserID: 3, PartyID: 4}

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}
