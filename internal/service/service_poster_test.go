package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/mock"
	"github.com/MKhiriev/go-poster-keeper/internal/store"
	"github.com/MKhiriev/go-poster-keeper/internal/utils"
	"github.com/MKhiriev/go-poster-keeper/internal/validators"
	"github.com/MKhiriev/go-poster-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPosterServerSvc(t *testing.T, ctrl *gomock.Controller) (PosterService, *mock.MockPosterRepository) {
	t.Helper()
	repo := mock.NewMockPosterRepository(ctrl)
	svc := NewPosterValidationService().Wrap(NewPosterService(repo, logger.Nop()))
	return svc, repo
}

// identity of user 7 in party 2, as the auth middleware stores it
func authedContext() context.Context {
	return utils.WithIdentity(context.Background(), 7, 2)
}

// ── PlacePoster ──────────────────────────────────────────────────────────────

func TestPosterService_PlacePoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPosterServerSvc(t, ctrl)

	repo.EXPECT().CreatePoster(gomock.Any(), models.ServerPoster{PartyID: 2, UserID: 7, Location: alexanderplatz}).
		Return(int64(42), nil)

	id, err := svc.PlacePoster(authedContext(), models.PosterRequest{UserID: 7, PartyID: 2, Location: alexanderplatz})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestPosterService_PlacePoster_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		request models.PosterRequest
		wantErr error
	}{
		{
			name:    "other user",
			ctx:     authedContext(),
			request: models.PosterRequest{UserID: 8, PartyID: 2, Location: alexanderplatz},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "other party",
			ctx:     authedContext(),
			request: models.PosterRequest{UserID: 7, PartyID: 3, Location: alexanderplatz},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "no identity",
			ctx:     context.Background(),
			request: models.PosterRequest{UserID: 7, PartyID: 2, Location: alexanderplatz},
			wantErr: ErrValidationNoUserID,
		},
		{
			name:    "invalid location",
			ctx:     authedContext(),
			request: models.PosterRequest{UserID: 7, PartyID: 2, Location: models.Location{Lat: 0, Lng: 200}},
			wantErr: validators.ErrInvalidLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestPosterServerSvc(t, ctrl)

			_, err := svc.PlacePoster(tt.ctx, tt.request)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── RemovePoster ─────────────────────────────────────────────────────────────

func TestPosterService_RemovePoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPosterServerSvc(t, ctrl)

	repo.EXPECT().RemoveNearest(gomock.Any(), int64(2), int64(7), alexanderplatz, utils.RemovalRadiusMeters).
		Return(int64(42), nil)

	id, err := svc.RemovePoster(authedContext(), models.PosterRequest{UserID: 7, PartyID: 2, Location: alexanderplatz})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestPosterService_RemovePoster_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPosterServerSvc(t, ctrl)

	repo.EXPECT().RemoveNearest(gomock.Any(), int64(2), int64(7), alexanderplatz, utils.RemovalRadiusMeters).
		Return(int64(0), store.ErrPosterNotFound)

	_, err := svc.RemovePoster(authedContext(), models.PosterRequest{UserID: 7, PartyID: 2, Location: alexanderplatz})
	require.ErrorIs(t, err, store.ErrPosterNotFound)
}

// ── RetrieveUpdates ──────────────────────────────────────────────────────────

func TestPosterService_RetrieveUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPosterServerSvc(t, ctrl)

	since := int64(1_700_000_000_000)
	removedAt := time.UnixMilli(since + 10)
	rows := []models.ServerPoster{
		{PosterID: 1, PartyID: 2, UserID: 7, Location: alexanderplatz},
		{PosterID: 2, PartyID: 2, UserID: 9, Location: hackescherMarkt, Removed: true, RemovedAt: &removedAt},
	}

	repo.EXPECT().UpdatedSince(gomock.Any(), int64(2), time.UnixMilli(since)).Return(rows, nil)

	deltas, err := svc.RetrieveUpdates(authedContext(), models.UpdatesRequest{UserID: 7, PartyID: 2, Since: since})
	require.NoError(t, err)
	assert.Equal(t, []models.PosterDelta{
		{ServerID: 1, Location: alexanderplatz},
		{ServerID: 2, Location: hackescherMarkt, Removed: true},
	}, deltas)
}

func TestPosterService_RetrieveUpdates_NegativeSince(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestPosterServerSvc(t, ctrl)

	_, err := svc.RetrieveUpdates(authedContext(), models.UpdatesRequest{UserID: 7, PartyID: 2, Since: -5})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidSince)
}
