package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/mock"
	"github.com/MKhiriev/go-poster-keeper/internal/store"
	"github.com/MKhiriev/go-poster-keeper/internal/validators"
	"github.com/MKhiriev/go-poster-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	alexanderplatz = models.Location{Lat: 52.521918, Lng: 13.413215}
	// ~11 m north of alexanderplatz
	alexanderplatzNorth = models.Location{Lat: 52.522018, Lng: 13.413215}
	// ~1.1 km away
	hackescherMarkt = models.Location{Lat: 52.522605, Lng: 13.402360}
)

func newTestPosterSvc(t *testing.T, ctrl *gomock.Controller) (ClientPosterService, *mock.MockLocalPosterRepository, *mock.MockClientSyncService) {
	t.Helper()
	posters := mock.NewMockLocalPosterRepository(ctrl)
	syncSvc := mock.NewMockClientSyncService(ctrl)
	return NewClientPosterService(posters, syncSvc, logger.Nop()), posters, syncSvc
}

// ── Place ────────────────────────────────────────────────────────────────────

func TestClientPosterService_Place_Synced(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posters, syncSvc := newTestPosterSvc(t, ctrl)

	synced := models.Poster{LocalID: 1, ServerID: models.Int64Ptr(42), Location: alexanderplatz}

	gomock.InOrder(
		posters.EXPECT().Insert(gomock.Any(), models.Poster{Location: alexanderplatz, PendingSync: true}).Return(int64(1), nil),
		syncSvc.EXPECT().RunSyncCycle(gomock.Any(), testSession).Return(models.SyncReport{Flush: models.FlushReport{Attempted: 1, Placed: 1}}, nil),
		posters.EXPECT().Get(gomock.Any(), int64(1)).Return(synced, nil),
	)

	poster, report, err := svc.Place(context.Background(), testSession, alexanderplatz)
	require.NoError(t, err)
	assert.Equal(t, synced, poster)
	assert.Equal(t, 1, report.Flush.Placed)
}

func TestClientPosterService_Place_OfflineStaysPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posters, syncSvc := newTestPosterSvc(t, ctrl)

	stillPending := models.Poster{LocalID: 1, Location: alexanderplatz, PendingSync: true}

	posters.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	syncSvc.EXPECT().RunSyncCycle(gomock.Any(), testSession).
		Return(models.SyncReport{}, fmt.Errorf("pull updates: %w", ErrTransientNetwork))
	posters.EXPECT().Get(gomock.Any(), int64(1)).Return(stillPending, nil)

	// сеть недоступна, это не ошибка для пользователя
	poster, _, err := svc.Place(context.Background(), testSession, alexanderplatz)
	require.NoError(t, err)
	assert.Nil(t, poster.ServerID)
	assert.True(t, poster.PendingSync)
}

func TestClientPosterService_Place_InvalidLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestPosterSvc(t, ctrl)

	_, _, err := svc.Place(context.Background(), testSession, models.Location{Lat: 95, Lng: 0})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidLocation)
}

func TestClientPosterService_Place_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posters, _ := newTestPosterSvc(t, ctrl)

	posters.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrLocalStorageFailure)

	_, _, err := svc.Place(context.Background(), testSession, alexanderplatz)
	require.ErrorIs(t, err, store.ErrLocalStorageFailure)
}

func TestClientPosterService_Place_SyncStorageFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posters, syncSvc := newTestPosterSvc(t, ctrl)

	posters.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	syncSvc.EXPECT().RunSyncCycle(gomock.Any(), testSession).
		Return(models.SyncReport{}, fmt.Errorf("flush pending: %w", store.ErrLocalStorageFailure))

	poster, _, err := svc.Place(context.Background(), testSession, alexanderplatz)
	require.ErrorIs(t, err, store.ErrLocalStorageFailure)
	assert.Equal(t, int64(1), poster.LocalID)
}

// ── Remove ───────────────────────────────────────────────────────────────────

func TestClientPosterService_Remove_SyncedBecomesTombstone(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posters, syncSvc := newTestPosterSvc(t, ctrl)

	active := []models.Poster{
		{LocalID: 1, ServerID: models.Int64Ptr(10), Location: hackescherMarkt},
		{LocalID: 2, ServerID: models.Int64Ptr(11), Location: alexanderplatz},
	}

	gomock.InOrder(
		posters.EXPECT().ListActive(gomock.Any()).Return(active, nil),
		posters.EXPECT().MarkRemovedByServerID(gomock.Any(), int64(11)).Return(alexanderplatz, nil),
		syncSvc.EXPECT().RunSyncCycle(gomock.Any(), testSession).Return(models.SyncReport{}, nil),
	)

	removedAt, _, err := svc.Remove(context.Background(), testSession, alexanderplatzNorth)
	require.NoError(t, err)
	assert.Equal(t, alexanderplatz, removedAt)
}

func TestClientPosterService_Remove_UnsyncedIsPurged(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posters, syncSvc := newTestPosterSvc(t, ctrl)

	active := []models.Poster{{LocalID: 3, Location: alexanderplatz, PendingSync: true}}

	posters.EXPECT().ListActive(gomock.Any()).Return(active, nil)
	posters.EXPECT().PurgeByLocalID(gomock.Any(), int64(3)).Return(nil)
	syncSvc.EXPECT().RunSyncCycle(gomock.Any(), testSession).Return(models.SyncReport{}, nil)

	removedAt, _, err := svc.Remove(context.Background(), testSession, alexanderplatz)
	require.NoError(t, err)
	assert.Equal(t, alexanderplatz, removedAt)
}

func TestClientPosterService_Remove_NothingWithinRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posters, _ := newTestPosterSvc(t, ctrl)

	posters.EXPECT().ListActive(gomock.Any()).Return([]models.Poster{{LocalID: 1, Location: hackescherMarkt}}, nil)
	// синхронизация не запускается

	_, _, err := svc.Remove(context.Background(), testSession, alexanderplatz)
	require.ErrorIs(t, err, store.ErrPosterNotFound)
}

func TestClientPosterService_Remove_OfflineIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posters, syncSvc := newTestPosterSvc(t, ctrl)

	posters.EXPECT().ListActive(gomock.Any()).Return([]models.Poster{{LocalID: 1, ServerID: models.Int64Ptr(10), Location: alexanderplatz}}, nil)
	posters.EXPECT().MarkRemovedByServerID(gomock.Any(), int64(10)).Return(alexanderplatz, nil)
	syncSvc.EXPECT().RunSyncCycle(gomock.Any(), testSession).Return(models.SyncReport{}, ErrRemoteRejected)

	_, _, err := svc.Remove(context.Background(), testSession, alexanderplatz)
	require.NoError(t, err)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestClientPosterService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, posters, _ := newTestPosterSvc(t, ctrl)

	want := []models.Poster{{LocalID: 1, Location: alexanderplatz}}
	posters.EXPECT().ListActive(gomock.Any()).Return(want, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
