package service

import (
	"github.com/MKhiriev/go-poster-keeper/internal/adapter"
	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/observability"
	"github.com/MKhiriev/go-poster-keeper/internal/store"
)

type ClientServices struct {
	SessionService ClientSessionService
	PosterService  ClientPosterService
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
}

func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.PosterService,
	cfg *config.ClientConfig,
	metrics *observability.SyncMetrics,
	logger *logger.Logger,
) *ClientServices {
	syncSvc := NewClientSyncService(storages, remote, cfg.Adapter, metrics, logger)

	return &ClientServices{
		SessionService: NewClientSessionService(storages, remote, logger),
		PosterService:  NewClientPosterService(storages.Posters, syncSvc, logger),
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc, logger),
	}
}
