package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/service"
	"github.com/MKhiriev/go-poster-keeper/models"
)

// SyncWorker drives a [service.ClientSyncJob] for one session.
type SyncWorker struct {
	job      service.ClientSyncJob
	session  models.Session
	interval time.Duration

	logger *logger.Logger
}

func NewSyncWorker(job service.ClientSyncJob, session models.Session, interval time.Duration, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{
		job:      job,
		session:  session,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the periodic sync and stops it once ctx is done.
func (s *SyncWorker) Run(ctx context.Context) {
	s.logger.Info().
		Int64("user_id", s.session.UserID).
		Dur("interval", s.interval).
		Msg("sync worker started")

	s.job.Start(ctx, s.session, s.interval)
	<-ctx.Done()
	s.job.Stop()

	s.logger.Info().Msg("sync worker stopped")
}
