package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-poster-keeper/internal/adapter"
	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/observability"
	"github.com/MKhiriev/go-poster-keeper/internal/store"
	"github.com/MKhiriev/go-poster-keeper/models"
)

const (
	syncComponent = "sync"
	syncCycleKey  = "sync-cycle"

	opPlace  = "place"
	opRemove = "remove"
)

// clientSyncService is the sync engine of the client. It owns no state of
// its own besides the single-flight group; the cache and the checkpoint live
// in the store.
//
// Placement is delivered at least once: when the acknowledgement of a
// successful Place is lost, the record stays pending and is placed again on
// the next cycle.
type clientSyncService struct {
	posters    store.LocalPosterRepository
	checkpoint store.CheckpointRepository
	remote     adapter.PosterService

	requestTimeout time.Duration
	now            func() time.Time

	group   singleflight.Group
	metrics *observability.SyncMetrics
	logger  *logger.Logger
}

// NewClientSyncService builds the sync engine over the client storages and
// the remote adapter. metrics may be nil.
func NewClientSyncService(
	storages *store.ClientStorages,
	remote adapter.PosterService,
	cfg config.ClientAdapter,
	metrics *observability.SyncMetrics,
	logger *logger.Logger,
) ClientSyncService {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultClientRequestTimeout
	}

	return &clientSyncService{
		posters:        storages.Posters,
		checkpoint:     storages.Checkpoint,
		remote:         remote,
		requestTimeout: timeout,
		now:            time.Now,
		metrics:        metrics,
		logger:         logger.WithComponent(syncComponent),
	}
}

func (s *clientSyncService) FlushPending(ctx context.Context, session models.Session) (models.FlushReport, error) {
	ctx, span := observability.StartServiceSpan(ctx, syncComponent, "FlushPending")
	defer span.End()

	report, err := s.flushPending(ctx, session)
	observability.RecordError(span, err)

	placeFailures, removeFailures := countFailures(report.Failures)
	s.metrics.RecordFlush(ctx, opPlace, report.Placed, placeFailures)
	s.metrics.RecordFlush(ctx, opRemove, report.Removed+report.Purged, removeFailures)

	return report, err
}

func (s *clientSyncService) flushPending(ctx context.Context, session models.Session) (models.FlushReport, error) {
	var report models.FlushReport

	if !session.Valid() {
		return report, ErrNotSignedIn
	}

	pending, err := s.posters.ListPending(ctx)
	if err != nil {
		return report, fmt.Errorf("list pending posters: %w", err)
	}
	report.Attempted = len(pending)

	for _, poster := range pending {
		if poster.Removed {
			err = s.flushRemoval(ctx, session, poster, &report)
		} else {
			err = s.flushPlacement(ctx, session, poster, &report)
		}
		if err != nil {
			s.logger.Err(err).
				Str("func", "*clientSyncService.FlushPending").
				Int64("local_id", poster.LocalID).
				Msg("flush aborted by local storage failure")
			return report, err
		}
	}

	s.logger.Info().
		Str("func", "*clientSyncService.FlushPending").
		Int("attempted", report.Attempted).
		Int("placed", report.Placed).
		Int("removed", report.Removed).
		Int("purged", report.Purged).
		Int("failed", len(report.Failures)).
		Msg("pending posters flushed")

	return report, nil
}

// flushPlacement returns an error only when the store failed. Remote
// failures end up in the report.
func (s *clientSyncService) flushPlacement(ctx context.Context, session models.Session, poster models.Poster, report *models.FlushReport) error {
	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	serverID, err := s.remote.Place(callCtx, session, poster.Location)
	cancel()
	if err != nil {
		s.recordFailure(report, poster.LocalID, opPlace, err)
		return nil
	}

	if err := s.posters.MarkSynced(ctx, poster.LocalID, serverID); err != nil {
		if errors.Is(err, store.ErrPosterNotFound) {
			// dropped locally while the call was in flight; the next pull
			// brings the remote copy back
			s.logger.Warn().
				Str("func", "*clientSyncService.flushPlacement").
				Int64("local_id", poster.LocalID).
				Int64("server_id", serverID).
				Msg("placed poster no longer cached")
			report.Placed++
			return nil
		}
		return fmt.Errorf("mark poster %d synced: %w", poster.LocalID, err)
	}

	report.Placed++
	return nil
}

func (s *clientSyncService) flushRemoval(ctx context.Context, session models.Session, poster models.Poster, report *models.FlushReport) error {
	if !poster.Synced() {
		// the remote never saw it
		if err := s.posters.PurgeByLocalID(ctx, poster.LocalID); err != nil && !errors.Is(err, store.ErrPosterNotFound) {
			return fmt.Errorf("purge unsynced tombstone %d: %w", poster.LocalID, err)
		}
		report.Purged++
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	removedID, err := s.remote.Remove(callCtx, session, poster.Location)
	cancel()

	switch {
	case err == nil:
	case isRemoteNotFound(err):
		if err := s.posters.PurgeByServerID(ctx, *poster.ServerID); err != nil && !errors.Is(err, store.ErrPosterNotFound) {
			return fmt.Errorf("purge tombstone %d: %w", *poster.ServerID, err)
		}
		report.Purged++
		return nil
	default:
		s.recordFailure(report, poster.LocalID, opRemove, err)
		return nil
	}

	if removedID != *poster.ServerID {
		// the remote removes by location, so a neighbour within the radius
		// may have been taken instead
		s.logger.Warn().
			Str("func", "*clientSyncService.flushRemoval").
			Int64("local_id", poster.LocalID).
			Int64("server_id", *poster.ServerID).
			Int64("removed_id", removedID).
			Msg("remote removed a different poster")
	}

	if err := s.posters.MarkSynced(ctx, poster.LocalID, *poster.ServerID); err != nil && !errors.Is(err, store.ErrPosterNotFound) {
		return fmt.Errorf("mark tombstone %d synced: %w", poster.LocalID, err)
	}

	report.Removed++
	return nil
}

func (s *clientSyncService) recordFailure(report *models.FlushReport, localID int64, op string, err error) {
	classified := classifyRemoteError(err)
	report.Failures = append(report.Failures, models.RecordFailure{LocalID: localID, Op: op, Err: classified})

	s.logger.Warn().
		Err(classified).
		Str("func", "*clientSyncService.FlushPending").
		Int64("local_id", localID).
		Str("op", op).
		Bool("actionable", IsActionable(classified)).
		Msg("poster left pending")
}

func (s *clientSyncService) PullUpdates(ctx context.Context, session models.Session) (models.PullReport, error) {
	ctx, span := observability.StartServiceSpan(ctx, syncComponent, "PullUpdates")
	defer span.End()

	report, err := s.pullUpdates(ctx, session)
	observability.RecordError(span, err)
	if err == nil {
		s.metrics.RecordPull(ctx, report.Applied)
	}

	return report, err
}

func (s *clientSyncService) pullUpdates(ctx context.Context, session models.Session) (models.PullReport, error) {
	var report models.PullReport

	if !session.Valid() {
		return report, ErrNotSignedIn
	}

	since, err := s.checkpoint.Get(ctx)
	if err != nil {
		return report, fmt.Errorf("load checkpoint: %w", err)
	}
	report.Since = since
	report.Checkpoint = since

	// taken before the request so nothing changed while it was in flight
	// is skipped by the next pull
	issuedAt := s.now()

	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	deltas, err := s.remote.FetchUpdatesSince(callCtx, session, since)
	cancel()
	if err != nil {
		classified := classifyRemoteError(err)
		s.logger.Warn().
			Err(classified).
			Str("func", "*clientSyncService.PullUpdates").
			Time("since", since).
			Msg("fetching updates failed")
		return report, classified
	}

	if len(deltas) == 0 {
		s.logger.Debug().Str("func", "*clientSyncService.PullUpdates").Time("since", since).Msg("no remote updates")
		return report, nil
	}

	if err := s.posters.ApplyRemoteDelta(ctx, deltas); err != nil {
		return report, fmt.Errorf("apply remote delta: %w", err)
	}

	if err := s.checkpoint.Advance(ctx, issuedAt); err != nil {
		return report, fmt.Errorf("advance checkpoint: %w", err)
	}

	report.Applied = len(deltas)
	report.Checkpoint = issuedAt

	s.logger.Info().
		Str("func", "*clientSyncService.PullUpdates").
		Int("applied", report.Applied).
		Time("checkpoint", issuedAt).
		Msg("remote updates merged")

	return report, nil
}

// RunSyncCycle blocks until the shared cycle completes. The cycle runs on a
// context that ignores the caller's cancellation so that a delta batch is
// never left half applied.
func (s *clientSyncService) RunSyncCycle(ctx context.Context, session models.Session) (models.SyncReport, error) {
	res, err, shared := s.group.Do(syncCycleKey, func() (any, error) {
		return s.runSyncCycle(context.WithoutCancel(ctx), session)
	})
	if shared {
		s.logger.Debug().Str("func", "*clientSyncService.RunSyncCycle").Msg("joined in-flight sync cycle")
	}

	report, _ := res.(models.SyncReport)
	return report, err
}

func (s *clientSyncService) runSyncCycle(ctx context.Context, session models.Session) (models.SyncReport, error) {
	started := s.now()
	ctx, span := observability.StartServiceSpan(ctx, syncComponent, "RunSyncCycle")
	defer span.End()

	report, err := s.syncCycle(ctx, session)

	observability.RecordError(span, err)
	s.metrics.RecordCycle(ctx, s.now().Sub(started), err)

	return report, err
}

func (s *clientSyncService) syncCycle(ctx context.Context, session models.Session) (models.SyncReport, error) {
	var report models.SyncReport

	flush, err := s.FlushPending(ctx, session)
	report.Flush = flush
	if err != nil {
		return report, fmt.Errorf("flush pending: %w", err)
	}

	pull, err := s.PullUpdates(ctx, session)
	report.Pull = pull
	if err != nil {
		report.PullErr = err
		return report, fmt.Errorf("pull updates: %w", err)
	}

	purged, err := s.posters.PurgeTombstones(ctx)
	if err != nil {
		return report, fmt.Errorf("purge tombstones: %w", err)
	}
	report.Tombstones = purged

	s.logger.Info().
		Str("func", "*clientSyncService.RunSyncCycle").
		Int("placed", report.Flush.Placed).
		Int("removed", report.Flush.Removed).
		Int("failed", len(report.Flush.Failures)).
		Int("applied", report.Pull.Applied).
		Int64("tombstones", report.Tombstones).
		Msg("sync cycle finished")

	return report, nil
}

func countFailures(failures []models.RecordFailure) (place, remove int) {
	for _, f := range failures {
		if f.Op == opRemove {
			remove++
		} else {
			place++
		}
	}
	return place, remove
}
