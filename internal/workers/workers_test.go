// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/mock"
	"github.com/MKhiriev/go-poster-keeper/models"
)

// blockingWorker считает запуски и ждёт отмены контекста.
type blockingWorker struct {
	runs atomic.Int64
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewWorkers(w1, w2, w3).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run не вернулся после отмены контекста")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not block or panic on an empty workers list
	assert.NotPanics(t, func() { NewWorkers().Run(context.Background()) })
}

func TestSyncWorker_StartsAndStopsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientSyncJob(ctrl)
	session := models.Session{AuthKey: "k", UserID: 7, PartyID: 2}

	ctx, cancel := context.WithCancel(context.Background())

	gomock.InOrder(
		job.EXPECT().Start(ctx, session, time.Minute),
		job.EXPECT().Stop(),
	)

	done := make(chan struct{})
	go func() {
		NewSyncWorker(job, session, time.Minute, logger.Nop()).Run(ctx)
		close(done)
	}()

	cancel()
	<-done
}
