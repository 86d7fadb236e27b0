package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SyncMetrics are the instruments of the client sync engine.
type SyncMetrics struct {
	cycles        metric.Int64Counter
	cycleDuration metric.Float64Histogram
	flushed       metric.Int64Counter
	flushFailures metric.Int64Counter
	applied       metric.Int64Counter
}

// NewSyncMetrics creates the instruments on the global meter provider.
func NewSyncMetrics() (*SyncMetrics, error) {
	return NewSyncMetricsWithMeter(otel.Meter(instrumentationName))
}

// NewSyncMetricsWithMeter creates the instruments on meter.
func NewSyncMetricsWithMeter(meter metric.Meter) (*SyncMetrics, error) {
	cycles, err := meter.Int64Counter(
		"sync.cycle.count",
		metric.WithDescription("Completed sync cycles"),
		metric.WithUnit("{cycles}"),
	)
	if err != nil {
		return nil, err
	}

	cycleDuration, err := meter.Float64Histogram(
		"sync.cycle.duration",
		metric.WithDescription("Sync cycle duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	flushed, err := meter.Int64Counter(
		"sync.flush.acknowledged",
		metric.WithDescription("Pending records acknowledged by the remote"),
		metric.WithUnit("{records}"),
	)
	if err != nil {
		return nil, err
	}

	flushFailures, err := meter.Int64Counter(
		"sync.flush.failures",
		metric.WithDescription("Pending records left for the next cycle"),
		metric.WithUnit("{records}"),
	)
	if err != nil {
		return nil, err
	}

	applied, err := meter.Int64Counter(
		"sync.pull.applied",
		metric.WithDescription("Remote deltas merged into the local store"),
		metric.WithUnit("{deltas}"),
	)
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{
		cycles:        cycles,
		cycleDuration: cycleDuration,
		flushed:       flushed,
		flushFailures: flushFailures,
		applied:       applied,
	}, nil
}

// RecordFlush counts acknowledged and failed records of one flush, by
// operation.
func (m *SyncMetrics) RecordFlush(ctx context.Context, op string, acknowledged, failed int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("op", op))
	if acknowledged > 0 {
		m.flushed.Add(ctx, int64(acknowledged), attrs)
	}
	if failed > 0 {
		m.flushFailures.Add(ctx, int64(failed), attrs)
	}
}

// RecordPull counts merged deltas.
func (m *SyncMetrics) RecordPull(ctx context.Context, applied int) {
	if m == nil || applied == 0 {
		return
	}
	m.applied.Add(ctx, int64(applied))
}

// RecordCycle counts one cycle and its duration, labelled by outcome.
func (m *SyncMetrics) RecordCycle(ctx context.Context, duration time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.cycles.Add(ctx, 1, attrs)
	m.cycleDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
}
