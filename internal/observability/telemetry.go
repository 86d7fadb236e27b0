// Package observability wires OpenTelemetry tracing and metrics.
//
// When telemetry is disabled the global no-op providers stay in place, so
// spans and instruments created through this package cost next to nothing.
package observability

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
)

const instrumentationName = "github.com/MKhiriev/go-poster-keeper"

const exportTimeout = 10 * time.Second

// Telemetry holds the SDK providers installed as globals.
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
}

// Initialize installs OTLP exporters for traces and metrics when
// cfg.Enabled is set. A failing exporter is logged and skipped; the other
// one keeps working.
func Initialize(ctx context.Context, cfg config.Telemetry, serviceName, serviceVersion string, log *logger.Logger) (*Telemetry, error) {
	if !cfg.Enabled {
		log.Debug().Str("func", "observability.Initialize").Msg("telemetry disabled")
		return &Telemetry{}, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
		resource.WithHost(),
	)
	if err != nil {
		return nil, err
	}

	t := &Telemetry{}

	tp, err := initTracer(ctx, cfg.Endpoint, res)
	if err != nil {
		log.Warn().Err(err).Str("func", "observability.Initialize").Msg("tracing exporter disabled")
	} else {
		otel.SetTracerProvider(tp)
		t.TracerProvider = tp
	}

	mp, err := initMeter(ctx, cfg.Endpoint, res)
	if err != nil {
		log.Warn().Err(err).Str("func", "observability.Initialize").Msg("metrics exporter disabled")
	} else {
		otel.SetMeterProvider(mp)
		t.MeterProvider = mp
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info().
		Str("func", "observability.Initialize").
		Str("endpoint", cfg.Endpoint).
		Msg("telemetry initialized")

	return t, nil
}

func initTracer(ctx context.Context, endpoint string, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithTimeout(exportTimeout),
	)
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

func initMeter(ctx context.Context, endpoint string, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithTimeout(exportTimeout),
	)
	if err != nil {
		return nil, err
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(30*time.Second))),
		sdkmetric.WithResource(res),
	), nil
}

// Shutdown flushes and stops the installed providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error

	if t.TracerProvider != nil {
		errs = append(errs, t.TracerProvider.Shutdown(ctx))
	}
	if t.MeterProvider != nil {
		errs = append(errs, t.MeterProvider.Shutdown(ctx))
	}

	return errors.Join(errs...)
}
