package config

import (
	"fmt"
	"time"
)

// Client defaults applied when no source sets the value.
const (
	DefaultClientRequestTimeout = 5 * time.Second
	DefaultClientSyncInterval   = 5 * time.Minute
	DefaultClientDSN            = "poster-keeper.db"

	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// GRPCAddress is the gRPC endpoint address used by the client.
	GRPCAddress string
	// Transport is either [TransportHTTP] or [TransportGRPC].
	Transport string
	// RequestTimeout bounds every single remote call.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the local poster cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync job runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Telemetry contains exporter settings.
	Telemetry Telemetry
	// Args are the positional arguments left after flag parsing
	// (the client command and its operands).
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults and validates the resulting
// [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg, rest)
}

func newClientConfig(cfg *StructuredConfig, rest []string) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			Transport:      cfg.Adapter.Transport,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers:   ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Telemetry: cfg.Telemetry,
		Args:      rest,
	}

	if clientCfg.Adapter.Transport == "" {
		clientCfg.Adapter.Transport = TransportHTTP
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = DefaultClientSyncInterval
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = DefaultClientDSN
	}

	return clientCfg, clientCfg.validate()
}
