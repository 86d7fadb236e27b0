package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
)

// NewPosterService builds the transport selected by cfg.Transport. An empty
// transport means HTTP.
func NewPosterService(cfg config.ClientAdapter, logger *logger.Logger) (PosterService, error) {
	switch cfg.Transport {
	case config.TransportGRPC:
		logger.Debug().Str("address", cfg.GRPCAddress).Msg("using gRPC poster service")
		return NewGRPCPosterService(cfg, logger)
	case config.TransportHTTP, "":
		logger.Debug().Str("address", cfg.HTTPAddress).Msg("using HTTP poster service")
		return NewHTTPPosterService(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown adapter transport %q", cfg.Transport)
	}
}
