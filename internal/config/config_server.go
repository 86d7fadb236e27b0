package config

import (
	"fmt"
	"time"
)

// Server defaults applied when no source sets the value.
const (
	DefaultTokenDuration        = 48 * time.Hour
	DefaultTokenIssuer          = "poster-keeper"
	DefaultServerRequestTimeout = 30 * time.Second
)

// GetServerConfig builds and validates the configuration of the poster
// server. Unlike the client view it keeps the full [StructuredConfig].
func GetServerConfig(args []string) (*StructuredConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, prepareServerConfig(cfg)
}

func prepareServerConfig(cfg *StructuredConfig) error {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}

	return cfg.validateServer()
}
