// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables via the `env` and
// `envPrefix` tags of [StructuredConfig]. The adapter transport is
// normalized so ADAPTER_TRANSPORT=GRPC selects the gRPC adapter.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Adapter.Transport = strings.ToLower(strings.TrimSpace(cfg.Adapter.Transport))
	return nil
}
