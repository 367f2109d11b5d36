// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.QueryTimeout <= 0 {
		return fmt.Errorf("%w: query timeout must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and a positive token duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidAppConfigs, cfg.App.PageSize)
	}

	switch cfg.App.Environment {
	case EnvDevelopment, EnvTest, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: server address is required", ErrInvalidServerConfigs)
	}

	return nil
}
