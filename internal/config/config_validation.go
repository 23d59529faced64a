// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-pass-vault/internal/generator"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Zero values are
// allowed everywhere; defaults are applied after validation.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Rounds < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.PasswordLength != 0 &&
		(cfg.App.PasswordLength < generator.MinPasswordLength ||
			cfg.App.PasswordLength > generator.MaxPasswordLength) {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.Backend {
	case "", "file", "sqlite":
	default:
		return ErrInvalidStorageConfigs
	}

	return nil
}
