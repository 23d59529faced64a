// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-pass-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds cipher and password-generation settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the vault persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings for the cipher and the password
// generator.
type App struct {
	// Rounds is the number of substitution–permutation rounds the session
	// cipher runs. The cipher requires exactly 8; the value is configurable
	// only so that a mismatch fails loudly at startup instead of silently
	// producing an incompatible vault.
	Rounds int `env:"ROUNDS"`

	// PasswordLength is the default length for generated passwords, used
	// when the user does not supply one.
	PasswordLength int `env:"PASSWORD_LENGTH"`
}

// Storage selects and configures the vault persistence backend.
type Storage struct {
	// Backend is the backend name: "file" (default) or "sqlite".
	Backend string `env:"BACKEND"`

	// VaultPath is the path of the line-oriented vault file used by the
	// file backend.
	VaultPath string `env:"VAULT_PATH"`

	// DSN is the SQLite database path used by the sqlite backend.
	DSN string `env:"DATABASE_URI"`
}

// GetConfig builds the final application configuration by merging, in order
// of precedence: environment variables, command-line flags, and the optional
// JSON file referenced by either of the first two.
func GetConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Rounds == 0 {
		cfg.App.Rounds = 8
	}
	if cfg.App.PasswordLength == 0 {
		cfg.App.PasswordLength = 16
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "file"
	}
	if cfg.Storage.VaultPath == "" {
		cfg.Storage.VaultPath = "vault.txt"
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "vault.db"
	}
}
