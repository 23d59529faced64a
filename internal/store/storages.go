// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Supported storage backend names, selected via configuration.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// NewVault constructs the configured [Vault] backend bound to cipher.
// An empty backend name selects the file backend. Returns
// [ErrUnknownBackend] for any other name.
func NewVault(ctx context.Context, cfg config.Storage, cipher crypto.Cipher, log *logger.Logger) (Vault, error) {
	switch cfg.Backend {
	case BackendFile, "":
		return NewFileVault(cfg.VaultPath, cipher, log)
	case BackendSQLite:
		return NewSQLiteVault(ctx, cfg.DSN, cipher, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
