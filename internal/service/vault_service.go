// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/bench"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultOpener opens the configured vault backend bound to the session
// cipher. Extracted as a function type so tests can substitute a backend
// without touching configuration.
type VaultOpener func(ctx context.Context, cipher crypto.Cipher) (store.Vault, error)

// vaultService is the private implementation of [VaultService]. The cipher
// and vault fields are nil until Unlock succeeds; both are immutable for
// the rest of the session once set.
type vaultService struct {
	cfg       config.App
	scheduler crypto.KeyScheduler
	generator generator.PasswordGenerator
	openVault VaultOpener

	cipher crypto.Cipher
	vault  store.Vault

	logger *logger.Logger
}

// NewVaultService constructs a [VaultService] for the given configuration.
func NewVaultService(cfg *config.StructuredConfig, log *logger.Logger) VaultService {
	return &vaultService{
		cfg:       cfg.App,
		scheduler: crypto.NewKeyScheduler(),
		generator: generator.NewPasswordGenerator(),
		openVault: func(ctx context.Context, cipher crypto.Cipher) (store.Vault, error) {
			return store.NewVault(ctx, cfg.Storage, cipher, log)
		},
		logger: log,
	}
}

// newVaultServiceWithOpener wires an explicit [VaultOpener]. Used by tests.
func newVaultServiceWithOpener(cfg config.App, opener VaultOpener, log *logger.Logger) *vaultService {
	return &vaultService{
		cfg:       cfg,
		scheduler: crypto.NewKeyScheduler(),
		generator: generator.NewPasswordGenerator(),
		openVault: opener,
		logger:    log,
	}
}

// Unlock implements [VaultService]. Derive once, construct one cipher,
// reuse it for every storage operation for the session.
func (v *vaultService) Unlock(ctx context.Context, masterKey string) (bool, error) {
	roundKeys, err := v.scheduler.DeriveRoundKeys(masterKey, v.cfg.Rounds)
	if err != nil {
		return false, err
	}

	cipher, err := crypto.NewCipher(roundKeys)
	if err != nil {
		return false, err
	}

	vault, err := v.openVault(ctx, cipher)
	if err != nil {
		return false, err
	}

	valid, err := vault.ValidateKey(ctx)
	if err != nil {
		return false, err
	}
	if !valid {
		v.logger.Debug().
			Str("func", "vaultService.Unlock").
			Msg("validation marker mismatch: wrong master key for this vault")
		return false, nil
	}

	v.cipher = cipher
	v.vault = vault
	return true, nil
}

// StoreRecord implements [VaultService].
func (v *vaultService) StoreRecord(ctx context.Context, label, password string) error {
	if v.vault == nil {
		return ErrVaultLocked
	}
	return v.vault.StoreRecord(ctx, label, password)
}

// GenerateAndStore implements [VaultService].
func (v *vaultService) GenerateAndStore(ctx context.Context, label string, length int) (string, error) {
	if v.vault == nil {
		return "", ErrVaultLocked
	}

	password, err := v.generator.Generate(length)
	if err != nil {
		return "", err
	}

	if err := v.vault.StoreRecord(ctx, label, password); err != nil {
		return "", err
	}

	return password, nil
}

// RetrieveAll implements [VaultService].
func (v *vaultService) RetrieveAll(ctx context.Context) ([]models.Record, error) {
	if v.vault == nil {
		return nil, ErrVaultLocked
	}
	return v.vault.RetrieveAll(ctx)
}

// RetrieveByLabel implements [VaultService].
func (v *vaultService) RetrieveByLabel(ctx context.Context, label string) (*models.Record, error) {
	if v.vault == nil {
		return nil, ErrVaultLocked
	}
	return v.vault.RetrieveByLabel(ctx, label)
}

// RunBenchmark implements [VaultService].
func (v *vaultService) RunBenchmark() ([]bench.Result, error) {
	if v.cipher == nil {
		return nil, ErrVaultLocked
	}
	return bench.Run(v.cipher), nil
}

// DefaultPasswordLength implements [VaultService].
func (v *vaultService) DefaultPasswordLength() int {
	return v.cfg.PasswordLength
}
