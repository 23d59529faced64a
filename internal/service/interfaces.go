package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/bench"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultService binds the key scheduler, the cipher, the password generator
// and the vault storage into one session-scoped facade consumed by the UI.
//
// A service starts locked. Every storage operation requires a successful
// [VaultService.Unlock] first; calling one on a locked service returns
// [ErrVaultLocked].
type VaultService interface {
	// Unlock validates masterKey against the key policy, derives the round
	// keys, binds the session cipher and opens the configured vault
	// backend (creating it, marker included, on first use). The returned
	// bool reports whether the validation marker decrypted correctly: a
	// false value means the key is wrong for an existing vault, which is
	// not an error. Policy violations surface as
	// [crypto.ErrInvalidKeyLength] and [crypto.ErrInvalidKeyAlphabet].
	Unlock(ctx context.Context, masterKey string) (bool, error)

	// StoreRecord stores a record under a unique label.
	StoreRecord(ctx context.Context, label, password string) error

	// GenerateAndStore generates a random password of the given length,
	// stores it under label, and returns the generated password.
	GenerateAndStore(ctx context.Context, label string, length int) (string, error)

	// RetrieveAll returns every stored record.
	RetrieveAll(ctx context.Context) ([]models.Record, error)

	// RetrieveByLabel returns the record stored under label, or (nil, nil)
	// when there is none.
	RetrieveByLabel(ctx context.Context, label string) (*models.Record, error)

	// RunBenchmark runs the cipher timing sweep for the session cipher.
	RunBenchmark() ([]bench.Result, error)

	// DefaultPasswordLength reports the configured default length for
	// generated passwords, used by callers as the explicit fallback when
	// the user supplies an unusable length.
	DefaultPasswordLength() int
}
