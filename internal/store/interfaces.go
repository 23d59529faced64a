package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Vault хранит зашифрованные записи (метка + пароль) и маркер валидации
// ключа. Шифр передаётся хранилищу как чёрный ящик: хранилище не знает
// ничего об алгоритме, оно лишь кодирует каждую строку через него.
//
// Проверка ключа — единственный механизм целостности: записи не несут
// аутентификационных меток, поэтому расшифровка неверным ключом «успешно»
// возвращает мусор. Вызывающая сторона обязана проверить ValidateKey до
// того, как доверять результатам RetrieveAll/RetrieveByLabel.
type Vault interface {
	// ValidateKey decrypts the stored validation marker with the bound
	// cipher and reports whether it matches the well-known marker string.
	ValidateKey(ctx context.Context) (bool, error)

	// StoreRecord encrypts label and password independently and appends
	// them as one record. Returns [ErrDuplicateLabel] when a record with
	// the same label (case-insensitive) is already present.
	StoreRecord(ctx context.Context, label, password string) error

	// StoreRecords appends several records, applying the same duplicate
	// rule to each; it stops at the first failure.
	StoreRecords(ctx context.Context, records []models.Record) error

	// RetrieveAll decrypts and returns every stored record in insert
	// order. When the key validation fails the result is an empty slice,
	// not an error.
	RetrieveAll(ctx context.Context) ([]models.Record, error)

	// RetrieveByLabel returns the first record whose label matches
	// case-insensitively, or (nil, nil) when no record matches.
	RetrieveByLabel(ctx context.Context, label string) (*models.Record, error)
}
