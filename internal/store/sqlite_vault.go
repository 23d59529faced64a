// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
	"github.com/MKhiriev/go-pass-vault/models"
)

// sqliteVault is the SQLite implementation of [Vault]. It stores the same
// base64-framed ciphertext as the file backend, one row per record in the
// vault_records table, plus a single vault_meta row holding the encrypted
// validation marker. Labels are stored encrypted, so the duplicate check
// still requires decrypting every row.
type sqliteVault struct {
	db     *sql.DB
	cipher crypto.Cipher
	logger *logger.Logger
}

// NewSQLiteVault opens (creating if necessary) the SQLite database at dsn,
// runs the embedded migrations, and ensures the validation marker row
// exists. I/O and SQL failures are wrapped in [ErrStorageUnavailable].
func NewSQLiteVault(ctx context.Context, dsn string, cipher crypto.Cipher, log *logger.Logger) (Vault, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewSQLiteVault").Msg("error creating database file")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteVault").Msg("error opening database")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteVault").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewSQLiteVault").Msg("error migrating database")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	v := newSQLiteVaultFromDB(conn, cipher, log)
	if err := v.ensureMarker(ctx); err != nil {
		return nil, err
	}

	log.Debug().Str("func", "NewSQLiteVault").Msg("connected to vault database successfully")
	return v, nil
}

// newSQLiteVaultFromDB wraps an existing connection. Used by tests.
func newSQLiteVaultFromDB(db *sql.DB, cipher crypto.Cipher, log *logger.Logger) *sqliteVault {
	return &sqliteVault{
		db:     db,
		cipher: cipher,
		logger: log,
	}
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// ensureMarker writes the encrypted validation marker on first use, the
// database-backed equivalent of writing line 0 of a fresh vault file.
func (v *sqliteVault) ensureMarker(ctx context.Context) error {
	_, err := v.readMarker(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	query, args, err := buildInsertMarkerQuery(v.encode(validationMarker))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := v.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	v.logger.Debug().
		Str("func", "sqliteVault.ensureMarker").
		Msg("initialized vault database with validation marker")

	return nil
}

func (v *sqliteVault) readMarker(ctx context.Context) (string, error) {
	query, args, err := buildSelectMarkerQuery()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var marker string
	if err := v.db.QueryRowContext(ctx, query, args...).Scan(&marker); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return marker, nil
}

// ValidateKey implements [Vault].
func (v *sqliteVault) ValidateKey(ctx context.Context) (bool, error) {
	marker, err := v.readMarker(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("%w: vault database has no marker row", ErrCorruptRecord)
		}
		return false, err
	}

	decrypted, err := v.decode(marker)
	if err != nil {
		return false, err
	}

	return decrypted == validationMarker, nil
}

// StoreRecord implements [Vault].
func (v *sqliteVault) StoreRecord(ctx context.Context, label, password string) error {
	record, err := v.RetrieveByLabel(ctx, label)
	if err != nil {
		return err
	}
	if record != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}

	query, args, err := buildInsertRecordQuery(newRecordID(), v.encode(label), v.encode(password))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := v.db.ExecContext(ctx, query, args...); err != nil {
		v.logger.Err(err).
			Str("func", "sqliteVault.StoreRecord").
			Msg("failed to insert record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// StoreRecords implements [Vault].
func (v *sqliteVault) StoreRecords(ctx context.Context, records []models.Record) error {
	for _, record := range records {
		if err := v.StoreRecord(ctx, record.Label, record.Password); err != nil {
			return err
		}
	}
	return nil
}

// RetrieveAll implements [Vault].
func (v *sqliteVault) RetrieveAll(ctx context.Context) ([]models.Record, error) {
	valid, err := v.ValidateKey(ctx)
	if err != nil {
		return nil, err
	}
	if !valid {
		return []models.Record{}, nil
	}

	return v.scanRecords(ctx)
}

// RetrieveByLabel implements [Vault].
func (v *sqliteVault) RetrieveByLabel(ctx context.Context, label string) (*models.Record, error) {
	// Labels are ciphertext in the database, so the lookup cannot be
	// pushed into SQL; decrypt and compare row by row instead.
	records, err := v.scanRecords(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if strings.EqualFold(record.Label, label) {
			return &record, nil
		}
	}

	return nil, nil
}

func (v *sqliteVault) scanRecords(ctx context.Context) ([]models.Record, error) {
	query, args, err := buildSelectRecordsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := v.db.QueryContext(ctx, query, args...)
	if err != nil {
		v.logger.Err(err).
			Str("func", "sqliteVault.scanRecords").
			Msg("failed to execute records query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 16)
	for rows.Next() {
		var encLabel, encPassword string
		if err := rows.Scan(&encLabel, &encPassword); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		label, err := v.decode(encLabel)
		if err != nil {
			return nil, err
		}
		password, err := v.decode(encPassword)
		if err != nil {
			return nil, err
		}

		records = append(records, models.Record{Label: label, Password: password})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (v *sqliteVault) encode(plaintext string) string {
	return base64.StdEncoding.EncodeToString(v.cipher.Encrypt([]byte(plaintext)))
}

func (v *sqliteVault) decode(field string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(field)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	return string(v.cipher.Decrypt(raw)), nil
}

func newRecordID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
