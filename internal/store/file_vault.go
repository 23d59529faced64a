// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// validationMarker is the well-known plaintext stored encrypted on line 0
// (or in the meta table) of every vault. Decrypting it with the session
// cipher and comparing against this constant is the only way to detect a
// wrong master key.
const validationMarker = "VALID_KEY"

// recordDelimiter separates the encrypted label from the encrypted password
// within one record line. Base64 output cannot contain a space, so the
// delimiter is unambiguous.
const recordDelimiter = " "

// fileVault is the line-oriented file implementation of [Vault].
//
// File layout: line 0 holds the base64-framed ciphertext of the validation
// marker; every following line holds one record as
// base64(encrypt(label)) + " " + base64(encrypt(password)). The file is
// append-only; records are never compacted or rewritten in place.
type fileVault struct {
	path   string
	cipher crypto.Cipher
	logger *logger.Logger
}

// NewFileVault constructs a [Vault] backed by the text file at path. When
// the file does not exist it is created immediately with the encrypted
// validation marker as its first line. I/O failures are wrapped in
// [ErrStorageUnavailable].
func NewFileVault(path string, cipher crypto.Cipher, log *logger.Logger) (Vault, error) {
	v := &fileVault{
		path:   path,
		cipher: cipher,
		logger: log,
	}

	if err := v.createIfNotExists(); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *fileVault) createIfNotExists() error {
	if _, err := os.Stat(v.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat vault file: %w", ErrStorageUnavailable, err)
	}

	f, err := os.OpenFile(v.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("%w: create vault file: %w", ErrStorageUnavailable, err)
	}
	defer f.Close()

	if _, err := f.WriteString(v.encode(validationMarker) + "\n"); err != nil {
		return fmt.Errorf("%w: write validation marker: %w", ErrStorageUnavailable, err)
	}

	v.logger.Debug().
		Str("func", "fileVault.createIfNotExists").
		Str("path", v.path).
		Msg("created new vault file with validation marker")

	return nil
}

// ValidateKey implements [Vault].
func (v *fileVault) ValidateKey(ctx context.Context) (bool, error) {
	lines, err := v.readLines()
	if err != nil {
		return false, err
	}
	if len(lines) == 0 {
		return false, fmt.Errorf("%w: vault file has no marker line", ErrCorruptRecord)
	}

	marker, err := v.decode(lines[0])
	if err != nil {
		return false, err
	}

	return marker == validationMarker, nil
}

// StoreRecord implements [Vault]. The duplicate check requires a full scan
// of the existing record lines before the append.
func (v *fileVault) StoreRecord(ctx context.Context, label, password string) error {
	duplicate, err := v.hasLabel(label)
	if err != nil {
		return err
	}
	if duplicate {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}

	f, err := os.OpenFile(v.path, os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("%w: open vault file for append: %w", ErrStorageUnavailable, err)
	}
	defer f.Close()

	line := v.encode(label) + recordDelimiter + v.encode(password) + "\n"
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("%w: append record: %w", ErrStorageUnavailable, err)
	}

	v.logger.Debug().
		Str("func", "fileVault.StoreRecord").
		Msg("stored new record")

	return nil
}

// StoreRecords implements [Vault]. Records are appended one by one; the
// first duplicate or I/O failure stops the batch.
func (v *fileVault) StoreRecords(ctx context.Context, records []models.Record) error {
	for _, record := range records {
		if err := v.StoreRecord(ctx, record.Label, record.Password); err != nil {
			return err
		}
	}
	return nil
}

// RetrieveAll implements [Vault].
func (v *fileVault) RetrieveAll(ctx context.Context) ([]models.Record, error) {
	valid, err := v.ValidateKey(ctx)
	if err != nil {
		return nil, err
	}
	if !valid {
		// Wrong key: every line would "decrypt" to garbage, so return
		// nothing rather than nonsense records.
		return []models.Record{}, nil
	}

	lines, err := v.readLines()
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		record, err := v.parseRecordLine(line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// RetrieveByLabel implements [Vault]. Matching is case-insensitive and
// short-circuits on the first hit, like the original lookup.
func (v *fileVault) RetrieveByLabel(ctx context.Context, label string) (*models.Record, error) {
	lines, err := v.readLines()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: vault file has no marker line", ErrCorruptRecord)
	}

	for _, line := range lines[1:] {
		record, err := v.parseRecordLine(line)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(record.Label, label) {
			return &record, nil
		}
	}

	return nil, nil
}

func (v *fileVault) hasLabel(label string) (bool, error) {
	record, err := v.RetrieveByLabel(context.Background(), label)
	if err != nil {
		return false, err
	}
	return record != nil, nil
}

func (v *fileVault) parseRecordLine(line string) (models.Record, error) {
	encLabel, encPassword, found := strings.Cut(line, recordDelimiter)
	if !found {
		return models.Record{}, fmt.Errorf("%w: missing field delimiter", ErrCorruptRecord)
	}

	label, err := v.decode(encLabel)
	if err != nil {
		return models.Record{}, err
	}
	password, err := v.decode(encPassword)
	if err != nil {
		return models.Record{}, err
	}

	return models.Record{Label: label, Password: password}, nil
}

func (v *fileVault) readLines() ([]string, error) {
	f, err := os.Open(v.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open vault file: %w", ErrStorageUnavailable, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read vault file: %w", ErrStorageUnavailable, err)
	}

	return lines, nil
}

// encode encrypts plaintext with the session cipher and frames the raw
// ciphertext as base64, so a line can never contain a newline byte.
func (v *fileVault) encode(plaintext string) string {
	return base64.StdEncoding.EncodeToString(v.cipher.Encrypt([]byte(plaintext)))
}

func (v *fileVault) decode(field string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(field)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	return string(v.cipher.Decrypt(raw)), nil
}
