// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

func humanizeVaultError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, crypto.ErrInvalidKeyLength):
		return "Ключ должен содержать от 16 до 32 символов"
	case errors.Is(err, crypto.ErrInvalidKeyAlphabet):
		return "Ключ может содержать только латинские буквы и цифры"
	case errors.Is(err, store.ErrDuplicateLabel):
		return "Запись с таким названием уже существует"
	case errors.Is(err, store.ErrStorageUnavailable):
		return "Хранилище недоступно: " + err.Error()
	}

	return err.Error()
}
