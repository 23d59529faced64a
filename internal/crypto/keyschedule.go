// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/crypto/hkdf"
)

const (
	// SubkeyLength is the length, in characters, of every derived round key.
	SubkeyLength = 16

	minKeyLength = 16
	maxKeyLength = 32
)

// base62Alphabet maps raw derived bytes to printable subkey characters:
// digits first, then uppercase letters, then lowercase letters.
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// keyScheduler is the private implementation of [KeyScheduler].
type keyScheduler struct{}

// NewKeyScheduler constructs a [KeyScheduler] that derives round keys with
// HKDF-SHA256 in an extract-then-expand construction.
func NewKeyScheduler() KeyScheduler {
	return &keyScheduler{}
}

// DeriveRoundKeys implements [KeyScheduler].
//
// The extract step uses a fixed all-zero salt: re-deriving from the same
// master key must reproduce the same subkeys so that previously stored
// records remain decryptable. This trades away HKDF's salt-based domain
// separation for reproducibility.
//
// The expand step runs once per round index with info = "subkey_" + index,
// producing 16 bytes of output keying material per round. Each byte is then
// mapped to a printable character via base62Alphabet[b mod 62].
func (k *keyScheduler) DeriveRoundKeys(masterKey string, rounds int) ([]string, error) {
	if err := ValidateMasterKey(masterKey); err != nil {
		return nil, err
	}
	if rounds < 1 {
		return nil, ErrInvalidRoundCount
	}

	salt := make([]byte, sha256.Size)
	prk := hkdf.Extract(sha256.New, []byte(masterKey), salt)

	subkeys := make([]string, 0, rounds)
	for i := 0; i < rounds; i++ {
		info := []byte("subkey_" + strconv.Itoa(i))

		okm := make([]byte, SubkeyLength)
		if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), okm); err != nil {
			return nil, fmt.Errorf("expand subkey %d: %w", i, err)
		}

		subkeys = append(subkeys, mapToAlphabet(okm))
	}

	return subkeys, nil
}

// mapToAlphabet converts raw key material to a printable string, one output
// character per input byte.
func mapToAlphabet(raw []byte) string {
	out := make([]byte, len(raw))
	for i, b := range raw {
		out[i] = base62Alphabet[int(b)%len(base62Alphabet)]
	}
	return string(out)
}

// ValidateMasterKey checks the master key against the key policy: length
// within [16,32] and characters restricted to ASCII letters and digits.
// Returns [ErrInvalidKeyLength] or [ErrInvalidKeyAlphabet] on violation.
func ValidateMasterKey(masterKey string) error {
	if len(masterKey) < minKeyLength || len(masterKey) > maxKeyLength {
		return ErrInvalidKeyLength
	}

	for _, c := range masterKey {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		default:
			return ErrInvalidKeyAlphabet
		}
	}

	return nil
}
