// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator produces random passwords by uniform sampling from a
// fixed character pool using the OS CSPRNG. Length bounds follow the NIST
// SP 800-63B recommendations for user-chosen secrets.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	lettersLowerCase = "abcdefghijklmnopqrstuvwxyz"
	lettersUpperCase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numbers          = "0123456789"
	symbols          = "!@#$%^&*()-=_+"
)

const (
	MinPasswordLength     = 8
	DefaultPasswordLength = 16
	MaxPasswordLength     = 64
)

// ErrInvalidLength is returned when a requested password length falls
// outside [MinPasswordLength, MaxPasswordLength].
var ErrInvalidLength = errors.New("password length out of bounds")

// PasswordGenerator produces random passwords of bounded length.
type PasswordGenerator interface {
	// Generate returns a password of the given length sampled uniformly
	// from the generator's character pool. Returns [ErrInvalidLength] when
	// length is outside the accepted bounds.
	Generate(length int) (string, error)
}

type passwordGenerator struct {
	characterPool string
}

// NewPasswordGenerator constructs a [PasswordGenerator] whose pool contains
// lowercase and uppercase letters, digits, and symbols.
func NewPasswordGenerator() PasswordGenerator {
	return &passwordGenerator{
		characterPool: lettersLowerCase + lettersUpperCase + numbers + symbols,
	}
}

// Generate implements [PasswordGenerator]. Every character is drawn with
// [crypto/rand.Int], so sampling is uniform over the pool with no modulo
// bias.
func (g *passwordGenerator) Generate(length int) (string, error) {
	if length < MinPasswordLength || length > MaxPasswordLength {
		return "", fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidLength, length, MinPasswordLength, MaxPasswordLength)
	}

	poolSize := big.NewInt(int64(len(g.characterPool)))

	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, poolSize)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		password[i] = g.characterPool[n.Int64()]
	}

	return string(password), nil
}
