// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bench provides a rough timing sweep for the session cipher: it
// measures how encrypt/decrypt time grows as the number of processed
// records increases. The numbers are indicative only, not a statistically
// sound benchmark.
package bench

import (
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// sampleText has the shape of a typical persisted record.
const sampleText = "email SamplePassword123!"

// Sweep bounds: counts 10, 110, ..., 910.
const (
	startCount = 10
	maxCount   = 1000
	stepCount  = 100
)

// Result is one row of the timing sweep.
type Result struct {
	// Count is the number of encrypt/decrypt pairs measured.
	Count int
	// Elapsed is the wall-clock time the Count pairs took.
	Elapsed time.Duration
}

// Run performs the sweep against cipher and returns one [Result] per count.
func Run(cipher crypto.Cipher) []Result {
	sample := []byte(sampleText)

	results := make([]Result, 0, (maxCount-startCount)/stepCount+1)
	for count := startCount; count <= maxCount; count += stepCount {
		start := time.Now()

		for i := 0; i < count; i++ {
			ciphertext := cipher.Encrypt(sample)
			_ = cipher.Decrypt(ciphertext)
		}

		results = append(results, Result{Count: count, Elapsed: time.Since(start)})
	}

	return results
}
