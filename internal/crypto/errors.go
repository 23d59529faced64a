package crypto

import "errors"

// Sentinel errors returned by the key scheduler and cipher constructors.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidKeyLength is returned when the master key is shorter than 16
	// or longer than 32 characters. Recoverable: the caller should re-prompt
	// for a new key.
	ErrInvalidKeyLength = errors.New("master key length must be between 16 and 32 characters")

	// ErrInvalidKeyAlphabet is returned when the master key contains a
	// character outside the accepted alphabet (ASCII letters and digits).
	ErrInvalidKeyAlphabet = errors.New("master key must contain only letters and digits")

	// ErrInvalidRoundCount is returned when a round count below one is
	// requested from the key scheduler.
	ErrInvalidRoundCount = errors.New("round count must be at least 1")

	// ErrWrongRoundKeyCount is returned by [NewCipher] when the number of
	// supplied round keys does not match [Rounds]. This indicates a
	// mismatched scheduler/cipher configuration and is not recoverable at
	// runtime.
	ErrWrongRoundKeyCount = errors.New("exactly 8 round keys required")
)
