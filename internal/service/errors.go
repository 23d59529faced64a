package service

import "errors"

var (
	// ErrVaultLocked is returned when a storage operation is attempted
	// before a successful Unlock.
	ErrVaultLocked = errors.New("vault is locked: unlock with the master key first")
)
