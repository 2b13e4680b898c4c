// Package common defines shared constants and sentinel errors used across
// the vault layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorStore    = errors.New("secure store error")

	// Validation / registration errors.
	ErrorValidation = errors.New("validation error")
	ErrorUserExists = errors.New("username already exists")

	// Authentication errors.
	ErrorUserNotFound = errors.New("user not found")
	ErrorBadPassword  = errors.New("incorrect password")

	// Crypto errors (encryption, decryption, hashing).
	ErrorCrypto = errors.New("crypto error")

	// Generic internal flow control.
	ErrorInternal = errors.New("internal error")
)
