// Package cryptox implements the password-hashing schemes and the symmetric
// payload encryption used by the vaults.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/ankit-0903/sentinel-vault/internal/common"
	"golang.org/x/crypto/argon2"
)

// PasswordHasher turns a plaintext password into a stored form and verifies
// candidates against it. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, stored string) bool
}

// LegacyHasher reproduces the historical scheme byte-for-byte so records
// written by earlier releases keep verifying:
//
//	salt        = first 16 hex characters of SHA-256(password)
//	stored form = hex(SHA-256(password + salt))
//
// The salt is derived from the password itself, so identical passwords
// always hash identically. This is a known weakness; new deployments should
// prefer Argon2Hasher (see config password_scheme).
type LegacyHasher struct{}

func (LegacyHasher) Hash(password string) (string, error) {
	digest := sha256.Sum256([]byte(password))
	salt := hex.EncodeToString(digest[:])[:16]
	stored := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(stored[:]), nil
}

func (h LegacyHasher) Verify(password, stored string) bool {
	candidate, err := h.Hash(password)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1
}

const argon2Prefix = "argon2id"

// Argon2Hasher is the randomized, memory-hard replacement scheme. Stored
// form: "argon2id$<b64 salt>$<b64 key>". Not compatible with records
// written by LegacyHasher.
type Argon2Hasher struct{}

func (Argon2Hasher) Hash(password string) (string, error) {
	salt := common.GenerateRandByteArray(16)
	key := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	return strings.Join([]string{
		argon2Prefix,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	}, "$"), nil
}

func (Argon2Hasher) Verify(password, stored string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[0] != argon2Prefix {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}
	candidate := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	return subtle.ConstantTimeCompare(candidate, key) == 1
}
