package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/ankit-0903/sentinel-vault/internal/common"
)

// DeriveKey turns an externally supplied key string into a 32-byte AES-256
// key. Derivation is deterministic so every process configured with the same
// string can decrypt payloads written by any other.
func DeriveKey(secret string) []byte {
	digest := sha256.Sum256([]byte(secret))
	return digest[:]
}

// SealString encrypts plaintext with AES-256-GCM. A fresh random 12-byte
// nonce is generated per call and prepended to the ciphertext; the result is
// returned as unpadded URL-safe base64 so it can be stored as an opaque
// string blob.
func SealString(plaintext []byte, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorCrypto, err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorCrypto, err)
	}

	nonce := common.GenerateRandByteArray(aesgcm.NonceSize())
	sealed := aesgcm.Seal(nonce, nonce, plaintext, nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// OpenString reverses SealString. It fails with common.ErrorCrypto on a
// malformed blob, a wrong key, or a tampered ciphertext.
func OpenString(blob string, key []byte) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorCrypto, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorCrypto, err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorCrypto, err)
	}

	if len(sealed) < aesgcm.NonceSize() {
		return nil, fmt.Errorf("%w: ciphertext too short", common.ErrorCrypto)
	}
	nonce, ciphertext := sealed[:aesgcm.NonceSize()], sealed[aesgcm.NonceSize():]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorCrypto, err)
	}
	return plaintext, nil
}
