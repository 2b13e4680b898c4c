package common

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateRandByteArray returns size bytes from the system CSPRNG.
// It panics if the generator fails, which on supported platforms
// indicates a broken runtime rather than a recoverable condition.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// MakeURLSafeToken generates a random bearer token of size random bytes,
// encoded with unpadded URL-safe base64. With size=32 the result carries
// 256 bits of entropy.
func MakeURLSafeToken(size int) string {
	return base64.RawURLEncoding.EncodeToString(GenerateRandByteArray(size))
}
