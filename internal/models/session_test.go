package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionRecord_Valid(t *testing.T) {
	expiry := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	session := SessionRecord{
		Token:     "tok",
		CreatedAt: expiry.Add(-24 * time.Hour).Unix(),
		ExpiresAt: expiry.Unix(),
	}

	assert.True(t, session.Valid(expiry.Add(-time.Minute)))
	// validity is inclusive of the expiry instant
	assert.True(t, session.Valid(expiry))
	assert.False(t, session.Valid(expiry.Add(time.Minute)))
}
