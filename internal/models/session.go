package models

import "time"

// SessionRecord is the single live session for a username. Timestamps are
// unix seconds. Validity is computed on every read, never cached; an expired
// record is purged lazily by whoever observes it.
type SessionRecord struct {
	Token     string `json:"token"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
}

// Valid reports whether the session is still live at the given instant.
func (s SessionRecord) Valid(now time.Time) bool {
	return now.Unix() <= s.ExpiresAt
}
