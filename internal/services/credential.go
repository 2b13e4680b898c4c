// Package services contains the vault business logic. This file implements
// CredentialVault: user registration, password verification, and the
// per-user session lifecycle.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ankit-0903/sentinel-vault/internal/common"
	"github.com/ankit-0903/sentinel-vault/internal/cryptox"
	"github.com/ankit-0903/sentinel-vault/internal/logging"
	"github.com/ankit-0903/sentinel-vault/internal/models"
	"github.com/ankit-0903/sentinel-vault/internal/securestore"
)

// SessionTTL is the fixed validity window of a session.
const SessionTTL = 24 * time.Hour

const (
	userKeyPrefix    = "user_"
	sessionKeyPrefix = "session_"
)

// minPasswordLength is the registration-time password floor.
const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NormalizeUsername produces the canonical storage form of a username:
// trimmed, lowercased, inner spaces replaced with underscores. Applied
// before every lookup so "ALICE " and "alice" address the same record.
func NormalizeUsername(username string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(username)), " ", "_")
}

// CredentialVault owns user records and session records, both persisted
// through the secure store in two distinct namespaces. It holds no state of
// its own besides configuration, so it is safe for concurrent use; the
// store is the single synchronization point. Concurrent Authenticate calls
// for the same username race on the single-session invariant and the last
// write wins, which is the intended single-active-session behavior.
type CredentialVault struct {
	store            securestore.Store
	hasher           cryptox.PasswordHasher
	log              logging.Logger
	userNamespace    string
	sessionNamespace string
	now              func() time.Time
}

// NewCredentialVault constructs a CredentialVault over the given store and
// hashing scheme.
func NewCredentialVault(store securestore.Store, hasher cryptox.PasswordHasher, log logging.Logger, userNamespace, sessionNamespace string) *CredentialVault {
	return &CredentialVault{
		store:            store,
		hasher:           hasher,
		log:              log,
		userNamespace:    userNamespace,
		sessionNamespace: sessionNamespace,
		now:              time.Now,
	}
}

// Register validates the input, checks for an existing record, and persists
// a new user. Returns common.ErrorValidation (with a field-level reason),
// common.ErrorUserExists, or a store error.
func (v *CredentialVault) Register(ctx context.Context, username, fullname, phone, email, password string) error {
	username = NormalizeUsername(username)

	if username == "" || strings.TrimSpace(fullname) == "" || strings.TrimSpace(phone) == "" ||
		strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("%w: all fields are required", common.ErrorValidation)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", common.ErrorValidation)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLength)
	}

	existing, err := v.getUser(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return common.ErrorUserExists
	}

	hash, err := v.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorCrypto, err)
	}

	record := models.UserRecord{
		Username:     username,
		FullName:     fullname,
		Phone:        phone,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    v.now().Unix(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return v.store.Set(ctx, v.userNamespace, userKeyPrefix+username, string(data))
}

// Authenticate verifies the password, mints a fresh session overwriting any
// prior one, and returns the user view with authentication material
// stripped. Returns common.ErrorUserNotFound or common.ErrorBadPassword on
// failure; no session is written in either case.
func (v *CredentialVault) Authenticate(ctx context.Context, username, password string) (*models.UserView, error) {
	username = NormalizeUsername(username)

	user, err := v.getUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrorUserNotFound
	}
	if !v.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorBadPassword
	}

	now := v.now()
	session := models.SessionRecord{
		Token:     common.MakeURLSafeToken(32),
		CreatedAt: now.Unix(),
		ExpiresAt: now.Add(SessionTTL).Unix(),
	}
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	if err := v.store.Set(ctx, v.sessionNamespace, sessionKeyPrefix+username, string(data)); err != nil {
		return nil, err
	}

	view := user.View()
	return &view, nil
}

// IsLoggedIn reports whether the user has a live session. An expired or
// corrupt session record is purged as a side effect of the read.
func (v *CredentialVault) IsLoggedIn(ctx context.Context, username string) bool {
	_, ok := v.validSession(ctx, NormalizeUsername(username))
	return ok
}

// CurrentToken returns the bearer token while the session is valid.
// Expired sessions are purged on read, same as IsLoggedIn.
func (v *CredentialVault) CurrentToken(ctx context.Context, username string) (string, bool) {
	session, ok := v.validSession(ctx, NormalizeUsername(username))
	if !ok {
		return "", false
	}
	return session.Token, true
}

// Logout removes the user's session. Deletion is best-effort: the client's
// intent is honored regardless of the storage outcome, so store errors are
// logged and swallowed.
func (v *CredentialVault) Logout(ctx context.Context, username string) {
	username = NormalizeUsername(username)
	if err := v.store.Delete(ctx, v.sessionNamespace, sessionKeyPrefix+username); err != nil {
		v.log.Warn(ctx, "session delete failed", "username", username, "error", err)
	}
}

// DeleteUser removes both the user record and any session, with the same
// best-effort semantics as Logout.
func (v *CredentialVault) DeleteUser(ctx context.Context, username string) {
	username = NormalizeUsername(username)
	if err := v.store.Delete(ctx, v.userNamespace, userKeyPrefix+username); err != nil {
		v.log.Warn(ctx, "user delete failed", "username", username, "error", err)
	}
	v.Logout(ctx, username)
}

// getUser loads the stored record for an already-normalized username.
// Returns (nil, nil) when absent. A record that no longer parses is treated
// as absent, matching how unreadable keyring entries have always behaved.
func (v *CredentialVault) getUser(ctx context.Context, username string) (*models.UserRecord, error) {
	data, found, err := v.store.Get(ctx, v.userNamespace, userKeyPrefix+username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var record models.UserRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		v.log.Warn(ctx, "corrupt user record", "username", username, "error", err)
		return nil, nil
	}
	return &record, nil
}

// validSession loads the session for an already-normalized username and
// re-evaluates validity against the clock. Expired and corrupt records are
// deleted lazily here; there is no background sweep.
func (v *CredentialVault) validSession(ctx context.Context, username string) (*models.SessionRecord, bool) {
	data, found, err := v.store.Get(ctx, v.sessionNamespace, sessionKeyPrefix+username)
	if err != nil || !found {
		return nil, false
	}

	var session models.SessionRecord
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		v.log.Warn(ctx, "corrupt session record", "username", username, "error", err)
		v.Logout(ctx, username)
		return nil, false
	}
	if !session.Valid(v.now()) {
		v.Logout(ctx, username)
		return nil, false
	}
	return &session, true
}
