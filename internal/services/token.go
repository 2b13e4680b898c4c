package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ankit-0903/sentinel-vault/internal/common"
	"github.com/ankit-0903/sentinel-vault/internal/cryptox"
	"github.com/ankit-0903/sentinel-vault/internal/logging"
	"github.com/ankit-0903/sentinel-vault/internal/models"
	"github.com/ankit-0903/sentinel-vault/internal/securestore"
	"github.com/google/uuid"
)

const tokenKeyPrefix = "token_"

// TokenVault persists third-party OAuth token payloads as append-only
// records. Payloads are encrypted only on request and only when the
// process-wide key is configured; the store never decrypts implicitly.
type TokenVault struct {
	store     securestore.Store
	key       []byte // nil when no encryption key is configured
	log       logging.Logger
	namespace string
	now       func() time.Time
}

// NewTokenVault constructs a TokenVault. encryptionKey is the externally
// supplied key string; empty means encryption is unavailable and encrypt
// requests are downgraded.
func NewTokenVault(store securestore.Store, log logging.Logger, namespace, encryptionKey string) *TokenVault {
	v := &TokenVault{
		store:     store,
		log:       log,
		namespace: namespace,
		now:       time.Now,
	}
	if encryptionKey != "" {
		v.key = cryptox.DeriveKey(encryptionKey)
	}
	return v
}

// SaveToken serializes and persists a token payload for the named external
// service, optionally sealed with the process-wide key. Scope, refresh-token
// presence, and an expiry hint are extracted as plaintext metadata so they
// remain queryable without decryption.
//
// If encryption is requested but no key is configured, the record is stored
// with Encrypted=false and the discrepancy is logged; the vault never claims
// encryption that did not happen.
//
// Every failure is returned as a structured error; a save failure must not
// abort the flow that produced the token, so the caller decides whether to
// retry.
func (v *TokenVault) SaveToken(ctx context.Context, serviceName string, payload map[string]any, userID string, encrypt bool) (*models.TokenRecord, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: serializing payload: %v", common.ErrorInternal, err)
	}

	stored := string(raw)
	encrypted := false
	if encrypt {
		if v.key == nil {
			v.log.Warn(ctx, "encryption requested but no key configured, storing plaintext",
				"service", serviceName)
		} else {
			sealed, err := cryptox.SealString(raw, v.key)
			if err != nil {
				return nil, err
			}
			stored = sealed
			encrypted = true
		}
	}

	record := models.TokenRecord{
		ID:                  uuid.NewString(),
		Service:             serviceName,
		Payload:             stored,
		Encrypted:           encrypted,
		Scopes:              extractScopes(payload),
		RefreshTokenPresent: hasRefreshToken(payload),
		ExpiryHint:          extractExpiryHint(payload),
		UserID:              userID,
		CreatedAt:           v.now().Unix(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: serializing record: %v", common.ErrorInternal, err)
	}
	if err := v.store.Set(ctx, v.namespace, tokenKeyPrefix+record.ID, string(data)); err != nil {
		return nil, err
	}

	v.log.Info(ctx, "token saved", "service", serviceName, "id", record.ID,
		"encrypted", encrypted, "user_id", userID)
	return &record, nil
}

// GetToken fetches a stored record by ID without decrypting its payload.
func (v *TokenVault) GetToken(ctx context.Context, id string) (*models.TokenRecord, error) {
	data, found, err := v.store.Get(ctx, v.namespace, tokenKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, common.ErrorNotFound
	}
	var record models.TokenRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("%w: corrupt token record %s: %v", common.ErrorInternal, id, err)
	}
	return &record, nil
}

// DecryptPayload recovers the payload map from a record. Decryption happens
// only here, on explicit request. Fails with common.ErrorCrypto when the
// record is sealed and no key is configured, or when the seal does not open.
func (v *TokenVault) DecryptPayload(record *models.TokenRecord) (map[string]any, error) {
	raw := []byte(record.Payload)
	if record.Encrypted {
		if v.key == nil {
			return nil, fmt.Errorf("%w: no encryption key configured", common.ErrorCrypto)
		}
		plaintext, err := cryptox.OpenString(record.Payload, v.key)
		if err != nil {
			return nil, err
		}
		raw = plaintext
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return payload, nil
}

// extractScopes reads "scope" or "scopes" from the payload, accepting either
// a single string or a list, and flattens it to a space-separated string.
func extractScopes(payload map[string]any) string {
	value, ok := payload["scope"]
	if !ok {
		value, ok = payload["scopes"]
	}
	if !ok {
		return ""
	}
	switch s := value.(type) {
	case string:
		return s
	case []string:
		return strings.Join(s, " ")
	case []any:
		parts := make([]string, 0, len(s))
		for _, item := range s {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(value)
	}
}

func hasRefreshToken(payload map[string]any) bool {
	value, ok := payload["refresh_token"]
	if !ok || value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return s != ""
	}
	return true
}

func extractExpiryHint(payload map[string]any) string {
	value, ok := payload["expires_at"]
	if !ok {
		value, ok = payload["expires_in"]
	}
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
