package models

// TokenRecord is an append-only snapshot of a third-party OAuth credential.
// Payload holds the serialized token, base64 AES-GCM sealed when Encrypted
// is true. Scopes, refresh-token presence and the expiry hint are extracted
// at save time so they stay queryable without decryption.
type TokenRecord struct {
	ID                  string `json:"id"`
	Service             string `json:"service"`
	Payload             string `json:"payload"`
	Encrypted           bool   `json:"encrypted"`
	Scopes              string `json:"scopes,omitempty"`
	RefreshTokenPresent bool   `json:"refresh_token_present"`
	ExpiryHint          string `json:"expiry_hint,omitempty"`
	UserID              string `json:"user_id,omitempty"`
	CreatedAt           int64  `json:"created_at"`
}
