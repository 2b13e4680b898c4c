// Package config handles configuration for the vault, including defaults,
// JSON overlay, environment variables, and command-line flags.
package config

// Store backend identifiers.
const (
	BackendKeyring = "keyring"
	BackendSQLite  = "sqlite"
)

// Password hashing scheme identifiers.
const (
	SchemeLegacy   = "legacy"
	SchemeArgon2id = "argon2id"
)

// Config holds runtime settings for the vault.
//
// Fields:
//   - StoreBackend: "keyring" (OS credential store) or "sqlite" (file fallback).
//   - SQLiteDSN: database path when StoreBackend is "sqlite".
//   - UserNamespace / SessionNamespace / TokenNamespace: secure-store
//     namespaces, kept distinct to avoid key collisions in credential stores
//     that multiplex on a single namespace.
//   - EncryptionKey: optional symmetric key for token payloads; empty means
//     encrypt requests are downgraded to plaintext (and logged).
//   - PasswordScheme: "legacy" keeps byte-compatibility with existing stored
//     hashes; "argon2id" is the randomized, memory-hard replacement.
type Config struct {
	StoreBackend     string
	SQLiteDSN        string
	UserNamespace    string
	SessionNamespace string
	TokenNamespace   string
	EncryptionKey    string
	PasswordScheme   string
}

// LoadDefaults populates Config with the namespaces and backend used by
// existing installations.
func (c *Config) LoadDefaults() {
	c.StoreBackend = BackendKeyring
	c.SQLiteDSN = "sentinel.db"
	c.UserNamespace = "SentinelApp-Users"
	c.SessionNamespace = "SentinelApp-Sessions"
	c.TokenNamespace = "SentinelApp-Tokens"
	c.PasswordScheme = SchemeLegacy
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line
// flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
