package config

import "github.com/caarlos0/env/v11"

// envConfig is a DTO for environment overrides. TOKEN_ENCRYPTION_KEY is the
// only supported source for the encryption key.
type envConfig struct {
	StoreBackend     string `env:"SENTINEL_STORE_BACKEND"`
	SQLiteDSN        string `env:"SENTINEL_SQLITE_DSN"`
	UserNamespace    string `env:"SENTINEL_USER_NAMESPACE"`
	SessionNamespace string `env:"SENTINEL_SESSION_NAMESPACE"`
	TokenNamespace   string `env:"SENTINEL_TOKEN_NAMESPACE"`
	EncryptionKey    string `env:"TOKEN_ENCRYPTION_KEY"`
	PasswordScheme   string `env:"SENTINEL_PASSWORD_SCHEME"`
}

// parseEnv overlays Config with values from the environment. Unset variables
// leave the current values untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.StoreBackend != "" {
		cfg.StoreBackend = ec.StoreBackend
	}
	if ec.SQLiteDSN != "" {
		cfg.SQLiteDSN = ec.SQLiteDSN
	}
	if ec.UserNamespace != "" {
		cfg.UserNamespace = ec.UserNamespace
	}
	if ec.SessionNamespace != "" {
		cfg.SessionNamespace = ec.SessionNamespace
	}
	if ec.TokenNamespace != "" {
		cfg.TokenNamespace = ec.TokenNamespace
	}
	if ec.EncryptionKey != "" {
		cfg.EncryptionKey = ec.EncryptionKey
	}
	if ec.PasswordScheme != "" {
		cfg.PasswordScheme = ec.PasswordScheme
	}
}
