package config

import (
	"encoding/json"
	"os"

	"github.com/ankit-0903/sentinel-vault/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config. The encryption key is deliberately
// not accepted from JSON so it never ends up in a config file on disk.
type JsonConfig struct {
	StoreBackend     string `json:"store_backend"`
	SQLiteDSN        string `json:"sqlite_dsn"`
	UserNamespace    string `json:"user_namespace"`
	SessionNamespace string `json:"session_namespace"`
	TokenNamespace   string `json:"token_namespace"`
	PasswordScheme   string `json:"password_scheme"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flags. Missing flag means no JSON is loaded. Read or unmarshal
// errors panic, mirroring how misconfiguration is handled at startup
// elsewhere in this package.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoreBackend != "" {
		cfg.StoreBackend = jc.StoreBackend
	}
	if jc.SQLiteDSN != "" {
		cfg.SQLiteDSN = jc.SQLiteDSN
	}
	if jc.UserNamespace != "" {
		cfg.UserNamespace = jc.UserNamespace
	}
	if jc.SessionNamespace != "" {
		cfg.SessionNamespace = jc.SessionNamespace
	}
	if jc.TokenNamespace != "" {
		cfg.TokenNamespace = jc.TokenNamespace
	}
	if jc.PasswordScheme != "" {
		cfg.PasswordScheme = jc.PasswordScheme
	}
}
