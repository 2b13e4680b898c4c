package config

import (
	"flag"
	"os"

	"github.com/ankit-0903/sentinel-vault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   store backend: "keyring" or "sqlite"
//	-f string   sqlite database path (when -b sqlite)
//	-w string   password scheme: "legacy" or "argon2id"
//
// The encryption key has no flag on purpose: command lines leak through
// process listings, so the key is environment-only.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-f", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.StoreBackend, "b", config.StoreBackend, "secure store backend (keyring|sqlite)")
	fs.StringVar(&config.SQLiteDSN, "f", config.SQLiteDSN, "sqlite database path")
	fs.StringVar(&config.PasswordScheme, "w", config.PasswordScheme, "password hashing scheme (legacy|argon2id)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
