// Package cli implements the interactive terminal front end for the vault.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ankit-0903/sentinel-vault/internal/config"
	"github.com/ankit-0903/sentinel-vault/internal/cryptox"
	"github.com/ankit-0903/sentinel-vault/internal/logging"
	"github.com/ankit-0903/sentinel-vault/internal/securestore"
	"github.com/ankit-0903/sentinel-vault/internal/services"
)

// App wires the vaults to an interactive prompt. userName tracks who is
// operating the terminal; the authoritative session state always lives in
// the secure store.
type App struct {
	config   *config.Config
	vault    *services.CredentialVault
	tokens   *services.TokenVault
	sessions *services.SessionFacade
	userName string
	reader   *bufio.Reader
	out      io.Writer
	closer   io.Closer
}

// NewApp builds the secure store selected by configuration and constructs
// the service layer on top of it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	var store securestore.Store
	var closer io.Closer

	switch cfg.StoreBackend {
	case config.BackendKeyring:
		store = securestore.NewKeyringStore()
	case config.BackendSQLite:
		s, err := securestore.OpenSQLiteStore(ctx, cfg.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		store, closer = s, s
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	var hasher cryptox.PasswordHasher
	switch cfg.PasswordScheme {
	case config.SchemeLegacy:
		hasher = cryptox.LegacyHasher{}
	case config.SchemeArgon2id:
		hasher = cryptox.Argon2Hasher{}
	default:
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("unknown password scheme %q", cfg.PasswordScheme)
	}

	vault := services.NewCredentialVault(store, hasher, log, cfg.UserNamespace, cfg.SessionNamespace)

	return &App{
		config:   cfg,
		vault:    vault,
		tokens:   services.NewTokenVault(store, log, cfg.TokenNamespace, cfg.EncryptionKey),
		sessions: services.NewSessionFacade(vault),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closer:   closer,
	}, nil
}

// Run starts the REPL and releases store resources when it exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closer != nil {
			a.closer.Close()
		}
	}()
	a.Root(ctx)
}
