package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ankit-0903/sentinel-vault/internal/config"
	"github.com/ankit-0903/sentinel-vault/internal/cryptox"
	"github.com/ankit-0903/sentinel-vault/internal/logging"
	"github.com/ankit-0903/sentinel-vault/internal/securestore"
	"github.com/ankit-0903/sentinel-vault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScriptedApp builds an App over an in-memory store, fed by a scripted
// stdin and capturing output.
func newScriptedApp(t *testing.T, script string) (*App, *bytes.Buffer) {
	t.Helper()

	store, err := securestore.OpenSQLiteStore(context.Background(),
		"file:cli_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()

	vault := services.NewCredentialVault(store, cryptox.LegacyHasher{}, logging.NewNop(),
		cfg.UserNamespace, cfg.SessionNamespace)

	var out bytes.Buffer
	return &App{
		config:   cfg,
		vault:    vault,
		tokens:   services.NewTokenVault(store, logging.NewNop(), cfg.TokenNamespace, cfg.EncryptionKey),
		sessions: services.NewSessionFacade(vault),
		reader:   bufio.NewReader(strings.NewReader(script)),
		out:      &out,
	}, &out
}

func stubPassword(t *testing.T, password string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte(password), nil }
}

func TestRoot_RegisterLoginLogoutFlow(t *testing.T) {
	stubPassword(t, "hunter2x")

	script := strings.Join([]string{
		"register",
		"alice",
		"Alice A",
		"555-1111",
		"alice@example.com",
		"login",
		"ALICE ", // case/whitespace variant still logs in
		"status",
		"token",
		"logout",
		"status",
		"alice", // status prompts once the terminal user is cleared
		"exit",
	}, "\n") + "\n"

	app, out := newScriptedApp(t, script)
	app.Root(context.Background())

	output := out.String()
	assert.Contains(t, output, "User registered successfully")
	assert.Contains(t, output, "Welcome, Alice A!")
	assert.Contains(t, output, "alice is logged in")
	assert.Contains(t, output, "Session token: ")
	assert.Contains(t, output, "Logged out")
	assert.Contains(t, output, "alice is not logged in")
	assert.Contains(t, output, "Bye!")
}

func TestRoot_LoginFailure(t *testing.T) {
	stubPassword(t, "wrongpass")

	script := strings.Join([]string{
		"login",
		"nobody",
		"exit",
	}, "\n") + "\n"

	app, out := newScriptedApp(t, script)
	app.Root(context.Background())

	assert.Contains(t, out.String(), "Login failed")
}

func TestRoot_SaveTokenDowngradeWithoutKey(t *testing.T) {
	script := strings.Join([]string{
		"savetoken",
		"GMeet",
		`{"scope":"x","refresh_token":"r"}`,
		"", // ends the multiline payload
		"yes",
		"exit",
	}, "\n") + "\n"

	app, out := newScriptedApp(t, script)
	app.Root(context.Background())

	// no key configured: encryption request is downgraded, not faked
	assert.Contains(t, out.String(), "encrypted=false")
}

func TestRoot_UnknownCommand(t *testing.T) {
	app, out := newScriptedApp(t, "frobnicate\nexit\n")
	app.Root(context.Background())

	assert.Contains(t, out.String(), "Unknown command: frobnicate")
}

func TestNewApp_RejectsUnknownBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StoreBackend = "floppy"

	_, err := NewApp(context.Background(), cfg, logging.NewNop())
	assert.Error(t, err)
}

func TestNewApp_RejectsUnknownScheme(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StoreBackend = config.BackendSQLite
	cfg.SQLiteDSN = "file:newapp_" + t.Name() + "?mode=memory&cache=shared"
	cfg.PasswordScheme = "rot13"

	_, err := NewApp(context.Background(), cfg, logging.NewNop())
	assert.Error(t, err)
}
