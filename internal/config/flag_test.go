package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overlay(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"sentinel", "-b", "sqlite", "-f", "custom.db", "-w", "argon2id"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, BackendSQLite, c.StoreBackend)
	assert.Equal(t, "custom.db", c.SQLiteDSN)
	assert.Equal(t, SchemeArgon2id, c.PasswordScheme)
}

func TestParseFlags_NoFlagsKeepDefaults(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"sentinel"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, BackendKeyring, c.StoreBackend)
	assert.Equal(t, "sentinel.db", c.SQLiteDSN)
}
