package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "env: development\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2333, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "smaranika", cfg.Database.Name)
	assert.Contains(t, cfg.DSN, "tcp(127.0.0.1:3306)/smaranika")
	assert.Contains(t, cfg.DSN, "parseTime=True")
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoadExplicitDSNWins(t *testing.T) {
	path := writeConfig(t, "dsn: user:pw@tcp(db:3306)/other?parseTime=True\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "user:pw@tcp(db:3306)/other?parseTime=True", cfg.DSN)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "prot: 8080\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	path := writeConfig(t, "port: 70000\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadValidatesBackup(t *testing.T) {
	path := writeConfig(t, "backup:\n  enable: true\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backup.bucket")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
