package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "config.yaml", `
server:
  tcp_addr: ":7000"
auth:
  secret: from-yaml
redis:
  addr: "localhost:6379"
rules:
  cards_per_player: 5
  sweep_interval: 30s
  finished_ttl: 2h
`)
	t.Setenv("UNO_JWT_SECRET", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.TCPAddr)
	assert.Equal(t, ":9998", cfg.Server.WSAddr)
	assert.Equal(t, "from-env", cfg.Auth.Secret)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 5, cfg.Rules.CardsPerPlayer)
	assert.Equal(t, 30*time.Second, cfg.Rules.SweepInterval)
	assert.Equal(t, 2*time.Hour, cfg.Rules.FinishedTTL)
	assert.Equal(t, 24*time.Hour, cfg.Rules.IdleTTL)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, ".env", "UNO_JWT_SECRET=dotenv\nUNO_CARDS_PER_PLAYER=3\n")
	t.Setenv("UNO_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("UNO_JWT_SECRET"))
	t.Setenv("UNO_CARDS_PER_PLAYER", "")
	require.NoError(t, os.Unsetenv("UNO_CARDS_PER_PLAYER"))

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "dotenv", cfg.Auth.Secret)
	assert.Equal(t, 3, cfg.Rules.CardsPerPlayer)
}

func TestLoadRequiresSecret(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("UNO_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("UNO_JWT_SECRET"))

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadRejectsBadYaml(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "config.yaml", "server: [")

	_, err := Load(path)
	assert.Error(t, err)
}
