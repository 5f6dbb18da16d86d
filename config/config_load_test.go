package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: clientaccount
  log:
    level: info
http:
  port: 9090
  timeouts:
    readTimeout: 3s
storage:
  driver: memory
auth:
  bcryptCost: 10
account:
  rejectDuplicateUsername: false
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "clientaccount", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.False(t, cfg.Account.RejectDuplicateUsername)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("ACCOUNT_REJECTDUPLICATEUSERNAME", "true")
	t.Setenv("AUTH_BCRYPTCOST", "6")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.True(t, cfg.Account.RejectDuplicateUsername)
	assert.Equal(t, 6, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.ErrorContains(t, err, "absent.yaml not found")
}
