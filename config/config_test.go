package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "operation failed"
	testErr := errors.New("internal database error")

	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release mode hides details
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// no config counts as development
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "auracash.db", cfg.Database.Path)
	assert.Equal(t, "auracash_session", cfg.Session.CookieName)
	assert.Equal(t, 168*time.Hour, cfg.Session.ExpireTime)
	assert.NotEmpty(t, cfg.Session.Secret)
	assert.False(t, cfg.Email.Enabled)
	assert.Same(t, cfg, GetConfig())
}

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	defer func() { GlobalConfig = nil }()

	path := filepath.Join(dir, "custom.yaml")
	content := "database:\n  driver: postgresql\n  host: db.internal\nsession:\n  expire_hours: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("AURACASH_SERVER_PORT", ":9090")
	t.Setenv("AURACASH_SESSION_SECRET", "from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 2*time.Hour, cfg.Session.ExpireTime)
	assert.Equal(t, "from-env", cfg.Session.Secret)
}

func TestLoadConfig_Rejects(t *testing.T) {
	t.Chdir(t.TempDir())
	defer func() { GlobalConfig = nil }()

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("AURACASH_DATABASE_DRIVER", "oracle")
		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("release without secret", func(t *testing.T) {
		t.Setenv("AURACASH_SERVER_MODE", "release")
		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "session.secret")
	})
}
