package config

import (
	"os"
	"path/filepath"
	"testing"

	"cts/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "cts.db", cfg.Database.Name)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "feeds", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, reconcile.ScopeCompany, cfg.Reconcile.Scope)
	assert.Equal(t, reconcile.LinkVariantCounter, cfg.Reconcile.LinkVariant)
	assert.Equal(t, "https://ca.indeed.com/viewjob?jk=%s", cfg.Reconcile.IndeedTemplate)
	assert.Empty(t, cfg.Reconcile.SharedURLs)
	assert.False(t, cfg.Reconcile.SkipUnresolvable)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("DATABASE_PORT", "3307")
	t.Setenv("RECONCILE_SCOPE", "global")
	t.Setenv("RECONCILE_SKIP_UNRESOLVABLE", "true")
	t.Setenv("RECONCILE_SHARED_URLS", "https://a.example/careers,https://b.example/jobs")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, reconcile.ScopeGlobal, cfg.Reconcile.Scope)
	assert.True(t, cfg.Reconcile.SkipUnresolvable)
	assert.Equal(t, []string{"https://a.example/careers", "https://b.example/jobs"}, cfg.Reconcile.SharedURLs)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nSERVER_API_KEY=secret\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_API_KEY")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
}
