package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"MODE", "HTTP_ADDR", "FREE_MONTHLY_QUOTA", "STORE_PACKAGES", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	assert.Equal(t, ModeOffline, c.Mode)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, 5, c.FreeMonthlyQuota)
	assert.True(t, c.StorePackages)
	assert.Equal(t, []string{"http://localhost:3000"}, c.CORSOrigins)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MODE", "online")
	t.Setenv("FREE_MONTHLY_QUOTA", "12")
	t.Setenv("BULK_MAX_ITEMS", "not a number")
	t.Setenv("STORE_PACKAGES", "no")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	c := FromEnv()
	assert.Equal(t, ModeOnline, c.Mode)
	assert.Equal(t, 12, c.FreeMonthlyQuota)
	assert.Equal(t, 50, c.BulkMaxItems)
	assert.False(t, c.StorePackages)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSOrigins)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eduport.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_addr: \":9090\"\nfree_monthly_quota: 20\ncors_origins: [\"https://x.example\"]\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "debug")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, 20, c.FreeMonthlyQuota)
	assert.Equal(t, []string{"https://x.example"}, c.CORSOrigins)
	assert.Equal(t, "debug", c.LogLevel, "env values survive when the file leaves them unset")
}

func TestOverlayRejectsUnknownKeys(t *testing.T) {
	c := FromEnv()
	assert.Error(t, c.Overlay([]byte("no_such_key: 1\n")))
	assert.NoError(t, c.Overlay(nil))
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
