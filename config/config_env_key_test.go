package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl": "",
			"timeout": "20s",
		},
		"storage": map[string]any{
			"bucketUrl": "",
			"redisUrl":  "",
		},
		"guard": map[string]any{
			"pendingTimeout": "5s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "STORAGE_REDISURL", want: "storage.redisUrl"},
		{envKey: "GUARD_PENDINGTIMEOUT", want: "guard.pendingTimeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "backend:\n  baseUrl: http://backend.local/api/v1\n  timeout: 3s\nstorage:\n  provider: redis\n  redisUrl: redis://localhost:6379/0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))
	t.Setenv("GUARD_PENDINGTIMEOUT", "250ms")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)
	cfg.ApplyDefaults()

	assert.Equal(t, "http://backend.local/api/v1", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, StorageProviderRedis, cfg.Storage.Provider)
	assert.Equal(t, "isLogin", cfg.Storage.Key)
	assert.Equal(t, 250*time.Millisecond, cfg.Guard.PendingTimeout)
	assert.Equal(t, defaultRefreshTimeout, cfg.Session.RefreshTimeout)
}

func TestApplyDefaults_BlobInMemory(t *testing.T) {
	cfg := &Config{}
	cfg.Backend.BaseURL = "http://backend/api/v1/"

	cfg.ApplyDefaults()

	assert.Equal(t, "http://backend/api/v1", cfg.Backend.BaseURL)
	assert.Equal(t, StorageProviderBlob, cfg.Storage.Provider)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, defaultPendingTimeout, cfg.Guard.PendingTimeout)
}
