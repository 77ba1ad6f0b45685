package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"PEOPLE_LOG_LEVEL", "PEOPLE_LOG_FORMAT", "PEOPLE_SEED",
	"PEOPLE_SEED_FILE", "PEOPLE_SEED_WORKERS", "PEOPLE_PROMPT",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:    "warn",
		LogFormat:   "text",
		Seed:        true,
		SeedWorkers: 4,
		Prompt:      "people",
	}, cfg)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PEOPLE_LOG_LEVEL", "DEBUG")
	t.Setenv("PEOPLE_LOG_FORMAT", "json")
	t.Setenv("PEOPLE_SEED", "false")
	t.Setenv("PEOPLE_SEED_WORKERS", "8")
	t.Setenv("PEOPLE_PROMPT", "registry")

	cfg, err := FromEnv("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.Seed)
	assert.Equal(t, 8, cfg.SeedWorkers)
	assert.Equal(t, "registry", cfg.Prompt)
}

func TestFromEnv_DotEnvFillsGaps(t *testing.T) {
	clearEnv(t)
	t.Setenv("PEOPLE_PROMPT", "from-env")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PEOPLE_PROMPT=from-file\nPEOPLE_SEED_FILE=/tmp/seed.yaml\n"), 0o600))

	cfg, err := FromEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Prompt)
	assert.Equal(t, "/tmp/seed.yaml", cfg.SeedFile)
}

func TestFromEnv_RejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PEOPLE_SEED", "sometimes"},
		{"PEOPLE_SEED_WORKERS", "0"},
		{"PEOPLE_SEED_WORKERS", "many"},
		{"PEOPLE_LOG_FORMAT", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv("")
			require.Error(t, err)
		})
	}
}
