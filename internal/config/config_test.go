package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/tumble/internal/config"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.D6, cfg.Kind())
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "tumble.yaml", `
log_level: debug
hold_delay: 250ms
seed: 7
default_kind: d%
debug_addr: "127.0.0.1:9090"
`)

	cfg, err := config.Load(config.Options{Path: path, EnvFile: writeFile(t, ".env", "")})
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.HoldDelay)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, domain.Percentile, cfg.Kind())
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "127.0.0.1:9090", cfg.DebugAddr)
	assert.True(t, cfg.Color, "defaults survive partial files")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "tumble.yaml", "seed: 7\nheadless: false\n")
	t.Setenv("TUMBLE_SEED", "9")
	t.Setenv("TUMBLE_HEADLESS", "true")

	cfg, err := config.Load(config.Options{Path: path, EnvFile: writeFile(t, ".env", "")})
	require.NoError(t, err)

	assert.Equal(t, int64(9), cfg.Seed)
	assert.True(t, cfg.Headless)
}

func TestLoad_DotEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "TUMBLE_DEFAULT_KIND=d20\nTUMBLE_HOLD_DELAY=2s\n")
	t.Cleanup(func() {
		os.Unsetenv("TUMBLE_DEFAULT_KIND")
		os.Unsetenv("TUMBLE_HOLD_DELAY")
	})

	cfg, err := config.Load(config.Options{EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, domain.D20, cfg.Kind())
	assert.Equal(t, 2*time.Second, cfg.HoldDelay)
}

func TestLoad_Errors(t *testing.T) {
	emptyEnv := writeFile(t, ".env", "")
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "colour: true\n"},
		{"bad kind", "default_kind: d7\n"},
		{"bad level", "log_level: loud\n"},
		{"hold too long", "hold_delay: 1m\n"},
		{"bad duration", "hold_delay: soon\n"},
		{"bad address", "debug_addr: nowhere\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(config.Options{Path: writeFile(t, "c.yaml", tt.content), EnvFile: emptyEnv})
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(config.Options{Path: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
