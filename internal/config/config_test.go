package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[simulation]
tick_rate = "33ms"
enemy_fire = true
max_frames = 600

[render]
mode = "headless"

[logging]
level = "debug"
file = "arena.log"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 33*time.Millisecond, cfg.Simulation.TickRate)
	assert.True(t, cfg.Simulation.EnemyFire)
	assert.Equal(t, uint64(600), cfg.Simulation.MaxFrames)
	assert.Equal(t, "headless", cfg.Render.Mode)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "arena.log", cfg.Logging.File)

	// Untouched sections keep their defaults.
	assert.Equal(t, 0.05, cfg.Simulation.TileSize)
	assert.Equal(t, "levels/level1.json", cfg.Simulation.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[simulation\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[render]\nmode = \"opengl\"\n"))
	assert.ErrorContains(t, err, "render.mode")

	_, err = Load(writeConfig(t, "[simulation]\ntile_size = -1.0\n"))
	assert.ErrorContains(t, err, "tile_size")
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "")
	assert.Equal(t, DefaultPath, PathFromEnv())
	t.Setenv(EnvPath, "/etc/arena.toml")
	assert.Equal(t, "/etc/arena.toml", PathFromEnv())
}
