package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Game.ArrowsPerPlayer)
	assert.Equal(t, 12, cfg.Game.MaxPlayers)
	assert.Equal(t, 50*time.Millisecond, cfg.Game.TickInterval)
	assert.Equal(t, 35*time.Millisecond, cfg.Audio.BlockTime)
	assert.InDelta(t, 0.025, cfg.Audio.InitialThreshold, 1e-9)
	assert.Equal(t, []int{5, 3, 1, 0}, cfg.Game.Points.Values())
}

func TestLoad_YAMLOverlayAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	content := `
game:
  arrows_per_player: 5
  tick_interval: 100ms
  shooters: [Robin, Marian]
camera:
  settle_delay: 250ms
extractor:
  match_method: sqdiff
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CINEMA_CAMERA_INDEX", "2")

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Game.ArrowsPerPlayer)
	assert.Equal(t, 100*time.Millisecond, cfg.Game.TickInterval)
	assert.Equal(t, []string{"Robin", "Marian"}, cfg.Game.Shooters)
	assert.Equal(t, 250*time.Millisecond, cfg.Camera.SettleDelay)
	assert.Equal(t, "sqdiff", cfg.Extractor.MatchMethod)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Camera.DeviceIndex)
	// untouched sections keep their defaults
	assert.Equal(t, "png", cfg.Camera.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("game: [oops"), 0o644))

	_, err := Load(file)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no arrows", func(c *Config) { c.Game.ArrowsPerPlayer = 0 }},
		{"no players", func(c *Config) { c.Game.MaxPlayers = 0 }},
		{"zero tick", func(c *Config) { c.Game.TickInterval = 0 }},
		{"zero block", func(c *Config) { c.Audio.BlockTime = 0 }},
		{"zero threshold", func(c *Config) { c.Audio.InitialThreshold = 0 }},
		{"no format", func(c *Config) { c.Camera.Format = "" }},
		{"discord without channel", func(c *Config) { c.Discord.Token = "secret" }},
		{"too many shooters", func(c *Config) {
			c.Game.MaxPlayers = 1
			c.Game.Shooters = []string{"a", "b"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}
