package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/memong/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "Memong", cfg.Window.Title)
	assert.Equal(t, 1, cfg.Window.Scale)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, 0, cfg.Window.TPS)
	assert.Equal(t, []string{"W"}, cfg.Input.LeftUp)
	assert.Equal(t, []string{"ArrowDown"}, cfg.Input.RightDown)
	assert.False(t, cfg.Debug.Overlay)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, `
[window]
scale = 2

[debug]
overlay = true
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.Window.Scale)
		assert.Equal(t, "Memong", cfg.Window.Title)
		assert.True(t, cfg.Debug.Overlay)
		assert.Equal(t, []string{"S"}, cfg.Input.LeftDown)
	})

	t.Run("bindings replace defaults", func(t *testing.T) {
		path := writeConfig(t, `
[input]
left_up = ["Q", "E"]
left_down = ["A"]
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"Q", "E"}, cfg.Input.LeftUp)
		assert.Equal(t, []string{"A"}, cfg.Input.LeftDown)
		assert.Equal(t, []string{"ArrowUp"}, cfg.Input.RightUp)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		path := writeConfig(t, `
[window]
fullscreen = true
`)
		_, err := config.Load(path)
		assert.ErrorIs(t, err, config.ErrInvalid)
		assert.ErrorContains(t, err, "window.fullscreen")
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeConfig(t, "[window\nscale = ")
		_, err := config.Load(path)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("validation failure is wrapped", func(t *testing.T) {
		path := writeConfig(t, `
[window]
scale = 0
`)
		_, err := config.Load(path)
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"negative tps", func(c *config.Config) { c.Window.TPS = -1 }},
		{"zero scale", func(c *config.Config) { c.Window.Scale = 0 }},
		{"log without file", func(c *config.Config) {
			c.Debug.Log = true
			c.Debug.LogFile = ""
		}},
		{"empty key name", func(c *config.Config) { c.Input.Quit = []string{" "} }},
		{"key bound twice", func(c *config.Config) { c.Input.RightUp = []string{"w"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}

	t.Run("same key twice for one action is fine", func(t *testing.T) {
		cfg := config.Default()
		cfg.Input.LeftUp = []string{"W", "w"}
		assert.NoError(t, cfg.Validate())
	})
}
