// Package config loads the frontend settings for memong from a TOML file.
// Only presentation and input are configurable; the arena and its physics are
// fixed.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full set of frontend settings.
type Config struct {
	Window Window `toml:"window"`
	Input  Input  `toml:"input"`
	Debug  Debug  `toml:"debug"`
}

// Window controls the game window.
type Window struct {
	Title string `toml:"title"`
	Scale int    `toml:"scale"`
	VSync bool   `toml:"vsync"`
	// TPS is the tick rate. Zero ticks once per presented frame.
	TPS int `toml:"tps"`
}

// Input maps each action to the key names that trigger it.
type Input struct {
	LeftUp    []string `toml:"left_up"`
	LeftDown  []string `toml:"left_down"`
	RightUp   []string `toml:"right_up"`
	RightDown []string `toml:"right_down"`
	Quit      []string `toml:"quit"`
}

// Debug controls diagnostics.
type Debug struct {
	Overlay bool   `toml:"overlay"`
	Log     bool   `toml:"log"`
	LogFile string `toml:"log_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: Window{
			Title: "Memong",
			Scale: 1,
			VSync: true,
		},
		Input: Input{
			LeftUp:    []string{"W"},
			LeftDown:  []string{"S"},
			RightUp:   []string{"ArrowUp"},
			RightDown: []string{"ArrowDown"},
			Quit:      []string{"Escape"},
		},
		Debug: Debug{
			LogFile: filepath.Join("logs", "memong.log"),
		},
	}
}

// DefaultPath returns the location Load falls back to when given no path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "memong", "config.toml")
}

// Load reads the file at path on top of Default. An empty path tries
// DefaultPath and silently keeps the defaults if no file exists there.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings for values no frontend can use.
func (c Config) Validate() error {
	if c.Window.Scale < 1 {
		return fmt.Errorf("window.scale must be at least 1, got %d: %w", c.Window.Scale, ErrInvalid)
	}
	if c.Window.TPS < 0 {
		return fmt.Errorf("window.tps must not be negative, got %d: %w", c.Window.TPS, ErrInvalid)
	}
	if c.Debug.Log && c.Debug.LogFile == "" {
		return fmt.Errorf("debug.log_file is required when debug.log is set: %w", ErrInvalid)
	}

	bindings := map[string][]string{
		"left_up":    c.Input.LeftUp,
		"left_down":  c.Input.LeftDown,
		"right_up":   c.Input.RightUp,
		"right_down": c.Input.RightDown,
		"quit":       c.Input.Quit,
	}
	owner := make(map[string]string)
	for _, action := range []string{"left_up", "left_down", "right_up", "right_down", "quit"} {
		for _, key := range bindings[action] {
			norm := strings.ToLower(strings.TrimSpace(key))
			if norm == "" {
				return fmt.Errorf("input.%s contains an empty key name: %w", action, ErrInvalid)
			}
			if prev, ok := owner[norm]; ok && prev != action {
				return fmt.Errorf("key %q is bound to both %s and %s: %w", key, prev, action, ErrInvalid)
			}
			owner[norm] = action
		}
	}
	return nil
}
