// Package settings loads hyprconf's own preferences from a TOML file, with
// environment variable overrides.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override the file.
const (
	EnvConfig    = "HYPRCONF_CONFIG"
	EnvLogLevel  = "HYPRCONF_LOG_LEVEL"
	EnvLogFormat = "HYPRCONF_LOG_FORMAT"
)

// Settings are hyprconf's preferences.
type Settings struct {
	// Config is the Hyprland config to edit.
	Config string `toml:"config"`

	// PendingFile holds unsaved TUI changes between runs.
	PendingFile string `toml:"pending_file"`

	Backup         bool `toml:"backup"`
	Reload         bool `toml:"reload"`
	MaxSourceDepth int  `toml:"max_source_depth"`

	Log   Log   `toml:"log"`
	Watch Watch `toml:"watch"`
}

// Log configures logging.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`

	// File receives the terminal UI's logs.
	File string `toml:"file"`
}

// Watch configures the file watcher.
type Watch struct {
	DebounceMS int `toml:"debounce_ms"`
}

// Debounce returns the watcher debounce as a duration.
func (w Watch) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Config:         "~/.config/hypr/hyprland.conf",
		PendingFile:    filepath.Join(stateHome(), "hyprconf", "pending.json"),
		Backup:         true,
		MaxSourceDepth: 8,
		Log: Log{
			Level:  "info",
			Format: "text",
			File:   filepath.Join(stateHome(), "hyprconf", "hyprconf.log"),
		},
		Watch: Watch{DebounceMS: 150},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/hyprconf/settings.toml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "hyprconf", "settings.toml")
}

func stateHome() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading settings %s: %w", path, err)
	}
	if err := Decode(data, &s); err != nil {
		return Default(), fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Decode parses TOML into s, leaving fields the document omits untouched.
func Decode(data []byte, s *Settings) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return err
	}
	return nil
}

// Encode renders s as TOML.
func Encode(s Settings) ([]byte, error) {
	return toml.Marshal(s)
}

// ApplyEnv overrides s from the environment through getenv.
func (s *Settings) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvConfig); v != "" {
		s.Config = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		s.Log.Level = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		s.Log.Format = v
	}
}
