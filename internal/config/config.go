// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/vegetor/editor"
	"github.com/iw2rmb/vegetor/statusbar"
)

// Config is the root configuration structure.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Status  StatusConfig  `toml:"status"`
	Welcome WelcomeConfig `toml:"welcome"`
	Log     LogConfig     `toml:"log"`
	Session SessionConfig `toml:"session"`
}

// EditorConfig holds scrolling settings. Zero selects the built-in padding,
// -1 disables it.
type EditorConfig struct {
	VerticalPadding   int `toml:"vertical_padding"`
	HorizontalPadding int `toml:"horizontal_padding"`
}

// EditArea converts the settings into an editor configuration.
func (e EditorConfig) EditArea(logger *zerolog.Logger) editor.Config {
	return editor.Config{
		VerticalPadding:   e.VerticalPadding,
		HorizontalPadding: e.HorizontalPadding,
		Logger:            logger,
	}
}

// StatusConfig holds status line settings.
type StatusConfig struct {
	// Packing is one of "center", "left" or "right".
	Packing      string `toml:"packing"`
	LeftPadding  int    `toml:"left_padding"`
	RightPadding int    `toml:"right_padding"`
}

// StatusPacking resolves the configured packing.
func (s StatusConfig) StatusPacking() (statusbar.Packing, error) {
	align, err := statusbar.ParseAlign(s.Packing)
	if err != nil {
		return statusbar.Packing{}, err
	}
	return statusbar.Packing{Align: align, LeftPadding: s.LeftPadding, RightPadding: s.RightPadding}, nil
}

// WelcomeConfig holds welcome screen settings.
type WelcomeConfig struct {
	// File replaces the built-in banner when set.
	File string `toml:"file"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// ZerologLevel returns the parsed level, or info when unset.
func (l LogConfig) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil || l.Level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// SessionConfig holds per-file session settings.
type SessionConfig struct {
	// RememberCaret restores the last caret when a file is reopened.
	RememberCaret bool `toml:"remember_caret"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Status: StatusConfig{
			Packing:      statusbar.AlignLeft.String(),
			LeftPadding:  statusbar.HorizontalPadding,
			RightPadding: statusbar.HorizontalPadding,
		},
		Log:     LogConfig{Level: zerolog.InfoLevel.String()},
		Session: SessionConfig{RememberCaret: true},
	}
}

// Load reads configuration from a TOML file and applies environment variable
// overrides. Keys missing from the file keep their defaults.
//
// An empty path selects DefaultPath, which may be absent; an explicit path
// must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	switch _, err := os.Stat(path); {
	case err == nil:
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
		}
	case optional && errors.Is(err, os.ErrNotExist):
		// defaults only
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("config file not found: %s", path)
	default:
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.VerticalPadding < -1 {
		errs = append(errs, fmt.Errorf("editor.vertical_padding=%d must be -1 or more", c.Editor.VerticalPadding))
	}
	if c.Editor.HorizontalPadding < -1 {
		errs = append(errs, fmt.Errorf("editor.horizontal_padding=%d must be -1 or more", c.Editor.HorizontalPadding))
	}

	if _, err := c.Status.StatusPacking(); err != nil {
		errs = append(errs, fmt.Errorf("status.packing: %w", err))
	}
	if c.Status.LeftPadding < 0 {
		errs = append(errs, fmt.Errorf("status.left_padding=%d must not be negative", c.Status.LeftPadding))
	}
	if c.Status.RightPadding < 0 {
		errs = append(errs, fmt.Errorf("status.right_padding=%d must not be negative", c.Status.RightPadding))
	}

	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
			errs = append(errs, fmt.Errorf("log.level=%q is invalid: %v", c.Log.Level, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"VEGETOR_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
		{"VEGETOR_WELCOME_FILE", func(v string) {
			if v != "" {
				cfg.Welcome.File = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the vegetor data directory (~/.config/vegetor).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vegetor"), nil
}

// DefaultPath returns the path of the configuration file inside DataDir.
func DefaultPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
