// Package config loads application settings from the user config file
// with LEETTERM_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all user-tunable settings
type Config struct {
	ColorMode        string `mapstructure:"color_mode"` // auto | 256 | truecolor
	Language         string `mapstructure:"language"`   // preferred language slug
	TabWidth         int    `mapstructure:"tab_width"`
	UndoCoalesceMs   int    `mapstructure:"undo_coalesce_ms"`
	UndoDepth        int    `mapstructure:"undo_depth"`
	Sound            bool   `mapstructure:"sound"`
	LogLevel         string `mapstructure:"log_level"`
	HighlightStyle   string `mapstructure:"highlight_style"`
	DataDir          string `mapstructure:"data_dir"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		ColorMode:      "auto",
		Language:       "python3",
		TabWidth:       4,
		UndoCoalesceMs: 500,
		UndoDepth:      1000,
		Sound:          false,
		LogLevel:       "info",
		HighlightStyle: "monokai",
		DataDir:        defaultDataDir(),
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/leetterm/config.toml
func DefaultConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "leetterm", "config.toml")
}

func defaultDataDir() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "leetterm")
}

// Load reads path (or the default location when empty), applying
// defaults and LEETTERM_* env overrides. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("toml")
	if path == "" {
		path = DefaultConfigPath()
	}
	if path != "" {
		v.SetConfigFile(path)
	}

	v.SetDefault("color_mode", cfg.ColorMode)
	v.SetDefault("language", cfg.Language)
	v.SetDefault("tab_width", cfg.TabWidth)
	v.SetDefault("undo_coalesce_ms", cfg.UndoCoalesceMs)
	v.SetDefault("undo_depth", cfg.UndoDepth)
	v.SetDefault("sound", cfg.Sound)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("highlight_style", cfg.HighlightStyle)
	v.SetDefault("data_dir", cfg.DataDir)

	v.SetEnvPrefix("LEETTERM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.ColorMode {
	case "auto", "256", "truecolor":
	default:
		return fmt.Errorf("color_mode must be auto, 256, or truecolor, got %q", c.ColorMode)
	}
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width %d out of range [1,16]", c.TabWidth)
	}
	if c.UndoCoalesceMs < 0 {
		return fmt.Errorf("undo_coalesce_ms must not be negative")
	}
	if c.UndoDepth < 1 {
		return fmt.Errorf("undo_depth must be at least 1")
	}
	return nil
}

// DBPath returns the solution database location
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "solutions.db")
}

// LogPath returns the log file location
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "leetterm.log")
}
