// Package config loads edir's configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// HistoryConfig configures run-record keeping.
type HistoryConfig struct {
	Enabled       bool   `mapstructure:"enabled" yaml:"enabled"`
	Path          string `mapstructure:"path" yaml:"path"`
	RetentionDays int    `mapstructure:"retention_days" yaml:"retention_days"`
}

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	Path  string `mapstructure:"path" yaml:"path"`
}

// Config represents the application configuration.
type Config struct {
	// Editor is the command used to edit the listing. Empty defers to
	// VISUAL/EDITOR.
	Editor string `mapstructure:"editor" yaml:"editor"`

	// Interactive asks for confirmation before each action by default.
	Interactive bool `mapstructure:"interactive" yaml:"interactive"`

	// UseTrash routes deletions through the system trash when one is
	// available instead of removing permanently.
	UseTrash bool `mapstructure:"use_trash" yaml:"use_trash"`

	History HistoryConfig `mapstructure:"history" yaml:"history"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// Load reads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/edir/config.yaml
//   - $HOME/.config/edir/config.yaml
//
// Environment variables are prefixed with EDIR_ (e.g. EDIR_EDITOR).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "edir"))
	}
	homeDir, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".config", "edir"))
	}

	v.SetEnvPrefix("EDIR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.History.Path == "" {
		cfg.History.Path = HistoryDir()
	}
	return &cfg, nil
}

// SetDefaults installs the default values on a viper instance. The CLI
// shares these with Load via its own viper.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("editor", DefaultEditor)
	v.SetDefault("interactive", false)
	v.SetDefault("use_trash", false)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "")
	v.SetDefault("history.retention_days", DefaultHistoryRetentionDays)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.path", "")
}

// ConfigDir returns the directory holding the config file, creating it
// if needed.
func ConfigDir() (string, error) {
	var dir string
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		dir = filepath.Join(xdgConfigHome, "edir")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".config", "edir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// HistoryDir returns the default directory for run records,
// $XDG_DATA_HOME/edir/history.
func HistoryDir() string {
	return filepath.Join(xdg.DataHome, "edir", "history")
}

// WriteDefault creates a commented default config file if none exists.
func WriteDefault() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	content := `# edir configuration
# Editor used for the listing. Empty defers to $VISUAL / $EDITOR.
editor: ""

# Ask for confirmation before each rename and delete.
interactive: false

# Send deletions to the system trash instead of removing permanently.
use_trash: false

history:
  # Record what each run did under history.path.
  enabled: true
  # Empty uses $XDG_DATA_HOME/edir/history.
  path: ""
  retention_days: 90

logging:
  # debug, info, warn, or error.
  level: info
  # Empty uses $XDG_STATE_HOME/edir/edir.log.
  path: ""
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(homeDir, path[1:]), nil
	}
	return path, nil
}
