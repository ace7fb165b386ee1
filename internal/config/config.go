// Package config handles configuration loading for breathe.
// It supports a project-level .breathe.yaml, an XDG config file, and
// BREATHE_* environment variable overrides.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for breathe.
type Config struct {
	// LogRoot is the log tree root directory, relative to the
	// working directory.
	LogRoot string `mapstructure:"log_root"`
	// MaxWorkers bounds concurrent ecosystem verifications.
	// Zero means one worker per detected ecosystem.
	MaxWorkers int `mapstructure:"max_workers"`
	// Disabled lists ecosystem names to skip even when detected.
	Disabled []string `mapstructure:"disabled"`
	// History toggles recording runs to the local history database.
	History bool `mapstructure:"history"`
	// Dictionary points at the wordlist used by the commit
	// assistant's spell check. Empty means the bundled default path.
	Dictionary string `mapstructure:"dictionary"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogRoot: "breathes",
		History: true,
	}
}

// Load reads configuration from .breathe.yaml in workDir, falling back
// to $XDG_CONFIG_HOME/breathe/config.yaml, with BREATHE_* environment
// variables overriding both. A missing config file is not an error;
// defaults apply.
func Load(workDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".breathe")
	v.SetConfigType("yaml")
	if workDir != "" {
		v.AddConfigPath(workDir)
	} else {
		v.AddConfigPath(".")
	}
	v.AddConfigPath(configDir())

	v.SetDefault("log_root", "breathes")
	v.SetDefault("max_workers", 0)
	v.SetDefault("history", true)

	v.SetEnvPrefix("BREATHE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configDir returns the XDG config directory for breathe.
func configDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "breathe")
}
