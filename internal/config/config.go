// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves disemvowel settings from defaults, an optional
// YAML config file and DISEMVOWEL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/disemvowel/internal/logging"
	"github.com/pdiddy/disemvowel/pkg/types"
)

// EnvPrefix is prepended to every environment variable binding.
const EnvPrefix = "DISEMVOWEL"

// Keys recognised in config files and the environment.
const (
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyFileMode  = "file_mode"
)

// Defaults returns the settings used when nothing else is configured.
func Defaults() types.Config {
	return types.Config{
		LogLevel:  "error",
		LogFormat: logging.FormatText,
		FileMode:  "0644",
	}
}

// Configure points v at the config file search path and the environment.
// An explicit cfgFile replaces the search path.
func Configure(v *viper.Viper, cfgFile string) {
	d := Defaults()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyFileMode, d.FileMode)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("disemvowel")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "disemvowel"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the config file, if one is found, and returns validated
// settings. A missing file on the search path is not an error; a missing
// explicit file or a malformed one is.
func Load(v *viper.Viper) (types.Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || v.ConfigFileUsed() != "" {
			return types.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := types.Config{
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		FileMode:  v.GetString(KeyFileMode),
	}
	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field of cfg holds a supported value.
func Validate(cfg types.Config) error {
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("config %s: %w", KeyLogLevel, err)
	}
	switch cfg.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("config %s: unknown format %q (want text or json)", KeyLogFormat, cfg.LogFormat)
	}
	if _, err := ParseFileMode(cfg.FileMode); err != nil {
		return fmt.Errorf("config %s: %w", KeyFileMode, err)
	}
	return nil
}

// ParseFileMode parses an octal permission string such as "0644" or "600".
func ParseFileMode(s string) (os.FileMode, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "0o"), 8, 32)
	if err != nil || n > 0o777 {
		return 0, fmt.Errorf("invalid file mode %q", s)
	}
	return os.FileMode(n), nil
}

// Level returns the parsed log level of a validated config.
func Level(cfg types.Config) slog.Level {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return slog.LevelError
	}
	return level
}
