// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Puzzlebox settings from defaults, an optional YAML
// file, PUZZLEBOX_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/puzzlebox/internal/hanoi"
)

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of user-tunable settings.
type Config struct {
	Language string       `mapstructure:"language" yaml:"language"`
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`
	Hanoi    HanoiConfig  `mapstructure:"hanoi" yaml:"hanoi"`
	Cipher   CipherConfig `mapstructure:"cipher" yaml:"cipher"`
}

// HanoiConfig configures new Tower of Hanoi games.
type HanoiConfig struct {
	Disks    int    `mapstructure:"disks" yaml:"disks"`
	StartPeg string `mapstructure:"start_peg" yaml:"start_peg"`
}

// CipherConfig configures the Vigenère tool.
type CipherConfig struct {
	// Clipboard copies every translated message to the system clipboard.
	Clipboard bool `mapstructure:"clipboard" yaml:"clipboard"`
}

// Defaults returns the built-in values keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"language":         "en",
		"log_level":        "warn",
		"hanoi.disks":      hanoi.DefaultDisks,
		"hanoi.start_peg":  "A",
		"cipher.clipboard": true,
	}
}

// Default returns a Config populated from Defaults.
func Default() Config {
	return Config{
		Language: "en",
		LogLevel: "warn",
		Hanoi:    HanoiConfig{Disks: hanoi.DefaultDisks, StartPeg: "A"},
		Cipher:   CipherConfig{Clipboard: true},
	}
}

// Validate checks the values the rest of the program relies on.
func (c Config) Validate() error {
	if c.Hanoi.Disks < 1 || c.Hanoi.Disks > hanoi.MaxDisks {
		return fmt.Errorf("%w: hanoi.disks must be between 1 and %d, got %d", ErrInvalidConfig, hanoi.MaxDisks, c.Hanoi.Disks)
	}
	if _, err := hanoi.ParsePeg(c.Hanoi.StartPeg); err != nil {
		return fmt.Errorf("%w: hanoi.start_peg: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Start returns the configured start peg, falling back to A.
func (c HanoiConfig) Start() hanoi.Peg {
	p, err := hanoi.ParsePeg(c.StartPeg)
	if err != nil {
		return hanoi.PegA
	}
	return p
}

// DefaultConfigPath returns the full path for the configuration file.
func DefaultConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Puzzlebox")
		default: // Linux, macOS, etc.
			configDir = "/etc/puzzlebox"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "puzzlebox")
	}

	return filepath.Join(configDir, "puzzlebox.yaml"), nil
}

// FlagBindings maps config keys to the names of the cobra flags that may
// override them. Flags a command does not define are skipped.
var FlagBindings = map[string]string{
	"language":         "lang",
	"log_level":        "log-level",
	"hanoi.disks":      "disks",
	"hanoi.start_peg":  "start",
	"cipher.clipboard": "copy",
}

// LoadConfig builds a T from defaults, the first puzzlebox.yaml found (or
// explicitPath when non-nil), the environment and cmd's flags. A missing
// config file is not an error; the second return value reports the file
// that was read, if any.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, string, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("puzzlebox")
	v.SetConfigType("yaml")

	// 3. An explicit --config path has the highest precedence for file-based configuration.
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	} else {
		if userConfigPath, err := DefaultConfigPath(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := DefaultConfigPath(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".") // Look for puzzlebox.yaml in current dir
	}

	// 4. Read in the primary config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", fmt.Errorf("read config: %w", err)
		}
	}

	// 5. Read from environment variables
	v.SetEnvPrefix("puzzlebox")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 6. Flags explicitly set on the command line win.
	if cmd != nil {
		for key, name := range FlagBindings {
			f := cmd.Flags().Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return c, "", fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("decode config: %w", err)
	}

	return c, v.ConfigFileUsed(), nil
}

// WriteConfigFile writes c as YAML to path, creating parent directories.
func WriteConfigFile[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}
