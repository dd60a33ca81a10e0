// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	cfg "github.com/toeirei/puzzlebox/internal/config"
	"github.com/toeirei/puzzlebox/internal/hanoi"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("disks", hanoi.DefaultDisks, "")
	cmd.Flags().String("lang", "en", "")
	return cmd
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, used, err := cfg.LoadConfig[cfg.Config](newCmd(), cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if used != "" {
		t.Fatalf("expected no config file, got %q", used)
	}
	if c != cfg.Default() {
		t.Fatalf("expected defaults %+v, got %+v", cfg.Default(), c)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	yaml := "language: de\nhanoi:\n  disks: 3\n  start_peg: b\ncipher:\n  clipboard: false\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, used, err := cfg.LoadConfig[cfg.Config](newCmd(), cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if used != file {
		t.Fatalf("expected %q to be used, got %q", file, used)
	}
	if c.Language != "de" || c.Hanoi.Disks != 3 || c.Cipher.Clipboard {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.LogLevel != "warn" {
		t.Fatalf("expected default log level to survive, got %q", c.LogLevel)
	}
	if c.Hanoi.Start() != hanoi.PegB {
		t.Fatalf("expected start peg B, got %v", c.Hanoi.Start())
	}
}

func TestLoadConfig_MissingExplicitFileFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, _, err := cfg.LoadConfig[cfg.Config](newCmd(), cfg.Defaults(), &missing); err == nil {
		t.Fatalf("expected an error for a missing explicit config file")
	}
}

func TestLoadConfig_EnvAndFlagsOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PUZZLEBOX_HANOI_DISKS", "7")
	t.Setenv("PUZZLEBOX_LANGUAGE", "de")

	cmd := newCmd()
	if err := cmd.Flags().Set("lang", "en"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	c, _, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Hanoi.Disks != 7 {
		t.Fatalf("expected env to set disks to 7, got %d", c.Hanoi.Disks)
	}
	if c.Language != "en" {
		t.Fatalf("expected --lang to beat the environment, got %q", c.Language)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "puzzlebox.yaml")

	want := cfg.Default()
	want.Hanoi.Disks = 4
	want.Language = "de"
	if err := cfg.WriteConfigFile(&want, path); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	got, _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestValidate(t *testing.T) {
	if err := cfg.Default().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	bad := cfg.Default()
	bad.Hanoi.Disks = 0
	if err := bad.Validate(); !errors.Is(err, cfg.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for 0 disks, got %v", err)
	}

	bad = cfg.Default()
	bad.Hanoi.StartPeg = "Q"
	if err := bad.Validate(); !errors.Is(err, cfg.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown peg, got %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	p, err := cfg.DefaultConfigPath(false)
	if err != nil {
		t.Fatalf("DefaultConfigPath: %v", err)
	}
	if filepath.Base(p) != "puzzlebox.yaml" || filepath.Base(filepath.Dir(p)) != "puzzlebox" {
		t.Fatalf("unexpected user config path %q", p)
	}
}
