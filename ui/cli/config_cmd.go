// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/puzzlebox/internal/config"
	"github.com/toeirei/puzzlebox/internal/i18n"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var path string
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := path
			if target == "" {
				p, err := config.DefaultConfigPath(false)
				if err != nil {
					return err
				}
				target = p
			}
			if _, err := os.Stat(target); err == nil && !force {
				return errors.New(i18n.T("config.exists", target))
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat %s: %w", target, err)
			}
			if err := config.WriteConfigFile(&a.cfg, target); err != nil {
				return err
			}
			outln(cmd, i18n.T("config.written", target))
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", "file to write (default is the user config location)")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfgFile != "" {
				outln(cmd, i18n.T("config.source", a.cfgFile))
			} else {
				outln(cmd, i18n.T("config.defaults_only"))
			}
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			printf(cmd, "%s", data)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
