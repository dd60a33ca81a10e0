// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Puzzlebox using the
// Cobra library. It defines the root command, the shared configuration
// loading, and the Execute entry point.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/puzzlebox/buildvars"
	"github.com/toeirei/puzzlebox/internal/clip"
	"github.com/toeirei/puzzlebox/internal/config"
	"github.com/toeirei/puzzlebox/internal/i18n"
	"github.com/toeirei/puzzlebox/internal/logging"
	"github.com/toeirei/puzzlebox/internal/tui"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// Seams replaced in tests.
var (
	copyToClipboard = clip.Copy
	runTUI          = tui.Run
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// app carries the settings resolved in the root command's pre-run to every
// subcommand.
type app struct {
	cfg     config.Config
	cfgFile string // file the config was read from, if any
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "puzzlebox",
		Short: "Puzzlebox bundles a Vigenère cipher tool and the Tower of Hanoi.",
		Long: `Puzzlebox is a pair of small terminal programs:

  vigenere  encrypt or decrypt text with the Vigenère cipher
  hanoi     play the Tower of Hanoi, or print its optimal solution

Running without a subcommand in a terminal launches the interactive TUI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var explicit *string
			if cmd.Flags().Changed("config") {
				if cfgPath == "" {
					return errors.New("--config requires a path")
				}
				explicit = &cfgPath
			}
			return a.load(cmd, explicit)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdinIsTerminal() {
				return cmd.Help()
			}
			return runTUI(a.cfg)
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	// Define flags
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default is $XDG_CONFIG_HOME/puzzlebox/puzzlebox.yaml or ./puzzlebox.yaml)")
	cmd.PersistentFlags().String("lang", "en", `interface language ("en", "de")`)
	cmd.PersistentFlags().String("log-level", "warn", `log level ("debug", "info", "warn", "error")`)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(a.cfg)
		},
	}

	cmd.AddCommand(
		newVigenereCmd(a),
		newHanoiCmd(a),
		newConfigCmd(a),
		tuiCmd,
	)

	return cmd
}

// load resolves configuration for cmd and initializes i18n and logging.
func (a *app) load(cmd *cobra.Command, explicit *string) error {
	c, used, err := config.LoadConfig[config.Config](cmd, config.Defaults(), explicit)
	if err != nil {
		return errors.New(i18n.T("config.error_load", err))
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := logging.SetLevel(c.LogLevel); err != nil {
		return err
	}
	i18n.Init(c.Language)

	a.cfg = c
	a.cfgFile = used
	if used != "" {
		logging.Debugf("using config file %s", used)
	}
	return nil
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/puzzlebox" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, if no version was discovered, but a gitCommit was
	// provided via ldflags, show that to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

// printf writes to the command's output stream.
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// outln writes a line to the command's output stream.
func outln(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}
