// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/puzzlebox/internal/board"
	"github.com/toeirei/puzzlebox/internal/hanoi"
	"github.com/toeirei/puzzlebox/internal/i18n"
	"github.com/toeirei/puzzlebox/internal/logging"
)

func newHanoiCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hanoi",
		Short: "Play the Tower of Hanoi",
		Long: `Play the Tower of Hanoi on the command line. Each turn, enter two peg
letters such as AB to move the top disk of A onto B. Type QUIT to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return playHanoi(cmd, a)
		},
	}

	cmd.PersistentFlags().Int("disks", hanoi.DefaultDisks, fmt.Sprintf("number of disks (1-%d)", hanoi.MaxDisks))
	cmd.PersistentFlags().String("start", "A", "peg the tower starts on (A, B or C)")

	cmd.AddCommand(newHanoiSolveCmd(a))
	return cmd
}

func playHanoi(cmd *cobra.Command, a *app) error {
	start := a.cfg.Hanoi.Start()
	state, err := hanoi.NewState(a.cfg.Hanoi.Disks, start)
	if err != nil {
		return err
	}
	logging.Debugf("new game: %d disks on %s", state.Disks(), start)

	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	p.say(i18n.T("hanoi.banner"), i18n.T("common.quit_hint"), "")

	for {
		printf(cmd, "%s\n", board.Plain(state))
		if state.IsSolved(start) {
			p.say(i18n.T("hanoi.solved"), i18n.T("hanoi.move_count", state.Moves(), hanoi.MinMoves(state.Disks())))
			return nil
		}

		next, err := askMove(p, state)
		if err != nil {
			return p.quitOrErr(err)
		}
		state = next
	}
}

// askMove prompts until the player enters a legal move and returns the
// resulting state.
func askMove(p *prompter, s hanoi.State) (hanoi.State, error) {
	for {
		token, err := p.ask(i18n.T("hanoi.prompt_move"))
		if err != nil {
			return s, err
		}
		m, err := hanoi.ParseMove(token)
		if err != nil {
			p.say(i18n.T("hanoi.invalid_move"))
			continue
		}
		next, err := s.Apply(m)
		if err != nil {
			logging.Debugf("rejected %v", err)
			p.say(moveProblem(err))
			continue
		}
		return next, nil
	}
}

// moveProblem returns the message shown for a rejected move.
func moveProblem(err error) string {
	switch {
	case errors.Is(err, hanoi.ErrEmptySource):
		return i18n.T("hanoi.empty_source")
	case errors.Is(err, hanoi.ErrDiskTooLarge):
		return i18n.T("hanoi.disk_too_large")
	default:
		return i18n.T("hanoi.invalid_move")
	}
}

func newHanoiSolveCmd(a *app) *cobra.Command {
	var target string
	var show bool

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the optimal solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.Hanoi.Disks
			from := a.cfg.Hanoi.Start()
			to := hanoi.PegC
			if from == hanoi.PegC {
				to = hanoi.PegB
			}
			if target != "" {
				t, err := hanoi.ParsePeg(target)
				if err != nil {
					return err
				}
				to = t
			}
			if to == from {
				return fmt.Errorf("%w: target peg %s is the start peg", hanoi.ErrInvalidMove, to)
			}

			moves := hanoi.Solve(n, from, to)
			outln(cmd, i18n.T("hanoi.solve_header", n, from, to, len(moves)))

			state, err := hanoi.NewState(n, from)
			if err != nil {
				return err
			}
			if show {
				printf(cmd, "%s\n", board.Plain(state))
			}
			for i, m := range moves {
				printf(cmd, "%4d. %s\n", i+1, m)
				if !show {
					continue
				}
				if state, err = state.Apply(m); err != nil {
					return err
				}
				printf(cmd, "%s\n", board.Plain(state))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "peg to move the tower to (default C, or B when starting on C)")
	cmd.Flags().BoolVar(&show, "show", false, "draw the board after every move")
	return cmd
}
