// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/toeirei/puzzlebox/internal/cipher"
	"github.com/toeirei/puzzlebox/internal/i18n"
	"github.com/toeirei/puzzlebox/internal/logging"
)

func newVigenereCmd(a *app) *cobra.Command {
	var keyText, message string

	cmd := &cobra.Command{
		Use:       "vigenere [encrypt|decrypt]",
		Aliases:   []string{"cipher"},
		Short:     "Encrypt or decrypt a message with the Vigenère cipher",
		Long:      "Encrypt or decrypt a message with the Vigenère cipher. Values not given as arguments or flags are asked for interactively; type QUIT at any prompt to exit.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"encrypt", "decrypt"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

			haveMessage := cmd.Flags().Changed("message")
			interactive := len(args) == 0 || !cmd.Flags().Changed("key") || !haveMessage
			if interactive {
				p.say(i18n.T("vigenere.banner"), i18n.T("common.quit_hint"), "")
			}

			var mode cipher.Mode
			var err error
			if len(args) == 1 {
				if mode, err = cipher.ParseMode(args[0]); err != nil {
					return err
				}
			} else if mode, err = askMode(p); err != nil {
				return p.quitOrErr(err)
			}

			var key cipher.Key
			if cmd.Flags().Changed("key") {
				if key, err = cipher.NewKey(keyText); err != nil {
					return err
				}
			} else if key, err = askKey(p); err != nil {
				return p.quitOrErr(err)
			}

			if !haveMessage {
				if message, err = p.ask(i18n.T("vigenere.prompt_message_" + mode.String())); err != nil {
					return p.quitOrErr(err)
				}
			}

			translated := key.Translate(message, mode)
			logging.Debugf("%s %d characters with a %d letter key", mode, len(message), key.Len())
			outln(cmd, i18n.T("vigenere.result_"+mode.String()))
			outln(cmd, translated)

			if a.cfg.Cipher.Clipboard {
				if err := copyToClipboard(translated); err != nil {
					logging.Debugf("clipboard copy skipped: %v", err)
				} else {
					outln(cmd, i18n.T("vigenere.copied"))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyText, "key", "k", "", "cipher key (letters and spaces)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to translate")
	cmd.Flags().Bool("copy", true, "copy the result to the clipboard (default from cipher.clipboard)")

	return cmd
}

// askMode repeats the mode question until the answer starts with e or d.
func askMode(p *prompter) (cipher.Mode, error) {
	for {
		answer, err := p.ask(i18n.T("vigenere.prompt_mode"))
		if err != nil {
			return 0, err
		}
		mode, err := cipher.ParseMode(answer)
		if err == nil {
			return mode, nil
		}
		p.say(i18n.T("vigenere.invalid_mode"))
	}
}

// askKey repeats the key question until a usable key is entered.
func askKey(p *prompter) (cipher.Key, error) {
	for {
		answer, err := p.ask(i18n.T("vigenere.prompt_key"))
		if err != nil {
			return cipher.Key{}, err
		}
		key, err := cipher.NewKey(answer)
		if err == nil {
			return key, nil
		}
		p.say(i18n.T("vigenere.invalid_key"))
	}
}
