// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/toeirei/puzzlebox/internal/i18n"
)

// errQuit is returned by prompter.ask when the user types the QUIT sentinel.
// Commands treat it as a successful exit.
var errQuit = errors.New("quit requested")

// errInputClosed is returned when input ends while a prompt is waiting.
var errInputClosed = errors.New("input closed")

// prompter reads one line per question from an input stream, the way the
// interactive programs have always worked: print the question, print "> ",
// read a line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// say prints each line of text.
func (p *prompter) say(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(p.out, l)
	}
}

// ask prints the question and returns the next input line without its line
// ending. Typing QUIT in any case yields errQuit.
func (p *prompter) ask(question string) (string, error) {
	if question != "" {
		fmt.Fprintln(p.out, question)
	}
	fmt.Fprint(p.out, i18n.T("prompt.marker"))
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		fmt.Fprintln(p.out)
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %s", errInputClosed, i18n.T("errors.input_closed"))
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if strings.EqualFold(strings.TrimSpace(line), "QUIT") {
		return "", errQuit
	}
	return line, nil
}

// quitOrErr turns errQuit into a goodbye message and a nil error.
func (p *prompter) quitOrErr(err error) error {
	if errors.Is(err, errQuit) {
		p.say(i18n.T("common.goodbye"))
		return nil
	}
	return err
}
