// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/toeirei/puzzlebox/internal/cipher"
)

func TestVigenere_FlagsOnly(t *testing.T) {
	copied := fakeClipboard(t, nil)
	out, err := runCLI(t, "", "vigenere", "encrypt", "--key", "LEMON", "--message", "ATTACKATDAWN", "--copy=false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Encrypted message:\nLXFOPVEFRNHR\n") {
		t.Fatalf("missing ciphertext in output: %q", out)
	}
	if strings.Contains(out, "Vigenère Cipher") {
		t.Fatalf("banner should not be printed when nothing is asked: %q", out)
	}
	if *copied != "" {
		t.Fatalf("clipboard should be untouched with --copy=false, got %q", *copied)
	}
}

func TestVigenere_CopiesToClipboard(t *testing.T) {
	copied := fakeClipboard(t, nil)
	out, err := runCLI(t, "", "vigenere", "decrypt", "-k", "lemon", "-m", "LXFOPVEFRNHR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *copied != "ATTACKATDAWN" {
		t.Fatalf("expected plaintext on clipboard, got %q", *copied)
	}
	if !strings.Contains(out, "Full text copied to clipboard.") {
		t.Fatalf("missing copy confirmation: %q", out)
	}
}

func TestVigenere_ClipboardFailureIsNotFatal(t *testing.T) {
	fakeClipboard(t, errors.New("no clipboard"))
	out, err := runCLI(t, "", "vigenere", "encrypt", "--key", "KEY", "--message", "Hello, World!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Rijvs, Uyvjn!") {
		t.Fatalf("missing ciphertext: %q", out)
	}
	if strings.Contains(out, "copied") {
		t.Fatalf("copy confirmation printed despite failure: %q", out)
	}
}

func TestVigenere_InteractiveRetries(t *testing.T) {
	fakeClipboard(t, nil)
	in := "x\ndecrypt\nb4\nle mon\nLXFOPVEFRNHR\n"
	out, err := runCLI(t, in, "vigenere", "--copy=false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"Vigenère Cipher",
		"Please enter the letter e or d.",
		"The key may only contain letters and spaces",
		"Enter the message to decrypt.",
		"Decrypted message:\nATTACKATDAWN\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestVigenere_QuitAtModePrompt(t *testing.T) {
	out, err := runCLI(t, "quit\n", "vigenere")
	if err != nil {
		t.Fatalf("QUIT should exit cleanly, got %v", err)
	}
	if !strings.Contains(out, "Thanks for playing!") {
		t.Fatalf("missing goodbye: %q", out)
	}
	if strings.Contains(out, "message:") {
		t.Fatalf("nothing should be translated after QUIT: %q", out)
	}
}

func TestVigenere_InputClosed(t *testing.T) {
	_, err := runCLI(t, "e\n", "vigenere")
	if !errors.Is(err, errInputClosed) {
		t.Fatalf("expected errInputClosed, got %v", err)
	}
}

func TestVigenere_BadFlags(t *testing.T) {
	if _, err := runCLI(t, "", "vigenere", "encrypt", "--key", "b4", "--message", "x"); !errors.Is(err, cipher.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
	if _, err := runCLI(t, "", "vigenere", "scramble", "--key", "b", "--message", "x"); !errors.Is(err, cipher.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}

func TestVigenere_German(t *testing.T) {
	out, err := runCLI(t, "", "--lang", "de", "vigenere", "e", "--key", "LEMON", "--message", "ATTACKATDAWN", "--copy=false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Verschlüsselte Nachricht:") {
		t.Fatalf("expected German output, got %q", out)
	}
}
