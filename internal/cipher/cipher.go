// Copyright (c) 2026 Puzzlebox Team
// Puzzlebox - terminal puzzles and ciphers
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet is every symbol that can be encrypted or decrypted. Its length is
// the modulus for all shift arithmetic.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const modulus = len(Alphabet)

// ErrInvalidKey is returned when a key has no usable letters or contains
// characters other than letters and spaces.
var ErrInvalidKey = errors.New("invalid key")

// ErrInvalidMode is returned by ParseMode for input that names neither mode.
var ErrInvalidMode = errors.New("invalid mode")

// Mode selects the direction of a translation.
type Mode int

const (
	ModeEncrypt Mode = iota
	ModeDecrypt
)

// String returns the lowercase verb for the mode ("encrypt" or "decrypt").
func (m Mode) String() string {
	switch m {
	case ModeEncrypt:
		return "encrypt"
	case ModeDecrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode reads a mode from user input. Only the first non-blank letter
// matters: anything starting with "e" encrypts, anything starting with "d"
// decrypts.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrInvalidMode
	}
	switch s[0] {
	case 'e':
		return ModeEncrypt, nil
	case 'd':
		return ModeDecrypt, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Key is a validated, uppercase Vigenère key. The zero value is not usable;
// build keys with NewKey.
type Key struct {
	letters string
}

// NewKey validates and normalizes raw key input. Letters are accepted in
// either case and spaces are ignored; any other character, or input without
// a single letter, yields ErrInvalidKey.
func NewKey(raw string) (Key, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r == ' ':
			continue
		case isUpper(r):
			b.WriteRune(r)
		case isLower(r):
			b.WriteRune(r - 'a' + 'A')
		default:
			return Key{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidKey, r)
		}
	}
	if b.Len() == 0 {
		return Key{}, fmt.Errorf("%w: key must contain at least one letter", ErrInvalidKey)
	}
	return Key{letters: b.String()}, nil
}

// String returns the normalized key letters.
func (k Key) String() string { return k.letters }

// Len returns the number of letters in the key.
func (k Key) Len() int { return len(k.letters) }

// Translate encrypts or decrypts message with k. It never fails: bytes
// outside the alphabet are copied as-is, so the result has exactly as many
// bytes as message and need not be valid UTF-8.
func (k Key) Translate(message string, mode Mode) string {
	if k.letters == "" {
		return message
	}

	var out strings.Builder
	out.Grow(len(message))
	cursor := 0

	for i := 0; i < len(message); i++ {
		c := message[i]
		upper, lower := isUpper(c), isLower(c)
		if !upper && !lower {
			out.WriteByte(c)
			continue
		}

		base := int(toUpper(c) - 'A')
		shift := int(k.letters[cursor] - 'A')

		var num int
		if mode == ModeDecrypt {
			num = ((base-shift)%modulus + modulus) % modulus
		} else {
			num = (base + shift) % modulus
		}

		sym := Alphabet[num]
		if lower {
			sym = sym - 'A' + 'a'
		}
		out.WriteByte(sym)

		cursor = (cursor + 1) % len(k.letters)
	}

	return out.String()
}

// Translate validates key and translates message in the given mode.
func Translate(message, key string, mode Mode) (string, error) {
	k, err := NewKey(key)
	if err != nil {
		return "", err
	}
	return k.Translate(message, mode), nil
}

// Encrypt is shorthand for Translate(message, key, ModeEncrypt).
func Encrypt(message, key string) (string, error) {
	return Translate(message, key, ModeEncrypt)
}

// Decrypt is shorthand for Translate(message, key, ModeDecrypt).
func Decrypt(message, key string) (string, error) {
	return Translate(message, key, ModeDecrypt)
}

func isUpper[T rune | byte](c T) bool { return c >= 'A' && c <= 'Z' }
func isLower[T rune | byte](c T) bool { return c >= 'a' && c <= 'z' }

func toUpper(c byte) byte {
	if isLower(c) {
		return c - 'a' + 'A'
	}
	return c
}
