// Package mono defines options and sentinel errors for the
// monoalphabetic ciphers.
package mono

import (
	"errors"
	"strings"

	"github.com/katalvlaran/cryptology/alphabet"
)

// Sentinel errors for monoalphabetic operations.
var (
	// ErrNotCoprime indicates an affine multiplier that shares a factor
	// with the alphabet length, making the transform non-invertible.
	ErrNotCoprime = errors.New("mono: multiplier 'a' must be coprime with the alphabet length")

	// ErrEmptyKey indicates a keyword with no usable alphabet letters.
	ErrEmptyKey = errors.New("mono: keyword must contain at least one alphabet letter")
)

// Option configures a cipher call. The zero configuration uses
// alphabet.English.
type Option func(*config)

type config struct {
	alphabet string
}

// WithAlphabet overrides the working alphabet for one call. The override
// must be non-empty and duplicate-free.
func WithAlphabet(s string) Option {
	return func(c *config) { c.alphabet = s }
}

// settings resolves options against the defaults and validates the
// resulting alphabet.
func settings(opts []Option) (config, error) {
	c := config{alphabet: alphabet.English}
	for _, o := range opts {
		o(&c)
	}
	if err := alphabet.Validate(c.alphabet); err != nil {
		return config{}, err
	}
	return c, nil
}

// translate maps every rune of text found in from onto the rune at the
// same index of to. Runes absent from from pass through unchanged.
// from and to must be equal-length permutations of each other's domain.
func translate(text, from, to string) string {
	m := make(map[rune]rune, len(from))
	tr := []rune(to)
	for i, r := range []rune(from) {
		m[r] = tr[i]
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if sub, ok := m[r]; ok {
			b.WriteRune(sub)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
