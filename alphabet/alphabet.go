package alphabet

import "errors"

// ErrBadAlphabet indicates an empty alphabet or one with duplicate runes.
var ErrBadAlphabet = errors.New("alphabet: alphabet must be non-empty with unique characters")

// Standard alphabets. Monoalphabetic ciphers work lowercase by convention;
// polygraphic ciphers work uppercase over the 25-letter merged set.
const (
	// English is the default 26-letter lowercase alphabet.
	English = "abcdefghijklmnopqrstuvwxyz"

	// EnglishUpper is the uppercase counterpart of English.
	EnglishUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// PlayfairBase is the 25-letter uppercase alphabet with J merged into I,
	// used as the base set for every 5×5 key grid.
	PlayfairBase = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

	// EnglishWithDigits extends English to 36 characters for 6×6 squares.
	EnglishWithDigits = "abcdefghijklmnopqrstuvwxyz0123456789"

	// Digits is the ten decimal digits.
	Digits = "0123456789"
)

// Validate reports ErrBadAlphabet if s is empty or contains a duplicate
// rune. Every cipher entry point that accepts an override calls this once.
// Complexity: O(len(s)).
func Validate(s string) error {
	if len(s) == 0 {
		return ErrBadAlphabet
	}
	seen := make(map[rune]bool, len(s))
	for _, r := range s {
		if seen[r] {
			return ErrBadAlphabet
		}
		seen[r] = true
	}
	return nil
}
