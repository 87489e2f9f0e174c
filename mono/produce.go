package mono

import "github.com/katalvlaran/cryptology/alphabet"

// The *Alphabet producers apply a monoalphabetic cipher to the alphabet
// itself. The resulting permuted strings seed keyed Polybius grids
// (square.NewGridFromAlphabet) and Chaocipher disks
// (chaocipher.CipherAlphabets).

// CaesarAlphabet returns base rotated left by shift positions.
func CaesarAlphabet(base string, shift int) string {
	return alphabet.Shifted(base, shift)
}

// AtbashAlphabet returns base reversed.
func AtbashAlphabet(base string) string {
	return alphabet.Reversed(base)
}

// AffineAlphabet returns base permuted by E(x) = (a·x + b) mod m.
// Fails with ErrNotCoprime when gcd(a, len(base)) != 1.
func AffineAlphabet(base string, a, b int) (string, error) {
	return affineAlphabet(base, a, b)
}

// KeywordAlphabet returns the keyed alphabet: deduplicated keyword letters
// first, remaining base letters after. Unlike KeywordEncrypt, an empty
// keyword is allowed here and yields base unchanged, so callers building
// disk pairs may key only one side.
func KeywordAlphabet(base, keyword string) string {
	keyed, err := keyedAlphabet(base, keyword)
	if err != nil {
		return base
	}
	return keyed
}
