package mono_test

import (
	"testing"

	"github.com/katalvlaran/cryptology/alphabet"
	"github.com/katalvlaran/cryptology/mono"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCaesarAlphabet rotates the base alphabet.
func TestCaesarAlphabet(t *testing.T) {
	assert.Equal(t, "defghijklmnopqrstuvwxyzabc", mono.CaesarAlphabet(alphabet.English, 3))
	assert.Equal(t, alphabet.English, mono.CaesarAlphabet(alphabet.English, 0))
	assert.Equal(t, alphabet.English, mono.CaesarAlphabet(alphabet.English, 26))
}

// TestAtbashAlphabet reverses the base alphabet.
func TestAtbashAlphabet(t *testing.T) {
	assert.Equal(t, "zyxwvutsrqponmlkjihgfedcba", mono.AtbashAlphabet(alphabet.English))
}

// TestAffineAlphabet permutes positions by (a·x + b) mod m and keeps the
// result duplicate-free for coprime multipliers.
func TestAffineAlphabet(t *testing.T) {
	got, err := mono.AffineAlphabet(alphabet.English, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, alphabet.English, got)

	got, err = mono.AffineAlphabet(alphabet.English, 5, 8)
	require.NoError(t, err)
	assert.NoError(t, alphabet.Validate(got))
	assert.Len(t, got, 26)

	_, err = mono.AffineAlphabet(alphabet.English, 2, 0)
	assert.ErrorIs(t, err, mono.ErrNotCoprime)
}

// TestKeywordAlphabet keys an alphabet in either case, and degrades to the
// base for an empty keyword (disk builders key one side at a time).
func TestKeywordAlphabet(t *testing.T) {
	assert.Equal(t, "zebracdfghijklmnopqstuvwxy", mono.KeywordAlphabet(alphabet.English, "zebra"))
	assert.Equal(t, "SECRTABDFGHIJKLMNOPQUVWXYZ", mono.KeywordAlphabet(alphabet.EnglishUpper, "secret"))
	assert.Equal(t, alphabet.English, mono.KeywordAlphabet(alphabet.English, ""))
}
