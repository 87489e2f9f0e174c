package playfair_test

import (
	"testing"

	"github.com/katalvlaran/cryptology/playfair"
	"github.com/katalvlaran/cryptology/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncrypt_CanonicalVector pins the classic Wheatstone example:
// key "playfair example", plaintext "hide the gold in the tree stump".
func TestEncrypt_CanonicalVector(t *testing.T) {
	enc, err := playfair.Encrypt("Hide the gold in the tree stump", "playfair example")
	require.NoError(t, err)
	assert.Equal(t, "BMODZBXDNABEKUDMUIXMMOUVIF", enc)

	dec, err := playfair.Decrypt(enc, "playfair example")
	require.NoError(t, err)
	assert.Equal(t, "HIDETHEGOLDINTHETREXESTUMP", dec)
}

// TestEncrypt_Monarchy pins the MONARCHY grid behavior, doubled-L split
// included: HELLO segments to HE LX LO.
func TestEncrypt_Monarchy(t *testing.T) {
	enc, err := playfair.Encrypt("HELLO", "MONARCHY")
	require.NoError(t, err)
	assert.Equal(t, "CFSUPM", enc)

	dec, err := playfair.Decrypt(enc, "MONARCHY")
	require.NoError(t, err)
	assert.Equal(t, "HELXLO", dec)
}

// TestKeyNormalization: case and duplicate letters in the key do not
// change the ciphertext.
func TestKeyNormalization(t *testing.T) {
	a, err := playfair.Encrypt("hello", "monarchy")
	require.NoError(t, err)
	b, err := playfair.Encrypt("HELLO", "MONARCHY")
	require.NoError(t, err)
	c, err := playfair.Encrypt("HELLO", "MONARCHYYY")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

// TestEmptyKey rejects unusable keys.
func TestEmptyKey(t *testing.T) {
	_, err := playfair.Encrypt("HELLO", "")
	assert.ErrorIs(t, err, square.ErrEmptyKey)

	_, err = playfair.Decrypt("HELLO", "123!@#")
	assert.ErrorIs(t, err, square.ErrEmptyKey)
}

// TestRoundTrip: decrypt(encrypt(p)) equals the segmented plaintext for
// texts exercising doubles, odd lengths, J letters, and punctuation.
func TestRoundTrip(t *testing.T) {
	texts := []string{
		"ATTACK AT DAWN",
		"balloon",
		"Jazz and juleps",
		"xx marks the spot",
		"The quick brown fox jumps over the lazy dog",
		"a",
	}

	for _, p := range texts {
		enc, err := playfair.Encrypt(p, "MONARCHY")
		require.NoError(t, err, "plaintext %q", p)
		dec, err := playfair.Decrypt(enc, "MONARCHY")
		require.NoError(t, err, "plaintext %q", p)

		assert.Equal(t, square.Join(square.Segment(p)), dec, "plaintext %q", p)
	}
}

// TestGeometryExhaustive classifies all 600 distinct-letter digrams of a
// fixed grid into exactly one geometry case and round-trips each through
// encrypt/decrypt.
func TestGeometryExhaustive(t *testing.T) {
	g, err := square.NewGrid("MONARCHY")
	require.NoError(t, err)

	letters := g.Letters()
	var sameRow, sameCol, rect int
	for i := 0; i < len(letters); i++ {
		for j := 0; j < len(letters); j++ {
			if i == j {
				continue
			}
			pair := string([]byte{letters[i], letters[j]})

			p1, err := g.Position(letters[i])
			require.NoError(t, err)
			p2, err := g.Position(letters[j])
			require.NoError(t, err)
			switch {
			case p1.Row == p2.Row:
				sameRow++
			case p1.Col == p2.Col:
				sameCol++
			default:
				rect++
			}

			enc, err := playfair.Encrypt(pair, "MONARCHY")
			require.NoError(t, err)
			require.Len(t, enc, 2)
			dec, err := playfair.Decrypt(enc, "MONARCHY")
			require.NoError(t, err)
			assert.Equal(t, pair, dec, "digram %s", pair)
		}
	}

	// 25 letters: per letter 4 same-row partners, 4 same-column partners,
	// 16 rectangle partners.
	assert.Equal(t, 100, sameRow)
	assert.Equal(t, 100, sameCol)
	assert.Equal(t, 400, rect)
}

// TestWrapAround: digrams on the last row/column wrap to the first.
func TestWrapAround(t *testing.T) {
	// MONARCHY grid row 0 is M O N A R: encrypting "AR" (cols 3,4) wraps
	// the second letter to column 0.
	enc, err := playfair.Encrypt("AR", "MONARCHY")
	require.NoError(t, err)
	assert.Equal(t, "RM", enc)

	// Column 0 is M C E L U: encrypting "LU" (rows 3,4) wraps to row 0.
	enc, err = playfair.Encrypt("LU", "MONARCHY")
	require.NoError(t, err)
	assert.Equal(t, "UM", enc)
}
