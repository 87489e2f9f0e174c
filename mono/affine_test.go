package mono_test

import (
	"testing"

	"github.com/katalvlaran/cryptology/mono"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAffineEncrypt pins the textbook a=5, b=8 vector.
func TestAffineEncrypt(t *testing.T) {
	enc, err := mono.AffineEncrypt("HELLO", 5, 8)
	require.NoError(t, err)
	assert.Equal(t, "rclla", enc)

	dec, err := mono.AffineDecrypt("rclla", 5, 8)
	require.NoError(t, err)
	assert.Equal(t, "hello", dec)
}

// TestAffineNotCoprime rejects multipliers sharing a factor with the
// alphabet length (26 = 2·13).
func TestAffineNotCoprime(t *testing.T) {
	for _, a := range []int{0, 2, 13, 26, -4} {
		_, err := mono.AffineEncrypt("hello", a, 1)
		assert.ErrorIs(t, err, mono.ErrNotCoprime, "a=%d", a)

		_, err = mono.AffineDecrypt("hello", a, 1)
		assert.ErrorIs(t, err, mono.ErrNotCoprime, "a=%d", a)
	}
}

// TestAffineRoundTrip checks identity across several valid key pairs.
func TestAffineRoundTrip(t *testing.T) {
	const text = "the quick brown fox"
	keys := []struct{ a, b int }{{1, 0}, {3, 7}, {7, 3}, {11, 20}, {25, 25}}

	for _, k := range keys {
		enc, err := mono.AffineEncrypt(text, k.a, k.b)
		require.NoError(t, err)
		dec, err := mono.AffineDecrypt(enc, k.a, k.b)
		require.NoError(t, err)
		assert.Equal(t, text, dec, "a=%d b=%d", k.a, k.b)
	}
}

// TestAffineIdentityKey leaves text unchanged for a=1, b=0.
func TestAffineIdentityKey(t *testing.T) {
	enc, err := mono.AffineEncrypt("hello", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", enc)
}
