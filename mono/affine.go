package mono

import "strings"

// AffineEncrypt applies E(x) = (a·x + b) mod m to each letter position,
// where m is the alphabet length. a must be coprime with m or the
// transform cannot be inverted; such keys yield ErrNotCoprime.
// Complexity: O(len(text)).
func AffineEncrypt(text string, a, b int, opts ...Option) (string, error) {
	c, err := settings(opts)
	if err != nil {
		return "", err
	}
	cipher, err := affineAlphabet(c.alphabet, a, b)
	if err != nil {
		return "", err
	}
	return translate(strings.ToLower(text), c.alphabet, cipher), nil
}

// AffineDecrypt applies D(y) = a⁻¹·(y − b) mod m, reversing AffineEncrypt
// for the same keys and alphabet.
func AffineDecrypt(text string, a, b int, opts ...Option) (string, error) {
	c, err := settings(opts)
	if err != nil {
		return "", err
	}
	cipher, err := affineAlphabet(c.alphabet, a, b)
	if err != nil {
		return "", err
	}
	return translate(strings.ToLower(text), cipher, c.alphabet), nil
}

// affineAlphabet builds the cipher alphabet whose position i holds the
// letter at (a·i + b) mod m, after checking gcd(a, m) == 1.
func affineAlphabet(base string, a, b int) (string, error) {
	rs := []rune(base)
	m := len(rs)
	if gcd(a, m) != 1 {
		return "", ErrNotCoprime
	}
	out := make([]rune, m)
	for i := 0; i < m; i++ {
		out[i] = rs[mod(a*i+b, m)]
	}
	return string(out), nil
}

// gcd computes the greatest common divisor of two ints (sign-insensitive).
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mod is the always-non-negative remainder of a by m.
func mod(a, m int) int {
	return ((a % m) + m) % m
}
