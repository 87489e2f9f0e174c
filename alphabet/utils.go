package alphabet

import (
	"math"
	"strings"
)

// Dedup removes duplicate runes from s, preserving first occurrence.
// Complexity: O(len(s)).
func Dedup(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	seen := make(map[rune]bool, len(s))
	for _, r := range s {
		if !seen[r] {
			b.WriteRune(r)
			seen[r] = true
		}
	}
	return b.String()
}

// Shifted rotates s left by shift positions, wrapping around. Negative
// shifts rotate right. Shifted("abc", 1) == "bca".
func Shifted(s string, shift int) string {
	rs := []rune(s)
	n := len(rs)
	if n == 0 {
		return s
	}
	shift = ((shift % n) + n) % n
	return string(rs[shift:]) + string(rs[:shift])
}

// Reversed returns s with its runes in reverse order.
func Reversed(s string) string {
	rs := []rune(s)
	for l, r := 0, len(rs)-1; l < r; l, r = l+1, r-1 {
		rs[l], rs[r] = rs[r], rs[l]
	}
	return string(rs)
}

// SquareSize returns the side of the smallest square holding n characters:
// ceil(sqrt(n)). SquareSize(25) == 5, SquareSize(26) == 6.
func SquareSize(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// FitSquare pads s with pad (repeated) or truncates it so that the result
// is exactly size² runes long.
func FitSquare(s string, size int, pad rune) string {
	target := size * size
	rs := []rune(s)
	if len(rs) >= target {
		return string(rs[:target])
	}
	var b strings.Builder
	b.WriteString(s)
	for n := len(rs); n < target; n++ {
		b.WriteRune(pad)
	}
	return b.String()
}
