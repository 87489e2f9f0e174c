package square_test

import (
	"testing"

	"github.com/katalvlaran/cryptology/square"
)

// BenchmarkNewGrid measures grid construction, the per-call setup cost of
// every polygraphic encrypt/decrypt.
func BenchmarkNewGrid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := square.NewGrid("PLAYFAIR EXAMPLE"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSegment measures the normalization and pairing walk.
func BenchmarkSegment(b *testing.B) {
	const text = "The quick brown fox jumps over the lazy dog, again and again and again."
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		square.Segment(text)
	}
}
