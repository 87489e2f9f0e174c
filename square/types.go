// Package square defines core types and sentinel errors for the
// polygraphic cipher foundation.
package square

import "errors"

// Sentinel errors for grid construction and lookup.
var (
	// ErrEmptyKey indicates a key containing no alphabetic characters
	// after normalization.
	ErrEmptyKey = errors.New("square: key must contain at least one letter")

	// ErrLetterNotInGrid indicates a lookup for a letter absent from the
	// grid. A full grid spans the whole merged alphabet, so this marks a
	// normalization defect upstream, not a recoverable user error.
	ErrLetterNotInGrid = errors.New("square: letter not present in key grid")
)

// Size is the side length of every key grid.
const Size = 5

// Digram is an ordered pair of uppercase letters consumed by one
// substitution step.
type Digram [2]byte

// String returns the two letters as a string.
func (d Digram) String() string {
	return string(d[:])
}

// Coord locates a letter inside one grid: Row and Col in [0, Size).
// Exactly one coordinate exists per letter per grid.
type Coord struct {
	Row, Col int
}
