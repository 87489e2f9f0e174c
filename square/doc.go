// Package square is the shared foundation of the polygraphic ciphers:
// 5×5 key grids, letter coordinates, and digram segmentation.
//
// What:
//
//   - Grid: a 5×5 arrangement of the 25 uppercase letters (J merged into
//     I), built deterministically from a keyword — deduplicated key
//     letters first, unused base letters after, row-major. Immutable once
//     built, with an O(1) letter→(row,col) index.
//   - NewGridFromAlphabet additionally accepts a custom base alphabet,
//     letting cipher-produced alphabets (mono.CaesarAlphabet and friends)
//     seed the grid.
//   - Normalize: the one normalization step every polygraphic entry point
//     uses — uppercase, strip non-letters, J→I.
//   - Segment: the encrypt-side walk — doubled letters inside a forming
//     pair are split with a filler (X, or Q when padding an X), and a
//     trailing single letter is completed the same way.
//   - Pairs: the decrypt-side walk — strict consecutive pairing with
//     final-letter padding only. Ciphertext from the two- and four-square
//     ciphers may legally contain a doubled pair; re-splitting it would
//     corrupt the inverse transform.
//
// Why:
//
//   - Playfair, Two-Square, and Four-Square all share exactly this
//     machinery; keeping it in one place guarantees the three ciphers
//     normalize and pair text identically.
//
// Errors:
//
//   - ErrEmptyKey: a key with no usable letters after normalization.
//   - ErrLetterNotInGrid: internal invariant violation — a normalized
//     letter missing from a full grid indicates an upstream
//     normalization bug, never a user error.
//
// Complexity: grid construction O(len(key)+25); lookups O(1);
// segmentation O(len(text)).
package square
