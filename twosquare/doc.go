// Package twosquare implements the vertical Two-Square cipher: digram
// substitution over two independently keyed 5×5 grids.
//
// What:
//
//   - The first letter of each digram is looked up in the top grid, the
//     second in the bottom grid; each keeps its own row and takes its
//     partner's column. Applying the rule twice restores the digram, so
//     the substitution is an involution and decryption runs the same
//     column swap over strict ciphertext pairs.
//   - A digram whose letters share a column passes through unchanged —
//     the well-known transparency of the two-square construction, kept
//     as-is rather than special-cased.
//
// Errors:
//
//   - square.ErrEmptyKey: either key lacks usable letters.
//
// Complexity: O(len(keys) + len(text)) time, O(1) grid memory.
package twosquare
