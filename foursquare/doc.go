// Package foursquare implements the Four-Square cipher: digram
// substitution across four 5×5 key grids arranged as a 2×2 block.
//
// What:
//
//   - Encrypt locates the first digram letter in the top-left grid and
//     the second in the bottom-right, then reads the ciphertext letters
//     from the top-right (first letter's row, second's column) and
//     bottom-left (second letter's row, first's column).
//   - Decrypt locates the ciphertext letters in the top-right and
//     bottom-left grids and reads the plaintext back from the top-left
//     and bottom-right.
//   - All four grids are independently keyed. The canonical cipher keys
//     only the top-right and bottom-left grids, leaving the other two
//     plain; this variant deliberately keeps four keys — the general
//     rule degenerates correctly when any grids coincide.
//
// Errors:
//
//   - square.ErrEmptyKey: any of the four keys lacks usable letters.
//
// Complexity: O(len(keys) + len(text)) time, O(1) grid memory.
package foursquare
