// Package cryptology is your playground for classical ciphers — from
// single-alphabet substitutions to keyed digram grids and rotating
// disks.
//
// 🚀 What is cryptology?
//
//	A pure-Go library of historical ciphers that brings together:
//		• Monoalphabetic family: Caesar, Atbash, ROT13, Keyword, Affine
//		• Digram substitution: Playfair, Two-Square, Four-Square
//		• Polyalphabetic: Chaocipher with composable disk alphabets
//		• Alphabet utilities: dedup, shift, reverse, square sizing
//
// ✨ Why choose cryptology?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Faithful mechanics – grids, fillers and disk permutations as the
//     historical machines did them
//   - Composable – mono-cipher alphabets seed Polybius grids and
//     Chaocipher disks alike
//   - Pure functions – no state between calls, safe for concurrent use
//
// Under the hood, everything is organized into small packages:
//
//	alphabet/   — named alphabet constants & pure string utilities
//	mono/       — the five monoalphabetic ciphers + alphabet producers
//	square/     — 5×5 keyed grid, digram segmentation, normalization
//	playfair/   — single-grid digram cipher
//	twosquare/  — two vertically stacked grids
//	foursquare/ — four independently keyed grids
//	chaocipher/ — two rotating disks, permuted per character
//	cmd/        — the cryptology command line tool
//
// Quick ASCII example, a Playfair grid keyed with MONARCHY:
//
//	M O N A R
//	C H Y B D
//	E F G I K
//	L P Q S T
//	U V W X Z
//
// None of these ciphers is secure by modern standards; they are here
// for study, puzzles and history.
//
//	go get github.com/katalvlaran/cryptology
package cryptology
