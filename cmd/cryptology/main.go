// cryptology is a command line front end for the classical cipher
// packages: Playfair, Two-Square, Four-Square, Chaocipher and the
// monoalphabetic family.
package main

func main() {
	Execute()
}
