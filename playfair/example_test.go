// File: playfair/example_test.go
package playfair_test

import (
	"fmt"

	"github.com/katalvlaran/cryptology/playfair"
)

// ExampleEncrypt reproduces the classic Wheatstone demonstration.
// Note the X filler splitting the doubled E of "tree" and how decryption
// keeps it: padding is lossy by design.
func ExampleEncrypt() {
	enc, _ := playfair.Encrypt("Hide the gold in the tree stump", "playfair example")
	dec, _ := playfair.Decrypt(enc, "playfair example")
	fmt.Println(enc)
	fmt.Println(dec)

	// Output:
	// BMODZBXDNABEKUDMUIXMMOUVIF
	// HIDETHEGOLDINTHETREXESTUMP
}
