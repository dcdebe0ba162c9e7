// Command cbrsa generates RSA keys, runs raw RSA round trips and compares
// modular exponentiation backends.
package main

import (
	"os"
)

func main() {
	// On failure cobra prints the error, so we only need a non-zero status.
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
