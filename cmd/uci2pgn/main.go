// Command uci2pgn reads UCI moves from stdin, one per line, and prints the game as PGN.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "uci2pgn: %v\n", err)
		os.Exit(1)
	}
}
