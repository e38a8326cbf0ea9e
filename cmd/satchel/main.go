// Package main provides the satchel CLI, a small front-end for the
// collection and strutil packages.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitNoMatch = 1
	exitError   = 2
)

// errNoMatch signals a false boolean result from the str commands. The
// result has already been printed; only the exit code carries it further.
var errNoMatch = errors.New("no match")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errNoMatch) {
			os.Exit(exitNoMatch)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
}
