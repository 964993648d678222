// Package main is the entry point for the framelab teaching CLI.
package main

import (
	"fmt"
	"os"

	"firestige.xyz/framelab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
