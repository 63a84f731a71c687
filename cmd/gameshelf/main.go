// Package main provides the gameshelf CLI: a local play-log tracker with a
// portable export/import pipeline.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
