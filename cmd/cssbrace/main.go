// Package main provides the cssbrace CLI tool for checking brace balance in CSS stylesheets.
package main

import (
	"errors"
	"fmt"
	"os"
)

// errChecksFailed signals a completed run whose findings should fail the
// process. The report has already been printed.
var errChecksFailed = errors.New("checks failed")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
