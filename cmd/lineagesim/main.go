// Command lineagesim simulates single-cell expression counts along a
// branching lineage and writes them as TSV tables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
