// Command cassowary-vfl parses a Visual Format Language file against a
// set of named views and metrics, feeds the resulting constraints into a
// cassowary.Solver, and prints the solved layout. It exists to exercise
// the cassowary/vfl libraries end to end, the way go-corset's cmd/
// binaries exercise pkg/corset.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
