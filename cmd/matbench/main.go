// Command matbench times naive 100×100 matrix multiplication and prints a
// human-readable report plus a RESULT_CSV line for cross-language comparison.
//
// It takes no flags: size, iteration count and verbosity are the constants
// in package bench. The exit status is 0 on success and 1 when the run fails.
//
// Usage:
//
//	go run ./cmd/matbench 2>results.csv
package main

import (
	"io"
	"log"
	"os"

	"github.com/katalvlaran/matbench/bench"
)

func main() {
	os.Exit(run(os.Stderr))
}

// run executes the benchmark and returns the process exit status.
// Diagnostics go to errw; opts are empty in production.
func run(errw io.Writer, opts ...bench.Option) int {
	logger := log.New(errw, "matbench: ", 0)
	if _, err := bench.Run(opts...); err != nil {
		logger.Printf("benchmark failed: %v", err)
		return 1
	}

	return 0
}
