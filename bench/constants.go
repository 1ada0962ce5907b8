// SPDX-License-Identifier: MIT

package bench

// Fixed benchmark configuration used by the matbench executable.
const (
	// MatrixSize is the side of both square operands.
	MatrixSize = 100
	// Iterations is the number of timed multiplications.
	Iterations = 3
	// Silent suppresses the per-iteration progress lines.
	Silent = false
	// Lang is the implementation tag in the CSV line.
	Lang = "go"
)

// Report literals.
const (
	csvPrefix     = "RESULT_CSV: "
	titleFormat   = "%s Matrix Multiplication Benchmark\n"
	titleRule     = "===================================="
	resultsHeader = "Benchmark Results:"
	resultsRule   = "------------------"
	hostUnknown   = "unavailable"
)
