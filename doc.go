// Package matbench measures naive square-matrix multiplication throughput.
//
// It is one port of a cross-language benchmark: every port generates two
// random 100×100 matrices, multiplies them three times with the textbook
// triple loop, and prints the same RESULT_CSV line so results can be
// collected side by side.
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/       — row-major Dense, NewRandom, naive Mul, Trace
//	bench/        — timing harness, report and CSV line
//	hostinfo/     — best-effort CPU/memory description for the report header
//	cmd/matbench/ — the executable; no flags, fixed constants
//
//	go run github.com/katalvlaran/matbench/cmd/matbench
package matbench
