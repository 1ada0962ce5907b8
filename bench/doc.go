// Package bench times naive square-matrix multiplication.
//
// Run generates two random MatrixSize×MatrixSize matrices, multiplies them
// Iterations times with matrix.Mul, and reports per-iteration time and trace,
// the total and average time, and throughput as size³ divided by the average
// seconds per multiplication.
//
// The report ends with a single machine-readable line
//
//	RESULT_CSV: go,<size>,<iterations>,<total_ms>,<avg_ms>
//
// written to stdout and once more to stderr, in the same format every
// language port of this benchmark emits, so collectors can grep either stream.
package bench
