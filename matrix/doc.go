// Package matrix provides a row-major dense float64 matrix and the naive
// kernels used by the multiplication benchmark.
//
// The matrix package provides:
//
//   - Dense: a flat, cache-friendly row-major buffer with bounds-checked
//     At/Set that return errors instead of panicking.
//   - NewRandom: an n×n matrix filled with independent draws from U[0,1).
//   - Mul: the classical i→j→k triple loop, intentionally unoptimized so that
//     timings stay comparable with implementations in other languages.
//   - Trace: the diagonal sum used as a cheap checksum of a product.
//
// All sentinel errors live in errors.go and are matched with errors.Is.
//
// See the examples in this package and bench for usage patterns.
package matrix
