// SPDX-License-Identifier: MIT

package bench

import "time"

// Trial is one timed multiplication.
type Trial struct {
	Elapsed time.Duration // wall-clock time of matrix.Mul only
	Trace   float64       // trace of the product, the per-trial checksum
}

// Result aggregates a whole run.
type Result struct {
	Lang         string
	Size         int
	Iterations   int
	InitTime     time.Duration // generation of both operands
	Trials       []Trial
	Total        time.Duration // sum of Trial.Elapsed
	Average      time.Duration // Total / Iterations
	OpsPerSecond float64       // Size³ / Average.Seconds()
}

// TotalMillis returns Total in fractional milliseconds.
func (r Result) TotalMillis() float64 { return Millis(r.Total) }

// AverageMillis returns the mean trial time in fractional milliseconds,
// computed from TotalMillis so the CSV fields stay consistent with each other.
func (r Result) AverageMillis() float64 {
	if r.Iterations <= 0 {
		return 0
	}

	return r.TotalMillis() / float64(r.Iterations)
}
