// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"time"

	"github.com/katalvlaran/matbench/matrix"
)

// Run executes the benchmark and writes the report.
//
// Implementation:
//   - Stage 1: resolve options; print the header.
//   - Stage 2: generate both operands, timing the generation.
//   - Stage 3: Iterations times, time one matrix.Mul; take the trace outside the timed region.
//   - Stage 4: derive total, average and ops/s; print the summary, then the CSV line on stderr.
//
// Errors:
//   - ErrInvalidConfig for bad options.
//   - matrix errors from generation or multiplication (not expected with valid options).
//   - ErrWrite when stdout or stderr rejects a write; the Result is still returned.
func Run(opts ...Option) (Result, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Lang:       cfg.lang,
		Size:       cfg.size,
		Iterations: cfg.iterations,
		Trials:     make([]Trial, 0, cfg.iterations),
	}
	out := &printer{w: cfg.stdout}
	out.header(cfg)

	out.println("Initializing matrices...")
	start := time.Now()
	a, err := matrix.NewRandom(cfg.size, cfg.rng)
	if err != nil {
		return res, fmt.Errorf("bench: operand A: %w", err)
	}
	b, err := matrix.NewRandom(cfg.size, cfg.rng)
	if err != nil {
		return res, fmt.Errorf("bench: operand B: %w", err)
	}
	res.InitTime = time.Since(start)
	out.printf("Initialization completed in %.2f ms\n", Millis(res.InitTime))
	out.println("")

	out.println("Running benchmark...")
	var (
		c       *matrix.Dense
		tr      float64
		elapsed time.Duration
	)
	for it := 0; it < cfg.iterations; it++ {
		if !cfg.silent {
			out.printf("Iteration %d/%d...\n", it+1, cfg.iterations)
		}

		start = time.Now()
		c, err = matrix.Mul(a, b)
		elapsed = time.Since(start)
		if err != nil {
			return res, fmt.Errorf("bench: iteration %d: %w", it+1, err)
		}
		res.Total += elapsed

		if tr, err = matrix.Trace(c); err != nil {
			return res, fmt.Errorf("bench: iteration %d: %w", it+1, err)
		}
		t := Trial{Elapsed: elapsed, Trace: tr}
		res.Trials = append(res.Trials, t)
		if !cfg.silent {
			out.trial(t)
		}
	}

	res.Average = res.Total / time.Duration(cfg.iterations)
	res.OpsPerSecond = OpsPerSecond(cfg.size, res.Average)

	out.summary(res)
	errOut := &printer{w: cfg.stderr}
	errOut.println(FormatCSV(res))
	out.println("Benchmark completed.")

	if out.err != nil {
		return res, fmt.Errorf("%w: stdout: %w", ErrWrite, out.err)
	}
	if errOut.err != nil {
		return res, fmt.Errorf("%w: stderr: %w", ErrWrite, errOut.err)
	}

	return res, nil
}
