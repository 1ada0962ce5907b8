// SPDX-License-Identifier: MIT
// Package: bench
//
// options.go — run configuration and deterministic defaults.
//
// Defaults reproduce the executable exactly:
//   • size       = MatrixSize
//   • iterations = Iterations
//   • silent     = Silent
//   • rng        = nil (process-wide math/rand source; WithSeed makes one per Run)
//   • stdout     = os.Stdout, stderr = os.Stderr
//   • probe      = hostinfo.Probe
//
// Options apply in order; later ones override earlier ones.

package bench

import (
	"io"
	"math/rand"
	"os"

	"github.com/katalvlaran/matbench/hostinfo"
	"github.com/katalvlaran/matbench/matrix"
)

// Option customizes a Run.
type Option func(*config)

// config aggregates all run knobs. It is built once per Run.
type config struct {
	size       int
	iterations int
	silent     bool
	lang       string
	rng        *rand.Rand
	seed       int64 // used when seeded; a fresh stream per Run
	seeded     bool
	stdout     io.Writer
	stderr     io.Writer
	probe      func() (hostinfo.Info, error)
}

// newConfig applies opts over the defaults and validates the result.
func newConfig(opts ...Option) (config, error) {
	cfg := config{
		size:       MatrixSize,
		iterations: Iterations,
		silent:     Silent,
		lang:       Lang,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		probe:      hostinfo.Probe,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.seeded {
		cfg.rng = matrix.NewRand(cfg.seed)
	}

	switch {
	case cfg.size <= 0:
		return cfg, configErrorf("size must be > 0, got %d", cfg.size)
	case cfg.iterations <= 0:
		return cfg, configErrorf("iterations must be > 0, got %d", cfg.iterations)
	case cfg.stdout == nil || cfg.stderr == nil:
		return cfg, configErrorf("stdout and stderr must be set")
	}

	return cfg, nil
}

// WithSize sets the matrix side.
func WithSize(n int) Option {
	return func(c *config) { c.size = n }
}

// WithIterations sets the number of timed multiplications.
func WithIterations(n int) Option {
	return func(c *config) { c.iterations = n }
}

// WithSilent toggles the per-iteration progress lines.
func WithSilent(silent bool) Option {
	return func(c *config) { c.silent = silent }
}

// WithRand draws the operands from rng instead of the process-wide source.
// The stream advances across runs that share rng; use WithSeed for repeatable runs.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
		c.seeded = false
	}
}

// WithSeed draws the operands from matrix.NewRand(seed), created anew on every
// Run, so one option slice reused across runs always yields the same operands.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithStdout redirects the human-readable report and the first CSV line.
func WithStdout(w io.Writer) Option {
	return func(c *config) { c.stdout = w }
}

// WithStderr redirects the duplicated CSV line.
func WithStderr(w io.Writer) Option {
	return func(c *config) { c.stderr = w }
}

// WithHostProbe replaces the host description source; nil disables the Host line.
func WithHostProbe(probe func() (hostinfo.Info, error)) Option {
	return func(c *config) { c.probe = probe }
}
