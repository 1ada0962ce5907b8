// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"time"
)

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// OpsPerSecond returns size³ / avg in seconds: the multiply-add count of one
// naive product divided by its mean duration. It returns 0 when avg <= 0,
// which only happens on clocks too coarse to time a single product.
func OpsPerSecond(size int, avg time.Duration) float64 {
	if avg <= 0 {
		return 0
	}
	n := float64(size)

	return n * n * n / avg.Seconds()
}

// FormatCSV renders the machine-readable result line, without a newline:
//
//	RESULT_CSV: <lang>,<size>,<iterations>,<total_ms>,<avg_ms>
//
// Times carry exactly two decimals.
func FormatCSV(r Result) string {
	return fmt.Sprintf("%s%s,%d,%d,%.2f,%.2f",
		csvPrefix, r.Lang, r.Size, r.Iterations, r.TotalMillis(), r.AverageMillis())
}

// printer is a sticky-error writer: after the first failure every call is a no-op
// and err holds the cause.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) { p.printf("%s\n", s) }

// header prints the title block. A nil probe skips the Host line; a failed one
// prints it as unavailable.
func (p *printer) header(cfg config) {
	p.printf(titleFormat, displayName(cfg.lang))
	p.println(titleRule)
	p.printf("Matrix Size: %dx%d\n", cfg.size, cfg.size)
	p.printf("Iterations: %d\n", cfg.iterations)
	if cfg.probe != nil {
		host := hostUnknown
		if info, err := cfg.probe(); err == nil {
			host = info.String()
		}
		p.printf("Host: %s\n", host)
	}
	p.println("")
}

// trial prints one progress block.
func (p *printer) trial(t Trial) {
	p.printf("  Time: %.2f ms\n", Millis(t.Elapsed))
	p.printf("  Trace: %v\n", t.Trace)
	p.println("")
}

// summary prints the results block and the stdout copy of the CSV line.
func (p *printer) summary(r Result) {
	p.println(resultsHeader)
	p.println(resultsRule)
	p.printf("Total time: %.2f ms\n", r.TotalMillis())
	p.printf("Average time per iteration: %.2f ms\n", r.AverageMillis())
	p.printf("Operations per second: %.2f\n", r.OpsPerSecond)
	p.println(FormatCSV(r))
}

// displayName capitalizes the language tag for the title ("go" → "Go").
func displayName(lang string) string {
	if lang == "" {
		return lang
	}
	b := []byte(lang)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}

	return string(b)
}
