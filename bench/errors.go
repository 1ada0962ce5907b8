// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned by Run when an option sets a non-positive
	// size or iteration count, or a nil writer.
	ErrInvalidConfig = errors.New("bench: invalid configuration")

	// ErrWrite wraps a failure to write the report to stdout or stderr.
	ErrWrite = errors.New("bench: write report")
)

// configErrorf wraps ErrInvalidConfig with a formatted reason.
func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
