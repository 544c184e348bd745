// SPDX-License-Identifier: MIT
// Package correlation: sentinel error set.
// Domain errors are the only failures: mismatched or empty samples. Numeric
// edge cases (NaN input, zero variance) are results, never errors.

package correlation

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is the root of every input-domain violation. Match with
	// errors.Is(err, ErrDomain) to catch all of them.
	ErrDomain = errors.New("correlation: domain error")

	// ErrLengthMismatch indicates that the two samples differ in length.
	// Samples are never truncated or padded.
	ErrLengthMismatch = fmt.Errorf("%w: sample lengths differ", ErrDomain)

	// ErrEmptySample indicates a zero-length sample (or a table with no rows).
	ErrEmptySample = fmt.Errorf("%w: empty sample", ErrDomain)
)

// corrErrorf wraps err with an operation tag, preserving sentinels via %w.
func corrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
