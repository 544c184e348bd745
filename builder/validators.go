// SPDX-License-Identifier: MIT
// Package: lvstats/builder
//
// validators.go - parameter checks for the error-returning table constructors.

package builder

import "fmt"

const (
	// MinRows is the smallest row (or day) count FactorTable and OHLCTable accept.
	MinRows = 1
	// MinColumns is the smallest column count Table and FactorTable accept.
	MinColumns = 1
)

// validateMin ensures got ≥ min, else reports
// "<Method>: <what> must be ≥ <min>, got <got>" wrapping ErrBadSize.
// Complexity: O(1).
func validateMin(method, what string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s must be ≥ %d, got %d: %w", method, what, min, got, ErrBadSize)
	}

	return nil
}
