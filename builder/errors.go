// SPDX-License-Identifier: MIT
// Package: lvstats/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with builderErrorf(method, err), which keeps %w.
//   • Generators that return plain slices signal bad requests with nil instead.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates an invalid size or length for a generated dataset
// (n < 1, days < 1, no columns).
var ErrBadSize = errors.New("builder: invalid size/length")

// builderErrorf prefixes err with the method name: "<Method>: <err>".
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
