// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns one of these sentinels, optionally
// wrapped with an operation tag via matrixErrorf. Tests and callers match them
// with errors.Is; message text is not part of the contract.

package matrix

import (
	"errors"
	"fmt"
)

// Messages are prefixed with "matrix: " for grep-ability across call sites.
// ERROR PRIORITY (checked in this order by every entry point):
// nil -> shape -> index -> numeric policy -> structural (symmetry).

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows is returned by table constructors when the input rows
	// (or columns) do not all share the same length.
	ErrRaggedRows = errors.New("matrix: ragged input rows")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Column) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a broadcast vector whose length differs from the column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value under the strict numeric policy
	// (WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Callers gate it with `if err != nil`; wrapping nil is a bug.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
