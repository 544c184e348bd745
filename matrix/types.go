// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Tables (observations × variables) and correlation matrices are both exposed
// through this interface; *Dense is the only concrete implementation and unlocks
// flat-buffer fast paths in every kernel.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Rows are observations and columns are variables when a Matrix is used as a table.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf if the
	// implementation enforces a finite-only policy and v is not finite.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
