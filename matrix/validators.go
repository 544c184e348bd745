// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/symmetry checks here.
//  - Return sentinels tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the strict upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf tags a sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A nil *Dense stored in a Matrix counts as nil too.
// Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// isNilMatrix reports an untyped nil or a typed nil *Dense.
func isNilMatrix(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the broadcast vector length matches n.
// A nil vector is accepted only when n == 0.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks that m is symmetric within tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// NaN handling: a NaN mirrored by a NaN is symmetric (correlation matrices carry
// NaN rows for degenerate columns); NaN against a number is an asymmetry.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch on structural issues.
//   - ErrNaNInf when tol itself is not finite.
//   - ErrAsymmetry on the first violation (deterministic i→j scan).
//
// Complexity: O(n²), Space O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var i, j int
	var aij, aji float64
	var err error
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if !closeOrBothNaN(aij, aji, 0, tol) {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// closeOrBothNaN reports |a-b| ≤ atol + rtol*|b|, treating NaN==NaN as equal
// and equal infinities as equal. An infinity never matches a different value.
func closeOrBothNaN(a, b, rtol, atol float64) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN || bNaN {
		return aNaN && bNaN
	}
	if a == b { // covers equal infinities
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
