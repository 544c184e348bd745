// SPDX-License-Identifier: MIT
// Package: matrix
//
// gonum interop.
//   - FromGonum ingests any gonum mat.Matrix as a table (copy, row-major).
//   - ToGonumSym hands a symmetric result (e.g. a correlation matrix) to gonum,
//     which owns eigen-analysis and factorizations; this package does not.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opFromGonum  = "FromGonum"
	opToGonumSym = "ToGonumSym"
)

// FromGonum copies a gonum matrix into a new *Dense.
// The numeric policy comes from opts; under WithValidateNaNInf a non-finite cell
// fails with ErrNaNInf.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if gd, ok := src.(*mat.Dense); src == nil || (ok && gd == nil) {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r, c := src.Dims()
	out, err := newDenseZeroOK(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if o.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(opFromGonum, i, j, ErrNaNInf)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// ToGonumSym converts a square, symmetric Matrix into a gonum *mat.SymDense.
//
// Implementation:
//   - Stage 1: validate square and non-empty (gonum rejects zero-length data).
//   - Stage 2: ValidateSymmetric with the eps from opts (DefaultEpsilon).
//   - Stage 3: copy row-major; gonum reads the upper triangle.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDimensions (0×0), ErrAsymmetry.
func ToGonumSym(m Matrix, opts ...Option) (*mat.SymDense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opToGonumSym, err)
	}
	n := m.Rows()
	if n == 0 {
		return nil, matrixErrorf(opToGonumSym, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, matrixErrorf(opToGonumSym, err)
	}

	data := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(data, d.data)
	} else {
		var i, j int
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if data[i*n+j], err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opToGonumSym, err)
				}
			}
		}
	}

	return mat.NewSymDense(n, data), nil
}
