// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise and broadcast kernels (ew*) shared by
//     the column statistics (impl_statistics.go) and the public facades (api.go).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j).
//   - Dense fast-path operates on the flat row-major buffer.
//   - One output allocation per call; O(r*c) time and space.
//   - NaN flows through arithmetic untouched; these kernels never sanitize.
//   - Outputs inherit the input's numeric policy; a strict output rejects
//     non-finite cells with ErrNaNInf instead of storing them.

package matrix

const (
	opBroadcastSubCols = "broadcastSubCols"
	opScaleCols        = "scaleCols"
	opAllClose         = "AllClose"
)

// policyOf returns the numeric policy a derived matrix should inherit.
func policyOf(X Matrix) bool {
	if d, ok := X.(*Dense); ok {
		return d.validateNaNInf
	}

	return DefaultValidateNaNInf
}

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colVals[j].
// Used for column centering (colVals = means) and min-shifting (colVals = mins).
// Under a strict inherited policy a non-finite cell aborts with ErrNaNInf.
// Time: O(r*c). Space: O(r*c).
func ewBroadcastSubCols(X Matrix, colVals []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	_, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(colVals, c); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}

	return ewColumnwise(opBroadcastSubCols, X, func(v float64, j int) float64 { return v - colVals[j] })
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// Use factors 1/std for z-scoring, 1/(max-min) for min-max scaling.
// Under a strict inherited policy a non-finite cell aborts with ErrNaNInf.
// Time: O(r*c). Space: O(r*c).
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	_, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(scale, c); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}

	return ewColumnwise(opScaleCols, X, func(v float64, j int) float64 { return v * scale[j] })
}

// ewColumnwise writes out[i,j] = f(X[i,j], j) into a fresh matrix that inherits
// X's numeric policy. Strict outputs are checked cell by cell, the same way Set
// and Apply check them, so a strict matrix never holds NaN or ±Inf.
func ewColumnwise(op string, X Matrix, f func(v float64, j int) float64) (*Dense, error) {
	r, c := X.Rows(), X.Cols()
	strict := policyOf(X)
	out, err := newDenseZeroOK(r, c, strict)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	d, fast := X.(*Dense)
	var i, j, base int
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			if fast {
				v = d.data[base+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			v = f(v, j)
			if strict && isNonFinite(v) {
				return nil, matrixErrorf(op, denseErrorf(op, i, j, ErrNaNInf))
			}
			out.data[base+j] = v
		}
	}

	return out, nil
}

// ewAllClose reports whether all elements satisfy |a-b| ≤ atol + rtol*|b|.
// NaN in the same cell of both operands counts as equal.
// Time: O(r*c). Space: O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if isNonFinite(rtol) || isNonFinite(atol) || rtol < 0 || atol < 0 {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}

	r, c := a.Rows(), a.Cols()
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for k := range da.data {
			if !closeOrBothNaN(da.data[k], db.data[k], rtol, atol) {
				return false, nil
			}
		}
		return true, nil
	}

	var i, j int
	var x, y float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if x, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if y, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeOrBothNaN(x, y, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
