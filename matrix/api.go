// SPDX-License-Identifier: MIT
// Package: matrix
//
// Public facades over the private kernels. Each facade is a thin, documented
// entry point; the loops live in impl_statistics.go and ops_elementwise.go.

package matrix

// ColumnMeans returns the arithmetic mean of every column (len = X.Cols()).
// NaN in a column yields a NaN mean for that column.
func ColumnMeans(X Matrix) ([]float64, error) { return columnMeans(X) }

// CenterColumns subtracts the per-column mean from every element and returns the
// centered copy together with the means. Zero-size inputs are returned as-is.
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// ColumnMinMax returns per-column minima and maxima; NaN columns report NaN.
func ColumnMinMax(X Matrix) (mins, maxs []float64, err error) { return columnMinMax(X) }

// SubtractColumns returns a copy with out[i,j] = X[i,j] - vals[j].
// len(vals) must equal X.Cols(), else ErrDimensionMismatch.
func SubtractColumns(X Matrix, vals []float64) (Matrix, error) {
	out, err := ewBroadcastSubCols(X, vals)
	if err != nil {
		return nil, matrixErrorf(opSubtractColumns, err)
	}

	return out, nil
}

// ScaleColumns returns a copy with out[i,j] = X[i,j] * factors[j].
// len(factors) must equal X.Cols(), else ErrDimensionMismatch.
func ScaleColumns(X Matrix, factors []float64) (Matrix, error) {
	out, err := ewScaleCols(X, factors)
	if err != nil {
		return nil, matrixErrorf(opScaleColumns, err)
	}

	return out, nil
}

// AllClose reports whether a and b have the same shape and every pair of cells
// satisfies |a-b| ≤ atol + rtol*|b|. NaN matches NaN in the same cell.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite or negative tolerances).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
