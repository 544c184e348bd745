// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics every table consumer needs (means, centering,
//     extrema) as deterministic compositions over the ew* micro-kernels.
//   - Keep tight loops centralized: correlation and scaling build on these instead
//     of re-implementing column walks.
//
// Exposed API (via api.go):
//   - ColumnMeans(X)   -> means
//   - CenterColumns(X) -> (Xc, means)
//   - ColumnMinMax(X)  -> (mins, maxs)
//
// NaN policy:
//   - Nothing here skips NaN. A NaN anywhere in column j makes means[j], mins[j]
//     and maxs[j] NaN, and the whole centered column NaN. Callers that want
//     pairwise-complete semantics must filter before calling.
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast-paths read the flat buffer directly.
//   - Zero-size matrices (0×N or N×0) are no-ops.

package matrix

import "math"

const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opColumnMinMax  = "ColumnMinMax"
	opScaleColumns  = "ScaleColumns"

	opSubtractColumns = "SubtractColumns"
)

// columnMeans returns Σ_i X[i,j] / r for every column j.
//
// Behavior highlights:
//   - r == 0: returns a zero slice of length c (no division by zero).
//
// Errors:
//   - ErrNilMatrix; wrapped At errors on the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func columnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c) // always the correct length for callers
	if r == 0 || c == 0 {
		return means, nil
	}

	var i, j, base int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// centerColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: validate; zero-size is a strict no-op returning X itself.
//   - Stage 2: compute column means (columnMeans).
//   - Stage 3: broadcast-subtract via ewBroadcastSubCols into a fresh copy.
//
// Returns:
//   - Matrix: centered copy (r×c) for r>0 && c>0; otherwise X itself.
//   - []float64: column means (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func centerColumns(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := X.Rows(), X.Cols()
	if r == 0 || c == 0 {
		return X, make([]float64, c), nil
	}

	means, err := columnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// columnMinMax returns per-column minima and maxima.
// A NaN in column j makes both mins[j] and maxs[j] NaN (NaN is sticky).
// For r == 0 both slices are zero-filled.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func columnMinMax(X Matrix) ([]float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnMinMax, err)
	}
	r, c := X.Rows(), X.Cols()
	mins := make([]float64, c)
	maxs := make([]float64, c)
	if r == 0 || c == 0 {
		return mins, maxs, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	d, fast := X.(*Dense)
	for j = 0; j < c; j++ {
		mins[j] = math.Inf(1)
		maxs[j] = math.Inf(-1)
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if fast {
				v = d.data[i*c+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opColumnMinMax, err)
			}
			if math.IsNaN(mins[j]) {
				continue // column already poisoned
			}
			if math.IsNaN(v) {
				mins[j], maxs[j] = math.NaN(), math.NaN()
				continue
			}
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	return mins, maxs, nil
}
