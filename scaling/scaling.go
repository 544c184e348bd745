// SPDX-License-Identifier: MIT

package scaling

import (
	"math"

	"github.com/katalvlaran/lvstats/matrix"
)

const (
	opIdentity = "Identity"
	opStandard = "Standard"
	opMinMax   = "MinMax"
	opDemean   = "Demean"
)

// zeroSize reports whether X has no cells; such tables are returned unchanged.
func zeroSize(X matrix.Matrix) bool {
	return X.Rows() == 0 || X.Cols() == 0
}

// Identity returns a deep copy of X.
func Identity(X matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, scalingErrorf(opIdentity, err)
	}
	if zeroSize(X) {
		return X, nil
	}

	return X.Clone(), nil
}

// Standard returns (x − mean) / std per column, where std is the population
// standard deviation. ddof == 1 multiplies the result by sqrt((m−1)/m), which
// is the same as dividing by the sample standard deviation.
//
// Implementation:
//   - Stage 1: center (matrix.CenterColumns).
//   - Stage 2: population variance as the column mean of the squared centered
//     values (matrix.ColumnMeans over a squared copy).
//   - Stage 3: one matrix.ScaleColumns pass with factors 1/std.
//
// Behavior highlights:
//   - A constant column (every value equal) maps to NaN, never to ±1 noise
//     from rounding in the mean.
//   - The result keeps X's numeric policy. On a strict table
//     (matrix.WithValidateNaNInf) a NaN result cell fails with matrix.ErrNaNInf.
//
// Errors:
//   - ErrBadDDOF, matrix.ErrNilMatrix, matrix.ErrNaNInf (strict X only).
//
// Complexity: Time O(m·k), Space O(m·k).
func Standard(X matrix.Matrix, ddof int) (matrix.Matrix, error) {
	if ddof != 0 && ddof != 1 {
		return nil, scalingErrorf(opStandard, ErrBadDDOF)
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, scalingErrorf(opStandard, err)
	}
	if zeroSize(X) {
		return X, nil
	}

	centered, _, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, scalingErrorf(opStandard, err)
	}
	sq := centered.Clone().(*matrix.Dense)
	if err = sq.Apply(func(_, _ int, v float64) float64 { return v * v }); err != nil {
		return nil, scalingErrorf(opStandard, err)
	}
	variances, err := matrix.ColumnMeans(sq)
	if err != nil {
		return nil, scalingErrorf(opStandard, err)
	}
	mins, maxs, err := matrix.ColumnMinMax(X)
	if err != nil {
		return nil, scalingErrorf(opStandard, err)
	}

	m := float64(X.Rows())
	correction := 1.0
	if ddof == 1 {
		correction = math.Sqrt((m - 1) / m)
	}
	factors := make([]float64, len(variances))
	for j, v := range variances {
		if mins[j] == maxs[j] {
			factors[j] = math.NaN()
			continue
		}
		factors[j] = correction / math.Sqrt(v)
	}

	out, err := matrix.ScaleColumns(centered, factors)
	if err != nil {
		return nil, scalingErrorf(opStandard, err)
	}

	return out, nil
}

// MinMax returns (x − min) / (max − min) per column, so every finite column
// spans exactly [0, 1]. A constant column maps to NaN (0/0); on a strict
// table that is matrix.ErrNaNInf instead.
//
// Complexity: Time O(m·k), Space O(m·k).
func MinMax(X matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, scalingErrorf(opMinMax, err)
	}
	if zeroSize(X) {
		return X, nil
	}

	mins, maxs, err := matrix.ColumnMinMax(X)
	if err != nil {
		return nil, scalingErrorf(opMinMax, err)
	}
	shifted, err := matrix.SubtractColumns(X, mins)
	if err != nil {
		return nil, scalingErrorf(opMinMax, err)
	}
	factors := make([]float64, len(mins))
	for j := range factors {
		if mins[j] == maxs[j] {
			factors[j] = math.NaN()
			continue
		}
		factors[j] = 1 / (maxs[j] - mins[j])
	}

	out, err := matrix.ScaleColumns(shifted, factors)
	if err != nil {
		return nil, scalingErrorf(opMinMax, err)
	}

	return out, nil
}

// Demean subtracts the column mean from every value.
func Demean(X matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, scalingErrorf(opDemean, err)
	}
	if zeroSize(X) {
		return X, nil
	}

	out, _, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, scalingErrorf(opDemean, err)
	}

	return out, nil
}
