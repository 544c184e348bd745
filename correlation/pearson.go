// SPDX-License-Identifier: MIT

package correlation

import (
	"fmt"
	"math"
)

const (
	opPearson       = "Pearson"
	opPearsonMatrix = "PearsonMatrix"
)

// Pearson returns the product-moment correlation coefficient of x and y:
//
//	r = Σ(xᵢ−x̄)(yᵢ−ȳ) / sqrt(Σ(xᵢ−x̄)² · Σ(yᵢ−ȳ)²)
//
// Implementation:
//   - Stage 1: validate lengths (ErrLengthMismatch) and emptiness (ErrEmptySample).
//   - Stage 2: first pass computes both means.
//   - Stage 3: second pass accumulates the centered cross and square sums,
//     which avoids the cancellation of the one-pass Σxy − n·x̄·ȳ form.
//
// Behavior highlights:
//   - NaN anywhere in x or y yields NaN (default NaNPropagate). Under
//     WithNaNPolicy(NaNPairwise) incomplete pairs are dropped instead.
//   - A constant sample (zero variance) yields NaN, not an error. So does N == 1,
//     since a single observation is trivially constant.
//   - Finite results are clamped to [-1, 1].
//   - Inputs are never modified.
//
// Complexity:
//   - Time O(N), Space O(1).
func Pearson(x, y []float64, opts ...Option) (float64, error) {
	if len(x) != len(y) {
		return math.NaN(), fmt.Errorf("%s: len(x)=%d, len(y)=%d: %w", opPearson, len(x), len(y), ErrLengthMismatch)
	}
	if len(x) == 0 {
		return math.NaN(), corrErrorf(opPearson, ErrEmptySample)
	}

	o := gatherOptions(opts...)
	if o.nanPolicy == NaNPairwise {
		return pearsonPairwise(x, y), nil
	}

	return pearson(x, y), nil
}

// pearson is the NaN-propagating two-pass kernel. len(x) == len(y) > 0.
func pearson(x, y []float64) float64 {
	mx, constX := meanConstant(x)
	my, constY := meanConstant(y)
	if constX || constY {
		return math.NaN() // zero variance
	}

	var sxy, sxx, syy, dx, dy float64
	for i := range x {
		dx = x[i] - mx
		dy = y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}

	return coefficient(sxy, sxx, syy)
}

// pearsonPairwise correlates only the observations where both x[i] and y[i]
// are non-NaN. Fewer than two complete pairs yield NaN.
func pearsonPairwise(x, y []float64) float64 {
	var n int
	var sx, sy, x0, y0 float64
	constX, constY := true, true
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		if n == 0 {
			x0, y0 = x[i], y[i]
		}
		constX = constX && x[i] == x0
		constY = constY && y[i] == y0
		sx += x[i]
		sy += y[i]
		n++
	}
	if n < 2 || constX || constY {
		return math.NaN()
	}
	inv := 1.0 / float64(n)
	mx, my := sx*inv, sy*inv

	var sxy, sxx, syy, dx, dy float64
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		dx = x[i] - mx
		dy = y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}

	return coefficient(sxy, sxx, syy)
}

// meanConstant returns the mean of x and whether every element equals x[0].
// Constancy is checked exactly because s/n need not reproduce x[0] bit-for-bit
// (e.g. three copies of 0.1), which would leave a tiny non-zero variance.
// The summation order and scaling match matrix.ColumnMeans so that Pearson and
// PearsonMatrix agree on identical columns. len(x) > 0.
func meanConstant(x []float64) (float64, bool) {
	var s float64
	constant := true
	for _, v := range x {
		s += v
		constant = constant && v == x[0]
	}

	return s * (1.0 / float64(len(x))), constant
}

// coefficient finishes r from centered sums. A zero denominator gives 0/0 = NaN.
// Square roots are taken separately so sxx*syy cannot overflow.
func coefficient(sxy, sxx, syy float64) float64 {
	r := sxy / (math.Sqrt(sxx) * math.Sqrt(syy))

	return clampUnit(r)
}

// clampUnit pins finite values into [-1, 1]; NaN passes through.
func clampUnit(r float64) float64 {
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}

	return r
}
