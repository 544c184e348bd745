// SPDX-License-Identifier: MIT

package scaling

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvstats/matrix"
)

const opRank = "Rank"

// Rank replaces every value by its 1-based rank within its column. Tied values
// share the average of the ranks they span: [10, 20, 20, 30] → [1, 2.5, 2.5, 4].
// A column holding NaN ranks to all NaN. NaN is not sorted last with the finite
// values still ranked; pairwise-complete ranking is left to the caller.
//
// Complexity: Time O(k·m log m), Space O(m·k).
func Rank(X matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, scalingErrorf(opRank, err)
	}
	if zeroSize(X) {
		return X, nil
	}

	m, k := X.Rows(), X.Cols()
	out := X.Clone()
	col := make([]float64, m)
	ranks := make([]float64, m)
	order := make([]int, m)

	var (
		i, j int
		err  error
	)
	for j = 0; j < k; j++ {
		for i = 0; i < m; i++ {
			if col[i], err = X.At(i, j); err != nil {
				return nil, scalingErrorf(opRank, err)
			}
		}
		rankColumn(col, order, ranks)
		for i = 0; i < m; i++ {
			if err = out.Set(i, j, ranks[i]); err != nil {
				return nil, scalingErrorf(opRank, err)
			}
		}
	}

	return out, nil
}

// rankColumn writes the average-tie ranks of col into ranks, using order as
// scratch space. All three slices have the same length.
func rankColumn(col []float64, order []int, ranks []float64) {
	for i, v := range col {
		if math.IsNaN(v) {
			for r := range ranks {
				ranks[r] = math.NaN()
			}
			return
		}
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return col[order[a]] < col[order[b]] })

	var avg float64
	for lo := 0; lo < len(order); {
		hi := lo + 1
		for hi < len(order) && col[order[hi]] == col[order[lo]] {
			hi++
		}
		// Positions lo..hi-1 hold ranks lo+1..hi.
		avg = float64(lo+1+hi) / 2
		for p := lo; p < hi; p++ {
			ranks[order[p]] = avg
		}
		lo = hi
	}
}
