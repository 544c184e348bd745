// SPDX-License-Identifier: MIT

package correlation

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvstats/matrix"
)

// PearsonMatrix returns the K×K matrix of Pearson coefficients between every
// pair of columns of the M×K table data: out[i][j] = Pearson(col_i, col_j).
//
// Implementation:
//   - Stage 1: validate (nil table, K == 0 → 0×0 result, M == 0 → ErrEmptySample).
//   - Stage 2: build a column cache once: column means (matrix.ColumnMeans), a
//     column-major centered copy, Σ(x−x̄)² and a constancy flag per column.
//   - Stage 3: walk the upper triangle; each pair is one dot product over two
//     cached columns; the value is mirrored into (j,i).
//   - Stage 4 (optional): with WithWorkers(n>1), rows of the triangle run on a
//     bounded errgroup; every cell is written by exactly one goroutine.
//
// Behavior highlights:
//   - out is symmetric; out[i][i] is exactly 1 for a finite non-constant column
//     and NaN otherwise.
//   - NaN is isolated per pair: a NaN column yields NaN in its own row and
//     column only; pairs between other columns are unaffected.
//   - Under NaNPairwise, pairs that involve a NaN-bearing column fall back to
//     the pairwise-complete scalar kernel; clean pairs keep the cached path.
//   - *matrix.Dense inputs use a flat fast path; other Matrix values go through At.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptySample, wrapped At errors.
//
// Complexity:
//   - Time O(M·K + M·K²/2), Space O(M·K + K²).
func PearsonMatrix(data matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(data); err != nil {
		return nil, corrErrorf(opPearsonMatrix, err)
	}
	o := gatherOptions(opts...)

	m, k := data.Rows(), data.Cols()
	if k == 0 {
		return matrix.NewTable(nil) // legal 0×0 result
	}
	if m == 0 {
		return nil, corrErrorf(opPearsonMatrix, ErrEmptySample)
	}

	cc, err := newColumnCache(data)
	if err != nil {
		return nil, corrErrorf(opPearsonMatrix, err)
	}
	out, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, corrErrorf(opPearsonMatrix, err)
	}

	if o.workers <= 1 || k < 2 {
		for i := 0; i < k; i++ {
			if err = cc.fillRow(out, i, o.nanPolicy); err != nil {
				return nil, corrErrorf(opPearsonMatrix, err)
			}
		}
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < k; i++ {
		g.Go(func() error {
			return cc.fillRow(out, i, o.nanPolicy)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, corrErrorf(opPearsonMatrix, err)
	}

	return out, nil
}

// columnCache holds per-column statistics computed once per PearsonMatrix call.
// It is read-only after construction and safe for concurrent pair evaluation.
type columnCache struct {
	m        int
	raw      []float64 // column-major copy; column j is raw[j*m:(j+1)*m]
	centered []float64 // column-major x − x̄
	ss       []float64 // Σ(x−x̄)² per column
	constant []bool    // every value equals the first one (zero variance)
	hasNaN   []bool    // at least one NaN in the column
}

// newColumnCache extracts, centers and summarizes every column of data.
// Rows() > 0 and Cols() > 0 are guaranteed by the caller.
func newColumnCache(data matrix.Matrix) (*columnCache, error) {
	m, k := data.Rows(), data.Cols()
	means, err := matrix.ColumnMeans(data)
	if err != nil {
		return nil, err
	}

	cc := &columnCache{
		m:        m,
		raw:      make([]float64, m*k),
		centered: make([]float64, m*k),
		ss:       make([]float64, k),
		constant: make([]bool, k),
		hasNaN:   make([]bool, k),
	}

	d, fast := data.(*matrix.Dense)
	var (
		i, j     int
		v, dv    float64
		col, ctr []float64
	)
	for j = 0; j < k; j++ {
		col = cc.raw[j*m : (j+1)*m]
		if fast {
			src, cerr := d.Column(j)
			if cerr != nil {
				return nil, cerr
			}
			copy(col, src)
		} else {
			for i = 0; i < m; i++ {
				if col[i], err = data.At(i, j); err != nil {
					return nil, err
				}
			}
		}

		ctr = cc.centered[j*m : (j+1)*m]
		cc.constant[j] = true
		for i, v = range col {
			dv = v - means[j]
			ctr[i] = dv
			cc.ss[j] += dv * dv
			cc.constant[j] = cc.constant[j] && v == col[0]
			cc.hasNaN[j] = cc.hasNaN[j] || math.IsNaN(v)
		}
	}

	return cc, nil
}

// fillRow writes out[i][i] and the pairs (i,j), (j,i) for every j > i.
// Rows own disjoint cells, so concurrent fillRow calls never race.
func (cc *columnCache) fillRow(out *matrix.Dense, i int, policy NaNPolicy) error {
	k := out.Cols()
	if err := out.Set(i, i, cc.diagonal(i, policy)); err != nil {
		return err
	}

	var r float64
	for j := i + 1; j < k; j++ {
		r = cc.pair(i, j, policy)
		if err := out.Set(i, j, r); err != nil {
			return err
		}
		if err := out.Set(j, i, r); err != nil {
			return err
		}
	}

	return nil
}

// pair evaluates the coefficient between cached columns i and j.
func (cc *columnCache) pair(i, j int, policy NaNPolicy) float64 {
	if policy == NaNPairwise && (cc.hasNaN[i] || cc.hasNaN[j]) {
		return pearsonPairwise(cc.column(cc.raw, i), cc.column(cc.raw, j))
	}
	if cc.constant[i] || cc.constant[j] {
		return math.NaN()
	}

	xi, xj := cc.column(cc.centered, i), cc.column(cc.centered, j)
	var sxy float64
	for r := range xi {
		sxy += xi[r] * xj[r]
	}

	return coefficient(sxy, cc.ss[i], cc.ss[j])
}

// diagonal is 1 exactly for a column that correlates with itself, NaN otherwise.
func (cc *columnCache) diagonal(i int, policy NaNPolicy) float64 {
	if policy == NaNPairwise && cc.hasNaN[i] {
		col := cc.column(cc.raw, i)
		if math.IsNaN(pearsonPairwise(col, col)) {
			return math.NaN()
		}
		return 1
	}
	if cc.constant[i] || math.IsNaN(cc.ss[i]) || math.IsInf(cc.ss[i], 0) {
		return math.NaN()
	}

	return 1
}

// column slices column j out of a column-major buffer.
func (cc *columnCache) column(buf []float64, j int) []float64 {
	return buf[j*cc.m : (j+1)*cc.m]
}
