// SPDX-License-Identifier: MIT
// Package: lvstats/builder
//
// impl_table.go - table assembly and a one-factor random table.

package builder

import (
	"math"

	"github.com/katalvlaran/lvstats/matrix"
)

const (
	methodTable       = "Table"
	methodFactorTable = "FactorTable"

	// maxLoading bounds |loading| so no column is a pure copy of the factor.
	maxLoading = 0.9
)

// Table stacks samples as the columns of a new table (column j = columns[j]).
// The samples are copied.
//
// Errors:
//   - ErrBadSize when no column is given.
//   - matrix.ErrRaggedRows when the samples differ in length.
func Table(columns ...[]float64) (*matrix.Dense, error) {
	if err := validateMin(methodTable, "columns", len(columns), MinColumns); err != nil {
		return nil, err
	}
	t, err := matrix.NewTableFromColumns(columns)
	if err != nil {
		return nil, builderErrorf(methodTable, err)
	}

	return t, nil
}

// FactorTable returns an m×k table drawn from a one-factor model:
//
//	X[i][j] = A·(ℓⱼ·fᵢ + √(1−ℓⱼ²)·eᵢⱼ) + trend·i
//
// with loadings ℓⱼ spread evenly over [-0.9, 0.9]. Columns j and l then have
// population correlation ℓⱼ·ℓₗ, so the table mixes strong, weak, positive and
// negative pairs. WithNoise and WithMissing apply per cell.
//
// Errors:
//   - ErrBadSize when m < 1 or k < 1.
//
// Complexity: O(m·k) time and memory.
func FactorTable(m, k int, seed int64, opts ...BuilderOption) (*matrix.Dense, error) {
	if err := validateMin(methodFactorTable, "rows", m, MinRows); err != nil {
		return nil, err
	}
	if err := validateMin(methodFactorTable, "columns", k, MinColumns); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	loadings := FactorLoadings(k)
	cols := make([][]float64, k)
	for j := range cols {
		cols[j] = make([]float64, m)
	}

	var f, v float64
	var i, j int
	for i = 0; i < m; i++ {
		f = rng.NormFloat64()
		for j = 0; j < k; j++ {
			v = loadings[j]*f + math.Sqrt(unitOne-loadings[j]*loadings[j])*rng.NormFloat64()
			v = cfg.amplitude*v + cfg.trendK*float64(i)
			if cfg.noiseSigma > 0 {
				v += cfg.noiseSigma * rng.NormFloat64()
			}
			cols[j][i] = v
		}
	}
	for j = 0; j < k; j++ {
		injectMissing(cols[j], cfg.missingRate, rng)
	}

	return Table(cols...)
}

// FactorLoadings returns the k loadings used by FactorTable.
// A single column gets loading maxLoading.
func FactorLoadings(k int) []float64 {
	if k < 1 {
		return nil
	}
	out := make([]float64, k)
	if k == 1 {
		out[0] = maxLoading
		return out
	}
	step := 2 * maxLoading / float64(k-1)
	for j := range out {
		out[j] = -maxLoading + step*float64(j)
	}

	return out
}
