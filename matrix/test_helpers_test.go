// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities for kernels.
//   • hide{} forces the generic At path so fast and fallback paths can be diffed.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstats/matrix"
)

const epsTight = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force non-*Dense (fallback) paths in code under test.
type hide struct{ matrix.Matrix }

// NewFilledDense builds an r×c table from row-major data or fails the test.
func NewFilledDense(t testing.TB, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, data, r*c, "fixture size")
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = data[i*c : (i+1)*c]
	}
	m, err := matrix.NewTable(rows)
	require.NoError(t, err)

	return m
}

// RandFilledDense returns an r×c table of uniform values in [-1, 1).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for k := range data {
		data[k] = 2*rng.Float64() - 1
	}

	return NewFilledDense(t, r, c, data)
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareClose fails unless a and b agree cell by cell within (rtol, atol).
func CompareClose(t testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}

// sliceClose fails unless got and want agree element-wise; NaN matches NaN.
func sliceClose(t testing.TB, got, want []float64, rtol, atol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for k := range want {
		if math.IsNaN(want[k]) {
			require.Truef(t, math.IsNaN(got[k]), "[%d]: want NaN, got %g", k, got[k])
			continue
		}
		require.LessOrEqualf(t, math.Abs(got[k]-want[k]), atol+rtol*math.Abs(want[k]),
			"[%d]: got %g want %g", k, got[k], want[k])
	}
}
