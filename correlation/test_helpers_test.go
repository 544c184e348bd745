package correlation_test

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstats/matrix"
)

const tol = 1e-9

// hide wraps a matrix so type assertions to *matrix.Dense fail and the
// generic At path is exercised.
type hide struct{ matrix.Matrix }

// irisCorr is the reference correlation matrix of the four iris measurements.
var irisCorr = [4][4]float64{
	{1, -0.117569784133, 0.871753775887, 0.817941126272},
	{-0.117569784133, 1, -0.428440104331, -0.366125932536},
	{0.871753775887, -0.428440104331, 1, 0.962865431403},
	{0.817941126272, -0.366125932536, 0.962865431403, 1},
}

// loadTable reads a headered numeric CSV from testdata into a table.
func loadTable(t testing.TB, name string) *matrix.Dense {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(records), 1, "header plus at least one row")

	rows := make([][]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]float64, len(rec))
		for j, s := range rec {
			row[j], err = strconv.ParseFloat(s, 64)
			require.NoError(t, err)
		}
		rows = append(rows, row)
	}
	tbl, err := matrix.NewTable(rows)
	require.NoError(t, err)

	return tbl
}

// mustAt reads (i,j) or fails the test.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// mustColumn returns column j of a Dense table.
func mustColumn(t testing.TB, m *matrix.Dense, j int) []float64 {
	t.Helper()
	col, err := m.Column(j)
	require.NoError(t, err)
	return col
}

// mustTable stacks columns into a table.
func mustTable(t testing.TB, cols ...[]float64) *matrix.Dense {
	t.Helper()
	tbl, err := matrix.NewTableFromColumns(cols)
	require.NoError(t, err)
	return tbl
}

// sameOrBothNaN reports a == b, treating two NaNs as equal.
func sameOrBothNaN(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
