package correlation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvstats/builder"
	"github.com/katalvlaran/lvstats/correlation"
	"github.com/katalvlaran/lvstats/matrix"
)

func TestPearsonMatrix_TwoColumns(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		x, y []float64
		want float64
	}{
		{"hyperventilation", hyperventX, hyperventY, 0.966194346491},
		{"age_glucose", howToX, howToY, 0.529808901890},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			R, err := correlation.PearsonMatrix(mustTable(t, tc.x, tc.y))
			require.NoError(t, err)
			r, c := R.Shape()
			require.Equal(t, 2, r)
			require.Equal(t, 2, c)

			scalar, err := correlation.Pearson(tc.x, tc.y)
			require.NoError(t, err)
			assert.Equal(t, 1.0, mustAt(t, R, 0, 0))
			assert.Equal(t, 1.0, mustAt(t, R, 1, 1))
			assert.InDelta(t, tc.want, mustAt(t, R, 0, 1), tol)
			assert.InDelta(t, scalar, mustAt(t, R, 0, 1), 1e-12)
			assert.Equal(t, mustAt(t, R, 0, 1), mustAt(t, R, 1, 0))
		})
	}
}

func TestPearsonMatrix_Iris(t *testing.T) {
	t.Parallel()

	iris := loadTable(t, "iris.csv")
	m, k := iris.Shape()
	require.Equal(t, 150, m)
	require.Equal(t, 4, k)

	R, err := correlation.PearsonMatrix(iris)
	require.NoError(t, err)

	// Independent computation: gonum over the same data.
	raw := make([]float64, 0, m*k)
	for i := 0; i < m; i++ {
		for j := 0; j < k; j++ {
			raw = append(raw, mustAt(t, iris, i, j))
		}
	}
	var ref mat.SymDense
	stat.CorrelationMatrix(&ref, mat.NewDense(m, k, raw), nil)

	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			got := mustAt(t, R, i, j)
			assert.InDeltaf(t, irisCorr[i][j], got, tol, "(%d,%d) vs table", i, j)
			assert.InDeltaf(t, ref.At(i, j), got, tol, "(%d,%d) vs gonum", i, j)
		}
	}
	require.NoError(t, matrix.ValidateSymmetric(R, 0))
}

// TestPearsonMatrix_Eigen hands the result to gonum: a correlation matrix is
// positive semi-definite with trace K.
func TestPearsonMatrix_Eigen(t *testing.T) {
	t.Parallel()

	R, err := correlation.PearsonMatrix(loadTable(t, "iris.csv"))
	require.NoError(t, err)
	sym, err := matrix.ToGonumSym(R)
	require.NoError(t, err)

	var es mat.EigenSym
	require.True(t, es.Factorize(sym, false))
	vals := es.Values(nil)
	var sum float64
	for _, v := range vals {
		assert.Greater(t, v, -1e-12)
		sum += v
	}
	assert.InDelta(t, 4.0, sum, 1e-9)
}

// TestPearsonMatrix_OHLC: open, high, low and close follow one price path, so
// every pair correlates close to 1.
func TestPearsonMatrix_OHLC(t *testing.T) {
	t.Parallel()

	tbl, err := builder.OHLCTable(500, 42)
	require.NoError(t, err)
	R, err := correlation.PearsonMatrix(tbl, correlation.WithWorkers(2))
	require.NoError(t, err)

	m, k := tbl.Shape()
	raw := make([]float64, 0, m*k)
	for i := 0; i < m; i++ {
		for j := 0; j < k; j++ {
			raw = append(raw, mustAt(t, tbl, i, j))
		}
	}
	var ref mat.SymDense
	stat.CorrelationMatrix(&ref, mat.NewDense(m, k, raw), nil)

	for i := 0; i < k; i++ {
		assert.Equal(t, 1.0, mustAt(t, R, i, i))
		for j := 0; j < k; j++ {
			got := mustAt(t, R, i, j)
			assert.InDeltaf(t, ref.At(i, j), got, tol, "(%d,%d) vs gonum", i, j)
			assert.Greaterf(t, got, 0.9, "(%d,%d)", i, j)
		}
	}

	// Missing prices: propagate blanks every pair, pairwise recovers them.
	holey, err := builder.OHLCTable(500, 42, builder.WithMissing(0.02))
	require.NoError(t, err)
	Rp, err := correlation.PearsonMatrix(holey)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(mustAt(t, Rp, 0, 3)))

	Rpw, err := correlation.PearsonMatrix(holey, correlation.WithNaNPolicy(correlation.NaNPairwise))
	require.NoError(t, err)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			assert.InDeltaf(t, mustAt(t, R, i, j), mustAt(t, Rpw, i, j), 0.02, "(%d,%d)", i, j)
		}
	}
}

func TestPearsonMatrix_MatchesScalar(t *testing.T) {
	t.Parallel()

	tbl, err := builder.FactorTable(120, 7, 3, builder.WithTrend(0.02))
	require.NoError(t, err)
	R, err := correlation.PearsonMatrix(tbl)
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		assert.Equal(t, 1.0, mustAt(t, R, i, i))
		for j := 0; j < 7; j++ {
			want, err := correlation.Pearson(mustColumn(t, tbl, i), mustColumn(t, tbl, j))
			require.NoError(t, err)
			assert.InDeltaf(t, want, mustAt(t, R, i, j), 1e-12, "(%d,%d)", i, j)
		}
	}
}

func TestPearsonMatrix_NaNIsolation(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, math.NaN(), 1, 5, 4}
	c := []float64{5, 3, 4, 1, 2}
	R, err := correlation.PearsonMatrix(mustTable(t, a, b, c))
	require.NoError(t, err)

	for j := 0; j < 3; j++ {
		assert.Truef(t, math.IsNaN(mustAt(t, R, 1, j)), "row 1 col %d", j)
		assert.Truef(t, math.IsNaN(mustAt(t, R, j, 1)), "col 1 row %d", j)
	}
	want, err := correlation.Pearson(a, c)
	require.NoError(t, err)
	assert.InDelta(t, want, mustAt(t, R, 0, 2), 1e-12)
	assert.Equal(t, 1.0, mustAt(t, R, 0, 0))
	assert.Equal(t, 1.0, mustAt(t, R, 2, 2))
	require.NoError(t, matrix.ValidateSymmetric(R, 0), "NaN mirrored by NaN is symmetric")
}

func TestPearsonMatrix_ConstantColumn(t *testing.T) {
	t.Parallel()

	R, err := correlation.PearsonMatrix(mustTable(t,
		[]float64{1, 2, 3},
		[]float64{0.1, 0.1, 0.1},
		[]float64{3, 1, 2},
	))
	require.NoError(t, err)

	assert.True(t, math.IsNaN(mustAt(t, R, 1, 1)))
	assert.True(t, math.IsNaN(mustAt(t, R, 0, 1)))
	assert.True(t, math.IsNaN(mustAt(t, R, 2, 1)))
	assert.InDelta(t, -0.5, mustAt(t, R, 0, 2), 1e-12)
}

func TestPearsonMatrix_Pairwise(t *testing.T) {
	t.Parallel()

	tbl, err := builder.FactorTable(60, 5, 17, builder.WithMissing(0.1))
	require.NoError(t, err)
	pw := correlation.WithNaNPolicy(correlation.NaNPairwise)

	R, err := correlation.PearsonMatrix(tbl, pw)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			want, err := correlation.Pearson(mustColumn(t, tbl, i), mustColumn(t, tbl, j), pw)
			require.NoError(t, err)
			got := mustAt(t, R, i, j)
			assert.Falsef(t, math.IsNaN(got), "(%d,%d)", i, j)
			if i == j {
				assert.Equal(t, 1.0, got)
				continue
			}
			assert.InDeltaf(t, want, got, 1e-12, "(%d,%d)", i, j)
		}
	}

	// The same table under the default policy is all NaN.
	Rp, err := correlation.PearsonMatrix(tbl)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(mustAt(t, Rp, 0, 1)))
	assert.True(t, math.IsNaN(mustAt(t, Rp, 2, 2)))
}

func TestPearsonMatrix_ParallelMatchesSerial(t *testing.T) {
	t.Parallel()

	tbl, err := builder.FactorTable(200, 24, 99, builder.WithMissing(0.01))
	require.NoError(t, err)

	for _, policy := range []correlation.NaNPolicy{correlation.NaNPropagate, correlation.NaNPairwise} {
		serial, err := correlation.PearsonMatrix(tbl, correlation.WithNaNPolicy(policy))
		require.NoError(t, err)
		for _, w := range []correlation.Option{correlation.WithWorkers(4), correlation.WithMaxWorkers()} {
			par, err := correlation.PearsonMatrix(tbl, correlation.WithNaNPolicy(policy), w)
			require.NoError(t, err)
			same, err := matrix.AllClose(serial, par, 0, 0)
			require.NoError(t, err)
			assert.Truef(t, same, "policy %s", policy)
		}
	}
}

func TestPearsonMatrix_FallbackMatchesFast(t *testing.T) {
	t.Parallel()

	iris := loadTable(t, "iris.csv")
	fast, err := correlation.PearsonMatrix(iris)
	require.NoError(t, err)
	slow, err := correlation.PearsonMatrix(hide{iris}, correlation.WithWorkers(2))
	require.NoError(t, err)

	same, err := matrix.AllClose(fast, slow, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, same)
}

func TestPearsonMatrix_Degenerate(t *testing.T) {
	t.Parallel()

	_, err := correlation.PearsonMatrix(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typed *matrix.Dense
	assert.NotPanics(t, func() {
		_, err = correlation.PearsonMatrix(typed)
	})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := matrix.NewTable(nil)
	require.NoError(t, err)
	R, err := correlation.PearsonMatrix(empty)
	require.NoError(t, err)
	r, c := R.Shape()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)

	noRows := mustTable(t, []float64{}, []float64{})
	_, err = correlation.PearsonMatrix(noRows)
	assert.ErrorIs(t, err, correlation.ErrEmptySample)
	assert.ErrorIs(t, err, correlation.ErrDomain)

	oneRow := mustTable(t, []float64{1}, []float64{2}, []float64{3})
	R, err = correlation.PearsonMatrix(oneRow)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.True(t, math.IsNaN(mustAt(t, R, i, j)))
		}
	}

	single := mustTable(t, []float64{4, 1, 7})
	R, err = correlation.PearsonMatrix(single, correlation.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, 1.0, mustAt(t, R, 0, 0))
}

func TestPearsonMatrix_DoesNotMutate(t *testing.T) {
	t.Parallel()

	tbl, err := builder.FactorTable(30, 4, 1, builder.WithMissing(0.1))
	require.NoError(t, err)
	before := tbl.Clone()

	_, err = correlation.PearsonMatrix(tbl, correlation.WithNaNPolicy(correlation.NaNPairwise), correlation.WithWorkers(3))
	require.NoError(t, err)
	same, err := matrix.AllClose(before, tbl, 0, 0)
	require.NoError(t, err)
	assert.True(t, same)
}
