// Package lvstats is a small numeric toolkit for correlation analysis of
// tabular data in pure Go.
//
// What is inside?
//
//	A focused set of packages that build on each other:
//		• matrix:      tables (rows = observations, columns = variables), column
//		               statistics, NaN-aware validators, gonum interop
//		• correlation: Pearson coefficient for two samples and the full K×K
//		               correlation matrix of a table, serial or on a worker pool
//		• scaling:     column transforms (standard, min-max, rank, demean)
//		• builder:     reproducible synthetic samples and tables
//
// Numeric contract:
//
//   - NaN is a missing value. It propagates into results instead of raising an
//     error, so a heatmap of a correlation matrix simply shows the gap.
//   - Zero variance yields NaN. Mismatched or empty samples are errors.
//   - Every result is deterministic; the parallel correlation path is
//     bit-identical to the serial one.
//
// Quick example:
//
//	x := []float64{56, 56, 65, 65, 50, 25, 87, 44, 35}
//	y := []float64{87, 91, 85, 91, 75, 28, 122, 66, 58}
//	r, _ := correlation.Pearson(x, y) // 0.966194...
//
//	table, _ := matrix.NewTableFromColumns([][]float64{x, y})
//	R, _ := correlation.PearsonMatrix(table, correlation.WithMaxWorkers())
//
//	go get github.com/katalvlaran/lvstats
package lvstats
