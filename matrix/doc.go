// Package matrix provides the table substrate for lvstats.
//
// A table is an M×K Matrix whose rows are observations and whose columns are
// variables (Samples). The package offers:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set/Column)
//     that return sentinel errors instead of panicking.
//   - Table constructors (NewTable, NewTableFromColumns, FromGonum) that copy
//     caller data and accept NaN as a missing value by default.
//   - Column kernels (ColumnMeans, CenterColumns, ColumnMinMax, SubtractColumns,
//     ScaleColumns) with Dense fast paths and a generic At fallback.
//   - Validators (ValidateSquare, ValidateSymmetric, ...) and AllClose, both
//     NaN-aware so correlation results with NaN rows compare cleanly.
//   - ToGonumSym to hand symmetric results to gonum for further linear algebra.
//
// Numeric policy is per instance: WithValidateNaNInf turns a table strict.
//
// See example_test.go for usage patterns.
package matrix
