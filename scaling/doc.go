// Package scaling provides column-wise transforms for M×K tables, the usual
// preprocessing step before correlation or regression.
//
//   - Identity: a copy of the table (no-op transform).
//   - Standard: zero mean and unit population variance per column; ddof=1
//     rescales to unit sample variance.
//   - MinMax:   every column mapped onto [0, 1].
//   - Rank:     1-based ranks with ties averaged; Pearson on ranks is the
//     Spearman coefficient.
//   - Demean:   the column mean removed.
//
// All transforms return a new matrix and leave X untouched. NaN is not skipped:
// a NaN anywhere in a column makes the whole output column NaN. A constant
// column has no scale and maps to NaN under Standard and MinMax. Results keep
// X's numeric policy, so on a strict table that NaN surfaces as matrix.ErrNaNInf.
//
// Zero-size tables (0 rows or 0 columns) are returned as-is.
package scaling
