// Package correlation computes Pearson product-moment correlation coefficients.
//
// Two entry points:
//
//	r, err := correlation.Pearson(x, y)          // two equal-length samples
//	R, err := correlation.PearsonMatrix(table)   // all column pairs of an M×K table
//
// Numeric contract:
//   - NaN in any input position propagates to a NaN coefficient (default), so
//     downstream consumers such as heatmaps see "undefined" instead of an error.
//     WithNaNPolicy(NaNPairwise) drops incomplete observations instead.
//   - Zero variance (a constant sample, or a single observation) is NaN, not an error.
//   - Mismatched or empty samples are domain errors (ErrLengthMismatch,
//     ErrEmptySample, both matching ErrDomain).
//
// PearsonMatrix centers every column once and reuses it for all pairs; only the
// upper triangle is evaluated. WithWorkers(n) spreads triangle rows over a
// bounded goroutine pool with results identical to the serial path.
package correlation
