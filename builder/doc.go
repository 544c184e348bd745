// Package builder generates deterministic synthetic samples and tables for
// lvstats examples, tests and benchmarks.
//
// Every generator takes a seed and a list of functional options and is fully
// reproducible: the same (size, seed, options) always yields the same values.
//
//   - Samples:
//     – CorrelatedPair: two Gaussian samples with a prescribed correlation ρ.
//     – Pulse:          rectangular or triangular pulse train.
//     – Chirp:          linear frequency sweep.
//     – OHLCSeries:     open/high/low/close prices from a GBM path.
//   - Tables (*matrix.Dense, rows are observations):
//     – Table:          stack samples as columns.
//     – OHLCTable:      days×4 price table (ErrBadSize when days < 1).
//     – FactorTable:    m×k one-factor table with known pairwise correlations.
//   - Options:
//     – WithSeed, WithRand:        RNG control (a shared *rand.Rand chains calls).
//     – WithAmplitude, WithFrequency, WithTriangular, WithTrend, WithNoise.
//     – WithMissing(rate):         blank a reproducible fraction of cells with NaN.
//
// Guarantees:
//
//   - Generators never panic; invalid sizes yield nil (or ErrBadSize for the
//     table constructors).
//   - Option constructors panic on meaningless values (A<=0, sigma<0, ...).
//   - Documented complexity per generator, all linear in the output size.
package builder
