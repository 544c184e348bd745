// SPDX-License-Identifier: MIT
// Package: lvstats/builder
//
// impl_pair.go - two samples with a prescribed population correlation.

package builder

import (
	"math"
)

// CorrelatedPair returns two length-n samples whose population correlation is rho:
//
//	x = A·z₁,  y = A·(ρ·z₁ + √(1−ρ²)·z₂),  z₁, z₂ ~ N(0,1) independent.
//
// WithTrend adds the same k*i to both samples (a shared trend inflates the
// sample correlation). WithNoise adds independent noise to each sample, which
// attenuates it. WithMissing blanks cells independently in x and y.
//
// Returns nil, nil when n < 1 or rho is not in [-1, 1].
// Complexity: O(n) time and memory.
func CorrelatedPair(n int, rho float64, seed int64, opts ...BuilderOption) (x, y []float64) {
	if n < 1 || !(rho >= -1 && rho <= 1) {
		return nil, nil
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	x = make([]float64, n)
	y = make([]float64, n)
	comp := math.Sqrt(unitOne - rho*rho)

	var z1, z2, shift float64
	for i := 0; i < n; i++ {
		z1 = rng.NormFloat64()
		z2 = rng.NormFloat64()
		shift = cfg.trendK * float64(i)
		x[i] = cfg.amplitude*z1 + shift
		y[i] = cfg.amplitude*(rho*z1+comp*z2) + shift
		if cfg.noiseSigma > 0 {
			x[i] += cfg.noiseSigma * rng.NormFloat64()
			y[i] += cfg.noiseSigma * rng.NormFloat64()
		}
	}
	injectMissing(x, cfg.missingRate, rng)
	injectMissing(y, cfg.missingRate, rng)

	return x, y
}
