// SPDX-License-Identifier: MIT
// Package: lvstats/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic; they return nil on bad requests.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand,
//     otherwise every generator seeds itself from its seed argument.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig instance
// before any sample is drawn.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared by every generator it is passed to.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed. It overrides the seed
// argument of the generator it is passed to.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmplitude sets the sequence amplitude A (>0) for Pulse and Chirp, and
// the standard deviation of the latent factor in CorrelatedPair.
// Panics if A <= 0 to avoid degenerate outputs.
func WithAmplitude(A float64) BuilderOption {
	if A <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) {
		c.amplitude = A
	}
}

// WithFrequency sets the base frequency f0 (>0, cycles/sample) for Pulse and
// the start frequency for Chirp. Panics if f0 <= 0.
func WithFrequency(f0 float64) BuilderOption {
	if f0 <= 0 {
		panic("builder: WithFrequency(f0<=0)")
	}
	return func(c *builderConfig) {
		c.frequency = f0
	}
}

// WithTrend sets the linear trend coefficient k; sample i gains k*i.
// Any real value is accepted (including 0).
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) {
		c.trendK = k
	}
}

// WithNoise sets the Gaussian noise sigma (>=0) added to every sample.
// Panics if sigma < 0.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noiseSigma = sigma
	}
}

// WithTriangular switches Pulse from rectangular to triangular cycles.
func WithTriangular() BuilderOption {
	return func(c *builderConfig) {
		c.triangular = true
	}
}

// WithMissing replaces round(rate*n) cells of every generated sample with NaN.
// The positions are drawn from the generator's RNG, so they are reproducible.
// Panics unless 0 <= rate < 1.
func WithMissing(rate float64) BuilderOption {
	if !(rate >= 0 && rate < 1) {
		panic("builder: WithMissing(rate not in [0,1))")
	}
	return func(c *builderConfig) {
		c.missingRate = rate
	}
}
