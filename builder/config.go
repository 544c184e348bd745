// SPDX-License-Identifier: MIT
// Package: lvstats/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng         = nil   (each generator falls back to its seed argument)
//   • amplitude   = 1.0
//   • frequency   = 0.0   (0 means "use the generator's own default")
//   • trendK      = 0.0
//   • noiseSigma  = 0.0
//   • triangular  = false (rectangular pulses)
//   • missingRate = 0.0   (no NaN injection)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by the generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "derive one from the seed argument".
	rng *rand.Rand

	// Sequence controls (Pulse/Chirp/OHLC/CorrelatedPair).
	amplitude  float64 // >0
	frequency  float64 // >0 when set; 0 keeps the generator default
	trendK     float64 // any real
	noiseSigma float64 // >=0
	triangular bool    // Pulse shape: rectangular(false) or triangular(true)

	// Fraction of cells replaced by NaN, in [0,1).
	missingRate float64
}

const (
	defaultAmplitude   = 1.0 // sequence amplitude
	defaultFrequency   = 0.0 // generator-specific default
	defaultTrend       = 0.0 // linear trend coefficient
	defaultNoiseSigma  = 0.0 // Gaussian noise stdev
	defaultMissingRate = 0.0 // no missing values
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		amplitude:   defaultAmplitude,
		frequency:   defaultFrequency,
		trendK:      defaultTrend,
		noiseSigma:  defaultNoiseSigma,
		missingRate: defaultMissingRate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
