// SPDX-License-Identifier: MIT
// Package: lvstats/builder
//
// impl_chirp.go - deterministic linear chirp generator.
//
// A chirp sweeps its instantaneous frequency from f0 to f1 over n samples.
// Two chirps with different sweeps decorrelate as n grows, which makes them
// a useful "weakly related" pair for correlation fixtures.

package builder

import (
	"math"
)

const (
	defChirpF0 = 0.02 // start frequency (cycles/sample) > 0
	defChirpF1 = 0.25 // end   frequency (cycles/sample) > 0
)

const tau = 2.0 * math.Pi // τ = 2π

type seqChirpParams struct {
	amp   float64 // amplitude > 0
	f0    float64 // start freq > 0
	f1    float64 // end   freq > 0
	sigma float64 // noise sigma ≥ 0
	trend float64 // linear trend increment per sample
}

func extractChirpParams(cfg builderConfig) seqChirpParams {
	p := seqChirpParams{
		amp:   cfg.amplitude,
		f0:    defChirpF0,
		f1:    defChirpF1,
		sigma: cfg.noiseSigma,
		trend: cfg.trendK,
	}
	if cfg.frequency > 0 {
		p.f0 = cfg.frequency
	}

	return p
}

// Chirp returns a length-n linear chirp: f sweeps from f0 to f1.
// Model:
//   - fi  = f0 + (f1 − f0) * i/(n−1)  (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ * fi               (phase accumulator, τ=2π)
//   - yᵢ  = A * sin(θᵢ) + trend*i + noise
//
// Returns nil when n < 1.
func Chirp(n int, seed int64, opts ...BuilderOption) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newBuilderConfig(opts...)
	p := extractChirpParams(cfg)
	if p.amp <= 0 || p.f0 <= 0 || p.f1 <= 0 || p.sigma < 0 {
		return nil
	}
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	theta := unitZero
	var (
		t   float64 // normalized position in [0,1]
		fi  float64 // instantaneous frequency at sample i
		val float64
	)
	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi = p.f0 + (p.f1-p.f0)*t
		theta += tau * fi

		val = p.amp*math.Sin(theta) + p.trend*float64(i)
		if p.sigma > 0 {
			val += p.sigma * rng.NormFloat64()
		}
		out[i] = val
	}
	injectMissing(out, cfg.missingRate, rng)

	return out
}
