// SPDX-License-Identifier: MIT
// Package: lvstats/builder
//
// impl_pulse.go - deterministic rectangular/triangular pulse generator.
//
// Contract:
//   • Pulse(n, seed, opts...) returns a slice of length n (or nil on invalid input).
//   • Strict determinism per (n, seed, options); no panics; no global state.
//   • O(n) time and O(n) memory.
//
// Options:
//   • WithAmplitude, WithFrequency, WithTriangular, WithTrend, WithNoise, WithMissing.
//   • Noise via rng.NormFloat64()*sigma; missing cells are drawn after noise.

package builder

import (
	"math"
)

const (
	defBaseFreq = 0.125 // Default base frequency f0 in cycles/sample (>0). Period ≈ 8.
	defDuty     = 0.5   // Default rectangular duty cycle in [0,1].
)

// seqPulseParams holds all resolved knobs for the pulse generator.
type seqPulseParams struct {
	amp        float64 // amplitude > 0
	f0         float64 // base frequency > 0 (cycles/sample)
	duty       float64 // rectangular duty in [0,1]
	triangular bool    // rectangular(false) or triangular(true)
	sigma      float64 // Gaussian noise sigma ≥ 0
	trend      float64 // linear trend increment per sample
}

// extractPulseParams maps builderConfig → seqPulseParams.
func extractPulseParams(cfg builderConfig) seqPulseParams {
	p := seqPulseParams{
		amp:        cfg.amplitude,
		f0:         defBaseFreq,
		duty:       defDuty,
		triangular: cfg.triangular,
		sigma:      cfg.noiseSigma,
		trend:      cfg.trendK,
	}
	if cfg.frequency > 0 {
		p.f0 = cfg.frequency
	}

	return p
}

// Pulse returns a length-n pulse sequence with optional trend, noise and
// missing cells.
// Shape:
//   - Rectangular: y ∈ {0, A} chosen by phase fraction < duty.
//   - Triangular (WithTriangular): y ∈ [0, A] via 1 − |2*frac − 1| (no trig).
//
// Additions:
//   - Linear trend: y += trend * i.
//   - Gaussian noise: y += sigma * N(0,1) (deterministic per seed).
//
// Validation:
//   - If n < 1 ⇒ return nil (invalid request).
//
// Complexity:
//   - O(n) time, O(n) memory.
func Pulse(n int, seed int64, opts ...BuilderOption) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newBuilderConfig(opts...)
	p := extractPulseParams(cfg)
	if p.amp <= 0 || p.f0 <= 0 || p.sigma < 0 || p.duty < 0 || p.duty > 1 {
		return nil
	}
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	var (
		frac float64 // phase fraction in [0,1)
		base float64 // base waveform before trend/noise
	)
	for i := 0; i < n; i++ {
		// frac = (i*f0) mod 1; Mod avoids trig for the rectangular case.
		frac = math.Mod(float64(i)*p.f0, unitOne)
		if p.triangular {
			base = p.amp * (unitOne - math.Abs(triDouble*frac-triCenter))
		} else if frac < p.duty {
			base = p.amp
		} else {
			base = unitZero
		}

		base += p.trend * float64(i)
		if p.sigma > 0 {
			base += p.sigma * rng.NormFloat64()
		}
		out[i] = base
	}
	injectMissing(out, cfg.missingRate, rng)

	return out
}
