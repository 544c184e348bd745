// SPDX-License-Identifier: MIT
// Package: lvstats/builder
//
// impl_ohlc.go - deterministic OHLC series via discrete-time GBM with intraday steps.
//
// Purpose:
//   - Emit reproducible OHLC arrays for 'days' trading days using a GBM-like path.
//   - Use a small fixed number of intraday steps to form realistic wicks (high/low).
//   - OHLCTable stacks the four series as columns, the canonical strongly
//     correlated table for PearsonMatrix demos.
//
// Contract:
//   - OHLCSeries(days, seed, opts...) → (open[], high[], low[], close[]).
//   - On invalid input (days<1) ⇒ nil; never panic.
//   - O(days * steps) time; O(days) memory; steps is a tiny constant.
//
// Invariants (without WithMissing):
//   - low ≤ min(open, close) ≤ max(open, close) ≤ high.

package builder

import (
	"math"

	"github.com/katalvlaran/lvstats/matrix"
)

const methodOHLCTable = "OHLCTable"

const (
	defOHLCStart     = 100.0  // Default initial price S0 (>0)
	defOHLCDailyMu   = 0.0005 // Default daily drift μ
	defOHLCDailyVol  = 0.02   // Default daily volatility σ (≥0)
	defIntradaySteps = 8      // Fixed intraday steps per day (small constant)
)

// seqOHLCParams groups resolved knobs for the OHLC generator.
type seqOHLCParams struct {
	S0    float64 // initial price > 0
	mu    float64 // daily drift
	vol   float64 // daily volatility ≥ 0
	steps int     // intraday steps per day ≥ 1
}

// extractOHLCParams maps builderConfig → seqOHLCParams.
// WithAmplitude scales S0, a non-zero WithTrend sets μ and a non-zero
// WithNoise sets σ.
func extractOHLCParams(cfg builderConfig) seqOHLCParams {
	p := seqOHLCParams{
		S0:    defOHLCStart * cfg.amplitude,
		mu:    defOHLCDailyMu,
		vol:   defOHLCDailyVol,
		steps: defIntradaySteps,
	}
	if cfg.trendK != 0 {
		p.mu = cfg.trendK
	}
	if cfg.noiseSigma > 0 {
		p.vol = cfg.noiseSigma
	}

	return p
}

// OHLCSeries returns deterministic OHLC arrays for 'days' trading days.
// Model (discrete GBM per intraday step with Δt = 1/steps):
//
//	S_{t+1} = S_t * exp((μ - 0.5σ²)Δt + σ√Δt * Z),  Z ~ N(0,1).
//
// WithMissing blanks cells independently in each of the four series.
func OHLCSeries(days int, seed int64, opts ...BuilderOption) (open, high, low, close []float64) {
	if days < 1 {
		return nil, nil, nil, nil
	}
	cfg := newBuilderConfig(opts...)
	p := extractOHLCParams(cfg)
	if p.S0 <= 0 || p.vol < 0 || p.steps < 1 {
		return nil, nil, nil, nil
	}
	rng := rngFrom(cfg, seed)

	open = make([]float64, days)
	high = make([]float64, days)
	low = make([]float64, days)
	close = make([]float64, days)

	S := p.S0
	dt := 1.0 / float64(p.steps)
	driftTerm := p.mu - 0.5*p.vol*p.vol // (μ - 0.5 σ²)
	noiseScale := p.vol * math.Sqrt(dt) // σ √Δt

	var (
		d, s            int
		dayHigh, dayLow float64
	)
	for d = 0; d < days; d++ {
		open[d] = S
		dayHigh, dayLow = S, S

		for s = 0; s < p.steps; s++ {
			S *= math.Exp(driftTerm*dt + noiseScale*rng.NormFloat64())
			if S > dayHigh {
				dayHigh = S
			}
			if S < dayLow {
				dayLow = S
			}
		}

		close[d] = S
		high[d] = dayHigh
		low[d] = dayLow
	}

	if cfg.missingRate > 0 {
		for _, series := range [][]float64{open, high, low, close} {
			injectMissing(series, cfg.missingRate, rng)
		}
	}

	return open, high, low, close
}

// OHLCTable returns a days×4 table with columns open, high, low, close.
// The four columns share one price path, so their pairwise correlations sit
// close to 1.
//
// Errors:
//   - ErrBadSize when days < 1.
func OHLCTable(days int, seed int64, opts ...BuilderOption) (*matrix.Dense, error) {
	if err := validateMin(methodOHLCTable, "days", days, MinRows); err != nil {
		return nil, err
	}
	open, high, low, close := OHLCSeries(days, seed, opts...)
	t, err := matrix.NewTableFromColumns([][]float64{open, high, low, close})
	if err != nil {
		return nil, builderErrorf(methodOHLCTable, err) // equal lengths by construction
	}

	return t, nil
}
