// SPDX-License-Identifier: MIT
// Package: lvstats/builder
//
// sequence_primitives.go - shared helpers for sequence builders.
//
// Purpose:
//   - Hold small named numeric constants shared by the waveforms.
//   - Provide deterministic RNG selection with cfg.rng priority.
//   - Blank a reproducible subset of cells with NaN (WithMissing).

package builder

import (
	"math"
	"math/rand"
)

// -----------------------------
// Tiny numeric named constants.
// -----------------------------
const (
	unitZero  = 0.0 // named zero to avoid magic 0.0
	unitOne   = 1.0 // named one to avoid magic 1.0
	triDouble = 2.0 // factor used in triangular wave: 2*frac-1
	triCenter = 1.0 // center offset used in triangular wave
)

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// injectMissing overwrites round(rate*len(out)) distinct cells with NaN.
// Positions come from a partial Fisher-Yates shuffle driven by rng.
// Complexity: O(n) time, O(n) memory for the index permutation.
func injectMissing(out []float64, rate float64, rng *rand.Rand) {
	n := len(out)
	k := int(math.Round(rate * float64(n)))
	if k <= 0 {
		return
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var j int
	for i := 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[idx[i]] = math.NaN()
	}
}
