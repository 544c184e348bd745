// SPDX-License-Identifier: MIT

// Package correlation: functional options.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs (programmer
//     error); Pearson and PearsonMatrix never panic on user data.
//   - Defaults live in Default* constants and are applied by gatherOptions only.

package correlation

import (
	"fmt"
	"runtime"
)

// NaNPolicy selects how NaN observations take part in a correlation.
type NaNPolicy int

const (
	// NaNPropagate makes any NaN in either sample produce a NaN coefficient.
	NaNPropagate NaNPolicy = iota

	// NaNPairwise drops observation i when x[i] or y[i] is NaN and correlates
	// the remaining complete pairs (pairwise-complete observations).
	NaNPairwise
)

// String implements fmt.Stringer.
func (p NaNPolicy) String() string {
	switch p {
	case NaNPropagate:
		return "propagate"
	case NaNPairwise:
		return "pairwise"
	default:
		return fmt.Sprintf("NaNPolicy(%d)", int(p))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNaNPolicy propagates NaN into the result.
	DefaultNaNPolicy = NaNPropagate

	// DefaultWorkers keeps PearsonMatrix on the calling goroutine.
	DefaultWorkers = 1
)

const (
	panicBadPolicy  = "correlation: WithNaNPolicy: unknown policy"
	panicBadWorkers = "correlation: WithWorkers: n must be >= 1"
)

// Option customizes Pearson and PearsonMatrix.
type Option func(*Options)

// Options holds the effective configuration. Fields are unexported; use the
// WithX constructors.
type Options struct {
	nanPolicy NaNPolicy
	workers   int
}

// WithNaNPolicy selects the NaN policy. Panics on an unknown value.
func WithNaNPolicy(p NaNPolicy) Option {
	if p != NaNPropagate && p != NaNPairwise {
		panic(panicBadPolicy)
	}

	return func(o *Options) { o.nanPolicy = p }
}

// WithWorkers bounds the number of goroutines PearsonMatrix may use.
// n == 1 is the serial path. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicBadWorkers)
	}

	return func(o *Options) { o.workers = n }
}

// WithMaxWorkers sizes the worker pool to runtime.GOMAXPROCS(0).
func WithMaxWorkers() Option {
	return func(o *Options) { o.workers = runtime.GOMAXPROCS(0) }
}

// gatherOptions applies user setters over the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		nanPolicy: DefaultNaNPolicy,
		workers:   DefaultWorkers,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
