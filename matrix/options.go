// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for table construction and numeric policy.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants, single source of truth),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions, the only place where defaults and setters are merged.
//
// Numeric policy:
//   - Tables routinely carry NaN as "missing value". The default therefore
//     ACCEPTS NaN/±Inf on ingestion and Set; downstream statistics decide what
//     NaN means (correlation propagates it).
//   - WithValidateNaNInf switches a table into strict mode: constructors and Set
//     reject non-finite values with ErrNaNInf. Derived tables (column kernels,
//     Apply) keep the policy and fail rather than store NaN/±Inf.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks
	// (symmetry validation before handing a matrix to gonum).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve them
// through gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the numeric tolerance used by structural checks.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation:
// NewTable/NewTableFromColumns/Set reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the permissive default (NaN as missing value).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the defaults.
// Useful for callers that want to inspect the effective policy.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the effective structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether the strict finite-value policy is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user setters over the defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}
