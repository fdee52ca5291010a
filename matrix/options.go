// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - eps is only consulted for floating element types. Integer element types
//     compare determinants against exact zero.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the absolute tolerance on |det| below which a floating
// matrix is treated as singular by InvertedMatrix and negative Pow.
const DefaultEpsilon = 1e-9

// panicEpsilonInvalid is the stable panic message for WithEpsilon.
const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite and >= 0"

// Options holds the effective numeric policy. Fields are unexported; use
// the WithX setters.
type Options struct {
	eps float64 // singularity tolerance for floating element types
}

// Option mutates Options. Apply order is last-writer-wins.
type Option func(*Options)

// WithEpsilon sets the singularity tolerance.
//
// Inputs:
//   - eps: non-negative finite tolerance. Zero means "exact zero only".
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// Epsilon reports the resolved singularity tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
